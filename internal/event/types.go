// internal/event/types.go
package event

const (
	GameStarted  EventType = "GameStarted"  // Раунд начался
	WordHit      EventType = "WordHit"      // Слово уничтожено вводом игрока
	WordMiss     EventType = "WordMiss"     // Подтверждение без точного совпадения
	WordArrived  EventType = "WordArrived"  // Слово достигло базовой линии
	LevelUp      EventType = "LevelUp"      // Уровень вырос
	AllLivesLost EventType = "AllLivesLost" // Жизни закончились, раунд окончен
)

// AllTypes перечисляет все виды событий для SubscribeAll.
var AllTypes = []EventType{
	GameStarted,
	WordHit,
	WordMiss,
	WordArrived,
	LevelUp,
	AllLivesLost,
}
