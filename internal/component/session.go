// component/session.go
package component

// Phase — фаза игровой сессии.
type Phase int

const (
	IdlePhase Phase = iota
	PlayingPhase
	GameOverPhase
)

// Session — счёт, уровень и жизни текущего раунда.
// Единственный экземпляр живёт в ECS и изменяется только системами.
type Session struct {
	Phase       Phase
	Score       int
	Level       int
	Lives       int
	Input       string
	LastSpawnMs float64 // игровое время последнего спавна в миллисекундах
}
