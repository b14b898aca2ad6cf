// internal/system/spawn.go
package system

import (
	"log"
	"math"

	"go-word-rain/internal/component"
	"go-word-rain/internal/config"
	"go-word-rain/internal/entity"
	"go-word-rain/internal/utils"
	"go-word-rain/pkg/wordbank"

	"github.com/google/uuid"
)

// SpawnSystem решает, когда вводить новое падающее слово.
type SpawnSystem struct {
	ecs       *entity.ECS
	bank      *wordbank.Bank
	rng       *utils.PRNGService
	playWidth float64 // 0 — поле ещё не измерено, спавн пропускается
}

func NewSpawnSystem(ecs *entity.ECS, bank *wordbank.Bank, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		ecs:  ecs,
		bank: bank,
		rng:  rng,
	}
}

// SetPlayWidth сообщает системе ширину игрового поля. До первого вызова
// спавн молча пропускается — поле ещё не отрисовано.
func (s *SpawnSystem) SetPlayWidth(width float64) {
	s.playWidth = width
}

// SpawnInterval возвращает интервал спавна в миллисекундах для уровня.
func SpawnInterval(level int) float64 {
	interval := config.BaseSpawnIntervalMs * (1 - float64(level-1)*config.SpawnIntervalPerLevel)
	return math.Max(interval, config.MinSpawnIntervalMs)
}

// Update спавнит не больше одного слова за тик, когда с момента
// последнего спавна прошло больше интервала текущего уровня.
func (s *SpawnSystem) Update() {
	session := s.ecs.Session
	nowMs := s.ecs.GameTime * 1000
	if nowMs-session.LastSpawnMs <= SpawnInterval(session.Level) {
		return
	}
	if s.playWidth <= 0 {
		return
	}

	text, err := s.bank.Pick(session.Level, s.ecs.LiveWordTexts())
	if err != nil {
		// Все слова яруса на экране. Деградируем до повторного слова,
		// чтобы игра продолжалась.
		log.Printf("word bank exhausted at level %d, reusing a tier word", session.Level)
		text = s.bank.Any(session.Level)
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: s.rng.Float64InRange(0, s.playWidth-config.WordWidthAllowance),
		Y: -config.WordHeightAllowance,
	}
	s.ecs.Velocities[id] = &component.Velocity{
		Speed: config.BaseFallSpeed + float64(session.Level)*config.FallSpeedPerLevel,
	}
	s.ecs.Words[id] = &component.Word{
		Token: uuid.NewString(),
		Text:  text,
	}
	session.LastSpawnMs = nowMs
}
