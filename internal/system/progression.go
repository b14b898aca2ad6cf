// internal/system/progression.go
package system

import (
	"go-word-rain/internal/component"
	"go-word-rain/internal/config"
	"go-word-rain/internal/entity"
	"go-word-rain/internal/event"
)

// ProgressionSystem начисляет очки, выводит уровень из счёта и ведёт
// учёт жизней.
type ProgressionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProgressionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProgressionSystem {
	return &ProgressionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// OnHit начисляет очки за уничтоженное слово: длина * 10 * уровень.
// Уровень выводится из накопленного счёта: score/1000 + 1; счёт и
// уровень в рамках раунда не убывают.
func (s *ProgressionSystem) OnHit(word *component.Word) {
	session := s.ecs.Session
	points := len(word.Text) * config.PointsPerLetter * session.Level
	session.Score += points
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WordHit,
		Data: event.WordHitPayload{Text: word.Text, Points: points},
	})

	newLevel := session.Score/config.ScorePerLevel + 1
	if newLevel > session.Level {
		session.Level = newLevel
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.LevelUp,
			Data: event.LevelUpPayload{Level: newLevel},
		})
	}
}

// OnArrivals снимает по жизни за каждое прибывшее слово (не ниже нуля)
// и рассылает по уведомлению на слово. При нуле жизней раунд
// завершается: фаза GameOver, живые слова очищаются.
func (s *ProgressionSystem) OnArrivals(arrived []*component.Word) {
	session := s.ecs.Session
	for _, word := range arrived {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WordArrived,
			Data: event.WordArrivedPayload{Text: word.Text},
		})
		if session.Lives > 0 {
			session.Lives--
		}
	}

	if session.Lives == 0 && session.Phase == component.PlayingPhase {
		session.Phase = component.GameOverPhase
		session.Input = ""
		s.ecs.ClearWords()
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.AllLivesLost,
			Data: event.AllLivesLostPayload{Score: session.Score},
		})
	}
}
