// internal/system/movement.go
package system

import (
	"go-word-rain/internal/component"
	"go-word-rain/internal/config"
	"go-word-rain/internal/entity"
)

// MovementSystem опускает слова и находит достигшие базовой линии.
type MovementSystem struct {
	ecs        *entity.ECS
	playHeight float64
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{
		ecs:        ecs,
		playHeight: config.ScreenHeight,
	}
}

// SetPlayHeight сообщает системе высоту игрового поля.
func (s *MovementSystem) SetPlayHeight(height float64) {
	s.playHeight = height
}

// BaseLine возвращает координату Y базовой линии.
func (s *MovementSystem) BaseLine() float64 {
	return s.playHeight - config.BaseLineOffset
}

// Update сдвигает каждое слово вниз на его скорость — фиксированный шаг
// за тик, без масштабирования по wall-clock. Слова, пересекшие базовую
// линию, удаляются в этом же тике и возвращаются в порядке спавна.
func (s *MovementSystem) Update() []*component.Word {
	baseLine := s.BaseLine()
	var arrived []*component.Word
	for _, id := range s.ecs.WordIDs() {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		pos.Y += vel.Speed
		if pos.Y >= baseLine {
			arrived = append(arrived, s.ecs.Words[id])
			s.ecs.RemoveEntity(id)
		}
	}
	return arrived
}
