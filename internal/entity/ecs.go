// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-word-rain/internal/component"
	"go-word-rain/internal/config"
	"go-word-rain/internal/types"
)

type ECS struct {
	GameTime   float64 // игровое время в секундах, растёт только в PlayingPhase
	NextID     types.EntityID
	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Words      map[types.EntityID]*component.Word
	Session    *component.Session
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Positions:  make(map[types.EntityID]*component.Position),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Words:      make(map[types.EntityID]*component.Word),
		Session: &component.Session{
			Phase: component.IdlePhase,
			Level: 1,
			Lives: config.StartingLives,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Words, id)
}

// ClearWords удаляет все живые слова (конец раунда, сброс сессии).
func (ecs *ECS) ClearWords() {
	for id := range ecs.Words {
		ecs.RemoveEntity(id)
	}
}

// WordIDs возвращает идентификаторы живых слов в порядке спавна.
// Итерация по map недетерминирована, поэтому все системы, которым важен
// порядок (совпадение при подтверждении, события прибытия), ходят через него.
func (ecs *ECS) WordIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Words))
	for id := range ecs.Words {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// LiveWordTexts возвращает тексты живых слов для исключения в банке слов.
func (ecs *ECS) LiveWordTexts() []string {
	texts := make([]string, 0, len(ecs.Words))
	for _, id := range ecs.WordIDs() {
		texts = append(texts, ecs.Words[id].Text)
	}
	return texts
}
