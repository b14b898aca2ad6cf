// internal/system/match.go
package system

import (
	"strings"

	"go-word-rain/internal/component"
	"go-word-rain/internal/entity"
)

// MatchSystem сопоставляет ввод игрока с живыми словами.
type MatchSystem struct {
	ecs *entity.ECS
}

func NewMatchSystem(ecs *entity.ECS) *MatchSystem {
	return &MatchSystem{ecs: ecs}
}

// ApplyInput запоминает текущий ввод и подсвечивает каждое слово, для
// которого ввод является префиксом без учёта регистра. Несколько слов
// могут подсвечиваться одновременно ("ca" подходит и к "cat", и к
// "car") — неоднозначность разрешается только при подтверждении.
func (s *MatchSystem) ApplyInput(input string) {
	s.ecs.Session.Input = input
	lowered := strings.ToLower(input)
	for _, word := range s.ecs.Words {
		if lowered != "" && strings.HasPrefix(word.Text, lowered) {
			word.MatchedPrefix = input
		} else {
			word.MatchedPrefix = ""
		}
	}
}

// Confirm сравнивает подтверждённый ввод с полным текстом каждого слова
// (без регистра, с обрезкой пробелов) и уничтожает первое совпавшее.
// При нескольких словах с одинаковым текстом побеждает раньше
// заспавненное — порядок возрастания идентификаторов сущностей.
// Ввод и подсветка сбрасываются при любом исходе.
func (s *MatchSystem) Confirm(input string) *component.Word {
	s.ApplyInput("")
	target := strings.ToLower(strings.TrimSpace(input))
	if target == "" {
		return nil
	}
	for _, id := range s.ecs.WordIDs() {
		word := s.ecs.Words[id]
		if word.Text == target {
			s.ecs.RemoveEntity(id)
			return word
		}
	}
	return nil
}
