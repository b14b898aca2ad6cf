package system_test

import (
	"testing"

	"go-word-rain/internal/component"
	"go-word-rain/internal/entity"
	"go-word-rain/internal/event"
	"go-word-rain/internal/types"

	"github.com/stretchr/testify/require"
)

// recorder собирает события для проверок.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newRecorder(t *testing.T, d *event.Dispatcher) *recorder {
	t.Helper()
	r := &recorder{}
	d.SubscribeAll(r)
	return r
}

func addWord(t *testing.T, ecs *entity.ECS, text string, y, speed float64) types.EntityID {
	t.Helper()
	require.NotEmpty(t, text)
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 100, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.Words[id] = &component.Word{Token: text + "-token", Text: text}
	return id
}
