package system_test

import (
	"testing"

	"go-word-rain/internal/entity"
	"go-word-rain/internal/system"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallIsFixedStepPerTick(t *testing.T) {
	ecs := entity.NewECS()
	movement := system.NewMovementSystem(ecs)
	id := addWord(t, ecs, "cat", 0, 2)

	arrived := movement.Update()

	assert.Empty(t, arrived)
	assert.InDelta(t, 2.0, ecs.Positions[id].Y, 1e-9)

	movement.Update()
	assert.InDelta(t, 4.0, ecs.Positions[id].Y, 1e-9)
}

func TestArrivalRemovesWordSameTick(t *testing.T) {
	ecs := entity.NewECS()
	movement := system.NewMovementSystem(ecs)
	movement.SetPlayHeight(600) // базовая линия на 500
	addWord(t, ecs, "cat", 499.5, 1)

	arrived := movement.Update()

	require.Len(t, arrived, 1)
	assert.Equal(t, "cat", arrived[0].Text)
	assert.Empty(t, ecs.Words)
}

func TestWordAboveBaseLineSurvives(t *testing.T) {
	ecs := entity.NewECS()
	movement := system.NewMovementSystem(ecs)
	movement.SetPlayHeight(600)
	addWord(t, ecs, "cat", 498, 1)

	arrived := movement.Update()

	assert.Empty(t, arrived)
	assert.Len(t, ecs.Words, 1)
}

func TestArrivalsReturnedInSpawnOrder(t *testing.T) {
	ecs := entity.NewECS()
	movement := system.NewMovementSystem(ecs)
	movement.SetPlayHeight(600)
	addWord(t, ecs, "cat", 499, 5)
	addWord(t, ecs, "dog", 200, 1)
	addWord(t, ecs, "sun", 499, 5)

	arrived := movement.Update()

	require.Len(t, arrived, 2)
	assert.Equal(t, "cat", arrived[0].Text)
	assert.Equal(t, "sun", arrived[1].Text)
	assert.Len(t, ecs.Words, 1)
}
