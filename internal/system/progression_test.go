package system_test

import (
	"testing"

	"go-word-rain/internal/component"
	"go-word-rain/internal/config"
	"go-word-rain/internal/entity"
	"go-word-rain/internal/event"
	"go-word-rain/internal/system"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressionFixture(t *testing.T) (*entity.ECS, *system.ProgressionSystem, *recorder) {
	t.Helper()
	ecs := entity.NewECS()
	ecs.Session.Phase = component.PlayingPhase
	dispatcher := event.NewDispatcher()
	rec := newRecorder(t, dispatcher)
	return ecs, system.NewProgressionSystem(ecs, dispatcher), rec
}

func TestOnHitScoresByLengthAndLevel(t *testing.T) {
	ecs, progression, rec := newProgressionFixture(t)

	progression.OnHit(&component.Word{Text: "cat"})

	// 3 буквы * 10 * уровень 1 = 30.
	assert.Equal(t, 30, ecs.Session.Score)
	assert.Equal(t, 1, ecs.Session.Level)

	hits := rec.ofType(event.WordHit)
	require.Len(t, hits, 1)
	payload, ok := hits[0].Data.(event.WordHitPayload)
	require.True(t, ok)
	assert.Equal(t, "cat", payload.Text)
	assert.Equal(t, 30, payload.Points)
	assert.Empty(t, rec.ofType(event.LevelUp))
}

func TestOnHitUsesCurrentLevelMultiplier(t *testing.T) {
	ecs, progression, _ := newProgressionFixture(t)
	ecs.Session.Score = 2000
	ecs.Session.Level = 3

	progression.OnHit(&component.Word{Text: "cat"})

	assert.Equal(t, 2000+3*10*3, ecs.Session.Score)
}

func TestLevelDerivedFromScore(t *testing.T) {
	ecs, progression, rec := newProgressionFixture(t)
	ecs.Session.Score = 970

	// 30 очков доводят счёт ровно до 1000: floor(1000/1000)+1 = 2.
	progression.OnHit(&component.Word{Text: "cat"})

	assert.Equal(t, 1000, ecs.Session.Score)
	assert.Equal(t, 2, ecs.Session.Level)

	ups := rec.ofType(event.LevelUp)
	require.Len(t, ups, 1)
	payload, ok := ups[0].Data.(event.LevelUpPayload)
	require.True(t, ok)
	assert.Equal(t, 2, payload.Level)
}

func TestOnArrivalsCostsOneLifeEach(t *testing.T) {
	ecs, progression, rec := newProgressionFixture(t)

	progression.OnArrivals([]*component.Word{{Text: "cat"}})

	assert.Equal(t, config.StartingLives-1, ecs.Session.Lives)
	assert.Equal(t, component.PlayingPhase, ecs.Session.Phase)

	arrivals := rec.ofType(event.WordArrived)
	require.Len(t, arrivals, 1)
	payload, ok := arrivals[0].Data.(event.WordArrivedPayload)
	require.True(t, ok)
	assert.Equal(t, "cat", payload.Text)
}

func TestOnArrivalsGameOver(t *testing.T) {
	ecs, progression, rec := newProgressionFixture(t)
	ecs.Session.Score = 500
	addWord(t, ecs, "sun", 100, 1)

	// Три слова одновременно достигают базы: жизни падают до нуля за
	// один тик, раунд завершается, живые слова очищаются.
	progression.OnArrivals([]*component.Word{{Text: "cat"}, {Text: "dog"}, {Text: "box"}})

	assert.Zero(t, ecs.Session.Lives)
	assert.Equal(t, component.GameOverPhase, ecs.Session.Phase)
	assert.Empty(t, ecs.Words)
	assert.Len(t, rec.ofType(event.WordArrived), 3)

	lost := rec.ofType(event.AllLivesLost)
	require.Len(t, lost, 1)
	payload, ok := lost[0].Data.(event.AllLivesLostPayload)
	require.True(t, ok)
	assert.Equal(t, 500, payload.Score)
}

func TestOnArrivalsLivesClampedAtZero(t *testing.T) {
	ecs, progression, _ := newProgressionFixture(t)

	progression.OnArrivals([]*component.Word{
		{Text: "cat"}, {Text: "dog"}, {Text: "box"}, {Text: "key"}, {Text: "sun"},
	})

	assert.Zero(t, ecs.Session.Lives)
	assert.Equal(t, component.GameOverPhase, ecs.Session.Phase)
}
