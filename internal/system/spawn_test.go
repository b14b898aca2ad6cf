package system_test

import (
	"testing"

	"go-word-rain/internal/config"
	"go-word-rain/internal/entity"
	"go-word-rain/internal/system"
	"go-word-rain/internal/utils"
	"go-word-rain/pkg/wordbank"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpawnFixture(t *testing.T) (*entity.ECS, *system.SpawnSystem) {
	t.Helper()
	ecs := entity.NewECS()
	rng := utils.NewPRNGService(1)
	tiers := [][]string{
		{"cat", "dog", "sun", "box", "key", "ice", "fox", "hat",
			"pen", "cup", "bed", "car", "bus", "sky", "sea", "ant",
			"owl", "egg", "jam", "leg", "arm", "toe", "zip", "web"},
	}
	bank, err := wordbank.New(tiers, rng, config.RecentWordsLimit)
	require.NoError(t, err)
	return ecs, system.NewSpawnSystem(ecs, bank, rng)
}

func TestSpawnInterval(t *testing.T) {
	assert.InDelta(t, 2000, system.SpawnInterval(1), 1e-9)
	assert.InDelta(t, 1600, system.SpawnInterval(2), 1e-9)
	assert.InDelta(t, 1200, system.SpawnInterval(3), 1e-9)
	assert.InDelta(t, 800, system.SpawnInterval(4), 1e-9)
	// Ниже минимума интервал не опускается.
	assert.InDelta(t, 500, system.SpawnInterval(5), 1e-9)
	assert.InDelta(t, 500, system.SpawnInterval(50), 1e-9)
}

func TestSpawnSkippedWithoutPlayArea(t *testing.T) {
	ecs, spawn := newSpawnFixture(t)
	ecs.GameTime = 10

	spawn.Update()

	assert.Empty(t, ecs.Words)
	assert.Zero(t, ecs.Session.LastSpawnMs)
}

func TestSpawnSkippedWithinInterval(t *testing.T) {
	ecs, spawn := newSpawnFixture(t)
	spawn.SetPlayWidth(config.ScreenWidth)
	ecs.GameTime = 1.5 // 1500мс < 2000мс на первом уровне

	spawn.Update()

	assert.Empty(t, ecs.Words)
}

func TestSpawnCreatesWord(t *testing.T) {
	ecs, spawn := newSpawnFixture(t)
	spawn.SetPlayWidth(config.ScreenWidth)
	ecs.GameTime = 2.5

	spawn.Update()

	require.Len(t, ecs.Words, 1)
	for id, word := range ecs.Words {
		assert.NotEmpty(t, word.Token)
		assert.NotEmpty(t, word.Text)
		assert.Empty(t, word.MatchedPrefix)

		pos := ecs.Positions[id]
		require.NotNil(t, pos)
		assert.Equal(t, -config.WordHeightAllowance, pos.Y)
		assert.GreaterOrEqual(t, pos.X, 0.0)
		assert.Less(t, pos.X, config.ScreenWidth-config.WordWidthAllowance)

		vel := ecs.Velocities[id]
		require.NotNil(t, vel)
		assert.InDelta(t, config.BaseFallSpeed+config.FallSpeedPerLevel, vel.Speed, 1e-9)
	}
	assert.InDelta(t, 2500, ecs.Session.LastSpawnMs, 1e-9)

	// Интервал отсчитывается заново — повторный тик ничего не спавнит.
	spawn.Update()
	assert.Len(t, ecs.Words, 1)
}

func TestSpawnNeverDuplicatesLiveWords(t *testing.T) {
	ecs, spawn := newSpawnFixture(t)
	spawn.SetPlayWidth(config.ScreenWidth)

	for i := 0; i < 10; i++ {
		ecs.GameTime += 2.5
		spawn.Update()
	}

	require.Len(t, ecs.Words, 10)
	seen := make(map[string]bool)
	for _, word := range ecs.Words {
		assert.False(t, seen[word.Text], "duplicate live word %q", word.Text)
		seen[word.Text] = true
	}
}
