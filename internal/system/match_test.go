package system_test

import (
	"testing"

	"go-word-rain/internal/entity"
	"go-word-rain/internal/system"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyInputHighlightsPrefixes(t *testing.T) {
	ecs := entity.NewECS()
	match := system.NewMatchSystem(ecs)
	cat := addWord(t, ecs, "cat", 10, 1)
	car := addWord(t, ecs, "car", 20, 1)
	dog := addWord(t, ecs, "dog", 30, 1)

	// "ca" подходит и к "cat", и к "car" — подсвечиваются оба.
	match.ApplyInput("ca")

	assert.Equal(t, "ca", ecs.Session.Input)
	assert.Equal(t, "ca", ecs.Words[cat].MatchedPrefix)
	assert.Equal(t, "ca", ecs.Words[car].MatchedPrefix)
	assert.Empty(t, ecs.Words[dog].MatchedPrefix)
}

func TestApplyInputIsCaseInsensitive(t *testing.T) {
	ecs := entity.NewECS()
	match := system.NewMatchSystem(ecs)
	cat := addWord(t, ecs, "cat", 10, 1)

	match.ApplyInput("CA")

	assert.Equal(t, "CA", ecs.Words[cat].MatchedPrefix)
}

func TestApplyInputClearsStaleHighlight(t *testing.T) {
	ecs := entity.NewECS()
	match := system.NewMatchSystem(ecs)
	cat := addWord(t, ecs, "cat", 10, 1)

	match.ApplyInput("ca")
	match.ApplyInput("cx")
	assert.Empty(t, ecs.Words[cat].MatchedPrefix)

	match.ApplyInput("ca")
	match.ApplyInput("")
	assert.Empty(t, ecs.Words[cat].MatchedPrefix)
}

func TestConfirmDestroysExactMatch(t *testing.T) {
	ecs := entity.NewECS()
	match := system.NewMatchSystem(ecs)
	addWord(t, ecs, "cat", 10, 1)
	dog := addWord(t, ecs, "dog", 20, 1)

	destroyed := match.Confirm("  CAT ")

	require.NotNil(t, destroyed)
	assert.Equal(t, "cat", destroyed.Text)
	assert.Len(t, ecs.Words, 1)
	assert.Contains(t, ecs.Words, dog)
	assert.Empty(t, ecs.Session.Input)
}

func TestConfirmMissKeepsWords(t *testing.T) {
	ecs := entity.NewECS()
	match := system.NewMatchSystem(ecs)
	addWord(t, ecs, "cat", 10, 1)

	destroyed := match.Confirm("ca")

	assert.Nil(t, destroyed)
	assert.Len(t, ecs.Words, 1)
	assert.Empty(t, ecs.Session.Input)
}

func TestConfirmEmptyInputIsNoop(t *testing.T) {
	ecs := entity.NewECS()
	match := system.NewMatchSystem(ecs)
	addWord(t, ecs, "cat", 10, 1)

	assert.Nil(t, match.Confirm("   "))
	assert.Len(t, ecs.Words, 1)
}

func TestConfirmTieBreakIsSpawnOrder(t *testing.T) {
	ecs := entity.NewECS()
	match := system.NewMatchSystem(ecs)
	first := addWord(t, ecs, "cat", 10, 1)
	second := addWord(t, ecs, "cat", 200, 1)

	destroyed := match.Confirm("cat")

	require.NotNil(t, destroyed)
	assert.NotContains(t, ecs.Words, first)
	assert.Contains(t, ecs.Words, second)
}

func TestConfirmResetsHighlights(t *testing.T) {
	ecs := entity.NewECS()
	match := system.NewMatchSystem(ecs)
	cat := addWord(t, ecs, "cat", 10, 1)
	addWord(t, ecs, "car", 20, 1)

	match.ApplyInput("ca")
	match.Confirm("car")

	assert.Empty(t, ecs.Words[cat].MatchedPrefix)
}
