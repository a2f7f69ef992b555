package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillBlankExercise() *Exercise {
	return &Exercise{
		Mode:     ExerciseModeFillBlank,
		Sentence: Sentence{ID: "1", Tokens: []string{"I", "love", "you"}},
		Tiles:    []Tile{{ID: 0, Word: "you"}, {ID: 1, Word: "love"}},
		Blanks: []Blank{
			{Index: 1, Expected: "love", TileID: -1},
			{Index: 2, Expected: "you", TileID: -1},
		},
	}
}

func TestExercise_PlaceTileFillsFirstOpenBlank(t *testing.T) {
	e := fillBlankExercise()

	require.True(t, e.PlaceTile(1))
	assert.Equal(t, "love", e.Blanks[0].Filled)
	assert.True(t, e.Tiles[1].Used)

	assert.False(t, e.PlaceTile(1), "used tile is a no-op")

	require.True(t, e.PlaceTile(0))
	assert.Equal(t, "you", e.Blanks[1].Filled)
	assert.Empty(t, e.BankTiles())
}

func TestExercise_ClearBlankReturnsTile(t *testing.T) {
	e := fillBlankExercise()
	require.True(t, e.PlaceTile(0))

	require.True(t, e.ClearBlank(0))
	assert.True(t, e.Blanks[0].IsEmpty())
	assert.False(t, e.Tiles[0].Used)

	assert.False(t, e.ClearBlank(0), "empty blank is a no-op")
	assert.False(t, e.ClearBlank(5))
}

func TestExercise_OrderingSequence(t *testing.T) {
	e := &Exercise{
		Mode:  ExerciseModeOrderBlind,
		Tiles: []Tile{{ID: 0, Word: "you"}, {ID: 1, Word: "I"}, {ID: 2, Word: "love"}},
	}

	require.True(t, e.PlaceTile(1))
	require.True(t, e.PlaceTile(2))
	require.True(t, e.PlaceTile(0))
	assert.Equal(t, []string{"I", "love", "you"}, e.PlacedWords())

	require.True(t, e.UnplaceTile(1))
	assert.Equal(t, []string{"I", "you"}, e.PlacedWords())
	assert.Len(t, e.BankTiles(), 1)

	e.Reset()
	assert.Empty(t, e.PlacedWords())
	assert.Len(t, e.BankTiles(), 3)
}

func TestExercise_SolvedBoardIsFrozen(t *testing.T) {
	e := fillBlankExercise()
	e.Solved = true

	assert.False(t, e.PlaceTile(0))
	e.Reset()
	assert.True(t, e.Blanks[0].IsEmpty())
}

func TestExerciseMode(t *testing.T) {
	assert.True(t, ExerciseModeFillBlank.Valid())
	assert.False(t, ExerciseMode("version4").Valid())
	assert.False(t, ExerciseModeFillBlank.IsOrdering())
	assert.True(t, ExerciseModeOrderTranslated.ShowsTranslation())
	assert.False(t, ExerciseModeOrderBlind.ShowsTranslation())
}
