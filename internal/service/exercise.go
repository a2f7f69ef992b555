package service

import (
	"math/rand"
	"sort"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

// DefaultMaxBlanks is the maximum number of hidden words in fill-in-blank mode.
const DefaultMaxBlanks = 5

// ExerciseBuilder turns a sentence into an exercise board.
type ExerciseBuilder struct {
	maxBlanks int
	rng       *rand.Rand
}

// NewExerciseBuilder creates a builder hiding at most maxBlanks words.
func NewExerciseBuilder(maxBlanks int, rng *rand.Rand) *ExerciseBuilder {
	if maxBlanks <= 0 {
		maxBlanks = DefaultMaxBlanks
	}
	return &ExerciseBuilder{maxBlanks: maxBlanks, rng: rng}
}

// Build creates a fresh board for sentence in the given mode.
func (b *ExerciseBuilder) Build(mode entities.ExerciseMode, sentence entities.Sentence) *entities.Exercise {
	e := &entities.Exercise{
		Mode:     mode,
		Sentence: sentence,
	}

	var words []string
	if mode.IsOrdering() {
		words = append(words, sentence.Tokens...)
	} else {
		hidden := b.HiddenIndices(len(sentence.Tokens))
		e.Blanks = make([]entities.Blank, 0, len(hidden))
		for _, i := range hidden {
			e.Blanks = append(e.Blanks, entities.Blank{
				Index:    i,
				Expected: sentence.Tokens[i],
				TileID:   -1,
			})
			words = append(words, sentence.Tokens[i])
		}
	}

	b.rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	e.Tiles = make([]entities.Tile, len(words))
	for i, w := range words {
		e.Tiles[i] = entities.Tile{ID: i, Word: w}
	}

	return e
}

// HiddenIndices picks min(maxBlanks, n) distinct token positions, sorted.
func (b *ExerciseBuilder) HiddenIndices(n int) []int {
	k := min(b.maxBlanks, n)
	if k <= 0 {
		return nil
	}

	idx := b.rng.Perm(n)[:k]
	sort.Ints(idx)
	return idx
}
