package service

import (
	"strings"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

// AnswerEvaluator checks submitted answers. Every comparison is exact and
// case-sensitive; only blank contents are trimmed.
type AnswerEvaluator struct{}

// NewAnswerEvaluator creates a new AnswerEvaluator.
func NewAnswerEvaluator() *AnswerEvaluator {
	return &AnswerEvaluator{}
}

// CheckBlanks reports whether every blank holds its expected word.
func (v *AnswerEvaluator) CheckBlanks(blanks []entities.Blank) bool {
	for _, b := range blanks {
		if strings.TrimSpace(b.Filled) != strings.TrimSpace(b.Expected) {
			return false
		}
	}
	return true
}

// CheckOrder reports whether placed rebuilds original token by token.
func (v *AnswerEvaluator) CheckOrder(original, placed []string) bool {
	if len(placed) != len(original) {
		return false
	}
	for i := range original {
		if placed[i] != original[i] {
			return false
		}
	}
	return true
}

// CheckChoice reports whether selected is the correct option of q.
func (v *AnswerEvaluator) CheckChoice(q *entities.Question, selected string) bool {
	return selected == q.CorrectAnswer
}

// CheckExercise evaluates an English board according to its mode.
func (v *AnswerEvaluator) CheckExercise(e *entities.Exercise) bool {
	if e.Mode.IsOrdering() {
		return v.CheckOrder(e.Sentence.Tokens, e.PlacedWords())
	}
	return v.CheckBlanks(e.Blanks)
}
