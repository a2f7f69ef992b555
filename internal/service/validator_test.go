package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

func TestAnswerEvaluator_CheckBlanks(t *testing.T) {
	tests := []struct {
		name   string
		blanks []entities.Blank
		want   bool
	}{
		{"exact", []entities.Blank{{Expected: "love", Filled: "love"}}, true},
		{"case sensitive", []entities.Blank{{Expected: "love", Filled: "Love"}}, false},
		{"trimmed", []entities.Blank{{Expected: "love", Filled: " love "}}, true},
		{"empty blank", []entities.Blank{{Expected: "love"}}, false},
		{"one wrong of two", []entities.Blank{
			{Expected: "I", Filled: "I"},
			{Expected: "you", Filled: "love"},
		}, false},
		{"no blanks", nil, true},
	}

	v := NewAnswerEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.CheckBlanks(tt.blanks))
		})
	}
}

func TestAnswerEvaluator_CheckOrder(t *testing.T) {
	original := []string{"I", "love", "you"}

	tests := []struct {
		name   string
		placed []string
		want   bool
	}{
		{"same order", []string{"I", "love", "you"}, true},
		{"swapped", []string{"love", "I", "you"}, false},
		{"too short", []string{"I", "love"}, false},
		{"too long", []string{"I", "love", "you", "you"}, false},
		{"case differs", []string{"i", "love", "you"}, false},
	}

	v := NewAnswerEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.CheckOrder(original, tt.placed))
		})
	}
}

func TestAnswerEvaluator_CheckChoice(t *testing.T) {
	q := &entities.Question{CorrectAnswer: "프랑스", Options: []string{"일본", "프랑스"}}

	v := NewAnswerEvaluator()
	assert.True(t, v.CheckChoice(q, "프랑스"))
	assert.False(t, v.CheckChoice(q, "일본"))
	assert.False(t, v.CheckChoice(q, "프랑스 "))
}
