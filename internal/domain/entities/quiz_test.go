package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizSession_Accuracy(t *testing.T) {
	tests := []struct {
		name  string
		score int
		count int
		want  int
	}{
		{name: "seven of ten", score: 7, count: 10, want: 70},
		{name: "nothing asked", score: 0, count: 0, want: 0},
		{name: "rounds half up", score: 1, count: 8, want: 13},
		{name: "two of three", score: 2, count: 3, want: 67},
		{name: "perfect", score: 4, count: 4, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewQuizSession("id", QuestionKindFactToCountry)
			s.Score = tt.score
			s.QuestionCount = tt.count
			assert.Equal(t, tt.want, s.Accuracy())
		})
	}
}

func TestBuildFactSheet(t *testing.T) {
	entries := []GeographyEntry{
		{Region: "Asia", Country: "Korea", Fact: "Kimchi", Category: "Food"},
		{Region: "Europe", Country: "France", Fact: "Baguette", Category: "Food"},
		{Region: "Asia", Country: "Korea", Fact: "Seoul", Category: "Capital"},
		{Region: "East Asia", Country: "Korea", Fact: "Bibimbap", Category: "Food"},
	}

	sheet := BuildFactSheet("Korea", entries)

	assert.Equal(t, []string{"Asia", "East Asia"}, sheet.Regions)
	assert.Equal(t, []CategoryFacts{
		{Category: "Food", Facts: []string{"Kimchi", "Bibimbap"}},
		{Category: "Capital", Facts: []string{"Seoul"}},
	}, sheet.Categories)
	assert.Contains(t, sheet.String(), "Korea의 모든 특징:")
	assert.Contains(t, sheet.String(), "Food:\nKimchi\nBibimbap")
}

func TestGeographyEntry_Explanation(t *testing.T) {
	withCategory := GeographyEntry{Region: "Asia", Country: "Korea", Fact: "Kimchi", Category: "Food"}
	assert.Equal(t, "Korea에 대한 정보입니다.\n\n지역: Asia\n분류: Food\n설명: Kimchi", withCategory.Explanation())

	noCategory := GeographyEntry{Region: "Asia", Country: "Korea", Fact: "Kimchi"}
	assert.NotContains(t, noCategory.Explanation(), "분류")
	assert.Equal(t, "기타", CategoryFacts{}.Label())
}
