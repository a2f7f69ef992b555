package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
	"github.com/aliskhannn/drill-bot/internal/repository"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func sampleEntries() []entities.GeographyEntry {
	return []entities.GeographyEntry{
		{Region: "아시아", Country: "대한민국", Fact: "수도는 서울이다", Category: "수도"},
		{Region: "아시아", Country: "일본", Fact: "수도는 도쿄이다", Category: "수도"},
		{Region: "유럽", Country: "프랑스", Fact: "에펠탑이 있다", Category: "랜드마크"},
		{Region: "유럽", Country: "프랑스", Fact: "수도는 파리이다", Category: "수도"},
		{Region: "아프리카", Country: "이집트", Fact: "피라미드가 있다", Category: "랜드마크"},
		{Region: "남미", Country: "브라질", Fact: "아마존 강이 흐른다"},
	}
}

func newTestPool(entries []entities.GeographyEntry, policy ExhaustionPolicy) (*QuestionPool, *repository.GeographyRepository) {
	rng := testRand()
	repo := repository.NewGeographyRepository(entries)
	return NewQuestionPool(repo, NewDistractorSampler(DefaultDistractors, rng), policy, rng), repo
}

func wrongOption(t *testing.T, q *entities.Question) string {
	t.Helper()
	for _, o := range q.Options {
		if o != q.CorrectAnswer {
			return o
		}
	}
	require.FailNow(t, "question has no wrong option")
	return ""
}

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) QuestionReady(sessionID string, q *entities.Question) {
	m.Called(sessionID, q)
}

func (m *mockObserver) Verdict(sessionID string, v Verdict) {
	m.Called(sessionID, v)
}

func (m *mockObserver) Exhausted(sessionID string, kind entities.QuestionKind) {
	m.Called(sessionID, kind)
}

func newMockObserver() *mockObserver {
	m := &mockObserver{}
	m.On("QuestionReady", mock.Anything, mock.Anything).Return().Maybe()
	m.On("Verdict", mock.Anything, mock.Anything).Return().Maybe()
	m.On("Exhausted", mock.Anything, mock.Anything).Return().Maybe()
	return m
}
