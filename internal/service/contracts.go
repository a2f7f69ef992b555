package service

import (
	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

// GeographyRepository gives read access to the geography dataset.
type GeographyRepository interface {
	Len() int
	Entry(i int) entities.GeographyEntry
	Entries() []entities.GeographyEntry
	Countries() []string
	FactsFor(country string) []entities.GeographyEntry
}

// SentenceRepository gives read access to the English sentences.
type SentenceRepository interface {
	Len() int
	Get(i int) (*entities.Sentence, error)
}

// GameObserver receives the events a game emits. Implementations must not
// block; they are called on the event loop.
type GameObserver interface {
	QuestionReady(sessionID string, q *entities.Question)
	Verdict(sessionID string, v Verdict)
	Exhausted(sessionID string, kind entities.QuestionKind)
}

// Verdict is the outcome of a checked answer.
type Verdict struct {
	Correct       bool
	Score         int // geography score, unchanged in review
	QuestionCount int // geography questions asked
	WrongAttempts int // English failed attempts on the current sentence
}
