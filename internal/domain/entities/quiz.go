package entities

import (
	"math"
	"time"
)

// Session statuses.
const (
	SessionStatusActive   = "active"
	SessionStatusFinished = "finished"
)

// QuizSession holds the state of one geography game.
// It tracks score, asked questions, missed questions and the review cursor.
type QuizSession struct {
	ID            string       // ULID of the game, embedded in button callbacks
	Kind          QuestionKind // mode the game was started with
	Score         int          // correct answers outside review
	QuestionCount int          // questions drawn outside review
	WrongAnswers  []Question   // missed questions in the order they were missed
	ReviewMode    bool         // replaying WrongAnswers
	ReviewIndex   int          // next WrongAnswers position to replay
	Current       *Question    // question on screen, nil before the first draw
	Seq           int          // increments with every question put on screen
	Answered      bool         // Current has already been answered
	Status        string       // SessionStatusActive or SessionStatusFinished
	StartedAt     time.Time
	UpdatedAt     time.Time
}

// NewQuizSession creates an active session for the given mode.
func NewQuizSession(id string, kind QuestionKind) *QuizSession {
	now := time.Now()
	return &QuizSession{
		ID:        id,
		Kind:      kind,
		Status:    SessionStatusActive,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// IsActive reports whether questions may still be drawn or answered.
func (s *QuizSession) IsActive() bool {
	return s.Status == SessionStatusActive
}

// Finish marks the session as finished.
func (s *QuizSession) Finish() {
	s.Status = SessionStatusFinished
	s.UpdatedAt = time.Now()
}

// Accuracy returns the rounded percentage of correct answers, 0 if nothing was asked.
func (s *QuizSession) Accuracy() int {
	if s.QuestionCount <= 0 {
		return 0
	}
	return int(math.Round(float64(s.Score) / float64(s.QuestionCount) * 100))
}

// Summary is the end-of-game report.
type Summary struct {
	QuestionCount   int
	Score           int
	Accuracy        int
	WrongCount      int
	ReviewCompleted bool // the game ended after a review pass
}

// Summary builds the end-of-game report for the session.
func (s *QuizSession) Summary() Summary {
	return Summary{
		QuestionCount:   s.QuestionCount,
		Score:           s.Score,
		Accuracy:        s.Accuracy(),
		WrongCount:      len(s.WrongAnswers),
		ReviewCompleted: s.ReviewMode,
	}
}
