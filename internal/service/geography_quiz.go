package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

var (
	ErrNoActiveGame    = errors.New("no active game")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrInvalidOption   = errors.New("invalid option")
	ErrNoWrongAnswers  = errors.New("no wrong answers to review")
	ErrReviewFinished  = errors.New("review finished")
	ErrStaleQuestion   = errors.New("question is no longer on screen")
	ErrGameInProgress  = errors.New("game still in progress")
)

// AnswerResult is what the player sees after picking an option.
type AnswerResult struct {
	Correct       bool
	Selected      string
	CorrectAnswer string
	Explanation   string
	FactSheet     *entities.FactSheet // every fact of the country, set on a wrong answer
	Score         int
	QuestionCount int
	ReviewMode    bool
	AutoAdvance   bool // the next question follows automatically
}

// GeographyQuiz runs the geography multiple-choice game for one player.
// All methods must be called from a single goroutine.
type GeographyQuiz struct {
	repo      GeographyRepository
	pool      *QuestionPool
	evaluator *AnswerEvaluator
	observer  GameObserver

	session *entities.QuizSession
}

// NewGeographyQuiz creates a game without an active session.
func NewGeographyQuiz(
	repo GeographyRepository,
	pool *QuestionPool,
	evaluator *AnswerEvaluator,
	observer GameObserver,
) *GeographyQuiz {
	if observer == nil {
		observer = nopObserver{}
	}
	return &GeographyQuiz{
		repo:      repo,
		pool:      pool,
		evaluator: evaluator,
		observer:  observer,
	}
}

// StartGame starts a fresh session in kind, resets the pools and draws the first question.
func (g *GeographyQuiz) StartGame(kind entities.QuestionKind) (*entities.Question, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, kind)
	}

	g.session = entities.NewQuizSession(NewSessionID(), kind)
	g.pool.Reset()

	return g.LoadNewQuestion()
}

// LoadNewQuestion puts the next question on screen: the next missed question
// in review mode, a fresh draw otherwise. The session finishes when nothing
// can be drawn.
func (g *GeographyQuiz) LoadNewQuestion() (*entities.Question, error) {
	s := g.session
	if s == nil || !s.IsActive() {
		return nil, ErrNoActiveGame
	}

	var q *entities.Question
	if s.ReviewMode {
		if s.ReviewIndex >= len(s.WrongAnswers) {
			s.Finish()
			return nil, ErrReviewFinished
		}
		missed := s.WrongAnswers[s.ReviewIndex]
		q = &missed
		s.ReviewIndex++
	} else {
		drawn, err := g.pool.Draw(s.Kind)
		if err != nil {
			if errors.Is(err, ErrPoolExhausted) {
				g.observer.Exhausted(s.ID, s.Kind)
			}
			s.Finish()
			return nil, err
		}
		q = drawn
		s.QuestionCount++
	}

	s.Current = q
	s.Seq++
	s.Answered = false
	s.UpdatedAt = time.Now()

	g.observer.QuestionReady(s.ID, q)

	return q, nil
}

// CheckOption answers the current question with the option at index i.
func (g *GeographyQuiz) CheckOption(i int) (*AnswerResult, error) {
	s := g.session
	if s == nil || s.Current == nil {
		return nil, ErrNoActiveGame
	}

	opt, ok := s.Current.Option(i)
	if !ok {
		return nil, ErrInvalidOption
	}
	return g.CheckAnswer(opt)
}

// CheckAnswer answers the current question. Outside review a correct answer
// scores and a wrong one is remembered for review. Only the first answer to
// a question counts; later ones return ErrAlreadyAnswered.
func (g *GeographyQuiz) CheckAnswer(selected string) (*AnswerResult, error) {
	s := g.session
	if s == nil || !s.IsActive() || s.Current == nil {
		return nil, ErrNoActiveGame
	}
	if s.Answered {
		return nil, ErrAlreadyAnswered
	}
	s.Answered = true
	s.UpdatedAt = time.Now()

	q := s.Current
	correct := g.evaluator.CheckChoice(q, selected)

	if !s.ReviewMode {
		if correct {
			s.Score++
		} else {
			s.WrongAnswers = append(s.WrongAnswers, *q)
		}
	}

	res := &AnswerResult{
		Correct:       correct,
		Selected:      selected,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Score:         s.Score,
		QuestionCount: s.QuestionCount,
		ReviewMode:    s.ReviewMode,
		AutoAdvance:   correct,
	}
	if !correct && q.Country != "" {
		sheet := entities.BuildFactSheet(q.Country, g.repo.FactsFor(q.Country))
		res.FactSheet = &sheet
	}

	g.observer.Verdict(s.ID, Verdict{
		Correct:       correct,
		Score:         s.Score,
		QuestionCount: s.QuestionCount,
	})

	return res, nil
}

// EndGame finishes the session and returns its summary.
func (g *GeographyQuiz) EndGame() (entities.Summary, error) {
	s := g.session
	if s == nil {
		return entities.Summary{}, ErrNoActiveGame
	}
	s.Finish()
	return s.Summary(), nil
}

// ShowReview replays the missed questions without touching the score.
// It is only available once the game has ended.
func (g *GeographyQuiz) ShowReview() (*entities.Question, error) {
	s := g.session
	if s == nil {
		return nil, ErrNoActiveGame
	}
	if s.IsActive() {
		return nil, ErrGameInProgress
	}
	if len(s.WrongAnswers) == 0 {
		return nil, ErrNoWrongAnswers
	}

	s.ReviewMode = true
	s.ReviewIndex = 0
	s.Status = entities.SessionStatusActive

	return g.LoadNewQuestion()
}

// RestartGame drops the session; the next game starts with StartGame.
func (g *GeographyQuiz) RestartGame() {
	g.session = nil
}

// IsCurrent reports whether the question with seq of session sessionID is still on screen.
func (g *GeographyQuiz) IsCurrent(sessionID string, seq int) bool {
	s := g.session
	return s != nil && s.IsActive() && s.ID == sessionID && s.Seq == seq
}

// Session returns the current session, or nil.
func (g *GeographyQuiz) Session() *entities.QuizSession {
	return g.session
}
