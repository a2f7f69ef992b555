package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

// DefaultRevealAfter is the number of failed checks after which the answer is shown.
const DefaultRevealAfter = 3

var (
	ErrNoSentences   = errors.New("no sentences available")
	ErrNoExercise    = errors.New("no active exercise")
	ErrUnknownMode   = errors.New("unknown exercise mode")
	ErrAlreadySolved = errors.New("exercise already solved")
)

// DrillResult is the outcome of checking an English exercise.
type DrillResult struct {
	Correct       bool
	WrongAttempts int
	Reveal        string // full sentence, set once WrongAttempts reaches the reveal threshold
}

// EnglishDrill runs the sentence reconstruction exercise for one player.
type EnglishDrill struct {
	bank        SentenceRepository
	builder     *ExerciseBuilder
	evaluator   *AnswerEvaluator
	observer    GameObserver
	revealAfter int
	rng         *rand.Rand

	id      string
	seq     int
	mode    entities.ExerciseMode
	current *entities.Exercise
	solved  int
}

// NewEnglishDrill creates a drill over bank.
func NewEnglishDrill(
	bank SentenceRepository,
	builder *ExerciseBuilder,
	evaluator *AnswerEvaluator,
	observer GameObserver,
	revealAfter int,
	rng *rand.Rand,
) *EnglishDrill {
	if revealAfter <= 0 {
		revealAfter = DefaultRevealAfter
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &EnglishDrill{
		bank:        bank,
		builder:     builder,
		evaluator:   evaluator,
		observer:    observer,
		revealAfter: revealAfter,
		rng:         rng,
	}
}

// Start begins a drill in mode and returns the first exercise.
func (d *EnglishDrill) Start(mode entities.ExerciseMode) (*entities.Exercise, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	d.id = NewSessionID()
	d.mode = mode
	d.current = nil
	d.solved = 0

	return d.Next()
}

// Next replaces the current exercise with one for a random sentence.
// The wrong-attempt counter starts over.
func (d *EnglishDrill) Next() (*entities.Exercise, error) {
	if !d.mode.Valid() {
		return nil, ErrNoExercise
	}
	if d.bank.Len() == 0 {
		return nil, ErrNoSentences
	}

	sentence, err := d.bank.Get(d.rng.Intn(d.bank.Len()))
	if err != nil {
		return nil, fmt.Errorf("get sentence: %w", err)
	}

	d.current = d.builder.Build(d.mode, *sentence)
	d.seq++
	return d.current, nil
}

// Check evaluates the current board. A failure increments the wrong-attempt
// counter; a success freezes the board until Next is called.
func (d *EnglishDrill) Check() (DrillResult, error) {
	e := d.current
	if e == nil {
		return DrillResult{}, ErrNoExercise
	}
	if e.Solved {
		return DrillResult{Correct: true, WrongAttempts: e.WrongAttempts}, ErrAlreadySolved
	}

	res := DrillResult{}
	if d.evaluator.CheckExercise(e) {
		e.Solved = true
		d.solved++
		res.Correct = true
	} else {
		e.WrongAttempts++
		if e.WrongAttempts >= d.revealAfter {
			res.Reveal = e.Sentence.Text()
		}
	}
	res.WrongAttempts = e.WrongAttempts

	d.observer.Verdict(d.id, Verdict{Correct: res.Correct, WrongAttempts: res.WrongAttempts})

	return res, nil
}

// ID returns the identifier of the drill started last.
func (d *EnglishDrill) ID() string {
	return d.id
}

// Seq returns the number of the exercise on screen.
func (d *EnglishDrill) Seq() int {
	return d.seq
}

// IsCurrent reports whether exercise seq of drill id is still on screen.
func (d *EnglishDrill) IsCurrent(id string, seq int) bool {
	return d.current != nil && d.id == id && d.seq == seq
}

// Current returns the exercise on screen, or nil.
func (d *EnglishDrill) Current() *entities.Exercise {
	return d.current
}

// Mode returns the mode the drill was started with.
func (d *EnglishDrill) Mode() entities.ExerciseMode {
	return d.mode
}

// Solved returns how many sentences were solved since Start.
func (d *EnglishDrill) Solved() int {
	return d.solved
}
