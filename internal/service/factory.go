package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrDatasetUnavailable means the dataset of an exercise failed to load at startup.
var ErrDatasetUnavailable = errors.New("dataset unavailable")

// GameSettings tunes the games built by GameFactory.
type GameSettings struct {
	Distractors     int
	EndOnExhaustion bool
	MaxBlanks       int
	RevealAfter     int
}

// GameFactory builds per-chat games over the shared, read-only datasets.
type GameFactory struct {
	geography    GeographyRepository
	geographyErr error
	sentences    SentenceRepository
	sentencesErr error
	settings     GameSettings
	observer     GameObserver
	seed         func() int64
}

// NewGameFactory creates a factory. geographyErr and sentencesErr are the
// load errors of the datasets; a non-nil one disables that exercise.
func NewGameFactory(
	geography GeographyRepository,
	geographyErr error,
	sentences SentenceRepository,
	sentencesErr error,
	settings GameSettings,
	observer GameObserver,
) *GameFactory {
	return &GameFactory{
		geography:    geography,
		geographyErr: geographyErr,
		sentences:    sentences,
		sentencesErr: sentencesErr,
		settings:     settings,
		observer:     observer,
		seed:         func() int64 { return time.Now().UnixNano() },
	}
}

// GeographyReady returns the geography load error, if any.
func (f *GameFactory) GeographyReady() error {
	if f.geographyErr != nil {
		return fmt.Errorf("%w: %w", ErrDatasetUnavailable, f.geographyErr)
	}
	return nil
}

// EnglishReady returns the English load error, if any.
func (f *GameFactory) EnglishReady() error {
	if f.sentencesErr != nil {
		return fmt.Errorf("%w: %w", ErrDatasetUnavailable, f.sentencesErr)
	}
	return nil
}

// NewGeographyQuiz builds a geography game with its own random source.
func (f *GameFactory) NewGeographyQuiz() *GeographyQuiz {
	rng := rand.New(rand.NewSource(f.seed()))

	policy := RefillOnExhaustion
	if f.settings.EndOnExhaustion {
		policy = EndOnExhaustion
	}

	sampler := NewDistractorSampler(f.settings.Distractors, rng)
	pool := NewQuestionPool(f.geography, sampler, policy, rng)

	return NewGeographyQuiz(f.geography, pool, NewAnswerEvaluator(), f.observer)
}

// NewEnglishDrill builds an English drill with its own random source.
func (f *GameFactory) NewEnglishDrill() *EnglishDrill {
	rng := rand.New(rand.NewSource(f.seed()))

	return NewEnglishDrill(
		f.sentences,
		NewExerciseBuilder(f.settings.MaxBlanks, rng),
		NewAnswerEvaluator(),
		f.observer,
		f.settings.RevealAfter,
		rng,
	)
}
