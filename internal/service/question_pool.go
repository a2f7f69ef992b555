package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

var (
	ErrNoQuestions     = errors.New("no questions available")
	ErrPoolExhausted   = errors.New("question pool exhausted")
	ErrUnknownQuestion = errors.New("unknown question kind")
)

// ExhaustionPolicy decides what a draw from an empty pool does.
type ExhaustionPolicy int

const (
	// RefillOnExhaustion refills the pool with every entry and keeps drawing.
	RefillOnExhaustion ExhaustionPolicy = iota
	// EndOnExhaustion reports ErrPoolExhausted until the pool is Reset.
	EndOnExhaustion
)

// QuestionPool draws geography questions without repetition. Each question
// kind has its own pool of entry indices that have not been asked yet.
type QuestionPool struct {
	repo    GeographyRepository
	sampler *DistractorSampler
	policy  ExhaustionPolicy
	rng     *rand.Rand

	pools map[entities.QuestionKind][]int
}

// NewQuestionPool creates a pool with both kinds filled.
func NewQuestionPool(
	repo GeographyRepository,
	sampler *DistractorSampler,
	policy ExhaustionPolicy,
	rng *rand.Rand,
) *QuestionPool {
	p := &QuestionPool{
		repo:    repo,
		sampler: sampler,
		policy:  policy,
		rng:     rng,
	}
	p.Reset()
	return p
}

// Reset refills the pools of every kind.
func (p *QuestionPool) Reset() {
	p.pools = map[entities.QuestionKind][]int{
		entities.QuestionKindFactToCountry: p.fullPool(),
		entities.QuestionKindCountryToFact: p.fullPool(),
	}
}

// Remaining returns how many entries of kind have not been drawn since the last refill.
func (p *QuestionPool) Remaining(kind entities.QuestionKind) int {
	return len(p.pools[kind])
}

// DrawFactToCountry draws a question that shows a fact and asks for the country.
func (p *QuestionPool) DrawFactToCountry() (*entities.Question, error) {
	return p.Draw(entities.QuestionKindFactToCountry)
}

// DrawCountryToFact draws a question that shows a country and asks for one of its facts.
func (p *QuestionPool) DrawCountryToFact() (*entities.Question, error) {
	return p.Draw(entities.QuestionKindCountryToFact)
}

// Draw removes a random entry from the pool of kind and builds a question for it.
func (p *QuestionPool) Draw(kind entities.QuestionKind) (*entities.Question, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, kind)
	}
	if p.repo.Len() == 0 {
		return nil, ErrNoQuestions
	}

	idx, err := p.take(kind)
	if err != nil {
		return nil, err
	}

	entry := p.repo.Entry(idx)
	if kind == entities.QuestionKindFactToCountry {
		return p.factToCountry(entry), nil
	}
	return p.countryToFact(entry), nil
}

// take removes and returns a uniformly chosen index from the pool of kind.
func (p *QuestionPool) take(kind entities.QuestionKind) (int, error) {
	pool := p.pools[kind]
	if len(pool) == 0 {
		if p.policy == EndOnExhaustion {
			return 0, ErrPoolExhausted
		}
		pool = p.fullPool()
	}

	i := p.rng.Intn(len(pool))
	idx := pool[i]
	pool[i] = pool[len(pool)-1]
	p.pools[kind] = pool[:len(pool)-1]

	return idx, nil
}

func (p *QuestionPool) fullPool() []int {
	pool := make([]int, p.repo.Len())
	for i := range pool {
		pool[i] = i
	}
	return pool
}

func (p *QuestionPool) factToCountry(entry entities.GeographyEntry) *entities.Question {
	distractors := p.sampler.Countries(p.repo.Countries(), entry.Country)

	return &entities.Question{
		Kind:          entities.QuestionKindFactToCountry,
		Prompt:        fmt.Sprintf("다음 설명에 해당하는 나라는 어디일까요?\n\n%s", entry.Fact),
		Subject:       entry.Fact,
		Country:       entry.Country,
		CorrectAnswer: entry.Country,
		Options:       p.sampler.BuildOptions(entry.Country, distractors),
		Explanation:   entry.Explanation(),
	}
}

func (p *QuestionPool) countryToFact(entry entities.GeographyEntry) *entities.Question {
	country := entry.Country

	facts := p.repo.FactsFor(country)
	correct := entry
	if len(facts) > 0 {
		correct = facts[p.rng.Intn(len(facts))]
	}

	distractors := p.sampler.Facts(p.repo.Entries(), country, correct.Fact)

	return &entities.Question{
		Kind:          entities.QuestionKindCountryToFact,
		Prompt:        fmt.Sprintf("다음 설명 중 '%s'에 대한 설명은 무엇일까요?", country),
		Subject:       country,
		Country:       country,
		CorrectAnswer: correct.Fact,
		Options:       p.sampler.BuildOptions(correct.Fact, distractors),
		Explanation:   correct.Explanation(),
	}
}
