package service

import (
	"math/rand"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

// DefaultDistractors is the number of wrong options per question.
const DefaultDistractors = 3

// DistractorSampler picks wrong options for multiple-choice questions.
type DistractorSampler struct {
	count int
	rng   *rand.Rand
}

// NewDistractorSampler creates a sampler returning up to count distractors.
func NewDistractorSampler(count int, rng *rand.Rand) *DistractorSampler {
	if count <= 0 {
		count = DefaultDistractors
	}
	return &DistractorSampler{count: count, rng: rng}
}

// Countries samples distinct countries other than correct.
func (s *DistractorSampler) Countries(countries []string, correct string) []string {
	candidates := uniqueExcept(countries, correct)
	return s.pick(candidates)
}

// Facts samples distinct facts of entries whose country differs from
// correctCountry. A fact equal to correctFact is never returned.
func (s *DistractorSampler) Facts(entries []entities.GeographyEntry, correctCountry, correctFact string) []string {
	facts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Country != correctCountry {
			facts = append(facts, e.Fact)
		}
	}
	return s.pick(uniqueExcept(facts, correctFact))
}

// BuildOptions shuffles the correct answer in with the distractors.
func (s *DistractorSampler) BuildOptions(correct string, distractors []string) []string {
	options := make([]string, 0, 1+len(distractors))
	options = append(options, correct)
	options = append(options, distractors...)

	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}

// pick shuffles candidates and keeps the first count of them.
func (s *DistractorSampler) pick(candidates []string) []string {
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) <= s.count {
		return candidates
	}
	return candidates[:s.count]
}

// uniqueExcept removes duplicates and the excluded value, keeping the first-seen order.
func uniqueExcept(values []string, exclude string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == exclude {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
