package entities

// QuestionKind is the direction of a geography multiple-choice question.
type QuestionKind string

const (
	QuestionKindFactToCountry QuestionKind = "fact_to_country" // fact shown, pick the country
	QuestionKindCountryToFact QuestionKind = "country_to_fact" // country shown, pick the fact
)

// Valid reports whether k is a known question kind.
func (k QuestionKind) Valid() bool {
	return k == QuestionKindFactToCountry || k == QuestionKindCountryToFact
}

// Question is a single multiple-choice geography question.
// It is never mutated after construction.
type Question struct {
	Kind          QuestionKind
	Prompt        string   // question text
	Subject       string   // the fact or country the prompt is built around
	Country       string   // country the question is about, used for the fact sheet
	CorrectAnswer string   // exact text of the correct option
	Options       []string // distinct options, correct one included exactly once
	Explanation   string   // shown after answering
}

// CorrectIndex returns the position of the correct answer in Options, or -1.
func (q *Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

// Option returns the option at index i and whether it exists.
func (q *Question) Option(i int) (string, bool) {
	if i < 0 || i >= len(q.Options) {
		return "", false
	}
	return q.Options[i], true
}
