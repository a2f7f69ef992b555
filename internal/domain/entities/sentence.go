package entities

import "strings"

// Sentence record types in the English dataset.
const (
	SentenceTypeOriginal    = "원문" // one token of the original sentence
	SentenceTypeTranslation = "해석" // the Korean translation
)

// Sentence is an English sentence split into tokens, with its translation.
type Sentence struct {
	ID          string
	Tokens      []string // in source order
	Translation string
}

// Text joins the tokens back into the full sentence.
func (s Sentence) Text() string {
	return strings.Join(s.Tokens, " ")
}
