package repository

import (
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/drill-bot/internal/csvrecord"
	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

var (
	ErrSentenceNotFound = errors.New("sentence not found")
	ErrNoSentences      = errors.New("no sentences loaded")
)

// Field names of the English dataset.
const (
	FieldSentenceID   = "id"
	FieldSentenceType = "type"
	FieldSentenceText = "text"
)

// SentenceParserOptions reads the English dataset positionally. Unquoted
// commas in the text column are kept as part of the sentence text.
func SentenceParserOptions(delim rune) csvrecord.Options {
	return csvrecord.Options{
		Delimiter:  delim,
		Headers:    []string{FieldSentenceID, FieldSentenceType, FieldSentenceText},
		SkipHeader: true,
		ShortRows:  csvrecord.ShortRowDrop,
		LongRows:   csvrecord.LongRowJoinTail,
	}
}

// ParseSentenceCSV parses raw English dataset text into sentences.
func ParseSentenceCSV(raw string, logger *zap.Logger) []entities.Sentence {
	p := csvrecord.NewParser(SentenceParserOptions(csvrecord.DefaultDelimiter), logger)
	return ParseSentences(p.Parse(raw))
}

// ParseSentences groups consecutive records sharing an id into sentences.
// An original-type record appends a token, a translation-type record sets the
// translation, other types only take part in grouping.
func ParseSentences(records []csvrecord.Record) []entities.Sentence {
	var (
		result  []entities.Sentence
		current entities.Sentence
		lastID  string
		seen    bool
	)

	for _, rec := range records {
		id := rec.Get(FieldSentenceID)

		if seen && id != lastID {
			result = append(result, current)
			current = entities.Sentence{}
		}
		current.ID = id

		switch rec.Get(FieldSentenceType) {
		case entities.SentenceTypeOriginal:
			current.Tokens = append(current.Tokens, rec.Get(FieldSentenceText))
		case entities.SentenceTypeTranslation:
			current.Translation = rec.Get(FieldSentenceText)
		}

		lastID = id
		seen = true
	}

	if seen {
		result = append(result, current)
	}

	return result
}

// SentenceBank keeps the English sentences in memory.
type SentenceBank struct {
	sentences []entities.Sentence
}

// NewSentenceBank creates a SentenceBank over the given sentences.
func NewSentenceBank(sentences []entities.Sentence) *SentenceBank {
	return &SentenceBank{sentences: sentences}
}

// Len returns the number of sentences.
func (b *SentenceBank) Len() int {
	return len(b.sentences)
}

// Get returns the sentence at index i.
func (b *SentenceBank) Get(i int) (*entities.Sentence, error) {
	if len(b.sentences) == 0 {
		return nil, ErrNoSentences
	}
	if i < 0 || i >= len(b.sentences) {
		return nil, ErrSentenceNotFound
	}
	s := b.sentences[i]
	return &s, nil
}

// All returns every sentence in source order.
func (b *SentenceBank) All() []entities.Sentence {
	return b.sentences
}
