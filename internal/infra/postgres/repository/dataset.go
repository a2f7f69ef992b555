package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/drill-bot/internal/csvrecord"
	"github.com/aliskhannn/drill-bot/internal/domain/entities"
	"github.com/aliskhannn/drill-bot/internal/infra/postgres"
	"github.com/aliskhannn/drill-bot/internal/repository"
)

// GeographySource reads geography facts from the geography_facts table:
//
//	id BIGSERIAL, region TEXT, country TEXT, fact TEXT, category TEXT NULL
type GeographySource struct {
	db postgres.DBTX
}

// NewGeographySource creates a new GeographySource.
func NewGeographySource(db postgres.DBTX) *GeographySource {
	return &GeographySource{db: db}
}

// Records returns one record per row, in id order, shaped like the CSV dataset.
func (s *GeographySource) Records(ctx context.Context) ([]csvrecord.Record, error) {
	query := `
		SELECT region, country, fact, COALESCE(category, '')
		FROM geography_facts
		ORDER BY id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query geography facts: %v", repository.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var records []csvrecord.Record
	for rows.Next() {
		var e entities.GeographyEntry
		if err := rows.Scan(&e.Region, &e.Country, &e.Fact, &e.Category); err != nil {
			return nil, fmt.Errorf("scan geography fact: %w", err)
		}
		records = append(records, GeographyRecord(e))
	}

	return records, rows.Err()
}

// GeographyRecord maps a row onto the CSV header names.
func GeographyRecord(e entities.GeographyEntry) csvrecord.Record {
	return csvrecord.Record{
		repository.FieldRegion:   e.Region,
		repository.FieldCountry:  e.Country,
		repository.FieldFact:     e.Fact,
		repository.FieldCategory: e.Category,
	}
}

// SentenceSource reads sentence tokens from the sentence_tokens table:
//
//	sentence_id TEXT, position INT, kind TEXT ('원문' | '해석'), text TEXT
type SentenceSource struct {
	db postgres.DBTX
}

// NewSentenceSource creates a new SentenceSource.
func NewSentenceSource(db postgres.DBTX) *SentenceSource {
	return &SentenceSource{db: db}
}

// Records returns the token rows grouped by sentence, in position order.
func (s *SentenceSource) Records(ctx context.Context) ([]csvrecord.Record, error) {
	query := `
		SELECT sentence_id, kind, text
		FROM sentence_tokens
		ORDER BY sentence_id, position
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query sentence tokens: %v", repository.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var records []csvrecord.Record
	for rows.Next() {
		var id, kind, text string
		if err := rows.Scan(&id, &kind, &text); err != nil {
			return nil, fmt.Errorf("scan sentence token: %w", err)
		}
		records = append(records, SentenceRecord(id, kind, text))
	}

	return records, rows.Err()
}

// SentenceRecord maps a row onto the English dataset fields.
func SentenceRecord(id, kind, text string) csvrecord.Record {
	return csvrecord.Record{
		repository.FieldSentenceID:   id,
		repository.FieldSentenceType: kind,
		repository.FieldSentenceText: text,
	}
}
