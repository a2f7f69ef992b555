package repository

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/drill-bot/internal/csvrecord"
	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

// Header names of the geography dataset. Category is optional.
const (
	FieldRegion   = "Region"
	FieldCountry  = "Country"
	FieldFact     = "Fact"
	FieldCategory = "Category"
)

// GeographyParserOptions reads the geography dataset by its own header line,
// so both the 3-column and the 4-column schema are accepted. Short rows are
// padded and rows without a country or fact are dropped later.
func GeographyParserOptions(delim rune) csvrecord.Options {
	return csvrecord.Options{
		Delimiter: delim,
		ShortRows: csvrecord.ShortRowPad,
		LongRows:  csvrecord.LongRowDrop,
	}
}

// EntriesFromRecords converts records into geography entries.
func EntriesFromRecords(records []csvrecord.Record, logger *zap.Logger) []entities.GeographyEntry {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries := make([]entities.GeographyEntry, 0, len(records))
	for i, rec := range records {
		e := entities.GeographyEntry{
			Region:   rec.Get(FieldRegion),
			Country:  rec.Get(FieldCountry),
			Fact:     rec.Get(FieldFact),
			Category: rec.Get(FieldCategory),
		}
		if e.Country == "" || e.Fact == "" {
			logger.Debug("dropping geography row without country or fact", zap.Int("row", i+1))
			continue
		}
		entries = append(entries, e)
	}

	return entries
}

// GeographyRepository keeps the geography entries in memory, indexed by country.
type GeographyRepository struct {
	entries   []entities.GeographyEntry
	countries []string
	byCountry map[string][]int
}

// NewGeographyRepository creates a repository over entries.
func NewGeographyRepository(entries []entities.GeographyEntry) *GeographyRepository {
	r := &GeographyRepository{
		entries:   entries,
		byCountry: make(map[string][]int),
	}

	for i, e := range entries {
		if _, ok := r.byCountry[e.Country]; !ok {
			r.countries = append(r.countries, e.Country)
		}
		r.byCountry[e.Country] = append(r.byCountry[e.Country], i)
	}

	return r
}

// Len returns the number of entries.
func (r *GeographyRepository) Len() int {
	return len(r.entries)
}

// Entry returns the entry at index i. i must be in [0, Len()).
func (r *GeographyRepository) Entry(i int) entities.GeographyEntry {
	return r.entries[i]
}

// Entries returns all entries in source order.
func (r *GeographyRepository) Entries() []entities.GeographyEntry {
	return r.entries
}

// Countries returns the distinct countries in first-seen order.
func (r *GeographyRepository) Countries() []string {
	return r.countries
}

// FactsFor returns the entries of country in source order.
func (r *GeographyRepository) FactsFor(country string) []entities.GeographyEntry {
	idx := r.byCountry[country]
	out := make([]entities.GeographyEntry, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.entries[i])
	}
	return out
}
