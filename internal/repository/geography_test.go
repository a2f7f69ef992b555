package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/drill-bot/internal/csvrecord"
)

const geoCSV4 = `"Region","Country","Fact","Category"
Asia,Korea,"Kimchi, a fermented dish",Food
Asia,Korea,Seoul is the capital,Capital
Europe,France,Eiffel Tower
Europe,,Orphan fact,Misc
`

const geoCSV3 = `Region,Country,Fact
Asia,Japan,Mount Fuji
`

func parseGeo(text string) []csvrecord.Record {
	return csvrecord.NewParser(GeographyParserOptions(','), nil).Parse(text)
}

func TestEntriesFromRecords_FourColumns(t *testing.T) {
	entries := EntriesFromRecords(parseGeo(geoCSV4), nil)

	require.Len(t, entries, 3)
	assert.Equal(t, "Kimchi, a fermented dish", entries[0].Fact)
	assert.Equal(t, "Food", entries[0].Category)
	assert.Equal(t, "France", entries[2].Country)
	assert.Empty(t, entries[2].Category, "short row is padded")
}

func TestEntriesFromRecords_ThreeColumns(t *testing.T) {
	entries := EntriesFromRecords(parseGeo(geoCSV3), nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "Japan", entries[0].Country)
	assert.Empty(t, entries[0].Category)
}

func TestGeographyRepository_Index(t *testing.T) {
	repo := NewGeographyRepository(EntriesFromRecords(parseGeo(geoCSV4), nil))

	assert.Equal(t, 3, repo.Len())
	assert.Equal(t, []string{"Korea", "France"}, repo.Countries())
	assert.Len(t, repo.FactsFor("Korea"), 2)
	assert.Empty(t, repo.FactsFor("Peru"))
	assert.Equal(t, "Eiffel Tower", repo.Entry(2).Fact)
}

func TestLoadGeography_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geography_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(geoCSV4), 0o600))

	parser := csvrecord.NewParser(GeographyParserOptions(','), nil)
	repo, err := LoadGeography(context.Background(), NewCSVSource(NewTextFetcher(path, nil), parser), nil)

	require.NoError(t, err)
	assert.Equal(t, 3, repo.Len())
}

func TestLoadGeography_MissingFileFailsSoft(t *testing.T) {
	parser := csvrecord.NewParser(GeographyParserOptions(','), nil)
	src := NewCSVSource(FileFetcher{Path: filepath.Join(t.TempDir(), "nope.csv")}, parser)

	repo, err := LoadGeography(context.Background(), src, nil)

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	require.NotNil(t, repo)
	assert.Equal(t, 0, repo.Len())
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/eng.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(engCSV))
	}))
	defer srv.Close()

	fetcher := NewTextFetcher(srv.URL+"/eng.csv", srv.Client())
	require.IsType(t, HTTPFetcher{}, fetcher)

	parser := csvrecord.NewParser(SentenceParserOptions(','), nil)
	bank, err := LoadSentenceBank(context.Background(), NewCSVSource(fetcher, parser))
	require.NoError(t, err)
	assert.Equal(t, 3, bank.Len())

	_, err = NewTextFetcher(srv.URL+"/missing.csv", srv.Client()).Fetch(context.Background())
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}
