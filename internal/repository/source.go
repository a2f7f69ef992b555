package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/drill-bot/internal/csvrecord"
)

var ErrSourceUnavailable = errors.New("dataset source unavailable")

// TextFetcher returns the raw text of a dataset.
type TextFetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// RecordSource yields dataset records.
type RecordSource interface {
	Records(ctx context.Context) ([]csvrecord.Record, error)
}

// FileFetcher reads a dataset from the local filesystem.
type FileFetcher struct {
	Path string
}

// Fetch reads the whole file.
func (f FileFetcher) Fetch(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrSourceUnavailable, f.Path, err)
	}
	return string(data), nil
}

// HTTPFetcher downloads a dataset with a single GET request.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// Fetch performs the GET request. Any non-2xx status is an error.
func (f HTTPFetcher) Fetch(ctx context.Context) (string, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: get %s: %v", ErrSourceUnavailable, f.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: get %s: status %d", ErrSourceUnavailable, f.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrSourceUnavailable, err)
	}
	return string(body), nil
}

// NewTextFetcher picks a fetcher for location: http(s) URLs are downloaded,
// anything else is read as a file path.
func NewTextFetcher(location string, client *http.Client) TextFetcher {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return HTTPFetcher{URL: location, Client: client}
	}
	return FileFetcher{Path: location}
}

// CSVSource parses fetched text into records.
type CSVSource struct {
	fetcher TextFetcher
	parser  *csvrecord.Parser
}

// NewCSVSource creates a CSVSource.
func NewCSVSource(fetcher TextFetcher, parser *csvrecord.Parser) *CSVSource {
	return &CSVSource{fetcher: fetcher, parser: parser}
}

// Records fetches and parses the dataset.
func (s *CSVSource) Records(ctx context.Context) ([]csvrecord.Record, error) {
	text, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return s.parser.Parse(text), nil
}

// LoadSentenceBank builds the sentence bank from src. On failure it returns an
// empty bank together with the error, so callers can keep running.
func LoadSentenceBank(ctx context.Context, src RecordSource) (*SentenceBank, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return NewSentenceBank(nil), fmt.Errorf("load sentences: %w", err)
	}
	return NewSentenceBank(ParseSentences(records)), nil
}

// LoadGeography builds the geography repository from src. On failure it
// returns an empty repository together with the error.
func LoadGeography(ctx context.Context, src RecordSource, logger *zap.Logger) (*GeographyRepository, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return NewGeographyRepository(nil), fmt.Errorf("load geography: %w", err)
	}
	return NewGeographyRepository(EntriesFromRecords(records, logger)), nil
}
