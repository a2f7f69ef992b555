package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/drill-bot/internal/csvrecord"
	"github.com/aliskhannn/drill-bot/internal/domain/entities"
	"github.com/aliskhannn/drill-bot/internal/repository"
)

func TestGeographyRecord_FeedsEntryPipeline(t *testing.T) {
	rows := []entities.GeographyEntry{
		{Region: "유럽", Country: "프랑스", Fact: "에펠탑이 있다", Category: "랜드마크"},
		{Region: "아시아", Country: "일본", Fact: "수도는 도쿄이다"},
	}

	records := make([]csvrecord.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, GeographyRecord(r))
	}

	assert.Equal(t, rows, repository.EntriesFromRecords(records, nil))
}

func TestSentenceRecord_FeedsSentenceGrouping(t *testing.T) {
	records := []csvrecord.Record{
		SentenceRecord("1", entities.SentenceTypeOriginal, "I"),
		SentenceRecord("1", entities.SentenceTypeOriginal, "love"),
		SentenceRecord("1", entities.SentenceTypeOriginal, "you"),
		SentenceRecord("1", entities.SentenceTypeTranslation, "사랑해"),
		SentenceRecord("2", entities.SentenceTypeOriginal, "Hello"),
	}

	sentences := repository.ParseSentences(records)
	require.Len(t, sentences, 2)
	assert.Equal(t, []string{"I", "love", "you"}, sentences[0].Tokens)
	assert.Equal(t, "사랑해", sentences[0].Translation)
	assert.Equal(t, "Hello", sentences[1].Text())
}
