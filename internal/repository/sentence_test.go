package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

const engCSV = `id,type,text
1,원문,I
1,원문,love
1,원문,you
1,해석,나는 너를 사랑해
2,해석,안녕
2,원문,"Hello,"
2,원문,world
3,원문,"x"
`

func TestParseSentenceCSV_GroupsById(t *testing.T) {
	sentences := ParseSentenceCSV(engCSV, nil)

	require.Len(t, sentences, 3)

	assert.Equal(t, entities.Sentence{
		ID:          "1",
		Tokens:      []string{"I", "love", "you"},
		Translation: "나는 너를 사랑해",
	}, sentences[0])

	assert.Equal(t, []string{"Hello,", "world"}, sentences[1].Tokens)
	assert.Equal(t, "안녕", sentences[1].Translation)
	assert.Equal(t, "Hello, world", sentences[1].Text())

	assert.Equal(t, []string{"x"}, sentences[2].Tokens)
	assert.Empty(t, sentences[2].Translation)
}

func TestParseSentenceCSV_UnquotedCommaJoinsText(t *testing.T) {
	sentences := ParseSentenceCSV("id,type,text\n7,해석, 하나, 둘 \n8,원문,well, done\n", nil)

	require.Len(t, sentences, 2)
	assert.Equal(t, "하나, 둘", sentences[0].Translation)
	assert.Equal(t, []string{"well, done"}, sentences[1].Tokens)
}

func TestParseSentenceCSV_TranslationOnlySentence(t *testing.T) {
	sentences := ParseSentenceCSV("id,type,text\n9,해석,번역만\n", nil)

	require.Len(t, sentences, 1)
	assert.Empty(t, sentences[0].Tokens)
	assert.Equal(t, "번역만", sentences[0].Translation)
}

func TestParseSentenceCSV_Empty(t *testing.T) {
	assert.Empty(t, ParseSentenceCSV("", nil))
	assert.Empty(t, ParseSentenceCSV("id,type,text\n", nil))
	assert.Empty(t, ParseSentenceCSV("id,type,text\n1,원문\n", nil))
}

func TestSentenceBank_Get(t *testing.T) {
	empty := NewSentenceBank(nil)
	_, err := empty.Get(0)
	assert.ErrorIs(t, err, ErrNoSentences)

	bank := NewSentenceBank(ParseSentenceCSV(engCSV, nil))
	assert.Equal(t, 3, bank.Len())

	s, err := bank.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "2", s.ID)

	_, err = bank.Get(3)
	assert.ErrorIs(t, err, ErrSentenceNotFound)
}
