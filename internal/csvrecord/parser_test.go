package csvrecord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{
			name:  "quoted comma does not split",
			line:  `"A","B,C","D"`,
			delim: ',',
			want:  []string{"A", "B,C", "D"},
		},
		{
			name:  "fields are trimmed",
			line:  "  Asia , Korea ,  Kimchi ",
			delim: ',',
			want:  []string{"Asia", "Korea", "Kimchi"},
		},
		{
			name:  "empty trailing field",
			line:  "a,b,",
			delim: ',',
			want:  []string{"a", "b", ""},
		},
		{
			name:  "doubled quote toggles twice",
			line:  `say ""hi""`,
			delim: ',',
			want:  []string{"say hi"},
		},
		{
			name:  "custom delimiter",
			line:  `x;"y;z";w`,
			delim: ';',
			want:  []string{"x", "y;z", "w"},
		},
		{
			name:  "korean text",
			line:  `1,원문,"Hello, world"`,
			delim: ',',
			want:  []string{"1", "원문", "Hello, world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLine(tt.line, tt.delim))
		})
	}
}

func TestParser_HeaderFromFirstLine(t *testing.T) {
	text := "\"Region\",\"Country\",\"Fact\"\r\n" +
		"Asia,Korea,\"Kimchi, a fermented dish\"\r\n" +
		"\n" +
		"Europe,France\n" +
		"Europe,Italy,Pizza\n"

	p := NewParser(Options{}, nil)
	records := p.Parse(text)

	require.Len(t, records, 2)
	assert.Equal(t, "Korea", records[0]["Country"])
	assert.Equal(t, "Kimchi, a fermented dish", records[0]["Fact"])
	assert.Equal(t, "Italy", records[1].Get("country"))
}

func TestParser_ShortRowPad(t *testing.T) {
	text := "Region,Country,Fact,Category\nEurope,France,Eiffel Tower\n"

	records := NewParser(Options{ShortRows: ShortRowPad}, nil).Parse(text)

	require.Len(t, records, 1)
	assert.Equal(t, "Eiffel Tower", records[0]["Fact"])
	assert.Equal(t, "", records[0]["Category"])
}

func TestParser_LongRowPolicies(t *testing.T) {
	text := "id,type,text\n1,원문,a,b\n"

	dropped := NewParser(Options{}, nil).Parse(text)
	assert.Empty(t, dropped)

	joined := NewParser(Options{LongRows: LongRowJoinTail}, nil).Parse(text)
	require.Len(t, joined, 1)
	assert.Equal(t, "a,b", joined[0]["text"])
}

func TestParser_JoinTailKeepsInnerSpacing(t *testing.T) {
	text := "id,type,text\n 7 ,해석, well,  done \n"

	records := NewParser(Options{LongRows: LongRowJoinTail}, nil).Parse(text)

	require.Len(t, records, 1)
	assert.Equal(t, "7", records[0]["id"])
	assert.Equal(t, "well,  done", records[0]["text"])
}

func TestParser_FixedHeaders(t *testing.T) {
	text := "whatever,header,names\n1,원문,I\n"

	withSkip := NewParser(Options{
		Headers:    []string{"id", "type", "text"},
		SkipHeader: true,
	}, nil).Parse(text)
	require.Len(t, withSkip, 1)
	assert.Equal(t, "I", withSkip[0]["text"])

	noSkip := NewParser(Options{Headers: []string{"id", "type", "text"}}, nil).Parse(text)
	require.Len(t, noSkip, 2)
	assert.Equal(t, "whatever", noSkip[0]["id"])
}

func TestParser_EmptyInput(t *testing.T) {
	p := NewParser(Options{}, nil)

	assert.Empty(t, p.Parse(""))
	assert.Empty(t, p.Parse("\n\n  \n"))
	assert.Empty(t, p.Parse("Region,Country,Fact\n"))
}
