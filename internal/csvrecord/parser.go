// Package csvrecord turns delimited dataset text into header-keyed records.
//
// The line grammar is intentionally simpler than RFC 4180:
//
//	line  := field (DELIM field)*
//	field := (plain | '"' non-quote* '"')*
//
// Every '"' toggles quoting and is dropped from the output, so a doubled quote
// yields nothing instead of an escaped quote. Delimiters are literal while quoted.
// Fields are trimmed of surrounding whitespace.
package csvrecord

import (
	"strings"

	"go.uber.org/zap"
)

// DefaultDelimiter is used when Options.Delimiter is zero.
const DefaultDelimiter = ','

// Record maps a header name to the field value of one data line.
type Record map[string]string

// Get returns the value stored under field, matching header names case-insensitively.
func (r Record) Get(field string) string {
	if v, ok := r[field]; ok {
		return v
	}
	for k, v := range r {
		if strings.EqualFold(k, field) {
			return v
		}
	}
	return ""
}

// ShortRowPolicy decides what happens to rows with fewer fields than headers.
type ShortRowPolicy int

const (
	ShortRowDrop ShortRowPolicy = iota // discard the row
	ShortRowPad                        // right-pad with empty strings
)

// LongRowPolicy decides what happens to rows with more fields than headers.
type LongRowPolicy int

const (
	LongRowDrop     LongRowPolicy = iota // discard the row
	LongRowJoinTail                      // re-join the overflow into the last column
)

// Options configure a Parser.
type Options struct {
	Delimiter  rune     // field delimiter, DefaultDelimiter when zero
	Headers    []string // fixed header list; when nil the first line is the header
	SkipHeader bool     // with fixed Headers, drop the file's own header line
	ShortRows  ShortRowPolicy
	LongRows   LongRowPolicy
}

// Parser converts raw dataset text into records.
type Parser struct {
	opts   Options
	logger *zap.Logger
}

// NewParser creates a Parser. A nil logger disables row diagnostics.
func NewParser(opts Options, logger *zap.Logger) *Parser {
	if opts.Delimiter == 0 {
		opts.Delimiter = DefaultDelimiter
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{opts: opts, logger: logger}
}

// Parse returns one record per data line, in source order.
// Blank lines are ignored; rows that violate the arity policy are dropped.
func (p *Parser) Parse(text string) []Record {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	headers := p.opts.Headers
	if headers == nil {
		headers = SplitLine(lines[0], p.opts.Delimiter)
		lines = lines[1:]
	} else if p.opts.SkipHeader {
		lines = lines[1:]
	}
	if len(headers) == 0 {
		return nil
	}

	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		fields, ok := p.fit(splitRaw(line, p.opts.Delimiter), len(headers))
		if !ok {
			p.logger.Debug("dropping malformed row",
				zap.Int("row", i+1),
				zap.Int("fields", len(fields)),
				zap.Int("headers", len(headers)),
			)
			continue
		}

		rec := make(Record, len(headers))
		for j, h := range headers {
			rec[h] = fields[j]
		}
		records = append(records, rec)
	}

	return records
}

// fit applies the row policies to untrimmed fields so that exactly n trimmed
// fields remain. A joined tail keeps its inner spacing and is trimmed once.
func (p *Parser) fit(raw []string, n int) ([]string, bool) {
	switch {
	case len(raw) == n:
		return trimAll(raw), true
	case len(raw) < n:
		if p.opts.ShortRows != ShortRowPad {
			return raw, false
		}
		padded := make([]string, n)
		copy(padded, trimAll(raw))
		return padded, true
	default:
		if p.opts.LongRows != LongRowJoinTail {
			return raw, false
		}
		joined := trimAll(raw[:n-1])
		joined = append(joined, strings.TrimSpace(strings.Join(raw[n-1:], string(p.opts.Delimiter))))
		return joined, true
	}
}

// SplitLine splits a single line on delim, ignoring delimiters inside double
// quotes. Quotes are dropped and every field is trimmed.
func SplitLine(line string, delim rune) []string {
	return trimAll(splitRaw(line, delim))
}

// splitRaw is SplitLine without trimming.
func splitRaw(line string, delim rune) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())

	return fields
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

// splitLines splits text on newlines and drops blank lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
