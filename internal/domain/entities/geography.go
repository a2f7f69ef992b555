package entities

import (
	"fmt"
	"strings"
)

// uncategorized labels facts from the 3-column schema, which has no category.
const uncategorized = "기타"

// GeographyEntry is one fact about a country.
// Category is empty for datasets without a category column.
type GeographyEntry struct {
	Region   string
	Country  string
	Fact     string
	Category string
}

// Explanation returns the post-answer explanation for this entry.
func (e GeographyEntry) Explanation() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s에 대한 정보입니다.\n\n", e.Country)
	fmt.Fprintf(&sb, "지역: %s\n", e.Region)
	if e.Category != "" {
		fmt.Fprintf(&sb, "분류: %s\n", e.Category)
	}
	fmt.Fprintf(&sb, "설명: %s", e.Fact)
	return sb.String()
}

// CategoryFacts lists the facts of one category.
type CategoryFacts struct {
	Category string
	Facts    []string
}

// Label returns the display name of the category.
func (c CategoryFacts) Label() string {
	if c.Category == "" {
		return uncategorized
	}
	return c.Category
}

// FactSheet is everything known about a country, grouped by region and category.
type FactSheet struct {
	Country    string
	Regions    []string
	Categories []CategoryFacts
}

// BuildFactSheet collects the entries of country. Regions and categories keep
// their first-seen order.
func BuildFactSheet(country string, entries []GeographyEntry) FactSheet {
	sheet := FactSheet{Country: country}

	seenRegion := make(map[string]struct{})
	categoryPos := make(map[string]int)

	for _, e := range entries {
		if e.Country != country {
			continue
		}

		if _, ok := seenRegion[e.Region]; !ok {
			seenRegion[e.Region] = struct{}{}
			sheet.Regions = append(sheet.Regions, e.Region)
		}

		pos, ok := categoryPos[e.Category]
		if !ok {
			pos = len(sheet.Categories)
			categoryPos[e.Category] = pos
			sheet.Categories = append(sheet.Categories, CategoryFacts{Category: e.Category})
		}
		sheet.Categories[pos].Facts = append(sheet.Categories[pos].Facts, e.Fact)
	}

	return sheet
}

// String renders the sheet as plain text.
func (f FactSheet) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s의 모든 특징:\n\n", f.Country)
	for _, r := range f.Regions {
		fmt.Fprintf(&sb, "지역: %s\n", r)
	}
	for _, c := range f.Categories {
		fmt.Fprintf(&sb, "\n%s:\n", c.Label())
		for _, fact := range c.Facts {
			sb.WriteString(fact)
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
