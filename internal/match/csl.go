package match

import (
	"fmt"
	"io"

	"github.com/spf13/cast"
	"go.yaml.in/yaml/v3"
)

// CSLItem is a scored candidate as a CSL-YAML bibliographic entry, so the
// likely republications can be loaded by Pandoc or a reference manager.
type CSLItem struct {
	ID     string    `yaml:"id"`
	Type   string    `yaml:"type"`
	Title  string    `yaml:"title"`
	Author []CSLName `yaml:"author,omitempty"`
	Issued *CSLDate  `yaml:"issued,omitempty"`
	DOI    string    `yaml:"DOI,omitempty"`
	Note   string    `yaml:"note,omitempty"`
}

// CSLName is a person's name in CSL format.
type CSLName struct {
	Family string `yaml:"family,omitempty"`
	Given  string `yaml:"given,omitempty"`
}

// CSLDate is a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes the records scoring at or above threshold as a CSL-YAML
// list, in input order.
func FormatCSL(records []Record, threshold float64, w io.Writer) error {
	items := []CSLItem{}
	for _, r := range records {
		if r.ClassifierScore < threshold {
			continue
		}
		items = append(items, toCSLItem(r))
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(r Record) CSLItem {
	c := r.candidate
	title, _ := c.Title()
	item := CSLItem{
		ID:    fmt.Sprintf("rank-%d", r.Rank),
		Type:  "article-journal",
		Title: title,
		Note:  fmt.Sprintf("classifier_score: %.3f; similarity: %d; author_match_all: %d", r.ClassifierScore, r.Similarity, r.AuthorMatchAll),
	}
	if doi := cast.ToString(c["DOI"]); doi != "" {
		item.DOI = doi
		item.ID = doi
	}
	if t := cast.ToString(c["type"]); t != "" {
		item.Type = t
	}
	if authors, err := c.Authors(); err == nil {
		for _, a := range authors {
			item.Author = append(item.Author, CSLName{Family: a.Family, Given: a.Given})
		}
	}
	item.Issued = issued(c["issued"])
	return item
}

// issued reads a Crossref-style {"date-parts": [[y, m, d]]} value.
func issued(v any) *CSLDate {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	outer, ok := m["date-parts"].([]any)
	if !ok || len(outer) == 0 {
		return nil
	}
	inner, ok := outer[0].([]any)
	if !ok || len(inner) == 0 {
		return nil
	}
	parts := make([]int, 0, len(inner))
	for _, p := range inner {
		n, err := cast.ToIntE(p)
		if err != nil {
			return nil
		}
		parts = append(parts, n)
	}
	return &CSLDate{DateParts: [][]int{parts}}
}
