// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/republication-tracker/pkg/types"
)

// Format writes records to w in the requested format.
func Format(records []Record, format types.OutputFormat, threshold float64, w io.Writer) error {
	switch format {
	case types.OutputTable, "":
		FormatTable(records, threshold, w)
		return nil
	case types.OutputJSON:
		return FormatJSON(records, w)
	case types.OutputYAML:
		return FormatYAML(records, w)
	case types.OutputCSL:
		return FormatCSL(records, threshold, w)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, yaml, or csl", format)
	}
}

// FormatTable writes records as a human-readable table. Records whose
// classifier score is at or above threshold are marked in the first column.
func FormatTable(records []Record, threshold float64, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No candidates scored.")
		return
	}

	fmt.Fprintf(w, "%-1s  %-4s  %-50s  %-20s  %-3s  %-3s  %-3s  %-7s  %s\n",
		"", "Rank", "Title", "Authors", "Sim", "One", "All", "Score", "P(match)")
	fmt.Fprintln(w, strings.Repeat("-", 115))

	likely := 0
	for _, r := range records {
		mark := ""
		if r.ClassifierScore >= threshold {
			mark = "*"
			likely++
		}
		title, _ := r.candidate.Title()
		fmt.Fprintf(w, "%-1s  %-4d  %-50s  %-20s  %-3d  %-3d  %-3d  %-7.2f  %.3f\n",
			mark, r.Rank, truncate(title, 50), formatAuthors(r.AuthorsList),
			r.Similarity, r.AuthorMatchOne, r.AuthorMatchAll, r.features.Score, r.ClassifierScore)
	}

	fmt.Fprintf(w, "\n%d candidates", len(records))
	if likely > 0 {
		fmt.Fprintf(w, " (%d at or above %.2f)", likely, threshold)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes records as an indented JSON array.
func FormatJSON(records []Record, w io.Writer) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// FormatYAML writes records as a YAML list.
func FormatYAML(records []Record, w io.Writer) error {
	if records == nil {
		records = []Record{}
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(records)
}

// formatAuthors shows the first author's name with the '+' removed.
func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(displayName(authors[0]), 20)
	default:
		return truncate(displayName(authors[0]), 14) + " et al."
	}
}

func displayName(joined string) string {
	return strings.TrimSpace(strings.ReplaceAll(joined, "+", " "))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
