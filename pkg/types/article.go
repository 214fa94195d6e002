// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the republication tracker:
// the query article a user submits, the candidate records a bibliographic
// search provider returns, and the configuration for scoring them.
package types

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// AuthorDelimiter separates names in QueryArticle.Authors.
const AuthorDelimiter = ", "

// QueryArticle is the manuscript submitted by the user.
type QueryArticle struct {
	// ManuscriptID is the submitting journal's identifier, if any.
	ManuscriptID string `json:"manuscript_id,omitempty" yaml:"manuscript_id,omitempty"`

	// ManuscriptTitle is the title as submitted.
	ManuscriptTitle string `json:"manuscript_title" yaml:"manuscript_title"`

	// Authors is a single string of names separated by AuthorDelimiter
	// (e.g. "Jane Doe, John Q. Smith").
	Authors string `json:"authors" yaml:"authors"`
}

// AuthorNames splits Authors on AuthorDelimiter. An empty Authors string
// yields no names. A blank entry inside a non-empty list, or an entry still
// holding a comma (as in "Doe,Jane" or "Jane Doe,John Smith"), is reported
// as a MalformedAuthorsError.
func (q QueryArticle) AuthorNames() ([]string, error) {
	if q.Authors == "" {
		return nil, nil
	}
	parts := strings.Split(q.Authors, AuthorDelimiter)
	for i, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, &MalformedAuthorsError{
				Authors: q.Authors,
				Reason:  fmt.Sprintf("entry %d is blank", i+1),
			}
		}
		if strings.Contains(p, ",") {
			return nil, &MalformedAuthorsError{
				Authors: q.Authors,
				Reason:  fmt.Sprintf("entry %d contains a comma not followed by a space", i+1),
			}
		}
	}
	return parts, nil
}

// AuthorEntry is one structured author name as supplied by the provider.
type AuthorEntry struct {
	Given  string `json:"given,omitempty" yaml:"given,omitempty"`
	Family string `json:"family,omitempty" yaml:"family,omitempty"`
}

// Joined returns the "given+family" form used for name comparison.
func (a AuthorEntry) Joined() string {
	return a.Given + "+" + a.Family
}

// Provider field names read by the scorer.
const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldScore  = "score"
)

// CandidateArticle is a record returned by a search provider. It is kept as
// a generic map so that provider metadata the scorer does not read passes
// through untouched. Scoring never modifies it.
type CandidateArticle map[string]any

// Title returns the candidate title and whether one is present. A null title
// counts as absent; a list of titles (the Crossref shape) yields its first
// element.
func (c CandidateArticle) Title() (string, bool) {
	v, ok := c[FieldTitle]
	if !ok || v == nil {
		return "", false
	}
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return "", false
		}
		v = list[0]
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// Authors returns the structured author list in provider order.
func (c CandidateArticle) Authors() ([]AuthorEntry, error) {
	v, ok := c[FieldAuthor]
	if !ok || v == nil {
		return nil, &MissingFieldError{Field: FieldAuthor}
	}

	switch list := v.(type) {
	case []AuthorEntry:
		return append([]AuthorEntry(nil), list...), nil
	case []any:
		authors := make([]AuthorEntry, 0, len(list))
		for i, item := range list {
			entry, err := authorEntry(item)
			if err != nil {
				return nil, &MissingFieldError{
					Field:  fmt.Sprintf("%s[%d]", FieldAuthor, i),
					Reason: err.Error(),
				}
			}
			authors = append(authors, entry)
		}
		return authors, nil
	default:
		return nil, &MissingFieldError{Field: FieldAuthor, Reason: fmt.Sprintf("expected a list, got %T", v)}
	}
}

func authorEntry(item any) (AuthorEntry, error) {
	var m map[string]any
	switch v := item.(type) {
	case AuthorEntry:
		return v, nil
	case map[string]any:
		m = v
	case map[any]any:
		m = make(map[string]any, len(v))
		for k, val := range v {
			m[cast.ToString(k)] = val
		}
	default:
		return AuthorEntry{}, fmt.Errorf("expected a name object, got %T", item)
	}

	given, err := optionalString(m, "given")
	if err != nil {
		return AuthorEntry{}, err
	}
	family, err := optionalString(m, "family")
	if err != nil {
		return AuthorEntry{}, err
	}
	return AuthorEntry{Given: given, Family: family}, nil
}

func optionalString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return s, nil
}

// Score returns the provider relevance score.
func (c CandidateArticle) Score() (float64, error) {
	v, ok := c[FieldScore]
	if !ok || v == nil {
		return 0, &MissingFieldError{Field: FieldScore}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, &MissingFieldError{Field: FieldScore, Reason: err.Error()}
	}
	return f, nil
}

// Clone returns a copy of the candidate that shares no maps or slices with
// the original, so nested metadata such as author lists and dates can be
// modified on either side without affecting the other.
func (c CandidateArticle) Clone() CandidateArticle {
	out := make(CandidateArticle, len(c))
	for k, v := range c {
		out[k] = deepCopy(v)
	}
	return out
}

// deepCopy copies the container shapes produced by YAML and JSON decoding.
// Scalars are returned as they are.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = deepCopy(e)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, e := range t {
			out[k] = deepCopy(e)
		}
		return out
	case CandidateArticle:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, e := range t {
			out[i], _ = deepCopy(e).(map[string]any)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case []AuthorEntry:
		return append([]AuthorEntry(nil), t...)
	default:
		return v
	}
}
