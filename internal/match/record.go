// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"encoding/json"

	"github.com/pdiddy/republication-tracker/pkg/types"
)

// Output field names added to the provider record.
const (
	FieldAuthorsList     = "authors_list"
	FieldAuthorMatchOne  = "author_match_one"
	FieldAuthorMatchAll  = "author_match_all"
	FieldSimilarity      = "similarity"
	FieldClassifierScore = "classifier_score"
	FieldRank            = "rank"
)

// Record is a scored candidate: the provider's metadata plus the computed
// comparison fields. It is built once by Score and never modified.
type Record struct {
	// AuthorsList holds the candidate authors as "given+family" strings, in
	// provider order.
	AuthorsList []string

	AuthorMatchOne  int
	AuthorMatchAll  int
	Similarity      int
	ClassifierScore float64
	Rank            int

	candidate types.CandidateArticle
	features  Features
}

// Candidate returns a copy of the provider metadata the record was built from.
func (r Record) Candidate() types.CandidateArticle {
	return r.candidate.Clone()
}

// Features returns the feature values the classifier was given.
func (r Record) Features() Features {
	return r.features
}

// Fields returns a copy of the provider metadata with the computed fields
// added. The computed fields take precedence over provider fields of the
// same name. Nothing in the returned map is shared with the record.
func (r Record) Fields() map[string]any {
	out := map[string]any(r.candidate.Clone())
	out[FieldAuthorsList] = append([]string{}, r.AuthorsList...)
	out[FieldAuthorMatchOne] = r.AuthorMatchOne
	out[FieldAuthorMatchAll] = r.AuthorMatchAll
	out[FieldSimilarity] = r.Similarity
	out[FieldClassifierScore] = r.ClassifierScore
	out[FieldRank] = r.Rank
	return out
}

// MarshalJSON renders the record as one flat object.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}

// MarshalYAML renders the record as one flat mapping.
func (r Record) MarshalYAML() (any, error) {
	return r.Fields(), nil
}
