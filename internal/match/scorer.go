// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match scores how likely a search-provider candidate is the same
// work as a query article. For each candidate it compares author names and
// titles, assembles a fixed feature vector, and asks a trained classifier
// for a match probability.
package match

import (
	"fmt"

	"github.com/pdiddy/republication-tracker/internal/names"
	"github.com/pdiddy/republication-tracker/internal/similarity"
	"github.com/pdiddy/republication-tracker/pkg/types"
)

// Score compares candidate against query and returns the scored record.
// rank is the candidate's position in the provider's results. Either a
// fully populated record or an error is returned; candidate is not modified.
func Score(query types.QueryArticle, candidate types.CandidateArticle, clf Classifier, rank int) (Record, error) {
	if clf == nil {
		return Record{}, fmt.Errorf("no classifier configured")
	}

	authors, err := candidate.Authors()
	if err != nil {
		return Record{}, err
	}
	authorsList := make([]string, len(authors))
	for i, a := range authors {
		authorsList[i] = a.Joined()
	}

	one, all, err := matchAuthors(query, authorsList)
	if err != nil {
		return Record{}, err
	}

	sim := 0
	if title, ok := candidate.Title(); ok {
		sim = similarity.Ratio(query.ManuscriptTitle, title)
	}

	providerScore, err := candidate.Score()
	if err != nil {
		return Record{}, err
	}

	features := Features{
		Similarity:     sim,
		AuthorMatchAll: all,
		Score:          providerScore,
		Rank:           rank,
		AuthorCount:    len(authorsList),
	}
	p, err := classify(clf, features)
	if err != nil {
		return Record{}, err
	}

	return Record{
		AuthorsList:     authorsList,
		AuthorMatchOne:  one,
		AuthorMatchAll:  all,
		Similarity:      sim,
		ClassifierScore: p,
		Rank:            rank,
		candidate:       candidate.Clone(),
		features:        features,
	}, nil
}

// matchAuthors reports whether at least one, and whether every, query
// author appears among the candidate authors. An empty query author list
// matches all and none.
func matchAuthors(query types.QueryArticle, candidateAuthors []string) (one, all int, err error) {
	raw, err := query.AuthorNames()
	if err != nil {
		return 0, 0, err
	}

	queryKeys := make([]names.Key, 0, len(raw))
	for _, n := range raw {
		k, err := names.Normalize(names.JoinName(n))
		if err != nil {
			return 0, 0, fmt.Errorf("query author: %w", err)
		}
		queryKeys = append(queryKeys, k)
	}

	candidateKeys, err := names.NewSet(candidateAuthors)
	if err != nil {
		return 0, 0, fmt.Errorf("candidate author: %w", err)
	}

	all = 1
	for _, k := range queryKeys {
		if candidateKeys.Contains(k) {
			one = 1
		} else {
			all = 0
		}
	}
	return one, all, nil
}
