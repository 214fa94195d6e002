// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"fmt"
	"math"
)

// Classifier estimates how likely a candidate is the same article as the
// query, given the feature vector built by Features.Vector. Implementations
// must be safe for concurrent use.
type Classifier interface {
	MatchProbability(features []float64) (float64, error)
}

// MatchClass is the index of the "same article" class in a two-class
// probability output.
const MatchClass = 1

// ProbaFunc adapts a function returning per-class probabilities for the
// classes {not-match, match} into a Classifier.
type ProbaFunc func(features []float64) ([]float64, error)

// MatchProbability returns the probability of the match class.
func (f ProbaFunc) MatchProbability(features []float64) (float64, error) {
	probs, err := f(features)
	if err != nil {
		return 0, err
	}
	if len(probs) != 2 {
		return 0, fmt.Errorf("classifier returned %d class probabilities, want 2", len(probs))
	}
	return probs[MatchClass], nil
}

// classify queries clf and checks that the answer is a probability.
func classify(clf Classifier, features Features) (float64, error) {
	p, err := clf.MatchProbability(features.Vector())
	if err != nil {
		return 0, fmt.Errorf("classifying candidate: %w", err)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("classifier returned %v, not a probability", p)
	}
	return p, nil
}
