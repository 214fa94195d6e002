// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classifier loads trained match classifiers from disk. Training
// happens elsewhere; this package only reads the exported parameters and
// evaluates them.
package classifier

import (
	"fmt"
	"math"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/republication-tracker/internal/match"
)

// TypeLogistic identifies a logistic-regression model file.
const TypeLogistic = "logistic"

// LogisticModel is a binary logistic-regression classifier. The match
// probability is sigmoid(Intercept + Coefficients·x). A loaded model is
// never modified and is safe for concurrent use.
type LogisticModel struct {
	Type         string    `json:"type" yaml:"type"`
	Features     []string  `json:"features" yaml:"features"`
	Intercept    float64   `json:"intercept" yaml:"intercept"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
}

// Load reads a model file (YAML or JSON) and validates it against the
// scorer's feature schema.
func Load(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a model from YAML or JSON bytes.
func Parse(data []byte) (*LogisticModel, error) {
	var m LogisticModel
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing model file: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the model type, feature list, and coefficient count.
func (m *LogisticModel) Validate() error {
	if m.Type != "" && m.Type != TypeLogistic {
		return fmt.Errorf("unsupported model type %q: only %q is supported", m.Type, TypeLogistic)
	}
	if !match.SameSchema(m.Features) {
		return fmt.Errorf("model features [%s] do not match scorer features [%s]",
			strings.Join(m.Features, ", "), strings.Join(match.FeatureNames, ", "))
	}
	if len(m.Coefficients) != len(m.Features) {
		return fmt.Errorf("model has %d coefficients for %d features", len(m.Coefficients), len(m.Features))
	}
	for i, c := range m.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("coefficient %d (%s) is not finite", i, m.Features[i])
		}
	}
	if math.IsNaN(m.Intercept) || math.IsInf(m.Intercept, 0) {
		return fmt.Errorf("intercept is not finite")
	}
	return nil
}

// PredictProba returns the probabilities of the classes {not-match, match}.
func (m *LogisticModel) PredictProba(features []float64) ([]float64, error) {
	if len(features) != len(m.Coefficients) {
		return nil, fmt.Errorf("got %d features, model expects %d", len(features), len(m.Coefficients))
	}
	z := m.Intercept
	for i, x := range features {
		z += m.Coefficients[i] * x
	}
	p := sigmoid(z)
	return []float64{1 - p, p}, nil
}

// MatchProbability returns the probability of the match class.
func (m *LogisticModel) MatchProbability(features []float64) (float64, error) {
	return match.ProbaFunc(m.PredictProba).MatchProbability(features)
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
