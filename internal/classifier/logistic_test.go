// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/republication-tracker/internal/match"
	"github.com/pdiddy/republication-tracker/pkg/types"
)

const modelYAML = `type: logistic
features: [similarity, author_match_all, score, rank, author_count]
intercept: -6.0
coefficients: [0.05, 2.0, 0.1, -0.3, 0.0]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "model.yaml", modelYAML)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, match.FeatureNames, m.Features)
	assert.Equal(t, -6.0, m.Intercept)
	assert.Len(t, m.Coefficients, 5)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "model.json", `{
  "features": ["similarity", "author_match_all", "score", "rank", "author_count"],
  "intercept": 0,
  "coefficients": [0, 0, 0, 0, 0]
}`)

	m, err := Load(path)
	require.NoError(t, err)

	p, err := m.MatchProbability([]float64{90, 1, 0.8, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading model file")
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		errMsg string
	}{
		{
			name:   "unknown type",
			data:   "type: forest\nfeatures: [similarity, author_match_all, score, rank, author_count]\ncoefficients: [1, 1, 1, 1, 1]\n",
			errMsg: "unsupported model type",
		},
		{
			name:   "reordered features",
			data:   "features: [author_match_all, similarity, score, rank, author_count]\ncoefficients: [1, 1, 1, 1, 1]\n",
			errMsg: "do not match scorer features",
		},
		{
			name:   "coefficient count",
			data:   "features: [similarity, author_match_all, score, rank, author_count]\ncoefficients: [1, 1]\n",
			errMsg: "2 coefficients for 5 features",
		},
		{
			name:   "not a model",
			data:   "- just\n- a list\n",
			errMsg: "parsing model file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestPredictProba(t *testing.T) {
	m, err := Parse([]byte(modelYAML))
	require.NoError(t, err)

	// z = -6 + 0.05*100 + 2*1 + 0.1*10 - 0.3*1 = 1.7
	probs, err := m.PredictProba([]float64{100, 1, 10, 1, 4})
	require.NoError(t, err)
	require.Len(t, probs, 2)
	assert.InDelta(t, 1.0, probs[0]+probs[1], 1e-12)
	assert.InDelta(t, 0.845534734916, probs[1], 1e-9)

	_, err = m.PredictProba([]float64{1, 2})
	assert.Error(t, err)
}

func TestSigmoidExtremes(t *testing.T) {
	assert.Equal(t, 1.0, sigmoid(1000))
	assert.Equal(t, 0.0, sigmoid(-1000))
	assert.Equal(t, 0.5, sigmoid(0))
}

func TestModelDrivesScorer(t *testing.T) {
	m, err := Parse([]byte(modelYAML))
	require.NoError(t, err)

	q := types.QueryArticle{ManuscriptTitle: "Deep Learning for X", Authors: "Jane Doe"}
	same := types.CandidateArticle{
		"title":  "Deep Learning for X",
		"score":  10.0,
		"author": []any{map[string]any{"given": "Jane", "family": "Doe"}},
	}
	other := types.CandidateArticle{
		"title":  "Unrelated Work on Soil",
		"score":  10.0,
		"author": []any{map[string]any{"given": "Bob", "family": "Brown"}},
	}

	hit, err := match.Score(q, same, m, 1)
	require.NoError(t, err)
	miss, err := match.Score(q, other, m, 1)
	require.NoError(t, err)
	assert.Greater(t, hit.ClassifierScore, miss.ClassifierScore)
}
