package types

// OutputFormat selects how scored records are written.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputCSL   OutputFormat = "csl"
)

// ScoringConfig holds settings for scoring a provider result set.
type ScoringConfig struct {
	// ModelPath is the classifier artifact (YAML or JSON).
	ModelPath string `json:"model_path" yaml:"model_path"`

	// Workers bounds how many candidates are scored concurrently (default 4).
	Workers int `json:"workers" yaml:"workers"`

	// RankBase is the rank given to the first candidate of a result list
	// (default 1). It must agree with the ranks the classifier was trained on.
	RankBase int `json:"rank_base" yaml:"rank_base"`

	// MatchThreshold is the classifier score at or above which the table
	// output flags a candidate as a likely republication (default 0.5).
	MatchThreshold float64 `json:"match_threshold" yaml:"match_threshold"`

	// Format selects the output format: table, json, yaml, or csl (likely
	// matches only, as CSL-YAML).
	Format OutputFormat `json:"format" yaml:"format"`
}

// DefaultScoringConfig returns the configuration used when nothing is set.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Workers:        4,
		RankBase:       1,
		MatchThreshold: 0.5,
		Format:         OutputTable,
	}
}
