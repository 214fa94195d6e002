// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/republication-tracker/internal/classifier"
	"github.com/pdiddy/republication-tracker/internal/input"
	"github.com/pdiddy/republication-tracker/internal/match"
	"github.com/pdiddy/republication-tracker/pkg/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <request-file>",
	Short: "Score search-provider candidates against a submitted manuscript",
	Long: `Score reads a request file holding the submitted manuscript (title and
authors) and the candidate records a search provider returned for it, in
provider rank order. Each candidate is compared with the manuscript and given
a match probability by the classifier model.

Records are printed in input order with all provider fields preserved.
With --save-request the parsed request is also written back out as YAML,
which normalizes JSON request files for later runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := scoringConfig()
	if cfg.ModelPath == "" {
		return fmt.Errorf("no classifier model: set --model or scoring.model_path")
	}

	model, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		return err
	}

	req, err := input.ReadRequest(args[0])
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save-request"); savePath != "" {
		if err := input.WriteRequest(savePath, req); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "request saved to %s\n", savePath)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "scoring %d candidates for %q\n", len(req.Candidates), req.Query.ManuscriptTitle)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	records, err := match.ScoreAll(ctx, req.Query, req.Candidates, model, match.BatchOptionsFromConfig(cfg))
	if err != nil {
		return err
	}

	return match.Format(records, cfg.Format, cfg.MatchThreshold, cmd.OutOrStdout())
}

// scoringConfig resolves scoring settings from flags, environment, and the
// config file.
func scoringConfig() types.ScoringConfig {
	return types.ScoringConfig{
		ModelPath:      viper.GetString("scoring.model_path"),
		Workers:        viper.GetInt("scoring.workers"),
		RankBase:       viper.GetInt("scoring.rank_base"),
		MatchThreshold: viper.GetFloat64("scoring.match_threshold"),
		Format:         types.OutputFormat(viper.GetString("scoring.format")),
	}
}

func init() {
	defaults := types.DefaultScoringConfig()

	scoreCmd.Flags().String("model", "", "classifier model file (YAML or JSON)")
	scoreCmd.Flags().Int("workers", defaults.Workers, "number of candidates scored concurrently")
	scoreCmd.Flags().Int("rank-base", defaults.RankBase, "rank assigned to the first candidate")
	scoreCmd.Flags().Float64("threshold", defaults.MatchThreshold, "classifier score at which the table marks a likely match")
	scoreCmd.Flags().String("format", string(defaults.Format), "output format: table, json, yaml, or csl")
	scoreCmd.Flags().String("save-request", "", "write the parsed request to this YAML file before scoring")

	for key, flag := range map[string]string{
		"scoring.model_path":      "model",
		"scoring.workers":         "workers",
		"scoring.rank_base":       "rank-base",
		"scoring.match_threshold": "threshold",
		"scoring.format":          "format",
	} {
		_ = viper.BindPFlag(key, scoreCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(scoreCmd)
}
