// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the republication-tracker CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/republication-tracker/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// configName is the base name of the config file searched for when --config
// is not given.
const configName = "republication-tracker"

// rootCmd is the base command for the republication-tracker CLI.
var rootCmd = &cobra.Command{
	Use:   "republication-tracker",
	Short: "Find where rejected manuscripts were published",
	Long: `republication-tracker compares a submitted manuscript against candidate
records returned by a bibliographic search provider and estimates, for each
candidate, how likely it is to be the same work published elsewhere.

Candidates are scored on author overlap, title similarity, the provider's
relevance score, and their rank, using a trained classifier.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine.
		_ = godotenv.Load()
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./"+configName+".yaml or ~/.config/republication-tracker/"+configName+".yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "republication-tracker"))
		}
	}

	defaults := types.DefaultScoringConfig()
	viper.SetDefault("scoring.workers", defaults.Workers)
	viper.SetDefault("scoring.rank_base", defaults.RankBase)
	viper.SetDefault("scoring.match_threshold", defaults.MatchThreshold)
	viper.SetDefault("scoring.format", string(defaults.Format))

	viper.SetEnvPrefix("REPUBLICATION_TRACKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
