package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/republication-tracker/internal/names"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <name>...",
	Short: "Show the matching key for author names",
	Long: `Normalize prints the (initial, surname) key each name reduces to when
authors are compared. Names are given as "Given+Family"; free-form names such
as "Jane Q. Doe" are split at the last space, the way query authors are.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			key, err := names.Normalize(names.JoinName(arg))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-30s  %s\n", arg, key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
