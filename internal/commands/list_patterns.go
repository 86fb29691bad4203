// internal/commands/list_patterns.go
package kritis

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd groups listing commands.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing pipeline vocabulary",
}

// listPatternsCmd prints the rejection vocabulary in priority order. The
// position of each phrase matters: the first phrase that matches a response
// decides its rejection label.
var listPatternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the rejection phrases in match-priority order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		clf, err := cfg.NewClassifier()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, phrase := range clf.Phrases() {
			fmt.Fprintf(out, "%3d. %q\n", i+1, phrase)
		}
		fmt.Fprintf(out, "\nTransport failure markers: %q\n", clf.FailureMarkers())
		return nil
	},
}

func init() {
	listCmd.AddCommand(listPatternsCmd)
	rootCmd.AddCommand(listCmd)
}
