// internal/commands/rank.go
package kritis

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/kritis/internal/analysis"
	"github.com/mwiater/kritis/internal/logging"
)

var (
	rankInputs  []string
	rankSummary string
	rankReport  string
)

var goodRate = color.New(color.FgGreen).SprintFunc()
var poorRate = color.New(color.FgRed).SprintFunc()

// rankCmd derives success-rate orderings from grouped data files.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank models by success rate from grouped data files",
	Long: `Read one or more grouped data files produced by 'kritis analyze', fold
them into per-category and overall outcome tables, and print models ranked
by success rate. Ties keep the configured canonical model order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		report, err := analysis.BuildRankReport(rankInputs, cfg.ModelList(), logging.LogWarn)
		if err != nil {
			return err
		}
		if DebugEnabled() {
			pp.Println(report)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Overall model ranking:")
		for rank, entry := range report.Overall {
			rate := fmt.Sprintf("%.2f%%", entry.SuccessRate*100)
			if entry.SuccessRate >= 0.5 {
				rate = goodRate(rate)
			} else {
				rate = poorRate(rate)
			}
			fmt.Fprintf(out, "%d. %-30s %s  (success %d, rejection %d, api_error %d)\n",
				rank+1, entry.Model, rate, entry.Cell.Success, entry.Cell.Rejection, entry.Cell.APIError)
		}
		fmt.Fprintf(out, "\nTotal unique prompts: %d\n", report.TotalPrompts)
		fmt.Fprintf(out, "Overall success rate: %.2f%%\n", report.OverallSuccessRate*100)

		if rankReport != "" {
			if err := writeTextReport(rankReport, report); err != nil {
				return err
			}
			fmt.Fprintf(out, "Category analysis written to %s\n", rankReport)
		}
		if rankSummary != "" {
			data, err := report.SummaryJSON()
			if err != nil {
				return err
			}
			if err := writeArtifact(rankSummary, data); err != nil {
				return err
			}
			fmt.Fprintf(out, "Summary written to %s\n", rankSummary)
		}
		return nil
	},
}

func writeTextReport(path string, report *analysis.RankReport) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", path, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}
	defer file.Close()
	report.WriteText(file)
	return nil
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func init() {
	rankCmd.Flags().StringArrayVar(&rankInputs, "input", nil, "grouped data JSON file (repeatable)")
	rankCmd.Flags().StringVar(&rankSummary, "summary", "", "optional path for the JSON summary")
	rankCmd.Flags().StringVar(&rankReport, "report", "", "optional path for the per-category text report")
	_ = rankCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(rankCmd)
}
