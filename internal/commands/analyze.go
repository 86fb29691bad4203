// internal/commands/analyze.go
package kritis

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/kritis/internal/analysis"
)

var analyzeOpts analysis.AnalyzeOptions

// analyzeCmd classifies every response in one or more run directories and
// writes the outcome tables.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify run responses and write outcome tables",
	Long: `Load the result files of one or more experiment run directories, classify
every model response (success / rejection / API error), and write the
per-index analysis, the top-level grouped data, and - for multiple runs -
a combined per-run table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		clf, err := cfg.NewClassifier()
		if err != nil {
			return err
		}

		opts := analyzeOpts
		if opts.OutDir == "" {
			opts.OutDir = cfg.AnalysisDir()
		}
		if opts.FilenameToken == "" {
			opts.FilenameToken = cfg.Token()
		}

		aggregator := analysis.NewAggregator(clf, cfg.CategoryList())
		analyses, err := aggregator.AnalyzeRuns(opts, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if DebugEnabled() {
			pp.Println(analyses)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringArrayVar(&analyzeOpts.Dirs, "dir", nil, "run directory to analyze (repeatable)")
	analyzeCmd.Flags().StringVar(&analyzeOpts.OutDir, "out", "", "output directory for analysis artifacts")
	analyzeCmd.Flags().StringVar(&analyzeOpts.FilenameToken, "token", "", "filename token selecting result files")
	_ = analyzeCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(analyzeCmd)
}
