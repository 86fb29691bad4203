// internal/commands/browse.go
package kritis

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/kritis/internal/tui"
)

var browseDir string

// browseCmd opens the interactive corpus browser over one run directory.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse a run's responses with their classifications",
	Long: `Open an interactive browser over an experiment run: pick a prompt record
and inspect every model response with its outcome label and, for
rejections, the phrase that triggered the label.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		clf, err := cfg.NewClassifier()
		if err != nil {
			return err
		}
		return tui.Browse(clf, cfg.CategoryList(), browseDir, cfg.Token())
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseDir, "dir", "", "run directory to browse")
	_ = browseCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(browseCmd)
}
