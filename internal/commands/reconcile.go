// internal/commands/reconcile.go
package kritis

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/kritis/internal/reconcile"
)

var reconcileOpts reconcile.BatchOptions

// reconcileCmd merges two experiment runs into a best-of-both corpus.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Merge two experiment runs into a best-of-both corpus",
	Long: `Merge the result files of two experiment runs, cell by cell. A response
that carries a transport/API failure is replaced by its counterpart from the
other run when that counterpart did not fail; in every other case the first
run's response is kept. The merged corpus is written one file per original
filename and is loadable as an ordinary run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		clf, err := cfg.NewClassifier()
		if err != nil {
			return err
		}

		opts := reconcileOpts
		if opts.OutDir == "" {
			opts.OutDir = cfg.MergedDir()
		}
		if opts.FilenameToken == "" {
			opts.FilenameToken = cfg.Token()
		}

		reconciler := reconcile.New(clf, cfg.CategoryList(), cfg.ModelList())
		return reconciler.ReconcileDirectories(opts)
	},
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileOpts.DirA, "dir-a", "", "first run directory (kept on ties)")
	reconcileCmd.Flags().StringVar(&reconcileOpts.DirB, "dir-b", "", "second run directory")
	reconcileCmd.Flags().StringVar(&reconcileOpts.OutDir, "out", "", "output directory for the merged corpus")
	reconcileCmd.Flags().StringVar(&reconcileOpts.FilenameToken, "token", "", "filename token selecting result files")
	_ = reconcileCmd.MarkFlagRequired("dir-a")
	_ = reconcileCmd.MarkFlagRequired("dir-b")

	rootCmd.AddCommand(reconcileCmd)
}
