// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	effective := fallback
	if cfg != nil {
		effective = *cfg
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", effective.Debug)
	fmt.Fprintf(out, "  Log File:        %s\n", effective.LogFilePath())
	fmt.Fprintf(out, "  Filename Token:  %s\n", effective.Token())
	fmt.Fprintf(out, "  Analysis Dir:    %s\n", effective.AnalysisDir())
	fmt.Fprintf(out, "  Reconcile Dir:   %s\n", effective.MergedDir())
	fmt.Fprintf(out, "  Categories:      %v\n", effective.CategoryList())
	fmt.Fprintf(out, "  Failure Markers: %v\n", effective.Markers())
	fmt.Fprintf(out, "  Models:\n")
	for _, model := range effective.ModelList() {
		fmt.Fprintf(out, "    %s\n", model)
	}
	fmt.Fprintf(out, "  Rejection Patterns: %d (run 'kritis list patterns' for the full priority order)\n", len(effective.Patterns()))
}
