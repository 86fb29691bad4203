// internal/analysis/report.go
package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mwiater/kritis/internal/corpus"
	"github.com/mwiater/kritis/internal/logging"
	"github.com/mwiater/kritis/internal/util"
)

// AnalyzeOptions captures the inputs for analyzing one or more runs.
type AnalyzeOptions struct {
	Dirs          []string
	OutDir        string
	FilenameToken string
}

// RunAnalysis pairs a run id with its aggregated outcome table.
type RunAnalysis struct {
	RunID string
	Table *Table
}

// AnalyzeRuns loads each run directory, aggregates outcomes, and writes the
// analysis artifacts: a per-index table per run, a top-level grouped table
// per run, and (for multiple runs) a combined table keyed by run id. Runs
// that fail to load are skipped with a warning. The analyzed tables are
// returned for callers that want to inspect them.
func (a *Aggregator) AnalyzeRuns(opts AnalyzeOptions, out io.Writer) ([]RunAnalysis, error) {
	var analyses []RunAnalysis
	for _, dir := range opts.Dirs {
		run, err := corpus.Load(dir, corpus.TokenFilter(opts.FilenameToken))
		if err != nil {
			if errors.Is(err, corpus.ErrRunMissing) {
				logging.LogWarn("skipping run %s: %v", dir, err)
				continue
			}
			return analyses, err
		}

		table := a.Aggregate(run.Records())
		analyses = append(analyses, RunAnalysis{RunID: run.ID, Table: table})

		runSlug := util.Slugify(run.ID)
		perIndexPath := filepath.Join(opts.OutDir, runSlug, "analysis_results.json")
		if err := writeJSONFile(perIndexPath, marshalPerIndex(table)); err != nil {
			return analyses, err
		}
		fmt.Fprintf(out, "Analysis results written to %s\n", perIndexPath)

		groupedPath := filepath.Join(opts.OutDir, fmt.Sprintf("grouped_data_%s.json", runSlug))
		if err := writeJSONFile(groupedPath, marshalTopLevel(table)); err != nil {
			return analyses, err
		}
		fmt.Fprintf(out, "Grouped data written to %s\n", groupedPath)
	}

	if len(analyses) > 1 {
		stamp := time.Now().Format("2006-01-02_15-04")
		combinedPath := filepath.Join(opts.OutDir, fmt.Sprintf("aggregated_results_%s.json", stamp))
		if err := writeJSONFile(combinedPath, marshalCombined(analyses)); err != nil {
			return analyses, err
		}
		fmt.Fprintf(out, "Aggregated results written to %s\n", combinedPath)
	}

	if len(analyses) == 0 {
		return nil, fmt.Errorf("no runs could be analyzed")
	}
	return analyses, nil
}

// marshalPerIndex renders the per-index table with indices in numeric-aware
// order rather than the lexical order a map marshal would produce.
func marshalPerIndex(table *Table) func() ([]byte, error) {
	return func() ([]byte, error) {
		indices := table.SortedIndices()
		keys := make([]string, len(indices))
		for i, index := range indices {
			keys[i] = string(index)
		}
		return marshalOrderedObject(keys, func(key string) (any, error) {
			return table.PerIndex[corpus.Index(key)], nil
		})
	}
}

func marshalTopLevel(table *Table) func() ([]byte, error) {
	return func() ([]byte, error) {
		grouped := table.TopLevel()
		keys := sortedKeysNumeric(grouped)
		return marshalOrderedObject(keys, func(key string) (any, error) {
			return grouped[key], nil
		})
	}
}

// marshalCombined emits index -> run id -> model -> cell across every
// analyzed run, for side-by-side comparison of experiments.
func marshalCombined(analyses []RunAnalysis) func() ([]byte, error) {
	return func() ([]byte, error) {
		combined := make(map[corpus.Index]map[string]map[string]Cell)
		for _, analysis := range analyses {
			for index, cells := range analysis.Table.PerIndex {
				if combined[index] == nil {
					combined[index] = make(map[string]map[string]Cell)
				}
				models := make(map[string]Cell, len(cells))
				for model, outcome := range cells {
					models[model] = outcome.Cell()
				}
				combined[index][analysis.RunID] = models
			}
		}

		indices := make([]corpus.Index, 0, len(combined))
		for index := range combined {
			indices = append(indices, index)
		}
		sortIndices(indices)
		keys := make([]string, len(indices))
		for i, index := range indices {
			keys[i] = string(index)
		}
		return marshalOrderedObject(keys, func(key string) (any, error) {
			return combined[corpus.Index(key)], nil
		})
	}
}

func sortedKeysNumeric[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return compareIndexes(corpus.Index(keys[i]), corpus.Index(keys[j])) < 0
	})
	return keys
}

// marshalOrderedObject builds an indented JSON object whose keys appear in
// the given order.
func marshalOrderedObject(keys []string, value func(string) (any, error)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, key := range keys {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n    ")
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteString(": ")
		val, err := value(key)
		if err != nil {
			return nil, err
		}
		encodedVal, err := json.MarshalIndent(val, "    ", "    ")
		if err != nil {
			return nil, err
		}
		buf.Write(encodedVal)
	}
	buf.WriteString("\n}")
	return buf.Bytes(), nil
}

func writeJSONFile(path string, marshal func() ([]byte, error)) error {
	data, err := marshal()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", path, err)
		}
	}
	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
