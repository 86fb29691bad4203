// internal/analysis/summary.go
package analysis

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// CategoryRanking is the ranked model list for one top-level prompt category.
type CategoryRanking struct {
	Category string
	Rankings []Ranking
}

// RankReport is the full ranking derived from one or more grouped data files.
type RankReport struct {
	Categories []CategoryRanking
	Overall    []Ranking
	// TotalPrompts is the number of distinct top-level prompt categories seen.
	TotalPrompts int
	// OverallSuccessRate is total successes over total calls, 0 when empty.
	OverallSuccessRate float64
}

// BuildRankReport reads grouped data files (top-level index -> model -> cell)
// and derives per-category and overall success-rate rankings. Files that fail
// to load are reported and skipped.
func BuildRankReport(paths []string, canonicalOrder []string, warn func(format string, args ...any)) (*RankReport, error) {
	perCategory := make(map[string]map[string]Cell)
	perModel := make(map[string]Cell)

	loaded := 0
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			warn("skipping %s: %v", path, err)
			continue
		}
		var grouped map[string]map[string]Cell
		if err := json.Unmarshal(raw, &grouped); err != nil {
			warn("skipping %s: %v", path, err)
			continue
		}
		loaded++
		for category, models := range grouped {
			if perCategory[category] == nil {
				perCategory[category] = make(map[string]Cell)
			}
			for model, cell := range models {
				perCategory[category][model] = perCategory[category][model].Add(cell)
				perModel[model] = perModel[model].Add(cell)
			}
		}
	}
	if loaded == 0 {
		return nil, fmt.Errorf("no grouped data files could be loaded")
	}

	report := &RankReport{
		Overall:      Rank(perModel, canonicalOrder),
		TotalPrompts: len(perCategory),
	}
	for _, category := range sortedKeysNumeric(perCategory) {
		report.Categories = append(report.Categories, CategoryRanking{
			Category: category,
			Rankings: Rank(perCategory[category], canonicalOrder),
		})
	}

	var successes, calls int
	for _, cell := range perModel {
		successes += cell.Success
		calls += cell.Total()
	}
	if calls > 0 {
		report.OverallSuccessRate = float64(successes) / float64(calls)
	}
	return report, nil
}

// WriteText renders the report as the prompt-category analysis text file.
func (r *RankReport) WriteText(w io.Writer) {
	fmt.Fprintf(w, "LLM Performance Analysis by Prompt Category:\n\n")
	for _, category := range r.Categories {
		fmt.Fprintf(w, "Category: %s\n", category.Category)
		for rank, entry := range category.Rankings {
			fmt.Fprintf(w, "%d. %s:\n", rank+1, entry.Model)
			fmt.Fprintf(w, "   Successes: %d\n", entry.Cell.Success)
			fmt.Fprintf(w, "   Rejections: %d\n", entry.Cell.Rejection)
			fmt.Fprintf(w, "   API Errors: %d\n", entry.Cell.APIError)
			fmt.Fprintf(w, "   Success Rate: %.2f%%\n", entry.SuccessRate*100)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Overall LLM Performance:\n\n")
	fmt.Fprintf(w, "Total number of unique prompts: %d\n", r.TotalPrompts)
	fmt.Fprintf(w, "Overall Success Rate: %.2f%%\n", r.OverallSuccessRate*100)
}

// SummaryJSON renders the machine-readable summary: one entry per model plus
// the totals.
func (r *RankReport) SummaryJSON() ([]byte, error) {
	payload := make(map[string]any, len(r.Overall)+2)
	for _, entry := range r.Overall {
		payload[entry.Model] = map[string]any{
			"successes":    entry.Cell.Success,
			"rejections":   entry.Cell.Rejection,
			"api_errors":   entry.Cell.APIError,
			"success_rate": entry.SuccessRate,
		}
	}
	payload["total_prompts"] = r.TotalPrompts
	payload["overall_success_rate"] = r.OverallSuccessRate
	return json.MarshalIndent(payload, "", "    ")
}
