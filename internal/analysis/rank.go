// internal/analysis/rank.go
package analysis

import "sort"

// Rank orders models by descending success rate. Ties keep the order of the
// canonical model list; models absent from that list follow in name order.
// The sort is stable so tied entries never reorder arbitrarily.
func Rank(cells map[string]Cell, canonicalOrder []string) []Ranking {
	rankings := make([]Ranking, 0, len(cells))

	seen := make(map[string]bool, len(canonicalOrder))
	for _, model := range canonicalOrder {
		cell, ok := cells[model]
		if !ok {
			continue
		}
		seen[model] = true
		rankings = append(rankings, Ranking{Model: model, Cell: cell, SuccessRate: cell.SuccessRate()})
	}

	var extras []string
	for model := range cells {
		if !seen[model] {
			extras = append(extras, model)
		}
	}
	sort.Strings(extras)
	for _, model := range extras {
		cell := cells[model]
		rankings = append(rankings, Ranking{Model: model, Cell: cell, SuccessRate: cell.SuccessRate()})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].SuccessRate > rankings[j].SuccessRate
	})
	return rankings
}
