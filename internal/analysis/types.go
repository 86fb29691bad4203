// internal/analysis/types.go
// Package analysis folds classified responses into hierarchical outcome
// tables, ranks models by success rate, and writes the analysis artifacts.
package analysis

// Cell is the outcome count triple for one (scope, model) pair.
type Cell struct {
	Success   int `json:"success"`
	Rejection int `json:"rejection"`
	APIError  int `json:"api_error"`
}

// Total returns the number of classified responses in the cell.
func (c Cell) Total() int {
	return c.Success + c.Rejection + c.APIError
}

// SuccessRate returns success over total calls, or 0 for an empty cell so
// orderings over cells stay total.
func (c Cell) SuccessRate() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Success) / float64(total)
}

// Add returns the cell-wise sum.
func (c Cell) Add(other Cell) Cell {
	return Cell{
		Success:   c.Success + other.Success,
		Rejection: c.Rejection + other.Rejection,
		APIError:  c.APIError + other.APIError,
	}
}

// ModelOutcome is a cell plus the rejection phrases that produced its
// rejection count, in the order they were encountered. TriggeredPatterns is
// omitted from JSON when no rejection occurred.
type ModelOutcome struct {
	Success           int      `json:"success"`
	Rejection         int      `json:"rejection"`
	APIError          int      `json:"api_error"`
	TriggeredPatterns []string `json:"triggered_pattern,omitempty"`
}

// Cell returns the outcome counts without the pattern detail.
func (m ModelOutcome) Cell() Cell {
	return Cell{Success: m.Success, Rejection: m.Rejection, APIError: m.APIError}
}

// Ranking is one entry of a success-rate ordering.
type Ranking struct {
	Model       string  `json:"model"`
	Cell        Cell    `json:"cell"`
	SuccessRate float64 `json:"success_rate"`
}
