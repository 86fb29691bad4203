// internal/analysis/aggregate.go
package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mwiater/kritis/internal/classifier"
	"github.com/mwiater/kritis/internal/corpus"
	"github.com/mwiater/kritis/internal/util"
)

// Aggregator folds classified per-response outcomes into outcome tables.
type Aggregator struct {
	classifier *classifier.Classifier
	categories []string
}

// NewAggregator returns an Aggregator that classifies with c and examines the
// given task categories in order.
func NewAggregator(c *classifier.Classifier, categories []string) *Aggregator {
	return &Aggregator{classifier: c, categories: append([]string(nil), categories...)}
}

// Table holds finalized outcome counts at three granularities. Success counts
// are already adjusted for API errors; cells never go negative.
type Table struct {
	// PerIndex maps prompt index -> model -> outcome.
	PerIndex map[corpus.Index]map[string]*ModelOutcome
}

// Aggregate classifies every (record, category, model) response and folds the
// outcomes into a per-index table. Counting is commutative, so record order
// never changes the result. The API error adjustment
// (success = max(0, success - api_error)) is applied exactly once per cell
// after all increments, keeping it independent of processing order.
func (a *Aggregator) Aggregate(records []corpus.PromptRecord) *Table {
	perIndex := make(map[corpus.Index]map[string]*ModelOutcome)

	for _, record := range records {
		cells := perIndex[record.Index]
		if cells == nil {
			cells = make(map[string]*ModelOutcome)
			perIndex[record.Index] = cells
		}
		for _, category := range a.categories {
			models, ok := record.Responses[category]
			if !ok {
				continue
			}
			for model, response := range models {
				outcome := cells[model]
				if outcome == nil {
					outcome = &ModelOutcome{}
					cells[model] = outcome
				}
				result := a.classifier.Classify(response)
				if result.Outcome == classifier.OutcomeRejection {
					outcome.Rejection++
					outcome.TriggeredPatterns = append(outcome.TriggeredPatterns, result.MatchedPattern)
				} else {
					outcome.Success++
				}
				if result.APIFailure {
					outcome.APIError++
				}
			}
		}
	}

	for _, cells := range perIndex {
		for _, outcome := range cells {
			outcome.Success = util.Max(0, outcome.Success-outcome.APIError)
		}
	}

	return &Table{PerIndex: perIndex}
}

// TopLevel sums the per-index cells by the leading index segment
// ("3_2" -> "3"). Summation happens after the API error adjustment, matching
// the per-index table the grouping is derived from.
func (t *Table) TopLevel() map[string]map[string]Cell {
	grouped := make(map[string]map[string]Cell)
	for index, cells := range t.PerIndex {
		top := index.TopLevel()
		if grouped[top] == nil {
			grouped[top] = make(map[string]Cell)
		}
		for model, outcome := range cells {
			grouped[top][model] = grouped[top][model].Add(outcome.Cell())
		}
	}
	return grouped
}

// Models fully sums the table into one cell per model.
func (t *Table) Models() map[string]Cell {
	totals := make(map[string]Cell)
	for _, cells := range t.PerIndex {
		for model, outcome := range cells {
			totals[model] = totals[model].Add(outcome.Cell())
		}
	}
	return totals
}

// SortedIndices returns the table's indices in numeric-aware order: segment
// counts of digits compare numerically, anything else lexically.
func (t *Table) SortedIndices() []corpus.Index {
	indices := make([]corpus.Index, 0, len(t.PerIndex))
	for index := range t.PerIndex {
		indices = append(indices, index)
	}
	sortIndices(indices)
	return indices
}

func sortIndices(indices []corpus.Index) {
	sort.Slice(indices, func(i, j int) bool {
		return compareIndexes(indices[i], indices[j]) < 0
	})
}

func compareIndexes(a, b corpus.Index) int {
	segsA := splitSegments(string(a))
	segsB := splitSegments(string(b))
	for i := 0; i < len(segsA) && i < len(segsB); i++ {
		if c := compareSegments(segsA[i], segsB[i]); c != 0 {
			return c
		}
	}
	return len(segsA) - len(segsB)
}

func splitSegments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '.'
	})
}

func compareSegments(a, b string) int {
	numA, errA := strconv.Atoi(a)
	numB, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return numA - numB
	}
	return strings.Compare(a, b)
}
