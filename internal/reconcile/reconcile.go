// internal/reconcile/reconcile.go
// Package reconcile merges two experiment runs into a single best-of-both
// corpus, replacing transport-failed responses with their counterpart from
// the other run wherever possible.
package reconcile

import (
	"github.com/mwiater/kritis/internal/classifier"
	"github.com/mwiater/kritis/internal/corpus"
	"github.com/mwiater/kritis/internal/logging"
)

// Reconciler merges runs cell-by-cell over a fixed category and model list.
type Reconciler struct {
	classifier *classifier.Classifier
	categories []string
	models     []string
}

// New returns a Reconciler using the given classifier to detect transport
// failures. Categories and models define which response cells are examined.
func New(c *classifier.Classifier, categories, models []string) *Reconciler {
	return &Reconciler{
		classifier: c,
		categories: append([]string(nil), categories...),
		models:     append([]string(nil), models...),
	}
}

// MergeRecords merges two records sharing an index. For each (category,
// model) cell the response from b replaces the one from a only when a's text
// carries a transport failure and b's does not. On agreement or double
// failure the merged cell keeps a's response; that tie-break favors the
// first run for compatibility with previously reconciled corpora, it is not
// a quality judgment. A missing cell classifies as an empty response.
func (r *Reconciler) MergeRecords(a, b corpus.PromptRecord) corpus.PromptRecord {
	merged := a.Clone()
	for _, category := range r.categories {
		responsesA := a.Responses[category]
		responsesB := b.Responses[category]
		if responsesA == nil && responsesB == nil {
			continue
		}
		for _, model := range r.models {
			textA := responsesA[model]
			textB := responsesB[model]
			failedA := r.classifier.Classify(textA).APIFailure
			failedB := r.classifier.Classify(textB).APIFailure
			if failedA && !failedB {
				if merged.Responses == nil {
					merged.Responses = make(map[string]map[string]string)
				}
				if merged.Responses[category] == nil {
					merged.Responses[category] = make(map[string]string)
				}
				merged.Responses[category][model] = textB
				logging.LogEvent("index %s %s/%s: replaced failed response from run B", a.Index, category, model)
			}
		}
	}
	return merged
}

// MergeRecordSets merges two ordered record sets by index: runA's records
// first (merged with their runB counterparts when present), then runB-only
// records in runB order. Records present in only one run pass through
// unchanged with a warning.
func (r *Reconciler) MergeRecordSets(recordsA, recordsB []corpus.PromptRecord) []corpus.PromptRecord {
	byIndexB := make(map[corpus.Index]corpus.PromptRecord, len(recordsB))
	for _, record := range recordsB {
		byIndexB[record.Index] = record
	}
	inA := make(map[corpus.Index]bool, len(recordsA))

	merged := make([]corpus.PromptRecord, 0, len(recordsA))
	for _, recordA := range recordsA {
		inA[recordA.Index] = true
		recordB, ok := byIndexB[recordA.Index]
		if !ok {
			logging.LogWarn("index %s only in run A, passing through", recordA.Index)
			merged = append(merged, recordA.Clone())
			continue
		}
		merged = append(merged, r.MergeRecords(recordA, recordB))
	}

	for _, recordB := range recordsB {
		if inA[recordB.Index] {
			continue
		}
		logging.LogWarn("index %s only in run B, appending", recordB.Index)
		merged = append(merged, recordB.Clone())
	}
	return merged
}

// Reconcile merges two loaded runs into one corpus. Either run may be nil,
// in which case the other run passes through as the result.
func (r *Reconciler) Reconcile(runA, runB *corpus.ExperimentRun) *corpus.ExperimentRun {
	switch {
	case runA == nil && runB == nil:
		return nil
	case runA == nil:
		logging.LogWarn("run A unavailable, passing through run %s", runB.ID)
		return passThrough(runB)
	case runB == nil:
		logging.LogWarn("run B unavailable, passing through run %s", runA.ID)
		return passThrough(runA)
	}

	out := &corpus.ExperimentRun{ID: runA.ID + "+" + runB.ID}
	for _, fileA := range runA.Files {
		fileB, ok := runB.File(fileA.Name)
		if !ok {
			logging.LogWarn("file %s only in run %s, passing through", fileA.Name, runA.ID)
			out.Files = append(out.Files, cloneFile(fileA))
			continue
		}
		out.Files = append(out.Files, corpus.RunFile{
			Name:    fileA.Name,
			Records: r.MergeRecordSets(fileA.Records, fileB.Records),
		})
	}
	for _, fileB := range runB.Files {
		if _, ok := runA.File(fileB.Name); ok {
			continue
		}
		logging.LogWarn("file %s only in run %s, passing through", fileB.Name, runB.ID)
		out.Files = append(out.Files, cloneFile(fileB))
	}
	return out
}

func passThrough(run *corpus.ExperimentRun) *corpus.ExperimentRun {
	out := &corpus.ExperimentRun{ID: run.ID}
	for _, f := range run.Files {
		out.Files = append(out.Files, cloneFile(f))
	}
	return out
}

func cloneFile(f corpus.RunFile) corpus.RunFile {
	out := corpus.RunFile{Name: f.Name}
	for _, record := range f.Records {
		out.Records = append(out.Records, record.Clone())
	}
	return out
}
