// internal/reconcile/batch.go
package reconcile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mwiater/kritis/internal/corpus"
	"github.com/mwiater/kritis/internal/logging"
)

// BatchOptions captures the inputs for a directory-level reconciliation.
type BatchOptions struct {
	DirA          string
	DirB          string
	OutDir        string
	FilenameToken string
}

// ReconcileDirectories merges matching corpus files from two run directories
// into OutDir, one output file per input filename. Files are processed
// concurrently, one task per file pair; tasks share no state and a failed
// task only skips its own file. If one directory is missing the other run's
// files are copied through unchanged.
func (r *Reconciler) ReconcileDirectories(opts BatchOptions) error {
	filter := corpus.TokenFilter(opts.FilenameToken)

	namesA, errA := listCorpusFiles(opts.DirA, filter)
	namesB, errB := listCorpusFiles(opts.DirB, filter)
	if errA != nil && errB != nil {
		return fmt.Errorf("neither run directory is usable: %v / %v", errA, errB)
	}
	if errA != nil {
		logging.LogWarn("run directory %s unavailable (%v), passing through %s", opts.DirA, errA, opts.DirB)
		return copyThrough(opts.DirB, opts.OutDir, namesB)
	}
	if errB != nil {
		logging.LogWarn("run directory %s unavailable (%v), passing through %s", opts.DirB, errB, opts.DirA)
		return copyThrough(opts.DirA, opts.OutDir, namesA)
	}

	inB := make(map[string]bool, len(namesB))
	for _, name := range namesB {
		inB[name] = true
	}

	var wg sync.WaitGroup
	for _, name := range namesA {
		if !inB[name] {
			logging.LogWarn("file %s has no counterpart in %s, skipping", name, opts.DirB)
			continue
		}
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			r.reconcileFilePair(name, opts)
		}(name)
	}
	wg.Wait()

	logging.LogEvent("reconciliation complete: output in %s", opts.OutDir)
	return nil
}

// reconcileFilePair merges one filename from both directories and writes the
// result. Every failure path degrades: a file unreadable on one side copies
// the other side through, unreadable on both sides skips the pair.
func (r *Reconciler) reconcileFilePair(name string, opts BatchOptions) {
	recordsA, errA := corpus.LoadFile(filepath.Join(opts.DirA, name))
	recordsB, errB := corpus.LoadFile(filepath.Join(opts.DirB, name))

	var merged []corpus.PromptRecord
	switch {
	case errA != nil && errB != nil:
		logging.LogWarn("skipping %s: unreadable in both runs (%v / %v)", name, errA, errB)
		return
	case errA != nil:
		logging.LogWarn("file %s unreadable in run A (%v), using run B copy", name, errA)
		merged = recordsB
	case errB != nil:
		logging.LogWarn("file %s unreadable in run B (%v), using run A copy", name, errB)
		merged = recordsA
	default:
		merged = r.MergeRecordSets(recordsA, recordsB)
	}

	if err := corpus.WriteFile(opts.OutDir, corpus.RunFile{Name: name, Records: merged}); err != nil {
		logging.LogWarn("writing reconciled %s: %v", name, err)
		return
	}
	logging.LogEvent("reconciled %s", name)
}

func listCorpusFiles(dir string, filter corpus.FilenameFilter) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !filter(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no corpus files in %s", dir)
	}
	return names, nil
}

// copyThrough re-serializes each file from dir into outDir, skipping files
// that fail to load.
func copyThrough(dir, outDir string, names []string) error {
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			records, err := corpus.LoadFile(filepath.Join(dir, name))
			if err != nil {
				logging.LogWarn("skipping %s: %v", name, err)
				return
			}
			if err := corpus.WriteFile(outDir, corpus.RunFile{Name: name, Records: records}); err != nil {
				logging.LogWarn("writing %s: %v", name, err)
			}
		}(name)
	}
	wg.Wait()
	return nil
}
