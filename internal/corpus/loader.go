// internal/corpus/loader.go
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mwiater/kritis/internal/logging"
)

// ErrRunMissing reports that a run directory does not exist or matched no
// corpus files. Callers that can degrade (reconciliation pass-through) branch
// on it with errors.Is.
var ErrRunMissing = errors.New("experiment run missing")

// FilenameFilter reports whether a directory entry should be loaded.
type FilenameFilter func(name string) bool

// TokenFilter matches filenames that contain token and end in ".json".
func TokenFilter(token string) FilenameFilter {
	return func(name string) bool {
		return strings.Contains(name, token) && strings.HasSuffix(name, ".json")
	}
}

// Load reads every matching corpus file in dir into an ExperimentRun whose ID
// is the directory basename. Files that fail to read, parse, or validate are
// skipped with a warning; the run proceeds with whatever loaded. A missing
// directory or a directory with no matching files yields ErrRunMissing.
func Load(dir string, filter FilenameFilter) (*ExperimentRun, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("run directory %s: %w", dir, ErrRunMissing)
		}
		return nil, fmt.Errorf("reading run directory %s: %w", dir, err)
	}

	run := &ExperimentRun{ID: filepath.Base(filepath.Clean(dir))}
	for _, entry := range entries {
		if entry.IsDir() || !filter(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		records, err := LoadFile(path)
		if err != nil {
			logging.LogWarn("skipping %s: %v", path, err)
			continue
		}
		run.Files = append(run.Files, RunFile{Name: entry.Name(), Records: records})
	}

	if len(run.Files) == 0 {
		return nil, fmt.Errorf("no corpus files in %s: %w", dir, ErrRunMissing)
	}
	return run, nil
}

// LoadFile parses one corpus file. A file that is unreadable or not a JSON
// array fails as a whole; a file whose array holds some malformed records
// keeps the valid ones and warns per skipped record.
func LoadFile(path string) ([]PromptRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}

	result, err := validateFile(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing corpus file: %w", err)
	}
	if result.Valid() {
		var records []PromptRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("decoding corpus file: %w", err)
		}
		return records, nil
	}

	// Schema violations somewhere in the array: salvage the valid records.
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("corpus file is not a JSON array: %s", firstSchemaError(result))
	}

	var records []PromptRecord
	for i, element := range elements {
		recordResult, err := validateRecord(element)
		if err != nil || !recordResult.Valid() {
			logging.LogWarn("skipping record %d in %s: %s", i, path, recordErrorDetail(recordResult, err))
			continue
		}
		var record PromptRecord
		if err := json.Unmarshal(element, &record); err != nil {
			logging.LogWarn("skipping record %d in %s: %v", i, path, err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func firstSchemaError(result *gojsonschema.Result) string {
	if result == nil || len(result.Errors()) == 0 {
		return "schema validation failed"
	}
	return result.Errors()[0].String()
}

func recordErrorDetail(result *gojsonschema.Result, err error) string {
	if err != nil {
		return err.Error()
	}
	return firstSchemaError(result)
}
