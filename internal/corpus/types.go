// internal/corpus/types.go
// Package corpus loads, validates, and writes experiment result files.
//
// A corpus file is a JSON array of prompt records. Each record carries a
// hierarchical index and the per-category, per-model response texts collected
// for that prompt.
package corpus

import "strings"

// indexDelimiters separate the segments of a hierarchical prompt index.
const indexDelimiters = "_."

// Index is a hierarchical prompt identifier such as "3_2" or "1.4.2".
type Index string

// TopLevel returns the leading segment of the index ("3_2" -> "3").
// A single-segment index is its own top level.
func (i Index) TopLevel() string {
	s := string(i)
	if pos := strings.IndexAny(s, indexDelimiters); pos >= 0 {
		return s[:pos]
	}
	return s
}

// Parent returns the index with its last segment removed, or "" for a
// single-segment index.
func (i Index) Parent() Index {
	s := string(i)
	if pos := strings.LastIndexAny(s, indexDelimiters); pos >= 0 {
		return Index(s[:pos])
	}
	return ""
}

// PromptRecord is one prompt's responses, keyed by task category and then by
// model id. Records are immutable after load; transformations copy.
type PromptRecord struct {
	Index     Index                        `json:"Index"`
	Responses map[string]map[string]string `json:"Responses"`
}

// Clone returns a deep copy of the record.
func (r PromptRecord) Clone() PromptRecord {
	out := PromptRecord{Index: r.Index}
	if r.Responses != nil {
		out.Responses = make(map[string]map[string]string, len(r.Responses))
		for category, models := range r.Responses {
			copied := make(map[string]string, len(models))
			for model, response := range models {
				copied[model] = response
			}
			out.Responses[category] = copied
		}
	}
	return out
}

// Response returns the response text for a (category, model) cell and whether
// the cell exists.
func (r PromptRecord) Response(category, model string) (string, bool) {
	models, ok := r.Responses[category]
	if !ok {
		return "", false
	}
	text, ok := models[model]
	return text, ok
}

// RunFile is the parsed contents of a single corpus file.
type RunFile struct {
	Name    string
	Records []PromptRecord
}

// ExperimentRun is an ordered collection of prompt records loaded from one
// run directory. ID identifies the run explicitly (the directory basename at
// load time) so downstream code never derives identity from paths.
type ExperimentRun struct {
	ID    string
	Files []RunFile
}

// Records returns all records in the run, preserving file and in-file order.
func (r *ExperimentRun) Records() []PromptRecord {
	var out []PromptRecord
	for _, f := range r.Files {
		out = append(out, f.Records...)
	}
	return out
}

// File returns the named file and whether it exists in the run.
func (r *ExperimentRun) File(name string) (RunFile, bool) {
	for _, f := range r.Files {
		if f.Name == name {
			return f, true
		}
	}
	return RunFile{}, false
}
