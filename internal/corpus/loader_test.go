package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validCorpusFile = `[
    {
        "Index": "1_1",
        "Responses": {
            "file_ops": {
                "gpt-4o": "Listing files now.",
                "deepseek-chat": "I cannot provide that."
            }
        }
    },
    {
        "Index": "1_2",
        "Responses": {
            "file_ops": {
                "gpt-4o": "API Error: 429"
            }
        }
    }
]`

func writeCorpusFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestTokenFilter(t *testing.T) {
	filter := TokenFilter("output_index")
	cases := []struct {
		name string
		want bool
	}{
		{"output_index_1.json", true},
		{"merged_output_index_2.json", true},
		{"output_index_1.txt", false},
		{"results.json", false},
	}
	for _, tc := range cases {
		if got := filter(tc.name); got != tc.want {
			t.Errorf("filter(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLoadReadsMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "output_index_1.json", validCorpusFile)
	writeCorpusFile(t, dir, "notes.txt", "ignore me")

	run, err := Load(dir, TokenFilter("output_index"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if run.ID != filepath.Base(dir) {
		t.Fatalf("expected run ID %q, got %q", filepath.Base(dir), run.ID)
	}
	if len(run.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(run.Files))
	}
	records := run.Records()
	if len(records) != 2 || records[0].Index != "1_1" || records[1].Index != "1_2" {
		t.Fatalf("unexpected records: %+v", records)
	}
	if text, ok := records[0].Response("file_ops", "gpt-4o"); !ok || text != "Listing files now." {
		t.Fatalf("unexpected response cell: %q, %v", text, ok)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), TokenFilter("output_index"))
	if !errors.Is(err, ErrRunMissing) {
		t.Fatalf("expected ErrRunMissing, got %v", err)
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	_, err := Load(t.TempDir(), TokenFilter("output_index"))
	if !errors.Is(err, ErrRunMissing) {
		t.Fatalf("expected ErrRunMissing for no matching files, got %v", err)
	}
}

func TestLoadSkipsUnparsableFile(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "output_index_1.json", validCorpusFile)
	writeCorpusFile(t, dir, "output_index_2.json", "{ not json")

	run, err := Load(dir, TokenFilter("output_index"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(run.Files) != 1 || run.Files[0].Name != "output_index_1.json" {
		t.Fatalf("expected only the valid file, got %+v", run.Files)
	}
}

func TestLoadFileSalvagesValidRecords(t *testing.T) {
	dir := t.TempDir()
	mixed := `[
    {"Index": "1", "Responses": {"file_ops": {"gpt-4o": "ok"}}},
    {"Responses": {"file_ops": {"gpt-4o": "missing index"}}},
    {"Index": 7, "Responses": {}},
    {"Index": "2", "Responses": {"file_ops": {"gpt-4o": "also ok"}}}
]`
	path := writeCorpusFile(t, dir, "output_index_1.json", mixed)

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(records) != 2 || records[0].Index != "1" || records[1].Index != "2" {
		t.Fatalf("expected the two schema-valid records, got %+v", records)
	}
}

func TestLoadFileRejectsNonArray(t *testing.T) {
	dir := t.TempDir()
	path := writeCorpusFile(t, dir, "output_index_1.json", `{"Index": "1"}`)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for a non-array corpus file")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "merged")
	file := RunFile{
		Name: "output_index_3.json",
		Records: []PromptRecord{
			{Index: "3_1", Responses: map[string]map[string]string{
				"file_ops": {"gpt-4o": "ok"},
			}},
		},
	}
	if err := WriteFile(dir, file); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	records, err := LoadFile(filepath.Join(dir, file.Name))
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(records) != 1 || records[0].Index != "3_1" {
		t.Fatalf("unexpected round-trip records: %+v", records)
	}
	if text, _ := records[0].Response("file_ops", "gpt-4o"); text != "ok" {
		t.Fatalf("unexpected response text %q", text)
	}
}
