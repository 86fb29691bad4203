package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
    "models": ["gpt-4o"],
    "categories": ["file_ops"],
    "filenameToken": "merged_index",
    "outputDir": "out",
    "reconcileDir": "merged",
    "debug": true,
    "logFile": "kritis.log"
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected ConfigPath %q, got %q", path, cfg.ConfigPath)
	}
	if got := cfg.ModelList(); len(got) != 1 || got[0] != "gpt-4o" {
		t.Fatalf("unexpected models: %v", got)
	}
	if got := cfg.CategoryList(); len(got) != 1 || got[0] != "file_ops" {
		t.Fatalf("unexpected categories: %v", got)
	}
	if cfg.Token() != "merged_index" {
		t.Fatalf("unexpected token %q", cfg.Token())
	}
	if cfg.AnalysisDir() != "out" || cfg.MergedDir() != "merged" {
		t.Fatalf("unexpected dirs: %q %q", cfg.AnalysisDir(), cfg.MergedDir())
	}
	if !cfg.Debug || cfg.LogFilePath() != "kritis.log" {
		t.Fatalf("unexpected debug/log settings: %v %q", cfg.Debug, cfg.LogFilePath())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{ nope"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	if cfg.Token() != "output_index" {
		t.Fatalf("unexpected default token %q", cfg.Token())
	}
	if cfg.AnalysisDir() != "analysis_results" {
		t.Fatalf("unexpected default analysis dir %q", cfg.AnalysisDir())
	}
	if cfg.MergedDir() != "best_of_both_worlds" {
		t.Fatalf("unexpected default merged dir %q", cfg.MergedDir())
	}
	if len(cfg.ModelList()) == 0 {
		t.Fatal("expected default model list")
	}
	if len(cfg.Patterns()) == 0 || len(cfg.Markers()) == 0 {
		t.Fatal("expected default classifier vocabulary")
	}
}

func TestNewClassifierUsesConfiguredVocabulary(t *testing.T) {
	cfg := Config{
		RejectionPatterns: []string{"custom refusal"},
		FailureMarkers:    []string{"UPSTREAM DOWN"},
	}
	c, err := cfg.NewClassifier()
	if err != nil {
		t.Fatalf("NewClassifier error: %v", err)
	}
	if result := c.Classify("a custom refusal happened"); result.MatchedPattern != "custom refusal" {
		t.Fatalf("expected configured pattern to match, got %+v", result)
	}
	if result := c.Classify("UPSTREAM DOWN"); !result.APIFailure {
		t.Fatal("expected configured marker to flag API failure")
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{FilenameToken: "merged_index", Debug: true}
	ShowConfig(&buf, "config/config.json", &cfg, Config{})
	out := buf.String()

	if !strings.Contains(out, "Config file: config/config.json") {
		t.Fatalf("missing config file line:\n%s", out)
	}
	if !strings.Contains(out, "Filename Token:  merged_index") {
		t.Fatalf("missing token line:\n%s", out)
	}

	buf.Reset()
	ShowConfig(&buf, "", nil, Config{})
	if !strings.Contains(buf.String(), "No config file loaded") {
		t.Fatalf("missing defaults notice:\n%s", buf.String())
	}
}
