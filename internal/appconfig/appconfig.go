// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/kritis/internal/classifier"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultFilenameToken selects result files inside a run directory.
	defaultFilenameToken = "output_index"
	// defaultOutputDir receives analysis artifacts.
	defaultOutputDir = "analysis_results"
	// defaultReconcileDir receives the best-of-both merged corpus.
	defaultReconcileDir = "best_of_both_worlds"
)

// defaultModels is the canonical model ordering used for ranking tie-breaks
// when the config does not supply one.
var defaultModels = []string{
	"llama3-8b-8192",
	"gemini-2.0-flash",
	"gpt-4o",
	"claude-3-5-sonnet-20241022",
	"deepseek-chat",
}

// defaultCategories are the task categories examined in each prompt record.
var defaultCategories = []string{"Summary", "Details"}

// Config represents the top-level application configuration.
type Config struct {
	Models            []string `json:"models,omitempty"`
	Categories        []string `json:"categories,omitempty"`
	FilenameToken     string   `json:"filenameToken,omitempty"`
	FailureMarkers    []string `json:"failureMarkers,omitempty"`
	RejectionPatterns []string `json:"rejectionPatterns,omitempty"`
	OutputDir         string   `json:"outputDir,omitempty"`
	ReconcileDir      string   `json:"reconcileDir,omitempty"`
	Debug             bool     `json:"debug"`
	LogFile           string   `json:"logFile,omitempty"`
	ConfigPath        string   `json:"-"`
}

// ModelList returns the canonical model ordering.
func (c Config) ModelList() []string {
	if len(c.Models) > 0 {
		return c.Models
	}
	return append([]string(nil), defaultModels...)
}

// CategoryList returns the task categories in evaluation order.
func (c Config) CategoryList() []string {
	if len(c.Categories) > 0 {
		return c.Categories
	}
	return append([]string(nil), defaultCategories...)
}

// Token returns the filename token used to select result files.
func (c Config) Token() string {
	if strings.TrimSpace(c.FilenameToken) != "" {
		return c.FilenameToken
	}
	return defaultFilenameToken
}

// Markers returns the transport failure markers.
func (c Config) Markers() []string {
	if len(c.FailureMarkers) > 0 {
		return c.FailureMarkers
	}
	return classifier.DefaultFailureMarkers()
}

// Patterns returns the ordered rejection vocabulary.
func (c Config) Patterns() []string {
	if len(c.RejectionPatterns) > 0 {
		return c.RejectionPatterns
	}
	return classifier.DefaultRejectionPhrases()
}

// AnalysisDir returns the directory that receives analysis artifacts.
func (c Config) AnalysisDir() string {
	if strings.TrimSpace(c.OutputDir) != "" {
		return c.OutputDir
	}
	return defaultOutputDir
}

// MergedDir returns the directory that receives the reconciled corpus.
func (c Config) MergedDir() string {
	if strings.TrimSpace(c.ReconcileDir) != "" {
		return c.ReconcileDir
	}
	return defaultReconcileDir
}

// LogFilePath returns the path to the application log file, or "" when
// logging only to stdout.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// NewClassifier builds the configured classifier. The pattern list is passed
// in explicitly so the first-match priority order stays visible and testable.
func (c Config) NewClassifier() (*classifier.Classifier, error) {
	return classifier.New(c.Patterns(), c.Markers())
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}
