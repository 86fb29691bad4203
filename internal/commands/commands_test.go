package kritis

import "testing"

func findCommand(t *testing.T, name string) bool {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}

func TestRootRegistersSubcommands(t *testing.T) {
	for _, name := range []string{"analyze", "reconcile", "rank", "browse", "show", "list"} {
		if !findCommand(t, name) {
			t.Fatalf("expected subcommand %q to be registered", name)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "debug", "logFile"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Fatalf("expected persistent flag %q", name)
		}
	}
}

func TestGetConfigFallsBackToDefaults(t *testing.T) {
	saved := currentConfig
	currentConfig = nil
	t.Cleanup(func() { currentConfig = saved })

	cfg := GetConfig()
	if cfg == nil {
		t.Fatal("expected a non-nil config")
	}
	if cfg.Token() != "output_index" {
		t.Fatalf("expected default token, got %q", cfg.Token())
	}
}

func TestRankFlags(t *testing.T) {
	for _, name := range []string{"input", "summary", "report"} {
		if rankCmd.Flags().Lookup(name) == nil {
			t.Fatalf("expected rank flag %q", name)
		}
	}
}

func TestAnalyzeFlags(t *testing.T) {
	for _, name := range []string{"dir", "out", "token"} {
		if analyzeCmd.Flags().Lookup(name) == nil {
			t.Fatalf("expected analyze flag %q", name)
		}
	}
}

func TestReconcileFlags(t *testing.T) {
	for _, name := range []string{"dir-a", "dir-b", "out", "token"} {
		if reconcileCmd.Flags().Lookup(name) == nil {
			t.Fatalf("expected reconcile flag %q", name)
		}
	}
}
