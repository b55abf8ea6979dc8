package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteDefaultThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".dcg", "config.toml")

	if err := WriteDefault(path, DefaultConfig(), false); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	t.Setenv("DCG_CONFIG_SYSTEM_PATH", filepath.Join(dir, "nonexistent-system.toml"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "nonexistent-xdg"))

	cfg, errs := Load(dir)
	if len(errs) != 0 {
		t.Fatalf("Load errors: %v", errs)
	}
	if cfg.Evaluator.BudgetMS != 50 {
		t.Fatalf("BudgetMS = %d, want 50", cfg.Evaluator.BudgetMS)
	}
	if cfg.Heredoc.MaxDepth != 3 {
		t.Fatalf("MaxDepth = %d, want 3", cfg.Heredoc.MaxDepth)
	}
}

func TestWriteDefaultDoesNotOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	custom := DefaultConfig()
	custom.Evaluator.BudgetMS = 999
	if err := WriteDefault(path, custom, false); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	if err := WriteDefault(path, DefaultConfig(), false); err != nil {
		t.Fatalf("WriteDefault (second): %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "999") {
		t.Fatalf("expected original budget_ms=999 to survive, got: %s", data)
	}
}

func TestProjectLayerOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DCG_CONFIG_SYSTEM_PATH", filepath.Join(dir, "nonexistent-system.toml"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "nonexistent-xdg"))

	projectPath := filepath.Join(dir, ".dcg", "config.toml")
	if err := os.MkdirAll(filepath.Dir(projectPath), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(projectPath, []byte("[evaluator]\nbudget_ms = 200\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, errs := Load(dir)
	if len(errs) != 0 {
		t.Fatalf("Load errors: %v", errs)
	}
	if cfg.Evaluator.BudgetMS != 200 {
		t.Fatalf("BudgetMS = %d, want 200 from project layer", cfg.Evaluator.BudgetMS)
	}
	if cfg.Evaluator.WarnThreshold != 0.5 {
		t.Fatalf("WarnThreshold = %v, want default 0.5 preserved", cfg.Evaluator.WarnThreshold)
	}
}
