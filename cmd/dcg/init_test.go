package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesProjectStructure(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	stdout, _, err := runCLI(t, "", "init")
	if err != nil {
		t.Fatalf("init returned error: %v", err)
	}
	if !strings.Contains(stdout, "Initialized dcg") {
		t.Fatalf("expected a confirmation message, got %q", stdout)
	}

	for _, p := range []string{
		filepath.Join(dir, ".dcg", "history.db"),
		filepath.Join(dir, ".dcg", "config.toml"),
		filepath.Join(dir, ".dcg", "allowlist.toml"),
		filepath.Join(dir, ".dcg", "pending"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}

	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatalf("reading .gitignore: %v", err)
	}
	if !strings.Contains(string(gitignore), ".dcg/") {
		t.Fatalf("expected .gitignore to list .dcg/, got %q", gitignore)
	}
}

func TestInitRefusesToReinitializeWithoutForce(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	if _, _, err := runCLI(t, "", "init"); err != nil {
		t.Fatalf("first init returned error: %v", err)
	}

	_, _, err := runCLI(t, "", "init")
	if err == nil {
		t.Fatal("expected a second init without --force to fail")
	}

	_, _, err = runCLI(t, "", "init", "--force")
	if err != nil {
		t.Fatalf("init --force returned error: %v", err)
	}
}

func TestInitIsIdempotentOnGitignore(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("node_modules/\n.dcg/\n"), 0o644); err != nil {
		t.Fatalf("seeding .gitignore: %v", err)
	}

	if _, _, err := runCLI(t, "", "init"); err != nil {
		t.Fatalf("init returned error: %v", err)
	}

	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatalf("reading .gitignore: %v", err)
	}
	if strings.Count(string(gitignore), ".dcg/") != 1 {
		t.Fatalf("expected .dcg/ to appear exactly once, got %q", gitignore)
	}
}
