package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corvid-labs/dcg/internal/config"
	"github.com/corvid-labs/dcg/internal/history"
	"github.com/corvid-labs/dcg/internal/hookio"
)

var flagInitForce bool

func init() {
	initCmd.Flags().BoolVarP(&flagInitForce, "force", "f", false, "reinitialize even if .dcg/ already exists")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dcg in the current project",
	Long: `Initialize the dcg directory structure for a project.

Creates the following structure:
  .dcg/
  ├── history.db       # SQLite decision history (WAL mode)
  ├── config.toml      # Project-specific configuration
  ├── allowlist.toml   # Project allowlist exceptions (empty)
  └── pending/         # Allow-once code snapshots

Also adds .dcg/ to .gitignore if not already present, and installs the
PreToolUse hook into .claude/hooks.json.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	projectPath, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	dcgDir := filepath.Join(projectPath, ".dcg")
	if info, err := os.Stat(dcgDir); err == nil && info.IsDir() {
		if !flagInitForce {
			return fmt.Errorf("already initialized: %s exists (use --force to reinitialize)", dcgDir)
		}
	}

	if err := os.MkdirAll(filepath.Join(dcgDir, "pending"), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dcgDir, err)
	}

	dbPath := filepath.Join(dcgDir, "history.db")
	db, err := history.OpenAndMigrate(dbPath)
	if err != nil {
		return fmt.Errorf("initializing history database: %w", err)
	}
	db.Close()

	configPath := filepath.Join(dcgDir, "config.toml")
	if err := config.WriteDefault(configPath, config.DefaultConfig(), flagInitForce); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	allowlistPath := filepath.Join(dcgDir, "allowlist.toml")
	if _, err := os.Stat(allowlistPath); os.IsNotExist(err) || flagInitForce {
		if err := os.WriteFile(allowlistPath, []byte("# dcg allowlist exceptions. Add entries with `dcg allowlist add`.\n"), 0o644); err != nil {
			return fmt.Errorf("writing allowlist: %w", err)
		}
	}

	errOut := cmd.ErrOrStderr()
	hookPath, merged, err := hookio.InstallHook(projectPath, true)
	if err != nil {
		fmt.Fprintf(errOut, "Warning: could not install Claude Code hook: %v\n", err)
	}

	if err := addToGitignore(filepath.Join(projectPath, ".gitignore")); err != nil {
		fmt.Fprintf(errOut, "Warning: could not update .gitignore: %v\n", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized dcg in %s\n\n", dcgDir)
	fmt.Fprintln(out, "Created:")
	fmt.Fprintf(out, "  .dcg/history.db      - decision history\n")
	fmt.Fprintf(out, "  .dcg/config.toml     - configuration\n")
	fmt.Fprintf(out, "  .dcg/allowlist.toml  - allowlist exceptions\n")
	fmt.Fprintf(out, "  .dcg/pending/        - allow-once code snapshots\n")
	if hookPath != "" {
		verb := "Installed"
		if merged {
			verb = "Updated"
		}
		fmt.Fprintf(out, "  %s hook at %s\n", verb, hookPath)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Review .dcg/config.toml and customize as needed")
	fmt.Fprintln(out, "  2. Try it out: dcg test \"rm -rf /\"")
	return nil
}

// addToGitignore ensures .dcg/ is in .gitignore.
func addToGitignore(path string) error {
	const entry = ".dcg/"

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line == entry || line == ".dcg" {
				return nil
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	content := ""
	if info.Size() > 0 {
		var buf [1]byte
		if _, err := f.ReadAt(buf[:], info.Size()-1); err == nil && buf[0] != '\n' {
			content = "\n"
		}
	}
	content += "\n# dcg state (decision history, pending allow-once codes)\n" + entry + "\n"

	_, err = f.WriteString(content)
	return err
}
