package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/corvid-labs/dcg/internal/config"
	"github.com/corvid-labs/dcg/internal/core"
	"github.com/corvid-labs/dcg/internal/history"
	"github.com/corvid-labs/dcg/internal/output"
)

var (
	flagProject string
	flagNoColor bool
	flagJSON    bool
	flagDBPath  string
	flagAgent   string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "C", "", "run as if started in this directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "print machine-readable JSON instead of a rendered box")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "history database path (default: <project>/.dcg/history.db, falling back to ~/.dcg/history.db)")
	rootCmd.PersistentFlags().StringVar(&flagAgent, "agent", "", "override agent auto-detection (claude-code, aider, continue, codex-cli, gemini-cli)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print additional diagnostic detail on stderr")

	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:           "dcg",
	Short:         "Destructive command guard for AI coding agents",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `dcg evaluates shell commands before an AI coding agent's tool call runs
them, blocking or warning about destructive operations: recursive deletes
of system paths, forced git history rewrites on shared branches, dropped
databases, leaked credentials, and similar one-way doors.

It speaks the Claude Code PreToolUse hook protocol on stdin/stdout (see
'dcg hook') and also works as a standalone CLI for testing patterns,
managing allowlists, and reviewing history.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagProject != "" {
			if err := os.Chdir(flagProject); err != nil {
				return fmt.Errorf("changing to project directory %s: %w", flagProject, err)
			}
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dcg version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version)
		return nil
	},
}

// version is overwritten at release build time via -ldflags.
var version = "dev"

// Execute runs the root command, returning any error for main to report.
func Execute() error {
	return rootCmd.Execute()
}

// projectDir resolves the directory dcg treats as the project root: the
// current working directory after PersistentPreRunE has already chdir'd
// into --project, if given.
func projectDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// colorMode translates --no-color into the output package's ColorMode,
// leaving auto-detection in charge otherwise.
func colorMode() output.ColorMode {
	if flagNoColor {
		return output.ColorNever
	}
	return output.ColorAuto
}

// loadConfig loads the layered config for the current project, applying
// DCG_* environment overrides on top. Parse errors are reported to stderr
// and otherwise ignored: a malformed config file must never stop dcg from
// evaluating a command.
func loadConfig() config.Config {
	cfg, errs := config.Load(projectDir())
	for _, err := range errs {
		log.Warn("config: skipping malformed config", "error", err)
	}
	config.ApplyEnvOverrides(&cfg)
	return cfg
}

// loadAllowlist loads the three-layer allowlist for the current project.
func loadAllowlist() core.LayeredAllowlist {
	project, user, system := config.AllowlistPaths(projectDir())
	projectLayer := config.LoadAllowlistLayer(core.LayerProject, project)
	userLayer := config.LoadAllowlistLayer(core.LayerUser, user)
	systemLayer := config.LoadAllowlistLayer(core.LayerSystem, system)
	for _, layer := range []core.LoadedAllowlistLayer{projectLayer, userLayer, systemLayer} {
		for _, parseErr := range layer.File.Errors {
			log.Warn("allowlist: skipping malformed entry", "path", layer.Path, "error", parseErr)
		}
	}
	return core.NewLayeredAllowlist(&projectLayer, &userLayer, &systemLayer)
}

// buildEvaluator assembles an Evaluator from the current project's config
// and allowlist, the single entry point every subcommand that classifies a
// command goes through.
func buildEvaluator() *core.Evaluator {
	cfg := loadConfig()
	allowlist := loadAllowlist()
	return core.NewEvaluator(core.DefaultRegistry(), allowlist, cfg.ToEvaluatorConfig())
}

// openHistory opens (creating and migrating if needed) the history
// database: --db if given, else a project-local .dcg/history.db if the
// project has been initialized, else the per-user default.
func openHistory() (*history.DB, error) {
	if flagDBPath != "" {
		return history.OpenAndMigrate(flagDBPath)
	}
	projectDCGDir := filepath.Join(projectDir(), ".dcg")
	if _, err := os.Stat(projectDCGDir); err == nil {
		return history.OpenAndMigrate(filepath.Join(projectDCGDir, "history.db"))
	}
	return history.OpenUserHistory()
}

// resolvedAgent honors an explicit --agent flag over environment-based
// detection.
func resolvedAgent() core.DetectionResult {
	if flagAgent != "" {
		return core.ExplicitAgent(flagAgent)
	}
	return core.DetectAgent()
}

func newRenderer() output.Renderer {
	return output.NewRenderer(colorMode())
}
