// Package config loads dcg's TOML configuration and allowlist files and
// owns the file I/O that internal/core deliberately avoids: internal/core
// works with already-parsed, in-memory structures so its evaluation
// pipeline stays a pure function of its inputs.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the project/user/system configuration file shape, following
// the sections named in the hook-boundary spec: pack enablement, heredoc
// recursion limits, evaluator budget/threshold, per-rule overrides, and
// rendering.
type Config struct {
	Packs     PacksConfig              `toml:"packs"`
	Heredoc   HeredocConfig            `toml:"heredoc"`
	Evaluator EvaluatorConfig          `toml:"evaluator"`
	Overrides map[string]OverrideEntry `toml:"overrides"`
	Theme     ThemeConfig              `toml:"theme"`
	Output    OutputConfig             `toml:"output"`
}

// PacksConfig controls which bundled packs run.
type PacksConfig struct {
	Enabled []string `toml:"enabled"`
}

// HeredocConfig controls heredoc/inline-interpreter recursion.
type HeredocConfig struct {
	Enabled  bool `toml:"enabled"`
	MaxDepth int  `toml:"max_depth"`
}

// EvaluatorConfig mirrors core.EvaluatorConfig's knobs as they're exposed
// in the config file; internal/config translates this into
// core.EvaluatorConfig at load time.
type EvaluatorConfig struct {
	BudgetMS      int     `toml:"budget_ms"`
	WarnThreshold float64 `toml:"warn_threshold"`
}

// OverrideEntry tweaks a specific rule's severity or forces a decision,
// keyed by "<pack_id>:<pattern_name>" in the TOML table.
type OverrideEntry struct {
	Severity string `toml:"severity"`
	Decision string `toml:"decision"`
}

// ThemeConfig selects the color theme used for rendering (internal/output).
type ThemeConfig struct {
	Name string `toml:"name"`
}

// OutputConfig controls rendering verbosity/format (internal/output).
type OutputConfig struct {
	Color string `toml:"color"` // "auto", "always", "never"
	Quiet bool   `toml:"quiet"`
}

// DefaultConfig returns dcg's built-in defaults, matching the evaluator's
// own DefaultEvaluatorConfig budget and threshold.
func DefaultConfig() Config {
	return Config{
		Packs:   PacksConfig{Enabled: []string{"*"}},
		Heredoc: HeredocConfig{Enabled: true, MaxDepth: 3},
		Evaluator: EvaluatorConfig{
			BudgetMS:      50,
			WarnThreshold: 0.5,
		},
		Theme:  ThemeConfig{Name: "auto"},
		Output: OutputConfig{Color: "auto"},
	}
}

// configHeader precedes every config.toml dcg writes out, documenting
// lookup precedence the way the teacher's own generated config.toml does.
const configHeader = `# dcg configuration
# Precedence: defaults < system (/etc/dcg/config.toml) < user (~/.config/dcg/config.toml) < project (.dcg/config.toml) < env (DCG_*)

`

// WriteDefault writes cfg to path as TOML with a header comment, refusing
// to overwrite an existing file unless force is true.
func WriteDefault(path string, cfg Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(configHeader); err != nil {
		return err
	}

	enc := toml.NewEncoder(f)
	enc.Indent = "  "
	return enc.Encode(cfg)
}

// LookupPaths returns the three config file locations in ascending
// precedence order (system, user, project). AllowlistPaths returns the
// same three layers in the opposite order (project, user, system).
func LookupPaths(projectRoot string) (system, user, project string) {
	system = systemConfigPath()
	user = userConfigPath()
	project = filepath.Join(projectRoot, ".dcg", "config.toml")
	return system, user, project
}

func systemConfigPath() string {
	if p := os.Getenv("DCG_CONFIG_SYSTEM_PATH"); p != "" {
		return p
	}
	return "/etc/dcg/config.toml"
}

func userConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dcg", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dcg", "config.toml")
}

// Load reads and merges the three config layers (system, user, project),
// applying each on top of DefaultConfig() in ascending precedence. A
// missing file is treated as empty; a malformed file is reported but does
// not prevent the other layers from loading (spec §7 ConfigError: warn,
// treat as absent, keep going).
func Load(projectRoot string) (Config, []error) {
	cfg := DefaultConfig()
	var errs []error

	system, user, project := LookupPaths(projectRoot)
	for _, path := range []string{system, user, project} {
		if path == "" {
			continue
		}
		if err := mergeFile(path, &cfg); err != nil {
			errs = append(errs, err)
		}
	}

	return cfg, errs
}

func mergeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var layer Config
	if _, err := toml.Decode(string(data), &layer); err != nil {
		return err
	}
	mergeInto(cfg, layer)
	return nil
}

// mergeInto overlays layer's non-zero fields onto cfg. A layer omitting a
// table entirely leaves the previous layer's values in place. A layer's
// [heredoc] table is applied only when it sets a positive max_depth, since 0
// is also Go's zero value for an absent table: heredoc.enabled = false takes
// effect only together with max_depth > 0.
func mergeInto(cfg *Config, layer Config) {
	if len(layer.Packs.Enabled) > 0 {
		cfg.Packs.Enabled = layer.Packs.Enabled
	}
	if layer.Heredoc.MaxDepth > 0 {
		cfg.Heredoc = layer.Heredoc
	}
	if layer.Evaluator.BudgetMS > 0 {
		cfg.Evaluator.BudgetMS = layer.Evaluator.BudgetMS
	}
	if layer.Evaluator.WarnThreshold > 0 {
		cfg.Evaluator.WarnThreshold = layer.Evaluator.WarnThreshold
	}
	if len(layer.Overrides) > 0 {
		if cfg.Overrides == nil {
			cfg.Overrides = map[string]OverrideEntry{}
		}
		for k, v := range layer.Overrides {
			cfg.Overrides[k] = v
		}
	}
	if layer.Theme.Name != "" {
		cfg.Theme.Name = layer.Theme.Name
	}
	if layer.Output.Color != "" {
		cfg.Output.Color = layer.Output.Color
	}
	if layer.Output.Quiet {
		cfg.Output.Quiet = true
	}
}
