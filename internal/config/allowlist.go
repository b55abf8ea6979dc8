package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/corvid-labs/dcg/internal/core"
)

// allowFileSchema is the on-disk TOML shape of an allowlist layer: an
// array-of-tables, each entry carrying exactly one selector field.
type allowFileSchema struct {
	Allow []allowEntrySchema `toml:"allow"`
}

type allowEntrySchema struct {
	Rule             string            `toml:"rule"`
	ExactCommand     string            `toml:"exact_command"`
	CommandPrefix    string            `toml:"command_prefix"`
	Pattern          string            `toml:"pattern"`
	Reason           string            `toml:"reason"`
	AddedBy          string            `toml:"added_by"`
	AddedAt          string            `toml:"added_at"`
	ExpiresAt        string            `toml:"expires_at"`
	TTL              string            `toml:"ttl"`
	Session          bool              `toml:"session"`
	Conditions       map[string]string `toml:"conditions"`
	Environments     []string          `toml:"environments"`
	Paths            []string          `toml:"paths"`
	RiskAcknowledged bool              `toml:"risk_acknowledged"`
}

// AllowlistPaths returns the three allowlist file locations in precedence
// order (project, user, system), per spec §6.
func AllowlistPaths(projectRoot string) (project, user, system string) {
	project = filepath.Join(projectRoot, ".dcg", "allowlist.toml")
	user = userAllowlistPath()
	system = systemAllowlistPath()
	return project, user, system
}

func userAllowlistPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dcg", "allowlist.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dcg", "allowlist.toml")
}

func systemAllowlistPath() string {
	if p := os.Getenv("DCG_ALLOWLIST_SYSTEM_PATH"); p != "" {
		return p
	}
	return "/etc/dcg/allowlist.toml"
}

// LoadAllowlistLayer parses one allowlist TOML file into a
// core.LoadedAllowlistLayer. A missing file yields an empty, error-free
// layer. Per-entry parse errors are collected on the returned file's
// Errors slice and never prevent the remaining entries from loading.
func LoadAllowlistLayer(layer core.AllowlistLayer, path string) core.LoadedAllowlistLayer {
	result := core.LoadedAllowlistLayer{Layer: layer, Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			result.File.Errors = append(result.File.Errors, core.AllowlistError{
				Layer: layer, Path: path, EntryIndex: -1, Message: err.Error(),
			})
		}
		return result
	}

	var schema allowFileSchema
	if _, err := toml.Decode(string(data), &schema); err != nil {
		result.File.Errors = append(result.File.Errors, core.AllowlistError{
			Layer: layer, Path: path, EntryIndex: -1, Message: err.Error(),
		})
		return result
	}

	for i, raw := range schema.Allow {
		entry, err := convertEntry(raw)
		if err != nil {
			result.File.Errors = append(result.File.Errors, core.AllowlistError{
				Layer: layer, Path: path, EntryIndex: i, Message: err.Error(),
			})
			continue
		}
		result.File.Entries = append(result.File.Entries, entry)
	}

	return result
}

// AppendEntry adds entry to the allowlist TOML file at path, creating the
// file (and its parent directory) if it doesn't exist yet. Existing
// entries are preserved verbatim by round-tripping through
// allowFileSchema rather than text-appending, so a hand-edited file with
// comments elsewhere in the array-of-tables block doesn't get mangled.
func AppendEntry(path string, entry core.AllowEntry) error {
	var schema allowFileSchema

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	} else if _, err := toml.Decode(string(data), &schema); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	schema.Allow = append(schema.Allow, entryToSchema(entry))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	enc.Indent = "  "
	return enc.Encode(schema)
}

func entryToSchema(entry core.AllowEntry) allowEntrySchema {
	raw := allowEntrySchema{
		Reason:           entry.Reason,
		AddedBy:          entry.AddedBy,
		AddedAt:          entry.AddedAt,
		ExpiresAt:        entry.ExpiresAt,
		TTL:              entry.TTL,
		Session:          entry.Session,
		Conditions:       entry.Conditions,
		Environments:     entry.Environments,
		Paths:            entry.Paths,
		RiskAcknowledged: entry.RiskAcknowledged,
	}
	switch entry.Selector.Kind {
	case core.SelectorRule:
		raw.Rule = entry.Selector.Rule.String()
	case core.SelectorExactCommand:
		raw.ExactCommand = entry.Selector.Text
	case core.SelectorCommandPrefix:
		raw.CommandPrefix = entry.Selector.Text
	case core.SelectorRegexPattern:
		raw.Pattern = entry.Selector.Text
	}
	return raw
}

// LoadLayeredAllowlist assembles the full project/user/system allowlist
// for projectRoot, reading each configured path.
func LoadLayeredAllowlist(projectRoot string) core.LayeredAllowlist {
	project, user, system := AllowlistPaths(projectRoot)

	projectLayer := LoadAllowlistLayer(core.LayerProject, project)
	userLayer := LoadAllowlistLayer(core.LayerUser, user)
	systemLayer := LoadAllowlistLayer(core.LayerSystem, system)

	return core.NewLayeredAllowlist(&projectLayer, &userLayer, &systemLayer)
}

func convertEntry(raw allowEntrySchema) (core.AllowEntry, error) {
	selector, err := convertSelector(raw)
	if err != nil {
		return core.AllowEntry{}, err
	}

	return core.AllowEntry{
		Selector:         selector,
		Reason:           raw.Reason,
		AddedBy:          raw.AddedBy,
		AddedAt:          raw.AddedAt,
		ExpiresAt:        raw.ExpiresAt,
		TTL:              raw.TTL,
		Session:          raw.Session,
		Conditions:       raw.Conditions,
		Environments:     raw.Environments,
		Paths:            raw.Paths,
		RiskAcknowledged: raw.RiskAcknowledged,
	}, nil
}

// convertSelector enforces "exactly one selector field" from spec §6.
func convertSelector(raw allowEntrySchema) (core.AllowSelector, error) {
	set := 0
	if raw.Rule != "" {
		set++
	}
	if raw.ExactCommand != "" {
		set++
	}
	if raw.CommandPrefix != "" {
		set++
	}
	if raw.Pattern != "" {
		set++
	}
	if set == 0 {
		return core.AllowSelector{}, fmt.Errorf("allowlist entry has no selector (rule, exact_command, command_prefix, or pattern)")
	}
	if set > 1 {
		return core.AllowSelector{}, fmt.Errorf("allowlist entry has more than one selector field set")
	}

	switch {
	case raw.Rule != "":
		rid, ok := core.ParseRuleID(raw.Rule)
		if !ok {
			return core.AllowSelector{}, fmt.Errorf("invalid rule id %q, want \"pack_id:pattern_name\"", raw.Rule)
		}
		return core.AllowSelector{Kind: core.SelectorRule, Rule: rid}, nil
	case raw.ExactCommand != "":
		return core.AllowSelector{Kind: core.SelectorExactCommand, Text: raw.ExactCommand}, nil
	case raw.CommandPrefix != "":
		return core.AllowSelector{Kind: core.SelectorCommandPrefix, Text: raw.CommandPrefix}, nil
	default:
		return core.AllowSelector{Kind: core.SelectorRegexPattern, Text: raw.Pattern}, nil
	}
}
