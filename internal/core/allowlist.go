package core

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// AllowlistLayer identifies which of the three allowlist files an entry
// came from, used for precedence and diagnostics per spec §4.7.
type AllowlistLayer int

const (
	LayerProject AllowlistLayer = iota
	LayerUser
	LayerSystem
)

// Label is the human-readable, stable-string form of the layer.
func (l AllowlistLayer) Label() string {
	switch l {
	case LayerProject:
		return "project"
	case LayerUser:
		return "user"
	case LayerSystem:
		return "system"
	default:
		return "unknown"
	}
}

// AllowSelectorKind distinguishes what an allowlist entry targets.
type AllowSelectorKind int

const (
	SelectorRule AllowSelectorKind = iota
	SelectorExactCommand
	SelectorCommandPrefix
	SelectorRegexPattern
)

func (k AllowSelectorKind) Label() string {
	switch k {
	case SelectorRule:
		return "rule"
	case SelectorExactCommand:
		return "exact_command"
	case SelectorCommandPrefix:
		return "command_prefix"
	case SelectorRegexPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// AllowSelector is what a single allowlist entry matches against.
type AllowSelector struct {
	Kind   AllowSelectorKind
	Rule   RuleID // set when Kind == SelectorRule
	Text   string // ExactCommand/CommandPrefix/RegexPattern's literal text
}

// AllowEntry is a single allowlist entry, as parsed from a layer's TOML
// file, per spec §4.7 / §6.
type AllowEntry struct {
	Selector AllowSelector
	Reason   string

	AddedBy string
	AddedAt string

	ExpiresAt string // absolute timestamp, RFC3339 or "2006-01-02"
	TTL       string // duration string relative to AddedAt, e.g. "4h", "30m", "7d"
	Session   bool

	Context string

	Conditions   map[string]string
	Environments []string

	Paths []string // glob patterns; nil/empty means "applies globally"

	RiskAcknowledged bool
}

// AllowlistError is a non-fatal parse/validation problem with one entry. A
// bad entry never poisons the rest of the file.
type AllowlistError struct {
	Layer      AllowlistLayer
	Path       string
	EntryIndex int // -1 if not entry-specific
	Message    string
}

// AllowlistFile is one layer's parsed contents.
type AllowlistFile struct {
	Entries []AllowEntry
	Errors  []AllowlistError
}

// LoadedAllowlistLayer pairs a parsed file with its layer identity and
// source path.
type LoadedAllowlistLayer struct {
	Layer AllowlistLayer
	Path  string
	File  AllowlistFile
}

// LayeredAllowlist is every configured allowlist layer, ordered by
// precedence (project > user > system).
type LayeredAllowlist struct {
	Layers []LoadedAllowlistLayer
}

// AllowlistHit is a successful match: the entry plus which layer it came
// from.
type AllowlistHit struct {
	Layer AllowlistLayer
	Entry AllowEntry
}

// NewLayeredAllowlist assembles a LayeredAllowlist from already-parsed
// per-layer files (loading/parsing itself lives in internal/config, which
// owns TOML decoding; this keeps internal/core free of file I/O).
func NewLayeredAllowlist(project, user, system *LoadedAllowlistLayer) LayeredAllowlist {
	var layers []LoadedAllowlistLayer
	if project != nil {
		layers = append(layers, *project)
	}
	if user != nil {
		layers = append(layers, *user)
	}
	if system != nil {
		layers = append(layers, *system)
	}
	return LayeredAllowlist{Layers: layers}
}

// LookupRule finds the first exact rule-id match across layers, ignoring
// path restrictions. See LookupRuleAtPath for path-aware lookup.
func (a LayeredAllowlist) LookupRule(rule RuleID) (AllowEntry, AllowlistLayer, bool) {
	return a.LookupRuleAtPath(rule, "")
}

// LookupRuleAtPath finds the first entry whose selector is exactly rule
// (no wildcard expansion) and whose gating conditions (expiry, conditions,
// environments, paths) are currently satisfied.
func (a LayeredAllowlist) LookupRuleAtPath(rule RuleID, cwd string) (AllowEntry, AllowlistLayer, bool) {
	for _, layer := range a.Layers {
		for _, entry := range layer.File.Entries {
			if !isEntryValidAtPath(entry, cwd) {
				continue
			}
			if entry.Selector.Kind != SelectorRule {
				continue
			}
			if entry.Selector.Rule == rule {
				return entry, layer.Layer, true
			}
		}
	}
	return AllowEntry{}, 0, false
}

// MatchRuleAtPath finds the first entry allowlisting (packID, patternName)
// at the given severity, honoring pack-scoped wildcards ("pack_id:*"). A
// pack_id of "*" is never accepted as a selector target: a global wildcard
// bypass is not permitted regardless of what's on disk. A wildcard entry
// (pattern_name == "*") additionally requires risk_acknowledged when
// severity is Critical: the same bar SelectorRegexPattern already holds
// itself to, so a single broad "allow everything in this pack" line can't
// silently swallow a destructive match an operator never actually reviewed.
func (a LayeredAllowlist) MatchRuleAtPath(packID, patternName string, severity Severity, cwd string) (AllowlistHit, bool) {
	if packID == "*" {
		return AllowlistHit{}, false
	}
	for _, layer := range a.Layers {
		for _, entry := range layer.File.Entries {
			if !isEntryValidAtPath(entry, cwd) {
				continue
			}
			if entry.Selector.Kind != SelectorRule {
				continue
			}
			rid := entry.Selector.Rule
			if rid.PackID != packID {
				continue
			}
			if rid.PatternName != patternName && rid.PatternName != "*" {
				continue
			}
			if rid.PatternName == "*" && severity == SeverityCritical && !entry.RiskAcknowledged {
				continue
			}
			return AllowlistHit{Layer: layer.Layer, Entry: entry}, true
		}
	}
	return AllowlistHit{}, false
}

// MatchRule is MatchRuleAtPath with no path filtering.
func (a LayeredAllowlist) MatchRule(packID, patternName string, severity Severity) (AllowlistHit, bool) {
	return a.MatchRuleAtPath(packID, patternName, severity, "")
}

// MatchExactCommandAtPath finds the first entry allowlisting command
// verbatim.
func (a LayeredAllowlist) MatchExactCommandAtPath(command, cwd string) (AllowlistHit, bool) {
	for _, layer := range a.Layers {
		for _, entry := range layer.File.Entries {
			if !isEntryValidAtPath(entry, cwd) {
				continue
			}
			if entry.Selector.Kind == SelectorExactCommand && entry.Selector.Text == command {
				return AllowlistHit{Layer: layer.Layer, Entry: entry}, true
			}
		}
	}
	return AllowlistHit{}, false
}

// MatchExactCommand is MatchExactCommandAtPath with no path filtering.
func (a LayeredAllowlist) MatchExactCommand(command string) (AllowlistHit, bool) {
	return a.MatchExactCommandAtPath(command, "")
}

// MatchCommandPrefixAtPath finds the first entry whose prefix selector is a
// prefix of command.
func (a LayeredAllowlist) MatchCommandPrefixAtPath(command, cwd string) (AllowlistHit, bool) {
	for _, layer := range a.Layers {
		for _, entry := range layer.File.Entries {
			if !isEntryValidAtPath(entry, cwd) {
				continue
			}
			if entry.Selector.Kind == SelectorCommandPrefix && strings.HasPrefix(command, entry.Selector.Text) {
				return AllowlistHit{Layer: layer.Layer, Entry: entry}, true
			}
		}
	}
	return AllowlistHit{}, false
}

// MatchCommandPrefix is MatchCommandPrefixAtPath with no path filtering.
func (a LayeredAllowlist) MatchCommandPrefix(command string) (AllowlistHit, bool) {
	return a.MatchCommandPrefixAtPath(command, "")
}

// isEntryValidAtPath reports whether entry is currently usable: not
// expired, its env conditions and environment tags are satisfied, a regex
// selector carries risk_acknowledged, and (when cwd is non-empty and the
// entry restricts paths) cwd matches one of its glob patterns.
func isEntryValidAtPath(entry AllowEntry, cwd string) bool {
	if entry.Selector.Kind == SelectorRegexPattern && !entry.RiskAcknowledged {
		return false
	}
	if isEntryExpired(entry) {
		return false
	}
	for k, v := range entry.Conditions {
		if os.Getenv(k) != v {
			return false
		}
	}
	if len(entry.Environments) > 0 && !environmentTagMatches(entry.Environments) {
		return false
	}
	if cwd != "" && len(entry.Paths) > 0 {
		matched := false
		for _, pattern := range entry.Paths {
			if ok, _ := filepath.Match(pattern, cwd); ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// isEntryExpired evaluates the entry's mutually-exclusive expiry options:
// an absolute expires_at timestamp, or a ttl duration computed relative to
// added_at (falling back to "now", which makes a TTL-only entry with no
// added_at effectively never expire until the process restarts — callers
// should set added_at when writing TTL entries).
func isEntryExpired(entry AllowEntry) bool {
	if entry.ExpiresAt != "" {
		if t, ok := parseFlexibleTime(entry.ExpiresAt); ok {
			return time.Now().After(t)
		}
		return false
	}
	if entry.TTL != "" && entry.AddedAt != "" {
		base, ok := parseFlexibleTime(entry.AddedAt)
		if !ok {
			return false
		}
		d, ok := parseFlexibleDuration(entry.TTL)
		if !ok {
			return false
		}
		return time.Now().After(base.Add(d))
	}
	return false
}

func parseFlexibleTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseFlexibleDuration extends time.ParseDuration with day ("d") and week
// ("w") units, matching the allowlist TTL forms documented in spec §6
// ("4h", "30m", "7d", "1w").
func parseFlexibleDuration(s string) (time.Duration, bool) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, true
	}
	if strings.HasSuffix(s, "d") {
		if n, err := strconv.Atoi(strings.TrimSuffix(s, "d")); err == nil {
			return time.Duration(n) * 24 * time.Hour, true
		}
	}
	if strings.HasSuffix(s, "w") {
		if n, err := strconv.Atoi(strings.TrimSuffix(s, "w")); err == nil {
			return time.Duration(n) * 7 * 24 * time.Hour, true
		}
	}
	return 0, false
}

// environmentTagMatches reports whether the current environment (as
// identified by DCG_ENVIRONMENT, falling back to CI) is among tags.
func environmentTagMatches(tags []string) bool {
	current := os.Getenv("DCG_ENVIRONMENT")
	if current == "" {
		if os.Getenv("CI") != "" {
			current = "ci"
		} else {
			current = "local"
		}
	}
	for _, t := range tags {
		if strings.EqualFold(t, current) {
			return true
		}
	}
	return false
}
