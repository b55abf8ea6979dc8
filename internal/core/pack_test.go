package core

import "testing"

func testPack() *Pack {
	return &Pack{
		ID:       "test.pack",
		Name:     "Test",
		Keywords: []string{"rm "},
		SafePatterns: []SafePattern{
			{Name: "rm-tmp", Regex: `^rm\s+-rf\s+/tmp/`},
		},
		DestructivePatterns: []DestructivePattern{
			{Name: "rm-rf-any", Regex: `^rm\s+-rf\s`, Reason: "recursive force remove", Severity: SeverityHigh},
		},
	}
}

func TestPackEvaluateSafeShortCircuits(t *testing.T) {
	p := testPack()
	if m := p.Evaluate("rm -rf /tmp/x"); m != nil {
		t.Fatalf("expected nil match for safe pattern, got %+v", m)
	}
}

func TestPackEvaluateDestructiveMatches(t *testing.T) {
	p := testPack()
	m := p.Evaluate("rm -rf /home/user")
	if m == nil || m.Name != "rm-rf-any" {
		t.Fatalf("expected rm-rf-any match, got %+v", m)
	}
}

func TestPackFindMatchReturnsByteRange(t *testing.T) {
	p := testPack()
	dp, rng, ok := p.FindMatch("rm -rf /home/user")
	if !ok || dp.Name != "rm-rf-any" {
		t.Fatalf("FindMatch failed: dp=%+v ok=%v", dp, ok)
	}
	if rng.Start != 0 {
		t.Fatalf("range = %+v, want start 0", rng)
	}
}

func TestPackMatchesKeywordsEmptyListAlwaysMatches(t *testing.T) {
	p := &Pack{ID: "always"}
	if !p.MatchesKeywords("anything at all") {
		t.Fatal("empty keyword list should always match")
	}
}

func TestPackMatchesKeywordsFiltersOnMiss(t *testing.T) {
	p := testPack()
	if p.MatchesKeywords("git status") {
		t.Fatal("expected no keyword match for unrelated command")
	}
}

func TestPackBadRegexIsSkippedNotFatal(t *testing.T) {
	p := &Pack{
		ID: "broken",
		DestructivePatterns: []DestructivePattern{
			{Name: "bad", Regex: "(unclosed", Severity: SeverityHigh},
			{Name: "good", Regex: `^rm\s`, Severity: SeverityHigh},
		},
	}
	m := p.Evaluate("rm -rf /tmp")
	if m == nil || m.Name != "good" {
		t.Fatalf("expected the good pattern to still match despite a broken sibling, got %+v", m)
	}
}

func TestRegistryCandidatePacksFiltersByKeyword(t *testing.T) {
	r := NewRegistry([]*Pack{testPack(), {ID: "other", Keywords: []string{"docker"}}})
	candidates := r.CandidatePacks("rm -rf /tmp")
	if len(candidates) != 1 || candidates[0].ID != "test.pack" {
		t.Fatalf("candidates = %+v, want only test.pack", candidates)
	}
}

func TestValidatePacksReportsCompileFailures(t *testing.T) {
	r := NewRegistry([]*Pack{{
		ID: "broken",
		DestructivePatterns: []DestructivePattern{
			{Name: "bad", Regex: "(unclosed", Severity: SeverityHigh},
		},
	}})
	if err := ValidatePacks(r); err == nil {
		t.Fatal("expected an error from a pack with an uncompilable pattern")
	}
}

func TestDefaultRegistryIsNotEmpty(t *testing.T) {
	r := DefaultRegistry()
	if len(r.All()) == 0 {
		t.Fatal("expected the bundled registry to contain at least one pack")
	}
}

func TestDefaultRegistryIsSingleton(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Fatal("DefaultRegistry should return the same instance on every call")
	}
}
