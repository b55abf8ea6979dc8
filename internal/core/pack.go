package core

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Pack is a named, keyword-prefiltered bundle of safe and destructive
// patterns for one domain (filesystem, git, kubectl, …), per spec §4.5.
type Pack struct {
	ID          string
	Name        string
	Description string
	Keywords    []string

	SafePatterns        []SafePattern
	DestructivePatterns []DestructivePattern

	once            sync.Once
	compiledSafe    []compiledSafe
	compiledDenials []compiledDenial
	compileErr      error
}

type compiledSafe struct {
	name string
	re   *regexp.Regexp
}

type compiledDenial struct {
	pattern DestructivePattern
	re      *regexp.Regexp
}

// compile lazily builds this pack's regexes exactly once, per spec §5's
// one-shot-per-pack build. A pattern that fails to compile is logged and
// skipped rather than aborting the whole pack, so one bad regex in one pack
// cannot take every pack's coverage down with it.
func (p *Pack) compile() {
	p.once.Do(func() {
		for _, sp := range p.SafePatterns {
			re, err := regexp.Compile(sp.Regex)
			if err != nil {
				log.Warn("pack: safe pattern failed to compile", "pack", p.ID, "pattern", sp.Name, "err", err)
				continue
			}
			p.compiledSafe = append(p.compiledSafe, compiledSafe{name: sp.Name, re: re})
		}
		for _, dp := range p.DestructivePatterns {
			re, err := regexp.Compile(dp.Regex)
			if err != nil {
				log.Warn("pack: destructive pattern failed to compile", "pack", p.ID, "pattern", dp.Name, "err", err)
				continue
			}
			p.compiledDenials = append(p.compiledDenials, compiledDenial{pattern: dp, re: re})
		}
	})
}

// MatchesKeywords reports whether segText could plausibly be matched by
// this pack, per its cheap keyword prefilter. An empty Keywords list means
// the pack always runs (used sparingly; keyword lists should be kept tight
// so the registry can skip most packs on most commands).
func (p *Pack) MatchesKeywords(lowerSegText string) bool {
	if len(p.Keywords) == 0 {
		return true
	}
	for _, kw := range p.Keywords {
		if strings.Contains(lowerSegText, kw) {
			return true
		}
	}
	return false
}

// Evaluate runs this pack's safe patterns first (short-circuiting to "no
// match" on the first hit) and otherwise its destructive patterns in
// declaration order, per spec §4.5/§4.6. It returns the first destructive
// pattern that matches segText, or nil; match offsets are not reported.
func (p *Pack) Evaluate(segText string) *DestructivePattern {
	p.compile()

	for _, sp := range p.compiledSafe {
		if sp.re.MatchString(segText) {
			return nil
		}
	}
	for _, d := range p.compiledDenials {
		if d.re.MatchString(segText) {
			pat := d.pattern
			return &pat
		}
	}
	return nil
}

// FindMatch is like Evaluate but also returns the byte range (in segText)
// of the destructive pattern's match, for span classification and
// confidence scoring.
func (p *Pack) FindMatch(segText string) (*DestructivePattern, ByteRange, bool) {
	p.compile()

	for _, sp := range p.compiledSafe {
		if sp.re.MatchString(segText) {
			return nil, ByteRange{}, false
		}
	}
	for _, d := range p.compiledDenials {
		if loc := d.re.FindStringIndex(segText); loc != nil {
			pat := d.pattern
			return &pat, ByteRange{Start: loc[0], End: loc[1]}, true
		}
	}
	return nil, ByteRange{}, false
}

// Registry holds the global set of bundled packs, built once per process
// and shared across every evaluation (spec §5: "global pack cache,
// write-once").
type Registry struct {
	packs []*Pack
	byID  map[string]*Pack
}

// NewRegistry builds a registry over packs, indexing by ID. It does not
// compile any pack's regexes; that happens lazily per pack on first use.
func NewRegistry(packs []*Pack) *Registry {
	r := &Registry{packs: packs, byID: make(map[string]*Pack, len(packs))}
	for _, p := range packs {
		r.byID[p.ID] = p
	}
	return r
}

// Lookup returns the pack with the given ID, if loaded.
func (r *Registry) Lookup(id string) (*Pack, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// All returns every pack in the registry, in declaration order.
func (r *Registry) All() []*Pack {
	return r.packs
}

// CandidatePacks returns the packs whose keyword prefilter matches segText,
// in declaration order, per spec §4.5's "keyword-prefiltered" design.
func (r *Registry) CandidatePacks(segText string) []*Pack {
	lower := strings.ToLower(segText)
	var out []*Pack
	for _, p := range r.packs {
		if p.MatchesKeywords(lower) {
			out = append(out, p)
		}
	}
	return out
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry of bundled packs,
// building it on first call (spec §5's global write-once pack cache).
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(bundledPacks())
	})
	return defaultRegistry
}

// ValidatePacks compiles every pack eagerly and returns an error
// aggregating any pattern that failed to compile, for use by `dcg test`
// and startup self-checks rather than the hot evaluation path.
func ValidatePacks(r *Registry) error {
	var bad []string
	for _, p := range r.All() {
		p.compile()
		if len(p.compiledSafe) != len(p.SafePatterns) {
			bad = append(bad, fmt.Sprintf("%s: one or more safe patterns failed to compile", p.ID))
		}
		if len(p.compiledDenials) != len(p.DestructivePatterns) {
			bad = append(bad, fmt.Sprintf("%s: one or more destructive patterns failed to compile", p.ID))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("pack validation failed: %s", strings.Join(bad, "; "))
	}
	return nil
}
