package core

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// EvaluatorConfig tunes the evaluator per spec §6's [evaluator] section.
type EvaluatorConfig struct {
	BudgetMS            int     // default 50
	WarnThreshold       float64 // default DefaultWarnThreshold
	HeredocEnabled      bool
	HeredocMaxDepth     int // default DefaultRecursionDepthLimit
	EnabledPacks        []string
	SeverityOverrides   map[RuleID]Severity
	DecisionOverrides   map[RuleID]DecisionKind
}

// DefaultEvaluatorConfig returns the spec's documented defaults.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		BudgetMS:        50,
		WarnThreshold:   DefaultWarnThreshold,
		HeredocEnabled:  true,
		HeredocMaxDepth: DefaultRecursionDepthLimit,
	}
}

// Evaluator ties the pack registry, allowlist, and confidence scorer
// together into the single evaluate(command) -> EvaluationDecision contract
// of spec §4.6.
type Evaluator struct {
	Registry  *Registry
	Allowlist LayeredAllowlist
	Config    EvaluatorConfig
	CWD       string
	Clock     func() time.Time
}

// NewEvaluator constructs an Evaluator with sane defaults, using the
// process-global pack registry unless overridden.
func NewEvaluator(registry *Registry, allowlist LayeredAllowlist, cfg EvaluatorConfig) *Evaluator {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if cfg.BudgetMS == 0 {
		cfg.BudgetMS = 50
	}
	if cfg.WarnThreshold == 0 {
		cfg.WarnThreshold = DefaultWarnThreshold
	}
	if cfg.HeredocMaxDepth == 0 {
		cfg.HeredocMaxDepth = DefaultRecursionDepthLimit
	}
	return &Evaluator{
		Registry:  registry,
		Allowlist: allowlist,
		Config:    cfg,
		Clock:     time.Now,
	}
}

// candidateMatch is an in-flight destructive match, kept alongside enough
// context to compute its confidence and allowlist override later.
type candidateMatch struct {
	match         Match
	segmentIndex  int
	spans         CommandSpans // segment-local coordinates (same base as segText)
	segText       string       // the segment's normalized text; matchInSeg is relative to this
	matchInSeg    ByteRange
}

// Evaluate runs the full pipeline against command and returns a decision.
// It never panics and never returns an error: internal failures degrade to
// a logged, fail-open Allow, per spec §4.6/§7.
func (e *Evaluator) Evaluate(command string) (decision EvaluationDecision) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("evaluator: recovered from panic, failing open", "command", command, "panic", r)
			decision = EvaluationDecision{Kind: DecisionAllow}
		}
	}()

	budget := time.Duration(e.Config.BudgetMS) * time.Millisecond
	deadline := e.Clock().Add(budget)

	checkBudget := func(stage string) (EvaluationDecision, bool) {
		if budget <= 0 {
			return EvaluationDecision{}, false
		}
		if e.Clock().After(deadline) {
			log.Warn("evaluator: budget exceeded, failing open", "stage", stage, "command", command)
			return EvaluationDecision{Kind: DecisionSkippedDueToBudget, BudgetStage: stage}, true
		}
		return EvaluationDecision{}, false
	}

	if d, exceeded := checkBudget("normalize"); exceeded {
		return d
	}
	nc := Normalize(command)
	segments := SegmentCommand(nc)

	if d, exceeded := checkBudget("segment"); exceeded {
		return d
	}

	var candidates []candidateMatch
	heredocCursor := 0

	for segIdx, seg := range segments {
		if seg.Kind == SpawnPipeTarget {
			continue
		}

		peeled, _ := PeelWrappers(seg.Text)
		_, commandName := ResolveCommandToken(peeled)

		heredocStart := heredocCursor
		spans := ClassifySpans(seg.Text, commandName, nc.Heredocs, &heredocCursor)

		if d, exceeded := checkBudget("classify"); exceeded {
			return d
		}

		if c, ok := e.findSegmentMatch(seg, segIdx, spans, nc); ok {
			candidates = append(candidates, c)
		}

		if e.Config.HeredocEnabled && seg.Depth < e.Config.HeredocMaxDepth {
			units := CollectRecursiveUnits(nc, seg, spans, heredocStart)
			for ui, u := range units {
				if d, exceeded := checkBudget("heredoc-recursion"); exceeded {
					return d
				}

				// A non-shell payload (python/node/perl/ruby) doesn't parse
				// as shell grammar: it gets its own minimal classifier
				// instead of Normalize/SegmentCommand, per spec §4.4's
				// per-language recursion rule.
				if u.Lang != LangShell && u.Lang != LangNone {
					if c, ok := e.evaluateScriptingUnit(u, segIdx*1000+ui); ok {
						candidates = append(candidates, c)
					}
					continue
				}

				childNC := Normalize(u.Text)
				childSegs := SegmentCommand(childNC)
				childCursor := 0
				for ci, childSeg := range childSegs {
					childSeg.Depth = u.Depth
					cp, _ := PeelWrappers(childSeg.Text)
					_, childCmdName := ResolveCommandToken(cp)
					childSpans := ClassifySpans(childSeg.Text, childCmdName, childNC.Heredocs, &childCursor)
					if c, ok := e.findSegmentMatch(childSeg, segIdx*1000+ci, childSpans, childNC); ok {
						candidates = append(candidates, c)
					}
				}
			}
		}
	}

	if d, exceeded := checkBudget("evaluate"); exceeded {
		return d
	}

	if len(candidates) == 0 {
		return EvaluationDecision{Kind: DecisionAllow}
	}

	best := mostSevere(candidates)

	if hit, ok := e.Allowlist.MatchRuleAtPath(best.match.PackID, best.match.PatternName, best.match.Severity, e.CWD); ok {
		return EvaluationDecision{
			Kind:  DecisionAllow,
			Match: &best.match,
			AllowlistOverride: &AllowlistOverride{
				Layer:  hit.Layer,
				Entry:  hit.Entry,
				Reason: hit.Entry.Reason,
			},
		}
	}
	if hit, ok := e.Allowlist.MatchExactCommandAtPath(command, e.CWD); ok {
		return EvaluationDecision{
			Kind:  DecisionAllow,
			Match: &best.match,
			AllowlistOverride: &AllowlistOverride{
				Layer:  hit.Layer,
				Entry:  hit.Entry,
				Reason: hit.Entry.Reason,
			},
		}
	}
	if hit, ok := e.Allowlist.MatchCommandPrefixAtPath(command, e.CWD); ok {
		return EvaluationDecision{
			Kind:  DecisionAllow,
			Match: &best.match,
			AllowlistOverride: &AllowlistOverride{
				Layer:  hit.Layer,
				Entry:  hit.Entry,
				Reason: hit.Entry.Reason,
			},
		}
	}

	if d, exceeded := checkBudget("allowlist"); exceeded {
		return d
	}

	confCtx := ConfidenceContext{
		Command:         best.segText,
		MatchStart:      best.matchInSeg.Start,
		MatchEnd:        best.matchInSeg.End,
		Spans:           best.spans,
		SpansBaseOffset: 0,
	}
	score := ComputeMatchConfidence(confCtx)

	kind := DecisionDeny
	threshold := e.Config.WarnThreshold
	if threshold == 0 {
		threshold = DefaultWarnThreshold
	}
	if score.IsLow(threshold) {
		kind = DecisionWarn
	}
	if dk, ok := e.Config.DecisionOverrides[best.match.RuleID()]; ok {
		kind = dk
	}

	return EvaluationDecision{
		Kind:       kind,
		Match:      &best.match,
		Confidence: &score,
	}
}

// findSegmentMatch runs every keyword-candidate pack against seg's text and
// returns the first destructive match found, in pack declaration order.
//
// Matching never runs against seg.Text directly. Per spec §4.6 step 2, only
// the parts of the segment that will actually execute should feed the
// pattern matcher: data held in quotes or in a safe argument (the message
// on `git commit -m`, the string after `echo`) is masked to spaces first, so
// an unanchored destructive pattern can't fire on a substring that's merely
// being printed or passed as a value (original_source/tests/repro_echo_fp.rs).
// The masked text is then wrapper-peeled and command-token-resolved exactly
// as the normalizer would for the segment as a whole, because most packs'
// patterns are written assuming a bare basename at command position (e.g.
// `^git\s+reset\s+--hard\b`, which never matches `/usr/bin/git reset
// --hard`). Matched byte ranges are translated back through both
// transforms into seg.Text's coordinates so spans, confidence scoring, and
// the reported original-command span all stay consistent.
func (e *Evaluator) findSegmentMatch(seg Segment, segIdx int, spans CommandSpans, nc NormalizedCommand) (candidateMatch, bool) {
	masked := maskNonExecutableSpans(seg.Text, spans)
	peeled, _ := PeelWrappers(masked)
	rewritten, _ := ResolveCommandToken(peeled)

	peelOffset := 0
	if peeled != masked {
		if idx := strings.LastIndex(masked, peeled); idx >= 0 {
			peelOffset = idx
		}
	}
	wsLen, tokLen, baseLen := commandTokenOffsets(peeled)

	toSegRange := func(rng ByteRange) ByteRange {
		start := translateResolvedPos(rng.Start, wsLen, tokLen, baseLen) + peelOffset
		end := translateResolvedPos(rng.End, wsLen, tokLen, baseLen) + peelOffset
		if start < 0 {
			start = 0
		}
		if end > len(seg.Text) {
			end = len(seg.Text)
		}
		if start > end {
			start = end
		}
		return ByteRange{Start: start, End: end}
	}

	for _, pack := range e.Registry.CandidatePacks(rewritten) {
		if !e.packEnabled(pack.ID) {
			continue
		}
		dp, rng, ok := pack.FindMatch(rewritten)
		if !ok {
			continue
		}
		segRng := toSegRange(rng)
		severity := dp.Severity
		if sv, ok := e.Config.SeverityOverrides[RuleID{PackID: pack.ID, PatternName: dp.Name}]; ok {
			severity = sv
		}
		originalRange := nc.OffsetMap.ToOriginalRange(ByteRange{
			Start: seg.NormalizedRange.Start + segRng.Start,
			End:   seg.NormalizedRange.Start + segRng.End,
		})
		return candidateMatch{
			match: Match{
				PackID:         pack.ID,
				PatternName:    dp.Name,
				SegmentIndex:   segIdx,
				SpanInOriginal: originalRange,
				MatchedText:    seg.Text[segRng.Start:segRng.End],
				Severity:       severity,
				Reason:         dp.Reason,
				Explanation:    dp.Explanation,
				Suggestions:    dp.Suggestions,
			},
			segmentIndex: segIdx,
			spans:        spans,
			segText:      seg.Text,
			matchInSeg:   segRng,
		}, true
	}
	return candidateMatch{}, false
}

// evaluateScriptingUnit runs pack matching directly against a non-shell
// interpreter payload (python/node/perl/ruby) recovered from a heredoc body
// or inline -c/-e argument. These don't parse as shell grammar, so there's
// no segmenting, wrapper-peeling, or span masking to do: the language's own
// "classifier" here is simply that the whole payload is source code, and
// the scripting pack's patterns target that language's own destructive
// idioms directly (spec §4.4's per-language recursion rule).
func (e *Evaluator) evaluateScriptingUnit(u RecursiveUnit, segIdx int) (candidateMatch, bool) {
	for _, pack := range e.Registry.CandidatePacks(u.Text) {
		if !e.packEnabled(pack.ID) {
			continue
		}
		dp, rng, ok := pack.FindMatch(u.Text)
		if !ok {
			continue
		}
		severity := dp.Severity
		if sv, ok := e.Config.SeverityOverrides[RuleID{PackID: pack.ID, PatternName: dp.Name}]; ok {
			severity = sv
		}
		return candidateMatch{
			match: Match{
				PackID:         pack.ID,
				PatternName:    dp.Name,
				SegmentIndex:   segIdx,
				SpanInOriginal: rng,
				MatchedText:    u.Text[rng.Start:rng.End],
				Severity:       severity,
				Reason:         dp.Reason,
				Explanation:    dp.Explanation,
				Suggestions:    dp.Suggestions,
			},
			segmentIndex: segIdx,
			spans:        CommandSpans{Spans: []Span{{Range: ByteRange{Start: 0, End: len(u.Text)}, Kind: SpanExecuted}}},
			segText:      u.Text,
			matchInSeg:   rng,
		}, true
	}
	return candidateMatch{}, false
}

func (e *Evaluator) packEnabled(packID string) bool {
	if len(e.Config.EnabledPacks) == 0 {
		return true
	}
	for _, id := range e.Config.EnabledPacks {
		if id == packID {
			return true
		}
	}
	return false
}

// mostSevere picks the highest-severity candidate, breaking ties by
// earliest segment then earliest span start, per spec §4.6 step 5.
func mostSevere(candidates []candidateMatch) candidateMatch {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.match.Severity.Rank() > best.match.Severity.Rank() {
			best = c
			continue
		}
		if c.match.Severity.Rank() < best.match.Severity.Rank() {
			continue
		}
		if c.segmentIndex < best.segmentIndex {
			best = c
			continue
		}
		if c.segmentIndex == best.segmentIndex && c.match.SpanInOriginal.Start < best.match.SpanInOriginal.Start {
			best = c
		}
	}
	return best
}
