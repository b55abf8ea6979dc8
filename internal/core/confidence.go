package core

import "strings"

// ConfidenceSignal is one contributing factor to a match's confidence
// score, per spec §4.8.
type ConfidenceSignal int

const (
	SignalExecutedSpan ConfidenceSignal = iota
	SignalInlineCodeSpan
	SignalDataSpan
	SignalArgumentSpan
	SignalCommentSpan
	SignalHeredocBodySpan
	SignalUnknownSpan
	SignalSanitizedRegion
	SignalExecutionOperatorsNearby
	SignalCommandPosition
	SignalArgumentPosition
)

// Weight returns the multiplier this signal applies to a running confidence
// score. Values below 1.0 reduce confidence; values above 1.0 boost it.
// These mirror the teacher's original scoring table exactly.
func (s ConfidenceSignal) Weight() float64 {
	switch s {
	case SignalExecutedSpan:
		return 1.0
	case SignalInlineCodeSpan:
		return 1.0
	case SignalCommandPosition:
		return 1.1
	case SignalExecutionOperatorsNearby:
		return 1.1
	case SignalDataSpan:
		return 0.1
	case SignalCommentSpan:
		return 0.05
	case SignalArgumentSpan:
		return 0.3
	case SignalSanitizedRegion:
		return 0.2
	case SignalArgumentPosition:
		return 0.6
	case SignalHeredocBodySpan:
		return 0.7
	case SignalUnknownSpan:
		return 0.8
	default:
		return 1.0
	}
}

// Description is a human-readable explanation of this signal, surfaced by
// `dcg explain` and in verbose denial output.
func (s ConfidenceSignal) Description() string {
	switch s {
	case SignalExecutedSpan:
		return "match is in executed code"
	case SignalInlineCodeSpan:
		return "match is in inline code (bash -c, python -c, etc.)"
	case SignalDataSpan:
		return "match is in a data string (single-quoted)"
	case SignalCommentSpan:
		return "match is in a comment"
	case SignalArgumentSpan:
		return "match is in a string argument to a safe command"
	case SignalHeredocBodySpan:
		return "match is in a heredoc body"
	case SignalUnknownSpan:
		return "match context is ambiguous"
	case SignalSanitizedRegion:
		return "match was in a region masked by sanitization"
	case SignalExecutionOperatorsNearby:
		return "execution operators (|, ;, &&) found nearby"
	case SignalCommandPosition:
		return "match is at command position"
	case SignalArgumentPosition:
		return "match is in argument position"
	default:
		return "unknown signal"
	}
}

// DefaultWarnThreshold is the confidence value below which a would-be Deny
// is downgraded to Warn, per spec §4.8.
const DefaultWarnThreshold = 0.5

// ConfidenceScore is a running confidence value plus the signals that
// produced it, kept for `dcg explain` and debugging.
type ConfidenceScore struct {
	Value   float64
	Signals []ConfidenceSignal
}

// HighConfidence returns the default starting score for a match, before any
// reducing signals are applied.
func HighConfidence() ConfidenceScore {
	return ConfidenceScore{Value: 1.0}
}

// AddSignal folds signal into the score multiplicatively, clamped to
// [0.0, 1.0].
func (c *ConfidenceScore) AddSignal(signal ConfidenceSignal) {
	c.Signals = append(c.Signals, signal)
	v := c.Value * signal.Weight()
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c.Value = v
}

// IsLow reports whether the score is below threshold.
func (c ConfidenceScore) IsLow(threshold float64) bool { return c.Value < threshold }

// ShouldWarn reports whether this score is low enough to downgrade a Deny
// to a Warn, using DefaultWarnThreshold.
func (c ConfidenceScore) ShouldWarn() bool { return c.IsLow(DefaultWarnThreshold) }

// ConfidenceContext is the input to ComputeMatchConfidence.
type ConfidenceContext struct {
	Command           string
	SanitizedCommand  string // empty means "not computed"
	HasSanitized      bool
	MatchStart        int
	MatchEnd          int
	Spans             CommandSpans // spans of Command (or the segment Command is drawn from)
	SpansBaseOffset   int          // Command-relative offset of Spans' coordinate origin
}

var executionOperators = []string{"|", ";", "&&", "||", "$(", "`"}

// ComputeMatchConfidence scores a single pattern match per spec §4.8: it
// checks whether the match fell in a sanitized region, classifies the span
// it landed in, looks for nearby execution operators, and checks whether
// the match sits at command position or argument position. Signals compound
// multiplicatively in that order.
func ComputeMatchConfidence(ctx ConfidenceContext) ConfidenceScore {
	score := HighConfidence()

	if ctx.HasSanitized && ctx.MatchStart < len(ctx.SanitizedCommand) && ctx.MatchEnd <= len(ctx.SanitizedCommand) && ctx.SanitizedCommand != ctx.Command {
		if ctx.Command[ctx.MatchStart:ctx.MatchEnd] != ctx.SanitizedCommand[ctx.MatchStart:ctx.MatchEnd] {
			score.AddSignal(SignalSanitizedRegion)
		}
	}

	if sig, ok := classifyMatchSpan(ctx.Spans, ctx.SpansBaseOffset, ctx.MatchStart, ctx.MatchEnd); ok {
		score.AddSignal(sig)
	}

	if hasExecutionOperatorsNearby(ctx.Command, ctx.MatchStart, ctx.MatchEnd) {
		score.AddSignal(SignalExecutionOperatorsNearby)
	}

	if isCommandPosition(ctx.Command, ctx.MatchStart) {
		score.AddSignal(SignalCommandPosition)
	} else {
		score.AddSignal(SignalArgumentPosition)
	}

	return score
}

// classifyMatchSpan finds the span (relative to baseOffset) containing the
// match and returns its corresponding confidence signal.
func classifyMatchSpan(spans CommandSpans, baseOffset, matchStart, matchEnd int) (ConfidenceSignal, bool) {
	relStart, relEnd := matchStart-baseOffset, matchEnd-baseOffset
	for _, sp := range spans.Spans {
		if sp.Range.Start <= relStart && relEnd <= sp.Range.End {
			switch sp.Kind {
			case SpanExecuted:
				return SignalExecutedSpan, true
			case SpanInlineCode:
				return SignalInlineCodeSpan, true
			case SpanData:
				return SignalDataSpan, true
			case SpanArgument:
				return SignalArgumentSpan, true
			case SpanComment:
				return SignalCommentSpan, true
			case SpanHeredocBody:
				return SignalHeredocBodySpan, true
			case SpanUnknown:
				return SignalUnknownSpan, true
			}
		}
	}
	return SignalUnknownSpan, true
}

// hasExecutionOperatorsNearby reports whether an execution operator appears
// within 20 bytes before or after the match.
func hasExecutionOperatorsNearby(command string, matchStart, matchEnd int) bool {
	searchStart := matchStart - 20
	if searchStart < 0 {
		searchStart = 0
	}
	prefix := command[searchStart:matchStart]

	searchEnd := matchEnd + 20
	if searchEnd > len(command) {
		searchEnd = len(command)
	}
	var suffix string
	if matchEnd <= len(command) {
		suffix = command[matchEnd:searchEnd]
	}

	for _, op := range executionOperators {
		if strings.Contains(prefix, op) || strings.Contains(suffix, op) {
			return true
		}
	}
	return false
}

// isCommandPosition reports whether matchStart sits at the start of an
// executed command (start-of-string, or immediately after |, ;, (, `, &&,
// ||, or $().
func isCommandPosition(command string, matchStart int) bool {
	if matchStart == 0 {
		return true
	}
	prefix := strings.TrimRight(command[:matchStart], " \t\n")
	if prefix == "" {
		return true
	}
	last := prefix[len(prefix)-1]
	switch last {
	case '|', ';', '(', '`':
		return true
	}
	return strings.HasSuffix(prefix, "&&") || strings.HasSuffix(prefix, "||") || strings.HasSuffix(prefix, "$(")
}

// ShouldDowngradeToWarn computes confidence and reports whether it falls
// below DefaultWarnThreshold, combining scoring with the downgrade decision
// in one call for the evaluator.
func ShouldDowngradeToWarn(ctx ConfidenceContext) (ConfidenceScore, bool) {
	score := ComputeMatchConfidence(ctx)
	return score, score.ShouldWarn()
}
