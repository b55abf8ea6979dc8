package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/corvid-labs/dcg/internal/core"
)

// Renderer renders an EvaluationDecision as a boxed message for a human
// watching the terminal a hook fired in. It holds no state beyond display
// preferences, so a single Renderer can be reused across many decisions in
// one process (the `dcg test` subcommand evaluates a batch of commands and
// prints one box per non-Allow result).
type Renderer struct {
	Palette Palette
	Color   ColorMode
}

// NewRenderer builds a Renderer from the configured color mode, defaulting
// to the Mocha palette the bundled packs' severities are keyed against.
func NewRenderer(color ColorMode) Renderer {
	if color == "" {
		color = ColorAuto
	}
	return Renderer{Palette: Mocha, Color: color}
}

// Render writes decision's human-readable form for command to w. Allow
// decisions with no allowlist override produce no output at all, matching
// the teacher's convention that a quiet tool stays quiet on the common
// path; every other Kind renders a box.
func (r Renderer) Render(w io.Writer, command string, decision core.EvaluationDecision) {
	switch decision.Kind {
	case core.DecisionAllow:
		if decision.AllowlistOverride != nil {
			fmt.Fprintln(w, r.renderAllowlistOverride(w, command, decision))
		}
	case core.DecisionDeny, core.DecisionWarn:
		fmt.Fprintln(w, r.renderVerdict(w, command, decision))
	case core.DecisionSkippedDueToBudget:
		fmt.Fprintln(w, r.renderBudgetSkip(w, command, decision))
	}
}

func (r Renderer) border() lipgloss.Border {
	if supportsUnicode() {
		return lipgloss.RoundedBorder()
	}
	return asciiBorder
}

func (r Renderer) width() int {
	return clampWidth(detectWidth())
}

// newRenderer builds a lipgloss.Renderer pinned to w's own color profile
// rather than the process-global default, so a non-terminal w (a file, a
// test buffer) or an explicit --no-color never leaks ANSI codes into piped
// output.
func (r Renderer) newRenderer(w io.Writer) *lipgloss.Renderer {
	rnd := lipgloss.NewRenderer(w)
	if !colorEnabled(r.Color) {
		rnd.SetColorProfile(termenv.Ascii)
	}
	return rnd
}

func (r Renderer) renderVerdict(w io.Writer, command string, decision core.EvaluationDecision) string {
	match := decision.Match
	severityColor := r.Palette.severityColor(string(match.Severity))
	st := newStyles(r.newRenderer(w), r.Palette, severityColor)

	width := r.width()
	verb := "BLOCKED"
	if decision.Kind == core.DecisionWarn {
		verb = "WARNING"
	}
	title := st.title.Render(fmt.Sprintf("%s  %s:%s  [%s]", verb, match.PackID, match.PatternName, strings.ToUpper(string(match.Severity))))

	lines := []string{title, ""}
	lines = append(lines, st.label.Render("Command")+"  "+st.command.Render(truncate(command, width-14)))
	lines = append(lines, st.label.Render("Reason")+"   "+match.Reason)
	if match.Explanation != "" {
		lines = append(lines, st.label.Render("Why")+"      "+wrap(match.Explanation, width-14))
	}
	if decision.Confidence != nil {
		lines = append(lines, st.label.Render("Confidence")+fmt.Sprintf(" %.0f%%", decision.Confidence.Value*100))
	}
	for _, s := range match.Suggestions {
		lines = append(lines, st.muted.Render("  -> "+s.SafeAlternative))
		if s.Explanation != "" {
			lines = append(lines, st.muted.Render("     "+s.Explanation))
		}
	}

	box := st.box.Copy().BorderStyle(r.border()).Width(width - 4)
	return box.Render(strings.Join(lines, "\n"))
}

func (r Renderer) renderAllowlistOverride(w io.Writer, command string, decision core.EvaluationDecision) string {
	st := newStyles(r.newRenderer(w), r.Palette, r.Palette.Low)
	ov := decision.AllowlistOverride
	title := st.title.Render(fmt.Sprintf("ALLOWED (%s allowlist)", ov.Layer.Label()))
	body := st.muted.Render(command)
	if ov.Reason != "" {
		body += "\n" + st.label.Render("Reason") + "  " + ov.Reason
	}
	box := st.box.Copy().BorderStyle(r.border()).Width(r.width() - 4)
	return box.Render(title + "\n\n" + body)
}

func (r Renderer) renderBudgetSkip(w io.Writer, command string, decision core.EvaluationDecision) string {
	st := newStyles(r.newRenderer(w), r.Palette, r.Palette.Medium)
	title := st.title.Render(fmt.Sprintf("EVALUATION SKIPPED (budget exceeded at %q, failing open)", decision.BudgetStage))
	box := st.box.Copy().BorderStyle(r.border()).Width(r.width() - 4)
	return box.Render(title + "\n\n" + st.muted.Render(command))
}

func truncate(s string, n int) string {
	if n <= 3 || len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// wrap performs simple greedy word-wrapping at width columns, good enough
// for explanation text that's a sentence or two long.
func wrap(s string, width int) string {
	if width <= 10 {
		return s
	}
	words := strings.Fields(s)
	var lines []string
	var cur strings.Builder
	for _, word := range words {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return strings.Join(lines, "\n       ")
}
