package main

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/corvid-labs/dcg/internal/core"
	"github.com/corvid-labs/dcg/internal/history"
	"github.com/corvid-labs/dcg/internal/hookio"
)

// hookInputByteLimit bounds how much of stdin the hook will read before
// refusing input and failing open, guarding against a misbehaving host
// pumping an unbounded stream into the process.
const hookInputByteLimit = 100 * 1024

func init() {
	rootCmd.AddCommand(hookCmd)
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Run as a Claude Code PreToolUse hook (reads JSON on stdin, writes a decision on stdout)",
	Long: `Reads a PreToolUse hook payload on stdin, classifies the Bash command it
describes, and writes a JSON decision on stdout.

Non-Bash tool calls and calls with no recoverable command string produce an
empty allow decision. Any internal failure (malformed config, oversized
input, a panic in the evaluator) fails open: the command is allowed, and a
human-readable warning is written to stderr.`,
	RunE: runHook,
}

func runHook(cmd *cobra.Command, args []string) error {
	stdin, stdout, stderr := cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()

	in, err := hookio.ReadInput(stdin, hookInputByteLimit)
	if err != nil {
		log.Warn("hook: failed to read input, allowing", "error", err)
		return hookio.Write(stdout, hookio.Allow())
	}

	command, ok := hookio.ExtractCommand(in)
	if !ok {
		return hookio.Write(stdout, hookio.Allow())
	}

	decision := evaluateForHook(command)

	renderer := newRenderer()
	renderer.Render(stderr, command, decision)

	recordHistory(command, decision)

	switch decision.Kind {
	case core.DecisionDeny:
		allowOnce := issueAllowOnce(command, decision.Match)
		return hookio.Write(stdout, hookio.Deny(command, *decision.Match, decision.Confidence, allowOnce))
	case core.DecisionWarn:
		// Warn produces no JSON on stdout: the host allows the command, and
		// the human-visible warning already went to stderr above.
		return nil
	default:
		return hookio.Write(stdout, hookio.Allow())
	}
}

// evaluateForHook runs the evaluator, recovering from a panic in the
// classification pipeline so a bug in a bundled pack never crashes a hook
// invocation; per the fail-open policy, a recovered panic is reported as an
// Allow.
func evaluateForHook(command string) (decision core.EvaluationDecision) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("hook: evaluator panic, allowing", "command", command, "panic", r)
			decision = core.EvaluationDecision{Kind: core.DecisionAllow}
		}
	}()
	return buildEvaluator().Evaluate(command)
}

// recordHistory persists decision if a history database is reachable.
// History is best-effort: a database that can't be opened or written to
// must never block the underlying allow/deny verdict.
func recordHistory(command string, decision core.EvaluationDecision) {
	db, err := openHistory()
	if err != nil {
		if flagVerbose {
			log.Warn("hook: history database unavailable", "error", err)
		}
		return
	}
	defer db.Close()

	agent := resolvedAgent().Agent.Name
	rec := history.FromDecision(command, decision, agent, projectDir())
	if err := db.Record(rec); err != nil && flagVerbose {
		log.Warn("hook: failed to record history", "error", err)
	}
}

// issueAllowOnce writes a pending allow-once record for a denied command
// so `dcg allow-once <code>` can recover the exact command text later.
// Failure to issue one is non-fatal: the deny response simply omits the
// allowOnceCommand remediation field.
func issueAllowOnce(command string, match *core.Match) *hookio.AllowOnce {
	dir := filepath.Join(projectDir(), ".dcg", "pending")
	ref, err := hookio.IssueAllowOnce(dir, command, match.RuleID().String())
	if err != nil {
		if flagVerbose {
			log.Warn("hook: failed to issue allow-once code", "error", err)
		}
		return nil
	}
	return &ref
}
