package core

// gitPack covers history-rewriting and working-tree-destroying git
// subcommands, grounded on the teacher's own internal/core/patterns.go git
// entries (force push, reset --hard, clean -fd, stash drop, branch -D).
func gitPack() *Pack {
	return &Pack{
		ID:          "core.git",
		Name:        "Git",
		Description: "History rewrites and destructive working-tree operations",
		Keywords:    []string{"git "},
		SafePatterns: []SafePattern{
			{Name: "git-status", Regex: `^git\s+status\b`},
			{Name: "git-log", Regex: `^git\s+log\b`},
			{Name: "git-diff", Regex: `^git\s+diff\b`},
			{Name: "git-stash-list", Regex: `^git\s+stash\s+(list|show)\b`},
			{Name: "git-stash-bare", Regex: `^git\s+stash\s*$`},
			{Name: "git-push-force-with-lease", Regex: `^git\s+push\s+.*--force-with-lease\b`},
			{Name: "git-push-dry-run", Regex: `^git\s+push\s+.*--dry-run\b`},
			{Name: "git-reset-soft", Regex: `^git\s+reset\s+--soft\b`},
			{Name: "git-reset-mixed", Regex: `^git\s+reset\s+(--mixed\s+)?\S+$`},
			{Name: "git-clean-dry-run", Regex: `^git\s+clean\s+.*-n\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{
				Name:        "push-force",
				Regex:       `^git\s+push\s+.*(--force|-f)(\s|$)`,
				Reason:      "force push overwrites remote history",
				Severity:    SeverityCritical,
				Explanation: "A force push rewrites the remote branch's history. Any commits only reachable from the old tip become unreachable for everyone who doesn't already have them.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "git push --force-with-lease", Explanation: "refuses to overwrite if the remote has commits you haven't seen"},
				},
			},
			{
				Name:        "reset-hard",
				Regex:       `^git\s+reset\s+--hard\b`,
				Reason:      "discards uncommitted changes and working-tree state",
				Severity:    SeverityHigh,
				Explanation: "reset --hard rewrites the index and working tree to match the target commit, discarding any uncommitted changes irreversibly.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "git stash", Explanation: "save your working-tree changes before resetting"},
				},
			},
			{
				Name:        "clean-force",
				Regex:       `^git\s+clean\s+(-\S*[fF]\S*\s*)+`,
				Reason:      "permanently deletes untracked files",
				Severity:    SeverityHigh,
				Explanation: "git clean -f removes untracked files with no way to recover them; -d extends this to untracked directories.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "git clean -n", Explanation: "list what would be removed before actually removing it"},
				},
			},
			{
				Name:        "stash-drop",
				Regex:       `^git\s+stash\s+(drop|clear)\b`,
				Reason:      "permanently discards stashed changes",
				Severity:    SeverityMedium,
				Explanation: "Dropped stash entries are not tracked by any ref and become unreachable once garbage collected.",
			},
			{
				Name:        "branch-force-delete",
				Regex:       `^git\s+branch\s+-D\b`,
				Reason:      "force-deletes a branch, including unmerged commits",
				Severity:    SeverityMedium,
				Explanation: "-D skips the safety check that -d performs, so commits only reachable from this branch can be lost.",
			},
			{
				Name:        "checkout-force",
				Regex:       `^git\s+checkout\s+(-f|--force)\b`,
				Reason:      "discards uncommitted changes on checkout",
				Severity:    SeverityMedium,
				Explanation: "Forced checkout silently throws away local modifications that conflict with the target branch.",
			},
			{
				Name:        "filter-branch",
				Regex:       `^git\s+filter-branch\b`,
				Reason:      "rewrites commit history across the whole repository",
				Severity:    SeverityHigh,
				Explanation: "filter-branch rewrites every commit it touches, changing SHAs and invalidating any clone that doesn't rebase onto the new history.",
			},
			{
				Name:        "gc-prune-aggressive",
				Regex:       `^git\s+gc\s+.*--prune=now\b`,
				Reason:      "immediately prunes unreachable objects",
				Severity:    SeverityMedium,
				Explanation: "Unreachable commits (e.g. from a reset or rebase you meant to undo) become permanently unrecoverable once pruned.",
			},
		},
	}
}
