package core

// filesystemPack covers rm/chmod/chown destruction of system paths, grounded
// on the teacher's own internal/core/patterns.go filesystem tier (critical:
// rm -rf on system roots; dangerous: bare rm -rf; caution: unqualified rm).
func filesystemPack() *Pack {
	return &Pack{
		ID:          "core.filesystem",
		Name:        "Filesystem",
		Description: "Destructive file and permission operations against system paths",
		Keywords:    []string{"rm ", "rmdir", "chmod", "chown", "shred", "unlink"},
		SafePatterns: []SafePattern{
			{Name: "rm-log-file", Regex: `^rm\s+[^-].*\.log$`},
			{Name: "rm-tmp-file", Regex: `^rm\s+[^-].*\.tmp$`},
			{Name: "rm-bak-file", Regex: `^rm\s+[^-].*\.bak$`},
			{Name: "rm-tmp-dir", Regex: `^rm\s+-[rf]+\s+/tmp/`},
			{Name: "chmod-relative", Regex: `^chmod\s+\d+\s+\./`},
		},
		DestructivePatterns: []DestructivePattern{
			{
				Name:     "rm-rf-system-root",
				Regex:    `^rm\s+(-[a-zA-Z]*[rf][a-zA-Z]*\s+)+/(boot|dev|etc|home|lib|lib64|media|mnt|opt|proc|root|run|sbin|srv|sys|usr|var)(\b|/)`,
				Reason:   "recursive force-remove of a top-level system directory",
				Severity: SeverityCritical,
				Explanation: "This removes an entire system directory tree. There is no undo once the " +
					"filesystem cache is flushed, and most of these paths are required for the " +
					"system to boot or keep running.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "rm -rf ./relative/path", Explanation: "scope the removal to a path under the current directory"},
					{SafeAlternative: "find <dir> -name '<pattern>' -delete", Explanation: "delete only the files that actually match, with a dry run first via -print"},
				},
			},
			{
				Name:        "rm-rf-root",
				Regex:       `^rm\s+(-[a-zA-Z]*[rf][a-zA-Z]*\s+)+/(\s|$)`,
				Reason:      "recursive force-remove of the filesystem root",
				Severity:    SeverityCritical,
				Explanation: "Removes every file reachable from /. This is catastrophic and unrecoverable.",
			},
			{
				Name:        "rm-rf-root-glob",
				Regex:       `^rm\s+(-[a-zA-Z]*[rf][a-zA-Z]*\s+)+/\*`,
				Reason:      "recursive force-remove of everything under the filesystem root",
				Severity:    SeverityCritical,
				Explanation: "Equivalent in effect to removing /: every top-level directory is deleted.",
			},
			{
				Name:        "rm-rf-home",
				Regex:       `^rm\s+(-[a-zA-Z]*[rf][a-zA-Z]*\s+)+~(\s|/|$)`,
				Reason:      "recursive force-remove of the user's home directory",
				Severity:    SeverityCritical,
				Explanation: "Deletes the invoking user's entire home directory, including dotfiles, SSH keys, and shell config.",
			},
			{
				Name:        "rm-rf-bare",
				Regex:       `^rm\s+-[a-zA-Z]*[rf][a-zA-Z]*[rf]?[a-zA-Z]*\s`,
				Reason:      "recursive force-remove with no path safety check",
				Severity:    SeverityHigh,
				Explanation: "rm -rf deletes without confirmation and recurses into subdirectories; a typo in the path is unrecoverable.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "rm -ri <path>", Explanation: "prompt before each removal"},
				},
			},
			{
				Name:        "chmod-system-path",
				Regex:       `^chmod\s+.*\s/(etc|usr|var|boot|bin|sbin)(\b|/)`,
				Reason:      "permission change on a system directory",
				Severity:    SeverityCritical,
				Explanation: "Changing permissions on system directories can break package managers, service daemons, and login.",
			},
			{
				Name:        "chown-system-path",
				Regex:       `^chown\s+.*\s/(etc|usr|var|boot|bin|sbin)(\b|/)`,
				Reason:      "ownership change on a system directory",
				Severity:    SeverityCritical,
				Explanation: "Changing ownership on system directories can lock out services and break privilege separation.",
			},
			{
				Name:        "chmod-recursive",
				Regex:       `^chmod\s+-R\s`,
				Reason:      "recursive permission change",
				Severity:    SeverityHigh,
				Explanation: "Recursive chmod can silently widen or narrow access across an entire tree, including files you didn't intend to touch.",
			},
			{
				Name:        "chown-recursive",
				Regex:       `^chown\s+-R\s`,
				Reason:      "recursive ownership change",
				Severity:    SeverityHigh,
				Explanation: "Recursive chown rewrites ownership for every file under the target, which can break services running as other users.",
			},
			{
				Name:        "shred-file",
				Regex:       `^shred\s+(-\S+\s+)*-u\b`,
				Reason:      "secure delete with unlink",
				Severity:    SeverityHigh,
				Explanation: "shred -u overwrites and removes the file; the content is not recoverable afterward.",
			},
		},
	}
}
