package core

// scpPack is grounded on original_source/src/packs/remote/scp.rs: recursive
// copies to root and overwrites landing in system directories.
func scpPack() *Pack {
	return &Pack{
		ID:          "remote.scp",
		Name:        "scp",
		Description: "Protects against destructive scp operations like overwrites to system paths",
		Keywords:    []string{"scp"},
		SafePatterns: []SafePattern{
			{Name: "scp-help", Regex: `scp\b.*\s--?h(elp)?\b`},
			{Name: "scp-download", Regex: `scp\b.*\s(?:\S+@)?\S+:\S+\s+\.\S*\s*$`},
			{Name: "scp-to-home", Regex: `scp\b.*\s(?:(?:\S+@)?\S+:)?~/\S+\s*$`},
			{Name: "scp-to-tmp", Regex: `scp\b.*\s(?:(?:\S+@)?\S+:)?/tmp/\S*\s*$`},
		},
		DestructivePatterns: []DestructivePattern{
			{Name: "scp-recursive-root", Regex: `scp\b.*\s-[A-Za-z0-9]*r[A-Za-z0-9]*\b.*\s(?:(?:\S+@)?\S+:)?/\s*$`, Severity: SeverityCritical, Reason: "recursive copy targeting root", Explanation: "scp -r to / overwrites the destination's entire filesystem tree with the copied contents."},
			{Name: "scp-to-etc", Regex: `scp\b.*\s(?:(?:\S+@)?\S+:)?/etc(?:/\S*)?\s*$`, Severity: SeverityHigh, Reason: "copy targeting /etc", Explanation: "scp to /etc/ can overwrite system configuration."},
			{Name: "scp-to-var", Regex: `scp\b.*\s(?:(?:\S+@)?\S+:)?/var(?:/(?:[^t\s]\S*|t(?:[^m\s]\S*|m(?:[^p\s]\S*)?)?)?)?\s*$`, Severity: SeverityHigh, Reason: "copy targeting /var", Explanation: "scp to /var/ can overwrite system data."},
			{Name: "scp-to-boot", Regex: `scp\b.*\s(?:(?:\S+@)?\S+:)?/boot(?:/\S*)?\s*$`, Severity: SeverityCritical, Reason: "copy targeting /boot", Explanation: "scp to /boot/ can corrupt boot configuration."},
			{Name: "scp-to-usr", Regex: `scp\b.*\s(?:(?:\S+@)?\S+:)?/usr(?:/\S*)?\s*$`, Severity: SeverityHigh, Reason: "copy targeting /usr", Explanation: "scp to /usr/ can overwrite system binaries."},
			{Name: "scp-to-bin", Regex: `scp\b.*\s(?:(?:\S+@)?\S+:)?/(?:bin|sbin)(?:/\S*)?\s*$`, Severity: SeverityHigh, Reason: "copy targeting /bin or /sbin", Explanation: "scp to /bin/ or /sbin/ can overwrite system binaries."},
			{Name: "scp-to-lib", Regex: `scp\b.*\s(?:(?:\S+@)?\S+:)?/lib(?:64)?(?:/\S*)?\s*$`, Severity: SeverityHigh, Reason: "copy targeting /lib", Explanation: "scp to /lib/ can overwrite system libraries."},
		},
	}
}
