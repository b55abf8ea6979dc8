package core

// scriptingPack covers destructive filesystem/process idioms written
// directly in an interpreter's own source, recovered by heredoc or -c/-e
// recursion rather than shell syntax (spec §4.4). Grounded on
// original_source/tests/security_regressions_v2.rs's `python3 << "EOF
// SPACE"` regression, which pipes `shutil.rmtree('/tmp/test')` into python3
// and expects a Deny; the Node, Ruby, and Perl patterns generalize that same
// idiom (shell out to rm -rf, or call the language's own recursive-delete)
// to the sibling interpreters spec.md names as recursion targets, since
// original_source has no dedicated regression for those languages.
func scriptingPack() *Pack {
	return &Pack{
		ID:          "core.scripting",
		Name:        "Scripting",
		Description: "Destructive filesystem or process calls embedded in an interpreter's own code",
		Keywords: []string{
			"shutil", "rmtree", "os.system", "os.remove", "os.unlink",
			"fs.rm", "child_process", "rimraf",
			"fileutils", "rm_rf", "rm_r", "unlink", "system(",
		},
		DestructivePatterns: []DestructivePattern{
			{
				Name:     "python-shutil-rmtree",
				Regex:    `shutil\.rmtree\s*\(\s*['"]/`,
				Reason:   "recursive directory removal via Python's shutil.rmtree on an absolute path",
				Severity: SeverityCritical,
				Explanation: "shutil.rmtree deletes a directory tree immediately with no confirmation and no " +
					"trash; an absolute-path argument can reach well outside the calling script's own directory.",
			},
			{
				Name:     "python-os-system-rm",
				Regex:    `os\.system\s*\(\s*['"]rm\s+-[a-zA-Z]*[rf][a-zA-Z]*\s`,
				Reason:   "shelling out to rm -rf from Python via os.system",
				Severity: SeverityCritical,
				Explanation: "os.system hands the string straight to /bin/sh, so this carries exactly the same " +
					"risk as typing the rm -rf command directly.",
			},
			{
				Name:     "node-fs-rm-recursive",
				Regex:    `fs\.rmSync\s*\([^)]*recursive\s*:\s*true`,
				Reason:   "recursive synchronous directory removal via Node's fs.rmSync",
				Severity: SeverityCritical,
				Explanation: "fs.rmSync with recursive: true deletes a directory tree synchronously with no " +
					"confirmation and blocks the event loop while it does it.",
			},
			{
				Name:     "node-child-process-rm",
				Regex:    `child_process\.(exec|execSync)\s*\(\s*['"]rm\s+-[a-zA-Z]*[rf][a-zA-Z]*\s`,
				Reason:   "shelling out to rm -rf from Node via child_process",
				Severity: SeverityCritical,
				Explanation: "child_process.exec/execSync runs the string in a shell, carrying the same risk " +
					"as the equivalent shell command.",
			},
			{
				Name:     "ruby-fileutils-rm-rf",
				Regex:    `FileUtils\.rm_rf?\s*\(?\s*['"]/`,
				Reason:   "recursive directory removal via Ruby's FileUtils.rm_rf on an absolute path",
				Severity: SeverityCritical,
				Explanation: "FileUtils.rm_rf deletes a directory tree with no confirmation and no trash.",
			},
			{
				Name:     "ruby-kernel-system-rm",
				Regex:    `\bsystem\s*\(\s*['"]rm\s+-[a-zA-Z]*[rf][a-zA-Z]*\s`,
				Reason:   "shelling out to rm -rf via Kernel#system",
				Severity: SeverityCritical,
				Explanation: "Kernel#system runs the string in a subshell, carrying the same risk as the " +
					"equivalent shell command.",
			},
			{
				Name:     "perl-rmtree",
				Regex:    `rmtree\s*\(\s*['"]?/`,
				Reason:   "recursive directory removal via Perl's File::Path::rmtree on an absolute path",
				Severity: SeverityCritical,
				Explanation: "File::Path::rmtree removes a directory tree with no confirmation.",
			},
			{
				Name:     "perl-system-rm",
				Regex:    `\bsystem\s*\(\s*['"]rm\s+-[a-zA-Z]*[rf][a-zA-Z]*\s`,
				Reason:   "shelling out to rm -rf via Perl's system()",
				Severity: SeverityCritical,
				Explanation: "system() runs the string in a subshell, carrying the same risk as the equivalent shell command.",
			},
		},
	}
}
