package core

// packageManagersPack is grounded on the teacher's own
// internal/core/patterns.go package manager entries (npm cache clean as
// safe, npm/pip uninstall and cargo remove as caution-tier), generalized to
// the remaining common ecosystem package managers that expose an equivalent
// uninstall/remove verb.
func packageManagersPack() *Pack {
	return &Pack{
		ID:          "core.packagemanagers",
		Name:        "Package Managers",
		Description: "Removal operations across common language package managers",
		Keywords:    []string{"npm", "pip", "cargo", "yarn", "pnpm", "gem uninstall", "apt", "apt-get", "brew uninstall"},
		SafePatterns: []SafePattern{
			{Name: "npm-cache-clean", Regex: `^npm\s+cache\s+clean`},
			{Name: "npm-install", Regex: `^npm\s+(?:install|i|ci)\b`},
			{Name: "pip-install", Regex: `^pip\s+install\b`},
			{Name: "cargo-add", Regex: `^cargo\s+add\b`},
			{Name: "yarn-add", Regex: `^yarn\s+add\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{Name: "npm-uninstall", Regex: `^npm\s+(?:uninstall|remove|rm|un)\b`, Severity: SeverityLow, Reason: "removes an npm dependency", Explanation: "Removes the package from node_modules and package.json; anything importing it will break until reinstalled."},
			{Name: "pip-uninstall", Regex: `^pip\s+uninstall\b`, Severity: SeverityLow, Reason: "removes a Python package", Explanation: "Uninstalls the package from the active environment; code importing it will fail at import time."},
			{Name: "cargo-remove", Regex: `^cargo\s+remove\b`, Severity: SeverityLow, Reason: "removes a Rust crate dependency", Explanation: "Removes the dependency from Cargo.toml; code using it will fail to compile."},
			{Name: "yarn-remove", Regex: `^yarn\s+remove\b`, Severity: SeverityLow, Reason: "removes a yarn dependency", Explanation: "Removes the package from package.json and the yarn lockfile."},
			{Name: "apt-remove-purge", Regex: `^apt(?:-get)?\s+(?:purge|autoremove)\b`, Severity: SeverityMedium, Reason: "removes system packages and, for purge, their configuration", Explanation: "purge additionally deletes configuration files; autoremove can remove packages other software still depends on indirectly."},
			{Name: "brew-uninstall", Regex: `^brew\s+uninstall\b`, Severity: SeverityLow, Reason: "removes a Homebrew package", Explanation: "Removes the formula/cask; anything linking against it will break until reinstalled."},
			{Name: "gem-uninstall", Regex: `^gem\s+uninstall\b`, Severity: SeverityLow, Reason: "removes a Ruby gem", Explanation: "Uninstalls the gem; code requiring it will raise a LoadError."},
		},
	}
}
