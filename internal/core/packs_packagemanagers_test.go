package core

import "testing"

func TestPackageManagersPackSafePatterns(t *testing.T) {
	p := packageManagersPack()
	for _, cmd := range []string{
		"npm cache clean --force",
		"npm install lodash",
		"pip install requests",
		"cargo add serde",
	} {
		if m := p.Evaluate(cmd); m != nil {
			t.Errorf("expected %q to be safe, got match %+v", cmd, m)
		}
	}
}

func TestPackageManagersPackDestructivePatterns(t *testing.T) {
	p := packageManagersPack()

	m := p.Evaluate("npm uninstall lodash")
	if m == nil || m.Name != "npm-uninstall" || m.Severity != SeverityLow {
		t.Fatalf("expected npm-uninstall/low, got %+v", m)
	}

	m = p.Evaluate("apt-get purge nginx")
	if m == nil || m.Name != "apt-remove-purge" || m.Severity != SeverityMedium {
		t.Fatalf("expected apt-remove-purge/medium, got %+v", m)
	}

	m = p.Evaluate("cargo remove serde")
	if m == nil || m.Name != "cargo-remove" {
		t.Fatalf("expected cargo-remove, got %+v", m)
	}
}
