package core

import "testing"

func TestFilesystemPackSafePatterns(t *testing.T) {
	p := filesystemPack()
	for _, cmd := range []string{
		"rm debug.log",
		"rm -rf /tmp/build",
		"chmod 644 ./config.yaml",
	} {
		if m := p.Evaluate(cmd); m != nil {
			t.Errorf("expected %q to be safe, got match %+v", cmd, m)
		}
	}
}

func TestFilesystemPackDestructivePatterns(t *testing.T) {
	p := filesystemPack()

	m := p.Evaluate("rm -rf /etc")
	if m == nil || m.Name != "rm-rf-system-root" || m.Severity != SeverityCritical {
		t.Fatalf("expected rm-rf-system-root/critical, got %+v", m)
	}

	m = p.Evaluate("rm -rf /")
	if m == nil || m.Name != "rm-rf-root" || m.Severity != SeverityCritical {
		t.Fatalf("expected rm-rf-root/critical, got %+v", m)
	}

	m = p.Evaluate("rm -rf ~")
	if m == nil || m.Name != "rm-rf-home" || m.Severity != SeverityCritical {
		t.Fatalf("expected rm-rf-home/critical, got %+v", m)
	}

	m = p.Evaluate("rm -rf ./build")
	if m == nil || m.Name != "rm-rf-bare" || m.Severity != SeverityHigh {
		t.Fatalf("expected rm-rf-bare/high, got %+v", m)
	}

	m = p.Evaluate("chmod -R 777 /etc")
	if m == nil || m.Name != "chmod-system-path" || m.Severity != SeverityCritical {
		t.Fatalf("expected chmod-system-path/critical, got %+v", m)
	}
}
