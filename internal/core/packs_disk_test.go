package core

import "testing"

func TestDiskPackSafePatterns(t *testing.T) {
	p := diskPack()
	for _, cmd := range []string{
		"lsblk",
		"fdisk -l",
		"dd if=/dev/zero of=/dev/null",
		"mdadm --detail /dev/md0",
	} {
		if m := p.Evaluate(cmd); m != nil {
			t.Errorf("expected %q to be safe, got match %+v", cmd, m)
		}
	}
}

func TestDiskPackDestructivePatterns(t *testing.T) {
	p := diskPack()

	// dd-device ("of=/dev/...") is declared before dd-wipe in the pack and
	// also matches this command, so it fires first.
	m := p.Evaluate("dd if=/dev/zero of=/dev/sda")
	if m == nil || m.Name != "dd-device" || m.Severity != SeverityHigh {
		t.Fatalf("expected dd-device/high, got %+v", m)
	}

	m = p.Evaluate("mkfs.ext4 /dev/sdb1")
	if m == nil || m.Name != "mkfs" || m.Severity != SeverityCritical {
		t.Fatalf("expected mkfs/critical, got %+v", m)
	}

	m = p.Evaluate("lvremove /dev/vg0/lv0")
	if m == nil || m.Name != "lvremove" || m.Severity != SeverityCritical {
		t.Fatalf("expected lvremove/critical, got %+v", m)
	}

	m = p.Evaluate("mdadm --stop /dev/md0")
	if m == nil || m.Name != "mdadm-stop" {
		t.Fatalf("expected mdadm-stop, got %+v", m)
	}
}
