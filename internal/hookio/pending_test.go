package hookio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIssueThenRedeemAllowOnce(t *testing.T) {
	dir := t.TempDir()
	ref, err := IssueAllowOnce(dir, "rm -rf /etc/myapp-scratch", "core.filesystem:rm-rf-system-root")
	if err != nil {
		t.Fatalf("IssueAllowOnce failed: %v", err)
	}
	if ref.Code == "" || ref.FullHash == "" {
		t.Fatalf("ref = %+v, want both Code and FullHash set", ref)
	}

	rec, err := RedeemAllowOnce(dir, ref.Code)
	if err != nil {
		t.Fatalf("RedeemAllowOnce failed: %v", err)
	}
	if rec.Command != "rm -rf /etc/myapp-scratch" {
		t.Fatalf("Command = %q", rec.Command)
	}
	if rec.FullHash != ref.FullHash {
		t.Fatalf("FullHash = %q, want %q", rec.FullHash, ref.FullHash)
	}
}

func TestRedeemAllowOnceIsSingleUse(t *testing.T) {
	dir := t.TempDir()
	ref, err := IssueAllowOnce(dir, "rm -rf /tmp/scratch", "core.filesystem:rm-rf-bare")
	if err != nil {
		t.Fatalf("IssueAllowOnce failed: %v", err)
	}
	if _, err := RedeemAllowOnce(dir, ref.Code); err != nil {
		t.Fatalf("first redemption failed: %v", err)
	}
	if _, err := RedeemAllowOnce(dir, ref.Code); err != ErrAllowOnceNotFound {
		t.Fatalf("second redemption err = %v, want ErrAllowOnceNotFound", err)
	}
}

func TestRedeemAllowOnceUnknownCode(t *testing.T) {
	dir := t.TempDir()
	if _, err := RedeemAllowOnce(dir, "deadbeef"); err != ErrAllowOnceNotFound {
		t.Fatalf("err = %v, want ErrAllowOnceNotFound", err)
	}
}

func TestRedeemAllowOnceExpired(t *testing.T) {
	dir := t.TempDir()
	ref, err := IssueAllowOnce(dir, "rm -rf /tmp/scratch", "core.filesystem:rm-rf-bare")
	if err != nil {
		t.Fatalf("IssueAllowOnce failed: %v", err)
	}

	// Rewrite the pending file with an already-past expiry to avoid
	// sleeping PendingTTL in a test.
	path := filepath.Join(dir, ref.Code+".json")
	rec := PendingAllowOnce{
		Code: ref.Code, FullHash: ref.FullHash, Command: "rm -rf /tmp/scratch",
		CreatedAt: time.Now().UTC().Add(-time.Hour), ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		t.Fatalf("marshaling pending record: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("rewriting pending record: %v", err)
	}

	if _, err := RedeemAllowOnce(dir, ref.Code); err != ErrAllowOnceExpired {
		t.Fatalf("err = %v, want ErrAllowOnceExpired", err)
	}
}
