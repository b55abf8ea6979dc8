package hookio

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// PendingTTL is how long an issued allow-once code remains redeemable.
const PendingTTL = 10 * time.Minute

// PendingAllowOnce is the on-disk record backing an issued allow-once code,
// the materialized-snapshot counterpart to the teacher's `.slb/pending/`
// directory of JSON request snapshots: a short-lived file bridging two
// separate CLI invocations (the hook that denied the command, and the
// later `dcg allow-once <code>` that redeems it).
type PendingAllowOnce struct {
	Code      string    `json:"code"`
	FullHash  string    `json:"fullHash"`
	Command   string    `json:"command"`
	RuleID    string    `json:"ruleId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HashCommand returns the full hex digest and an 8-character short code
// derived from command, used both to label a denial and to key its pending
// allow-once record.
func HashCommand(command string) (fullHash, code string) {
	sum := sha256.Sum256([]byte(command))
	fullHash = hex.EncodeToString(sum[:])
	return fullHash, fullHash[:8]
}

// pendingPath returns the file a pending allow-once record for code is
// stored at under dir (normally <project>/.dcg/pending).
func pendingPath(dir, code string) string {
	return filepath.Join(dir, code+".json")
}

// IssueAllowOnce writes a pending allow-once record for command to dir,
// returning the AllowOnce reference embedded in the hook's deny response.
// A collision on an already-pending, unexpired code for the same command
// is idempotent; uuid.New() never collides in practice, but the short code
// is a hash prefix, not a UUID, so two different commands could in
// principle share one.
func IssueAllowOnce(dir, command, ruleID string) (AllowOnce, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return AllowOnce{}, fmt.Errorf("creating pending directory: %w", err)
	}

	fullHash, code := HashCommand(command)
	now := time.Now().UTC()
	rec := PendingAllowOnce{
		Code:      code,
		FullHash:  fullHash,
		Command:   command,
		RuleID:    ruleID,
		CreatedAt: now,
		ExpiresAt: now.Add(PendingTTL),
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return AllowOnce{}, err
	}
	// Write atomically so a concurrent reader never observes a partial file.
	tmp := pendingPath(dir, code) + "." + uuid.New().String() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return AllowOnce{}, fmt.Errorf("writing pending allow-once record: %w", err)
	}
	if err := os.Rename(tmp, pendingPath(dir, code)); err != nil {
		os.Remove(tmp)
		return AllowOnce{}, fmt.Errorf("finalizing pending allow-once record: %w", err)
	}

	return AllowOnce{Code: code, FullHash: fullHash}, nil
}

// ErrAllowOnceNotFound is returned by RedeemAllowOnce when no pending
// record matches code.
var ErrAllowOnceNotFound = fmt.Errorf("no pending allow-once code found (it may have already been used or expired)")

// ErrAllowOnceExpired is returned by RedeemAllowOnce when the matching
// record's TTL has passed.
var ErrAllowOnceExpired = fmt.Errorf("allow-once code has expired")

// RedeemAllowOnce reads and deletes the pending record for code, making it
// single-use. A second redemption attempt returns ErrAllowOnceNotFound.
func RedeemAllowOnce(dir, code string) (PendingAllowOnce, error) {
	path := pendingPath(dir, code)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return PendingAllowOnce{}, ErrAllowOnceNotFound
		}
		return PendingAllowOnce{}, fmt.Errorf("reading pending allow-once record: %w", err)
	}

	var rec PendingAllowOnce
	if err := json.Unmarshal(data, &rec); err != nil {
		return PendingAllowOnce{}, fmt.Errorf("parsing pending allow-once record: %w", err)
	}

	os.Remove(path) // single-use regardless of expiry outcome below

	if time.Now().UTC().After(rec.ExpiresAt) {
		return PendingAllowOnce{}, ErrAllowOnceExpired
	}
	return rec, nil
}
