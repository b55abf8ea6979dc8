package output

import (
	"strings"
	"testing"
	"time"
)

func TestFormatAgeZeroIsUnknown(t *testing.T) {
	if got := FormatAge(time.Time{}); got != "unknown" {
		t.Fatalf("FormatAge(zero) = %q, want %q", got, "unknown")
	}
}

func TestFormatAgePastTimeReadsAgo(t *testing.T) {
	got := FormatAge(time.Now().Add(-3 * time.Hour))
	if !strings.HasSuffix(got, "ago") {
		t.Fatalf("FormatAge(past) = %q, want a trailing %q", got, "ago")
	}
}

func TestFormatExpiryNeverForZero(t *testing.T) {
	if got := FormatExpiry(time.Time{}); got != "never" {
		t.Fatalf("FormatExpiry(zero) = %q, want %q", got, "never")
	}
}

func TestFormatExpiryFutureSaysExpires(t *testing.T) {
	got := FormatExpiry(time.Now().Add(24 * time.Hour))
	if !strings.HasPrefix(got, "expires ") {
		t.Fatalf("FormatExpiry(future) = %q, want an %q prefix", got, "expires ")
	}
}

func TestFormatExpiryPastSaysExpired(t *testing.T) {
	got := FormatExpiry(time.Now().Add(-24 * time.Hour))
	if !strings.HasPrefix(got, "expired ") {
		t.Fatalf("FormatExpiry(past) = %q, want an %q prefix", got, "expired ")
	}
}

func TestFormatConfidenceRoundsToWholePercent(t *testing.T) {
	if got := FormatConfidence(0.873); got != "87%" {
		t.Fatalf("FormatConfidence(0.873) = %q, want %q", got, "87%")
	}
}
