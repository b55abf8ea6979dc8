package output

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatAge renders t as a relative duration ("3 days ago"), used by
// `dcg allowlist list` and `dcg history` to show when an entry was added
// or a decision was recorded without forcing the reader to parse an
// RFC3339 timestamp.
func FormatAge(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.Time(t)
}

// FormatExpiry renders an allowlist entry's expiry. A zero Time means the
// entry never expires.
func FormatExpiry(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	if t.Before(time.Now()) {
		return "expired " + humanize.Time(t)
	}
	return "expires " + humanize.Time(t)
}

// FormatConfidence renders a 0..1 confidence value as a percentage.
func FormatConfidence(v float64) string {
	return humanize.FtoaWithDigits(v*100, 0) + "%"
}
