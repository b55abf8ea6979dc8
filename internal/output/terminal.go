package output

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ColorMode mirrors the three settings accepted by config.toml's
// [output].color field.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// detectWidth returns the current terminal's column count, falling back to
// $COLUMNS and finally a conservative default when stderr isn't a TTY (a
// pipe, a redirected log file, a non-interactive hook invocation).
func detectWidth() int {
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		return w
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if v, err := strconv.Atoi(cols); err == nil && v > 0 {
			return v
		}
	}
	return 80
}

// clampWidth keeps the denial box from becoming unreadably narrow in a
// small pane or absurdly wide on an ultrawide terminal.
func clampWidth(w int) int {
	if w < 60 {
		return 60
	}
	if w > 120 {
		return 120
	}
	return w
}

// supportsUnicode reports whether the environment's locale advertises
// UTF-8, used to decide between a rounded box border and a plain ASCII one.
func supportsUnicode() bool {
	termEnv := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(termEnv, "dumb") {
		return false
	}
	locale := strings.ToLower(strings.Join([]string{
		os.Getenv("LC_ALL"), os.Getenv("LC_CTYPE"), os.Getenv("LANG"),
	}, " "))
	return strings.Contains(locale, "utf-8") || strings.Contains(locale, "utf8")
}

// colorEnabled resolves the effective color decision from the configured
// mode, $NO_COLOR (https://no-color.org), $DCG_NO_COLOR, and whether
// stderr is actually a terminal.
func colorEnabled(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("DCG_NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}
