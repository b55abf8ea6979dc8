package core

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"
)

// wrapperGrammar describes how many leading tokens (beyond the wrapper name
// itself) a benign wrapper consumes before the wrapped command starts, and
// which tokens look like wrapper flags/arguments rather than the wrapped
// command. Peeling aborts conservatively (stops, keeps the wrapper token) on
// any token it doesn't recognize as a flag of the wrapper.
type wrapperGrammar struct {
	name string
	// flagsWithArg are flags that consume the following token as their own
	// argument (e.g. sudo -u user, env -C dir).
	flagsWithArg map[string]bool
	// bareFlags are flags that take no argument.
	bareFlags map[string]bool
	// allowAssignments permits leading VAR=val tokens (env).
	allowAssignments bool
	// requiresDuration additionally peels one bare duration-like token
	// before the wrapped command (timeout 5s cmd).
	requiresDuration bool
	// xargsShC additionally recognizes a trailing `sh -c <script>` (or
	// bash/zsh/dash) after the wrapper's own flags and peels straight
	// through to the script text, since that's the payload that actually
	// runs once xargs substitutes its input.
	xargsShC bool
}

var shellInvocationNames = map[string]bool{"sh": true, "bash": true, "zsh": true, "dash": true}

var wrapperGrammars = []wrapperGrammar{
	{name: "sudo", flagsWithArg: map[string]bool{"-u": true, "--user": true}, bareFlags: map[string]bool{"-E": true, "--preserve-env": true, "-n": true, "--non-interactive": true}},
	{name: "doas", flagsWithArg: map[string]bool{"-u": true}, bareFlags: map[string]bool{"-n": true}},
	{name: "env", flagsWithArg: map[string]bool{"-u": true, "-C": true, "--chdir": true}, bareFlags: map[string]bool{"-i": true, "--ignore-environment": true}, allowAssignments: true},
	{name: "nice", flagsWithArg: map[string]bool{"-n": true, "--adjustment": true}},
	{name: "ionice", flagsWithArg: map[string]bool{"-c": true, "-n": true, "-p": true}},
	{name: "nohup", bareFlags: map[string]bool{}},
	{name: "time", bareFlags: map[string]bool{"-p": true, "--portability": true, "-v": true, "--verbose": true}},
	{name: "command", bareFlags: map[string]bool{"-p": true, "-v": true, "-V": true}},
	{name: "builtin", bareFlags: map[string]bool{}},
	{name: "exec", bareFlags: map[string]bool{"-a": true}, flagsWithArg: map[string]bool{}},
	{name: "watch", flagsWithArg: map[string]bool{"-n": true, "--interval": true}, bareFlags: map[string]bool{"-d": true, "--differences": true, "-t": true, "--no-title": true, "-g": true, "--chgexit": true, "-e": true, "-c": true, "--color": true, "-x": true, "--exec": true, "-b": true, "--beep": true}},
	{name: "timeout", flagsWithArg: map[string]bool{"-s": true, "--signal": true, "-k": true, "--kill-after": true}, bareFlags: map[string]bool{"--preserve-status": true, "--foreground": true, "-v": true, "--verbose": true}, requiresDuration: true},
	{name: "setsid", bareFlags: map[string]bool{"-w": true, "--wait": true, "-c": true, "--ctty": true, "-f": true, "--fork": true}},
	{name: "chrt", flagsWithArg: map[string]bool{}, bareFlags: map[string]bool{"-f": true, "-r": true, "-o": true, "-i": true, "-b": true}},
	{name: "taskset", flagsWithArg: map[string]bool{"-c": true, "-p": true}, bareFlags: map[string]bool{}},
	{name: "strace", flagsWithArg: map[string]bool{"-o": true, "-e": true, "-p": true}, bareFlags: map[string]bool{"-f": true, "-t": true, "-T": true}},
	{name: "ltrace", flagsWithArg: map[string]bool{"-o": true, "-e": true}, bareFlags: map[string]bool{"-f": true}},
	{name: "xargs", flagsWithArg: map[string]bool{"-I": true, "-P": true, "-n": true, "-L": true, "-d": true, "--delimiter": true, "-s": true, "--max-args": true, "--max-procs": true, "--replace": true}, bareFlags: map[string]bool{"-0": true, "--null": true, "-t": true, "--verbose": true, "-r": true, "--no-run-if-empty": true, "-o": true}, xargsShC: true},
}

var wrapperByName = func() map[string]wrapperGrammar {
	m := make(map[string]wrapperGrammar, len(wrapperGrammars))
	for _, g := range wrapperGrammars {
		m[g.name] = g
	}
	return m
}()

var envAssignPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=`)
var durationPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?[smhd]?$`)

// Normalize canonicalizes cmd per spec §4.1: joins unescaped line
// continuations and extracts heredoc bodies, recording an offset map back to
// cmd. It does not peel wrappers or unquote the command token; PeelWrappers
// and ResolveCommandToken do that separately. It never fails; worst case it
// returns cmd unchanged.
func Normalize(cmd string) NormalizedCommand {
	joined, joinOffsets := joinLineContinuations(cmd)
	stripped, heredocs, stripOffsets := stripHeredocs(joined)

	composed := make(OffsetMap, len(stripOffsets))
	for i, a := range stripOffsets {
		composed[i] = OffsetAnchor{
			NormalizedOffset: a.NormalizedOffset,
			OriginalOffset:   joinOffsets.ToOriginal(a.OriginalOffset),
		}
	}
	// Each line-continuation anchor is a breakpoint too: carry it into
	// stripped coordinates unless it falls inside a removed heredoc body.
	for _, j := range joinOffsets {
		k := len(stripOffsets) - 1
		for k > 0 && stripOffsets[k].OriginalOffset > j.NormalizedOffset {
			k--
		}
		pos := stripOffsets[k].NormalizedOffset + j.NormalizedOffset - stripOffsets[k].OriginalOffset
		if k+1 == len(stripOffsets) || pos < stripOffsets[k+1].NormalizedOffset {
			composed = append(composed, OffsetAnchor{NormalizedOffset: pos, OriginalOffset: j.OriginalOffset})
		}
	}
	sort.SliceStable(composed, func(a, b int) bool { return composed[a].NormalizedOffset < composed[b].NormalizedOffset })

	return NormalizedCommand{
		Original:   cmd,
		Normalized: stripped,
		OffsetMap:  composed,
		Heredocs:   heredocs,
	}
}

// stripHeredocs removes heredoc bodies ("<<EOF" ... terminator line) from s,
// leaving the opening redirect token in place so the segmenter and span
// classifier still see it as part of the executed command text. Bodies are
// returned separately, in the order their openers appear, for the span
// classifier and heredoc recursion stage to pick up. Per spec §4.1: spaced
// ("<< EOF"), quoted ("<<'EOF'", `<<"EOF SPACE"`), empty (`<<""`), and
// tab-stripping ("<<-") delimiter forms are all recognized.
func stripHeredocs(s string) (string, []HeredocExtraction, OffsetMap) {
	var b strings.Builder
	b.Grow(len(s))
	anchors := OffsetMap{{NormalizedOffset: 0, OriginalOffset: 0}}
	var heredocs []HeredocExtraction

	inSingle, inDouble := false, false
	i := 0
	n := len(s)
	for i < n {
		c := s[i]

		if c == '\'' && !inDouble {
			inSingle = !inSingle
			b.WriteByte(c)
			i++
			continue
		}
		if c == '"' && !inSingle {
			inDouble = !inDouble
			b.WriteByte(c)
			i++
			continue
		}
		if inSingle || inDouble {
			b.WriteByte(c)
			i++
			continue
		}

		if c == '<' && i+1 < n && s[i+1] == '<' && (i+2 >= n || s[i+2] != '<') {
			opener, delim, quoted, stripTabs, afterDelim, ok := parseHeredocOpener(s, i)
			if !ok {
				b.WriteByte(c)
				i++
				continue
			}
			b.WriteString(opener)
			i = afterDelim

			// Copy the rest of the opener line verbatim (it may carry a
			// redirect target or further pipeline text).
			lineEnd := strings.IndexByte(s[i:], '\n')
			var restOfLine string
			if lineEnd < 0 {
				restOfLine = s[i:]
				i = n
			} else {
				restOfLine = s[i : i+lineEnd+1]
				i += lineEnd + 1
			}
			b.WriteString(restOfLine)

			bodyStart := i
			bodyEnd, terminatorEnd := findHeredocTerminator(s, bodyStart, delim, stripTabs)
			body := s[bodyStart:bodyEnd]
			heredocs = append(heredocs, HeredocExtraction{
				Delimiter: delim,
				Quoted:    quoted,
				StripTabs: stripTabs,
				Body:      body,
			})
			i = terminatorEnd
			anchors = append(anchors, OffsetAnchor{NormalizedOffset: b.Len(), OriginalOffset: i})
			continue
		}

		b.WriteByte(c)
		i++
	}

	return b.String(), heredocs, anchors
}

// parseHeredocOpener parses a "<<[-]DELIM" token starting at i (where
// s[i:i+2] == "<<"). It returns the opener text to copy through unchanged,
// the delimiter, whether it was quoted, whether "-" (tab-stripping) was
// present, and the index just past the delimiter.
func parseHeredocOpener(s string, i int) (opener, delim string, quoted, stripTabs bool, after int, ok bool) {
	j := i + 2
	start := i
	if j < len(s) && s[j] == '-' {
		stripTabs = true
		j++
	}
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	if j >= len(s) {
		return "", "", false, false, 0, false
	}

	if s[j] == '\'' || s[j] == '"' {
		q := s[j]
		k := j + 1
		for k < len(s) && s[k] != q {
			k++
		}
		if k >= len(s) {
			return "", "", false, false, 0, false
		}
		delim = s[j+1 : k]
		quoted = true
		return s[start : k+1], delim, quoted, stripTabs, k + 1, true
	}

	k := j
	for k < len(s) {
		c := s[k]
		if c == ' ' || c == '\t' || c == '\n' || c == ';' || c == '|' || c == '&' {
			break
		}
		k++
	}
	if k == j {
		return "", "", false, false, 0, false
	}
	delim = s[j:k]
	return s[start:k], delim, false, stripTabs, k, true
}

// findHeredocTerminator scans body lines starting at bodyStart for a line
// equal to delim (leading tabs stripped first when stripTabs is set), or an
// empty line when delim is empty. It returns the body's end offset (start
// of the terminator line, or end-of-string) and the offset just past the
// terminator line (or end-of-string if none is found).
func findHeredocTerminator(s string, bodyStart int, delim string, stripTabs bool) (bodyEnd, terminatorEnd int) {
	pos := bodyStart
	n := len(s)
	for pos <= n {
		lineEnd := strings.IndexByte(s[pos:], '\n')
		var line string
		var nextPos int
		if lineEnd < 0 {
			line = s[pos:]
			nextPos = n
		} else {
			line = s[pos : pos+lineEnd]
			nextPos = pos + lineEnd + 1
		}

		cmp := line
		if stripTabs {
			cmp = strings.TrimLeft(cmp, "\t")
		}
		if cmp == delim {
			return pos, nextPos
		}
		if pos >= n {
			return pos, pos
		}
		pos = nextPos
	}
	return n, n
}

// joinLineContinuations removes unescaped "\\\n" sequences outside of
// single quotes, building an offset map from the joined string back to cmd.
func joinLineContinuations(cmd string) (string, OffsetMap) {
	var b strings.Builder
	b.Grow(len(cmd))

	anchors := OffsetMap{{NormalizedOffset: 0, OriginalOffset: 0}}

	inSingle, inDouble := false, false
	i := 0
	for i < len(cmd) {
		c := cmd[i]

		if c == '\\' && !inSingle {
			// Backslash-newline outside single quotes is a line
			// continuation; consume both and record the jump in the
			// offset map so later byte ranges still resolve correctly.
			if i+1 < len(cmd) && cmd[i+1] == '\n' {
				i += 2
				anchors = append(anchors, OffsetAnchor{NormalizedOffset: b.Len(), OriginalOffset: i})
				continue
			}
			if i+2 < len(cmd) && cmd[i+1] == '\r' && cmd[i+2] == '\n' {
				i += 3
				anchors = append(anchors, OffsetAnchor{NormalizedOffset: b.Len(), OriginalOffset: i})
				continue
			}
			// Escaped character: copy both bytes verbatim.
			b.WriteByte(c)
			if i+1 < len(cmd) {
				b.WriteByte(cmd[i+1])
				i += 2
				continue
			}
			i++
			continue
		}

		if c == '\'' && !inDouble {
			inSingle = !inSingle
		} else if c == '"' && !inSingle {
			inDouble = !inDouble
		}

		b.WriteByte(c)
		i++
	}

	return b.String(), anchors
}

// PeelWrappers strips benign wrappers from the front of a normalized
// segment, returning the remaining command text and the wrapper tokens
// that were removed (outermost first). Unknown flags of a recognized
// wrapper abort peeling at that point, leaving the wrapper in place.
func PeelWrappers(segment string) (remaining string, stripped []string) {
	tokens, err := tokenize(segment)
	if err != nil || len(tokens) == 0 {
		return segment, nil
	}

	i := 0
	for i < len(tokens) {
		name := tokens[i]
		g, known := wrapperByName[name]
		if !known {
			break
		}

		consumedAny := false

		j := i + 1
		if g.allowAssignments {
			for j < len(tokens) && envAssignPattern.MatchString(tokens[j]) {
				j++
			}
		}

		for j < len(tokens) {
			tok := tokens[j]
			if !strings.HasPrefix(tok, "-") {
				break
			}
			if eq := strings.IndexByte(tok, '='); eq >= 0 {
				if g.flagsWithArg[tok[:eq]] || g.bareFlags[tok[:eq]] {
					j++
					consumedAny = true
					continue
				}
				break
			}
			if g.flagsWithArg[tok] {
				j += 2
				consumedAny = true
				continue
			}
			if g.bareFlags[tok] {
				j++
				consumedAny = true
				continue
			}
			// Unknown flag: abort peeling conservatively.
			return strings.Join(tokens[i:], " "), stripped
		}

		if g.requiresDuration && j < len(tokens) && durationPattern.MatchString(tokens[j]) {
			j++
			consumedAny = true
		}

		if g.xargsShC && j+1 < len(tokens) && shellInvocationNames[tokens[j]] && tokens[j+1] == "-c" && j+2 < len(tokens) {
			stripped = append(stripped, name, tokens[j])
			return strings.Join(tokens[j+2:], " "), stripped
		}

		_ = consumedAny
		stripped = append(stripped, name)
		i = j
	}

	if i >= len(tokens) {
		return "", stripped
	}

	return strings.Join(tokens[i:], " "), stripped
}

// ResolveCommandToken unquotes a fully single- or double-quoted token at
// command position and resolves an absolute or relative path binary to its
// basename, per spec §4.1. It operates on the first whitespace-delimited
// token of text and returns the rewritten text plus the resolved command
// name (basename, lowercased is NOT applied — case is preserved).
func ResolveCommandToken(text string) (rewritten string, commandName string) {
	trimmed := strings.TrimLeft(text, " \t")
	leadingWS := text[:len(text)-len(trimmed)]

	end := strings.IndexAny(trimmed, " \t")
	var tok, rest string
	if end < 0 {
		tok, rest = trimmed, ""
	} else {
		tok, rest = trimmed[:end], trimmed[end:]
	}

	unquoted := tok
	if len(tok) >= 2 {
		if (tok[0] == '\'' && tok[len(tok)-1] == '\'') || (tok[0] == '"' && tok[len(tok)-1] == '"') {
			unquoted = tok[1 : len(tok)-1]
		}
	}

	base := unquoted
	if strings.ContainsRune(unquoted, '/') {
		base = filepath.Base(unquoted)
	}

	return leadingWS + base + rest, base
}

// commandTokenOffsets re-derives the byte lengths ResolveCommandToken used
// internally so a caller can translate a byte position in its rewritten
// output back into a position in text.
func commandTokenOffsets(text string) (leadingWSLen, tokLen, baseLen int) {
	trimmed := strings.TrimLeft(text, " \t")
	leadingWSLen = len(text) - len(trimmed)

	end := strings.IndexAny(trimmed, " \t")
	var tok string
	if end < 0 {
		tok = trimmed
	} else {
		tok = trimmed[:end]
	}
	tokLen = len(tok)

	unquoted := tok
	if len(tok) >= 2 {
		if (tok[0] == '\'' && tok[len(tok)-1] == '\'') || (tok[0] == '"' && tok[len(tok)-1] == '"') {
			unquoted = tok[1 : len(tok)-1]
		}
	}
	base := unquoted
	if strings.ContainsRune(unquoted, '/') {
		base = filepath.Base(unquoted)
	}
	baseLen = len(base)
	return
}

// translateResolvedPos maps a byte offset in ResolveCommandToken's rewritten
// output back to the corresponding offset in its input text, using the
// token geometry commandTokenOffsets(text) reports. Positions inside the
// resolved basename all collapse to the start of the original token, since
// there's no finer-grained correspondence once the path has been shortened.
func translateResolvedPos(pos, leadingWSLen, tokLen, baseLen int) int {
	if pos <= leadingWSLen {
		return pos
	}
	if pos <= leadingWSLen+baseLen {
		return leadingWSLen
	}
	return pos + (tokLen - baseLen)
}

func tokenize(s string) ([]string, error) {
	p := shellwords.NewParser()
	tokens, err := p.Parse(s)
	if err != nil {
		return strings.Fields(s), err
	}
	return tokens, nil
}
