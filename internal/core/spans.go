package core

import (
	"regexp"
	"strings"
)

// inlineInterpreterInvocations maps an interpreter invocation's command name
// to the flag that introduces inline code on its command line, and the
// language that code should be tagged with. Matched at command position only
// (spec §4.3: "bash -c", "sh -c", "zsh -c", "python -c"/"python3 -c",
// "node -e", "perl -e", "ruby -e").
var inlineInterpreterInvocations = map[string]struct {
	flag string
	lang Language
}{
	"bash":    {"-c", LangShell},
	"sh":      {"-c", LangShell},
	"zsh":     {"-c", LangShell},
	"dash":    {"-c", LangShell},
	"ksh":     {"-c", LangShell},
	"python":  {"-c", LangPython},
	"python3": {"-c", LangPython},
	"python2": {"-c", LangPython},
	"node":    {"-e", LangNode},
	"nodejs":  {"-e", LangNode},
	"perl":    {"-e", LangPerl},
	"ruby":    {"-e", LangRuby},
}

// dataConsumingFlags are flags whose following token is a data argument
// rather than part of the executed command, regardless of which command
// they appear on (spec §4.3's Argument span rule). Keyed by flag text; the
// value is unused but keeps this a set.
var dataConsumingFlags = map[string]bool{
	"-m": true, "--message": true,
	"-c": false, // overridden per-command below for inline interpreters
	"-e": false,
	"--comment": true,
	"-F":        true, "--file": true,
}

// commandSpecificDataFlags refines dataConsumingFlags for commands where a
// flag is a data argument on that command specifically, even though the
// same flag means something else (inline code) elsewhere.
var commandSpecificDataFlags = map[string]map[string]bool{
	"git": {"-m": true, "--message": true, "-F": true, "--file": true},
}

var heredocOpenerPattern = regexp.MustCompile(`<<-?`)

// ClassifySpans produces the total, ordered, non-overlapping cover of a
// segment's text per spec §4.3. heredocs is the full, ordinally-ordered list
// of heredoc bodies extracted by the normalizer; heredocCursor is the index
// of the next heredoc to consume and is advanced as openers are found so
// callers scanning multiple segments in order stay in sync.
func ClassifySpans(segText string, commandName string, heredocs []HeredocExtraction, heredocCursor *int) CommandSpans {
	c := &spanClassifier{
		text:          segText,
		commandName:   commandName,
		heredocs:      heredocs,
		heredocCursor: heredocCursor,
	}
	c.run()
	return CommandSpans{Spans: mergeAdjacentUnknown(c.spans)}
}

type spanClassifier struct {
	text          string
	commandName   string
	heredocs      []HeredocExtraction
	heredocCursor *int
	spans         []Span
}

func (c *spanClassifier) emit(start, end int, kind SpanKind, lang Language) {
	if end < start || (end == start && kind != SpanHeredocBody) {
		return
	}
	c.spans = append(c.spans, Span{Range: ByteRange{Start: start, End: end}, Kind: kind, Lang: lang})
}

func (c *spanClassifier) run() {
	text := c.text
	n := len(text)
	i := 0
	execStart := 0
	tokenIndex := 0 // 0 = command name position

	flushExec := func(end int) {
		c.emit(execStart, end, SpanExecuted, LangNone)
	}

	for i < n {
		ch := text[i]

		// Comment: unquoted '#' at start of token runs to end of line.
		if ch == '#' && (i == 0 || text[i-1] == ' ' || text[i-1] == '\t') {
			flushExec(i)
			c.emit(i, n, SpanComment, LangNone)
			return
		}

		if ch == '\'' {
			// ANSI-C quoting $'...'  is handled by the $ branch below; a
			// bare '...' is a Data span.
			flushExec(i)
			j := i + 1
			for j < n && text[j] != '\'' {
				j++
			}
			end := j
			if end < n {
				end++
			}
			c.emit(i, end, SpanData, LangNone)
			i = end
			execStart = i
			continue
		}

		if ch == '"' {
			flushExec(i)
			end := c.classifyDoubleQuoted(i)
			i = end
			execStart = i
			continue
		}

		if ch == '$' && i+1 < n && text[i+1] == '\'' {
			flushExec(i)
			j := i + 2
			for j < n && text[j] != '\'' {
				if text[j] == '\\' && j+1 < n {
					j++
				}
				j++
			}
			end := j
			if end < n {
				end++
			}
			c.emit(i, end, SpanData, LangNone)
			i = end
			execStart = i
			continue
		}

		if ch == '<' && i+1 < n && text[i+1] == '<' {
			loc := heredocOpenerPattern.FindStringIndex(text[i:])
			if loc != nil && loc[0] == 0 {
				openerEnd := i + loc[1]
				// Skip the delimiter token itself; it stays Executed.
				flushExec(openerEnd)
				execStart = openerEnd

				if c.heredocCursor != nil && *c.heredocCursor < len(c.heredocs) {
					hd := c.heredocs[*c.heredocCursor]
					*c.heredocCursor++
					lang := classifyHeredocLanguage(c.commandName, hd.Delimiter)
					c.emit(openerEnd, openerEnd, SpanHeredocBody, lang) // zero-width marker at the opener; body lives out-of-band
				}
				i = openerEnd
				continue
			}
		}

		if ch == ' ' || ch == '\t' {
			tokenIndex++
		}

		if flagEnd, ok := c.argumentFlagTokenEnd(text, i); ok {
			argStart, argEnd, found := c.findFollowingArgument(text, flagEnd)
			if found {
				flushExec(flagEnd)
				c.emit(argStart, argEnd, SpanArgument, LangNone)
				i = argEnd
				execStart = i
				continue
			}
		}

		if c.isInlineInterpreterFlagStart(text, i, tokenIndex) {
			flagEnd, codeStart, codeEnd, ok := c.findInlineCodeArgument(text, i)
			if ok {
				flushExec(flagEnd)
				lang := inlineInterpreterInvocations[c.commandName].lang
				c.emit(codeStart, codeEnd, SpanInlineCode, lang)
				i = codeEnd
				execStart = i
				continue
			}
		}

		i++
	}

	flushExec(n)
}

// classifyDoubleQuoted emits spans for a double-quoted run starting at i
// (text[i] == '"'): the quote body is Data, except embedded $(...),
// backtick, or ${...} substitutions which are Executed. Returns the index
// just past the closing quote.
func (c *spanClassifier) classifyDoubleQuoted(i int) int {
	text := c.text
	n := len(text)
	j := i + 1
	dataStart := i

	flushData := func(end int) {
		c.emit(dataStart, end, SpanData, LangNone)
	}

	for j < n && text[j] != '"' {
		if text[j] == '\\' && j+1 < n {
			j += 2
			continue
		}
		if text[j] == '$' && j+1 < n && text[j+1] == '(' {
			flushData(j)
			k := j + 2
			depth := 1
			for k < n && depth > 0 {
				if text[k] == '(' {
					depth++
				} else if text[k] == ')' {
					depth--
				}
				k++
			}
			c.emit(j, k, SpanExecuted, LangNone)
			j = k
			dataStart = j
			continue
		}
		if text[j] == '`' {
			flushData(j)
			k := j + 1
			for k < n && text[k] != '`' {
				if text[k] == '\\' && k+1 < n {
					k++
				}
				k++
			}
			if k < n {
				k++
			}
			c.emit(j, k, SpanExecuted, LangNone)
			j = k
			dataStart = j
			continue
		}
		j++
	}
	end := j
	if end < n {
		end++ // consume closing quote
	}
	flushData(end)
	return end
}

// isInlineInterpreterFlagStart reports whether text[i:] begins a flag token
// (preceded by whitespace or start-of-string) that introduces inline code
// for the segment's command, at command-position token 0 (the command
// itself is tokenIndex 0; the flag can appear at any later token).
func (c *spanClassifier) isInlineInterpreterFlagStart(text string, i, tokenIndex int) bool {
	spec, known := inlineInterpreterInvocations[c.commandName]
	if !known {
		return false
	}
	if i > 0 && text[i-1] != ' ' && text[i-1] != '\t' {
		return false
	}
	return strings.HasPrefix(text[i:], spec.flag) && (len(text) == i+len(spec.flag) || text[i+len(spec.flag)] == ' ' || text[i+len(spec.flag)] == '\t')
}

// findInlineCodeArgument locates the quoted or bare argument following an
// inline-interpreter flag at text[i:]. Returns the end of the flag token,
// the start/end of the code argument, and whether one was found.
func (c *spanClassifier) findInlineCodeArgument(text string, i int) (flagEnd, codeStart, codeEnd int, ok bool) {
	spec := inlineInterpreterInvocations[c.commandName]
	flagEnd = i + len(spec.flag)
	j := flagEnd
	for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
		j++
	}
	if j >= len(text) {
		return flagEnd, 0, 0, false
	}
	if text[j] == '\'' || text[j] == '"' {
		q := text[j]
		k := j + 1
		for k < len(text) && text[k] != q {
			if text[k] == '\\' && q == '"' && k+1 < len(text) {
				k++
			}
			k++
		}
		return flagEnd, j + 1, k, true
	}
	k := j
	for k < len(text) && text[k] != ' ' && text[k] != '\t' {
		k++
	}
	return flagEnd, j, k, true
}

// argumentFlagTokenEnd reports whether text[i:] begins a data-consuming flag
// token for the segment's command (spec §4.3's Argument span rule), and
// returns the index just past that token.
func (c *spanClassifier) argumentFlagTokenEnd(text string, i int) (flagEnd int, ok bool) {
	if i > 0 && text[i-1] != ' ' && text[i-1] != '\t' {
		return 0, false
	}
	if i >= len(text) || text[i] != '-' {
		return 0, false
	}
	j := i
	for j < len(text) && text[j] != ' ' && text[j] != '\t' {
		j++
	}
	token := text[i:j]
	if eq := strings.IndexByte(token, '='); eq >= 0 {
		if DataConsumingFlag(c.commandName, token[:eq]) {
			return j, true // value is part of the flag token itself
		}
		return 0, false
	}
	if DataConsumingFlag(c.commandName, token) {
		return j, true
	}
	return 0, false
}

// findFollowingArgument locates the token (quoted or bare) immediately
// after position pos, skipping leading whitespace.
func (c *spanClassifier) findFollowingArgument(text string, pos int) (start, end int, ok bool) {
	j := pos
	for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
		j++
	}
	if j >= len(text) {
		return 0, 0, false
	}
	if text[j] == '\'' || text[j] == '"' {
		q := text[j]
		k := j + 1
		for k < len(text) && text[k] != q {
			if text[k] == '\\' && q == '"' && k+1 < len(text) {
				k++
			}
			k++
		}
		end := k
		if end < len(text) {
			end++
		}
		return j, end, true
	}
	k := j
	for k < len(text) && text[k] != ' ' && text[k] != '\t' {
		k++
	}
	return j, k, true
}

// classifyHeredocLanguage tags a heredoc body with an interpreter language
// when the command consuming it is itself an interpreter (e.g.
// "python <<EOF"), falling back to shell.
func classifyHeredocLanguage(commandName, _ string) Language {
	switch commandName {
	case "python", "python3", "python2":
		return LangPython
	case "node", "nodejs":
		return LangNode
	case "perl":
		return LangPerl
	case "ruby":
		return LangRuby
	default:
		return LangShell
	}
}

// mergeAdjacentUnknown fills any gaps left between emitted spans with
// SpanUnknown, keeping CommandSpans a total cover. Zero-width marker spans
// (used only to locate heredoc bodies out-of-band, for CollectRecursiveUnits)
// carry no byte range of their own, so they're passed through untouched
// rather than dropped: removing them would silently disable heredoc
// recursion.
func mergeAdjacentUnknown(spans []Span) []Span {
	var out []Span
	pos := 0
	for _, s := range spans {
		if s.Range.Len() == 0 {
			out = append(out, s)
			continue
		}
		if s.Range.Start > pos {
			out = append(out, Span{Range: ByteRange{Start: pos, End: s.Range.Start}, Kind: SpanUnknown})
		}
		out = append(out, s)
		if s.Range.End > pos {
			pos = s.Range.End
		}
	}
	return out
}

// maskNonExecutableSpans returns a same-length copy of text with every byte
// belonging to a span other than Executed or InlineCode blanked to a space
// (newlines preserved, so line-anchored patterns still see them). Pack
// matching only ever runs against the masked text: a quoted string or a
// `-m`-style data argument can contain any substring without tripping a
// destructive pattern, since none of it will actually execute. Grounded on
// original_source/tests/repro_echo_fp.rs, which asserts `echo rm -rf /`
// must be allowed because it only prints the text.
func maskNonExecutableSpans(text string, spans CommandSpans) string {
	buf := []byte(text)
	for _, s := range spans.Spans {
		if s.Kind == SpanExecuted || s.Kind == SpanInlineCode {
			continue
		}
		end := s.Range.End
		if end > len(buf) {
			end = len(buf)
		}
		for i := s.Range.Start; i >= 0 && i < end; i++ {
			if buf[i] != '\n' {
				buf[i] = ' '
			}
		}
	}
	return string(buf)
}

// DataConsumingFlag reports whether flag is a data-argument flag for the
// given command, per spec §4.3's Argument span rule.
func DataConsumingFlag(commandName, flag string) bool {
	if m, ok := commandSpecificDataFlags[commandName]; ok {
		if v, ok := m[flag]; ok {
			return v
		}
	}
	return dataConsumingFlags[flag]
}
