package core

import "strings"

// Segment splits a normalized command into executed segments along
// unquoted ';', '\n', '&&', '||', '|', recursing into '$(...)' and
// backtick command substitutions per spec §4.2. Segment.NormalizedRange
// and OriginalRange are in the coordinates of nc.Normalized / nc.Original
// respectively. Empty segments are discarded.
func SegmentCommand(nc NormalizedCommand) []Segment {
	var out []Segment
	splitInto(nc.Normalized, 0, SpawnTopLevel, LangNone, 0, nc.OffsetMap, &out)
	return out
}

// splitInto scans text (a slice of the full normalized command starting at
// baseOffset) for unquoted top-level separators and appends the resulting
// segments to out, recursing into command substitutions.
func splitInto(text string, baseOffset int, kind SpawnContext, lang Language, depth int, om OffsetMap, out *[]Segment) {
	start := 0
	i := 0
	n := len(text)

	flush := func(end int) {
		raw := text[start:end]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			start = end
			return
		}
		leadWS := len(raw) - len(strings.TrimLeft(raw, " \t\n"))
		segStart := start + leadWS
		segEnd := segStart + len(trimmed)
		nr := ByteRange{Start: baseOffset + segStart, End: baseOffset + segEnd}
		*out = append(*out, Segment{
			NormalizedRange: nr,
			OriginalRange:   om.ToOriginalRange(nr),
			Text:            trimmed,
			Kind:            kind,
			InlineLang:      lang,
			Depth:           depth,
		})
		start = end
	}

	inSingle, inDouble := false, false

	for i < n {
		c := text[i]

		if c == '\'' && !inDouble {
			inSingle = !inSingle
			i++
			continue
		}
		if c == '"' && !inSingle {
			inDouble = !inDouble
			i++
			continue
		}
		if inSingle || inDouble {
			i++
			continue
		}

		// Command substitution: $( ... ) — recurse, then continue scanning
		// after it (the substitution's result stays inline at this level,
		// but its *contents* form their own executed sub-segments).
		if c == '$' && i+1 < n && text[i+1] == '(' {
			depthParen := 1
			j := i + 2
			subSingle, subDouble := false, false
			for j < n && depthParen > 0 {
				cj := text[j]
				if cj == '\'' && !subDouble {
					subSingle = !subSingle
				} else if cj == '"' && !subSingle {
					subDouble = !subDouble
				} else if !subSingle && !subDouble {
					if cj == '(' {
						depthParen++
					} else if cj == ')' {
						depthParen--
						if depthParen == 0 {
							break
						}
					}
				}
				j++
			}
			inner := text[i+2 : j]
			splitInto(inner, baseOffset+i+2, SpawnSubstitution, lang, depth, om, out)
			i = j + 1
			continue
		}

		if c == '`' {
			j := i + 1
			for j < n && text[j] != '`' {
				if text[j] == '\\' && j+1 < n {
					j++
				}
				j++
			}
			inner := text[i+1 : min(j, n)]
			splitInto(inner, baseOffset+i+1, SpawnSubstitution, lang, depth, om, out)
			i = j + 1
			continue
		}

		if c == '\n' || c == ';' {
			flush(i)
			i++
			start = i
			continue
		}
		if c == '&' && i+1 < n && text[i+1] == '&' {
			flush(i)
			i += 2
			start = i
			continue
		}
		if c == '|' && i+1 < n && text[i+1] == '|' {
			flush(i)
			i += 2
			start = i
			continue
		}
		if c == '|' {
			flush(i)
			i++
			start = i
			continue
		}
		// Single trailing '&' (background) terminates a segment like ';'.
		if c == '&' {
			flush(i)
			i++
			start = i
			continue
		}

		i++
	}

	flush(n)
}
