package core

// DefaultRecursionDepthLimit is the depth limit ExpandRecursively uses when
// called with a non-positive limit. Evaluator.Evaluate does not descend that
// far: it re-evaluates the heredoc bodies and inline-interpreter payloads
// found one level below each top-level segment (when HeredocMaxDepth is at
// least 1) and does not look for payloads nested inside those.
const DefaultRecursionDepthLimit = 3

// RecursiveUnit is one payload discovered while walking a command's spans
// that itself deserves re-normalization, re-segmentation, and
// re-classification: a heredoc body destined for a shell or interpreter, or
// an inline "-c"/"-e" code argument.
type RecursiveUnit struct {
	Text  string
	Lang  Language
	Depth int
}

// CollectRecursiveUnits walks spans looking for HeredocBody markers and
// InlineCode spans, pairing heredoc markers with their out-of-band bodies in
// nc.Heredocs (consumed in the same left-to-right order the span classifier
// encountered their openers), starting at nc.Heredocs[heredocStartIndex].
// Returned units are tagged seg.Depth+1.
func CollectRecursiveUnits(nc NormalizedCommand, seg Segment, spans CommandSpans, heredocStartIndex int) []RecursiveUnit {
	var units []RecursiveUnit
	heredocIdx := heredocStartIndex
	for _, sp := range spans.Spans {
		switch sp.Kind {
		case SpanHeredocBody:
			if heredocIdx < len(nc.Heredocs) {
				hd := nc.Heredocs[heredocIdx]
				heredocIdx++
				if !hd.Quoted {
					// A quoted delimiter ("<<'EOF'") disables expansion and,
					// per shell semantics, the body is never itself
					// re-interpreted as code — only unquoted heredocs are
					// candidates for recursion.
					units = append(units, RecursiveUnit{Text: hd.Body, Lang: sp.Lang, Depth: seg.Depth + 1})
				}
			}
		case SpanInlineCode:
			units = append(units, RecursiveUnit{Text: seg.Text[sp.Range.Start:sp.Range.End], Lang: sp.Lang, Depth: seg.Depth + 1})
		}
	}
	return units
}

// ExpandRecursively re-normalizes and re-segments each recursive unit found
// in cmd's top-level segments, recursing until a segment's depth reaches
// depthLimit (DefaultRecursionDepthLimit when depthLimit <= 0). It returns every segment reachable this way, each tagged
// with the depth it was found at. Units beyond the depth limit are dropped
// silently: the evaluator still sees and can match the top-level command
// that spawned them, it simply stops descending into their payloads.
func ExpandRecursively(cmd string, depthLimit int) []Segment {
	if depthLimit <= 0 {
		depthLimit = DefaultRecursionDepthLimit
	}

	nc := Normalize(cmd)
	topSegments := SegmentCommand(nc)

	var all []Segment
	var walk func(segs []Segment, nc NormalizedCommand)
	walk = func(segs []Segment, nc NormalizedCommand) {
		heredocCursor := 0
		for _, seg := range segs {
			all = append(all, seg)
			if seg.Depth >= depthLimit {
				continue
			}

			peeled, _ := PeelWrappers(seg.Text)
			_, commandName := ResolveCommandToken(peeled)

			heredocStartIndex := heredocCursor
			spans := ClassifySpans(seg.Text, commandName, nc.Heredocs, &heredocCursor)
			units := CollectRecursiveUnits(nc, seg, spans, heredocStartIndex)

			for _, u := range units {
				childNC := Normalize(u.Text)
				childSegs := SegmentCommand(childNC)
				for i := range childSegs {
					childSegs[i].Depth = u.Depth
					if u.Lang != LangShell && u.Lang != LangNone {
						childSegs[i].Kind = SpawnInlineInterpreter
						childSegs[i].InlineLang = u.Lang
					}
				}
				walk(childSegs, childNC)
			}
		}
	}
	walk(topSegments, nc)
	return all
}
