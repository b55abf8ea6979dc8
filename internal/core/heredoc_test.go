package core

import "testing"

func TestCollectRecursiveUnitsPairsHeredocBody(t *testing.T) {
	cmd := "bash <<EOF\nrm -rf /tmp/x\nEOF\n"
	nc := Normalize(cmd)
	segs := SegmentCommand(nc)
	if len(segs) != 1 {
		t.Fatalf("segments = %v, want 1", segTexts(t, segs))
	}

	cursor := 0
	spans := ClassifySpans(segs[0].Text, "bash", nc.Heredocs, &cursor)
	units := CollectRecursiveUnits(nc, segs[0], spans, 0)

	if len(units) != 1 {
		t.Fatalf("units = %+v, want 1", units)
	}
	if units[0].Text != "rm -rf /tmp/x\n" {
		t.Fatalf("unit text = %q", units[0].Text)
	}
	if units[0].Depth != 1 {
		t.Fatalf("depth = %d, want 1", units[0].Depth)
	}
}

func TestCollectRecursiveUnitsSkipsQuotedDelimiter(t *testing.T) {
	cmd := "bash <<'EOF'\nrm -rf /tmp/x\nEOF\n"
	nc := Normalize(cmd)
	segs := SegmentCommand(nc)

	cursor := 0
	spans := ClassifySpans(segs[0].Text, "bash", nc.Heredocs, &cursor)
	units := CollectRecursiveUnits(nc, segs[0], spans, 0)

	if len(units) != 0 {
		t.Fatalf("expected no recursive units for a quoted-delimiter heredoc, got %+v", units)
	}
}

func TestCollectRecursiveUnitsInlineCode(t *testing.T) {
	cmd := `bash -c "rm -rf /tmp/x"`
	nc := Normalize(cmd)
	segs := SegmentCommand(nc)

	cursor := 0
	spans := ClassifySpans(segs[0].Text, "bash", nc.Heredocs, &cursor)
	units := CollectRecursiveUnits(nc, segs[0], spans, 0)

	if len(units) != 1 || units[0].Text != "rm -rf /tmp/x" {
		t.Fatalf("units = %+v", units)
	}
}

func TestExpandRecursivelyFindsNestedCommand(t *testing.T) {
	cmd := "bash <<EOF\nrm -rf /tmp/x\nEOF\n"
	segs := ExpandRecursively(cmd, DefaultRecursionDepthLimit)

	found := false
	for _, s := range segs {
		if s.Text == "rm -rf /tmp/x" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the heredoc body's command among expanded segments, got %v", segTexts(t, segs))
	}
}

func TestExpandRecursivelyStopsAtDepthLimit(t *testing.T) {
	// Each level wraps the next in another heredoc; depth limit 1 should
	// surface only the first level's nested command, not the second's.
	cmd := "bash <<OUTER\nbash <<INNER\nrm -rf /tmp/x\nINNER\nOUTER\n"
	segs := ExpandRecursively(cmd, 1)

	for _, s := range segs {
		if s.Text == "rm -rf /tmp/x" {
			t.Fatalf("depth limit of 1 should not reach the doubly-nested command")
		}
	}
}
