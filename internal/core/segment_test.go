package core

import "testing"

func segTexts(t *testing.T, segs []Segment) []string {
	t.Helper()
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Text
	}
	return out
}

func TestSegmentCommandSplitsOnSemicolon(t *testing.T) {
	nc := Normalize("echo hi; rm -rf /tmp/x")
	segs := SegmentCommand(nc)
	texts := segTexts(t, segs)
	if len(texts) != 2 || texts[0] != "echo hi" || texts[1] != "rm -rf /tmp/x" {
		t.Fatalf("segments = %v", texts)
	}
}

func TestSegmentCommandSplitsOnAndAndOr(t *testing.T) {
	nc := Normalize("make build && rm -rf dist || echo failed")
	segs := SegmentCommand(nc)
	texts := segTexts(t, segs)
	want := []string{"make build", "rm -rf dist", "echo failed"}
	if len(texts) != len(want) {
		t.Fatalf("segments = %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("segment %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestSegmentCommandSplitsOnPipe(t *testing.T) {
	nc := Normalize("cat file | xargs rm")
	segs := SegmentCommand(nc)
	texts := segTexts(t, segs)
	if len(texts) != 2 || texts[1] != "xargs rm" {
		t.Fatalf("segments = %v", texts)
	}
}

func TestSegmentCommandDoesNotSplitInsideQuotes(t *testing.T) {
	nc := Normalize(`echo "a; b && c"`)
	segs := SegmentCommand(nc)
	texts := segTexts(t, segs)
	if len(texts) != 1 {
		t.Fatalf("segments = %v, want exactly one", texts)
	}
}

func TestSegmentCommandRecursesIntoSubstitution(t *testing.T) {
	nc := Normalize("echo $(rm -rf /tmp/x)")
	segs := SegmentCommand(nc)
	texts := segTexts(t, segs)

	found := false
	for _, tx := range texts {
		if tx == "rm -rf /tmp/x" {
			found = true
		}
	}
	if !found {
		t.Fatalf("segments = %v, expected a sub-segment for the command substitution", texts)
	}
}

func TestSegmentCommandRecursesIntoBackticks(t *testing.T) {
	nc := Normalize("echo `rm -rf /tmp/y`")
	segs := SegmentCommand(nc)
	texts := segTexts(t, segs)

	found := false
	for _, tx := range texts {
		if tx == "rm -rf /tmp/y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("segments = %v, expected a sub-segment for the backtick substitution", texts)
	}
}

func TestSegmentCommandDropsEmptySegments(t *testing.T) {
	nc := Normalize("echo hi;;  ; echo bye")
	segs := SegmentCommand(nc)
	texts := segTexts(t, segs)
	if len(texts) != 2 {
		t.Fatalf("segments = %v, want 2 non-empty segments", texts)
	}
}

func TestSegmentCommandOriginalRangeMapsBack(t *testing.T) {
	cmd := "echo a \\\n&& rm -rf /tmp/z"
	nc := Normalize(cmd)
	segs := SegmentCommand(nc)

	var target Segment
	for _, s := range segs {
		if s.Text == "rm -rf /tmp/z" {
			target = s
		}
	}
	if target.Text == "" {
		t.Fatalf("segment not found among %v", segTexts(t, segs))
	}
	got := cmd[target.OriginalRange.Start:target.OriginalRange.End]
	if got != "rm -rf /tmp/z" {
		t.Fatalf("original range resolved to %q", got)
	}
}
