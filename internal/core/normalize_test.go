package core

import "testing"

func TestNormalizeJoinsLineContinuations(t *testing.T) {
	nc := Normalize("rm \\\n-rf /tmp/x")
	if nc.Normalized != "rm -rf /tmp/x" {
		t.Fatalf("Normalized = %q, want %q", nc.Normalized, "rm -rf /tmp/x")
	}
}

func TestNormalizeLeavesSingleQuotedBackslashAlone(t *testing.T) {
	nc := Normalize(`echo 'a\` + "\n" + `b'`)
	if nc.Normalized != nc.Original {
		t.Fatalf("single-quoted backslash-newline should survive unchanged, got %q", nc.Normalized)
	}
}

func TestStripHeredocsExtractsBody(t *testing.T) {
	cmd := "cat <<EOF\nrm -rf /\nEOF\n"
	nc := Normalize(cmd)

	if len(nc.Heredocs) != 1 {
		t.Fatalf("got %d heredocs, want 1", len(nc.Heredocs))
	}
	if nc.Heredocs[0].Body != "rm -rf /\n" {
		t.Fatalf("heredoc body = %q", nc.Heredocs[0].Body)
	}
	if nc.Heredocs[0].Delimiter != "EOF" {
		t.Fatalf("delimiter = %q, want EOF", nc.Heredocs[0].Delimiter)
	}
}

func TestStripHeredocsQuotedDelimiter(t *testing.T) {
	cmd := "cat <<'EOF'\n$(whoami)\nEOF\n"
	nc := Normalize(cmd)

	if len(nc.Heredocs) != 1 || !nc.Heredocs[0].Quoted {
		t.Fatalf("expected one quoted heredoc, got %+v", nc.Heredocs)
	}
}

func TestStripHeredocsTabStripping(t *testing.T) {
	cmd := "cat <<-EOF\n\t\techo hi\n\tEOF\n"
	nc := Normalize(cmd)

	if len(nc.Heredocs) != 1 || !nc.Heredocs[0].StripTabs {
		t.Fatalf("expected tab-stripping heredoc, got %+v", nc.Heredocs)
	}
}

func TestOffsetMapTranslatesBackToOriginal(t *testing.T) {
	cmd := "echo a \\\n&& rm -rf /tmp/y"
	nc := Normalize(cmd)

	idx := indexOf(nc.Normalized, "rm -rf")
	if idx < 0 {
		t.Fatalf("rm -rf not found in normalized text %q", nc.Normalized)
	}
	origIdx := nc.OffsetMap.ToOriginal(idx)
	if cmd[origIdx:origIdx+2] != "rm" {
		t.Fatalf("offset map resolved to %q, want start of \"rm\"", cmd[origIdx:origIdx+2])
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestPeelWrappersSudo(t *testing.T) {
	remaining, stripped := PeelWrappers("sudo rm -rf /")
	if remaining != "rm -rf /" {
		t.Fatalf("remaining = %q, want %q", remaining, "rm -rf /")
	}
	if len(stripped) != 1 || stripped[0] != "sudo" {
		t.Fatalf("stripped = %v, want [sudo]", stripped)
	}
}

func TestPeelWrappersSudoWithUserFlag(t *testing.T) {
	remaining, stripped := PeelWrappers("sudo -u deploy rm -rf /srv/app")
	if remaining != "rm -rf /srv/app" {
		t.Fatalf("remaining = %q", remaining)
	}
	if len(stripped) != 1 || stripped[0] != "sudo" {
		t.Fatalf("stripped = %v", stripped)
	}
}

func TestPeelWrappersNested(t *testing.T) {
	remaining, stripped := PeelWrappers("nice nohup sudo rm -rf /tmp")
	if remaining != "rm -rf /tmp" {
		t.Fatalf("remaining = %q", remaining)
	}
	if len(stripped) != 3 {
		t.Fatalf("stripped = %v, want 3 wrappers", stripped)
	}
}

func TestPeelWrappersTimeoutRequiresDuration(t *testing.T) {
	remaining, stripped := PeelWrappers("timeout 5s rm -rf /tmp/x")
	if remaining != "rm -rf /tmp/x" {
		t.Fatalf("remaining = %q", remaining)
	}
	if len(stripped) != 1 || stripped[0] != "timeout" {
		t.Fatalf("stripped = %v", stripped)
	}
}

func TestPeelWrappersUnknownFlagAborts(t *testing.T) {
	remaining, stripped := PeelWrappers("sudo --bogus-flag rm -rf /")
	if remaining != "sudo --bogus-flag rm -rf /" {
		t.Fatalf("remaining = %q, want unchanged on unknown flag", remaining)
	}
	if stripped != nil {
		t.Fatalf("stripped = %v, want nil", stripped)
	}
}

func TestPeelWrappersNoWrapperIsNoop(t *testing.T) {
	remaining, stripped := PeelWrappers("ls -la")
	if remaining != "ls -la" || stripped != nil {
		t.Fatalf("got (%q, %v), want (\"ls -la\", nil)", remaining, stripped)
	}
}

func TestResolveCommandTokenUnquotes(t *testing.T) {
	rewritten, name := ResolveCommandToken(`"rm" -rf /tmp`)
	if name != "rm" {
		t.Fatalf("name = %q, want rm", name)
	}
	if rewritten != "rm -rf /tmp" {
		t.Fatalf("rewritten = %q", rewritten)
	}
}

func TestResolveCommandTokenResolvesPath(t *testing.T) {
	rewritten, name := ResolveCommandToken("/usr/bin/rm -rf /tmp")
	if name != "rm" {
		t.Fatalf("name = %q, want rm", name)
	}
	if rewritten != "rm -rf /tmp" {
		t.Fatalf("rewritten = %q", rewritten)
	}
}

func TestResolveCommandTokenBareName(t *testing.T) {
	_, name := ResolveCommandToken("git status")
	if name != "git" {
		t.Fatalf("name = %q, want git", name)
	}
}
