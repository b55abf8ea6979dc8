package core

import "testing"

func TestSplunkPackSafePatterns(t *testing.T) {
	p := splunkPack()
	for _, cmd := range []string{
		"splunk list index",
		"splunk show config",
		"splunk search \"error\"",
	} {
		if m := p.Evaluate(cmd); m != nil {
			t.Errorf("expected %q to be safe, got match %+v", cmd, m)
		}
	}
}

func TestSplunkPackDestructivePatterns(t *testing.T) {
	p := splunkPack()

	m := p.Evaluate("splunk remove index main")
	if m == nil || m.Name != "splunk-remove-index" || m.Severity != SeverityCritical {
		t.Fatalf("expected splunk-remove-index/critical, got %+v", m)
	}

	m = p.Evaluate("splunk clean eventdata")
	if m == nil || m.Name != "splunk-clean-eventdata" || m.Severity != SeverityCritical {
		t.Fatalf("expected splunk-clean-eventdata/critical, got %+v", m)
	}

	m = p.Evaluate("curl -X DELETE https://splunk.internal:8089/services/authentication/users/bob")
	if m == nil || m.Name != "splunk-api-delete" || m.Severity != SeverityHigh {
		t.Fatalf("expected splunk-api-delete/high, got %+v", m)
	}
}
