package core

import "testing"

func TestMailgunPackDestructivePatterns(t *testing.T) {
	p := mailgunPack()

	m := p.Evaluate(`curl -X DELETE https://api.mailgun.net/v3/domains/example.com`)
	if m == nil || m.Name != "mailgun-delete-domain" || m.Severity != SeverityHigh {
		t.Fatalf("expected mailgun-delete-domain/high, got %+v", m)
	}

	m = p.Evaluate(`curl --request DELETE https://api.mailgun.net/v3/lists/team@example.com`)
	if m == nil || m.Name != "mailgun-delete-list" {
		t.Fatalf("expected mailgun-delete-list, got %+v", m)
	}

	m = p.Evaluate(`curl -X DELETE https://api.mailgun.net/v3/example.com/tags/welcome`)
	if m == nil || m.Name != "mailgun-delete-tag" || m.Severity != SeverityLow {
		t.Fatalf("expected mailgun-delete-tag/low, got %+v", m)
	}
}

func TestMailgunPackAllowsReadOperations(t *testing.T) {
	p := mailgunPack()
	if m := p.Evaluate("curl https://api.mailgun.net/v3/domains/example.com"); m != nil {
		t.Errorf("expected plain GET to be allowed, got %+v", m)
	}
}
