package core

import "testing"

func TestSecretsPackSafePatterns(t *testing.T) {
	p := secretsPack()
	for _, cmd := range []string{
		"aws secretsmanager list-secrets",
		"aws secretsmanager get-secret-value --secret-id prod/db",
		"aws ssm get-parameter --name /app/config",
	} {
		if m := p.Evaluate(cmd); m != nil {
			t.Errorf("expected %q to be safe, got match %+v", cmd, m)
		}
	}
}

func TestSecretsPackDestructivePatterns(t *testing.T) {
	p := secretsPack()

	m := p.Evaluate("aws secretsmanager delete-secret --secret-id prod/db")
	if m == nil || m.Name != "aws-secretsmanager-delete-secret" || m.Severity != SeverityCritical {
		t.Fatalf("expected aws-secretsmanager-delete-secret/critical, got %+v", m)
	}

	m = p.Evaluate("aws ssm delete-parameter --name /app/config")
	if m == nil || m.Name != "aws-ssm-delete-parameter" || m.Severity != SeverityHigh {
		t.Fatalf("expected aws-ssm-delete-parameter/high, got %+v", m)
	}
}
