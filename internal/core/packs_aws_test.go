package core

import "testing"

func TestAWSPackSafePatterns(t *testing.T) {
	p := awsPack()
	for _, cmd := range []string{
		"aws ec2 describe-instances",
		"aws ec2 list-tags --resource-id i-123",
		"aws s3 ls s3://bucket",
		"aws sts get-caller-identity",
	} {
		if m := p.Evaluate(cmd); m != nil {
			t.Errorf("expected %q to be safe, got match %+v", cmd, m)
		}
	}
}

func TestAWSPackDestructivePatterns(t *testing.T) {
	p := awsPack()

	m := p.Evaluate("aws ec2 terminate-instances --instance-ids i-0123")
	if m == nil || m.Name != "ec2-terminate-instances" || m.Severity != SeverityCritical {
		t.Fatalf("expected ec2-terminate-instances/critical, got %+v", m)
	}

	m = p.Evaluate("aws s3 rb s3://mybucket --force")
	if m == nil || m.Name != "s3-rb-force" {
		t.Fatalf("expected s3-rb-force, got %+v", m)
	}

	m = p.Evaluate("aws dynamodb delete-table --table-name users")
	if m == nil || m.Name != "dynamodb-delete-table" || m.Severity != SeverityCritical {
		t.Fatalf("expected dynamodb-delete-table/critical, got %+v", m)
	}
}
