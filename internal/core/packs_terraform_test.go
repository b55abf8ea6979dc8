package core

import "testing"

func TestTerraformPackSafePatterns(t *testing.T) {
	p := terraformPack()
	for _, cmd := range []string{
		"terraform plan",
		"terraform validate",
		"terraform state list",
		"terraform plan -destroy",
	} {
		if m := p.Evaluate(cmd); m != nil {
			t.Errorf("expected %q to be safe, got match %+v", cmd, m)
		}
	}
}

func TestTerraformPackDestructivePatterns(t *testing.T) {
	p := terraformPack()

	m := p.Evaluate("terraform destroy -auto-approve")
	if m == nil || m.Name != "destroy-auto-approve" || m.Severity != SeverityCritical {
		t.Fatalf("expected destroy-auto-approve/critical, got %+v", m)
	}

	m = p.Evaluate("terraform destroy")
	if m == nil || m.Name != "destroy-bare" || m.Severity != SeverityHigh {
		t.Fatalf("expected destroy-bare/high, got %+v", m)
	}

	m = p.Evaluate("terraform state rm module.scratch.aws_instance.x")
	if m == nil || m.Name != "state-rm" {
		t.Fatalf("expected state-rm, got %+v", m)
	}

	m = p.Evaluate("terraform workspace delete staging")
	if m == nil || m.Name != "workspace-delete" {
		t.Fatalf("expected workspace-delete, got %+v", m)
	}
}
