package core

import "testing"

func TestKubectlPackSafePatterns(t *testing.T) {
	p := kubectlPack()
	for _, cmd := range []string{
		"kubectl get pods",
		"kubectl describe pod myapp",
		"kubectl delete pod myapp --dry-run=client",
		"kubectl logs myapp",
	} {
		if m := p.Evaluate(cmd); m != nil {
			t.Errorf("expected %q to be safe, got match %+v", cmd, m)
		}
	}
}

func TestKubectlPackDestructivePatterns(t *testing.T) {
	p := kubectlPack()

	m := p.Evaluate("kubectl delete namespace prod")
	if m == nil || m.Name != "delete-namespace" || m.Severity != SeverityCritical {
		t.Fatalf("expected delete-namespace/critical, got %+v", m)
	}

	m = p.Evaluate("kubectl delete pods --all")
	if m == nil || m.Name != "delete-all" {
		t.Fatalf("expected delete-all, got %+v", m)
	}

	m = p.Evaluate("kubectl delete pods -A")
	if m == nil || m.Name != "delete-all-namespaces" || m.Severity != SeverityCritical {
		t.Fatalf("expected delete-all-namespaces/critical, got %+v", m)
	}

	m = p.Evaluate("kubectl drain node-1")
	if m == nil || m.Name != "drain-node" {
		t.Fatalf("expected drain-node, got %+v", m)
	}
}
