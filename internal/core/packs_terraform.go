package core

// terraformPack is grounded on the teacher's own internal/core/patterns.go
// terraform tier (destroy variants, state rm, apply/destroy with -target).
func terraformPack() *Pack {
	return &Pack{
		ID:          "core.terraform",
		Name:        "Terraform",
		Description: "State and infrastructure destruction via terraform",
		Keywords:    []string{"terraform", "tf "},
		SafePatterns: []SafePattern{
			{Name: "terraform-plan", Regex: `^terraform\s+plan\b`},
			{Name: "terraform-validate", Regex: `^terraform\s+validate\b`},
			{Name: "terraform-show", Regex: `^terraform\s+show\b`},
			{Name: "terraform-state-list", Regex: `^terraform\s+state\s+list\b`},
			{Name: "terraform-output", Regex: `^terraform\s+output\b`},
			{Name: "terraform-destroy-dry-run", Regex: `^terraform\s+plan\s+.*-destroy\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{
				Name:        "destroy-auto-approve",
				Regex:       `^terraform\s+destroy\s+.*-auto-approve\b`,
				Reason:      "destroys all managed infrastructure without a confirmation prompt",
				Severity:    SeverityCritical,
				Explanation: "terraform destroy tears down every resource tracked in state. -auto-approve skips the interactive review that would otherwise show what's about to be deleted.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "terraform plan -destroy", Explanation: "review exactly what would be destroyed first"},
					{SafeAlternative: "terraform destroy -target=<resource>", Explanation: "scope destruction to a single resource instead of the whole state"},
				},
			},
			{
				Name:        "destroy-bare",
				Regex:       `^terraform\s+destroy\s*(?:-target=\S+\s*)*$`,
				Reason:      "destroys all managed infrastructure",
				Severity:    SeverityHigh,
				Explanation: "Even with the interactive prompt, terraform destroy queues the removal of every resource in state unless scoped with -target.",
			},
			{
				Name:        "state-rm",
				Regex:       `^terraform\s+state\s+rm\b`,
				Reason:      "removes a resource from state without destroying it, causing drift",
				Severity:    SeverityMedium,
				Explanation: "The real infrastructure keeps running but terraform forgets about it; a later apply may try to recreate it, causing naming collisions or duplicate resources.",
			},
			{
				Name:        "apply-auto-approve",
				Regex:       `^terraform\s+apply\s+.*-auto-approve\b`,
				Reason:      "applies changes without reviewing the plan first",
				Severity:    SeverityMedium,
				Explanation: "Skips the confirmation step that shows which resources will be created, changed, or destroyed before it happens.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "terraform plan -out=tfplan && terraform apply tfplan", Explanation: "review a saved plan before applying it"},
				},
			},
			{
				Name:        "workspace-delete",
				Regex:       `^terraform\s+workspace\s+delete\b`,
				Reason:      "deletes a workspace and its isolated state",
				Severity:    SeverityHigh,
				Explanation: "Deleting a workspace removes its state file; any resources it tracked become unmanaged.",
			},
			{
				Name:        "force-unlock",
				Regex:       `^terraform\s+force-unlock\b`,
				Reason:      "releases the state lock, risking concurrent writers",
				Severity:    SeverityMedium,
				Explanation: "Bypasses the lock that prevents two concurrent applies from corrupting state; only safe when you've confirmed no other process is running.",
			},
		},
	}
}
