package core

// secretsPack is grounded on original_source/src/packs/secrets/aws_secrets.rs
// (SPEC_FULL names this pack secrets.manager, covering AWS Secrets Manager
// and SSM Parameter Store rather than a single vendor, since the other
// secrets/ files in this corpus, onepassword.rs and doppler.rs, cover
// developer-local secret managers with no comparably destructive CLI surface).
func secretsPack() *Pack {
	return &Pack{
		ID:          "secrets.manager",
		Name:        "Secrets Manager",
		Description: "Protects against destructive AWS Secrets Manager and SSM Parameter Store operations like delete-secret and delete-parameter",
		Keywords:    []string{"aws", "secretsmanager", "ssm"},
		SafePatterns: []SafePattern{
			{Name: "aws-secretsmanager-list", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+secretsmanager\s+list-secrets\b`},
			{Name: "aws-secretsmanager-describe", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+secretsmanager\s+describe-secret\b`},
			{Name: "aws-secretsmanager-get", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+secretsmanager\s+get-secret-value\b`},
			{Name: "aws-secretsmanager-list-versions", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+secretsmanager\s+list-secret-version-ids\b`},
			{Name: "aws-secretsmanager-get-resource-policy", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+secretsmanager\s+get-resource-policy\b`},
			{Name: "aws-secretsmanager-get-random-password", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+secretsmanager\s+get-random-password\b`},
			{Name: "aws-ssm-get-parameter", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+ssm\s+get-parameter\b`},
			{Name: "aws-ssm-get-parameters", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+ssm\s+get-parameters\b`},
			{Name: "aws-ssm-describe-parameters", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+ssm\s+describe-parameters\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{Name: "aws-secretsmanager-delete-secret", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+secretsmanager\s+delete-secret\b`, Severity: SeverityCritical, Reason: "removes a secret, may be unrecoverable after the recovery window", Explanation: "delete-secret schedules (or, with --force-delete-without-recovery, immediately performs) permanent removal of a secret that running services may depend on."},
			{Name: "aws-secretsmanager-delete-resource-policy", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+secretsmanager\s+delete-resource-policy\b`, Severity: SeverityHigh, Reason: "removes access controls on a secret", Explanation: "Deleting the resource policy changes who and what can read the secret."},
			{Name: "aws-secretsmanager-remove-regions", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+secretsmanager\s+remove-regions-from-replication\b`, Severity: SeverityMedium, Reason: "reduces replication availability", Explanation: "Removing replica regions can break reads from services in those regions."},
			{Name: "aws-secretsmanager-update-secret", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+secretsmanager\s+update-secret\b`, Severity: SeverityHigh, Reason: "overwrites secret metadata or value", Explanation: "update-secret can overwrite the secret string in place with no separate confirmation step."},
			{Name: "aws-secretsmanager-put-secret-value", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+secretsmanager\s+put-secret-value\b`, Severity: SeverityHigh, Reason: "creates a new secret version", Explanation: "Clients reading the current version may break if the new value has a different shape."},
			{Name: "aws-ssm-delete-parameter", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+ssm\s+delete-parameter\b`, Severity: SeverityHigh, Reason: "removes a parameter", Explanation: "Deployments reading this parameter at startup can fail once it's gone."},
			{Name: "aws-ssm-delete-parameters", Regex: `aws(?:\s+--?\S+(?:\s+\S+)?)*\s+ssm\s+delete-parameters\b`, Severity: SeverityHigh, Reason: "removes multiple parameters at once", Explanation: "Batch deletion multiplies the blast radius of a single mistaken invocation."},
		},
	}
}
