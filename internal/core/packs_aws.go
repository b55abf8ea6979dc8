package core

// awsPack covers generic AWS CLI resource destruction not specific to
// Secrets Manager/SSM (see packs_secrets.go), grounded on the teacher's own
// internal/core/patterns.go `aws .* terminate-instances` critical-tier entry
// and extended to sibling EC2/RDS/S3 destructive verbs in the same idiom.
func awsPack() *Pack {
	return &Pack{
		ID:          "core.aws",
		Name:        "AWS",
		Description: "Protects against destructive AWS CLI operations like instance termination and resource deletion",
		Keywords:    []string{"aws "},
		SafePatterns: []SafePattern{
			{Name: "aws-describe", Regex: `aws\s+\S+\s+describe-`},
			{Name: "aws-list", Regex: `aws\s+\S+\s+list-`},
			{Name: "aws-get", Regex: `aws\s+\S+\s+get-`},
			{Name: "aws-s3-ls", Regex: `aws\s+s3\s+ls\b`},
			{Name: "aws-sts-identity", Regex: `aws\s+sts\s+get-caller-identity\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{Name: "ec2-terminate-instances", Regex: `aws\s+.*terminate-instances\b`, Severity: SeverityCritical, Reason: "permanently destroys EC2 instances and their instance-store data", Explanation: "Terminated instances cannot be restarted; any data on instance-store volumes is lost immediately."},
			{Name: "ec2-delete-volume", Regex: `aws\s+ec2\s+delete-volume\b`, Severity: SeverityCritical, Reason: "deletes an EBS volume and its data", Explanation: "Deleting an EBS volume permanently destroys its contents unless a snapshot already exists."},
			{Name: "ec2-delete-snapshot", Regex: `aws\s+ec2\s+delete-snapshot\b`, Severity: SeverityHigh, Reason: "deletes an EBS snapshot", Explanation: "Removes a backup that may be the only recovery point for a volume."},
			{Name: "ec2-deregister-image", Regex: `aws\s+ec2\s+deregister-image\b`, Severity: SeverityMedium, Reason: "deregisters an AMI", Explanation: "Instances can no longer be launched from this AMI; existing instances are unaffected."},
			{Name: "s3-rb-force", Regex: `aws\s+s3\s+rb\s+.*--force\b`, Severity: SeverityCritical, Reason: "deletes a bucket and all objects in it", Explanation: "The --force flag empties the bucket of every object and version before removing it, with no recovery."},
			{Name: "s3-rm-recursive", Regex: `aws\s+s3\s+rm\s+.*--recursive\b`, Severity: SeverityHigh, Reason: "recursively deletes objects under an S3 prefix", Explanation: "Every object matching the prefix is deleted; without versioning enabled this is unrecoverable."},
			{Name: "rds-delete-db-instance", Regex: `aws\s+rds\s+delete-db-instance\b`, Severity: SeverityCritical, Reason: "deletes an RDS database instance", Explanation: "Unless a final snapshot is requested, all data in the instance is lost permanently."},
			{Name: "rds-delete-db-cluster", Regex: `aws\s+rds\s+delete-db-cluster\b`, Severity: SeverityCritical, Reason: "deletes an RDS cluster", Explanation: "Deletes every instance in the cluster along with its data unless a final snapshot is taken."},
			{Name: "iam-delete-role", Regex: `aws\s+iam\s+delete-role\b`, Severity: SeverityHigh, Reason: "deletes an IAM role", Explanation: "Services or instances assuming this role lose access immediately; the role's policies are not recoverable."},
			{Name: "iam-delete-user", Regex: `aws\s+iam\s+delete-user\b`, Severity: SeverityHigh, Reason: "deletes an IAM user", Explanation: "Any access keys or credentials tied to this user stop working immediately."},
			{Name: "cloudformation-delete-stack", Regex: `aws\s+cloudformation\s+delete-stack\b`, Severity: SeverityCritical, Reason: "tears down every resource managed by a CloudFormation stack", Explanation: "Deletes all resources the stack created, cascading through the entire dependency graph unless retained explicitly."},
			{Name: "dynamodb-delete-table", Regex: `aws\s+dynamodb\s+delete-table\b`, Severity: SeverityCritical, Reason: "deletes a DynamoDB table and its data", Explanation: "All items in the table are destroyed; without point-in-time recovery enabled there is no way back."},
		},
	}
}
