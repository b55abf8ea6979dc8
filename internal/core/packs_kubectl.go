package core

// kubectlPack is grounded directly on
// original_source/src/packs/kubernetes/kubectl.rs: namespace/all-resource
// deletion, node drain/cordon, and dry-run-exempt read-only subcommands.
func kubectlPack() *Pack {
	return &Pack{
		ID:          "kubernetes.kubectl",
		Name:        "kubectl",
		Description: "Protects against destructive kubectl operations like delete namespace, drain, and mass deletion",
		Keywords:    []string{"kubectl", "delete", "drain", "cordon", "taint"},
		SafePatterns: []SafePattern{
			{Name: "kubectl-get", Regex: `kubectl\s+get`},
			{Name: "kubectl-describe", Regex: `kubectl\s+describe`},
			{Name: "kubectl-logs", Regex: `kubectl\s+logs`},
			{Name: "kubectl-dry-run", Regex: `kubectl\s+.*--dry-run(?:=(?:client|server|none))?`},
			{Name: "kubectl-diff", Regex: `kubectl\s+diff`},
			{Name: "kubectl-explain", Regex: `kubectl\s+explain`},
			{Name: "kubectl-top", Regex: `kubectl\s+top`},
			{Name: "kubectl-config", Regex: `kubectl\s+config`},
			{Name: "kubectl-api", Regex: `kubectl\s+api-(?:resources|versions)`},
			{Name: "kubectl-version", Regex: `kubectl\s+version`},
		},
		DestructivePatterns: []DestructivePattern{
			{
				Name:     "delete-namespace",
				Regex:    `kubectl\s+delete\s+(?:namespace|ns)\b`,
				Reason:   "kubectl delete namespace removes the entire namespace and ALL resources within it",
				Severity: SeverityCritical,
				Explanation: "Deleting a namespace destroys everything inside it: deployments, pods, " +
					"services, configmaps, secrets, PVCs, ingresses, and namespace-scoped RBAC. This " +
					"is irreversible; recreating the namespace does not bring resources back.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "kubectl delete ns {ns} --dry-run=client -o yaml", Explanation: "preview what would be deleted without making changes"},
					{SafeAlternative: "kubectl get all -n {ns}", Explanation: "see all resources in the namespace before deleting"},
					{SafeAlternative: "kubectl delete ns {ns} --grace-period=60", Explanation: "allow graceful shutdown with a 60-second grace period"},
				},
			},
			{
				Name:        "delete-all",
				Regex:       `kubectl\s+delete\s+.*--all\b`,
				Reason:      "kubectl delete --all removes ALL resources of that type",
				Severity:    SeverityHigh,
				Explanation: "The --all flag deletes every resource of the specified type in the namespace, which can take down services or lose persistent data depending on the resource type.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "kubectl delete {resource} --all --dry-run=client", Explanation: "preview what would be deleted without making changes"},
					{SafeAlternative: "kubectl rollout restart deployment/{name}", Explanation: "restart pods via deployment for graceful recreation"},
					{SafeAlternative: "kubectl delete {resource} -l app={label}", Explanation: "use label selectors for targeted deletion"},
				},
			},
			{
				Name:        "delete-all-namespaces",
				Regex:       `kubectl\s+delete\s+.*(?:-A\b|--all-namespaces)`,
				Reason:      "kubectl delete with -A/--all-namespaces affects ALL namespaces",
				Severity:    SeverityCritical,
				Explanation: "Expands deletion to every namespace in the cluster, including system namespaces and unrelated environments sharing the cluster.",
			},
			{
				Name:        "delete-pvc",
				Regex:       `kubectl\s+delete\s+(?:pvc|persistentvolumeclaim)\b`,
				Reason:      "deleting a PVC can release and destroy its backing data",
				Severity:    SeverityHigh,
				Explanation: "Depending on the storage class's reclaim policy, deleting a PersistentVolumeClaim can permanently delete the underlying volume's data.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "kubectl describe pvc {name}", Explanation: "check PVC status and usage before deleting"},
					{SafeAlternative: "kubectl delete pvc {name} --dry-run=client", Explanation: "preview deletion without making changes"},
				},
			},
			{
				Name:        "delete-force-grace-zero",
				Regex:       `kubectl\s+delete\s+.*--force\b.*--grace-period=0`,
				Reason:      "force delete with zero grace period skips graceful shutdown",
				Severity:    SeverityHigh,
				Explanation: "Bypasses the normal termination sequence entirely, which can leave connections and locks in an inconsistent state.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "kubectl delete {resource} {name} --grace-period=60", Explanation: "extended grace period for slower shutdown"},
				},
			},
			{
				Name:        "apply-force",
				Regex:       `kubectl\s+apply\s+.*--force\b`,
				Reason:      "forced apply deletes and recreates resources instead of patching",
				Severity:    SeverityMedium,
				Explanation: "A forced apply can cause a brief outage while the old resource is deleted and the new one is created, rather than patched in place.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "kubectl diff -f {file}", Explanation: "preview what changes would be applied"},
				},
			},
			{
				Name:        "delete-from-directory",
				Regex:       `kubectl\s+delete\s+-f\s+\S*/\s*$`,
				Reason:      "deleting from a directory removes every manifest it contains",
				Severity:    SeverityMedium,
				Explanation: "kubectl delete -f <dir> deletes every resource defined anywhere under that directory in one shot.",
			},
			{
				Name:        "drain-node",
				Regex:       `kubectl\s+drain\b`,
				Reason:      "evicts all pods from a node",
				Severity:    SeverityHigh,
				Explanation: "Draining a node evicts every pod scheduled on it; without adequate pod disruption budgets or replicas elsewhere, this can cause an outage.",
			},
			{
				Name:        "delete-node",
				Regex:       `kubectl\s+delete\s+(?:node|nodes)\b`,
				Reason:      "removes a node object from the cluster",
				Severity:    SeverityHigh,
				Explanation: "Deleting a node object removes it from scheduling; any pods still running there are orphaned from the scheduler's perspective.",
			},
		},
	}
}
