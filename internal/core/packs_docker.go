package core

// dockerPack is grounded on the teacher's own internal/core/patterns.go
// docker tier (system prune -a, force rm, image/volume removal without
// confirmation).
func dockerPack() *Pack {
	return &Pack{
		ID:          "core.docker",
		Name:        "Docker",
		Description: "Container and image operations that discard data or running state",
		Keywords:    []string{"docker"},
		SafePatterns: []SafePattern{
			{Name: "docker-ps", Regex: `^docker\s+ps\b`},
			{Name: "docker-images", Regex: `^docker\s+images\b`},
			{Name: "docker-logs", Regex: `^docker\s+logs\b`},
			{Name: "docker-inspect", Regex: `^docker\s+inspect\b`},
			{Name: "docker-stop", Regex: `^docker\s+stop\b`},
			{Name: "docker-system-df", Regex: `^docker\s+system\s+df\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{
				Name:        "system-prune-all",
				Regex:       `^docker\s+system\s+prune\s+-a\b`,
				Reason:      "removes all unused images, containers, networks, and build cache",
				Severity:    SeverityCritical,
				Explanation: "docker system prune -a removes every image not currently used by a running container, not just dangling ones. Rebuilding them from scratch can be slow or, if the source has since changed, impossible.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "docker system prune", Explanation: "without -a, only dangling images and stopped containers are removed"},
					{SafeAlternative: "docker system df", Explanation: "see what's using space before pruning"},
				},
			},
			{
				Name:        "rm-force-running",
				Regex:       `^docker\s+rm\s+(-\S*f\S*\s+)+`,
				Reason:      "force-removes a container, killing it if still running",
				Severity:    SeverityHigh,
				Explanation: "docker rm -f kills the container without waiting for a graceful shutdown and discards its writable layer.",
			},
			{
				Name:        "rmi-force",
				Regex:       `^docker\s+rmi\s+(-\S*f\S*\s+)+`,
				Reason:      "force-removes an image even if referenced by stopped containers",
				Severity:    SeverityMedium,
				Explanation: "Forcing image removal can orphan stopped containers that still reference it.",
			},
			{
				Name:        "volume-rm",
				Regex:       `^docker\s+volume\s+rm\b`,
				Reason:      "deletes a named volume and its data",
				Severity:    SeverityHigh,
				Explanation: "Named volumes often hold the only copy of database or application state; removing one discards that data permanently.",
			},
			{
				Name:        "volume-prune",
				Regex:       `^docker\s+volume\s+prune\b`,
				Reason:      "removes all volumes not referenced by at least one container",
				Severity:    SeverityHigh,
				Explanation: "Any volume not currently attached to a running container is deleted, including ones you intended to reattach later.",
			},
			{
				Name:        "compose-down-volumes",
				Regex:       `^docker(-compose|\s+compose)\s+down\s+.*(-v\b|--volumes\b)`,
				Reason:      "tears down the stack and deletes its named volumes",
				Severity:    SeverityHigh,
				Explanation: "The -v flag on compose down removes the named volumes declared in the compose file along with the containers.",
			},
		},
	}
}
