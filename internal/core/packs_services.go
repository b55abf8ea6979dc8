package core

// servicesPack is grounded on original_source/src/packs/system/services.rs:
// systemctl/service stop-disable-mask on critical daemons, runlevel and
// power-state changes.
func servicesPack() *Pack {
	return &Pack{
		ID:          "system.services",
		Name:        "Services",
		Description: "Protects against dangerous service operations like stopping critical services and modifying init configuration",
		Keywords:    []string{"systemctl", "service", "init", "upstart", "shutdown", "reboot"},
		SafePatterns: []SafePattern{
			{Name: "systemctl-status", Regex: `systemctl\s+status`},
			{Name: "service-status", Regex: `service\s+\S+\s+status`},
			{Name: "systemctl-list", Regex: `systemctl\s+list-(?:units|unit-files|sockets|timers)`},
			{Name: "systemctl-show", Regex: `systemctl\s+show`},
			{Name: "systemctl-is", Regex: `systemctl\s+is-(?:active|enabled|failed)`},
			{Name: "systemctl-reload", Regex: `systemctl\s+daemon-reload`},
			{Name: "systemctl-cat", Regex: `systemctl\s+cat`},
			{Name: "journalctl", Regex: `\bjournalctl\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{
				Name:     "systemctl-stop-critical",
				Regex:    `systemctl\s+(?:stop|disable|mask)\s+(?:ssh|sshd|network|networking|firewalld|ufw|docker|containerd)`,
				Reason:   "stopping/disabling a critical service can cause access loss or outage",
				Severity: SeverityHigh,
				Explanation: "Stopping, disabling, or masking a critical system service can lock you out of " +
					"the machine or cause cascading failures: stopping sshd severs remote access, stopping " +
					"networking drops all connections, stopping docker kills every running container.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "systemctl status <service>", Explanation: "check current state first"},
					{SafeAlternative: "systemctl restart <service>", Explanation: "use restart instead of stop if the goal is to recover a stuck service"},
				},
			},
			{
				Name:        "systemctl-stop",
				Regex:       `systemctl\s+(?:stop|disable|mask)\b`,
				Reason:      "affects service availability",
				Severity:    SeverityHigh,
				Explanation: "Stopping terminates the service immediately, disabling prevents it starting at boot, masking makes it impossible to start even manually.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "systemctl list-dependencies --reverse <service>", Explanation: "check what depends on the service first"},
				},
			},
			{
				Name:        "service-stop-critical",
				Regex:       `service\s+(?:ssh|sshd|network|networking|docker)\s+stop`,
				Reason:      "stopping a critical service via the legacy service command",
				Severity:    SeverityHigh,
				Explanation: "Stopping sshd terminates remote access; stopping networking drops all connections. If connected remotely you may be unable to reconnect.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "service <name> status", Explanation: "check status first"},
				},
			},
			{
				Name:        "systemctl-isolate",
				Regex:       `systemctl\s+isolate`,
				Reason:      "changes the system's active target, stopping unrelated services",
				Severity:    SeverityHigh,
				Explanation: "Isolating a target stops all services not required by it; isolating rescue.target drops to single-user mode, stopping networking and most daemons.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "systemctl get-default", Explanation: "check the current target before changing it"},
				},
			},
			{
				Name:        "systemctl-power",
				Regex:       `systemctl\s+(?:poweroff|reboot|halt|suspend|hibernate)`,
				Reason:      "immediately changes the system's power state",
				Severity:    SeverityCritical,
				Explanation: "Poweroff and halt shut down the machine, reboot restarts it, suspend/hibernate save state to RAM or disk. Unsaved work and active connections are interrupted.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: `shutdown +5 "scheduled maintenance"`, Explanation: "schedule a graceful shutdown with warning instead"},
				},
			},
			{
				Name:        "shutdown",
				Regex:       `\bshutdown\b`,
				Reason:      "powers off or restarts the system",
				Severity:    SeverityCritical,
				Explanation: "All running processes receive SIGTERM then SIGKILL, filesystems are unmounted, and remote users lose access immediately.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "shutdown -c", Explanation: "cancel a pending shutdown"},
				},
			},
			{
				Name:        "reboot",
				Regex:       `\breboot\b`,
				Reason:      "restarts the system",
				Severity:    SeverityCritical,
				Explanation: "All processes are terminated and connections dropped during the restart cycle; unsaved work is lost.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: `shutdown -r +5 "reboot in 5 minutes"`, Explanation: "schedule a delayed reboot with notice"},
				},
			},
			{
				Name:        "init-level",
				Regex:       `\binit\s+[06]\b`,
				Reason:      "init 0 halts, init 6 reboots the system",
				Severity:    SeverityCritical,
				Explanation: "Legacy SysV power management that takes effect immediately; all processes are killed.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "systemctl poweroff", Explanation: "prefer systemctl over init 0 on systemd systems"},
					{SafeAlternative: "systemctl reboot", Explanation: "prefer systemctl over init 6 on systemd systems"},
				},
			},
		},
	}
}
