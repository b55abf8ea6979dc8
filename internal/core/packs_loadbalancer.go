package core

// loadbalancerPack is grounded on
// original_source/src/packs/loadbalancer/nginx.rs (SPEC_FULL names this
// pack loadbalancer.proxy; nginx.rs is used as the concrete command shape
// since traefik.rs covers the same stop/reload/config-delete concerns through
// a differently-shaped CLI — see DESIGN.md).
func loadbalancerPack() *Pack {
	return &Pack{
		ID:          "loadbalancer.proxy",
		Name:        "Load Balancer",
		Description: "Protects against destructive reverse-proxy operations like stopping the service or deleting config files",
		Keywords:    []string{"nginx", "/etc/nginx"},
		SafePatterns: []SafePattern{
			{Name: "nginx-config-test", Regex: `nginx\s+-t\b`},
			{Name: "nginx-config-dump", Regex: `nginx\s+-T\b`},
			{Name: "nginx-version", Regex: `nginx\s+-v\b`},
			{Name: "nginx-version-full", Regex: `nginx\s+-V\b`},
			{Name: "nginx-reload", Regex: `nginx\s+-s\s+reload\b`},
			{Name: "systemctl-status-nginx", Regex: `systemctl\s+status\s+nginx(?:\.service)?\b`},
			{Name: "service-status-nginx", Regex: `service\s+nginx\s+status\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{
				Name:     "nginx-stop",
				Regex:    `nginx\s+-s\s+stop\b`,
				Reason:   "shuts down nginx and stops the load balancer",
				Severity: SeverityHigh,
				Explanation: "Sending the stop signal terminates nginx immediately without waiting for active " +
					"connections to finish. All in-flight requests are dropped and upstream traffic stops being routed.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "nginx -s reload", Explanation: "reload config without downtime"},
					{SafeAlternative: "nginx -s quit", Explanation: "gracefully finish current requests before stopping"},
				},
			},
			{
				Name:     "nginx-quit",
				Regex:    `nginx\s+-s\s+quit\b`,
				Reason:   "gracefully stops nginx and halts traffic handling",
				Severity: SeverityHigh,
				Explanation: "The quit signal waits for active connections to complete before shutting down. " +
					"It still permanently stops the load balancer; no new connections are accepted once issued.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "nginx -s reload", Explanation: "reload config without stopping"},
					{SafeAlternative: "nginx -t", Explanation: "test config before making changes"},
				},
			},
			{
				Name:     "systemctl-stop-nginx",
				Regex:    `systemctl\s+stop\s+nginx(?:\.service)?\b`,
				Reason:   "stops the nginx service and disrupts traffic",
				Severity: SeverityHigh,
				Explanation: "Stopping the nginx systemd service shuts down all worker processes. Any sites, " +
					"APIs, or reverse proxies served by this instance become unreachable until restarted.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "systemctl status nginx", Explanation: "check status first"},
					{SafeAlternative: "systemctl restart nginx", Explanation: "restart instead of stop"},
				},
			},
			{
				Name:     "service-stop-nginx",
				Regex:    `service\s+nginx\s+stop\b`,
				Reason:   "stops the nginx service and disrupts traffic",
				Severity: SeverityHigh,
				Explanation: "Stopping nginx via the legacy service command terminates all worker processes; " +
					"all sites and proxies served by nginx become unavailable.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "service nginx status", Explanation: "check status first"},
				},
			},
			{
				Name:     "nginx-config-delete",
				Regex:    `\brm\b.*\s+/etc/nginx(?:/|\b)`,
				Reason:   "removes nginx configuration files",
				Severity: SeverityCritical,
				Explanation: "Deleting nginx configuration files removes site definitions, upstream blocks, " +
					"SSL certificate references, and load balancing rules; nginx will fail to start or reload " +
					"without valid configuration.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "cp -r /etc/nginx /etc/nginx.backup", Explanation: "back up config before deleting anything"},
					{SafeAlternative: "nginx -t", Explanation: "test config validity"},
				},
			},
		},
	}
}
