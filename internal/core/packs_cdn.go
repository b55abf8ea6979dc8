package core

// cdnPack is grounded on original_source/src/packs/cdn/fastly.rs (SPEC_FULL
// names this pack cdn.edge, covering edge-CDN CLI destruction generically;
// fastly.rs is the fullest of the three cdn/ vendor files in this corpus, so
// its command shape stands in for the class as a whole — see DESIGN.md).
func cdnPack() *Pack {
	return &Pack{
		ID:          "cdn.edge",
		Name:        "CDN Edge",
		Description: "Protects against destructive CDN CLI operations like service, domain, backend, and VCL/worker deletion",
		Keywords:    []string{"fastly"},
		SafePatterns: []SafePattern{
			{Name: "fastly-service-list", Regex: `fastly\s+service\s+list\b`},
			{Name: "fastly-service-describe", Regex: `fastly\s+service\s+describe\b`},
			{Name: "fastly-service-search", Regex: `fastly\s+service\s+search\b`},
			{Name: "fastly-domain-list", Regex: `fastly\s+domain\s+list\b`},
			{Name: "fastly-domain-describe", Regex: `fastly\s+domain\s+describe\b`},
			{Name: "fastly-backend-list", Regex: `fastly\s+backend\s+list\b`},
			{Name: "fastly-backend-describe", Regex: `fastly\s+backend\s+describe\b`},
			{Name: "fastly-vcl-list", Regex: `fastly\s+vcl\s+list\b`},
			{Name: "fastly-vcl-describe", Regex: `fastly\s+vcl\s+describe\b`},
			{Name: "fastly-version-list", Regex: `fastly\s+version\s+list\b`},
			{Name: "fastly-whoami", Regex: `fastly\s+whoami\b`},
			{Name: "fastly-profile", Regex: `fastly\s+profile\b`},
			{Name: "fastly-version", Regex: `fastly\s+(?:-v|--version|version)\b`},
			{Name: "fastly-help", Regex: `fastly\s+(?:-h|--help|help)\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{Name: "fastly-service-delete", Regex: `fastly\s+service\s+delete\b`, Severity: SeverityCritical, Reason: "removes a CDN service entirely", Explanation: "Deleting the service removes its entire edge configuration; traffic still pointed at it will start failing."},
			{Name: "fastly-domain-delete", Regex: `fastly\s+domain\s+delete\b`, Severity: SeverityHigh, Reason: "removes a domain from a service", Explanation: "Requests to the removed domain stop being served at the edge."},
			{Name: "fastly-backend-delete", Regex: `fastly\s+backend\s+delete\b`, Severity: SeverityHigh, Reason: "removes a backend origin server", Explanation: "Removing a backend that's still referenced by routing logic causes requests to fail to originate."},
			{Name: "fastly-vcl-delete", Regex: `fastly\s+vcl\s+delete\b`, Severity: SeverityHigh, Reason: "removes edge logic configuration", Explanation: "Deleting VCL/worker configuration can change or break request handling at the edge immediately."},
			{Name: "fastly-dictionary-delete", Regex: `fastly\s+dictionary\s+delete\b`, Severity: SeverityMedium, Reason: "removes an edge dictionary", Explanation: "Edge logic that looks up values in this dictionary will start getting misses."},
			{Name: "fastly-dictionary-item-delete", Regex: `fastly\s+dictionary-item\s+delete\b`, Severity: SeverityLow, Reason: "removes dictionary entries", Explanation: "Removes individual key/value pairs used by edge logic."},
			{Name: "fastly-acl-delete", Regex: `fastly\s+acl\s+delete\b`, Severity: SeverityMedium, Reason: "removes an access control list", Explanation: "Deleting an ACL referenced by active VCL changes which requests are allowed or blocked."},
			{Name: "fastly-acl-entry-delete", Regex: `fastly\s+acl-entry\s+delete\b`, Severity: SeverityLow, Reason: "removes ACL entries", Explanation: "Individual allow/deny entries are removed from an existing list."},
			{Name: "fastly-logging-delete", Regex: `fastly\s+logging\s+\S+\s+delete\b`, Severity: SeverityMedium, Reason: "removes a logging endpoint", Explanation: "Once removed, edge events stop being shipped to that destination."},
			{Name: "fastly-version-activate", Regex: `fastly\s+service\s+version\s+activate\b`, Severity: SeverityHigh, Reason: "activates a new service version", Explanation: "Activating a version can cause a service disruption immediately if the version is misconfigured."},
			{Name: "fastly-compute-delete", Regex: `fastly\s+compute\s+delete\b`, Severity: SeverityHigh, Reason: "removes a compute package", Explanation: "Deleting the deployed compute package takes the service offline until redeployed."},
		},
	}
}
