package core

// splunkPack is grounded on original_source/src/packs/monitoring/splunk.rs:
// index removal, eventdata cleanup, user/role deletion, and REST DELETE
// calls against /services endpoints.
func splunkPack() *Pack {
	return &Pack{
		ID:          "monitoring.splunk",
		Name:        "Splunk",
		Description: "Protects against destructive Splunk CLI/API operations like index removal and REST API DELETE calls",
		Keywords:    []string{"splunk"},
		SafePatterns: []SafePattern{
			{Name: "splunk-list", Regex: `splunk\s+list\b`},
			{Name: "splunk-show", Regex: `splunk\s+show\b`},
			{Name: "splunk-search", Regex: `splunk\s+search\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{Name: "splunk-remove-index", Regex: `splunk\s+remove\s+index\b`, Severity: SeverityCritical, Reason: "deletes an index and its data permanently", Explanation: "splunk remove index permanently deletes the index and all events it contains."},
			{Name: "splunk-clean-eventdata", Regex: `splunk\s+clean\s+eventdata\b`, Severity: SeverityCritical, Reason: "permanently deletes indexed data", Explanation: "splunk clean eventdata wipes indexed events with no recovery path."},
			{Name: "splunk-delete-user-role", Regex: `splunk\s+delete\s+(?:user|role)\b`, Severity: SeverityMedium, Reason: "removes an access configuration", Explanation: "Deleting a user or role can lock people out or change what data they can see; verify before deleting."},
			{Name: "splunk-api-delete", Regex: `(?i)curl\s+.*(?:-X|--request)\s+DELETE\b.*splunk.*/services/`, Severity: SeverityHigh, Reason: "REST DELETE call against a Splunk services endpoint", Explanation: "Splunk's REST API can permanently remove objects via DELETE; verify the endpoint before sending."},
		},
	}
}
