package core

// mailgunPack is grounded on original_source/src/packs/email/mailgun.rs:
// DELETE calls against the Mailgun HTTP API's domain/route/list/template/
// webhook/credential/tag/suppression endpoints. There are no safe patterns
// here; GET/POST requests are allowed by default and only explicit DELETE
// verbs against these endpoints are flagged.
func mailgunPack() *Pack {
	return &Pack{
		ID:          "email.mailgun",
		Name:        "Mailgun",
		Description: "Protects against destructive Mailgun API operations like domain deletion, route deletion, and mailing list removal",
		Keywords:    []string{"mailgun", "api.mailgun.net"},
		DestructivePatterns: []DestructivePattern{
			{Name: "mailgun-delete-domain", Regex: `(?:-X\s*DELETE|--request\s+DELETE).*api\.mailgun\.net/v3/domains/[^\s/]+(?:\s|$)|api\.mailgun\.net/v3/domains/[^\s/]+(?:\s|$).*(?:-X\s*DELETE|--request\s+DELETE)`, Severity: SeverityHigh, Reason: "removes a domain configuration", Explanation: "DELETE to /v3/domains/<name> removes the domain's sending configuration and DNS verification state."},
			{Name: "mailgun-delete-route", Regex: `(?:-X\s*DELETE|--request\s+DELETE).*api\.mailgun\.net/v3/routes/|api\.mailgun\.net/v3/routes/\w+.*(?:-X\s*DELETE|--request\s+DELETE)`, Severity: SeverityMedium, Reason: "removes an email route", Explanation: "Deleting a route stops its forwarding/storing action for matching incoming mail."},
			{Name: "mailgun-delete-list", Regex: `(?:-X\s*DELETE|--request\s+DELETE).*api\.mailgun\.net/v3/lists/|api\.mailgun\.net/v3/lists/[^\s/]+.*(?:-X\s*DELETE|--request\s+DELETE)`, Severity: SeverityHigh, Reason: "removes a mailing list", Explanation: "Deleting a mailing list also removes its membership records."},
			{Name: "mailgun-delete-template", Regex: `(?:-X\s*DELETE|--request\s+DELETE).*api\.mailgun\.net/v3/[^/]+/templates/|api\.mailgun\.net/v3/[^/]+/templates/\w+.*(?:-X\s*DELETE|--request\s+DELETE)`, Severity: SeverityMedium, Reason: "removes an email template", Explanation: "Any code still referencing the deleted template by name will fail to send."},
			{Name: "mailgun-delete-webhook", Regex: `(?:-X\s*DELETE|--request\s+DELETE).*api\.mailgun\.net/v3/domains/[^/]+/webhooks/|api\.mailgun\.net/v3/domains/[^/]+/webhooks/\w+.*(?:-X\s*DELETE|--request\s+DELETE)`, Severity: SeverityMedium, Reason: "removes a webhook", Explanation: "Removing a webhook silently stops delivery of the events it was subscribed to."},
			{Name: "mailgun-delete-credential", Regex: `(?:-X\s*DELETE|--request\s+DELETE).*api\.mailgun\.net/v3/domains/[^/]+/credentials/|api\.mailgun\.net/v3/domains/[^/]+/credentials/[^\s/]+.*(?:-X\s*DELETE|--request\s+DELETE)`, Severity: SeverityHigh, Reason: "removes SMTP credentials", Explanation: "Any service authenticating with the deleted SMTP credential will start failing to send."},
			{Name: "mailgun-delete-tag", Regex: `(?:-X\s*DELETE|--request\s+DELETE).*api\.mailgun\.net/v3/[^/]+/tags/|api\.mailgun\.net/v3/[^/]+/tags/\w+.*(?:-X\s*DELETE|--request\s+DELETE)`, Severity: SeverityLow, Reason: "removes a tag", Explanation: "Deleting a tag also discards its aggregated analytics."},
			{Name: "mailgun-delete-suppression", Regex: `(?:-X\s*DELETE|--request\s+DELETE).*api\.mailgun\.net/v3/[^/]+/(?:bounces|complaints|unsubscribes)/`, Severity: SeverityMedium, Reason: "removes a suppression entry", Explanation: "Clearing a bounce/complaint/unsubscribe suppression lets future sends reach that address again, which can violate compliance commitments."},
		},
	}
}
