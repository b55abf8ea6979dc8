package core

// sqlPack covers data-destroying SQL statements independent of which
// database engine runs them, grounded on the teacher's own
// internal/core/patterns.go critical tier (DROP DATABASE/SCHEMA, TRUNCATE,
// unscoped DELETE). original_source/src/database/{mysql,postgresql}.rs are
// unpopulated stubs in this corpus, so this pack is grounded on the Go
// teacher's tier lists instead; see DESIGN.md.
func sqlPack() *Pack {
	return &Pack{
		ID:          "core.sql",
		Name:        "SQL",
		Description: "Statements that drop, truncate, or unconditionally delete data",
		Keywords:    []string{"drop ", "truncate", "delete from", "delete  from"},
		SafePatterns: []SafePattern{
			{Name: "select", Regex: `(?i)^\s*select\b`},
			{Name: "delete-with-where", Regex: `(?i)delete\s+from\s+\S+\s+where\s+\S`},
			{Name: "drop-if-exists-temp", Regex: `(?i)drop\s+table\s+if\s+exists\s+\S*temp\S*`},
		},
		DestructivePatterns: []DestructivePattern{
			{
				Name:        "drop-database",
				Regex:       `(?i)drop\s+database\b`,
				Reason:      "destroys an entire database, all its tables, and all their data",
				Severity:    SeverityCritical,
				Explanation: "DROP DATABASE is not transactional in most engines and cannot be rolled back once it completes.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "pg_dump/mysqldump before dropping", Explanation: "take a backup you can restore from if this turns out to be a mistake"},
				},
			},
			{
				Name:        "drop-schema",
				Regex:       `(?i)drop\s+schema\b`,
				Reason:      "destroys a schema and everything it contains",
				Severity:    SeverityCritical,
				Explanation: "Dropping a schema cascades to every table, view, and function defined in it.",
			},
			{
				Name:        "truncate-table",
				Regex:       `(?i)truncate\s+table\b`,
				Reason:      "removes all rows from a table without a WHERE clause",
				Severity:    SeverityCritical,
				Explanation: "TRUNCATE bypasses row-level triggers and, in most engines, cannot be filtered — it always empties the whole table.",
			},
			{
				Name:        "delete-unscoped",
				Regex:       "(?i)delete\\s+from\\s+[\\w.`\"\\[\\]]+\\s*(;|$|--|/\\*)",
				Reason:      "DELETE with no WHERE clause removes every row",
				Severity:    SeverityCritical,
				Explanation: "Without a WHERE clause, DELETE FROM removes every row in the table in one statement.",
				Suggestions: []PatternSuggestion{
					{SafeAlternative: "DELETE FROM t WHERE <condition>", Explanation: "scope the delete to the rows you actually intend to remove"},
				},
			},
			{
				Name:        "drop-table",
				Regex:       `(?i)drop\s+table\b`,
				Reason:      "removes a table and all of its data",
				Severity:    SeverityHigh,
				Explanation: "Dropping a table removes its schema and data together; restoring it requires a backup.",
			},
			{
				Name:        "delete-scoped",
				Regex:       `(?i)delete\s+from\s+\S+\s+where\b`,
				Reason:      "conditional delete, still irreversible once committed",
				Severity:    SeverityMedium,
				Explanation: "Scoped deletes are much safer than unscoped ones but are still permanent once committed.",
			},
			{
				Name:        "update-unscoped",
				Regex:       `(?i)^\s*update\s+\S+\s+set\s+\S+\s*(;|$)`,
				Reason:      "UPDATE with no WHERE clause modifies every row",
				Severity:    SeverityHigh,
				Explanation: "Without a WHERE clause, UPDATE modifies every row in the table.",
			},
		},
	}
}
