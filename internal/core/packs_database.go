package core

// databasePack covers CLI-level database administration commands, as
// distinct from the raw SQL statements in packs_sql.go. Grounded on the
// header doc comments of original_source/src/packs/database/{mysql,
// postgresql}.rs ("mysqladmin drop", "dropdb CLI command", "pg_dump with
// --clean flag") — the function bodies implementing those patterns are
// absent from this corpus (see DESIGN.md), so the patterns below are
// authored directly from that stated intent, extended to the equivalent
// Redis and MongoDB administrative commands.
func databasePack() *Pack {
	return &Pack{
		ID:          "database.server",
		Name:        "Database Server",
		Description: "CLI-level administrative commands that drop databases or flush datastores",
		Keywords:    []string{"mysqladmin", "dropdb", "pg_dump", "redis-cli", "mongo", "mongosh"},
		SafePatterns: []SafePattern{
			{Name: "mysqladmin-status", Regex: `mysqladmin\s+status\b`},
			{Name: "mysqladmin-ping", Regex: `mysqladmin\s+ping\b`},
			{Name: "pg-dump-plain", Regex: `pg_dump\s+[^-\n]*(?:-[^-\n]+|--+(?:[^-\nc][^-\n]*|c(?:[^-\nl][^-\n]*|l(?:[^-\ne][^-\n]*|e(?:[^-\na][^-\n]*|a(?:[^-\nn][^-\n]*)?)?)?)?))*-*$`},
			{Name: "redis-cli-get", Regex: `redis-cli\s+(?:-\S+\s+)*(?:get|ttl|exists|keys)\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{Name: "mysqladmin-drop", Regex: `mysqladmin\s+(?:-\S+\s+)*drop\b`, Severity: SeverityCritical, Reason: "drops a MySQL/MariaDB database", Explanation: "mysqladmin drop removes the named database and every table it contains."},
			{Name: "dropdb", Regex: `^dropdb\b`, Severity: SeverityCritical, Reason: "drops a PostgreSQL database", Explanation: "dropdb is the CLI equivalent of DROP DATABASE; it cannot be undone once it completes."},
			{Name: "pg-dump-clean", Regex: `pg_dump\s+.*--clean\b`, Severity: SeverityMedium, Reason: "dump includes DROP statements for restore", Explanation: "A --clean dump emits DROP statements before each CREATE; restoring it against a live database destroys the existing objects first."},
			{Name: "pg-restore-clean", Regex: `pg_restore\s+.*--clean\b`, Severity: SeverityHigh, Reason: "restore drops existing objects before recreating them", Explanation: "pg_restore --clean issues DROP commands for every object in the dump before restoring it, destroying whatever is currently in the target database."},
			{Name: "redis-flushall", Regex: `redis-cli\s+(?:-\S+\s+)*flushall\b`, Severity: SeverityCritical, Reason: "deletes every key in every Redis database", Explanation: "FLUSHALL clears all keys across all logical databases on the server with no confirmation."},
			{Name: "redis-flushdb", Regex: `redis-cli\s+(?:-\S+\s+)*flushdb\b`, Severity: SeverityCritical, Reason: "deletes every key in the selected Redis database", Explanation: "FLUSHDB clears all keys in the currently selected logical database."},
			{Name: "mongo-drop-database", Regex: `(?:mongo|mongosh)\s+.*db\.dropDatabase\(\)`, Severity: SeverityCritical, Reason: "drops the current MongoDB database", Explanation: "dropDatabase() removes every collection and document in the selected database."},
			{Name: "mongo-drop-collection", Regex: `(?:mongo|mongosh)\s+.*\.drop\(\)`, Severity: SeverityHigh, Reason: "drops a MongoDB collection", Explanation: "Removes the collection and every document it holds."},
		},
	}
}
