package core

import "testing"

func TestDatabasePackSafePatterns(t *testing.T) {
	p := databasePack()
	for _, cmd := range []string{
		"mysqladmin status",
		"mysqladmin ping",
		"redis-cli get mykey",
	} {
		if m := p.Evaluate(cmd); m != nil {
			t.Errorf("expected %q to be safe, got match %+v", cmd, m)
		}
	}
}

func TestDatabasePackDestructivePatterns(t *testing.T) {
	p := databasePack()

	m := p.Evaluate("mysqladmin drop somedb")
	if m == nil || m.Name != "mysqladmin-drop" || m.Severity != SeverityCritical {
		t.Fatalf("expected mysqladmin-drop/critical, got %+v", m)
	}

	m = p.Evaluate("redis-cli flushall")
	if m == nil || m.Name != "redis-flushall" || m.Severity != SeverityCritical {
		t.Fatalf("expected redis-flushall/critical, got %+v", m)
	}

	m = p.Evaluate("mongosh mydb --eval db.dropDatabase()")
	if m == nil || m.Name != "mongo-drop-database" {
		t.Fatalf("expected mongo-drop-database, got %+v", m)
	}
}
