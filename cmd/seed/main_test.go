package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds SQL without a live connection so the statements the loaders
// generate can be inspected.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=seed password=seed dbname=seed port=5432 sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset file: %v", err)
	}
	return path
}

func TestLoadDictionariesToleratesSeededRows(t *testing.T) {
	db := dryRunDB(t)

	var statements []string
	err := db.Callback().Create().After("gorm:create").Register("capture_sql", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	path := writeDataset(t, "dictionary.csv", "id\tname\n1\tтіло\n3\tвидача\n")

	n, err := loadDictionaries(db, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
	if len(statements) != 1 {
		t.Fatalf("expected 1 insert statement, got %d", len(statements))
	}
	// The database comes pre-seeded with the reference rows, so the insert
	// must not fail on the duplicate ids.
	if !strings.Contains(statements[0], "ON CONFLICT") || !strings.Contains(statements[0], "DO NOTHING") {
		t.Fatalf("expected a conflict-tolerant insert, got %q", statements[0])
	}
}

func TestSequenceResetSQL(t *testing.T) {
	t.Parallel()

	got := sequenceResetSQL("plans")
	want := "SELECT setval(pg_get_serial_sequence('plans', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM plans"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestReadRows(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, "credits.csv",
		"id\tuser_id\tissuance_date\tactual_return_date\n"+
			"1\t2\t15.01.2021\t\n"+
			"2\t3\t01.02.2021\t01.08.2021\n")

	var rows []map[string]string
	err := readRows(path, func(row map[string]string) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["id"] != "1" || rows[0]["issuance_date"] != "15.01.2021" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[0]["actual_return_date"] != "" {
		t.Fatalf("expected empty actual_return_date, got %q", rows[0]["actual_return_date"])
	}
	if rows[1]["actual_return_date"] != "01.08.2021" {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
}
