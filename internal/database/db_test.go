package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "verdant-test.db")
}

func TestOpenCreatesSchema(t *testing.T) {
	db, err := Open(testPath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var ver int
	if err := db.QueryRow("SELECT version FROM schema_meta LIMIT 1").Scan(&ver); err != nil {
		t.Fatalf("query schema_meta: %v", err)
	}
	if ver != schemaVersion {
		t.Errorf("schema version = %d, want %d", ver, schemaVersion)
	}

	var count int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='estimates'
	`).Scan(&count)
	if err != nil {
		t.Fatalf("check estimates table: %v", err)
	}
	if count != 1 {
		t.Error("estimates table missing")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := testPath(t)

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO estimates (id, kwh_per_month, km_per_week, flights_per_year,
			electricity_kg, driving_kg, flights_kg, total_kg, created_at)
		VALUES ('a', 1, 1, 1, 1, 1, 1, 3, '2026-01-01T00:00:00Z')
	`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	db.Close()

	// Reopening at the current version must not drop existing rows.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM estimates").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("row count after reopen = %d, want 1", n)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db, err := Open(testPath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	boom := errors.New("boom")
	err = WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO estimates (id, kwh_per_month, km_per_week, flights_per_year,
				electricity_kg, driving_kg, flights_kg, total_kg, created_at)
			VALUES ('tx', 0, 0, 0, 0, 0, 0, 0, '2026-01-01T00:00:00Z')
		`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx err = %v, want boom", err)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM estimates").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("rows after rollback = %d, want 0", n)
	}
}

func TestWithTxCommits(t *testing.T) {
	db, err := Open(testPath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	err = WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO estimates (id, kwh_per_month, km_per_week, flights_per_year,
				electricity_kg, driving_kg, flights_kg, total_kg, created_at)
			VALUES ('tx2', 0, 0, 0, 0, 0, 0, 0, '2026-01-01T00:00:00Z')
		`)
		return err
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM estimates").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("rows after commit = %d, want 1", n)
	}
}
