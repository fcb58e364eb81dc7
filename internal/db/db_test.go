package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()

	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	database.SetMaxOpenConns(1)
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func columns(t *testing.T, database *sql.DB, table string) map[string]bool {
	t.Helper()

	rows, err := database.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		t.Fatalf("failed to read table info: %v", err)
	}
	defer rows.Close()

	cols := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("scan: %v", err)
		}
		cols[name] = true
	}
	return cols
}

func TestInitSchema_FreshInstall(t *testing.T) {
	database := openMemory(t)

	if err := InitSchema(database); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}

	v, err := CurrentVersion(database)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if v != LatestVersion() {
		t.Errorf("expected version %d, got %d", LatestVersion(), v)
	}

	cols := columns(t, database, "kv_store")
	for _, c := range []string{"key", "value", "updated_at"} {
		if !cols[c] {
			t.Errorf("expected column %q in kv_store", c)
		}
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	database := openMemory(t)

	for i := 0; i < 2; i++ {
		if err := InitSchema(database); err != nil {
			t.Fatalf("InitSchema run %d failed: %v", i+1, err)
		}
	}

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		t.Fatalf("count versions: %v", err)
	}
	if count != len(migrations) {
		t.Errorf("expected %d version rows, got %d", len(migrations), count)
	}
}

func TestInitSchema_UpgradesUnversionedStore(t *testing.T) {
	database := openMemory(t)

	tx, err := database.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := migrationV1(tx); err != nil {
		t.Fatalf("migrationV1 failed: %v", err)
	}
	if _, err := tx.Exec("INSERT INTO kv_store (key, value) VALUES ('workoutHistory', '[]')"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if err := InitSchema(database); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}

	if !columns(t, database, "kv_store")["updated_at"] {
		t.Error("expected updated_at after migration")
	}

	var value string
	var updated sql.NullString
	err = database.QueryRow("SELECT value, updated_at FROM kv_store WHERE key = 'workoutHistory'").Scan(&value, &updated)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if value != "[]" {
		t.Errorf("expected value to survive migration, got %q", value)
	}
	if !updated.Valid {
		t.Error("expected updated_at to be backfilled")
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := Path(filepath.Join(t.TempDir(), "nested", "data"))

	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	if _, err := database.Exec("INSERT INTO kv_store (key, value) VALUES ('k', 'v')"); err != nil {
		t.Fatalf("insert after Open: %v", err)
	}
}
