// Tests for store open, template seeding, schema creation, and close.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/logging"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

// newTestStore opens a store on a fresh file under t.TempDir with the schema
// in place.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(types.Config{DBPath: filepath.Join(t.TempDir(), "wiggle_tracker.db")}, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	return s
}

func TestOpen_CreatesDatabaseFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "wiggle_tracker.db")

	s, err := Open(types.Config{DBPath: dbPath}, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file not created")
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open(types.Config{}, nil)
	if err != types.ErrDBPathEmpty {
		t.Errorf("expected ErrDBPathEmpty, got %v", err)
	}
}

func TestOpen_SeedsFromTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "template.db")
	dbPath := filepath.Join(tmpDir, "user", "wiggle_tracker.db")

	// Build a template with one diet row in it.
	tpl, err := Open(types.Config{DBPath: templatePath}, nil)
	if err != nil {
		t.Fatalf("Open template failed: %v", err)
	}
	if err := tpl.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	if err := tpl.Insert(types.CategoryDiet, "2024-01-01", "08:00"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := tpl.Close(); err != nil {
		t.Fatalf("Close template failed: %v", err)
	}
	want, err := os.ReadFile(templatePath)
	if err != nil {
		t.Fatalf("read template: %v", err)
	}

	// Seeding copies the template byte for byte before first open.
	if err := seedFromTemplate(dbPath, templatePath, logging.Nop()); err != nil {
		t.Fatalf("seedFromTemplate failed: %v", err)
	}
	got, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read seeded db: %v", err)
	}
	if string(got) != string(want) {
		t.Error("seeded database differs from template")
	}

	// The seeded store opens and already holds the template's row.
	s, err := Open(types.Config{DBPath: dbPath, TemplatePath: templatePath}, nil)
	if err != nil {
		t.Fatalf("Open seeded store failed: %v", err)
	}
	defer s.Close()

	model, err := s.Bind(types.CategoryDiet)
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if model.RowCount() != 1 {
		t.Errorf("expected 1 seeded row, got %d", model.RowCount())
	}
}

func TestOpen_NoSeedingWhenTargetExists(t *testing.T) {
	tmpDir := t.TempDir()
	templatePath := filepath.Join(tmpDir, "template.db")
	dbPath := filepath.Join(tmpDir, "wiggle_tracker.db")

	if err := os.WriteFile(templatePath, []byte("template"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dbPath, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := seedFromTemplate(dbPath, templatePath, logging.Nop()); err != nil {
		t.Fatalf("seedFromTemplate failed: %v", err)
	}

	got, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "existing" {
		t.Error("existing database was overwritten by template")
	}
}

func TestOpen_NoTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "wiggle_tracker.db")

	// A configured but absent template is not an error.
	s, err := Open(types.Config{
		DBPath:       dbPath,
		TemplatePath: filepath.Join(tmpDir, "missing-template.db"),
	}, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.EnsureSchema(); err != nil {
			t.Fatalf("EnsureSchema run %d failed: %v", i+1, err)
		}
	}

	// Exactly one table per category, no duplicates.
	for _, desc := range types.Descriptors {
		var count int
		err := s.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
			desc.Table).Scan(&count)
		if err != nil {
			t.Fatalf("counting %s: %v", desc.Table, err)
		}
		if count != 1 {
			t.Errorf("expected exactly one %s, got %d", desc.Table, count)
		}
	}
}

func TestClose_Idempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close should not error, got %v", err)
	}

	// Operations after close report a closed store.
	if err := s.Insert(types.CategoryDiet, "2024-01-01", "08:00"); err != types.ErrStoreClosed {
		t.Errorf("expected ErrStoreClosed, got %v", err)
	}
	if err := s.EnsureSchema(); err != types.ErrStoreClosed {
		t.Errorf("expected ErrStoreClosed, got %v", err)
	}
}
