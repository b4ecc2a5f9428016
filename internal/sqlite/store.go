package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/logging"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

// Store owns the single database connection. All operations run synchronously
// on the caller's goroutine; the tracker is event-driven and single-threaded,
// so the store does no locking of its own.
type Store struct {
	db   *sql.DB
	log  *zap.SugaredLogger
	path string
}

// Open opens or creates the database file at cfg.DBPath. When the file does
// not exist but cfg.TemplatePath does, the template is copied verbatim first
// (one-time seeding; never performed when the target already exists).
// Returns ErrStoreUnavailable when the file cannot be opened or created.
func Open(cfg types.Config, log *zap.SugaredLogger) (*Store, error) {
	if log == nil {
		log = logging.Nop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", types.ErrStoreUnavailable, err)
	}

	if err := seedFromTemplate(cfg.DBPath, cfg.TemplatePath, log); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStoreUnavailable, err)
	}
	// sql.Open defers file access; Ping forces creation of a missing file.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", types.ErrStoreUnavailable, err)
	}

	log.Infow("store opened", "path", cfg.DBPath)
	return &Store{db: db, log: log, path: cfg.DBPath}, nil
}

// seedFromTemplate copies the template database to target when target does
// not yet exist. A missing or empty template path means no seeding.
func seedFromTemplate(target, template string, log *zap.SugaredLogger) error {
	if template == "" {
		return nil
	}
	if _, err := os.Stat(target); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", types.ErrStoreUnavailable, target, err)
	}
	if _, err := os.Stat(template); err != nil {
		// No template shipped; Open will create a fresh database.
		return nil
	}

	src, err := os.Open(template)
	if err != nil {
		return fmt.Errorf("%w: open template: %v", types.ErrStoreUnavailable, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", types.ErrStoreUnavailable, target, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(target)
		return fmt.Errorf("%w: copy template: %v", types.ErrStoreUnavailable, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(target)
		return fmt.Errorf("%w: close %s: %v", types.ErrStoreUnavailable, target, err)
	}

	log.Infow("seeded database from template", "template", template, "target", target)
	return nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the connection if open. Safe to call multiple times.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	s.log.Infow("store closed", "path", s.path)
	return nil
}
