// JSONL export: dumps every category table to one JSONL file per table using
// the temp-file, fsync, rename pattern, plus a manifest identifying the batch.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

// exportManifest is written alongside the per-table files as export.json.
type exportManifest struct {
	ExportID  string         `json:"export_id"`
	CreatedAt time.Time      `json:"created_at"`
	Tables    map[string]int `json:"tables"`
}

// Export writes each category table to <table>.jsonl in dir, one JSON object
// per row keyed by column name, rows in id order. Returns the export batch id.
func (s *Store) Export(dir string) (string, error) {
	if s.db == nil {
		return "", types.ErrStoreClosed
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating export id: %w", err)
	}

	manifest := exportManifest{
		ExportID:  id.String(),
		CreatedAt: time.Now().UTC(),
		Tables:    make(map[string]int),
	}

	for _, category := range types.Categories {
		model, err := s.Bind(category)
		if err != nil {
			return "", fmt.Errorf("binding %s for export: %w", category, err)
		}

		records := make([]json.RawMessage, 0, len(model.Rows))
		for _, row := range model.Rows {
			obj := make(map[string]any, len(model.Columns))
			for i, col := range model.Columns {
				obj[col] = normalizeValue(row[i])
			}
			rec, err := json.Marshal(obj)
			if err != nil {
				return "", fmt.Errorf("marshaling %s row: %w", model.Table, err)
			}
			records = append(records, rec)
		}

		if err := writeJSONL(filepath.Join(dir, model.Table+".jsonl"), records); err != nil {
			return "", err
		}
		manifest.Tables[model.Table] = len(records)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "export.json"), data, 0o644); err != nil {
		return "", fmt.Errorf("writing manifest: %w", err)
	}

	s.log.Infow("exported tables", "export_id", manifest.ExportID, "dir", dir)
	return manifest.ExportID, nil
}

// normalizeValue converts driver-level values to JSON-friendly ones.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
