// Tests for the JSONL export.
package sqlite

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

func TestExport_WritesOneFilePerTable(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Insert(types.CategoryDiet, "2024-01-01", "08:00"))
	require.NoError(t, s.Insert(types.CategoryDiet, "2024-01-02", "08:30"))
	require.NoError(t, s.Insert(types.CategoryMood, "2024-01-01", "09:00", 3, 2, 4))

	dir := filepath.Join(t.TempDir(), "export")
	exportID, err := s.Export(dir)
	require.NoError(t, err)

	parsed, err := uuid.Parse(exportID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	for _, desc := range types.Descriptors {
		_, err := os.Stat(filepath.Join(dir, desc.Table+".jsonl"))
		assert.NoError(t, err, "missing export for %s", desc.Table)
	}

	// Diet rows come out in id order, keyed by column name.
	records := readJSONLObjects(t, filepath.Join(dir, types.DietTable+".jsonl"))
	require.Len(t, records, 2)
	assert.EqualValues(t, 1, records[0]["id"])
	assert.Equal(t, "2024-01-01", records[0]["lily_date"])
	assert.EqualValues(t, 2, records[1]["id"])
	assert.Equal(t, "2024-01-02", records[1]["lily_date"])

	// Manifest carries the batch id and per-table counts.
	data, err := os.ReadFile(filepath.Join(dir, "export.json"))
	require.NoError(t, err)
	var manifest exportManifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, exportID, manifest.ExportID)
	assert.Equal(t, 2, manifest.Tables[types.DietTable])
	assert.Equal(t, 1, manifest.Tables[types.MoodTable])
	assert.Equal(t, 0, manifest.Tables[types.WalkTable])
}

func readJSONLObjects(t *testing.T, path string) []map[string]any {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var obj map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &obj))
		records = append(records, obj)
	}
	require.NoError(t, scanner.Err())
	return records
}
