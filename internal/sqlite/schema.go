// Package sqlite implements the tracker's record store: one SQLite database
// file holding six independent append-only logs, with idempotent schema
// creation, a generic parameterized insert, delete-by-identity, and a
// re-queryable table model for display.
package sqlite

import (
	"errors"
	"fmt"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

// Schema DDL for the six category tables. Table and column names match the
// shipped tracker database so a seeded template opens cleanly.
const (
	createDiet = `CREATE TABLE IF NOT EXISTS lily_diet_table (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    lily_date TEXT,
    lily_time TEXT
);`

	createMood = `CREATE TABLE IF NOT EXISTS lily_mood_table (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    lily_date TEXT,
    lily_time TEXT,
    lily_mood_slider INTEGER,
    lily_mood_activity_slider INTEGER,
    lily_energy_slider INTEGER
);`

	createWalk = `CREATE TABLE IF NOT EXISTS lily_walk_table (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    lily_date TEXT,
    lily_time TEXT,
    lily_behavior INTEGER,
    lily_gait INTEGER
);`

	createRoomTime = `CREATE TABLE IF NOT EXISTS lily_in_room_table (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    lily_date TEXT,
    lily_time TEXT,
    time_in_room_slider INTEGER
);`

	createNotes = `CREATE TABLE IF NOT EXISTS lily_notes_table (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    lily_date TEXT,
    lily_time TEXT,
    lily_notes TEXT
);`

	createWalkNotes = `CREATE TABLE IF NOT EXISTS lily_walk_notes_table (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    lily_date TEXT,
    lily_time TEXT,
    lily_walk_note TEXT
);`
)

// schemaDDL maps each table to its CREATE statement in creation order.
var schemaDDL = []struct {
	table string
	ddl   string
}{
	{types.DietTable, createDiet},
	{types.MoodTable, createMood},
	{types.WalkTable, createWalk},
	{types.RoomTimeTable, createRoomTime},
	{types.NoteTable, createNotes},
	{types.WalkNoteTable, createWalkNotes},
}

// EnsureSchema creates each category table if absent. It is idempotent and
// safe to call on every startup. A failure on one table is logged and does
// not stop creation of the others; the joined per-table errors are returned
// so callers can observe partial failure without treating it as fatal.
func (s *Store) EnsureSchema() error {
	if s.db == nil {
		return types.ErrStoreClosed
	}

	var errs []error
	for _, entry := range schemaDDL {
		if _, err := s.db.Exec(entry.ddl); err != nil {
			s.log.Errorw("creating table", "table", entry.table, "error", err)
			errs = append(errs, fmt.Errorf("%w: %s: %v", types.ErrSchema, entry.table, err))
			continue
		}
	}
	return errors.Join(errs...)
}
