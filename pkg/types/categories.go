// Package types defines the record categories, table descriptors, standard
// errors, and configuration for the Wiggle tracker storage core.
package types

// Category identifies one of the six independent record logs.
type Category string

// Record categories.
const (
	CategoryDiet     Category = "diet"
	CategoryMood     Category = "mood"
	CategoryWalk     Category = "walk"
	CategoryRoomTime Category = "room-time"
	CategoryNote     Category = "note"
	CategoryWalkNote Category = "walk-note"
)

// SQLite table names, carried over from the shipped tracker database.
const (
	DietTable     = "lily_diet_table"
	MoodTable     = "lily_mood_table"
	WalkTable     = "lily_walk_table"
	RoomTimeTable = "lily_in_room_table"
	NoteTable     = "lily_notes_table"
	WalkNoteTable = "lily_walk_notes_table"
)

// Descriptor maps a category to its table name and insertable columns.
// The id column is store-assigned and never listed here.
type Descriptor struct {
	Table   string
	Columns []string
}

// Descriptors is the category descriptor table. Insert statements are built
// from it, so column order here is the positional argument order callers
// must follow.
var Descriptors = map[Category]Descriptor{
	CategoryDiet: {
		Table:   DietTable,
		Columns: []string{"lily_date", "lily_time"},
	},
	CategoryMood: {
		Table: MoodTable,
		Columns: []string{
			"lily_date", "lily_time",
			"lily_mood_slider", "lily_mood_activity_slider", "lily_energy_slider",
		},
	},
	CategoryWalk: {
		Table:   WalkTable,
		Columns: []string{"lily_date", "lily_time", "lily_behavior", "lily_gait"},
	},
	CategoryRoomTime: {
		Table:   RoomTimeTable,
		Columns: []string{"lily_date", "lily_time", "time_in_room_slider"},
	},
	CategoryNote: {
		Table:   NoteTable,
		Columns: []string{"lily_date", "lily_time", "lily_notes"},
	},
	CategoryWalkNote: {
		Table:   WalkNoteTable,
		Columns: []string{"lily_date", "lily_time", "lily_walk_note"},
	},
}

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryDiet,
	CategoryMood,
	CategoryWalk,
	CategoryRoomTime,
	CategoryNote,
	CategoryWalkNote,
}

// Lookup returns the descriptor for a category.
// Returns ErrCategoryUnknown if the category is not one of the six.
func Lookup(c Category) (Descriptor, error) {
	d, ok := Descriptors[c]
	if !ok {
		return Descriptor{}, ErrCategoryUnknown
	}
	return d, nil
}

// ParseCategory converts a user-supplied name to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := Descriptors[c]; !ok {
		return "", ErrCategoryUnknown
	}
	return c, nil
}
