// Package tracker holds the category commit handlers and the event dispatch
// table that wires discrete user actions to the record store. Each handler is
// a fixed association between named input fields and one category's insert
// signature; commit failures are logged and swallowed, leaving the input
// state untouched.
package tracker

import (
	"time"

	"github.com/spf13/cast"
)

// Input field names, carried over from the shipped tracker database.
const (
	FieldDate             = "lily_date"
	FieldTime             = "lily_time"
	FieldMoodSlider       = "lily_mood_slider"
	FieldActivitySlider   = "lily_mood_activity_slider"
	FieldEnergySlider     = "lily_energy_slider"
	FieldBehaviorSlider   = "lily_behavior_slider"
	FieldGaitSlider       = "lily_gait_slider"
	FieldTimeInRoomSlider = "lily_time_in_room_slider"
	FieldNotes            = "lily_notes"
	FieldWalkNote         = "lily_walk_note"
)

// Fields is the named input-field set the commit handlers read from: field
// name to current value.
type Fields map[string]any

// Set stores a field value.
func (f Fields) Set(name string, value any) {
	f[name] = value
}

// String returns the field as a string; empty when unset.
func (f Fields) String(name string) string {
	return cast.ToString(f[name])
}

// Int returns the field as an int; zero when unset.
func (f Fields) Int(name string) int {
	return cast.ToInt(f[name])
}

// Clear removes the named fields.
func (f Fields) Clear(names ...string) {
	for _, name := range names {
		delete(f, name)
	}
}

// now is stubbed in tests.
var now = time.Now

// stampDefaults fills blank date and time fields from the wall clock so a
// commit never records an empty stamp.
func (f Fields) stampDefaults() {
	if f.String(FieldDate) == "" {
		f.Set(FieldDate, now().Format("2006-01-02"))
	}
	if f.String(FieldTime) == "" {
		f.Set(FieldTime, now().Format("15:04"))
	}
}
