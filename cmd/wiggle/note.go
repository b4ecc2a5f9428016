// Note command records a general note.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/settings"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/tracker"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

var noteCmd = &cobra.Command{
	Use:   "note [text...]",
	Short: "Record a note",
	Long: `Note logs a free-form note. With no text, the draft saved from the last
session is committed instead. The draft is cleared after a successful commit
and kept when the commit fails, so nothing typed is ever lost.

Example:
  wiggle note limping slightly on the left hind leg
  wiggle note`,
	RunE: runNote,
}

func init() {
	addCommitFlags(noteCmd.Flags())
}

func runNote(cmd *cobra.Command, args []string) error {
	tr, err := requireTracker()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if text == "" {
		text = prefs.GetString(settings.KeyNotes, "")
	}

	tr.Fields().Set(tracker.FieldNotes, text)
	setDateTimeFields(tr)
	tr.Dispatch(tracker.EventCommitNote)

	// The handler clears the field only on success; mirroring it into the
	// draft key keeps failed commits recoverable on the next run.
	prefs.Set(settings.KeyNotes, tr.Fields().String(tracker.FieldNotes))

	afterCommit(tr, types.CategoryNote)
	return nil
}
