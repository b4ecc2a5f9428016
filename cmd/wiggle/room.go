// Room command records time spent in the room.
package main

import (
	"github.com/spf13/cobra"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/settings"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/tracker"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

var roomTime int

var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "Record time spent in the room",
	Long: `Room logs a room-time record with a single 0-10 level for how long the
dog stayed in the room. The level defaults to its last committed value when
unset.

Example:
  wiggle room --level 5
  wiggle room`,
	Args: cobra.NoArgs,
	RunE: runRoom,
}

func init() {
	addCommitFlags(roomCmd.Flags())
	roomCmd.Flags().IntVar(&roomTime, "level", 0, "time-in-room level 0-10 (default: last used)")
}

func runRoom(cmd *cobra.Command, args []string) error {
	tr, err := requireTracker()
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("level") {
		roomTime = prefs.GetInt(settings.KeyTimeInRoomSlider, 0)
	}

	tr.Fields().Set(tracker.FieldTimeInRoomSlider, roomTime)
	setDateTimeFields(tr)
	tr.Dispatch(tracker.EventCommitRoomTime)

	prefs.Set(settings.KeyTimeInRoomSlider, roomTime)

	afterCommit(tr, types.CategoryRoomTime)
	return nil
}
