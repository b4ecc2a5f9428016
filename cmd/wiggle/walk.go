// Walk command records a walk with behavior and gait levels.
package main

import (
	"github.com/spf13/cobra"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/settings"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/tracker"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

var (
	walkBehavior int
	walkGait     int
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Record a walk",
	Long: `Walk logs a walk record with 0-10 behavior and gait levels. A level
left unset defaults to its last committed value.

Example:
  wiggle walk --behavior 8 --gait 6
  wiggle walk`,
	Args: cobra.NoArgs,
	RunE: runWalk,
}

func init() {
	addCommitFlags(walkCmd.Flags())
	walkCmd.Flags().IntVar(&walkBehavior, "behavior", 0, "behavior level 0-10 (default: last used)")
	walkCmd.Flags().IntVar(&walkGait, "gait", 0, "gait level 0-10 (default: last used)")
}

func runWalk(cmd *cobra.Command, args []string) error {
	tr, err := requireTracker()
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("behavior") {
		walkBehavior = prefs.GetInt(settings.KeyBehaviorSlider, 0)
	}
	if !cmd.Flags().Changed("gait") {
		walkGait = prefs.GetInt(settings.KeyGaitSlider, 0)
	}

	tr.Fields().Set(tracker.FieldBehaviorSlider, walkBehavior)
	tr.Fields().Set(tracker.FieldGaitSlider, walkGait)
	setDateTimeFields(tr)
	tr.Dispatch(tracker.EventCommitWalk)

	prefs.Set(settings.KeyBehaviorSlider, walkBehavior)
	prefs.Set(settings.KeyGaitSlider, walkGait)

	afterCommit(tr, types.CategoryWalk)
	return nil
}
