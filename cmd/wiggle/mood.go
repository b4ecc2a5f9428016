// Mood command records mood, activity, and energy levels.
package main

import (
	"github.com/spf13/cobra"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/settings"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/tracker"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

var (
	moodLevel    int
	moodActivity int
	moodEnergy   int
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Record the dog's mood, activity, and energy levels",
	Long: `Mood logs a mood record with three 0-10 levels. A level left unset
defaults to its last committed value, matching how the sliders keep their
position between sessions.

Example:
  wiggle mood --mood 3 --activity 2 --energy 4
  wiggle mood --mood 7`,
	Args: cobra.NoArgs,
	RunE: runMood,
}

func init() {
	addCommitFlags(moodCmd.Flags())
	moodCmd.Flags().IntVar(&moodLevel, "mood", 0, "mood level 0-10 (default: last used)")
	moodCmd.Flags().IntVar(&moodActivity, "activity", 0, "activity level 0-10 (default: last used)")
	moodCmd.Flags().IntVar(&moodEnergy, "energy", 0, "energy level 0-10 (default: last used)")
}

func runMood(cmd *cobra.Command, args []string) error {
	tr, err := requireTracker()
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("mood") {
		moodLevel = prefs.GetInt(settings.KeyMoodSlider, 0)
	}
	if !cmd.Flags().Changed("activity") {
		moodActivity = prefs.GetInt(settings.KeyMoodActivitySlider, 0)
	}
	if !cmd.Flags().Changed("energy") {
		moodEnergy = prefs.GetInt(settings.KeyEnergySlider, 0)
	}

	tr.Fields().Set(tracker.FieldMoodSlider, moodLevel)
	tr.Fields().Set(tracker.FieldActivitySlider, moodActivity)
	tr.Fields().Set(tracker.FieldEnergySlider, moodEnergy)
	setDateTimeFields(tr)
	tr.Dispatch(tracker.EventCommitMood)

	prefs.Set(settings.KeyMoodSlider, moodLevel)
	prefs.Set(settings.KeyMoodActivitySlider, moodActivity)
	prefs.Set(settings.KeyEnergySlider, moodEnergy)

	afterCommit(tr, types.CategoryMood)
	return nil
}
