// Delete command removes records from a category.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/tracker"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

var deleteByID bool

var deleteCmd = &cobra.Command{
	Use:   "delete <category> <row...>",
	Short: "Remove records from a category",
	Long: `Delete removes the given rows from a category. Rows are zero-based
positions in the category's view, as printed by list; with --by-id they are
record identities instead. Positions outside the view are skipped, and
identities that no longer exist are silently ignored.

Example:
  wiggle delete mood 0 2
  wiggle delete note 17 --by-id`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteByID, "by-id", false, "treat rows as record identities")
}

func runDelete(cmd *cobra.Command, args []string) error {
	tr, err := requireTracker()
	if err != nil {
		return err
	}

	category, err := parseCategoryArg(args[0])
	if err != nil {
		return err
	}

	if deleteByID {
		ids := make([]int64, 0, len(args)-1)
		for _, arg := range args[1:] {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid identity %q", arg)
			}
			ids = append(ids, id)
		}
		descriptor, err := types.Lookup(category)
		if err != nil {
			return err
		}
		if err := store.DeleteRows(descriptor.Table, ids); err != nil {
			return fmt.Errorf("delete rows: %w", err)
		}
		if model := tr.Model(category); model != nil {
			if err := model.Requery(); err != nil {
				return fmt.Errorf("refresh %s view: %w", category, err)
			}
		}
	} else {
		rows := make([]int, 0, len(args)-1)
		for _, arg := range args[1:] {
			row, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid row %q", arg)
			}
			rows = append(rows, row)
		}
		tr.SetSelection(category, rows)
		tr.Dispatch(tracker.EventDeleteSelection)
	}

	printModel(tr.Model(category))
	return nil
}
