// Shared helpers for wiggle CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/sqlite"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/tracker"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

// validCategoryNames is a comma-separated list for error output.
var validCategoryNames = func() string {
	names := make([]string, len(types.Categories))
	for i, c := range types.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}()

// Common commit flags shared by every category command.
var (
	flagDate string
	flagTime string
)

// addCommitFlags registers the --date/--time flags. Blank values are stamped
// from the wall clock at commit time.
func addCommitFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagDate, "date", "", "record date (default: today)")
	fs.StringVar(&flagTime, "time", "", "record time (default: now)")
}

// parseCategoryArg converts a positional category argument, listing the
// valid names on failure.
func parseCategoryArg(name string) (types.Category, error) {
	category, err := types.ParseCategory(name)
	if err != nil {
		return "", fmt.Errorf("unknown category %q (valid: %s)", name, validCategoryNames)
	}
	return category, nil
}

// requireTracker returns the tracker, or an error when the store failed to
// open and the command cannot do anything useful.
func requireTracker() (*tracker.Tracker, error) {
	if track == nil {
		return nil, fmt.Errorf("record store unavailable; see log for details")
	}
	return track, nil
}

// setDateTimeFields copies the --date/--time flags into the input fields.
func setDateTimeFields(tr *tracker.Tracker) {
	tr.Fields().Set(tracker.FieldDate, flagDate)
	tr.Fields().Set(tracker.FieldTime, flagTime)
}

// afterCommit records that the user was last on the input page and prints
// the freshly re-queried view for the category.
func afterCommit(tr *tracker.Tracker, category types.Category) {
	prefs.Set("lastPageIndex", 0)
	printModel(tr.Model(category))
}

// printModel renders a model as an aligned table, or JSON with --json.
func printModel(m *sqlite.Model) {
	if m == nil {
		return
	}

	if flagJSON {
		records := make([]map[string]any, 0, len(m.Rows))
		for _, row := range m.Rows {
			obj := make(map[string]any, len(m.Columns))
			for i, col := range m.Columns {
				obj[col] = row[i]
			}
			records = append(records, obj)
		}
		output, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal rows:", err)
			return
		}
		fmt.Println(string(output))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(m.Columns, "\t"))
	for _, row := range m.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}
