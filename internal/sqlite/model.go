// Table model adapter: presents a table's full contents as an ordered list of
// rows for display and resolves UI selections to row identities.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

// Model is a live view over one category table. Rows holds the full current
// contents in id order; column 0 is always the identity. The view is not
// incremental: call Requery after any insert or delete.
type Model struct {
	store *Store

	Table   string
	Columns []string
	Rows    [][]any
}

// Bind issues a select-all against the category's table and returns the
// populated model.
func (s *Store) Bind(category types.Category) (*Model, error) {
	desc, err := types.Lookup(category)
	if err != nil {
		return nil, err
	}

	m := &Model{
		store:   s,
		Table:   desc.Table,
		Columns: append([]string{"id"}, desc.Columns...),
	}
	if err := m.Requery(); err != nil {
		return nil, err
	}
	return m, nil
}

// Requery reloads the model from the table, replacing Rows.
func (m *Model) Requery() error {
	if m.store.db == nil {
		return types.ErrStoreClosed
	}

	stmt := fmt.Sprintf("SELECT %s FROM %s ORDER BY id",
		strings.Join(m.Columns, ", "), m.Table)
	rows, err := m.store.db.Query(stmt)
	if err != nil {
		return fmt.Errorf("querying %s: %w", m.Table, err)
	}
	defer rows.Close()

	var result [][]any
	for rows.Next() {
		row := make([]any, len(m.Columns))
		dest := make([]any, len(m.Columns))
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("scanning %s row: %w", m.Table, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading %s rows: %w", m.Table, err)
	}

	m.Rows = result
	return nil
}

// RowCount returns the number of rows currently held by the model.
func (m *Model) RowCount() int {
	return len(m.Rows)
}

// ID returns the identity of the row at index. The second return is false
// when index is out of range.
func (m *Model) ID(index int) (int64, bool) {
	if index < 0 || index >= len(m.Rows) {
		return 0, false
	}
	id, ok := m.Rows[index][0].(int64)
	return id, ok
}

// SelectedRowIDs maps a UI selection (row indexes, possibly empty, possibly
// multiple) to identity values. Out-of-range indexes are skipped; an empty
// selection yields an empty set, making the follow-up delete a no-op.
func SelectedRowIDs(m *Model, selection []int) []int64 {
	ids := make([]int64, 0, len(selection))
	for _, index := range selection {
		if id, ok := m.ID(index); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
