// Generic record operations. One parameterized insert covers all six
// categories via the descriptor table; there are no per-category copies.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

// Insert appends one record to the category's table. values must follow the
// column order of the category's descriptor. The store assigns the row id;
// it is not returned to the caller.
//
// A call whose value count differs from the statement's placeholder count is
// rejected with ErrBindMismatch before anything touches the database. That is
// a programmer-error guard and should never trigger from a correct handler.
// Driver failures are wrapped in ErrInsert.
func (s *Store) Insert(category types.Category, values ...any) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}

	desc, err := types.Lookup(category)
	if err != nil {
		return err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(desc.Columns)), ", ")
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		desc.Table, strings.Join(desc.Columns, ", "), placeholders)

	if strings.Count(stmt, "?") != len(values) {
		return fmt.Errorf("%w: %s expects %d values, got %d",
			types.ErrBindMismatch, desc.Table, len(desc.Columns), len(values))
	}

	if _, err := s.db.Exec(stmt, values...); err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrInsert, desc.Table, err)
	}
	return nil
}

// DeleteRows removes the rows with the given identities from tableName.
// An empty identity set is a no-op. Unknown identities are silently skipped
// by the database; deleting an already-deleted row is not an error.
func (s *Store) DeleteRows(tableName string, ids []int64) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	if !knownTable(tableName) {
		return fmt.Errorf("%w: %s", types.ErrTableUnknown, tableName)
	}
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	stmt := fmt.Sprintf("DELETE FROM %s WHERE id IN (%s)",
		tableName, strings.Join(placeholders, ", "))

	if _, err := s.db.Exec(stmt, args...); err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrDelete, tableName, err)
	}
	return nil
}

// knownTable reports whether tableName is one of the six category tables.
func knownTable(tableName string) bool {
	for _, d := range types.Descriptors {
		if d.Table == tableName {
			return true
		}
	}
	return false
}
