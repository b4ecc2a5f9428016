// Tests for the generic insert and delete-by-identity operations.
package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

func TestInsert_AllCategories(t *testing.T) {
	s := newTestStore(t)

	inserts := map[types.Category][]any{
		types.CategoryDiet:     {"2024-01-01", "08:00"},
		types.CategoryMood:     {"2024-01-01", "08:05", 3, 2, 4},
		types.CategoryWalk:     {"2024-01-01", "08:30", 1, 2},
		types.CategoryRoomTime: {"2024-01-01", "09:00", 45},
		types.CategoryNote:     {"2024-01-01", "09:15", "sleepy morning"},
		types.CategoryWalkNote: {"2024-01-01", "09:20", "pulled on the leash"},
	}

	for category, values := range inserts {
		require.NoError(t, s.Insert(category, values...), "insert %s", category)

		model, err := s.Bind(category)
		require.NoError(t, err)
		require.Equal(t, 1, model.RowCount(), "category %s", category)

		row := model.Rows[0]
		assert.Equal(t, int64(1), row[0], "store-assigned id for %s", category)
		for i, want := range values {
			got := row[i+1]
			if n, ok := want.(int); ok {
				assert.EqualValues(t, n, got, "%s column %s", category, model.Columns[i+1])
			} else {
				assert.Equal(t, want, got, "%s column %s", category, model.Columns[i+1])
			}
		}
	}
}

func TestInsert_MoodScenario(t *testing.T) {
	s := newTestStore(t)

	err := s.Insert(types.CategoryMood, "2024-01-01", "09:00", 3, 2, 4)
	require.NoError(t, err)

	model, err := s.Bind(types.CategoryMood)
	require.NoError(t, err)
	require.Equal(t, 1, model.RowCount())

	row := model.Rows[0]
	assert.Equal(t, int64(1), row[0])
	assert.Equal(t, "2024-01-01", row[1])
	assert.Equal(t, "09:00", row[2])
	assert.EqualValues(t, 3, row[3])
	assert.EqualValues(t, 2, row[4])
	assert.EqualValues(t, 4, row[5])
}

func TestInsert_IdentityIsMonotonic(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Insert(types.CategoryDiet, "2024-01-01", "08:00"))
	}

	model, err := s.Bind(types.CategoryDiet)
	require.NoError(t, err)
	require.Equal(t, 5, model.RowCount())

	var prev int64
	for _, row := range model.Rows {
		id := row[0].(int64)
		assert.Greater(t, id, prev, "ids must be increasing")
		prev = id
	}
}

func TestInsert_BindMismatch(t *testing.T) {
	s := newTestStore(t)

	// Too few values.
	err := s.Insert(types.CategoryMood, "2024-01-01", "09:00")
	assert.ErrorIs(t, err, types.ErrBindMismatch)

	// Too many values.
	err = s.Insert(types.CategoryDiet, "2024-01-01", "08:00", 99)
	assert.ErrorIs(t, err, types.ErrBindMismatch)

	// The aborted calls left nothing behind.
	for _, category := range []types.Category{types.CategoryMood, types.CategoryDiet} {
		model, err := s.Bind(category)
		require.NoError(t, err)
		assert.Equal(t, 0, model.RowCount())
	}
}

func TestInsert_UnknownCategory(t *testing.T) {
	s := newTestStore(t)

	err := s.Insert(types.Category("grooming"), "2024-01-01", "08:00")
	assert.ErrorIs(t, err, types.ErrCategoryUnknown)
}

func TestDeleteRows_RemovesExactlyGivenRows(t *testing.T) {
	s := newTestStore(t)

	for _, tm := range []string{"08:00", "12:00", "18:00"} {
		require.NoError(t, s.Insert(types.CategoryDiet, "2024-01-01", tm))
	}

	require.NoError(t, s.DeleteRows(types.DietTable, []int64{2}))

	model, err := s.Bind(types.CategoryDiet)
	require.NoError(t, err)
	require.Equal(t, 2, model.RowCount())
	assert.Equal(t, int64(1), model.Rows[0][0])
	assert.Equal(t, int64(3), model.Rows[1][0])
}

func TestDeleteRows_EmptySetIsNoop(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Insert(types.CategoryDiet, "2024-01-01", "08:00"))
	require.NoError(t, s.DeleteRows(types.DietTable, nil))
	require.NoError(t, s.DeleteRows(types.DietTable, []int64{}))

	model, err := s.Bind(types.CategoryDiet)
	require.NoError(t, err)
	assert.Equal(t, 1, model.RowCount())
}

func TestDeleteRows_NonexistentIdentityIsNoop(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Insert(types.CategoryDiet, "2024-01-01", "08:00"))

	// Deleting a never-assigned identity, then the same identity twice.
	require.NoError(t, s.DeleteRows(types.DietTable, []int64{42}))
	require.NoError(t, s.DeleteRows(types.DietTable, []int64{1}))
	require.NoError(t, s.DeleteRows(types.DietTable, []int64{1}))

	model, err := s.Bind(types.CategoryDiet)
	require.NoError(t, err)
	assert.Equal(t, 0, model.RowCount())
}

func TestDeleteRows_UnknownTable(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteRows("lily_grooming_table", []int64{1})
	assert.True(t, errors.Is(err, types.ErrTableUnknown))
}
