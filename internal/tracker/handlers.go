package tracker

import (
	"go.uber.org/zap"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/logging"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/sqlite"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

// Tracker binds the input fields, the record store, and one table model per
// category. All operations run synchronously on the caller's goroutine in
// the order they are dispatched.
type Tracker struct {
	store  *sqlite.Store
	log    *zap.SugaredLogger
	fields Fields

	models     map[types.Category]*sqlite.Model
	selections map[types.Category][]int
	handlers   map[Event]func()
}

// New builds a Tracker over an open store and binds a model for every
// category. Binding failures are logged; the affected category starts
// without a model and re-binds on its first successful commit.
func New(store *sqlite.Store, log *zap.SugaredLogger) *Tracker {
	if log == nil {
		log = logging.Nop()
	}

	tr := &Tracker{
		store:      store,
		log:        log,
		fields:     make(Fields),
		models:     make(map[types.Category]*sqlite.Model),
		selections: make(map[types.Category][]int),
	}
	tr.handlers = map[Event]func(){
		EventCommitDiet:      tr.commitDiet,
		EventCommitMood:      tr.commitMood,
		EventCommitWalk:      tr.commitWalk,
		EventCommitRoomTime:  tr.commitRoomTime,
		EventCommitNote:      tr.commitNote,
		EventCommitWalkNote:  tr.commitWalkNote,
		EventDeleteSelection: tr.deleteSelection,
	}

	for _, category := range types.Categories {
		model, err := store.Bind(category)
		if err != nil {
			log.Errorw("binding model", "category", category, "error", err)
			continue
		}
		tr.models[category] = model
	}
	return tr
}

// Fields returns the live input-field set.
func (tr *Tracker) Fields() Fields {
	return tr.fields
}

// Model returns the bound model for a category, or nil when binding failed.
func (tr *Tracker) Model(category types.Category) *sqlite.Model {
	return tr.models[category]
}

// SetSelection records the currently selected row indexes for a category's
// view. An absent or empty selection makes the delete event a no-op for that
// category.
func (tr *Tracker) SetSelection(category types.Category, rows []int) {
	tr.selections[category] = rows
}

// Each commit handler lists its field names in the insert's positional order.
// There is no shared base: the associations are fixed and independent.

func (tr *Tracker) commitDiet() {
	tr.fields.stampDefaults()
	tr.commit(types.CategoryDiet,
		[]any{
			tr.fields.String(FieldDate),
			tr.fields.String(FieldTime),
		},
		nil)
}

func (tr *Tracker) commitMood() {
	tr.fields.stampDefaults()
	tr.commit(types.CategoryMood,
		[]any{
			tr.fields.String(FieldDate),
			tr.fields.String(FieldTime),
			tr.fields.Int(FieldMoodSlider),
			tr.fields.Int(FieldActivitySlider),
			tr.fields.Int(FieldEnergySlider),
		},
		nil)
}

func (tr *Tracker) commitWalk() {
	tr.fields.stampDefaults()
	tr.commit(types.CategoryWalk,
		[]any{
			tr.fields.String(FieldDate),
			tr.fields.String(FieldTime),
			tr.fields.Int(FieldBehaviorSlider),
			tr.fields.Int(FieldGaitSlider),
		},
		nil)
}

func (tr *Tracker) commitRoomTime() {
	tr.fields.stampDefaults()
	tr.commit(types.CategoryRoomTime,
		[]any{
			tr.fields.String(FieldDate),
			tr.fields.String(FieldTime),
			tr.fields.Int(FieldTimeInRoomSlider),
		},
		nil)
}

func (tr *Tracker) commitNote() {
	tr.fields.stampDefaults()
	tr.commit(types.CategoryNote,
		[]any{
			tr.fields.String(FieldDate),
			tr.fields.String(FieldTime),
			tr.fields.String(FieldNotes),
		},
		[]string{FieldNotes})
}

func (tr *Tracker) commitWalkNote() {
	tr.fields.stampDefaults()
	tr.commit(types.CategoryWalkNote,
		[]any{
			tr.fields.String(FieldDate),
			tr.fields.String(FieldTime),
			tr.fields.String(FieldWalkNote),
		},
		[]string{FieldWalkNote})
}

// commit forwards the ordered values to the store. On success the listed
// fields are cleared and the category's model re-queried; on failure the
// error is logged and the input state left intact.
func (tr *Tracker) commit(category types.Category, values []any, clears []string) {
	if err := tr.store.Insert(category, values...); err != nil {
		tr.log.Errorw("committing record", "category", category, "error", err)
		return
	}

	tr.fields.Clear(clears...)
	tr.requery(category)
	tr.log.Infow("record committed", "category", category)
}

// deleteSelection removes the selected rows from every category's view, then
// clears the selections. Categories with an empty selection are untouched.
func (tr *Tracker) deleteSelection() {
	for _, category := range types.Categories {
		model := tr.models[category]
		selection := tr.selections[category]
		if model == nil || len(selection) == 0 {
			continue
		}

		ids := sqlite.SelectedRowIDs(model, selection)
		if err := tr.store.DeleteRows(model.Table, ids); err != nil {
			tr.log.Errorw("deleting rows", "table", model.Table, "error", err)
			continue
		}
		tr.selections[category] = nil
		tr.requery(category)
		tr.log.Infow("rows deleted", "table", model.Table, "count", len(ids))
	}
}

// requery refreshes the category's model, binding it first if an earlier
// bind failed.
func (tr *Tracker) requery(category types.Category) {
	model := tr.models[category]
	if model == nil {
		bound, err := tr.store.Bind(category)
		if err != nil {
			tr.log.Errorw("binding model", "category", category, "error", err)
			return
		}
		tr.models[category] = bound
		return
	}
	if err := model.Requery(); err != nil {
		tr.log.Errorw("refreshing model", "category", category, "error", err)
	}
}
