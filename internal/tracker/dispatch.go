package tracker

// Event identifies one discrete user action. Every action flows through the
// same explicit event-to-handler table, independent of any UI toolkit.
type Event int

// Events.
const (
	EventCommitDiet Event = iota
	EventCommitMood
	EventCommitWalk
	EventCommitRoomTime
	EventCommitNote
	EventCommitWalkNote
	EventDeleteSelection
)

// String returns the event name for logs.
func (e Event) String() string {
	switch e {
	case EventCommitDiet:
		return "commit-diet"
	case EventCommitMood:
		return "commit-mood"
	case EventCommitWalk:
		return "commit-walk"
	case EventCommitRoomTime:
		return "commit-room-time"
	case EventCommitNote:
		return "commit-note"
	case EventCommitWalkNote:
		return "commit-walk-note"
	case EventDeleteSelection:
		return "delete-selection"
	default:
		return "unknown"
	}
}

// CommitEvents maps each category-committing event in display order.
var CommitEvents = []Event{
	EventCommitDiet,
	EventCommitMood,
	EventCommitWalk,
	EventCommitRoomTime,
	EventCommitNote,
	EventCommitWalkNote,
}

// Dispatch routes an event to its handler. An unknown event is a logged
// no-op; handler failures never propagate out of Dispatch.
func (tr *Tracker) Dispatch(event Event) {
	handler, ok := tr.handlers[event]
	if !ok {
		tr.log.Warnw("unhandled event", "event", event.String())
		return
	}
	handler()
}
