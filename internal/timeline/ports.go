package timeline

import "time"

// Reassignment moves a project between lanes as part of a drag commit.
type Reassignment struct {
	From string
	To   string
}

// CreateDefaults pre-fills the host's project form after a create drag.
type CreateDefaults struct {
	Start time.Time
	End   time.Time
	Lane  string
}

// Host receives the engine's commit intents and selection events. The
// engine holds no persistence or business rules of its own; each gesture
// resolves into at most one synchronous Host call. A nil Host turns every
// call into a no-op.
type Host interface {
	// TimelineUpdated fires on drag/resize commit. start/end are nil when
	// the dates did not change (pure reassignment); reassign is nil when
	// the lane did not change.
	TimelineUpdated(projectID string, start, end *time.Time, reassign *Reassignment)

	// CreateRequested fires on create-drag release; the host opens an
	// edit form pre-filled with the defaults.
	CreateRequested(defaults CreateDefaults)

	// UnscheduleRequested fires when a bar is dropped on the backlog dock.
	UnscheduleRequested(projectID string)

	// ProjectSelected fires on press, before drag-vs-click is resolved.
	ProjectSelected(projectID string)

	// ProjectEditRequested fires on a resolved (non-drag) click.
	ProjectEditRequested(projectID string)
}

// intent is the single commit decision produced by a released gesture.
type intent struct {
	update       *timelineUpdate
	create       *CreateDefaults
	unscheduleID string
}

type timelineUpdate struct {
	projectID string
	start     *time.Time
	end       *time.Time
	reassign  *Reassignment
}
