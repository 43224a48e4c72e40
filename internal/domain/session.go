package domain

import "time"

// Session is a focus or break block on the timeline. Date and DaypartName
// are snapshotted when the session is created or (re)started and are never
// recomputed afterwards.
type Session struct {
	ID             string
	Kind           SessionKind
	TaskID         *string
	Title          string
	Note           string
	StartAt        time.Time
	EndAt          *time.Time
	PlannedMinutes int
	ActualMinutes  *int
	State          SessionState
	Date           string
	DaypartName    string
}

// SessionPatch carries a partial session update. Nil fields are left
// untouched. PlannedTime, when set, rebuilds StartAt from the session's
// (possibly also patched) date, so callers apply the other fields first.
// A nil TaskID means "leave unchanged"; ClearTaskID detaches the task and
// wins over TaskID when both are set.
type SessionPatch struct {
	Note           *string
	DaypartName    *string
	Date           *string
	TaskID         *string
	ClearTaskID    bool
	Title          *string
	PlannedTime    *string
	PlannedMinutes *int
}

// Apply copies the set fields of the patch onto the session, except
// PlannedTime which requires date/time combination by the caller.
func (p SessionPatch) Apply(s *Session) {
	if p.Note != nil {
		s.Note = *p.Note
	}
	if p.DaypartName != nil {
		s.DaypartName = *p.DaypartName
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.ClearTaskID {
		s.TaskID = nil
	} else if p.TaskID != nil {
		s.TaskID = p.TaskID
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.PlannedMinutes != nil {
		s.PlannedMinutes = *p.PlannedMinutes
	}
}

// ActualMinutes computes the logged duration between start and end,
// rounded to the nearest minute and never below one.
func ActualMinutes(start, end time.Time) int {
	seconds := int(end.Sub(start).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	minutes := (seconds + 30) / 60
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
