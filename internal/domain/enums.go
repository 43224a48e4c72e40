package domain

type SessionKind string

const (
	KindFocus SessionKind = "focus"
	KindBreak SessionKind = "break"
)

type SessionState string

const (
	StatePlanned   SessionState = "planned"
	StateRunning   SessionState = "running"
	StateCompleted SessionState = "completed"
	StateSkipped   SessionState = "skipped"
	StateAborted   SessionState = "aborted"
)

// IsTerminal reports whether no further transition may leave the state.
func (s SessionState) IsTerminal() bool {
	switch s {
	case StateCompleted, StateSkipped, StateAborted:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskActive TaskStatus = "active"
	TaskDone   TaskStatus = "done"
)

type ResetMode string

const (
	ResetPlanned ResetMode = "planned"
	ResetHistory ResetMode = "history"
	ResetAll     ResetMode = "all"
)

// ValidResetModes is the canonical set of accepted reset-day mode strings.
var ValidResetModes = map[string]bool{
	"planned": true, "history": true, "all": true,
}
