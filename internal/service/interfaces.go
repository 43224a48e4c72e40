package service

import (
	"context"

	"github.com/alexanderramin/tomate/internal/domain"
)

// SettingsView is the settings read model; NeedsSetup is true only on the
// very first read, when defaults were just seeded.
type SettingsView struct {
	Settings   *domain.Settings
	NeedsSetup bool
}

type SettingsService interface {
	// Get returns the settings, seeding defaults (and the four default
	// pause cards) exactly once on first access.
	Get(ctx context.Context) (*SettingsView, error)
	// Update replaces every mutable settings field.
	Update(ctx context.Context, upd domain.SettingsUpdate) (*domain.Settings, error)
}

// CreateTaskInput carries the fields for a new task.
type CreateTaskInput struct {
	Title             string
	EstimatePomodoros int
	Note              string
}

type TaskService interface {
	List(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error)
	Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	// Complete forces status to done; idempotent.
	Complete(ctx context.Context, id string) (*domain.Task, error)
}

// StartSessionInput carries the fields for an immediately running session.
type StartSessionInput struct {
	Kind    domain.SessionKind
	TaskID  *string
	Minutes *int
	Title   *string
}

// PlanSessionInput carries the fields for a scheduled session.
type PlanSessionInput struct {
	Kind        domain.SessionKind
	TaskID      *string
	Minutes     *int
	Title       *string
	Date        string
	DaypartName string
	PlannedTime string
}

// ResetOutcome reports what Reset did: planned sessions are deleted,
// anything else is aborted.
type ResetOutcome struct {
	Deleted bool
	Session *domain.Session
}

type SessionService interface {
	Start(ctx context.Context, in StartSessionInput) (*domain.Session, error)
	Plan(ctx context.Context, in PlanSessionInput) (*domain.Session, error)
	StartPlanned(ctx context.Context, id string) (*domain.Session, error)
	Stop(ctx context.Context, id string) (*domain.Session, error)
	Skip(ctx context.Context, id string) (*domain.Session, error)
	Adjust(ctx context.Context, id string, minutesDelta int) (*domain.Session, error)
	Reset(ctx context.Context, id string) (*ResetOutcome, error)
	ResetDay(ctx context.Context, date string, mode domain.ResetMode) error
	MergeNext(ctx context.Context, id string) (*domain.Session, error)
	Update(ctx context.Context, id string, patch domain.SessionPatch) (*domain.Session, error)
	List(ctx context.Context, from, to string) ([]*domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
}

// CardWithRemaining pairs a card with its remaining use count for today.
type CardWithRemaining struct {
	Card           *domain.PauseCard
	RemainingToday int
}

// CreateCardInput carries the fields for a new pause card.
type CreateCardInput struct {
	Name       string
	DailyQuota int
	IsJoker    bool
}

type PauseService interface {
	ListWithRemaining(ctx context.Context) ([]CardWithRemaining, error)
	Create(ctx context.Context, in CreateCardInput) (*CardWithRemaining, error)
	Update(ctx context.Context, id string, patch domain.PauseCardPatch) (*CardWithRemaining, error)
	// ResetUses deletes every use row for the date; remaining counts are
	// derived, so quotas recover implicitly.
	ResetUses(ctx context.Context, date string) error
	// Consume spends one use of the card and opens a running break session.
	Consume(ctx context.Context, cardID string, minutes *int) (*domain.Session, error)
}

type DailyStateService interface {
	// Get returns the accrual record for the date ("" means today).
	Get(ctx context.Context, date string) (*domain.DailyState, error)
}

type ExportService interface {
	// SnapshotDB writes a consistent copy of the SQLite database to path.
	SnapshotDB(ctx context.Context, path string) error
	// WriteJSON writes a full JSON dump of every entity to path.
	WriteJSON(ctx context.Context, path string) error
}
