package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/tomate/internal/domain"
)

// ErrNotFound aliases the domain sentinel so repository callers and tests
// can match either package's error.
var ErrNotFound = domain.ErrNotFound

// IsNotFound reports whether err wraps the not-found sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

type SettingsRepo interface {
	// Get returns the singleton settings row, ErrNotFound before first setup.
	Get(ctx context.Context) (*domain.Settings, error)
	// Insert creates the singleton row. Returns created=false when a row
	// already exists (INSERT OR IGNORE semantics).
	Insert(ctx context.Context, s *domain.Settings) (created bool, err error)
	Update(ctx context.Context, s *domain.Settings) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns tasks ordered by creation time descending, optionally
	// filtered by status.
	List(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
	// ListRange returns sessions with date in [from, to], ordered by start
	// time ascending.
	ListRange(ctx context.Context, from, to string) ([]*domain.Session, error)
	// ListAll returns every session ordered by start time ascending.
	ListAll(ctx context.Context) ([]*domain.Session, error)
	// NextPlannedFocus finds the earliest planned focus session on the given
	// date, excluding excludeID, ordered by start time then id. ErrNotFound
	// when none exists.
	NextPlannedFocus(ctx context.Context, date, excludeID string) (*domain.Session, error)
	// AnyRunning reports whether any session of the given kind is running.
	AnyRunning(ctx context.Context, kind domain.SessionKind) (bool, error)
	DeletePlannedByDate(ctx context.Context, date string) error
	DeleteNonPlannedByDate(ctx context.Context, date string) error
	DeleteByDate(ctx context.Context, date string) error
}

type PauseCardRepo interface {
	Create(ctx context.Context, c *domain.PauseCard) error
	GetByID(ctx context.Context, id string) (*domain.PauseCard, error)
	// List returns all cards ordered by creation time ascending.
	List(ctx context.Context) ([]*domain.PauseCard, error)
	Update(ctx context.Context, c *domain.PauseCard) error
	Count(ctx context.Context) (int, error)
}

type PauseCardUseRepo interface {
	Create(ctx context.Context, u *domain.PauseCardUse) error
	CountByCardAndDate(ctx context.Context, cardID, date string) (int, error)
	DeleteByDate(ctx context.Context, date string) error
	// ListAll returns every use row ordered by use time ascending.
	ListAll(ctx context.Context) ([]*domain.PauseCardUse, error)
}

type DailyStateRepo interface {
	// GetOrCreate upserts the row for date with a zero balance and returns it.
	GetOrCreate(ctx context.Context, date string) (*domain.DailyState, error)
	SetPauseDue(ctx context.Context, date string, minutes int) error
	// List returns every accrual row ordered by date ascending.
	List(ctx context.Context) ([]*domain.DailyState, error)
}
