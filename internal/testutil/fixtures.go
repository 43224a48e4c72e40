package testutil

import (
	"time"

	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTaskNote(n string) TaskOption {
	return func(t *domain.Task) {
		t.Note = n
	}
}

func WithEstimate(e int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatePomodoros = e
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:                uuid.New().String(),
		Title:             title,
		EstimatePomodoros: 1,
		Status:            domain.TaskActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Session options
type SessionOption func(*domain.Session)

func WithKind(k domain.SessionKind) SessionOption {
	return func(s *domain.Session) {
		s.Kind = k
	}
}

func WithState(st domain.SessionState) SessionOption {
	return func(s *domain.Session) {
		s.State = st
	}
}

func WithStartAt(at time.Time) SessionOption {
	return func(s *domain.Session) {
		s.StartAt = at
		s.Date = domain.DateOf(at)
	}
}

func WithDate(date string) SessionOption {
	return func(s *domain.Session) {
		s.Date = date
	}
}

func WithPlannedMinutes(m int) SessionOption {
	return func(s *domain.Session) {
		s.PlannedMinutes = m
	}
}

func WithSessionTask(taskID string) SessionOption {
	return func(s *domain.Session) {
		s.TaskID = &taskID
	}
}

func NewTestSession(opts ...SessionOption) *domain.Session {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.Session{
		ID:             uuid.New().String(),
		Kind:           domain.KindFocus,
		StartAt:        now,
		PlannedMinutes: 25,
		State:          domain.StatePlanned,
		Date:           domain.DateOf(now),
		DaypartName:    "Matin",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PauseCard options
type CardOption func(*domain.PauseCard)

func WithQuota(q int) CardOption {
	return func(c *domain.PauseCard) {
		c.DailyQuota = q
	}
}

func WithJoker() CardOption {
	return func(c *domain.PauseCard) {
		c.IsJoker = true
	}
}

func NewTestCard(name string, opts ...CardOption) *domain.PauseCard {
	c := &domain.PauseCard{
		ID:         uuid.New().String(),
		Name:       name,
		DailyQuota: 2,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
