package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tomate/internal/db"
	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/alexanderramin/tomate/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	clock    domain.Clock
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, uow db.UnitOfWork, clock domain.Clock, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		uow:      uow,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Start opens a running focus session at the current instant. Breaks are
// rejected: they only enter through pause-card consumption. At most one
// focus session may be running at a time.
func (s *sessionService) Start(ctx context.Context, in StartSessionInput) (created *domain.Session, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "session.start", startedAt, err, nil) }()

	if in.Kind != domain.KindFocus {
		return nil, fmt.Errorf("%w: breaks start through pause consumption", domain.ErrPolicyViolation)
	}
	if in.Minutes != nil && *in.Minutes < 1 {
		return nil, fmt.Errorf("%w: minutes must be >= 1", domain.ErrValidation)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		settings, _, txErr := ensureSettingsTx(ctx, tx, s.clock)
		if txErr != nil {
			return txErr
		}

		running, txErr := txSessions.AnyRunning(ctx, domain.KindFocus)
		if txErr != nil {
			return txErr
		}
		if running {
			return fmt.Errorf("%w: a focus session is already running", domain.ErrInvalidState)
		}

		now := s.clock.Now()
		session := &domain.Session{
			ID:             uuid.New().String(),
			Kind:           in.Kind,
			TaskID:         in.TaskID,
			Title:          domain.StrFromPtrWithDefault("", in.Title),
			StartAt:        now,
			PlannedMinutes: domain.IntFromPtrWithDefault(settings.DefaultFocusMinutes, in.Minutes),
			State:          domain.StateRunning,
			Date:           domain.DateOf(now),
			DaypartName:    domain.ResolveDaypart(settings.Dayparts, now),
		}
		if txErr := txSessions.Create(ctx, session); txErr != nil {
			return txErr
		}
		created = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Plan schedules a focus session at date+plannedTime without touching "now".
func (s *sessionService) Plan(ctx context.Context, in PlanSessionInput) (created *domain.Session, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "session.plan", startedAt, err, nil) }()

	if in.Kind != domain.KindFocus {
		return nil, fmt.Errorf("%w: only focus sessions can be planned", domain.ErrPolicyViolation)
	}
	if in.Minutes != nil && *in.Minutes < 1 {
		return nil, fmt.Errorf("%w: minutes must be >= 1", domain.ErrValidation)
	}
	startAt, err := domain.CombineDateAndTime(in.Date, in.PlannedTime)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		settings, _, txErr := ensureSettingsTx(ctx, tx, s.clock)
		if txErr != nil {
			return txErr
		}
		session := &domain.Session{
			ID:             uuid.New().String(),
			Kind:           in.Kind,
			TaskID:         in.TaskID,
			Title:          domain.StrFromPtrWithDefault("", in.Title),
			StartAt:        startAt,
			PlannedMinutes: domain.IntFromPtrWithDefault(settings.DefaultFocusMinutes, in.Minutes),
			State:          domain.StatePlanned,
			Date:           in.Date,
			DaypartName:    in.DaypartName,
		}
		if txErr := repository.NewSQLiteSessionRepo(tx).Create(ctx, session); txErr != nil {
			return txErr
		}
		created = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// StartPlanned promotes a planned session to running. The planned start time
// is discarded: date and daypart are recomputed from the current instant.
func (s *sessionService) StartPlanned(ctx context.Context, id string) (updated *domain.Session, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "session.start_planned", startedAt, err, nil) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		session, txErr := txSessions.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if session.State != domain.StatePlanned {
			return fmt.Errorf("%w: session is not planned", domain.ErrInvalidState)
		}

		settings, _, txErr := ensureSettingsTx(ctx, tx, s.clock)
		if txErr != nil {
			return txErr
		}

		running, txErr := txSessions.AnyRunning(ctx, domain.KindFocus)
		if txErr != nil {
			return txErr
		}
		if running {
			return fmt.Errorf("%w: a focus session is already running", domain.ErrInvalidState)
		}

		now := s.clock.Now()
		session.StartAt = now
		session.State = domain.StateRunning
		session.Date = domain.DateOf(now)
		session.DaypartName = domain.ResolveDaypart(settings.Dayparts, now)
		if txErr := txSessions.Update(ctx, session); txErr != nil {
			return txErr
		}
		updated = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Stop completes a running session, logging at least one minute.
func (s *sessionService) Stop(ctx context.Context, id string) (updated *domain.Session, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "session.stop", startedAt, err, nil) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		session, txErr := txSessions.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if session.State != domain.StateRunning {
			return fmt.Errorf("%w: session is not running", domain.ErrInvalidState)
		}

		now := s.clock.Now()
		actual := domain.ActualMinutes(session.StartAt, now)
		session.EndAt = &now
		session.ActualMinutes = &actual
		session.State = domain.StateCompleted
		if txErr := txSessions.Update(ctx, session); txErr != nil {
			return txErr
		}
		updated = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Skip abandons a planned or running session without logging time.
// Terminal sessions cannot be skipped again.
func (s *sessionService) Skip(ctx context.Context, id string) (updated *domain.Session, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "session.skip", startedAt, err, nil) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		session, txErr := txSessions.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if session.State.IsTerminal() {
			return fmt.Errorf("%w: session already ended", domain.ErrInvalidState)
		}

		now := s.clock.Now()
		zero := 0
		session.State = domain.StateSkipped
		session.EndAt = &now
		session.ActualMinutes = &zero
		if txErr := txSessions.Update(ctx, session); txErr != nil {
			return txErr
		}
		updated = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Adjust shifts the planned length by a delta, never below one minute.
func (s *sessionService) Adjust(ctx context.Context, id string, minutesDelta int) (updated *domain.Session, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "session.adjust", startedAt, err, nil) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		session, txErr := txSessions.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		session.PlannedMinutes += minutesDelta
		if session.PlannedMinutes < 1 {
			session.PlannedMinutes = 1
		}
		if txErr := txSessions.Update(ctx, session); txErr != nil {
			return txErr
		}
		updated = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Reset deletes a planned session outright; anything else is aborted.
func (s *sessionService) Reset(ctx context.Context, id string) (outcome *ResetOutcome, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "session.reset", startedAt, err, nil) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		session, txErr := txSessions.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if session.State == domain.StatePlanned {
			if txErr := txSessions.Delete(ctx, id); txErr != nil {
				return txErr
			}
			outcome = &ResetOutcome{Deleted: true}
			return nil
		}

		now := s.clock.Now()
		zero := 0
		session.State = domain.StateAborted
		session.EndAt = &now
		session.ActualMinutes = &zero
		if txErr := txSessions.Update(ctx, session); txErr != nil {
			return txErr
		}
		outcome = &ResetOutcome{Session: session}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// ResetDay wipes part of a date's history and zeroes its pause debt.
func (s *sessionService) ResetDay(ctx context.Context, date string, mode domain.ResetMode) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "session.reset_day", startedAt, err, map[string]any{"mode": string(mode)})
	}()

	if !domain.ValidResetModes[string(mode)] {
		return fmt.Errorf("%w: invalid reset mode %q", domain.ErrValidation, mode)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txUses := repository.NewSQLitePauseCardUseRepo(tx)
		txDaily := repository.NewSQLiteDailyStateRepo(tx)

		switch mode {
		case domain.ResetPlanned:
			if err := txSessions.DeletePlannedByDate(ctx, date); err != nil {
				return err
			}
		case domain.ResetHistory:
			if err := txUses.DeleteByDate(ctx, date); err != nil {
				return err
			}
			if err := txSessions.DeleteNonPlannedByDate(ctx, date); err != nil {
				return err
			}
		case domain.ResetAll:
			if err := txUses.DeleteByDate(ctx, date); err != nil {
				return err
			}
			if err := txSessions.DeleteByDate(ctx, date); err != nil {
				return err
			}
		}
		return txDaily.SetPauseDue(ctx, date, 0)
	})
}

// MergeNext folds the date's earliest other planned focus session into this
// one: its planned minutes are absorbed, it is skipped, and one default
// break's worth of pause debt accrues for the day.
func (s *sessionService) MergeNext(ctx context.Context, id string) (updated *domain.Session, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "session.merge_next", startedAt, err, nil) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txDaily := repository.NewSQLiteDailyStateRepo(tx)

		session, txErr := txSessions.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if session.Kind != domain.KindFocus {
			return fmt.Errorf("%w: only focus sessions can merge", domain.ErrPolicyViolation)
		}

		next, txErr := txSessions.NextPlannedFocus(ctx, session.Date, session.ID)
		if txErr != nil {
			return txErr
		}

		settings, _, txErr := ensureSettingsTx(ctx, tx, s.clock)
		if txErr != nil {
			return txErr
		}

		state, txErr := txDaily.GetOrCreate(ctx, session.Date)
		if txErr != nil {
			return txErr
		}
		if txErr := txDaily.SetPauseDue(ctx, session.Date, state.PauseDueMinutes+settings.DefaultBreakMinutes); txErr != nil {
			return txErr
		}

		session.PlannedMinutes += next.PlannedMinutes

		now := s.clock.Now()
		zero := 0
		next.State = domain.StateSkipped
		next.EndAt = &now
		next.ActualMinutes = &zero
		if txErr := txSessions.Update(ctx, next); txErr != nil {
			return txErr
		}
		if txErr := txSessions.Update(ctx, session); txErr != nil {
			return txErr
		}
		updated = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Update applies a partial patch. When plannedTime is present the start
// instant is rebuilt from the patched date, so date changes in the same
// patch take effect first.
func (s *sessionService) Update(ctx context.Context, id string, patch domain.SessionPatch) (updated *domain.Session, err error) {
	if patch.PlannedMinutes != nil && *patch.PlannedMinutes < 1 {
		return nil, fmt.Errorf("%w: planned minutes must be >= 1", domain.ErrValidation)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		session, txErr := txSessions.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		patch.Apply(session)
		if patch.PlannedTime != nil {
			startAt, combErr := domain.CombineDateAndTime(session.Date, *patch.PlannedTime)
			if combErr != nil {
				return combErr
			}
			session.StartAt = startAt
		}
		if txErr := txSessions.Update(ctx, session); txErr != nil {
			return txErr
		}
		updated = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// List returns sessions whose date falls within [from, to], start ascending.
func (s *sessionService) List(ctx context.Context, from, to string) ([]*domain.Session, error) {
	return s.sessions.ListRange(ctx, from, to)
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}
