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

type settingsService struct {
	uow      db.UnitOfWork
	clock    domain.Clock
	observer UseCaseObserver
}

func NewSettingsService(uow db.UnitOfWork, clock domain.Clock, observers ...UseCaseObserver) SettingsService {
	return &settingsService{uow: uow, clock: clock, observer: useCaseObserverOrNoop(observers)}
}

// ensureSettingsTx seeds the singleton settings row and, when it was just
// created, the four default pause cards, all inside the caller's
// transaction so settings creation and card seeding happen together exactly
// once. The INSERT OR IGNORE on the pinned id makes this race-free.
func ensureSettingsTx(ctx context.Context, tx db.DBTX, clock domain.Clock) (*domain.Settings, bool, error) {
	settingsRepo := repository.NewSQLiteSettingsRepo(tx)
	cardRepo := repository.NewSQLitePauseCardRepo(tx)

	now := clock.Now()
	seed := &domain.Settings{
		Dayparts:             domain.DefaultDayparts(),
		DefaultFocusMinutes:  domain.DefaultFocusMinutes,
		DefaultBreakMinutes:  domain.DefaultBreakMinutes,
		NotificationsEnabled: true,
		SoundEnabled:         true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	created, err := settingsRepo.Insert(ctx, seed)
	if err != nil {
		return nil, false, err
	}

	if created {
		count, err := cardRepo.Count(ctx)
		if err != nil {
			return nil, false, err
		}
		if count == 0 {
			for _, card := range domain.DefaultPauseCards() {
				card.ID = uuid.New().String()
				card.CreatedAt = now
				if err := cardRepo.Create(ctx, &card); err != nil {
					return nil, false, err
				}
			}
		}
	}

	settings, err := settingsRepo.Get(ctx)
	if err != nil {
		return nil, false, err
	}
	return settings, created, nil
}

func (s *settingsService) Get(ctx context.Context) (view *SettingsView, err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "settings.get", started, err, nil) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		settings, created, txErr := ensureSettingsTx(ctx, tx, s.clock)
		if txErr != nil {
			return txErr
		}
		view = &SettingsView{Settings: settings, NeedsSetup: created}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *settingsService) Update(ctx context.Context, upd domain.SettingsUpdate) (updated *domain.Settings, err error) {
	started := time.Now()
	defer func() { observe(ctx, s.observer, "settings.update", started, err, nil) }()

	if upd.DefaultFocusMinutes < 1 {
		return nil, fmt.Errorf("%w: default focus minutes must be >= 1", domain.ErrValidation)
	}
	if upd.DefaultBreakMinutes < 1 {
		return nil, fmt.Errorf("%w: default break minutes must be >= 1", domain.ErrValidation)
	}
	if len(upd.Dayparts) == 0 {
		return nil, fmt.Errorf("%w: at least one daypart is required", domain.ErrValidation)
	}
	for _, dp := range upd.Dayparts {
		if _, err := domain.ParseClock(dp.Start); err != nil {
			return nil, err
		}
		if _, err := domain.ParseClock(dp.End); err != nil {
			return nil, err
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		settings, _, txErr := ensureSettingsTx(ctx, tx, s.clock)
		if txErr != nil {
			return txErr
		}
		settings.Dayparts = upd.Dayparts
		settings.DefaultFocusMinutes = upd.DefaultFocusMinutes
		settings.DefaultBreakMinutes = upd.DefaultBreakMinutes
		settings.NotificationsEnabled = upd.NotificationsEnabled
		settings.SoundEnabled = upd.SoundEnabled
		settings.UpdatedAt = s.clock.Now()
		if txErr := repository.NewSQLiteSettingsRepo(tx).Update(ctx, settings); txErr != nil {
			return txErr
		}
		updated = settings
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
