package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tomate/internal/db"
	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/alexanderramin/tomate/internal/repository"
	"github.com/google/uuid"
)

type pauseService struct {
	cards    repository.PauseCardRepo
	uses     repository.PauseCardUseRepo
	uow      db.UnitOfWork
	clock    domain.Clock
	observer UseCaseObserver
}

func NewPauseService(cards repository.PauseCardRepo, uses repository.PauseCardUseRepo, uow db.UnitOfWork, clock domain.Clock, observers ...UseCaseObserver) PauseService {
	return &pauseService{
		cards:    cards,
		uses:     uses,
		uow:      uow,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

// ListWithRemaining returns every card with today's remaining use count.
func (s *pauseService) ListWithRemaining(ctx context.Context) ([]CardWithRemaining, error) {
	today := domain.DateOf(s.clock.Now())
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]CardWithRemaining, 0, len(cards))
	for _, card := range cards {
		uses, err := s.uses.CountByCardAndDate(ctx, card.ID, today)
		if err != nil {
			return nil, err
		}
		result = append(result, CardWithRemaining{Card: card, RemainingToday: card.RemainingUses(uses)})
	}
	return result, nil
}

func (s *pauseService) Create(ctx context.Context, in CreateCardInput) (*CardWithRemaining, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: card name is required", domain.ErrValidation)
	}
	if in.DailyQuota < 0 {
		return nil, fmt.Errorf("%w: daily quota must be >= 0", domain.ErrValidation)
	}

	card := &domain.PauseCard{
		ID:         uuid.New().String(),
		Name:       in.Name,
		DailyQuota: in.DailyQuota,
		IsJoker:    in.IsJoker,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}
	// A fresh card has no uses, so everything remains.
	return &CardWithRemaining{Card: card, RemainingToday: card.DailyQuota}, nil
}

func (s *pauseService) Update(ctx context.Context, id string, patch domain.PauseCardPatch) (*CardWithRemaining, error) {
	if patch.DailyQuota != nil && *patch.DailyQuota < 0 {
		return nil, fmt.Errorf("%w: daily quota must be >= 0", domain.ErrValidation)
	}

	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(card)
	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}

	today := domain.DateOf(s.clock.Now())
	uses, err := s.uses.CountByCardAndDate(ctx, card.ID, today)
	if err != nil {
		return nil, err
	}
	return &CardWithRemaining{Card: card, RemainingToday: card.RemainingUses(uses)}, nil
}

func (s *pauseService) ResetUses(ctx context.Context, date string) error {
	return s.uses.DeleteByDate(ctx, date)
}

// Consume spends one use of the card: the quota is rechecked inside the
// transaction, a running break session is opened, a use row links the two,
// and the day's pause debt shrinks by the break length, floored at zero.
// All effects commit together or not at all.
func (s *pauseService) Consume(ctx context.Context, cardID string, minutes *int) (created *domain.Session, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "pause.consume", startedAt, err, map[string]any{"card_id": cardID})
	}()

	if minutes != nil && *minutes < 1 {
		return nil, fmt.Errorf("%w: minutes must be >= 1", domain.ErrValidation)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCards := repository.NewSQLitePauseCardRepo(tx)
		txUses := repository.NewSQLitePauseCardUseRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txDaily := repository.NewSQLiteDailyStateRepo(tx)

		card, txErr := txCards.GetByID(ctx, cardID)
		if txErr != nil {
			return txErr
		}

		now := s.clock.Now()
		today := domain.DateOf(now)

		uses, txErr := txUses.CountByCardAndDate(ctx, card.ID, today)
		if txErr != nil {
			return txErr
		}
		if card.RemainingUses(uses) <= 0 {
			return fmt.Errorf("%w: pause card %q has no uses left today", domain.ErrQuotaExhausted, card.Name)
		}

		settings, _, txErr := ensureSettingsTx(ctx, tx, s.clock)
		if txErr != nil {
			return txErr
		}
		breakMinutes := domain.IntFromPtrWithDefault(settings.DefaultBreakMinutes, minutes)

		session := &domain.Session{
			ID:             uuid.New().String(),
			Kind:           domain.KindBreak,
			StartAt:        now,
			PlannedMinutes: breakMinutes,
			State:          domain.StateRunning,
			Date:           today,
			DaypartName:    domain.ResolveDaypart(settings.Dayparts, now),
		}
		if txErr := txSessions.Create(ctx, session); txErr != nil {
			return txErr
		}

		use := &domain.PauseCardUse{
			ID:          uuid.New().String(),
			PauseCardID: card.ID,
			Date:        today,
			SessionID:   session.ID,
			UsedAt:      now,
		}
		if txErr := txUses.Create(ctx, use); txErr != nil {
			return txErr
		}

		state, txErr := txDaily.GetOrCreate(ctx, today)
		if txErr != nil {
			return txErr
		}
		if state.PauseDueMinutes > 0 {
			due := state.PauseDueMinutes - breakMinutes
			if due < 0 {
				due = 0
			}
			if txErr := txDaily.SetPauseDue(ctx, today, due); txErr != nil {
				return txErr
			}
		}

		created = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
