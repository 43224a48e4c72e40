package service

import (
	"context"

	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/alexanderramin/tomate/internal/repository"
)

type dailyStateService struct {
	daily repository.DailyStateRepo
	clock domain.Clock
}

func NewDailyStateService(daily repository.DailyStateRepo, clock domain.Clock) DailyStateService {
	return &dailyStateService{daily: daily, clock: clock}
}

func (s *dailyStateService) Get(ctx context.Context, date string) (*domain.DailyState, error) {
	if date == "" {
		date = domain.DateOf(s.clock.Now())
	}
	return s.daily.GetOrCreate(ctx, date)
}
