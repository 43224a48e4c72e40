package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/alexanderramin/tomate/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks repository.TaskRepo
	clock domain.Clock
}

func NewTaskService(tasks repository.TaskRepo, clock domain.Clock) TaskService {
	return &taskService{tasks: tasks, clock: clock}
}

func (s *taskService) List(ctx context.Context, status *domain.TaskStatus) ([]*domain.Task, error) {
	return s.tasks.List(ctx, status)
}

func (s *taskService) Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: task title is required", domain.ErrValidation)
	}
	if in.EstimatePomodoros < 1 {
		return nil, fmt.Errorf("%w: estimate must be >= 1 pomodoro", domain.ErrValidation)
	}

	now := s.clock.Now()
	t := &domain.Task{
		ID:                uuid.New().String(),
		Title:             in.Title,
		EstimatePomodoros: in.EstimatePomodoros,
		Note:              in.Note,
		Status:            domain.TaskActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.EstimatePomodoros != nil && *patch.EstimatePomodoros < 1 {
		return nil, fmt.Errorf("%w: estimate must be >= 1 pomodoro", domain.ErrValidation)
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(t)
	t.UpdatedAt = s.clock.Now()
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Complete(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Status = domain.TaskDone
	t.UpdatedAt = s.clock.Now()
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
