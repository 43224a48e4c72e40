package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/alexanderramin/tomate/internal/export"
	"github.com/alexanderramin/tomate/internal/repository"
)

type exportService struct {
	db       *sql.DB
	settings repository.SettingsRepo
	tasks    repository.TaskRepo
	sessions repository.SessionRepo
	cards    repository.PauseCardRepo
	uses     repository.PauseCardUseRepo
	daily    repository.DailyStateRepo
	observer UseCaseObserver
}

func NewExportService(db *sql.DB, settings repository.SettingsRepo, tasks repository.TaskRepo, sessions repository.SessionRepo, cards repository.PauseCardRepo, uses repository.PauseCardUseRepo, daily repository.DailyStateRepo, observers ...UseCaseObserver) ExportService {
	return &exportService{
		db:       db,
		settings: settings,
		tasks:    tasks,
		sessions: sessions,
		cards:    cards,
		uses:     uses,
		daily:    daily,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) SnapshotDB(ctx context.Context, path string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "export.snapshot", startedAt, err, map[string]any{"path": path})
	}()
	return export.Snapshot(ctx, s.db, path)
}

func (s *exportService) WriteJSON(ctx context.Context, path string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "export.json", startedAt, err, map[string]any{"path": path})
	}()

	var dump export.Dump

	// Settings may not exist before first use; the dump simply omits them.
	settings, err := s.settings.Get(ctx)
	if err != nil && !repository.IsNotFound(err) {
		return err
	}
	dump.Settings = settings

	if dump.Tasks, err = s.tasks.List(ctx, nil); err != nil {
		return err
	}
	if dump.Sessions, err = s.sessions.ListAll(ctx); err != nil {
		return err
	}
	if dump.PauseCards, err = s.cards.List(ctx); err != nil {
		return err
	}
	if dump.PauseCardUses, err = s.uses.ListAll(ctx); err != nil {
		return err
	}
	if dump.DailyState, err = s.daily.List(ctx); err != nil {
		return err
	}

	return export.WriteJSON(path, dump)
}
