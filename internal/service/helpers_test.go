package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/tomate/internal/db"
	"github.com/alexanderramin/tomate/internal/repository"
	"github.com/alexanderramin/tomate/internal/testutil"
)

// testEnv bundles a fresh in-memory database with repositories, a pinned
// clock, and the services under test.
type testEnv struct {
	db       *sql.DB
	uow      db.UnitOfWork
	clock    *testutil.FixedClock
	tasks    *repository.SQLiteTaskRepo
	sessions *repository.SQLiteSessionRepo
	cards    *repository.SQLitePauseCardRepo
	uses     *repository.SQLitePauseCardUseRepo
	daily    *repository.SQLiteDailyStateRepo
	settings *repository.SQLiteSettingsRepo

	settingsSvc SettingsService
	taskSvc     TaskService
	sessionSvc  SessionService
	pauseSvc    PauseService
	dailySvc    DailyStateService
}

// testNow is the pinned instant for service tests: a Tuesday morning inside
// the default "Matin" daypart.
var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func setupServices(t *testing.T) *testEnv {
	t.Helper()

	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	clock := testutil.NewFixedClock(testNow)

	env := &testEnv{
		db:       database,
		uow:      uow,
		clock:    clock,
		tasks:    repository.NewSQLiteTaskRepo(database),
		sessions: repository.NewSQLiteSessionRepo(database),
		cards:    repository.NewSQLitePauseCardRepo(database),
		uses:     repository.NewSQLitePauseCardUseRepo(database),
		daily:    repository.NewSQLiteDailyStateRepo(database),
		settings: repository.NewSQLiteSettingsRepo(database),
	}
	env.settingsSvc = NewSettingsService(uow, clock)
	env.taskSvc = NewTaskService(env.tasks, clock)
	env.sessionSvc = NewSessionService(env.sessions, uow, clock)
	env.pauseSvc = NewPauseService(env.cards, env.uses, uow, clock)
	env.dailySvc = NewDailyStateService(env.daily, clock)
	return env
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
