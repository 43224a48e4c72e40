package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tomate/internal/cli"
	"github.com/alexanderramin/tomate/internal/db"
	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/alexanderramin/tomate/internal/repository"
	"github.com/alexanderramin/tomate/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tomate/tomate.db
	dbPath := os.Getenv("TOMATE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tomate", "tomate.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	cardRepo := repository.NewSQLitePauseCardRepo(database)
	useRepo := repository.NewSQLitePauseCardUseRepo(database)
	dailyRepo := repository.NewSQLiteDailyStateRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	clock := domain.SystemClock{}

	var observers []service.UseCaseObserver
	if os.Getenv("TOMATE_LOG") == "1" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Settings: service.NewSettingsService(uow, clock, observers...),
		Tasks:    service.NewTaskService(taskRepo, clock),
		Sessions: service.NewSessionService(sessionRepo, uow, clock, observers...),
		Pauses:   service.NewPauseService(cardRepo, useRepo, uow, clock, observers...),
		Daily:    service.NewDailyStateService(dailyRepo, clock),
		Export:   service.NewExportService(database, settingsRepo, taskRepo, sessionRepo, cardRepo, useRepo, dailyRepo, observers...),
	}

	// Detect interactive terminal for the timer and the settings form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
