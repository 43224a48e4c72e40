package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tomate/internal/db"
	"github.com/alexanderramin/tomate/internal/domain"
)

// SQLiteDailyStateRepo implements DailyStateRepo using a SQLite database.
type SQLiteDailyStateRepo struct {
	db db.DBTX
}

// NewSQLiteDailyStateRepo creates a new SQLiteDailyStateRepo.
func NewSQLiteDailyStateRepo(conn db.DBTX) *SQLiteDailyStateRepo {
	return &SQLiteDailyStateRepo{db: conn}
}

// GetOrCreate upserts a zero-balance row for the date and returns the
// current state. INSERT OR IGNORE keeps this race-free without a
// check-then-insert round trip.
func (r *SQLiteDailyStateRepo) GetOrCreate(ctx context.Context, date string) (*domain.DailyState, error) {
	if _, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_states (date, pause_due_minutes) VALUES (?, 0)`, date); err != nil {
		return nil, fmt.Errorf("upserting daily state: %w", err)
	}

	var s domain.DailyState
	err := r.db.QueryRowContext(ctx,
		`SELECT date, pause_due_minutes FROM daily_states WHERE date = ?`, date).
		Scan(&s.Date, &s.PauseDueMinutes)
	if err != nil {
		return nil, fmt.Errorf("scanning daily state: %w", err)
	}
	return &s, nil
}

func (r *SQLiteDailyStateRepo) List(ctx context.Context) ([]*domain.DailyState, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, pause_due_minutes FROM daily_states ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing daily states: %w", err)
	}
	defer rows.Close()

	var states []*domain.DailyState
	for rows.Next() {
		var s domain.DailyState
		if err := rows.Scan(&s.Date, &s.PauseDueMinutes); err != nil {
			return nil, fmt.Errorf("scanning daily state row: %w", err)
		}
		states = append(states, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily states: %w", err)
	}
	return states, nil
}

func (r *SQLiteDailyStateRepo) SetPauseDue(ctx context.Context, date string, minutes int) error {
	if minutes < 0 {
		minutes = 0
	}
	query := `INSERT INTO daily_states (date, pause_due_minutes) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET pause_due_minutes = excluded.pause_due_minutes`
	if _, err := r.db.ExecContext(ctx, query, date, minutes); err != nil {
		return fmt.Errorf("setting pause due minutes: %w", err)
	}
	return nil
}
