package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/tomate/internal/db"
	"github.com/alexanderramin/tomate/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT id, dayparts_json, default_focus_minutes, default_break_minutes,
		notifications_enabled, sound_enabled, created_at, updated_at
		FROM settings WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.Settings
	var daypartsJSON, createdAtStr, updatedAtStr string
	var notif, sound int
	err := row.Scan(
		&s.ID, &daypartsJSON, &s.DefaultFocusMinutes, &s.DefaultBreakMinutes,
		&notif, &sound, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	if err := json.Unmarshal([]byte(daypartsJSON), &s.Dayparts); err != nil {
		return nil, fmt.Errorf("parsing dayparts: %w", err)
	}
	s.NotificationsEnabled = intToBool(notif)
	s.SoundEnabled = intToBool(sound)
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Insert(ctx context.Context, s *domain.Settings) (bool, error) {
	daypartsJSON, err := json.Marshal(s.Dayparts)
	if err != nil {
		return false, fmt.Errorf("encoding dayparts: %w", err)
	}
	query := `INSERT OR IGNORE INTO settings (
		id, dayparts_json, default_focus_minutes, default_break_minutes,
		notifications_enabled, sound_enabled, created_at, updated_at
	) VALUES (1, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		string(daypartsJSON),
		s.DefaultFocusMinutes,
		s.DefaultBreakMinutes,
		boolToInt(s.NotificationsEnabled),
		boolToInt(s.SoundEnabled),
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("inserting settings: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking settings insert: %w", err)
	}
	return affected > 0, nil
}

func (r *SQLiteSettingsRepo) Update(ctx context.Context, s *domain.Settings) error {
	daypartsJSON, err := json.Marshal(s.Dayparts)
	if err != nil {
		return fmt.Errorf("encoding dayparts: %w", err)
	}
	query := `UPDATE settings SET dayparts_json = ?, default_focus_minutes = ?,
		default_break_minutes = ?, notifications_enabled = ?, sound_enabled = ?,
		updated_at = ? WHERE id = 1`
	_, err = r.db.ExecContext(ctx, query,
		string(daypartsJSON),
		s.DefaultFocusMinutes,
		s.DefaultBreakMinutes,
		boolToInt(s.NotificationsEnabled),
		boolToInt(s.SoundEnabled),
		s.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("updating settings: %w", err)
	}
	return nil
}
