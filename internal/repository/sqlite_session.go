package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tomate/internal/db"
	"github.com/alexanderramin/tomate/internal/domain"
)

const sessionColumns = `id, kind, task_id, title, note, start_at, end_at,
	planned_minutes, actual_minutes, state, date, daypart_name`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		string(s.Kind),
		nullableStrToValue(s.TaskID),
		s.Title,
		s.Note,
		s.StartAt.UTC().Format(time.RFC3339),
		nullableTimeToString(s.EndAt),
		s.PlannedMinutes,
		nullableIntToValue(s.ActualMinutes),
		string(s.State),
		s.Date,
		s.DaypartName,
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE sessions SET kind = ?, task_id = ?, title = ?, note = ?,
		start_at = ?, end_at = ?, planned_minutes = ?, actual_minutes = ?,
		state = ?, date = ?, daypart_name = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		string(s.Kind),
		nullableStrToValue(s.TaskID),
		s.Title,
		s.Note,
		s.StartAt.UTC().Format(time.RFC3339),
		nullableTimeToString(s.EndAt),
		s.PlannedMinutes,
		nullableIntToValue(s.ActualMinutes),
		string(s.State),
		s.Date,
		s.DaypartName,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) ListRange(ctx context.Context, from, to string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE date >= ? AND date <= ? ORDER BY start_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListAll(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY start_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing all sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) NextPlannedFocus(ctx context.Context, date, excludeID string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE date = ? AND state = 'planned' AND kind = 'focus' AND id != ?
		ORDER BY start_at ASC, id ASC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, date, excludeID)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) AnyRunning(ctx context.Context, kind domain.SessionKind) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM sessions WHERE state = 'running' AND kind = ?`
	if err := r.db.QueryRowContext(ctx, query, string(kind)).Scan(&count); err != nil {
		return false, fmt.Errorf("counting running sessions: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteSessionRepo) DeletePlannedByDate(ctx context.Context, date string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE date = ? AND state = 'planned'`, date); err != nil {
		return fmt.Errorf("deleting planned sessions: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) DeleteNonPlannedByDate(ctx context.Context, date string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE date = ? AND state != 'planned'`, date); err != nil {
		return fmt.Errorf("deleting session history: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) DeleteByDate(ctx context.Context, date string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE date = ?`, date); err != nil {
		return fmt.Errorf("deleting sessions for date: %w", err)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var kindStr, stateStr, startAtStr string
	var taskID, endAt sql.NullString
	var actualMinutes sql.NullInt64

	err := row.Scan(
		&s.ID, &kindStr, &taskID, &s.Title, &s.Note, &startAtStr, &endAt,
		&s.PlannedMinutes, &actualMinutes, &stateStr, &s.Date, &s.DaypartName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return populateSession(&s, kindStr, stateStr, startAtStr, taskID, endAt, actualMinutes)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var kindStr, stateStr, startAtStr string
		var taskID, endAt sql.NullString
		var actualMinutes sql.NullInt64

		err := rows.Scan(
			&s.ID, &kindStr, &taskID, &s.Title, &s.Note, &startAtStr, &endAt,
			&s.PlannedMinutes, &actualMinutes, &stateStr, &s.Date, &s.DaypartName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, parseErr := populateSession(&s, kindStr, stateStr, startAtStr, taskID, endAt, actualMinutes)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields after scanning raw values.
func populateSession(s *domain.Session, kindStr, stateStr, startAtStr string, taskID, endAt sql.NullString, actualMinutes sql.NullInt64) (*domain.Session, error) {
	s.Kind = domain.SessionKind(kindStr)
	s.State = domain.SessionState(stateStr)
	var err error
	if s.StartAt, err = time.Parse(time.RFC3339, startAtStr); err != nil {
		return nil, fmt.Errorf("parsing start_at: %w", err)
	}
	if taskID.Valid {
		id := taskID.String
		s.TaskID = &id
	}
	s.EndAt = parseNullableTime(endAt)
	if actualMinutes.Valid {
		m := int(actualMinutes.Int64)
		s.ActualMinutes = &m
	}
	return s, nil
}
