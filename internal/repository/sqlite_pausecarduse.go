package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tomate/internal/db"
	"github.com/alexanderramin/tomate/internal/domain"
)

// SQLitePauseCardUseRepo implements PauseCardUseRepo using a SQLite database.
type SQLitePauseCardUseRepo struct {
	db db.DBTX
}

// NewSQLitePauseCardUseRepo creates a new SQLitePauseCardUseRepo.
func NewSQLitePauseCardUseRepo(conn db.DBTX) *SQLitePauseCardUseRepo {
	return &SQLitePauseCardUseRepo{db: conn}
}

func (r *SQLitePauseCardUseRepo) Create(ctx context.Context, u *domain.PauseCardUse) error {
	query := `INSERT INTO pause_card_uses (id, pause_card_id, date, session_id, used_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.PauseCardID,
		u.Date,
		u.SessionID,
		u.UsedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting pause card use: %w", err)
	}
	return nil
}

func (r *SQLitePauseCardUseRepo) CountByCardAndDate(ctx context.Context, cardID, date string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM pause_card_uses WHERE pause_card_id = ? AND date = ?`
	if err := r.db.QueryRowContext(ctx, query, cardID, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting pause card uses: %w", err)
	}
	return count, nil
}

func (r *SQLitePauseCardUseRepo) ListAll(ctx context.Context) ([]*domain.PauseCardUse, error) {
	query := `SELECT id, pause_card_id, date, session_id, used_at
		FROM pause_card_uses ORDER BY used_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing pause card uses: %w", err)
	}
	defer rows.Close()

	var uses []*domain.PauseCardUse
	for rows.Next() {
		var u domain.PauseCardUse
		var usedAt string
		if err := rows.Scan(&u.ID, &u.PauseCardID, &u.Date, &u.SessionID, &usedAt); err != nil {
			return nil, fmt.Errorf("scanning pause card use: %w", err)
		}
		if u.UsedAt, err = time.Parse(time.RFC3339, usedAt); err != nil {
			return nil, fmt.Errorf("parsing use time: %w", err)
		}
		uses = append(uses, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pause card uses: %w", err)
	}
	return uses, nil
}

func (r *SQLitePauseCardUseRepo) DeleteByDate(ctx context.Context, date string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM pause_card_uses WHERE date = ?`, date); err != nil {
		return fmt.Errorf("deleting pause card uses: %w", err)
	}
	return nil
}
