package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tomate/internal/db"
	"github.com/alexanderramin/tomate/internal/domain"
)

// SQLitePauseCardRepo implements PauseCardRepo using a SQLite database.
type SQLitePauseCardRepo struct {
	db db.DBTX
}

// NewSQLitePauseCardRepo creates a new SQLitePauseCardRepo.
func NewSQLitePauseCardRepo(conn db.DBTX) *SQLitePauseCardRepo {
	return &SQLitePauseCardRepo{db: conn}
}

func (r *SQLitePauseCardRepo) Create(ctx context.Context, c *domain.PauseCard) error {
	query := `INSERT INTO pause_cards (id, name, daily_quota, is_joker, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.DailyQuota,
		boolToInt(c.IsJoker),
		c.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting pause card: %w", err)
	}
	return nil
}

func (r *SQLitePauseCardRepo) GetByID(ctx context.Context, id string) (*domain.PauseCard, error) {
	query := `SELECT id, name, daily_quota, is_joker, created_at FROM pause_cards WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var c domain.PauseCard
	var joker int
	var createdAtStr string
	err := row.Scan(&c.ID, &c.Name, &c.DailyQuota, &joker, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("pause card: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning pause card: %w", err)
	}
	c.IsJoker = intToBool(joker)
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}

func (r *SQLitePauseCardRepo) List(ctx context.Context) ([]*domain.PauseCard, error) {
	query := `SELECT id, name, daily_quota, is_joker, created_at
		FROM pause_cards ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing pause cards: %w", err)
	}
	defer rows.Close()

	var cards []*domain.PauseCard
	for rows.Next() {
		var c domain.PauseCard
		var joker int
		var createdAtStr string
		if err := rows.Scan(&c.ID, &c.Name, &c.DailyQuota, &joker, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning pause card row: %w", err)
		}
		c.IsJoker = intToBool(joker)
		if c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		cards = append(cards, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pause cards: %w", err)
	}
	return cards, nil
}

func (r *SQLitePauseCardRepo) Update(ctx context.Context, c *domain.PauseCard) error {
	query := `UPDATE pause_cards SET name = ?, daily_quota = ?, is_joker = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.DailyQuota, boolToInt(c.IsJoker), c.ID)
	if err != nil {
		return fmt.Errorf("updating pause card: %w", err)
	}
	return nil
}

func (r *SQLitePauseCardRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pause_cards`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting pause cards: %w", err)
	}
	return count, nil
}
