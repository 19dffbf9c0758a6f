package instrumentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/greencycle/ecopoints/internal/domain"
	"github.com/greencycle/ecopoints/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Instrument, error) {
	query := `
        SELECT id, name, total_subscribed, goal, status, created_at
        FROM instruments
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetForUpdate locks the instrument row so concurrent subscriptions into the
// same instrument serialize on the status check, the monthly duplicate check
// and the total accumulation.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Instrument, error) {
	query := `
        SELECT id, name, total_subscribed, goal, status, created_at
        FROM instruments
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// AddSubscribed accumulates committed points and flips the instrument to
// COMPLETED in the same statement once the goal is reached.
func (r *Repository) AddSubscribed(ctx context.Context, id int, points int64) (*domain.Instrument, error) {
	query := `
        UPDATE instruments
        SET total_subscribed = total_subscribed + $1,
            status = CASE WHEN total_subscribed + $1 >= goal THEN 'COMPLETED' ELSE status END
        WHERE id = $2
        RETURNING id, name, total_subscribed, goal, status, created_at
    `
	return r.scanOne(r.db.QueryRow(ctx, query, points, id))
}

func (r *Repository) List(ctx context.Context) ([]domain.Instrument, error) {
	query := `
        SELECT id, name, total_subscribed, goal, status, created_at
        FROM instruments
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch instruments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var instruments []domain.Instrument
	for rows.Next() {
		var ins domain.Instrument
		err := rows.Scan(&ins.ID, &ins.Name, &ins.TotalSubscribed, &ins.Goal, &ins.Status, &ins.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan instrument row", zap.Error(err))
			return nil, err
		}
		instruments = append(instruments, ins)
	}

	return instruments, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Instrument, error) {
	var ins domain.Instrument
	err := row.Scan(&ins.ID, &ins.Name, &ins.TotalSubscribed, &ins.Goal, &ins.Status, &ins.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to scan instrument", zap.Error(err))
		return nil, err
	}
	return &ins, nil
}
