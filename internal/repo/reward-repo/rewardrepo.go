package rewardrepo

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

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Reward, error) {
	query := `
        SELECT id, name, cost, stock
        FROM rewards
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var reward domain.Reward
	err := row.Scan(&reward.ID, &reward.Name, &reward.Cost, &reward.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get reward", zap.Error(err))
		return nil, err
	}
	return &reward, nil
}

// DecrementStock takes one unit of stock. It reports false without mutating
// anything when the reward is sold out.
func (r *Repository) DecrementStock(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE rewards
        SET stock = stock - 1
        WHERE id = $1 AND stock > 0
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to decrement reward stock", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// RestoreStock returns one unit taken by DecrementStock.
func (r *Repository) RestoreStock(ctx context.Context, id int) error {
	query := `
        UPDATE rewards
        SET stock = stock + 1
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("failed to restore reward stock", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Reward, error) {
	query := `
        SELECT id, name, cost, stock
        FROM rewards
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var reward domain.Reward
		err := rows.Scan(&reward.ID, &reward.Name, &reward.Cost, &reward.Stock)
		if err != nil {
			zap.L().Error("failed to scan reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, reward)
	}

	return rewards, nil
}
