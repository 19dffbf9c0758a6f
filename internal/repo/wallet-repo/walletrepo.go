package walletrepo

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

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, points, balance, created_at
        FROM wallets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Points, &wallet.Balance, &wallet.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, points, balance)
        VALUES ($1, 0, 0)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, points, balance, created_at
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Points, &wallet.Balance, &wallet.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// GetForUpdate locks the wallet row for the rest of the surrounding
// transaction. Callers that count recent activity before mutating (daily
// exchange cap) take this lock first so the count cannot go stale.
func (r *Repository) GetForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, points, balance, created_at
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Points, &wallet.Balance, &wallet.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// ApplyDelta adjusts points and balance in one conditional statement. The
// WHERE clause refuses any outcome below zero; in that case (or when the
// wallet does not exist) it returns nil, nil and mutates nothing.
func (r *Repository) ApplyDelta(ctx context.Context, userID int, pointsDelta int64, balanceDelta float64) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET points = points + $1, balance = balance + $2
        WHERE user_id = $3 AND points + $1 >= 0 AND balance + $2 >= 0
        RETURNING id, user_id, points, balance, created_at
    `
	row := r.db.QueryRow(ctx, query, pointsDelta, balanceDelta, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Points, &wallet.Balance, &wallet.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to apply wallet delta", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}
