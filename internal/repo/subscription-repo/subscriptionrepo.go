package subscriptionrepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	query := `
		INSERT INTO subscriptions (user_id, instrument_id, points_committed, return_amount, maturity_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		sub.UserID, sub.InstrumentID, sub.PointsCommitted, sub.ReturnAmount, sub.MaturityDate, sub.CreatedAt,
	).Scan(&sub.ID)
	if err != nil {
		zap.L().Error("can't save subscription", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

// CountForMonth counts the user's subscriptions into one instrument created
// within the UTC calendar month containing the given moment.
func (r *Repository) CountForMonth(ctx context.Context, userID, instrumentID int, at time.Time) (int, error) {
	t := at.UTC()
	monthStart := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	query := `
        SELECT count(*)
        FROM subscriptions
        WHERE user_id = $1 AND instrument_id = $2 AND created_at >= $3 AND created_at < $4
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID, instrumentID, monthStart, monthStart.AddDate(0, 1, 0)).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count subscriptions", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Subscription, error) {
	query := `
        SELECT id, user_id, instrument_id, points_committed, return_amount, maturity_date, created_at
        FROM subscriptions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.scanMany(r.db.Query(ctx, query, userID))
}

// FindDue returns matured, not yet settled subscriptions, optionally scoped
// to one user (userID 0 means all users).
func (r *Repository) FindDue(ctx context.Context, userID int, now time.Time, limit uint32) ([]domain.Subscription, error) {
	query := `
        SELECT id, user_id, instrument_id, points_committed, return_amount, maturity_date, created_at
        FROM subscriptions
        WHERE maturity_date <= $1 AND return_amount > 0 AND ($2 = 0 OR user_id = $2)
        ORDER BY maturity_date
        LIMIT $3
    `
	return r.scanMany(r.db.Query(ctx, query, now, userID, limit))
}

// ClearReturn zeroes the pending return of one subscription, conditional on
// it still holding the expected amount. It reports false without mutating
// anything when the subscription was already settled; this compare-and-swap
// is the exactly-once guard for settlement running concurrently.
func (r *Repository) ClearReturn(ctx context.Context, subscriptionID int, expectedAmount int64) (bool, error) {
	query := `
        UPDATE subscriptions
        SET return_amount = 0
        WHERE id = $1 AND return_amount = $2 AND return_amount > 0
    `
	tag, err := r.db.Exec(ctx, query, subscriptionID, expectedAmount)
	if err != nil {
		zap.L().Error("failed to clear subscription return", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) scanMany(rows pgx.Rows, err error) ([]domain.Subscription, error) {
	if err != nil {
		zap.L().Error("failed to fetch subscriptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var sub domain.Subscription
		err := rows.Scan(&sub.ID, &sub.UserID, &sub.InstrumentID, &sub.PointsCommitted, &sub.ReturnAmount, &sub.MaturityDate, &sub.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan subscription row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, nil
}
