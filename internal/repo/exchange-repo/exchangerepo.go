package exchangerepo

import (
	"context"
	"time"

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

func (r *Repository) CreateExchange(ctx context.Context, rec *domain.ExchangeRecord) (*domain.ExchangeRecord, error) {
	query := `
		INSERT INTO exchange_records (user_id, points_exchanged, balance_obtained, occurred_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, rec.UserID, rec.PointsExchanged, rec.BalanceObtained, rec.OccurredAt).Scan(&rec.ID)
	if err != nil {
		zap.L().Error("can't save exchange record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// CountForDay counts the user's exchanges within the UTC calendar day
// containing the given moment.
func (r *Repository) CountForDay(ctx context.Context, userID int, at time.Time) (int, error) {
	dayStart := at.UTC().Truncate(24 * time.Hour)
	query := `
        SELECT count(*)
        FROM exchange_records
        WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID, dayStart, dayStart.Add(24*time.Hour)).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count exchanges", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) GetExchangesByUserID(ctx context.Context, userID int) ([]domain.ExchangeRecord, error) {
	query := `
        SELECT id, user_id, points_exchanged, balance_obtained, occurred_at
        FROM exchange_records
        WHERE user_id = $1
        ORDER BY occurred_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch exchange records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.ExchangeRecord
	for rows.Next() {
		var rec domain.ExchangeRecord
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.PointsExchanged, &rec.BalanceObtained, &rec.OccurredAt)
		if err != nil {
			zap.L().Error("failed to scan exchange record row", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
