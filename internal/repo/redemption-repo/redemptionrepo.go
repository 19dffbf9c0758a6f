package redemptionrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, redemption *domain.Redemption) (*domain.Redemption, error) {
	query := `
		INSERT INTO redemptions (user_id, reward_id, points_spent, status, ticket_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		redemption.UserID, redemption.RewardID, redemption.PointsSpent, redemption.Status, redemption.TicketRef, redemption.CreatedAt,
	).Scan(&redemption.ID)
	if err != nil {
		zap.L().Error("can't save redemption", zap.Error(err))
		return nil, err
	}
	return redemption, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Redemption, error) {
	query := `
        SELECT id, user_id, reward_id, points_spent, status, ticket_ref, created_at
        FROM redemptions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch redemptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var redemptions []domain.Redemption
	for rows.Next() {
		var rd domain.Redemption
		err := rows.Scan(&rd.ID, &rd.UserID, &rd.RewardID, &rd.PointsSpent, &rd.Status, &rd.TicketRef, &rd.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan redemption row", zap.Error(err))
			return nil, err
		}
		redemptions = append(redemptions, rd)
	}

	return redemptions, nil
}
