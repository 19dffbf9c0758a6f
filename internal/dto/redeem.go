package dto

import "time"

type RedeemRequestDTO struct {
	RewardID int `json:"reward_id" example:"1" validate:"required,gt=0"`
}

type RedemptionResponseDTO struct {
	ID          int       `json:"id" example:"1"`
	RewardID    int       `json:"reward_id" example:"1"`
	PointsSpent int64     `json:"points_spent" example:"500"`
	Status      string    `json:"status" example:"PENDING"`
	TicketRef   string    `json:"ticket_ref" example:"TCK-42"`
	CreatedAt   time.Time `json:"created_at" example:"2025-12-09T16:09:57+03:00"`
}

type RewardResponseDTO struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Reusable Bottle"`
	Cost  int64  `json:"cost" example:"500"`
	Stock int    `json:"stock" example:"200"`
}
