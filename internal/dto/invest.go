package dto

import "time"

type SubscribeRequestDTO struct {
	InstrumentID int   `json:"instrument_id" example:"1" validate:"required,gt=0"`
	Points       int64 `json:"points" example:"9000" validate:"required,gt=0"`
}

type SubscriptionResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	InstrumentID int       `json:"instrument_id" example:"1"`
	Points       int64     `json:"points" example:"9000"`
	ReturnAmount int64     `json:"return_amount" example:"11250"`
	MaturityDate time.Time `json:"maturity_date" example:"2026-06-09T00:00:00Z"`
	CreatedAt    time.Time `json:"created_at" example:"2025-12-09T16:09:57+03:00"`
}

type ApplyReturnsResponseDTO struct {
	Settled int `json:"settled" example:"2"`
}

type InstrumentResponseDTO struct {
	ID              int    `json:"id" example:"1"`
	Name            string `json:"name" example:"Neighborhood Solar Array"`
	TotalSubscribed int64  `json:"total_subscribed" example:"120000"`
	Goal            int64  `json:"goal" example:"500000"`
	Status          string `json:"status" example:"ACTIVE"`
}
