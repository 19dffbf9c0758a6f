package dto

import "time"

type WalletResponseDTO struct {
	Points  int64   `json:"points" example:"10000"`
	Balance float64 `json:"balance" example:"500.5"`
}

type TransferRequestDTO struct {
	To     string  `json:"to" example:"greta" validate:"required"`
	Amount float64 `json:"amount" example:"500" validate:"required,gt=0"`
	Kind   string  `json:"kind" example:"POINTS" validate:"required,oneof=POINTS BALANCE"`
}

type ExchangeRequestDTO struct {
	Points int64 `json:"points" example:"4000" validate:"required,gt=0"`
}

type ExchangeResponseDTO struct {
	Points          int64     `json:"points" example:"4000"`
	BalanceObtained float64   `json:"balance_obtained" example:"2000"`
	OccurredAt      time.Time `json:"occurred_at" example:"2025-12-09T16:09:57+03:00"`
}
