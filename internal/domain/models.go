package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Wallet is the per-user value store. Points and Balance never go negative;
// every mutation goes through walletservice.ApplyDelta.
type Wallet struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Points    int64     `db:"points"`
	Balance   float64   `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}

type Instrument struct {
	ID              int       `db:"id"`
	Name            string    `db:"name"`
	TotalSubscribed int64     `db:"total_subscribed"`
	Goal            int64     `db:"goal"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
}

// Subscription commits points into an instrument until MaturityDate.
// ReturnAmount is precomputed at subscription time; the settlement that
// credits it zeroes it, which is the only settled marker.
type Subscription struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	InstrumentID    int       `db:"instrument_id"`
	PointsCommitted int64     `db:"points_committed"`
	ReturnAmount    int64     `db:"return_amount"`
	MaturityDate    time.Time `db:"maturity_date"`
	CreatedAt       time.Time `db:"created_at"`
}

type ExchangeRecord struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	PointsExchanged int64     `db:"points_exchanged"`
	BalanceObtained float64   `db:"balance_obtained"`
	OccurredAt      time.Time `db:"occurred_at"`
}

type Reward struct {
	ID    int    `db:"id"`
	Name  string `db:"name"`
	Cost  int64  `db:"cost"`
	Stock int    `db:"stock"`
}

type Redemption struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	RewardID    int       `db:"reward_id"`
	PointsSpent int64     `db:"points_spent"`
	Status      string    `db:"status"`
	TicketRef   string    `db:"ticket_ref"`
	CreatedAt   time.Time `db:"created_at"`
}
