package service

import (
	"context"
	"time"

	"github.com/greencycle/ecopoints/internal/handlers/auth"
	"github.com/greencycle/ecopoints/internal/handlers/invest"
	"github.com/greencycle/ecopoints/internal/handlers/redeem"
	"github.com/greencycle/ecopoints/internal/handlers/wallet"

	pkgauth "github.com/greencycle/ecopoints/pkg/auth"

	"github.com/greencycle/ecopoints/internal/pg"
	"github.com/greencycle/ecopoints/internal/repo"
	"github.com/greencycle/ecopoints/internal/service/authservice"
	"github.com/greencycle/ecopoints/internal/service/investservice"
	"github.com/greencycle/ecopoints/internal/service/redeemservice"
	"github.com/greencycle/ecopoints/internal/service/walletservice"
	"github.com/greencycle/ecopoints/internal/settlement"
)

// TicketIssuer and Notifier are the external collaborators the engine
// depends on; internal/tickets and internal/notify provide them.
type TicketIssuer interface {
	Issue(ctx context.Context, userID int, description string, amount int64) (string, error)
	Cancel(ctx context.Context, ref string) error
}
type Notifier interface {
	Notify(ctx context.Context, userID int, message, category string, expiry time.Time) error
}

type Services struct {
	AuthService   auth.Service
	WalletService wallet.Service
	InvestService invest.Service
	RedeemService redeem.Service

	// Settlement drives the scheduled settlement runs.
	Settlement settlement.InvestService
}

func New(repo *repo.Repositories, txManager pg.TXManager, ticketIssuer TicketIssuer, notifier Notifier) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.ExchangeRepo, repo.UserRepo, notifier, txManager)
	investService := investservice.New(repo.InstrumentRepo, repo.SubscriptionRepo, walletService, txManager)
	redeemService := redeemservice.New(repo.RewardRepo, repo.RedemptionRepo, walletService, ticketIssuer, notifier)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:   authService,
		WalletService: walletService,
		InvestService: investService,
		RedeemService: redeemService,
		Settlement:    investService,
	}
}
