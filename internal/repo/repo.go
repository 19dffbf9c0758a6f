package repo

import (
	"github.com/greencycle/ecopoints/internal/pg"
	exchangerepo "github.com/greencycle/ecopoints/internal/repo/exchange-repo"
	instrumentrepo "github.com/greencycle/ecopoints/internal/repo/instrument-repo"
	redemptionrepo "github.com/greencycle/ecopoints/internal/repo/redemption-repo"
	rewardrepo "github.com/greencycle/ecopoints/internal/repo/reward-repo"
	subscriptionrepo "github.com/greencycle/ecopoints/internal/repo/subscription-repo"
	userrepo "github.com/greencycle/ecopoints/internal/repo/user-repo"
	walletrepo "github.com/greencycle/ecopoints/internal/repo/wallet-repo"
	"github.com/greencycle/ecopoints/internal/service/authservice"
	"github.com/greencycle/ecopoints/internal/service/investservice"
	"github.com/greencycle/ecopoints/internal/service/redeemservice"
	"github.com/greencycle/ecopoints/internal/service/walletservice"
)

type Repositories struct {
	UserRepo         authservice.Repo
	WalletRepo       walletservice.WalletRepo
	ExchangeRepo     walletservice.ExchangeRepo
	InstrumentRepo   investservice.InstrumentRepo
	SubscriptionRepo investservice.SubscriptionRepo
	RewardRepo       redeemservice.RewardRepo
	RedemptionRepo   redeemservice.RedemptionRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		WalletRepo:       walletrepo.New(conn),
		ExchangeRepo:     exchangerepo.New(conn),
		InstrumentRepo:   instrumentrepo.New(conn),
		SubscriptionRepo: subscriptionrepo.New(conn),
		RewardRepo:       rewardrepo.New(conn),
		RedemptionRepo:   redemptionrepo.New(conn),
	}
}
