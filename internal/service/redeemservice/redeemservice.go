package redeemservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greencycle/ecopoints/internal/domain"
	"github.com/greencycle/ecopoints/pkg/saga"
	"go.uber.org/zap"
)

//go:generate mockgen -source=redeemservice.go -destination=mocks.go -package=redeemservice

type RewardRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Reward, error)
	DecrementStock(ctx context.Context, id int) (bool, error)
	RestoreStock(ctx context.Context, id int) error
	List(ctx context.Context) ([]domain.Reward, error)
}
type RedemptionRepo interface {
	Create(ctx context.Context, redemption *domain.Redemption) (*domain.Redemption, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Redemption, error)
}
type WalletService interface {
	ApplyDelta(ctx context.Context, userID int, pointsDelta int64, balanceDelta float64) (*domain.Wallet, error)
}
type TicketIssuer interface {
	Issue(ctx context.Context, userID int, description string, amount int64) (string, error)
	Cancel(ctx context.Context, ref string) error
}
type Notifier interface {
	Notify(ctx context.Context, userID int, message, category string, expiry time.Time) error
}

const (
	// StatusPending redemption recorded, reward not yet handed out.
	StatusPending string = "PENDING"
	// StatusFulfilled reward handed out against the ticket.
	StatusFulfilled string = "FULFILLED"
	// StatusCancelled redemption abandoned, value returned.
	StatusCancelled string = "CANCELLED"
)

var (
	ErrRewardNotFound   = errors.New("reward not found")
	ErrOutOfStock       = errors.New("reward is out of stock")
	ErrTicketIssuance   = errors.New("ticket issuance failed")
	ErrRedemptionFailed = errors.New("failed to record redemption")
)

type Service struct {
	rewardRepo     RewardRepo
	redemptionRepo RedemptionRepo
	walletService  WalletService
	ticketIssuer   TicketIssuer
	notifier       Notifier
}

func New(rewardRepo RewardRepo, redemptionRepo RedemptionRepo, walletService WalletService, ticketIssuer TicketIssuer, notifier Notifier) *Service {
	return &Service{
		rewardRepo:     rewardRepo,
		redemptionRepo: redemptionRepo,
		walletService:  walletService,
		ticketIssuer:   ticketIssuer,
		notifier:       notifier,
	}
}

// Redeem spends points on a reward and obtains an external ticket for it.
// The ticket call cannot join a database transaction, so the flow runs as a
// saga: stock decrement, point debit and ticket issuance each carry a
// reversal, and the redemption insert is the commit point. Whatever step
// fails, the caller sees that step's error and the wallet, the stock and the
// ticket system are back where they started.
func (s *Service) Redeem(ctx context.Context, userID, rewardID int) (*domain.Redemption, error) {
	reward, err := s.rewardRepo.GetByID(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, ErrRewardNotFound
	}
	if reward.Stock <= 0 {
		return nil, ErrOutOfStock
	}

	var (
		ticketRef  string
		redemption *domain.Redemption
	)

	sg := saga.New("redeem",
		saga.Step{
			Name: "take stock",
			Run: func(ctx context.Context) error {
				ok, err := s.rewardRepo.DecrementStock(ctx, rewardID)
				if err != nil {
					return err
				}
				if !ok {
					return ErrOutOfStock
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.rewardRepo.RestoreStock(ctx, rewardID)
			},
		},
		saga.Step{
			Name: "debit points",
			Run: func(ctx context.Context) error {
				_, err := s.walletService.ApplyDelta(ctx, userID, -reward.Cost, 0)
				return err
			},
			Compensate: func(ctx context.Context) error {
				_, err := s.walletService.ApplyDelta(ctx, userID, reward.Cost, 0)
				return err
			},
		},
		saga.Step{
			Name: "issue ticket",
			Run: func(ctx context.Context) error {
				ref, err := s.ticketIssuer.Issue(ctx, userID, "Redemption: "+reward.Name, reward.Cost)
				if err != nil {
					return fmt.Errorf("%w: %v", ErrTicketIssuance, err)
				}
				ticketRef = ref
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.ticketIssuer.Cancel(ctx, ticketRef)
			},
		},
		saga.Step{
			Name: "record redemption",
			Run: func(ctx context.Context) error {
				var err error
				redemption, err = s.redemptionRepo.Create(ctx, &domain.Redemption{
					UserID:      userID,
					RewardID:    rewardID,
					PointsSpent: reward.Cost,
					Status:      StatusPending,
					TicketRef:   ticketRef,
					CreatedAt:   time.Now(),
				})
				if err != nil {
					return fmt.Errorf("%w: %v", ErrRedemptionFailed, err)
				}
				return nil
			},
		},
	)

	if err := sg.Execute(ctx); err != nil {
		return nil, err
	}

	// Side effect only: a failed notification never unwinds the redemption.
	if err := s.notifier.Notify(ctx, userID, "Your redemption of "+reward.Name+" is pending", "redemption", time.Now().Add(72*time.Hour)); err != nil {
		zap.L().Error("failed to notify redemption", zap.Error(err))
	}

	zap.L().Info("redemption created",
		zap.Int("userID", userID),
		zap.Int("rewardID", rewardID),
		zap.String("ticketRef", ticketRef),
	)
	return redemption, nil
}

func (s *Service) GetRedemptions(ctx context.Context, userID int) ([]domain.Redemption, error) {
	redemptions, err := s.redemptionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch redemptions", zap.Error(err))
		return nil, err
	}
	return redemptions, nil
}

func (s *Service) GetRewards(ctx context.Context) ([]domain.Reward, error) {
	rewards, err := s.rewardRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to fetch rewards", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}
