package investservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/greencycle/ecopoints/internal/domain"
	"github.com/greencycle/ecopoints/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=investservice.go -destination=mocks.go -package=investservice

type InstrumentRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Instrument, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Instrument, error)
	AddSubscribed(ctx context.Context, id int, points int64) (*domain.Instrument, error)
	List(ctx context.Context) ([]domain.Instrument, error)
}
type SubscriptionRepo interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	CountForMonth(ctx context.Context, userID, instrumentID int, at time.Time) (int, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Subscription, error)
	FindDue(ctx context.Context, userID int, now time.Time, limit uint32) ([]domain.Subscription, error)
	ClearReturn(ctx context.Context, subscriptionID int, expectedAmount int64) (bool, error)
}
type WalletService interface {
	ApplyDelta(ctx context.Context, userID int, pointsDelta int64, balanceDelta float64) (*domain.Wallet, error)
}

const (
	// InstrumentActive accepts subscriptions.
	InstrumentActive string = "ACTIVE"
	// InstrumentCompleted reached its goal and accepts no more.
	InstrumentCompleted string = "COMPLETED"
)

// A subscription's committed points pick exactly one tier, which fixes both
// the return rate and the maturity period.
type tier struct {
	minPoints int64
	maxPoints int64
	rate      float64
	period    time.Duration
}

var tiers = []tier{
	{minPoints: 9_000, maxPoints: 60_000, rate: 0.25, period: 180 * 24 * time.Hour},
	{minPoints: 60_001, maxPoints: 100_000, rate: 0.55, period: 365 * 24 * time.Hour},
}

var (
	ErrInvalidAmount         = errors.New("points outside subscription range")
	ErrInstrumentNotFound    = errors.New("instrument not found")
	ErrInstrumentNotActive   = errors.New("instrument is not active")
	ErrDuplicateSubscription = errors.New("already subscribed to instrument this month")
)

const settleBatchLimit = 1000

type Service struct {
	instrumentRepo   InstrumentRepo
	subscriptionRepo SubscriptionRepo
	walletService    WalletService
	txManager        pg.TXManager
}

func New(instrumentRepo InstrumentRepo, subscriptionRepo SubscriptionRepo, walletService WalletService, txManager pg.TXManager) *Service {
	return &Service{
		instrumentRepo:   instrumentRepo,
		subscriptionRepo: subscriptionRepo,
		walletService:    walletService,
		txManager:        txManager,
	}
}

func tierFor(points int64) *tier {
	for i := range tiers {
		if points >= tiers[i].minPoints && points <= tiers[i].maxPoints {
			return &tiers[i]
		}
	}
	return nil
}

// Subscribe commits points into an instrument. The whole unit — status and
// duplicate checks, wallet debit, subscription insert, total accumulation —
// runs in one transaction, so a failure after the debit rolls it back.
func (s *Service) Subscribe(ctx context.Context, userID, instrumentID int, points int64) (*domain.Subscription, error) {
	t := tierFor(points)
	if t == nil {
		return nil, ErrInvalidAmount
	}

	var sub *domain.Subscription
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		instrument, err := s.instrumentRepo.GetForUpdate(ctx, instrumentID)
		if err != nil {
			return err
		}
		if instrument == nil {
			return ErrInstrumentNotFound
		}
		if instrument.Status != InstrumentActive {
			return ErrInstrumentNotActive
		}

		now := time.Now()
		count, err := s.subscriptionRepo.CountForMonth(ctx, userID, instrumentID, now)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateSubscription
		}

		if _, err := s.walletService.ApplyDelta(ctx, userID, -points, 0); err != nil {
			return err
		}

		sub, err = s.subscriptionRepo.Create(ctx, &domain.Subscription{
			UserID:          userID,
			InstrumentID:    instrumentID,
			PointsCommitted: points,
			ReturnAmount:    int64(math.Floor(float64(points) * (1 + t.rate))),
			MaturityDate:    now.Add(t.period),
			CreatedAt:       now,
		})
		if err != nil {
			return err
		}

		if _, err := s.instrumentRepo.AddSubscribed(ctx, instrumentID, points); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("subscription created",
		zap.Int("userID", userID),
		zap.Int("instrumentID", instrumentID),
		zap.Int64("points", points),
	)
	return sub, nil
}

// SettleDueReturns credits every matured, unsettled subscription back to its
// owner's wallet, each in its own transaction. userID 0 settles all users.
// Returns the number of subscriptions settled.
func (s *Service) SettleDueReturns(ctx context.Context, userID int) (int, error) {
	due, err := s.subscriptionRepo.FindDue(ctx, userID, time.Now(), settleBatchLimit)
	if err != nil {
		zap.L().Error("failed to fetch due subscriptions", zap.Error(err))
		return 0, err
	}

	settled := 0
	for _, sub := range due {
		ok, err := s.SettleSubscription(ctx, sub)
		if err != nil {
			return settled, err
		}
		if ok {
			settled++
		}
	}
	return settled, nil
}

// SettleSubscription credits one subscription's return exactly once. The
// check-and-zero and the wallet credit share a transaction; a concurrent
// settlement of the same subscription loses the conditional update and
// reports false.
func (s *Service) SettleSubscription(ctx context.Context, sub domain.Subscription) (bool, error) {
	if sub.ReturnAmount <= 0 {
		return false, nil
	}

	settled := false
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.subscriptionRepo.ClearReturn(ctx, sub.ID, sub.ReturnAmount)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, err := s.walletService.ApplyDelta(ctx, sub.UserID, sub.ReturnAmount, 0); err != nil {
			return err
		}
		settled = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if settled {
		zap.L().Info("subscription settled",
			zap.Int("subscriptionID", sub.ID),
			zap.Int("userID", sub.UserID),
			zap.Int64("returnAmount", sub.ReturnAmount),
		)
	}
	return settled, nil
}

func (s *Service) GetSubscriptions(ctx context.Context, userID int) ([]domain.Subscription, error) {
	subs, err := s.subscriptionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch subscriptions", zap.Error(err))
		return nil, err
	}
	return subs, nil
}

func (s *Service) GetInstruments(ctx context.Context) ([]domain.Instrument, error) {
	instruments, err := s.instrumentRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to fetch instruments", zap.Error(err))
		return nil, err
	}
	return instruments, nil
}

// FindDue exposes matured unsettled subscriptions to the settlement
// scheduler.
func (s *Service) FindDue(ctx context.Context, limit uint32) ([]domain.Subscription, error) {
	return s.subscriptionRepo.FindDue(ctx, 0, time.Now(), limit)
}
