package walletservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/greencycle/ecopoints/internal/domain"
	"github.com/greencycle/ecopoints/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=walletservice.go -destination=mocks.go -package=walletservice

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	Create(ctx context.Context, userID int) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	ApplyDelta(ctx context.Context, userID int, pointsDelta int64, balanceDelta float64) (*domain.Wallet, error)
}
type ExchangeRepo interface {
	CreateExchange(ctx context.Context, rec *domain.ExchangeRecord) (*domain.ExchangeRecord, error)
	CountForDay(ctx context.Context, userID int, at time.Time) (int, error)
	GetExchangesByUserID(ctx context.Context, userID int) ([]domain.ExchangeRecord, error)
}
type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
}
type Notifier interface {
	Notify(ctx context.Context, userID int, message, category string, expiry time.Time) error
}

type TransferKind string

const (
	TransferPoints  TransferKind = "POINTS"
	TransferBalance TransferKind = "BALANCE"
)

const (
	exchangeMinPoints   = 4000
	exchangeRateDivisor = 2
	exchangesPerDay     = 3
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBelowMinimum      = errors.New("exchange amount below minimum")
	ErrRateLimitExceeded = errors.New("daily exchange limit exceeded")
	ErrUserNotFound      = errors.New("user not found")
	ErrSelfTransfer      = errors.New("transfer to the same user")
)

type Service struct {
	walletRepo   WalletRepo
	exchangeRepo ExchangeRepo
	userRepo     UserRepo
	notifier     Notifier
	txManager    pg.TXManager
}

func New(walletRepo WalletRepo, exchangeRepo ExchangeRepo, userRepo UserRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo:   walletRepo,
		exchangeRepo: exchangeRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		txManager:    txManager,
	}
}

// GetWallet returns the user's wallet, creating a zeroed one on first access.
func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	wallet, err = s.walletRepo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// ApplyDelta is the single mutation entry point for wallets. It refuses any
// delta that would leave points or balance negative.
func (s *Service) ApplyDelta(ctx context.Context, userID int, pointsDelta int64, balanceDelta float64) (*domain.Wallet, error) {
	if _, err := s.GetWallet(ctx, userID); err != nil {
		return nil, err
	}
	wallet, err := s.walletRepo.ApplyDelta(ctx, userID, pointsDelta, balanceDelta)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrInsufficientFunds
	}
	return wallet, nil
}

// Transfer moves amount from the authenticated user to the user addressed by
// toLogin, in the chosen denomination. Debit and credit commit together.
func (s *Service) Transfer(ctx context.Context, fromUserID int, toLogin string, amount float64, kind TransferKind) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if kind == TransferPoints && amount != math.Trunc(amount) {
		return ErrInvalidAmount
	}

	recipient, err := s.userRepo.FindByLogin(ctx, toLogin)
	if err != nil {
		zap.L().Error("failed to resolve transfer recipient", zap.Error(err))
		return err
	}
	if recipient == nil {
		return ErrUserNotFound
	}
	if recipient.ID == fromUserID {
		return ErrSelfTransfer
	}

	var pointsDelta int64
	var balanceDelta float64
	switch kind {
	case TransferPoints:
		pointsDelta = int64(amount)
	case TransferBalance:
		balanceDelta = amount
	default:
		return ErrInvalidAmount
	}

	// Apply in ascending user id order: opposite transfers between the same
	// pair must lock the wallet rows in the same order or one deadlocks.
	first, second := fromUserID, recipient.ID
	firstPoints, firstBalance := -pointsDelta, -balanceDelta
	secondPoints, secondBalance := pointsDelta, balanceDelta
	if second < first {
		first, second = second, first
		firstPoints, secondPoints = secondPoints, firstPoints
		firstBalance, secondBalance = secondBalance, firstBalance
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ApplyDelta(ctx, first, firstPoints, firstBalance); err != nil {
			return err
		}
		if _, err := s.ApplyDelta(ctx, second, secondPoints, secondBalance); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Side effect only: a failed notification never unwinds the transfer.
	if err := s.notifier.Notify(ctx, recipient.ID, "You received a transfer", "transfer", time.Now().Add(72*time.Hour)); err != nil {
		zap.L().Error("failed to notify transfer recipient", zap.Error(err))
	}
	return nil
}

// Exchange converts points to balance at half rate, capped at three
// exchanges per user per UTC day. The wallet row lock serializes the cap
// check with the debit and the record insert.
func (s *Service) Exchange(ctx context.Context, userID int, points int64) (*domain.ExchangeRecord, error) {
	if points <= 0 || points%2 != 0 {
		return nil, ErrInvalidAmount
	}
	if points < exchangeMinPoints {
		return nil, ErrBelowMinimum
	}

	if _, err := s.GetWallet(ctx, userID); err != nil {
		return nil, err
	}

	var record *domain.ExchangeRecord
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.walletRepo.GetForUpdate(ctx, userID); err != nil {
			return err
		}

		now := time.Now().UTC()
		count, err := s.exchangeRepo.CountForDay(ctx, userID, now)
		if err != nil {
			return err
		}
		if count >= exchangesPerDay {
			return ErrRateLimitExceeded
		}

		obtained := float64(points) / exchangeRateDivisor
		wallet, err := s.walletRepo.ApplyDelta(ctx, userID, -points, obtained)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrInsufficientFunds
		}

		record, err = s.exchangeRepo.CreateExchange(ctx, &domain.ExchangeRecord{
			UserID:          userID,
			PointsExchanged: points,
			BalanceObtained: obtained,
			OccurredAt:      now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) GetExchanges(ctx context.Context, userID int) ([]domain.ExchangeRecord, error) {
	records, err := s.exchangeRepo.GetExchangesByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch exchange records", zap.Error(err))
		return nil, err
	}
	return records, nil
}
