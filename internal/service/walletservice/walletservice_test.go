package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/greencycle/ecopoints/internal/domain"
	"github.com/greencycle/ecopoints/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockExchangeRepo, *MockUserRepo, *MockNotifier, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	exchangeRepo := NewMockExchangeRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(walletRepo, exchangeRepo, userRepo, notifier, txManager)
	defer ctrl.Finish()
	return service, walletRepo, exchangeRepo, userRepo, notifier, txManager
}

func inTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	})
}

func TestGetWallet(t *testing.T) {
	service, walletRepo, _, _, _, _ := NewMock(t)
	tests := []struct {
		name           string
		userID         int
		prepareMock    func()
		expectedWallet *domain.Wallet
		expectedError  error
	}{
		{
			name:   "Existing wallet",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:  1,
					Points:  10000,
					Balance: 250.5,
				}, nil)
			},
			expectedWallet: &domain.Wallet{
				UserID:  1,
				Points:  10000,
				Balance: 250.5,
			},
		},
		{
			name:   "Wallet created on first access",
			userID: 2,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 2).Return(nil, nil)
				walletRepo.EXPECT().Create(gomock.Any(), 2).Return(&domain.Wallet{UserID: 2}, nil)
			},
			expectedWallet: &domain.Wallet{UserID: 2},
		},
		{
			name:   "Error retrieving wallet",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wallet, err := service.GetWallet(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWallet, wallet)
			}
		})
	}
}

func TestApplyDelta(t *testing.T) {
	service, walletRepo, _, _, _, _ := NewMock(t)
	tests := []struct {
		name          string
		pointsDelta   int64
		balanceDelta  float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:        "Successful debit",
			pointsDelta: -500,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Points: 1000}, nil)
				walletRepo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(-500), 0.0).Return(&domain.Wallet{UserID: 1, Points: 500}, nil)
			},
		},
		{
			name:        "Refused delta maps to insufficient funds",
			pointsDelta: -5000,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Points: 1000}, nil)
				walletRepo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(-5000), 0.0).Return(nil, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:        "Repo error",
			pointsDelta: -500,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Points: 1000}, nil)
				walletRepo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(-500), 0.0).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, err := service.ApplyDelta(context.Background(), 1, tt.pointsDelta, tt.balanceDelta)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransfer(t *testing.T) {
	service, walletRepo, _, userRepo, notifier, txManager := NewMock(t)
	tests := []struct {
		name          string
		toLogin       string
		amount        float64
		kind          TransferKind
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Successful points transfer",
			toLogin: "recipient",
			amount:  500,
			kind:    TransferPoints,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "recipient").Return(&domain.User{ID: 2, Login: "recipient"}, nil)
				inTx(txManager)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Points: 1000}, nil)
				walletRepo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(-500), 0.0).Return(&domain.Wallet{UserID: 1, Points: 500}, nil)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 2).Return(nil, nil)
				walletRepo.EXPECT().Create(gomock.Any(), 2).Return(&domain.Wallet{UserID: 2}, nil)
				walletRepo.EXPECT().ApplyDelta(gomock.Any(), 2, int64(500), 0.0).Return(&domain.Wallet{UserID: 2, Points: 500}, nil)
				notifier.EXPECT().Notify(gomock.Any(), 2, gomock.Any(), "transfer", gomock.Any()).Return(nil)
			},
		},
		{
			name:    "Successful balance transfer survives notify failure",
			toLogin: "recipient",
			amount:  25.5,
			kind:    TransferBalance,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "recipient").Return(&domain.User{ID: 2, Login: "recipient"}, nil)
				inTx(txManager)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Balance: 100}, nil)
				walletRepo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(0), -25.5).Return(&domain.Wallet{UserID: 1, Balance: 74.5}, nil)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 2).Return(&domain.Wallet{UserID: 2}, nil)
				walletRepo.EXPECT().ApplyDelta(gomock.Any(), 2, int64(0), 25.5).Return(&domain.Wallet{UserID: 2, Balance: 25.5}, nil)
				notifier.EXPECT().Notify(gomock.Any(), 2, gomock.Any(), "transfer", gomock.Any()).Return(errors.New("notify down"))
			},
		},
		{
			name:          "Negative amount",
			toLogin:       "recipient",
			amount:        -10,
			kind:          TransferPoints,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Fractional points amount",
			toLogin:       "recipient",
			amount:        10.5,
			kind:          TransferPoints,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:    "Recipient not found",
			toLogin: "ghost",
			amount:  500,
			kind:    TransferPoints,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "ghost").Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:    "Transfer to self",
			toLogin: "sender",
			amount:  500,
			kind:    TransferPoints,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "sender").Return(&domain.User{ID: 1, Login: "sender"}, nil)
			},
			expectedError: ErrSelfTransfer,
		},
		{
			name:    "Insufficient funds rolls back",
			toLogin: "recipient",
			amount:  5000,
			kind:    TransferPoints,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "recipient").Return(&domain.User{ID: 2, Login: "recipient"}, nil)
				inTx(txManager)
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Points: 1000}, nil)
				walletRepo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(-5000), 0.0).Return(nil, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Transfer(context.Background(), 1, tt.toLogin, tt.amount, tt.kind)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransferAppliesDeltasInUserIDOrder(t *testing.T) {
	service, walletRepo, _, userRepo, notifier, txManager := NewMock(t)

	// Sender 2, recipient 1: the credit to the lower id must be applied
	// first so concurrent opposite transfers lock rows in the same order.
	userRepo.EXPECT().FindByLogin(gomock.Any(), "recipient").Return(&domain.User{ID: 1, Login: "recipient"}, nil)
	inTx(txManager)
	gomock.InOrder(
		walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1}, nil),
		walletRepo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(500), 0.0).Return(&domain.Wallet{UserID: 1, Points: 500}, nil),
		walletRepo.EXPECT().GetByUserID(gomock.Any(), 2).Return(&domain.Wallet{UserID: 2, Points: 1000}, nil),
		walletRepo.EXPECT().ApplyDelta(gomock.Any(), 2, int64(-500), 0.0).Return(&domain.Wallet{UserID: 2, Points: 500}, nil),
	)
	notifier.EXPECT().Notify(gomock.Any(), 1, gomock.Any(), "transfer", gomock.Any()).Return(nil)

	err := service.Transfer(context.Background(), 2, "recipient", 500, TransferPoints)

	assert.NoError(t, err)
}

func TestExchange(t *testing.T) {
	service, walletRepo, exchangeRepo, _, _, txManager := NewMock(t)
	tests := []struct {
		name           string
		points         int64
		prepareMock    func()
		expectedRecord *domain.ExchangeRecord
		expectedError  error
	}{
		{
			name:   "Successful exchange at half rate",
			points: 4000,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Points: 5000}, nil)
				inTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Points: 5000}, nil)
				exchangeRepo.EXPECT().CountForDay(gomock.Any(), 1, gomock.Any()).Return(0, nil)
				walletRepo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(-4000), 2000.0).Return(&domain.Wallet{UserID: 1, Points: 1000, Balance: 2000}, nil)
				exchangeRepo.EXPECT().CreateExchange(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, rec *domain.ExchangeRecord) (*domain.ExchangeRecord, error) {
					rec.ID = 1
					return rec, nil
				})
			},
			expectedRecord: &domain.ExchangeRecord{
				ID:              1,
				UserID:          1,
				PointsExchanged: 4000,
				BalanceObtained: 2000,
			},
		},
		{
			name:          "Odd points refused",
			points:        4001,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Below minimum",
			points:        2000,
			prepareMock:   func() {},
			expectedError: ErrBelowMinimum,
		},
		{
			name:   "Fourth exchange of the day refused",
			points: 4000,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Points: 20000}, nil)
				inTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Points: 20000}, nil)
				exchangeRepo.EXPECT().CountForDay(gomock.Any(), 1, gomock.Any()).Return(3, nil)
			},
			expectedError: ErrRateLimitExceeded,
		},
		{
			name:   "Insufficient points",
			points: 4000,
			prepareMock: func() {
				walletRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Points: 1000}, nil)
				inTx(txManager)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Points: 1000}, nil)
				exchangeRepo.EXPECT().CountForDay(gomock.Any(), 1, gomock.Any()).Return(0, nil)
				walletRepo.EXPECT().ApplyDelta(gomock.Any(), 1, int64(-4000), 2000.0).Return(nil, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			record, err := service.Exchange(context.Background(), 1, tt.points)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRecord.PointsExchanged, record.PointsExchanged)
				assert.Equal(t, tt.expectedRecord.BalanceObtained, record.BalanceObtained)
			}
		})
	}
}

func TestGetExchanges(t *testing.T) {
	service, _, exchangeRepo, _, _, _ := NewMock(t)
	now := time.Now()
	tests := []struct {
		name            string
		prepareMock     func()
		expectedRecords []domain.ExchangeRecord
		expectedError   error
	}{
		{
			name: "Retrieve exchanges successfully",
			prepareMock: func() {
				exchangeRepo.EXPECT().GetExchangesByUserID(gomock.Any(), 1).Return([]domain.ExchangeRecord{
					{UserID: 1, PointsExchanged: 4000, BalanceObtained: 2000, OccurredAt: now},
				}, nil)
			},
			expectedRecords: []domain.ExchangeRecord{
				{UserID: 1, PointsExchanged: 4000, BalanceObtained: 2000, OccurredAt: now},
			},
		},
		{
			name: "Error retrieving exchanges",
			prepareMock: func() {
				exchangeRepo.EXPECT().GetExchangesByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			records, err := service.GetExchanges(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRecords, records)
			}
		})
	}
}
