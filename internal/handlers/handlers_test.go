package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/greencycle/ecopoints/docs"
	"github.com/greencycle/ecopoints/internal/handlers/auth"
	"github.com/greencycle/ecopoints/internal/handlers/invest"
	"github.com/greencycle/ecopoints/internal/handlers/redeem"
	"github.com/greencycle/ecopoints/internal/handlers/wallet"
	"github.com/greencycle/ecopoints/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:   auth.NewMockService(ctrl),
		WalletService: wallet.NewMockService(ctrl),
		InvestService: invest.NewMockService(ctrl),
		RedeemService: redeem.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockInvestHandler := NewMockInvestHandler(ctrl)
	mockRedeemHandler := NewMockRedeemHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Transfer(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Exchange(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetExchanges(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvestHandler.EXPECT().Subscribe(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvestHandler.EXPECT().GetSubscriptions(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvestHandler.EXPECT().ApplyReturns(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvestHandler.EXPECT().GetInstruments(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedeemHandler.EXPECT().Redeem(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedeemHandler.EXPECT().GetRedemptions(gomock.Any(), gomock.Any()).AnyTimes()
	mockRedeemHandler.EXPECT().GetRewards(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:   mockAuthHandler,
		WalletHandler: mockWalletHandler,
		InvestHandler: mockInvestHandler,
		RedeemHandler: mockRedeemHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/instruments", http.StatusOK},
		{"GET", "/api/rewards", http.StatusOK},
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/wallet/", http.StatusUnauthorized},
		{"POST", "/api/user/wallet/transfer", http.StatusUnauthorized},
		{"POST", "/api/user/wallet/exchange", http.StatusUnauthorized},
		{"GET", "/api/user/wallet/exchanges", http.StatusUnauthorized},
		{"POST", "/api/user/investments/", http.StatusUnauthorized},
		{"GET", "/api/user/investments/", http.StatusUnauthorized},
		{"POST", "/api/user/investments/returns", http.StatusUnauthorized},
		{"POST", "/api/user/redemptions/", http.StatusUnauthorized},
		{"GET", "/api/user/redemptions/", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
