package redeem

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/greencycle/ecopoints/internal/domain"
	"github.com/greencycle/ecopoints/internal/dto"
	"github.com/greencycle/ecopoints/internal/service/redeemservice"
	"github.com/greencycle/ecopoints/internal/service/walletservice"
	"github.com/greencycle/ecopoints/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RedeemHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRedeemHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.RedemptionResponseDTO
	}{
		{
			name: "Successful redemption",
			body: `{"reward_id":1}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 1).
					Return(&domain.Redemption{
						ID:          1,
						UserID:      1,
						RewardID:    1,
						PointsSpent: 3000,
						Status:      redeemservice.StatusPending,
						TicketRef:   "TCK-42",
						CreatedAt:   now,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.RedemptionResponseDTO{
				ID:          1,
				RewardID:    1,
				PointsSpent: 3000,
				Status:      redeemservice.StatusPending,
				TicketRef:   "TCK-42",
			},
		},
		{
			name:          "Invalid request body",
			body:          `{"reward_id":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Reward not found",
			body: `{"reward_id":99}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 99).
					Return(nil, redeemservice.ErrRewardNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "reward not found",
		},
		{
			name: "Out of stock",
			body: `{"reward_id":1}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 1).
					Return(nil, redeemservice.ErrOutOfStock)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "reward is out of stock",
		},
		{
			name: "Insufficient points",
			body: `{"reward_id":1}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 1).
					Return(nil, walletservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient funds",
		},
		{
			name: "Ticket system failure",
			body: `{"reward_id":1}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 1).
					Return(nil, fmt.Errorf("%w: connection refused", redeemservice.ErrTicketIssuance))
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "ticket issuance failed",
		},
		{
			name: "Internal server error",
			body: `{"reward_id":1}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/redemptions", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.Redeem(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.RedemptionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody.ID, body.ID)
				assert.Equal(t, tt.expectedBody.RewardID, body.RewardID)
				assert.Equal(t, tt.expectedBody.PointsSpent, body.PointsSpent)
				assert.Equal(t, tt.expectedBody.Status, body.Status)
				assert.Equal(t, tt.expectedBody.TicketRef, body.TicketRef)
			}
		})
	}
}

func TestGetRedemptionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.RedemptionResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetRedemptions(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return([]domain.Redemption{
						{
							ID:          1,
							UserID:      1,
							RewardID:    2,
							PointsSpent: 500,
							Status:      redeemservice.StatusFulfilled,
							TicketRef:   "TCK-7",
							CreatedAt:   now,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.RedemptionResponseDTO{
				{
					ID:          1,
					RewardID:    2,
					PointsSpent: 500,
					Status:      redeemservice.StatusFulfilled,
					TicketRef:   "TCK-7",
				},
			},
		},
		{
			name: "No redemptions",
			prepareMock: func() {
				service.EXPECT().
					GetRedemptions(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return([]domain.Redemption{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetRedemptions(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/redemptions", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.GetRedemptions(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.RedemptionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, len(tt.expectedBody), len(body))
				for i := range tt.expectedBody {
					assert.Equal(t, tt.expectedBody[i].ID, body[i].ID)
					assert.Equal(t, tt.expectedBody[i].RewardID, body[i].RewardID)
					assert.Equal(t, tt.expectedBody[i].PointsSpent, body[i].PointsSpent)
					assert.Equal(t, tt.expectedBody[i].Status, body[i].Status)
					assert.Equal(t, tt.expectedBody[i].TicketRef, body[i].TicketRef)
				}
			}
		})
	}
}

func TestGetRewardsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.RewardResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetRewards(gomock.Any()).
					Return([]domain.Reward{
						{ID: 1, Name: "Reusable Bottle", Cost: 500, Stock: 200},
						{ID: 2, Name: "Tree Planting", Cost: 3000, Stock: 10},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.RewardResponseDTO{
				{ID: 1, Name: "Reusable Bottle", Cost: 500, Stock: 200},
				{ID: 2, Name: "Tree Planting", Cost: 3000, Stock: 10},
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetRewards(gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/rewards", nil)
			w := httptest.NewRecorder()

			handler.GetRewards(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.RewardResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
