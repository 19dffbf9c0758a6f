package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/greencycle/ecopoints/internal/domain"
	"github.com/greencycle/ecopoints/internal/dto"
	"github.com/greencycle/ecopoints/internal/service/walletservice"
	"github.com/greencycle/ecopoints/pkg/auth"
	"github.com/greencycle/ecopoints/pkg/utils"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	Transfer(ctx context.Context, fromUserID int, toLogin string, amount float64, kind walletservice.TransferKind) error
	Exchange(ctx context.Context, userID int, points int64) (*domain.ExchangeRecord, error)
	GetExchanges(ctx context.Context, userID int) ([]domain.ExchangeRecord, error)
}

var validate = validator.New()

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Retrieve points and balance for the authenticated user. A wallet is created on first access.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Current points and balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Points:  wallet.Points,
		Balance: wallet.Balance,
	})
}

// Transfer godoc
//
//	@Summary		Transfer value to another user
//	@Description	Move points or balance from the authenticated user to the user addressed by login.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request payload"
//	@Success		200		{string}	string					"Transfer successful"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient funds"
//	@Failure		404		{object}	utils.Response			"Recipient not found"
//	@Failure		422		{object}	utils.Response			"Invalid amount or recipient"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.walletService.Transfer(r.Context(), userID, req.To, req.Amount, walletservice.TransferKind(req.Kind))
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, walletservice.ErrInvalidAmount), errors.Is(err, walletservice.ErrSelfTransfer):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "transfer successful")
}

// Exchange godoc
//
//	@Summary		Exchange points for balance
//	@Description	Convert points to balance at half rate. At most three exchanges per UTC day.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ExchangeRequestDTO	true	"Exchange request payload"
//	@Success		200		{object}	dto.ExchangeResponseDTO	"Resulting exchange record"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient points"
//	@Failure		422		{object}	utils.Response			"Invalid or below-minimum amount"
//	@Failure		429		{object}	utils.Response			"Daily exchange limit exceeded"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet/exchange [post]
func (h *WalletHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ExchangeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.walletService.Exchange(r.Context(), userID, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, walletservice.ErrRateLimitExceeded):
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		case errors.Is(err, walletservice.ErrInvalidAmount), errors.Is(err, walletservice.ErrBelowMinimum):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ExchangeResponseDTO{
		Points:          record.PointsExchanged,
		BalanceObtained: record.BalanceObtained,
		OccurredAt:      record.OccurredAt,
	})
}

// GetExchanges godoc
//
//	@Summary		Get exchange history
//	@Description	Get the authenticated user's exchange records, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ExchangeResponseDTO	"Exchange history"
//	@Success		204	{object}	utils.Response			"No exchanges found"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet/exchanges [get]
func (h *WalletHandler) GetExchanges(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	records, err := h.walletService.GetExchanges(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch exchanges")
		return
	}

	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Exchanges not found")
		return
	}

	response := make([]dto.ExchangeResponseDTO, len(records))
	for i, rec := range records {
		response[i] = dto.ExchangeResponseDTO{
			Points:          rec.PointsExchanged,
			BalanceObtained: rec.BalanceObtained,
			OccurredAt:      rec.OccurredAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
