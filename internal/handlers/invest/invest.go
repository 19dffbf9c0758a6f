package invest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/greencycle/ecopoints/internal/domain"
	"github.com/greencycle/ecopoints/internal/dto"
	"github.com/greencycle/ecopoints/internal/service/investservice"
	"github.com/greencycle/ecopoints/internal/service/walletservice"
	"github.com/greencycle/ecopoints/pkg/auth"
	"github.com/greencycle/ecopoints/pkg/utils"
)

type Service interface {
	Subscribe(ctx context.Context, userID, instrumentID int, points int64) (*domain.Subscription, error)
	SettleDueReturns(ctx context.Context, userID int) (int, error)
	GetSubscriptions(ctx context.Context, userID int) ([]domain.Subscription, error)
	GetInstruments(ctx context.Context) ([]domain.Instrument, error)
}

var validate = validator.New()

type InvestHandler struct {
	investService Service
}

func New(investService Service) *InvestHandler {
	return &InvestHandler{
		investService: investService,
	}
}

// Subscribe godoc
//
//	@Summary		Subscribe points into an instrument
//	@Description	Commit points into an active instrument until maturity. One subscription per instrument per calendar month.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubscribeRequestDTO		true	"Subscription request payload"
//	@Success		200		{object}	dto.SubscriptionResponseDTO	"Created subscription"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient points"
//	@Failure		404		{object}	utils.Response				"Instrument not found"
//	@Failure		409		{object}	utils.Response				"Instrument closed or duplicate subscription"
//	@Failure		422		{object}	utils.Response				"Points outside subscription range"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/investments [post]
func (h *InvestHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SubscribeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.investService.Subscribe(r.Context(), userID, req.InstrumentID, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, investservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, investservice.ErrInstrumentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, investservice.ErrInstrumentNotActive), errors.Is(err, investservice.ErrDuplicateSubscription):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubscriptionDTO(*sub))
}

// GetSubscriptions godoc
//
//	@Summary		Get subscriptions
//	@Description	Get the authenticated user's subscriptions, newest first
//	@Tags			Investments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SubscriptionResponseDTO	"Subscriptions"
//	@Success		204	{object}	utils.Response				"No subscriptions found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/investments [get]
func (h *InvestHandler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	subs, err := h.investService.GetSubscriptions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch subscriptions")
		return
	}

	if len(subs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Subscriptions not found")
		return
	}

	response := make([]dto.SubscriptionResponseDTO, len(subs))
	for i, sub := range subs {
		response[i] = toSubscriptionDTO(sub)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ApplyReturns godoc
//
//	@Summary		Apply matured returns
//	@Description	Credit returns of the authenticated user's matured subscriptions. Safe to call while the scheduled settlement runs.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ApplyReturnsResponseDTO	"Number of subscriptions settled"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/investments/returns [post]
func (h *InvestHandler) ApplyReturns(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	settled, err := h.investService.SettleDueReturns(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to apply returns")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ApplyReturnsResponseDTO{Settled: settled})
}

// GetInstruments godoc
//
//	@Summary		List instruments
//	@Description	List all investment instruments with their funding progress
//	@Tags			Investments
//	@Produce		json
//	@Success		200	{array}		dto.InstrumentResponseDTO	"Instruments"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/instruments [get]
func (h *InvestHandler) GetInstruments(w http.ResponseWriter, r *http.Request) {
	instruments, err := h.investService.GetInstruments(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch instruments")
		return
	}

	response := make([]dto.InstrumentResponseDTO, len(instruments))
	for i, ins := range instruments {
		response[i] = dto.InstrumentResponseDTO{
			ID:              ins.ID,
			Name:            ins.Name,
			TotalSubscribed: ins.TotalSubscribed,
			Goal:            ins.Goal,
			Status:          ins.Status,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toSubscriptionDTO(sub domain.Subscription) dto.SubscriptionResponseDTO {
	return dto.SubscriptionResponseDTO{
		ID:           sub.ID,
		InstrumentID: sub.InstrumentID,
		Points:       sub.PointsCommitted,
		ReturnAmount: sub.ReturnAmount,
		MaturityDate: sub.MaturityDate,
		CreatedAt:    sub.CreatedAt,
	}
}
