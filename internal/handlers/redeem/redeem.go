package redeem

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/greencycle/ecopoints/internal/domain"
	"github.com/greencycle/ecopoints/internal/dto"
	"github.com/greencycle/ecopoints/internal/service/redeemservice"
	"github.com/greencycle/ecopoints/internal/service/walletservice"
	"github.com/greencycle/ecopoints/pkg/auth"
	"github.com/greencycle/ecopoints/pkg/utils"
)

type Service interface {
	Redeem(ctx context.Context, userID, rewardID int) (*domain.Redemption, error)
	GetRedemptions(ctx context.Context, userID int) ([]domain.Redemption, error)
	GetRewards(ctx context.Context) ([]domain.Reward, error)
}

var validate = validator.New()

type RedeemHandler struct {
	redeemService Service
}

func New(redeemService Service) *RedeemHandler {
	return &RedeemHandler{
		redeemService: redeemService,
	}
}

// Redeem godoc
//
//	@Summary		Redeem points for a reward
//	@Description	Spend points on a catalog reward. A ticket is issued by the partner system; on any failure the points and stock are restored.
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemRequestDTO		true	"Redemption request payload"
//	@Success		200		{object}	dto.RedemptionResponseDTO	"Created redemption"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient points"
//	@Failure		404		{object}	utils.Response				"Reward not found"
//	@Failure		409		{object}	utils.Response				"Reward out of stock"
//	@Failure		502		{object}	utils.Response				"Ticket system failure"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/redemptions [post]
func (h *RedeemHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	redemption, err := h.redeemService.Redeem(r.Context(), userID, req.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, redeemservice.ErrRewardNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, redeemservice.ErrOutOfStock):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, redeemservice.ErrTicketIssuance):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRedemptionDTO(*redemption))
}

// GetRedemptions godoc
//
//	@Summary		Get redemption history
//	@Description	Get the authenticated user's redemptions, newest first
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RedemptionResponseDTO	"Redemptions"
//	@Success		204	{object}	utils.Response				"No redemptions found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/redemptions [get]
func (h *RedeemHandler) GetRedemptions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	redemptions, err := h.redeemService.GetRedemptions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch redemptions")
		return
	}

	if len(redemptions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Redemptions not found")
		return
	}

	response := make([]dto.RedemptionResponseDTO, len(redemptions))
	for i, rd := range redemptions {
		response[i] = toRedemptionDTO(rd)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRewards godoc
//
//	@Summary		List rewards
//	@Description	List catalog rewards with cost and remaining stock
//	@Tags			Redemptions
//	@Produce		json
//	@Success		200	{array}		dto.RewardResponseDTO	"Rewards"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/rewards [get]
func (h *RedeemHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.redeemService.GetRewards(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rewards")
		return
	}

	response := make([]dto.RewardResponseDTO, len(rewards))
	for i, reward := range rewards {
		response[i] = dto.RewardResponseDTO{
			ID:    reward.ID,
			Name:  reward.Name,
			Cost:  reward.Cost,
			Stock: reward.Stock,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toRedemptionDTO(rd domain.Redemption) dto.RedemptionResponseDTO {
	return dto.RedemptionResponseDTO{
		ID:          rd.ID,
		RewardID:    rd.RewardID,
		PointsSpent: rd.PointsSpent,
		Status:      rd.Status,
		TicketRef:   rd.TicketRef,
		CreatedAt:   rd.CreatedAt,
	}
}
