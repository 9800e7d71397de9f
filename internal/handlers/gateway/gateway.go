package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/eclisbank/solenbank/internal/dto"
	"github.com/eclisbank/solenbank/pkg/utils"
)

//go:generate mockgen -source=gateway.go -destination=gateway_mock.go -package=gateway

type Service interface {
	Authenticate(ctx context.Context, clientID, secret string) error
	GenerateToken(clientID string) (string, error)
}

type GatewayHandler struct {
	authService Service
}

func New(authService Service) *GatewayHandler {
	return &GatewayHandler{
		authService: authService,
	}
}

// Token godoc
//
//	@Summary		Authenticate a gateway client
//	@Description	Exchange the gateway client id and secret for a bearer token
//	@Tags			Gateway
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TokenRequestDTO	true	"Token request body"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/gateway/token [post]
func (h *GatewayHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.authService.Authenticate(r.Context(), req.ClientID, req.Secret); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(req.ClientID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		Message: "Gateway client authenticated",
	})
}
