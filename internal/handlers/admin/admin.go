package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eclisbank/solenbank/internal/domain"
	"github.com/eclisbank/solenbank/internal/dto"
	"github.com/eclisbank/solenbank/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=admin

type Service interface {
	SeedOwner(ctx context.Context, tgUserID int64) error
	IsOwner(ctx context.Context, tgUserID int64) (bool, error)
	IsAdmin(ctx context.Context, tgUserID int64) (bool, error)
	AddAdmin(ctx context.Context, actorID, tgUserID int64) error
	RemoveAdmin(ctx context.Context, actorID, tgUserID int64) error
}

type Pool interface {
	EnsureSystemPool(ctx context.Context) (int64, error)
}

type AdminHandler struct {
	roleService Service
	pool        Pool
}

func New(roleService Service, pool Pool) *AdminHandler {
	return &AdminHandler{
		roleService: roleService,
		pool:        pool,
	}
}

// SeedOwner godoc
//
//	@Summary		Seed the owner
//	@Description	One-time bootstrap of the owner role; fails once an owner exists
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SeedOwnerRequestDTO	true	"Seed owner request body"
//	@Success		200		{string}	string			"Owner seeded"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Owner already set"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/owner [post]
func (h *AdminHandler) SeedOwner(w http.ResponseWriter, r *http.Request) {
	var req dto.SeedOwnerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.roleService.SeedOwner(r.Context(), req.TgUserID); err != nil {
		switch {
		case errors.Is(err, domain.ErrOwnerAlreadySet):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "owner seeded")
}

// GetRoles godoc
//
//	@Summary		Get roles of a user
//	@Description	Report whether a telegram user is the owner and/or an admin
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			tgUserID	path		int	true	"Telegram user id"
//	@Success		200	{object}	dto.RolesResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/roles/{tgUserID} [get]
func (h *AdminHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	tgUserID, err := strconv.ParseInt(chi.URLParam(r, "tgUserID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	isOwner, err := h.roleService.IsOwner(r.Context(), tgUserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	isAdmin, err := h.roleService.IsAdmin(r.Context(), tgUserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RolesResponseDTO{IsOwner: isOwner, IsAdmin: isAdmin})
}

// AddAdmin godoc
//
//	@Summary		Grant admin
//	@Description	Add a telegram user to the admin allow-list; only the owner may grant
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminRequestDTO	true	"Add admin request body"
//	@Success		200		{string}	string			"Admin added"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Owner only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/admins [post]
func (h *AdminHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.roleService.AddAdmin(r.Context(), req.ActorID, req.TgUserID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPermissionDenied):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "admin added")
}

// RemoveAdmin godoc
//
//	@Summary		Revoke admin
//	@Description	Deactivate an admin allow-list entry; only the owner may revoke
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminRequestDTO	true	"Remove admin request body"
//	@Success		200		{string}	string			"Admin removed"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Owner only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/admins/remove [post]
func (h *AdminHandler) RemoveAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.roleService.RemoveAdmin(r.Context(), req.ActorID, req.TgUserID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPermissionDenied):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "admin removed")
}

// EnsurePool godoc
//
//	@Summary		Ensure the system pool account
//	@Description	Create the MAIN POOL system account if missing and return its id
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PoolResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/pool [post]
func (h *AdminHandler) EnsurePool(w http.ResponseWriter, r *http.Request) {
	id, err := h.pool.EnsureSystemPool(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PoolResponseDTO{AccountID: id})
}
