package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/eclisbank/solenbank/internal/domain"
	"github.com/eclisbank/solenbank/internal/dto"
	"github.com/eclisbank/solenbank/pkg/utils"
)

//go:generate mockgen -source=accounts.go -destination=accounts_mock.go -package=accounts

type Service interface {
	EnsureOwner(ctx context.Context, tgUserID int64) error
	CreateAccount(ctx context.Context, tgUserID int64, kind, label string, makeActive bool) (int64, error)
	ListAccounts(ctx context.Context, tgUserID int64) (*int64, []domain.Account, error)
	SetActiveAccount(ctx context.Context, tgUserID, accountID int64) error
	GetActiveAccount(ctx context.Context, tgUserID int64) (*domain.Account, error)
	EnsureSystemPool(ctx context.Context) (int64, error)
}

type AccountsHandler struct {
	accountService Service
}

func New(accountService Service) *AccountsHandler {
	return &AccountsHandler{
		accountService: accountService,
	}
}

// CreateAccount godoc
//
//	@Summary		Create an account
//	@Description	Create a new account for an owner, optionally making it the owner's active account
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAccountRequestDTO	true	"Create account request body"
//	@Success		200		{object}	dto.CreateAccountResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid kind or label"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.accountService.CreateAccount(r.Context(), req.OwnerID, req.Kind, req.Label, req.MakeActive)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidKind), errors.Is(err, domain.ErrInvalidLabel):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateAccountResponseDTO{AccountID: id})
}

// ListAccounts godoc
//
//	@Summary		List accounts of an owner
//	@Description	List all accounts of the owner in insertion order, together with the active account pointer
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			owner_id	query		int	true	"Owner telegram user id"
//	@Success		200	{object}	dto.ListAccountsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid owner id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [get]
func (h *AccountsHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.ParseInt(r.URL.Query().Get("owner_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid owner id")
		return
	}

	activeID, accounts, err := h.accountService.ListAccounts(r.Context(), ownerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.ListAccountsResponseDTO{
		ActiveAccountID: activeID,
		Accounts:        make([]dto.AccountDTO, len(accounts)),
	}
	for i, account := range accounts {
		response.Accounts[i] = toAccountDTO(account)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetActiveAccount godoc
//
//	@Summary		Set the active account
//	@Description	Switch the owner's active account; the account must belong to the owner and be active
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetActiveAccountRequestDTO	true	"Set active account request body"
//	@Success		200		{string}	string			"Active account updated"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Account not accessible"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/active [post]
func (h *AccountsHandler) SetActiveAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.SetActiveAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.accountService.SetActiveAccount(r.Context(), req.OwnerID, req.AccountID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccessDenied):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "active account updated")
}

// GetActiveAccount godoc
//
//	@Summary		Get the active account
//	@Description	Return the owner's currently selected account, or 204 when the owner has none
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			owner_id	query		int	true	"Owner telegram user id"
//	@Success		200	{object}	dto.AccountDTO
//	@Success		204	{object}	utils.Response	"No active account"
//	@Failure		400	{object}	utils.Response	"Invalid owner id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/active [get]
func (h *AccountsHandler) GetActiveAccount(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.ParseInt(r.URL.Query().Get("owner_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid owner id")
		return
	}

	account, err := h.accountService.GetActiveAccount(r.Context(), ownerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if account == nil {
		utils.RespondWithError(w, http.StatusNoContent, "No active account")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(*account))
}

func toAccountDTO(account domain.Account) dto.AccountDTO {
	return dto.AccountDTO{
		ID:        account.ID,
		OwnerID:   account.OwnerTgID,
		Kind:      account.Kind,
		Label:     account.Label,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
	}
}
