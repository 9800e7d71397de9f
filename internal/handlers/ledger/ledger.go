package ledger

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
	"github.com/eclisbank/solenbank/pkg/validate"
)

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=ledger

const (
	defaultHistoryDays  = 7
	defaultHistoryLimit = 50
)

type Service interface {
	Transfer(ctx context.Context, fromID, toID, amount int64, description string, actorID int64, forced bool) (*domain.Transaction, error)
	Balance(ctx context.Context, accountID int64) (int64, error)
	RecentHistory(ctx context.Context, accountID int64, windowDays, limit int) ([]domain.Transaction, error)
	GetByReceipt(ctx context.Context, receiptNo string) (*domain.Transaction, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// Transfer godoc
//
//	@Summary		Transfer between accounts
//	@Description	Atomically move an amount between two accounts; forced transfers bypass the balance check and require an admin actor
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request body"
//	@Success		200		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount, description or account pair"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"Forced transfer requires admin"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ledger/transfers [post]
func (h *LedgerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.ledgerService.Transfer(r.Context(), req.FromAccountID, req.ToAccountID, req.Amount, req.Description, req.ActorID, req.Forced)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrEmptyDescription),
			errors.Is(err, domain.ErrSameAccount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrPermissionDenied):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(*t))
}

// GetBalance godoc
//
//	@Summary		Get account balance
//	@Description	Compute the ledger-derived balance of an account
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			accountID	path		int	true	"Account id"
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid account id"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ledger/balance/{accountID} [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	balance, err := h.ledgerService.Balance(r.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{AccountID: accountID, Balance: balance})
}

// GetHistory godoc
//
//	@Summary		Get recent account history
//	@Description	List transactions touching the account within the window, newest first
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			accountID	path		int	true	"Account id"
//	@Param			days		query		int	false	"Window in days"	default(7)
//	@Param			limit		query		int	false	"Max rows"			default(50)
//	@Success		200	{array}		dto.TransactionDTO
//	@Failure		400	{object}	utils.Response	"Invalid account id"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ledger/history/{accountID} [get]
func (h *LedgerHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	days := defaultHistoryDays
	if v := r.URL.Query().Get("days"); v != "" {
		if days, err = strconv.Atoi(v); err != nil || days <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid days")
			return
		}
	}
	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	history, err := h.ledgerService.RecentHistory(r.Context(), accountID, days, limit)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.TransactionDTO, len(history))
	for i, t := range history {
		response[i] = toTransactionDTO(t)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetByReceipt godoc
//
//	@Summary		Get a transaction by receipt number
//	@Description	Look up one committed ledger row by its receipt number
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			receiptNo	path		string	true	"Receipt number"
//	@Success		200	{object}	dto.TransactionDTO
//	@Failure		404	{object}	utils.Response	"Receipt not found"
//	@Failure		422	{object}	utils.Response	"Invalid receipt number"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ledger/receipts/{receiptNo} [get]
func (h *LedgerHandler) GetByReceipt(w http.ResponseWriter, r *http.Request) {
	receiptNo := chi.URLParam(r, "receiptNo")

	if ok := validate.IsReceiptNo(receiptNo); !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid receipt number")
		return
	}

	t, err := h.ledgerService.GetByReceipt(r.Context(), receiptNo)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReceiptNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(*t))
}

func toTransactionDTO(t domain.Transaction) dto.TransactionDTO {
	return dto.TransactionDTO{
		ReceiptNo:     t.ReceiptNo,
		TsUTC:         t.TsUTC,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Status:        t.Status,
		Description:   t.Description,
		CreatedByID:   t.CreatedByTgID,
		Forced:        t.Forced,
	}
}
