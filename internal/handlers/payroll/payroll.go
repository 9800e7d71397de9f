package payroll

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

//go:generate mockgen -source=payroll.go -destination=payroll_mock.go -package=payroll

type Service interface {
	RegisterBusiness(ctx context.Context, actorID, accountID int64) error
	AddStaff(ctx context.Context, actorID, businessAccountID int64, name string, payoutAccountID, monthlySalary int64, linkedTgID *int64) (int64, error)
	ListStaff(ctx context.Context, actorID, businessAccountID int64) ([]domain.Staff, error)
	RunPayroll(ctx context.Context, actorID, businessAccountID int64, year, month int, note string) ([]domain.PayrollPayout, error)
}

type PayrollHandler struct {
	payrollService Service
}

func New(payrollService Service) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
	}
}

// RegisterBusiness godoc
//
//	@Summary		Register a business account
//	@Description	Mark an existing active account payroll-eligible; idempotent
//	@Tags			Payroll
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterBusinessRequestDTO	true	"Register business request body"
//	@Success		200		{string}	string			"Business registered"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll/business [post]
func (h *PayrollHandler) RegisterBusiness(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterBusinessRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.payrollService.RegisterBusiness(r.Context(), req.ActorID, req.AccountID); err != nil {
		respondPayrollError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "business registered")
}

// AddStaff godoc
//
//	@Summary		Add a staff member
//	@Description	Add a staff member to a registered business with a payout account and monthly salary
//	@Tags			Payroll
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddStaffRequestDTO	true	"Add staff request body"
//	@Success		200		{object}	dto.AddStaffResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid name or salary"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		409		{object}	utils.Response	"Business not registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll/staff [post]
func (h *PayrollHandler) AddStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.AddStaffRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.payrollService.AddStaff(r.Context(), req.ActorID, req.BusinessAccountID, req.Name, req.PayoutAccountID, req.MonthlySalary, req.LinkedTgID)
	if err != nil {
		respondPayrollError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddStaffResponseDTO{StaffID: id})
}

// ListStaff godoc
//
//	@Summary		List staff of a business
//	@Description	List the whole roster of a business, active and inactive
//	@Tags			Payroll
//	@Security		BearerAuth
//	@Produce		json
//	@Param			actor_id			query		int	true	"Acting admin telegram user id"
//	@Param			business_account_id	query		int	true	"Business account id"
//	@Success		200	{array}		dto.StaffDTO
//	@Failure		400	{object}	utils.Response	"Invalid query"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll/staff [get]
func (h *PayrollHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	actorID, err := strconv.ParseInt(r.URL.Query().Get("actor_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid actor id")
		return
	}
	businessAccountID, err := strconv.ParseInt(r.URL.Query().Get("business_account_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid business account id")
		return
	}

	staff, err := h.payrollService.ListStaff(r.Context(), actorID, businessAccountID)
	if err != nil {
		respondPayrollError(w, err)
		return
	}

	response := make([]dto.StaffDTO, len(staff))
	for i, s := range staff {
		response[i] = dto.StaffDTO{
			ID:                s.ID,
			BusinessAccountID: s.BusinessAccountID,
			Name:              s.Name,
			LinkedTgID:        s.TgID,
			PayoutAccountID:   s.AccountID,
			MonthlySalary:     s.MonthlySalary,
			IsActive:          s.IsActive,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RunPayroll godoc
//
//	@Summary		Run payroll for a period
//	@Description	Pay the active roster once per (business, year, month); a duplicate period fails with zero transfers
//	@Tags			Payroll
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RunPayrollRequestDTO	true	"Run payroll request body"
//	@Success		200		{array}		dto.PayoutDTO
//	@Failure		400		{object}	utils.Response	"Invalid period"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		409		{object}	utils.Response	"Payroll already run"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payroll/runs [post]
func (h *PayrollHandler) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req dto.RunPayrollRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payouts, err := h.payrollService.RunPayroll(r.Context(), req.ActorID, req.BusinessAccountID, req.Year, req.Month, req.Note)
	if err != nil {
		respondPayrollError(w, err)
		return
	}

	response := make([]dto.PayoutDTO, len(payouts))
	for i, p := range payouts {
		response[i] = dto.PayoutDTO{
			StaffID:   p.StaffID,
			StaffName: p.StaffName,
			ReceiptNo: p.ReceiptNo,
		}
		if p.Err != nil {
			response[i].Error = p.Err.Error()
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondPayrollError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrStaffNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidSalary),
		errors.Is(err, domain.ErrInvalidPeriod):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrBusinessNotRegistered),
		errors.Is(err, domain.ErrPayrollAlreadyRun):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
