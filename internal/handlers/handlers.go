package handlers

import (
	"net/http"

	_ "github.com/eclisbank/solenbank/docs"
	accountshandlers "github.com/eclisbank/solenbank/internal/handlers/accounts"
	adminhandlers "github.com/eclisbank/solenbank/internal/handlers/admin"
	gatewayhandlers "github.com/eclisbank/solenbank/internal/handlers/gateway"
	ledgerhandlers "github.com/eclisbank/solenbank/internal/handlers/ledger"
	payrollhandlers "github.com/eclisbank/solenbank/internal/handlers/payroll"
	"github.com/eclisbank/solenbank/internal/service"
	"github.com/eclisbank/solenbank/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type GatewayHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
}

type AccountsHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	ListAccounts(w http.ResponseWriter, r *http.Request)
	SetActiveAccount(w http.ResponseWriter, r *http.Request)
	GetActiveAccount(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	Transfer(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetByReceipt(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	SeedOwner(w http.ResponseWriter, r *http.Request)
	GetRoles(w http.ResponseWriter, r *http.Request)
	AddAdmin(w http.ResponseWriter, r *http.Request)
	RemoveAdmin(w http.ResponseWriter, r *http.Request)
	EnsurePool(w http.ResponseWriter, r *http.Request)
}

type PayrollHandler interface {
	RegisterBusiness(w http.ResponseWriter, r *http.Request)
	AddStaff(w http.ResponseWriter, r *http.Request)
	ListStaff(w http.ResponseWriter, r *http.Request)
	RunPayroll(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	GatewayHandler  GatewayHandler
	AccountsHandler AccountsHandler
	LedgerHandler   LedgerHandler
	AdminHandler    AdminHandler
	PayrollHandler  PayrollHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		GatewayHandler:  gatewayhandlers.New(s.AuthService),
		AccountsHandler: accountshandlers.New(s.AccountService),
		LedgerHandler:   ledgerhandlers.New(s.LedgerService),
		AdminHandler:    adminhandlers.New(s.RoleService, s.AccountService),
		PayrollHandler:  payrollhandlers.New(s.PayrollService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/gateway/token", h.GatewayHandler.Token)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.AccountsHandler.CreateAccount)
				r.Get("/", h.AccountsHandler.ListAccounts)
				r.Post("/active", h.AccountsHandler.SetActiveAccount)
				r.Get("/active", h.AccountsHandler.GetActiveAccount)
			})
			r.Route("/ledger", func(r chi.Router) {
				r.Post("/transfers", h.LedgerHandler.Transfer)
				r.Get("/balance/{accountID}", h.LedgerHandler.GetBalance)
				r.Get("/history/{accountID}", h.LedgerHandler.GetHistory)
				r.Get("/receipts/{receiptNo}", h.LedgerHandler.GetByReceipt)
			})
			r.Route("/admin", func(r chi.Router) {
				r.Post("/owner", h.AdminHandler.SeedOwner)
				r.Get("/roles/{tgUserID}", h.AdminHandler.GetRoles)
				r.Post("/admins", h.AdminHandler.AddAdmin)
				r.Post("/admins/remove", h.AdminHandler.RemoveAdmin)
				r.Post("/pool", h.AdminHandler.EnsurePool)
			})
			r.Route("/payroll", func(r chi.Router) {
				r.Post("/business", h.PayrollHandler.RegisterBusiness)
				r.Post("/staff", h.PayrollHandler.AddStaff)
				r.Get("/staff", h.PayrollHandler.ListStaff)
				r.Post("/runs", h.PayrollHandler.RunPayroll)
			})
		})
	})

	return r
}
