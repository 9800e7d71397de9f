package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/eclisbank/solenbank/docs"
	"github.com/eclisbank/solenbank/internal/handlers/accounts"
	"github.com/eclisbank/solenbank/internal/handlers/admin"
	"github.com/eclisbank/solenbank/internal/handlers/gateway"
	"github.com/eclisbank/solenbank/internal/handlers/ledger"
	"github.com/eclisbank/solenbank/internal/handlers/payroll"
	"github.com/eclisbank/solenbank/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    gateway.NewMockService(ctrl),
		AccountService: accounts.NewMockService(ctrl),
		LedgerService:  ledger.NewMockService(ctrl),
		RoleService:    admin.NewMockService(ctrl),
		PayrollService: payroll.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGatewayHandler := NewMockGatewayHandler(ctrl)
	mockAccountsHandler := NewMockAccountsHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)
	mockPayrollHandler := NewMockPayrollHandler(ctrl)

	mockGatewayHandler.EXPECT().Token(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountsHandler.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountsHandler.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountsHandler.EXPECT().SetActiveAccount(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountsHandler.EXPECT().GetActiveAccount(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Transfer(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetByReceipt(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().SeedOwner(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetRoles(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().AddAdmin(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().RemoveAdmin(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().EnsurePool(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayrollHandler.EXPECT().RegisterBusiness(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayrollHandler.EXPECT().AddStaff(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayrollHandler.EXPECT().ListStaff(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayrollHandler.EXPECT().RunPayroll(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		GatewayHandler:  mockGatewayHandler,
		AccountsHandler: mockAccountsHandler,
		LedgerHandler:   mockLedgerHandler,
		AdminHandler:    mockAdminHandler,
		PayrollHandler:  mockPayrollHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/gateway/token", http.StatusOK},
		{"POST", "/api/accounts/", http.StatusUnauthorized},
		{"GET", "/api/accounts/", http.StatusUnauthorized},
		{"POST", "/api/accounts/active", http.StatusUnauthorized},
		{"GET", "/api/accounts/active", http.StatusUnauthorized},
		{"POST", "/api/ledger/transfers", http.StatusUnauthorized},
		{"GET", "/api/ledger/balance/1", http.StatusUnauthorized},
		{"GET", "/api/ledger/history/1", http.StatusUnauthorized},
		{"GET", "/api/ledger/receipts/1234567890123452", http.StatusUnauthorized},
		{"POST", "/api/admin/owner", http.StatusUnauthorized},
		{"GET", "/api/admin/roles/42", http.StatusUnauthorized},
		{"POST", "/api/admin/admins", http.StatusUnauthorized},
		{"POST", "/api/admin/admins/remove", http.StatusUnauthorized},
		{"POST", "/api/admin/pool", http.StatusUnauthorized},
		{"POST", "/api/payroll/business", http.StatusUnauthorized},
		{"POST", "/api/payroll/staff", http.StatusUnauthorized},
		{"GET", "/api/payroll/staff", http.StatusUnauthorized},
		{"POST", "/api/payroll/runs", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
