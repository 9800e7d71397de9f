package service

import (
	"github.com/eclisbank/solenbank/internal/config"
	"github.com/eclisbank/solenbank/internal/handlers/accounts"
	"github.com/eclisbank/solenbank/internal/handlers/admin"
	"github.com/eclisbank/solenbank/internal/handlers/gateway"
	"github.com/eclisbank/solenbank/internal/handlers/ledger"
	"github.com/eclisbank/solenbank/internal/handlers/payroll"

	pkgauth "github.com/eclisbank/solenbank/pkg/auth"

	"github.com/eclisbank/solenbank/internal/repo"
	"github.com/eclisbank/solenbank/internal/service/accountservice"
	"github.com/eclisbank/solenbank/internal/service/authservice"
	"github.com/eclisbank/solenbank/internal/service/ledgerservice"
	"github.com/eclisbank/solenbank/internal/service/payrollservice"
	"github.com/eclisbank/solenbank/internal/service/roleservice"
)

type Services struct {
	AuthService    gateway.Service
	AccountService accounts.Service
	LedgerService  ledger.Service
	RoleService    admin.Service
	PayrollService payroll.Service
}

func New(cfg *config.Config, repo *repo.Repositories) *Services {
	roleService := roleservice.New(repo.RoleRepo)
	accountService := accountservice.New(repo.AccountRepo)
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.AccountRepo, roleService)
	payrollService := payrollservice.New(repo.PayrollRepo, repo.AccountRepo, ledgerService, roleService)
	authService := authservice.New(cfg.GatewaySecretHash, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		AccountService: accountService,
		LedgerService:  ledgerService,
		RoleService:    roleService,
		PayrollService: payrollService,
	}
}
