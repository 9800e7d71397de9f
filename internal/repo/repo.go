package repo

import (
	"github.com/eclisbank/solenbank/internal/notify"
	"github.com/eclisbank/solenbank/internal/pg"
	accountrepo "github.com/eclisbank/solenbank/internal/repo/account-repo"
	ledgerrepo "github.com/eclisbank/solenbank/internal/repo/ledger-repo"
	notificationrepo "github.com/eclisbank/solenbank/internal/repo/notification-repo"
	payrollrepo "github.com/eclisbank/solenbank/internal/repo/payroll-repo"
	rolerepo "github.com/eclisbank/solenbank/internal/repo/role-repo"
	"github.com/eclisbank/solenbank/internal/service/accountservice"
	"github.com/eclisbank/solenbank/internal/service/ledgerservice"
	"github.com/eclisbank/solenbank/internal/service/payrollservice"
	"github.com/eclisbank/solenbank/internal/service/roleservice"
)

type Repositories struct {
	AccountRepo      accountservice.Repo
	LedgerRepo       ledgerservice.Repo
	RoleRepo         roleservice.Repo
	PayrollRepo      payrollservice.Repo
	NotificationRepo notify.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	accountRepo := accountrepo.New(conn)
	ledgerRepo := ledgerrepo.New(conn, txManager)
	roleRepo := rolerepo.New(conn)
	payrollRepo := payrollrepo.New(conn)
	notificationRepo := notificationrepo.New(conn)

	return &Repositories{
		AccountRepo:      accountRepo,
		LedgerRepo:       ledgerRepo,
		RoleRepo:         roleRepo,
		PayrollRepo:      payrollRepo,
		NotificationRepo: notificationRepo,
	}
}
