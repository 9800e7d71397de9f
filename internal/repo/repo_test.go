package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/eclisbank/solenbank/internal/pg"
	accountrepo "github.com/eclisbank/solenbank/internal/repo/account-repo"
	ledgerrepo "github.com/eclisbank/solenbank/internal/repo/ledger-repo"
	notificationrepo "github.com/eclisbank/solenbank/internal/repo/notification-repo"
	payrollrepo "github.com/eclisbank/solenbank/internal/repo/payroll-repo"
	rolerepo "github.com/eclisbank/solenbank/internal/repo/role-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.AccountRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.RoleRepo)
	assert.NotNil(t, repo.PayrollRepo)
	assert.NotNil(t, repo.NotificationRepo)

	assert.IsType(t, &accountrepo.Repository{}, repo.AccountRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &rolerepo.Repository{}, repo.RoleRepo)
	assert.IsType(t, &payrollrepo.Repository{}, repo.PayrollRepo)
	assert.IsType(t, &notificationrepo.Repository{}, repo.NotificationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
