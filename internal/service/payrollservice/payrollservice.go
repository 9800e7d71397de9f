package payrollservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/eclisbank/solenbank/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payrollservice.go -destination=payrollservice_mock.go -package=payrollservice

type Repo interface {
	UpsertBusiness(ctx context.Context, accountID int64) error
	IsBusinessRegistered(ctx context.Context, accountID int64) (bool, error)
	CreateStaff(ctx context.Context, staff *domain.Staff) (int64, error)
	ListStaff(ctx context.Context, businessAccountID int64) ([]domain.Staff, error)
	ListActiveStaff(ctx context.Context, businessAccountID int64) ([]domain.Staff, error)
	CreateRun(ctx context.Context, run *domain.PayrollRun) error
}

type AccountRepo interface {
	FindAccountByID(ctx context.Context, id int64) (*domain.Account, error)
}

type Ledger interface {
	Transfer(ctx context.Context, fromID, toID, amount int64, description string, actorID int64, forced bool) (*domain.Transaction, error)
}

type Roles interface {
	IsAdmin(ctx context.Context, tgUserID int64) (bool, error)
}

type Service struct {
	repo        Repo
	accountRepo AccountRepo
	ledger      Ledger
	roles       Roles
}

func New(repo Repo, accountRepo AccountRepo, ledger Ledger, roles Roles) *Service {
	return &Service{
		repo:        repo,
		accountRepo: accountRepo,
		ledger:      ledger,
		roles:       roles,
	}
}

// RegisterBusiness marks an existing active account payroll-eligible. Idempotent.
func (s *Service) RegisterBusiness(ctx context.Context, actorID, accountID int64) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil || !account.IsActive {
		return domain.ErrAccountNotFound
	}
	return s.repo.UpsertBusiness(ctx, accountID)
}

func (s *Service) AddStaff(ctx context.Context, actorID, businessAccountID int64, name string, payoutAccountID, monthlySalary int64, linkedTgID *int64) (int64, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return 0, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, domain.ErrInvalidName
	}
	if monthlySalary <= 0 {
		return 0, domain.ErrInvalidSalary
	}

	registered, err := s.repo.IsBusinessRegistered(ctx, businessAccountID)
	if err != nil {
		return 0, err
	}
	if !registered {
		return 0, domain.ErrBusinessNotRegistered
	}

	payout, err := s.accountRepo.FindAccountByID(ctx, payoutAccountID)
	if err != nil {
		return 0, err
	}
	if payout == nil || !payout.IsActive {
		return 0, domain.ErrAccountNotFound
	}

	return s.repo.CreateStaff(ctx, &domain.Staff{
		BusinessAccountID: businessAccountID,
		Name:              name,
		TgID:              linkedTgID,
		AccountID:         payoutAccountID,
		MonthlySalary:     monthlySalary,
	})
}

func (s *Service) ListStaff(ctx context.Context, actorID, businessAccountID int64) ([]domain.Staff, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.repo.ListStaff(ctx, businessAccountID)
}

// RunPayroll pays the active roster of a business for one calendar period.
// The lock row is inserted before any transfer: a duplicate period fails with
// zero transfers, and a partially failed run still consumes the period key.
// Failed payouts are skipped and reported, not rolled back.
func (s *Service) RunPayroll(ctx context.Context, actorID, businessAccountID int64, year, month int, note string) ([]domain.PayrollPayout, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidPeriod
	}

	note = strings.TrimSpace(note)
	if note == "" {
		note = fmt.Sprintf("Salary %d-%02d", year, month)
	}

	registered, err := s.repo.IsBusinessRegistered(ctx, businessAccountID)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, domain.ErrBusinessNotRegistered
	}

	run := &domain.PayrollRun{
		BusinessAccountID: businessAccountID,
		Year:              year,
		Month:             month,
		CreatedByTgID:     actorID,
	}
	if err := s.repo.CreateRun(ctx, run); err != nil {
		return nil, err
	}

	roster, err := s.repo.ListActiveStaff(ctx, businessAccountID)
	if err != nil {
		return nil, err
	}

	payouts := make([]domain.PayrollPayout, 0, len(roster))
	for _, staff := range roster {
		payout := domain.PayrollPayout{
			StaffID:   staff.ID,
			StaffName: staff.Name,
		}

		desc := note + " | " + staff.Name
		t, err := s.ledger.Transfer(ctx, businessAccountID, staff.AccountID, staff.MonthlySalary, desc, actorID, false)
		if err != nil {
			zap.L().Warn("payroll payout skipped",
				zap.Int64("staff_id", staff.ID),
				zap.Error(err))
			payout.Err = err
		} else {
			payout.ReceiptNo = t.ReceiptNo
		}
		payouts = append(payouts, payout)
	}

	zap.L().Info("payroll run completed",
		zap.Int64("business", businessAccountID),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("payouts", len(payouts)))
	return payouts, nil
}

func (s *Service) requireAdmin(ctx context.Context, actorID int64) error {
	isAdmin, err := s.roles.IsAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domain.ErrPermissionDenied
	}
	return nil
}
