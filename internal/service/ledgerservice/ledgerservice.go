package ledgerservice

import (
	"context"
	"strings"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"

	"github.com/eclisbank/solenbank/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

const receiptNoLen = 16

type Repo interface {
	CreateTransfer(ctx context.Context, t *domain.Transaction) error
	Balance(ctx context.Context, accountID int64) (int64, error)
	FindHistory(ctx context.Context, accountID int64, cutoff time.Time, limit int) ([]domain.Transaction, error)
	FindByReceipt(ctx context.Context, receiptNo string) (*domain.Transaction, error)
}

type AccountRepo interface {
	FindAccountByID(ctx context.Context, id int64) (*domain.Account, error)
}

type Roles interface {
	IsAdmin(ctx context.Context, tgUserID int64) (bool, error)
}

type Service struct {
	repo        Repo
	accountRepo AccountRepo
	roles       Roles
}

func New(repo Repo, accountRepo AccountRepo, roles Roles) *Service {
	return &Service{
		repo:        repo,
		accountRepo: accountRepo,
		roles:       roles,
	}
}

// Transfer appends exactly one ledger row, or nothing. The repo runs the
// balance check and the insert in one DB transaction; validation failures
// never reach the store.
func (s *Service) Transfer(ctx context.Context, fromID, toID, amount int64, description string, actorID int64, forced bool) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}
	if fromID == toID {
		return nil, domain.ErrSameAccount
	}

	if forced {
		isAdmin, err := s.roles.IsAdmin(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if !isAdmin {
			return nil, domain.ErrPermissionDenied
		}
	}

	receiptNo := goluhn.Generate(receiptNoLen)

	status := domain.StatusSuccess
	if forced {
		status = domain.StatusForced
	}

	t := &domain.Transaction{
		ReceiptNo:     receiptNo,
		TsUTC:         time.Now().UTC(),
		FromAccountID: &fromID,
		ToAccountID:   &toID,
		Amount:        amount,
		Status:        status,
		Description:   description,
		CreatedByTgID: actorID,
		Forced:        forced,
	}

	if err := s.repo.CreateTransfer(ctx, t); err != nil {
		if err == domain.ErrInsufficientFunds || err == domain.ErrAccountNotFound {
			return nil, err
		}
		zap.L().Error("transfer failed", zap.Error(err))
		return nil, err
	}

	zap.L().Info("transfer committed",
		zap.String("receipt_no", t.ReceiptNo),
		zap.Int64("from", fromID),
		zap.Int64("to", toID),
		zap.Int64("amount", amount),
		zap.Bool("forced", forced))
	return t, nil
}

// Balance distinguishes "no such account" from a genuine zero balance.
func (s *Service) Balance(ctx context.Context, accountID int64) (int64, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, domain.ErrAccountNotFound
	}
	return s.repo.Balance(ctx, accountID)
}

func (s *Service) RecentHistory(ctx context.Context, accountID int64, windowDays, limit int) ([]domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays)
	return s.repo.FindHistory(ctx, accountID, cutoff, limit)
}

func (s *Service) GetByReceipt(ctx context.Context, receiptNo string) (*domain.Transaction, error) {
	t, err := s.repo.FindByReceipt(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrReceiptNotFound
	}
	return t, nil
}
