package accountservice

import (
	"context"
	"strings"

	"github.com/eclisbank/solenbank/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=accountservice.go -destination=accountservice_mock.go -package=accountservice

type Repo interface {
	GetOwner(ctx context.Context, tgUserID int64) (*domain.Owner, error)
	CreateOwner(ctx context.Context, tgUserID int64) error
	CreateAccount(ctx context.Context, account *domain.Account) (int64, error)
	FindAccountByID(ctx context.Context, id int64) (*domain.Account, error)
	ListByOwner(ctx context.Context, tgUserID int64) ([]domain.Account, error)
	SetActiveAccount(ctx context.Context, tgUserID, accountID int64) error
	FindSystemPool(ctx context.Context) (*domain.Account, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var validKinds = map[string]struct{}{
	domain.KindPersonal:   {},
	domain.KindBusiness:   {},
	domain.KindBank:       {},
	domain.KindSystemPool: {},
}

// EnsureOwner lazily creates the owner record. Safe to call on every request.
func (s *Service) EnsureOwner(ctx context.Context, tgUserID int64) error {
	owner, err := s.repo.GetOwner(ctx, tgUserID)
	if err != nil {
		return err
	}
	if owner != nil {
		return nil
	}
	return s.repo.CreateOwner(ctx, tgUserID)
}

func (s *Service) CreateAccount(ctx context.Context, tgUserID int64, kind, label string, makeActive bool) (int64, error) {
	kind = strings.ToUpper(strings.TrimSpace(kind))
	if _, ok := validKinds[kind]; !ok {
		return 0, domain.ErrInvalidKind
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, domain.ErrInvalidLabel
	}

	if err := s.EnsureOwner(ctx, tgUserID); err != nil {
		return 0, err
	}

	id, err := s.repo.CreateAccount(ctx, &domain.Account{
		OwnerTgID: tgUserID,
		Kind:      kind,
		Label:     label,
	})
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return 0, err
	}

	if makeActive {
		if err := s.repo.SetActiveAccount(ctx, tgUserID, id); err != nil {
			return 0, err
		}
	}

	zap.L().Info("account created",
		zap.Int64("account_id", id),
		zap.Int64("owner", tgUserID),
		zap.String("kind", kind))
	return id, nil
}

func (s *Service) ListAccounts(ctx context.Context, tgUserID int64) (*int64, []domain.Account, error) {
	if err := s.EnsureOwner(ctx, tgUserID); err != nil {
		return nil, nil, err
	}

	owner, err := s.repo.GetOwner(ctx, tgUserID)
	if err != nil {
		return nil, nil, err
	}
	accounts, err := s.repo.ListByOwner(ctx, tgUserID)
	if err != nil {
		return nil, nil, err
	}
	return owner.ActiveAccountID, accounts, nil
}

func (s *Service) SetActiveAccount(ctx context.Context, tgUserID, accountID int64) error {
	if err := s.EnsureOwner(ctx, tgUserID); err != nil {
		return err
	}

	account, err := s.repo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil || account.OwnerTgID != tgUserID || !account.IsActive {
		return domain.ErrAccessDenied
	}
	return s.repo.SetActiveAccount(ctx, tgUserID, accountID)
}

// GetActiveAccount returns nil when the owner has no accounts yet; it never
// creates an account as a side effect of reading.
func (s *Service) GetActiveAccount(ctx context.Context, tgUserID int64) (*domain.Account, error) {
	activeID, accounts, err := s.ListAccounts(ctx, tgUserID)
	if err != nil {
		return nil, err
	}
	if activeID == nil {
		return nil, nil
	}
	for i := range accounts {
		if accounts[i].ID == *activeID {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// EnsureSystemPool creates (or returns) the MAIN POOL system account.
func (s *Service) EnsureSystemPool(ctx context.Context) (int64, error) {
	pool, err := s.repo.FindSystemPool(ctx)
	if err != nil {
		return 0, err
	}
	if pool != nil {
		return pool.ID, nil
	}

	id, err := s.CreateAccount(ctx, domain.SystemOwnerID, domain.KindSystemPool, "MAIN POOL", true)
	if err != nil {
		return 0, err
	}
	zap.L().Info("system pool account seeded", zap.Int64("account_id", id))
	return id, nil
}
