package roleservice

import (
	"context"

	"github.com/eclisbank/solenbank/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=roleservice.go -destination=roleservice_mock.go -package=roleservice

type Repo interface {
	GetOwnerID(ctx context.Context) (*int64, error)
	SeedOwner(ctx context.Context, tgUserID int64) error
	IsActiveAdmin(ctx context.Context, tgUserID int64) (bool, error)
	UpsertAdmin(ctx context.Context, tgUserID int64) error
	DeactivateAdmin(ctx context.Context, tgUserID int64) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// SeedOwner is the one-time bootstrap. Once an owner exists the seed is
// locked for good; re-seeding fails even for the current owner.
func (s *Service) SeedOwner(ctx context.Context, tgUserID int64) error {
	if err := s.repo.SeedOwner(ctx, tgUserID); err != nil {
		return err
	}
	zap.L().Info("owner seeded", zap.Int64("owner", tgUserID))
	return nil
}

func (s *Service) IsOwner(ctx context.Context, tgUserID int64) (bool, error) {
	ownerID, err := s.repo.GetOwnerID(ctx)
	if err != nil {
		return false, err
	}
	return ownerID != nil && *ownerID == tgUserID, nil
}

// IsAdmin treats the owner as implicitly admin.
func (s *Service) IsAdmin(ctx context.Context, tgUserID int64) (bool, error) {
	isOwner, err := s.IsOwner(ctx, tgUserID)
	if err != nil {
		return false, err
	}
	if isOwner {
		return true, nil
	}
	return s.repo.IsActiveAdmin(ctx, tgUserID)
}

func (s *Service) AddAdmin(ctx context.Context, actorID, tgUserID int64) error {
	isOwner, err := s.IsOwner(ctx, actorID)
	if err != nil {
		return err
	}
	if !isOwner {
		return domain.ErrPermissionDenied
	}
	if err := s.repo.UpsertAdmin(ctx, tgUserID); err != nil {
		return err
	}
	zap.L().Info("admin added", zap.Int64("admin", tgUserID), zap.Int64("by", actorID))
	return nil
}

func (s *Service) RemoveAdmin(ctx context.Context, actorID, tgUserID int64) error {
	isOwner, err := s.IsOwner(ctx, actorID)
	if err != nil {
		return err
	}
	if !isOwner {
		return domain.ErrPermissionDenied
	}
	if err := s.repo.DeactivateAdmin(ctx, tgUserID); err != nil {
		return err
	}
	zap.L().Info("admin removed", zap.Int64("admin", tgUserID), zap.Int64("by", actorID))
	return nil
}
