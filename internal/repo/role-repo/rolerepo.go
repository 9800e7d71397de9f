package rolerepo

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/eclisbank/solenbank/internal/domain"
	"github.com/eclisbank/solenbank/internal/pg"
	"go.uber.org/zap"
)

const ownerKey = "OWNER_TG_ID"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetOwnerID(ctx context.Context) (*int64, error) {
	query := `
        SELECT v
        FROM meta
        WHERE k = $1
    `
	var v string
	err := r.db.QueryRow(ctx, query, ownerKey).Scan(&v)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't read owner seed", zap.Error(err))
		return nil, err
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		zap.L().Error("corrupt owner seed value", zap.Error(err))
		return nil, err
	}
	return &id, nil
}

// SeedOwner sets the owner exactly once, process-wide and store-wide. The
// uniqueness is enforced by the primary key, not by a read-then-write, so
// concurrent double-seeding still yields a single winner.
func (r *Repository) SeedOwner(ctx context.Context, tgUserID int64) error {
	query := `
        INSERT INTO meta (k, v)
        VALUES ($1, $2)
        ON CONFLICT (k) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, ownerKey, strconv.FormatInt(tgUserID, 10))
	if err != nil {
		zap.L().Error("can't seed owner", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOwnerAlreadySet
	}
	return nil
}

func (r *Repository) IsActiveAdmin(ctx context.Context, tgUserID int64) (bool, error) {
	query := `
        SELECT 1
        FROM admins
        WHERE tg_user_id = $1 AND is_active = TRUE
        LIMIT 1
    `
	var one int
	err := r.db.QueryRow(ctx, query, tgUserID).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("can't check admin", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) UpsertAdmin(ctx context.Context, tgUserID int64) error {
	query := `
        INSERT INTO admins (tg_user_id, is_active)
        VALUES ($1, TRUE)
        ON CONFLICT (tg_user_id) DO UPDATE SET is_active = TRUE
    `
	_, err := r.db.Exec(ctx, query, tgUserID)
	if err != nil {
		zap.L().Error("can't add admin", zap.Error(err))
		return err
	}
	return nil
}

// DeactivateAdmin flips the active flag; the grant row itself is kept for audit.
func (r *Repository) DeactivateAdmin(ctx context.Context, tgUserID int64) error {
	query := `
        UPDATE admins
        SET is_active = FALSE
        WHERE tg_user_id = $1
    `
	_, err := r.db.Exec(ctx, query, tgUserID)
	if err != nil {
		zap.L().Error("can't remove admin", zap.Error(err))
		return err
	}
	return nil
}
