package accountrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/eclisbank/solenbank/internal/domain"
	"github.com/eclisbank/solenbank/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetOwner(ctx context.Context, tgUserID int64) (*domain.Owner, error) {
	query := `
        SELECT tg_user_id, active_account_id, created_at
        FROM owners
        WHERE tg_user_id = $1
    `
	row := r.db.QueryRow(ctx, query, tgUserID)
	var owner domain.Owner
	err := row.Scan(&owner.TgUserID, &owner.ActiveAccountID, &owner.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get owner", zap.Error(err))
		return nil, err
	}
	return &owner, nil
}

func (r *Repository) CreateOwner(ctx context.Context, tgUserID int64) error {
	query := `
        INSERT INTO owners (tg_user_id, active_account_id)
        VALUES ($1, NULL)
        ON CONFLICT (tg_user_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, tgUserID)
	if err != nil {
		zap.L().Error("can't create owner", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateAccount(ctx context.Context, account *domain.Account) (int64, error) {
	query := `
        INSERT INTO accounts (owner_tg_id, kind, label, is_active)
        VALUES ($1, $2, $3, TRUE)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, query, account.OwnerTgID, account.Kind, account.Label).Scan(&id)
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *Repository) FindAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
        SELECT id, owner_tg_id, kind, label, is_active, created_at
        FROM accounts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var account domain.Account
	err := row.Scan(&account.ID, &account.OwnerTgID, &account.Kind, &account.Label, &account.IsActive, &account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) ListByOwner(ctx context.Context, tgUserID int64) ([]domain.Account, error) {
	query := `
        SELECT id, owner_tg_id, kind, label, is_active, created_at
        FROM accounts
        WHERE owner_tg_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, tgUserID)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		err := rows.Scan(&account.ID, &account.OwnerTgID, &account.Kind, &account.Label, &account.IsActive, &account.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r *Repository) SetActiveAccount(ctx context.Context, tgUserID, accountID int64) error {
	query := `
        UPDATE owners
        SET active_account_id = $1
        WHERE tg_user_id = $2
    `
	_, err := r.db.Exec(ctx, query, accountID, tgUserID)
	if err != nil {
		zap.L().Error("can't set active account", zap.Error(err))
		return err
	}
	return nil
}

// FindSystemPool returns the MAIN POOL account, or nil if it was never seeded.
func (r *Repository) FindSystemPool(ctx context.Context) (*domain.Account, error) {
	query := `
        SELECT id, owner_tg_id, kind, label, is_active, created_at
        FROM accounts
        WHERE owner_tg_id = $1 AND kind = $2 AND is_active = TRUE
        ORDER BY id ASC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, domain.SystemOwnerID, domain.KindSystemPool)
	var account domain.Account
	err := row.Scan(&account.ID, &account.OwnerTgID, &account.Kind, &account.Label, &account.IsActive, &account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find system pool account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}
