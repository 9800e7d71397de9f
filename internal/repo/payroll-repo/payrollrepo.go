package payrollrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/eclisbank/solenbank/internal/domain"
	"github.com/eclisbank/solenbank/internal/pg"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) UpsertBusiness(ctx context.Context, accountID int64) error {
	query := `
        INSERT INTO business_accounts (account_id, is_active)
        VALUES ($1, TRUE)
        ON CONFLICT (account_id) DO UPDATE SET is_active = TRUE
    `
	_, err := r.db.Exec(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't register business account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IsBusinessRegistered(ctx context.Context, accountID int64) (bool, error) {
	query := `
        SELECT 1
        FROM business_accounts
        WHERE account_id = $1 AND is_active = TRUE
        LIMIT 1
    `
	var one int
	err := r.db.QueryRow(ctx, query, accountID).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("can't check business registration", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) CreateStaff(ctx context.Context, staff *domain.Staff) (int64, error) {
	query := `
        INSERT INTO business_staff (business_account_id, staff_name, staff_tg_id, staff_account_id, monthly_salary, is_active)
        VALUES ($1, $2, $3, $4, $5, TRUE)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, query, staff.BusinessAccountID, staff.Name, staff.TgID, staff.AccountID, staff.MonthlySalary).Scan(&id)
	if err != nil {
		zap.L().Error("can't create staff", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *Repository) ListStaff(ctx context.Context, businessAccountID int64) ([]domain.Staff, error) {
	query := `
        SELECT id, business_account_id, staff_name, staff_tg_id, staff_account_id, monthly_salary, is_active, created_at
        FROM business_staff
        WHERE business_account_id = $1
        ORDER BY id ASC
    `
	return r.queryStaff(ctx, query, businessAccountID)
}

// ListActiveStaff is the payroll roster snapshot: only active staff are paid.
func (r *Repository) ListActiveStaff(ctx context.Context, businessAccountID int64) ([]domain.Staff, error) {
	query := `
        SELECT id, business_account_id, staff_name, staff_tg_id, staff_account_id, monthly_salary, is_active, created_at
        FROM business_staff
        WHERE business_account_id = $1 AND is_active = TRUE
        ORDER BY id ASC
    `
	return r.queryStaff(ctx, query, businessAccountID)
}

func (r *Repository) queryStaff(ctx context.Context, query string, businessAccountID int64) ([]domain.Staff, error) {
	rows, err := r.db.Query(ctx, query, businessAccountID)
	if err != nil {
		zap.L().Error("can't list staff", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var staff []domain.Staff
	for rows.Next() {
		var s domain.Staff
		err := rows.Scan(&s.ID, &s.BusinessAccountID, &s.Name, &s.TgID, &s.AccountID, &s.MonthlySalary, &s.IsActive, &s.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan staff row", zap.Error(err))
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, nil
}

// CreateRun inserts the (business, year, month) lock row. A unique violation
// means the period was already paid: first writer wins.
func (r *Repository) CreateRun(ctx context.Context, run *domain.PayrollRun) error {
	query := `
        INSERT INTO payroll_runs (business_account_id, year, month, created_by_tg_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, run.BusinessAccountID, run.Year, run.Month, run.CreatedByTgID).Scan(&run.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrPayrollAlreadyRun
		}
		zap.L().Error("can't create payroll run", zap.Error(err))
		return err
	}
	return nil
}
