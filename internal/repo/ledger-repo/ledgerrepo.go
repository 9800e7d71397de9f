package ledgerrepo

import (
	"context"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/eclisbank/solenbank/internal/domain"
	"github.com/eclisbank/solenbank/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// CreateTransfer appends one ledger row, atomically with the balance check.
// Both account rows are locked in ascending id order, so two transfers
// touching the same accounts serialize instead of deadlocking, and the second
// one recomputes the sender balance over the first one's committed row.
func (r *Repository) CreateTransfer(ctx context.Context, t *domain.Transaction) error {
	lockQuery := `
        SELECT id
        FROM accounts
        WHERE id = ANY($1) AND is_active = TRUE
        ORDER BY id
        FOR UPDATE
    `
	balanceQuery := `
        SELECT
          COALESCE(SUM(CASE WHEN to_account_id = $1 THEN amount ELSE 0 END), 0) -
          COALESCE(SUM(CASE WHEN from_account_id = $1 THEN amount ELSE 0 END), 0)
        FROM transactions
        WHERE status IN ('SUCCESS', 'FORCED')
          AND (from_account_id = $1 OR to_account_id = $1)
    `
	insertQuery := `
        INSERT INTO transactions (receipt_no, ts_utc, from_account_id, to_account_id, amount, status, description, created_by_tg_id, forced)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	notifyQuery := `
        INSERT INTO notifications (receipt_no, account_id)
        VALUES ($1, $2)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		ids := make([]int64, 0, 2)
		if t.FromAccountID != nil {
			ids = append(ids, *t.FromAccountID)
		}
		if t.ToAccountID != nil {
			ids = append(ids, *t.ToAccountID)
		}
		slices.Sort(ids)

		rows, err := r.db.Query(ctx, lockQuery, ids)
		if err != nil {
			zap.L().Error("can't lock accounts for transfer", zap.Error(err))
			return err
		}
		locked := 0
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				zap.L().Error("can't scan locked account row", zap.Error(err))
				return err
			}
			locked++
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if locked != len(ids) {
			return domain.ErrAccountNotFound
		}

		if !t.Forced && t.FromAccountID != nil {
			var balance int64
			if err := r.db.QueryRow(ctx, balanceQuery, *t.FromAccountID).Scan(&balance); err != nil {
				zap.L().Error("can't compute sender balance", zap.Error(err))
				return err
			}
			if balance < t.Amount {
				return domain.ErrInsufficientFunds
			}
		}

		err = r.db.QueryRow(ctx, insertQuery,
			t.ReceiptNo, t.TsUTC, t.FromAccountID, t.ToAccountID,
			t.Amount, t.Status, t.Description, t.CreatedByTgID, t.Forced,
		).Scan(&t.ID)
		if err != nil {
			zap.L().Error("can't insert ledger row", zap.Error(err))
			return err
		}

		if t.ToAccountID != nil {
			if _, err := r.db.Exec(ctx, notifyQuery, t.ReceiptNo, *t.ToAccountID); err != nil {
				zap.L().Error("can't insert notification", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

// Balance folds the ledger for one account. Credits minus debits over
// SUCCESS and FORCED rows only; FAILED and PENDING rows never count.
func (r *Repository) Balance(ctx context.Context, accountID int64) (int64, error) {
	query := `
        SELECT
          COALESCE(SUM(CASE WHEN to_account_id = $1 THEN amount ELSE 0 END), 0) -
          COALESCE(SUM(CASE WHEN from_account_id = $1 THEN amount ELSE 0 END), 0)
        FROM transactions
        WHERE status IN ('SUCCESS', 'FORCED')
          AND (from_account_id = $1 OR to_account_id = $1)
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, accountID).Scan(&balance)
	if err != nil {
		zap.L().Error("can't compute balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) FindHistory(ctx context.Context, accountID int64, cutoff time.Time, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, receipt_no, ts_utc, from_account_id, to_account_id, amount, status, COALESCE(description, ''), created_by_tg_id, forced
        FROM transactions
        WHERE (from_account_id = $1 OR to_account_id = $1)
          AND ts_utc >= $2
        ORDER BY ts_utc DESC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, accountID, cutoff, limit)
	if err != nil {
		zap.L().Error("can't fetch history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.ReceiptNo, &t.TsUTC, &t.FromAccountID, &t.ToAccountID, &t.Amount, &t.Status, &t.Description, &t.CreatedByTgID, &t.Forced)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func (r *Repository) FindByReceipt(ctx context.Context, receiptNo string) (*domain.Transaction, error) {
	query := `
        SELECT id, receipt_no, ts_utc, from_account_id, to_account_id, amount, status, COALESCE(description, ''), created_by_tg_id, forced
        FROM transactions
        WHERE receipt_no = $1
    `
	row := r.db.QueryRow(ctx, query, receiptNo)
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.ReceiptNo, &t.TsUTC, &t.FromAccountID, &t.ToAccountID, &t.Amount, &t.Status, &t.Description, &t.CreatedByTgID, &t.Forced)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction by receipt", zap.Error(err))
		return nil, err
	}
	return &t, nil
}
