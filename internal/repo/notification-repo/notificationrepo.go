package notificationrepo

import (
	"context"

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

func (r *Repository) FindUnsent(ctx context.Context, limit uint32) ([]domain.Notification, error) {
	query := `
        SELECT id, receipt_no, account_id, created_at, sent_at
        FROM notifications
        WHERE sent_at IS NULL
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't fetch pending notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.ReceiptNo, &n.AccountID, &n.CreatedAt, &n.SentAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *Repository) MarkSent(ctx context.Context, id int64) error {
	query := `
        UPDATE notifications
        SET sent_at = now()
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark notification sent", zap.Error(err))
		return err
	}
	return nil
}
