package notificationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindUnsent(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, receipt_no, account_id, created_at, sent_at
        FROM notifications
        WHERE sent_at IS NULL
        ORDER BY created_at ASC
        LIMIT $1
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantLen   int
	}{
		{
			name: "Pending notifications",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "receipt_no", "account_id", "created_at", "sent_at"}).
					AddRow(int64(1), "2404815702", int64(2), now, (*time.Time)(nil)).
					AddRow(int64(2), "4561261212345467", int64(3), now, (*time.Time)(nil))
				mock.ExpectQuery(query).
					WithArgs(1000).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "Nothing pending",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "receipt_no", "account_id", "created_at", "sent_at"})
				mock.ExpectQuery(query).
					WithArgs(1000).
					WillReturnRows(rows)
			},
			wantLen: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1000).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			notifications, err := repo.FindUnsent(context.Background(), 1000)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, notifications, tt.wantLen)
			}
		})
	}
}

func TestRepository_MarkSent(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE notifications
        SET sent_at = now()
        WHERE id = $1
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Mark sent successfully",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.MarkSent(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
