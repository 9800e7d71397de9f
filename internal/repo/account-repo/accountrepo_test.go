package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/eclisbank/solenbank/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetOwner(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	activeID := int64(2)

	tests := []struct {
		name      string
		tgUserID  int64
		mockSetup func()
		expectErr bool
		result    *domain.Owner
	}{
		{
			name:     "Owner found",
			tgUserID: 111,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"tg_user_id", "active_account_id", "created_at"}).
					AddRow(int64(111), &activeID, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT tg_user_id, active_account_id, created_at
        FROM owners
        WHERE tg_user_id = $1
    `)).
					WithArgs(int64(111)).
					WillReturnRows(rows)
			},
			result: &domain.Owner{
				TgUserID:        111,
				ActiveAccountID: &activeID,
				CreatedAt:       now,
			},
		},
		{
			name:     "Owner not found",
			tgUserID: 999,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT tg_user_id, active_account_id, created_at
        FROM owners
        WHERE tg_user_id = $1
    `)).
					WithArgs(int64(999)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:     "Database error",
			tgUserID: 111,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT tg_user_id, active_account_id, created_at
        FROM owners
        WHERE tg_user_id = $1
    `)).
					WithArgs(int64(111)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetOwner(context.Background(), tt.tgUserID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_CreateOwner(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		tgUserID  int64
		mockSetup func()
		expectErr bool
	}{
		{
			name:     "Create owner successfully",
			tgUserID: 111,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO owners (tg_user_id, active_account_id)
        VALUES ($1, NULL)
        ON CONFLICT (tg_user_id) DO NOTHING
    `)).
					WithArgs(int64(111)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:     "Duplicate owner is a no-op",
			tgUserID: 111,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO owners (tg_user_id, active_account_id)
        VALUES ($1, NULL)
        ON CONFLICT (tg_user_id) DO NOTHING
    `)).
					WithArgs(int64(111)).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
		},
		{
			name:     "Database error",
			tgUserID: 111,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO owners (tg_user_id, active_account_id)
        VALUES ($1, NULL)
        ON CONFLICT (tg_user_id) DO NOTHING
    `)).
					WithArgs(int64(111)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreateOwner(context.Background(), tt.tgUserID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_CreateAccount(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		account   *domain.Account
		mockSetup func()
		expectErr bool
		wantID    int64
	}{
		{
			name: "Create account successfully",
			account: &domain.Account{
				OwnerTgID: 111,
				Kind:      domain.KindPersonal,
				Label:     "MAIN",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO accounts (owner_tg_id, kind, label, is_active)
        VALUES ($1, $2, $3, TRUE)
        RETURNING id
    `)).
					WithArgs(int64(111), domain.KindPersonal, "MAIN").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
			},
			wantID: 1,
		},
		{
			name: "Database error",
			account: &domain.Account{
				OwnerTgID: 111,
				Kind:      domain.KindPersonal,
				Label:     "MAIN",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO accounts (owner_tg_id, kind, label, is_active)
        VALUES ($1, $2, $3, TRUE)
        RETURNING id
    `)).
					WithArgs(int64(111), domain.KindPersonal, "MAIN").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			id, err := repo.CreateAccount(context.Background(), tt.account)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestRepository_FindAccountByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int64
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name: "Account found",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_tg_id", "kind", "label", "is_active", "created_at"}).
					AddRow(int64(1), int64(111), domain.KindPersonal, "MAIN", true, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, owner_tg_id, kind, label, is_active, created_at
        FROM accounts
        WHERE id = $1
    `)).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			result: &domain.Account{
				ID:        1,
				OwnerTgID: 111,
				Kind:      domain.KindPersonal,
				Label:     "MAIN",
				IsActive:  true,
				CreatedAt: now,
			},
		},
		{
			name: "Account not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, owner_tg_id, kind, label, is_active, created_at
        FROM accounts
        WHERE id = $1
    `)).
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAccountByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListByOwner(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		tgUserID  int64
		mockSetup func()
		expectErr bool
		wantLen   int
	}{
		{
			name:     "Two accounts",
			tgUserID: 111,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_tg_id", "kind", "label", "is_active", "created_at"}).
					AddRow(int64(1), int64(111), domain.KindPersonal, "MAIN", true, now).
					AddRow(int64(2), int64(111), domain.KindBusiness, "SHOP", true, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, owner_tg_id, kind, label, is_active, created_at
        FROM accounts
        WHERE owner_tg_id = $1
        ORDER BY id ASC
    `)).
					WithArgs(int64(111)).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name:     "No accounts",
			tgUserID: 222,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_tg_id", "kind", "label", "is_active", "created_at"})
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, owner_tg_id, kind, label, is_active, created_at
        FROM accounts
        WHERE owner_tg_id = $1
        ORDER BY id ASC
    `)).
					WithArgs(int64(222)).
					WillReturnRows(rows)
			},
			wantLen: 0,
		},
		{
			name:     "Database error",
			tgUserID: 111,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, owner_tg_id, kind, label, is_active, created_at
        FROM accounts
        WHERE owner_tg_id = $1
        ORDER BY id ASC
    `)).
					WithArgs(int64(111)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			accounts, err := repo.ListByOwner(context.Background(), tt.tgUserID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, accounts, tt.wantLen)
			}
		})
	}
}

func TestRepository_SetActiveAccount(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE owners
        SET active_account_id = $1
        WHERE tg_user_id = $2
    `)).
		WithArgs(int64(2), int64(111)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetActiveAccount(context.Background(), 111, 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindSystemPool(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		result    *domain.Account
	}{
		{
			name: "Pool exists",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "owner_tg_id", "kind", "label", "is_active", "created_at"}).
					AddRow(int64(1), domain.SystemOwnerID, domain.KindSystemPool, "MAIN POOL", true, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, owner_tg_id, kind, label, is_active, created_at
        FROM accounts
        WHERE owner_tg_id = $1 AND kind = $2 AND is_active = TRUE
        ORDER BY id ASC
        LIMIT 1
    `)).
					WithArgs(domain.SystemOwnerID, domain.KindSystemPool).
					WillReturnRows(rows)
			},
			result: &domain.Account{
				ID:        1,
				OwnerTgID: domain.SystemOwnerID,
				Kind:      domain.KindSystemPool,
				Label:     "MAIN POOL",
				IsActive:  true,
				CreatedAt: now,
			},
		},
		{
			name: "Pool never seeded",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, owner_tg_id, kind, label, is_active, created_at
        FROM accounts
        WHERE owner_tg_id = $1 AND kind = $2 AND is_active = TRUE
        ORDER BY id ASC
        LIMIT 1
    `)).
					WithArgs(domain.SystemOwnerID, domain.KindSystemPool).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindSystemPool(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}
