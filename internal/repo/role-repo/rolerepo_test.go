package rolerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestRepository_GetOwnerID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT v
        FROM meta
        WHERE k = $1
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		want      *int64
	}{
		{
			name: "Owner seeded",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("OWNER_TG_ID").
					WillReturnRows(pgxmock.NewRows([]string{"v"}).AddRow("111"))
			},
			want: int64Ptr(111),
		},
		{
			name: "No owner yet",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("OWNER_TG_ID").
					WillReturnError(pgx.ErrNoRows)
			},
			want: nil,
		},
		{
			name: "Corrupt seed value",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("OWNER_TG_ID").
					WillReturnRows(pgxmock.NewRows([]string{"v"}).AddRow("not-a-number"))
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("OWNER_TG_ID").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := repo.GetOwnerID(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRepository_SeedOwner(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO meta (k, v)
        VALUES ($1, $2)
        ON CONFLICT (k) DO NOTHING
    `)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "First seed wins",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("OWNER_TG_ID", "111").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Second seed loses",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("OWNER_TG_ID", "111").
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			wantErr: domain.ErrOwnerAlreadySet,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("OWNER_TG_ID", "111").
					WillReturnError(errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SeedOwner(context.Background(), 111)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_IsActiveAdmin(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT 1
        FROM admins
        WHERE tg_user_id = $1 AND is_active = TRUE
        LIMIT 1
    `)

	tests := []struct {
		name      string
		mockSetup func()
		want      bool
	}{
		{
			name: "Active admin",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(int64(222)).
					WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
			},
			want: true,
		},
		{
			name: "Not an admin",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(int64(222)).
					WillReturnError(pgx.ErrNoRows)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := repo.IsActiveAdmin(context.Background(), 222)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepository_UpsertAdmin(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO admins (tg_user_id, is_active)
        VALUES ($1, TRUE)
        ON CONFLICT (tg_user_id) DO UPDATE SET is_active = TRUE
    `)).
		WithArgs(int64(222)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.UpsertAdmin(context.Background(), 222)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeactivateAdmin(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE admins
        SET is_active = FALSE
        WHERE tg_user_id = $1
    `)).
		WithArgs(int64(222)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.DeactivateAdmin(context.Background(), 222)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func int64Ptr(v int64) *int64 { return &v }
