package roleservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/eclisbank/solenbank/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestSeedOwner(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		tgUserID  int64
		mockSetup func()
		wantErr   error
	}{
		{
			name:     "First seed succeeds",
			tgUserID: 111,
			mockSetup: func() {
				repo.EXPECT().SeedOwner(ctx, int64(111)).Return(nil)
			},
		},
		{
			name:     "Owner already set",
			tgUserID: 222,
			mockSetup: func() {
				repo.EXPECT().SeedOwner(ctx, int64(222)).Return(domain.ErrOwnerAlreadySet)
			},
			wantErr: domain.ErrOwnerAlreadySet,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := service.SeedOwner(ctx, tt.tgUserID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsOwner(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()
	ownerID := int64(111)

	tests := []struct {
		name      string
		tgUserID  int64
		mockSetup func()
		want      bool
		wantErr   bool
	}{
		{
			name:     "Matches seeded owner",
			tgUserID: 111,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(&ownerID, nil)
			},
			want: true,
		},
		{
			name:     "Different user",
			tgUserID: 222,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(&ownerID, nil)
			},
			want: false,
		},
		{
			name:     "No owner seeded yet",
			tgUserID: 111,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(nil, nil)
			},
			want: false,
		},
		{
			name:     "Lookup error",
			tgUserID: 111,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := service.IsOwner(ctx, tt.tgUserID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()
	ownerID := int64(111)

	tests := []struct {
		name      string
		tgUserID  int64
		mockSetup func()
		want      bool
		wantErr   bool
	}{
		{
			name:     "Owner is implicit admin",
			tgUserID: 111,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(&ownerID, nil)
			},
			want: true,
		},
		{
			name:     "Listed admin",
			tgUserID: 222,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(&ownerID, nil)
				repo.EXPECT().IsActiveAdmin(ctx, int64(222)).Return(true, nil)
			},
			want: true,
		},
		{
			name:     "Regular user",
			tgUserID: 333,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(&ownerID, nil)
				repo.EXPECT().IsActiveAdmin(ctx, int64(333)).Return(false, nil)
			},
			want: false,
		},
		{
			name:     "Owner lookup error",
			tgUserID: 222,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := service.IsAdmin(ctx, tt.tgUserID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAddAdmin(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()
	ownerID := int64(111)

	tests := []struct {
		name      string
		actorID   int64
		tgUserID  int64
		mockSetup func()
		wantErr   error
	}{
		{
			name:     "Owner adds admin",
			actorID:  111,
			tgUserID: 222,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(&ownerID, nil)
				repo.EXPECT().UpsertAdmin(ctx, int64(222)).Return(nil)
			},
		},
		{
			name:     "Non-owner denied",
			actorID:  222,
			tgUserID: 333,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(&ownerID, nil)
			},
			wantErr: domain.ErrPermissionDenied,
		},
		{
			name:     "Admin cannot add admin",
			actorID:  444,
			tgUserID: 333,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(&ownerID, nil)
			},
			wantErr: domain.ErrPermissionDenied,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := service.AddAdmin(ctx, tt.actorID, tt.tgUserID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRemoveAdmin(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()
	ownerID := int64(111)

	tests := []struct {
		name      string
		actorID   int64
		tgUserID  int64
		mockSetup func()
		wantErr   error
	}{
		{
			name:     "Owner removes admin",
			actorID:  111,
			tgUserID: 222,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(&ownerID, nil)
				repo.EXPECT().DeactivateAdmin(ctx, int64(222)).Return(nil)
			},
		},
		{
			name:     "Non-owner denied",
			actorID:  222,
			tgUserID: 222,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(&ownerID, nil)
			},
			wantErr: domain.ErrPermissionDenied,
		},
		{
			name:     "Repo error",
			actorID:  111,
			tgUserID: 222,
			mockSetup: func() {
				repo.EXPECT().GetOwnerID(ctx).Return(&ownerID, nil)
				repo.EXPECT().DeactivateAdmin(ctx, int64(222)).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := service.RemoveAdmin(ctx, tt.actorID, tt.tgUserID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
