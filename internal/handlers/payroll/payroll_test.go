package payroll

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/eclisbank/solenbank/internal/domain"
	"github.com/eclisbank/solenbank/internal/dto"
)

func NewMock(t *testing.T) (*PayrollHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterBusinessHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"actor_id":111,"account_id":5}`,
			prepareMock: func() {
				service.EXPECT().RegisterBusiness(gomock.Any(), int64(111), int64(5)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Non-admin actor",
			body: `{"actor_id":333,"account_id":5}`,
			prepareMock: func() {
				service.EXPECT().RegisterBusiness(gomock.Any(), int64(333), int64(5)).Return(domain.ErrPermissionDenied)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Account not found",
			body: `{"actor_id":111,"account_id":99}`,
			prepareMock: func() {
				service.EXPECT().RegisterBusiness(gomock.Any(), int64(111), int64(99)).Return(domain.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			body:         `{"actor_id":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/payroll/business", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.RegisterBusiness(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAddStaffHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.AddStaffResponseDTO
	}{
		{
			name: "Successful add",
			body: `{"actor_id":111,"business_account_id":5,"name":"Jordan Smith","payout_account_id":7,"monthly_salary":1200}`,
			prepareMock: func() {
				service.EXPECT().
					AddStaff(gomock.Any(), int64(111), int64(5), "Jordan Smith", int64(7), int64(1200), gomock.Nil()).
					Return(int64(1), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.AddStaffResponseDTO{StaffID: 1},
		},
		{
			name: "Invalid salary",
			body: `{"actor_id":111,"business_account_id":5,"name":"Jordan Smith","payout_account_id":7,"monthly_salary":0}`,
			prepareMock: func() {
				service.EXPECT().
					AddStaff(gomock.Any(), int64(111), int64(5), "Jordan Smith", int64(7), int64(0), gomock.Nil()).
					Return(int64(0), domain.ErrInvalidSalary)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Business not registered",
			body: `{"actor_id":111,"business_account_id":6,"name":"Jordan Smith","payout_account_id":7,"monthly_salary":1200}`,
			prepareMock: func() {
				service.EXPECT().
					AddStaff(gomock.Any(), int64(111), int64(6), "Jordan Smith", int64(7), int64(1200), gomock.Nil()).
					Return(int64(0), domain.ErrBusinessNotRegistered)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/payroll/staff", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.AddStaff(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AddStaffResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestListStaffHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful listing",
			url:  "/api/payroll/staff?actor_id=111&business_account_id=5",
			prepareMock: func() {
				service.EXPECT().
					ListStaff(gomock.Any(), int64(111), int64(5)).
					Return([]domain.Staff{
						{ID: 1, BusinessAccountID: 5, Name: "Jordan Smith", AccountID: 7, MonthlySalary: 1200, IsActive: true},
						{ID: 2, BusinessAccountID: 5, Name: "Casey Moore", AccountID: 8, MonthlySalary: 900, IsActive: false},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:         "Missing actor id",
			url:          "/api/payroll/staff?business_account_id=5",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Non-admin actor",
			url:  "/api/payroll/staff?actor_id=333&business_account_id=5",
			prepareMock: func() {
				service.EXPECT().
					ListStaff(gomock.Any(), int64(333), int64(5)).
					Return(nil, domain.ErrPermissionDenied)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			handler.ListStaff(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.StaffDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestRunPayrollHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		check        func(t *testing.T, payouts []dto.PayoutDTO)
	}{
		{
			name: "Full run",
			body: `{"actor_id":111,"business_account_id":5,"year":2024,"month":6}`,
			prepareMock: func() {
				service.EXPECT().
					RunPayroll(gomock.Any(), int64(111), int64(5), 2024, 6, "").
					Return([]domain.PayrollPayout{
						{StaffID: 1, StaffName: "Jordan Smith", ReceiptNo: "2404815702"},
						{StaffID: 2, StaffName: "Casey Moore", Err: domain.ErrInsufficientFunds},
					}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, payouts []dto.PayoutDTO) {
				assert.Len(t, payouts, 2)
				assert.Equal(t, "2404815702", payouts[0].ReceiptNo)
				assert.Empty(t, payouts[0].Error)
				assert.Empty(t, payouts[1].ReceiptNo)
				assert.Equal(t, domain.ErrInsufficientFunds.Error(), payouts[1].Error)
			},
		},
		{
			name: "Duplicate period",
			body: `{"actor_id":111,"business_account_id":5,"year":2024,"month":6}`,
			prepareMock: func() {
				service.EXPECT().
					RunPayroll(gomock.Any(), int64(111), int64(5), 2024, 6, "").
					Return(nil, domain.ErrPayrollAlreadyRun)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Invalid month",
			body: `{"actor_id":111,"business_account_id":5,"year":2024,"month":13}`,
			prepareMock: func() {
				service.EXPECT().
					RunPayroll(gomock.Any(), int64(111), int64(5), 2024, 13, "").
					Return(nil, domain.ErrInvalidPeriod)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"actor_id":111,"business_account_id":5,"year":2024,"month":6}`,
			prepareMock: func() {
				service.EXPECT().
					RunPayroll(gomock.Any(), int64(111), int64(5), 2024, 6, "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/payroll/runs", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.RunPayroll(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.check != nil {
				var payouts []dto.PayoutDTO
				_ = json.NewDecoder(w.Body).Decode(&payouts)
				tt.check(t, payouts)
			}
		})
	}
}
