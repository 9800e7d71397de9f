package dto

type RegisterBusinessRequestDTO struct {
	ActorID   int64 `json:"actor_id" example:"111222333"`
	AccountID int64 `json:"account_id" example:"5"`
}

type AddStaffRequestDTO struct {
	ActorID           int64  `json:"actor_id" example:"111222333"`
	BusinessAccountID int64  `json:"business_account_id" example:"5"`
	Name              string `json:"name" example:"Jordan Smith"`
	PayoutAccountID   int64  `json:"payout_account_id" example:"7"`
	MonthlySalary     int64  `json:"monthly_salary" example:"1200"`
	LinkedTgID        *int64 `json:"linked_tg_id,omitempty" example:"444555666"`
}

type AddStaffResponseDTO struct {
	StaffID int64 `json:"staff_id" example:"1"`
}

type StaffDTO struct {
	ID                int64  `json:"id" example:"1"`
	BusinessAccountID int64  `json:"business_account_id" example:"5"`
	Name              string `json:"name" example:"Jordan Smith"`
	LinkedTgID        *int64 `json:"linked_tg_id,omitempty" example:"444555666"`
	PayoutAccountID   int64  `json:"payout_account_id" example:"7"`
	MonthlySalary     int64  `json:"monthly_salary" example:"1200"`
	IsActive          bool   `json:"is_active" example:"true"`
}

type RunPayrollRequestDTO struct {
	ActorID           int64  `json:"actor_id" example:"111222333"`
	BusinessAccountID int64  `json:"business_account_id" example:"5"`
	Year              int    `json:"year" example:"2024"`
	Month             int    `json:"month" example:"6"`
	Note              string `json:"note" example:"Salary 2024-06"`
}

type PayoutDTO struct {
	StaffID   int64  `json:"staff_id" example:"1"`
	StaffName string `json:"staff_name" example:"Jordan Smith"`
	ReceiptNo string `json:"receipt_no,omitempty" example:"2377225624"`
	Error     string `json:"error,omitempty" example:"insufficient funds"`
}
