package dto

import "time"

type TransferRequestDTO struct {
	FromAccountID int64  `json:"from_account_id" example:"1"`
	ToAccountID   int64  `json:"to_account_id" example:"2"`
	Amount        int64  `json:"amount" example:"300"`
	Description   string `json:"description" example:"rent"`
	ActorID       int64  `json:"actor_id" example:"111222333"`
	Forced        bool   `json:"forced" example:"false"`
}

type TransactionDTO struct {
	ReceiptNo     string    `json:"receipt_no" example:"2377225624"`
	TsUTC         time.Time `json:"ts_utc" example:"2024-06-09T13:09:57Z"`
	FromAccountID *int64    `json:"from_account_id,omitempty" example:"1"`
	ToAccountID   *int64    `json:"to_account_id,omitempty" example:"2"`
	Amount        int64     `json:"amount" example:"300"`
	Status        string    `json:"status" example:"SUCCESS"`
	Description   string    `json:"description" example:"rent"`
	CreatedByID   int64     `json:"created_by_id" example:"111222333"`
	Forced        bool      `json:"forced" example:"false"`
}

type BalanceResponseDTO struct {
	AccountID int64 `json:"account_id" example:"1"`
	Balance   int64 `json:"balance" example:"700"`
}
