package dto

import "time"

type CreateAccountRequestDTO struct {
	OwnerID    int64  `json:"owner_id" example:"111222333"`
	Kind       string `json:"kind" example:"PERSONAL"`
	Label      string `json:"label" example:"Personal"`
	MakeActive bool   `json:"make_active" example:"true"`
}

type CreateAccountResponseDTO struct {
	AccountID int64 `json:"account_id" example:"1"`
}

type AccountDTO struct {
	ID        int64     `json:"id" example:"1"`
	OwnerID   int64     `json:"owner_id" example:"111222333"`
	Kind      string    `json:"kind" example:"PERSONAL"`
	Label     string    `json:"label" example:"Personal"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2024-06-09T16:09:57+03:00"`
}

type ListAccountsResponseDTO struct {
	ActiveAccountID *int64       `json:"active_account_id,omitempty" example:"1"`
	Accounts        []AccountDTO `json:"accounts"`
}

type SetActiveAccountRequestDTO struct {
	OwnerID   int64 `json:"owner_id" example:"111222333"`
	AccountID int64 `json:"account_id" example:"1"`
}
