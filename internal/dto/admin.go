package dto

type SeedOwnerRequestDTO struct {
	TgUserID int64 `json:"tg_user_id" example:"111222333"`
}

type AdminRequestDTO struct {
	ActorID  int64 `json:"actor_id" example:"111222333"`
	TgUserID int64 `json:"tg_user_id" example:"444555666"`
}

type RolesResponseDTO struct {
	IsOwner bool `json:"is_owner" example:"true"`
	IsAdmin bool `json:"is_admin" example:"true"`
}

type PoolResponseDTO struct {
	AccountID int64 `json:"account_id" example:"1"`
}
