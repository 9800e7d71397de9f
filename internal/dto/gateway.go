package dto

type TokenRequestDTO struct {
	ClientID string `json:"client_id" example:"tg-gateway"`
	Secret   string `json:"secret" example:"s3cr3t"`
}

type TokenResponseDTO struct {
	Message string `json:"message"`
}
