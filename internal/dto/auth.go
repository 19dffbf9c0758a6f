package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"greta" validate:"required,min=3,max=255"`
	Password string `json:"password" example:"secret" validate:"required,min=6"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"greta" validate:"required"`
	Password string `json:"password" example:"secret" validate:"required"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
}
