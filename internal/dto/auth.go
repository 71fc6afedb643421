package dto

import (
	"time"

	"github.com/GlebRadaev/fieldservice/internal/domain"
)

type LoginRequestDTO struct {
	Login    string `json:"login"    validate:"required,min=3,max=50" example:"ivan"`
	Password string `json:"password" validate:"required"              example:"secret-password"`
}

type TokenResponseDTO struct {
	Token       string    `json:"token"       example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt   time.Time `json:"expiresAt"   example:"2026-03-10T00:00:00Z"`
	UserID      int       `json:"userId"      example:"7"`
	PrimaryRole string    `json:"primaryRole" example:"ADMIN"`
	ActiveRole  string    `json:"activeRole"  example:"USER"`
}

type SwitchRoleRequestDTO struct {
	NewRole string `json:"newRole" validate:"required,role" example:"MANAGER"`
}

type CreateUserRequestDTO struct {
	Login    string `json:"login"    validate:"required,min=3,max=50" example:"ivan"`
	Password string `json:"password" validate:"required,min=8"        example:"secret-password"`
	FullName string `json:"fullName" validate:"required,max=200"      example:"Ivan Petrov"`
	Role     string `json:"role"     validate:"required,role"         example:"USER"`
}

type UserResponseDTO struct {
	ID          int       `json:"id"          example:"7"`
	Login       string    `json:"login"       example:"ivan"`
	FullName    string    `json:"fullName"    example:"Ivan Petrov"`
	PrimaryRole string    `json:"primaryRole" example:"USER"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromUser(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:          u.ID,
		Login:       u.Login,
		FullName:    u.FullName,
		PrimaryRole: string(u.PrimaryRole),
		CreatedAt:   u.CreatedAt,
	}
}
