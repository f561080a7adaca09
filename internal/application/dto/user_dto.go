package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/projectflow/internal/domain/entity"
)

// UserResponse salida de un usuario (sin password_hash).
type UserResponse struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	AvatarURL  string          `json:"avatar_url,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewUserResponse mapea la entidad a su DTO de salida (sin password_hash).
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Role:       u.Role,
		HourlyRate: u.HourlyRate,
		AvatarURL:  u.AvatarURL,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// CreateUserRequest alta de usuario por admin (password en texto, se hashea en use case).
type CreateUserRequest struct {
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	Password   string           `json:"password"`
	Role       string           `json:"role"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
}

// UpdateUserRequest actualización parcial de perfil. Punteros: nil = sin cambio.
type UpdateUserRequest struct {
	FirstName  *string          `json:"first_name"`
	LastName   *string          `json:"last_name"`
	Email      *string          `json:"email"`
	Password   *string          `json:"password"`
	Role       *string          `json:"role"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	AvatarURL  *string          `json:"avatar_url"`
}
