package repository

import "github.com/tu-usuario/projectflow/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get devuelven (nil, nil) cuando el recurso no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// List filtra opcionalmente por rol; orden created_at DESC.
	List(role string) ([]*entity.User, error)
	Delete(id string) error
}
