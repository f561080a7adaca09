package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/policy"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserUseCase administración de usuarios. Crear y borrar es solo-admin;
// cada usuario edita su propio perfil.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List usuarios, filtro opcional por rol, orden created_at DESC.
func (uc *UserUseCase) List(role string) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(role)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *dto.NewUserResponse(u))
	}
	return out, nil
}

// Get un usuario por ID.
func (uc *UserUseCase) Get(id string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewUserResponse(u), nil
}

// Create alta por admin: valida formato de email, rol y largo del password.
func (uc *UserUseCase) Create(actor policy.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !policy.CanManageUsers(actor) {
		return nil, domain.ErrForbidden
	}
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if firstName == "" || lastName == "" || email == "" {
		return nil, fmt.Errorf("%w: first_name, last_name y email son requeridos", domain.ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: formato de email inválido", domain.ErrInvalidInput)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password debe tener al menos 6 caracteres", domain.ErrInvalidInput)
	}
	role := in.Role
	if !entity.ValidRole(role) {
		role = entity.RoleTeamMember
	}
	rate := decimal.Zero
	if in.HourlyRate != nil {
		if in.HourlyRate.IsNegative() {
			return nil, fmt.Errorf("%w: hourly_rate no puede ser negativo", domain.ErrInvalidInput)
		}
		rate = *in.HourlyRate
	}

	existing, _ := uc.userRepo.GetByEmail(email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		HourlyRate:   rate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(u); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(u), nil
}

// Update edición de perfil: el propio usuario o admin. Cambiar el rol exige
// admin y nunca aplica sobre uno mismo.
func (uc *UserUseCase) Update(actor policy.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !policy.CanUpdateUser(actor, id) {
		return nil, domain.ErrForbidden
	}
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Role != nil && *in.Role != u.Role {
		if !policy.CanChangeRole(actor, id) {
			return nil, domain.ErrForbidden
		}
		if !entity.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, *in.Role)
		}
		u.Role = *in.Role
	}
	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !emailPattern.MatchString(email) {
			return nil, fmt.Errorf("%w: formato de email inválido", domain.ErrInvalidInput)
		}
		u.Email = email
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			return nil, fmt.Errorf("%w: password debe tener al menos 6 caracteres", domain.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if in.HourlyRate != nil {
		if in.HourlyRate.IsNegative() {
			return nil, fmt.Errorf("%w: hourly_rate no puede ser negativo", domain.ErrInvalidInput)
		}
		u.HourlyRate = *in.HourlyRate
	}
	if in.AvatarURL != nil {
		u.AvatarURL = *in.AvatarURL
	}
	u.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(u); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(u), nil
}

// Delete baja de usuario: solo admin, y nunca sobre sí mismo.
func (uc *UserUseCase) Delete(actor policy.Actor, id string) error {
	if !policy.CanManageUsers(actor) {
		return domain.ErrForbidden
	}
	if actor.ID == id {
		return domain.ErrForbidden
	}
	u, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.Delete(id)
}
