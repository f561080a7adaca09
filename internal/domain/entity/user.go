package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleAdmin          = "admin"
	RoleProjectManager = "project_manager"
	RoleTeamMember     = "team_member"
	RoleSalesFinance   = "sales_finance"
)

// ValidRole indica si el rol existe en el sistema.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleProjectManager, RoleTeamMember, RoleSalesFinance:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, project_manager, team_member, sales_finance
	HourlyRate   decimal.Decimal
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
