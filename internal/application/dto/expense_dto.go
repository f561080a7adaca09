package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	UserID      string          `json:"user_id"`
	User        *UserResponse   `json:"user,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Billable    bool            `json:"billable"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
	State       string          `json:"state"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateExpenseRequest alta de gasto. UserID vacío = el actor. State default pending.
type CreateExpenseRequest struct {
	ProjectID   string          `json:"project_id"`
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Billable    *bool           `json:"billable"`
	ReceiptURL  string          `json:"receipt_url"`
}

// UpdateExpenseRequest actualización parcial. State solo lo honran los roles
// con permiso de aprobación; para team_member el caso de uso lo descarta.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Billable    *bool            `json:"billable"`
	ReceiptURL  *string          `json:"receipt_url"`
	State       *string          `json:"state"`
}

// ExpenseListFilters filtros de query para GET /api/expenses.
type ExpenseListFilters struct {
	ProjectID string `query:"project_id"`
	State     string `query:"state"`
	UserID    string `query:"user_id"`
}
