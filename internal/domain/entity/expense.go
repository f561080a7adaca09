package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un gasto. pending → approved/rejected → paid; las transiciones
// están vigiladas por rol, no por una máquina de estados.
const (
	ExpenseStatePending  = "pending"
	ExpenseStateApproved = "approved"
	ExpenseStateRejected = "rejected"
	ExpenseStatePaid     = "paid"
)

// ValidExpenseState indica si el estado es conocido.
func ValidExpenseState(s string) bool {
	switch s {
	case ExpenseStatePending, ExpenseStateApproved, ExpenseStateRejected, ExpenseStatePaid:
		return true
	}
	return false
}

// Expense gasto registrado por un usuario contra un proyecto.
type Expense struct {
	ID          string
	ProjectID   string
	UserID      string
	Amount      decimal.Decimal
	Description string
	Billable    bool
	ReceiptURL  string
	State       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
