package repository

import "github.com/tu-usuario/projectflow/internal/domain/entity"

// ExpenseFilter filtros de listado de gastos. ManagerID recorta a gastos de
// proyectos gestionados por ese usuario.
type ExpenseFilter struct {
	ProjectID string
	State     string
	UserID    string
	ManagerID string
}

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(e *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(f ExpenseFilter) ([]*entity.Expense, error)
	Update(e *entity.Expense) error
	Delete(id string) error
}
