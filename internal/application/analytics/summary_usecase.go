// Package analytics agrega la rentabilidad de un proyecto a partir de sus
// facturas, facturas de proveedor, gastos y horas registradas. Todo se
// recalcula en cada llamada con aritmética decimal; no hay materialización.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/policy"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

// SummaryUseCase calcula el resumen financiero de un proyecto.
type SummaryUseCase struct {
	projectRepo   repository.ProjectRepository
	invoiceRepo   repository.InvoiceRepository
	billRepo      repository.VendorBillRepository
	expenseRepo   repository.ExpenseRepository
	timesheetRepo repository.TimesheetRepository
	userRepo      repository.UserRepository
}

// NewSummaryUseCase construye el agregador.
func NewSummaryUseCase(
	projectRepo repository.ProjectRepository,
	invoiceRepo repository.InvoiceRepository,
	billRepo repository.VendorBillRepository,
	expenseRepo repository.ExpenseRepository,
	timesheetRepo repository.TimesheetRepository,
	userRepo repository.UserRepository,
) *SummaryUseCase {
	return &SummaryUseCase{
		projectRepo:   projectRepo,
		invoiceRepo:   invoiceRepo,
		billRepo:      billRepo,
		expenseRepo:   expenseRepo,
		timesheetRepo: timesheetRepo,
		userRepo:      userRepo,
	}
}

// ProjectSummary ingresos = facturas pagadas; costo = facturas de proveedor
// pagadas + Σ horas × tarifa del usuario + gastos pagados; utilidad = la
// diferencia. La tarifa se resuelve al momento del cálculo, no al registrar
// la hora. Un project_manager solo consulta sus propios proyectos;
// team_member no tiene acceso.
func (uc *SummaryUseCase) ProjectSummary(actor policy.Actor, projectID string) (*dto.ProjectSummaryResponse, error) {
	p, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleSalesFinance:
	case entity.RoleProjectManager:
		if p.ManagerID != actor.ID {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}

	invoices, err := uc.invoiceRepo.List(repository.InvoiceFilter{ProjectID: projectID, State: entity.InvoiceStatePaid})
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for _, inv := range invoices {
		revenue = revenue.Add(inv.Amount)
	}

	bills, err := uc.billRepo.List(repository.InvoiceFilter{ProjectID: projectID, State: entity.InvoiceStatePaid})
	if err != nil {
		return nil, err
	}
	billCost := decimal.Zero
	for _, b := range bills {
		billCost = billCost.Add(b.Amount)
	}

	timesheets, err := uc.timesheetRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	timesheetCost := decimal.Zero
	hoursLogged := decimal.Zero
	rates := make(map[string]decimal.Decimal)
	for _, ts := range timesheets {
		hoursLogged = hoursLogged.Add(ts.Hours)
		rate, ok := rates[ts.UserID]
		if !ok {
			u, err := uc.userRepo.GetByID(ts.UserID)
			if err != nil {
				return nil, err
			}
			if u != nil {
				rate = u.HourlyRate
			}
			rates[ts.UserID] = rate
		}
		timesheetCost = timesheetCost.Add(ts.Hours.Mul(rate))
	}

	expenses, err := uc.expenseRepo.List(repository.ExpenseFilter{ProjectID: projectID, State: entity.ExpenseStatePaid})
	if err != nil {
		return nil, err
	}
	expenseCost := decimal.Zero
	for _, e := range expenses {
		expenseCost = expenseCost.Add(e.Amount)
	}

	cost := billCost.Add(timesheetCost).Add(expenseCost)
	return &dto.ProjectSummaryResponse{
		ProjectID:      projectID,
		Revenue:        revenue,
		Cost:           cost,
		Profit:         revenue.Sub(cost),
		HoursLogged:    hoursLogged,
		InvoiceCount:   len(invoices),
		ExpenseCount:   len(expenses),
		TimesheetCount: len(timesheets),
		Breakdown: dto.CostBreakdown{
			VendorBills: billCost,
			Timesheets:  timesheetCost,
			Expenses:    expenseCost,
		},
	}, nil
}
