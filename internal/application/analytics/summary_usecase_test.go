package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/projectflow/internal/application/analytics"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/policy"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

// Fakes mínimos: listas en memoria con los mismos filtros que usa el agregador.

type stubProjectRepo struct{ projects map[string]*entity.Project }

func (r stubProjectRepo) Create(p *entity.Project) error              { return nil }
func (r stubProjectRepo) GetByID(id string) (*entity.Project, error)  { return r.projects[id], nil }
func (r stubProjectRepo) Update(p *entity.Project) error              { return nil }
func (r stubProjectRepo) Delete(id string) error                      { return nil }
func (r stubProjectRepo) List(repository.ProjectFilter) ([]*entity.Project, error) {
	return nil, nil
}

type stubInvoiceRepo struct{ invoices []*entity.Invoice }

func (r stubInvoiceRepo) Create(*entity.Invoice) error              { return nil }
func (r stubInvoiceRepo) GetByID(string) (*entity.Invoice, error)   { return nil, nil }
func (r stubInvoiceRepo) Update(*entity.Invoice) error              { return nil }
func (r stubInvoiceRepo) Delete(string) error                       { return nil }
func (r stubInvoiceRepo) Count() (int, error)                       { return len(r.invoices), nil }
func (r stubInvoiceRepo) List(f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if f.ProjectID != "" && inv.ProjectID != f.ProjectID {
			continue
		}
		if f.State != "" && inv.State != f.State {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

type stubBillRepo struct{ bills []*entity.VendorBill }

func (r stubBillRepo) Create(*entity.VendorBill) error            { return nil }
func (r stubBillRepo) GetByID(string) (*entity.VendorBill, error) { return nil, nil }
func (r stubBillRepo) Update(*entity.VendorBill) error            { return nil }
func (r stubBillRepo) Delete(string) error                        { return nil }
func (r stubBillRepo) List(f repository.InvoiceFilter) ([]*entity.VendorBill, error) {
	var out []*entity.VendorBill
	for _, b := range r.bills {
		if f.ProjectID != "" && b.ProjectID != f.ProjectID {
			continue
		}
		if f.State != "" && b.State != f.State {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type stubExpenseRepo struct{ expenses []*entity.Expense }

func (r stubExpenseRepo) Create(*entity.Expense) error            { return nil }
func (r stubExpenseRepo) GetByID(string) (*entity.Expense, error) { return nil, nil }
func (r stubExpenseRepo) Update(*entity.Expense) error            { return nil }
func (r stubExpenseRepo) Delete(string) error                     { return nil }
func (r stubExpenseRepo) List(f repository.ExpenseFilter) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		if f.ProjectID != "" && e.ProjectID != f.ProjectID {
			continue
		}
		if f.State != "" && e.State != f.State {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type stubTimesheetRepo struct{ timesheets []*entity.Timesheet }

func (r stubTimesheetRepo) Create(*entity.Timesheet) error { return nil }
func (r stubTimesheetRepo) ListByTask(string) ([]*entity.Timesheet, error) {
	return nil, nil
}
func (r stubTimesheetRepo) ListByProject(string) ([]*entity.Timesheet, error) {
	return r.timesheets, nil
}

type stubUserRepo struct{ users map[string]*entity.User }

func (r stubUserRepo) Create(*entity.User) error               { return nil }
func (r stubUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r stubUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (r stubUserRepo) Update(*entity.User) error               { return nil }
func (r stubUserRepo) List(string) ([]*entity.User, error)     { return nil, nil }
func (r stubUserRepo) Delete(string) error                     { return nil }

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func newSummaryFixture() *analytics.SummaryUseCase {
	projects := stubProjectRepo{projects: map[string]*entity.Project{
		"p1": {ID: "p1", Name: "Plataforma", ManagerID: "u-pm"},
	}}
	invoices := stubInvoiceRepo{invoices: []*entity.Invoice{
		{ID: "i1", ProjectID: "p1", Amount: dec(1000), State: entity.InvoiceStatePaid},
		{ID: "i2", ProjectID: "p1", Amount: dec(500), State: entity.InvoiceStatePaid},
		{ID: "i3", ProjectID: "p1", Amount: dec(9999), State: entity.InvoiceStateDraft}, // no cuenta
		{ID: "i4", ProjectID: "otro", Amount: dec(9999), State: entity.InvoiceStatePaid},
	}}
	bills := stubBillRepo{bills: []*entity.VendorBill{
		{ID: "b1", ProjectID: "p1", Amount: dec(300), State: entity.InvoiceStatePaid},
		{ID: "b2", ProjectID: "p1", Amount: dec(400), State: entity.InvoiceStateSent}, // no cuenta
	}}
	expenses := stubExpenseRepo{expenses: []*entity.Expense{
		{ID: "e1", ProjectID: "p1", Amount: dec(50), State: entity.ExpenseStatePaid},
		{ID: "e2", ProjectID: "p1", Amount: dec(70), State: entity.ExpenseStatePending}, // no cuenta
	}}
	timesheets := stubTimesheetRepo{timesheets: []*entity.Timesheet{
		{ID: "t1", TaskID: "task1", UserID: "u-dev", Hours: dec(4)},
		{ID: "t2", TaskID: "task1", UserID: "u-dev", Hours: dec(2)},
		{ID: "t3", TaskID: "task2", UserID: "u-sin-perfil", Hours: dec(8)}, // tarifa cero
	}}
	users := stubUserRepo{users: map[string]*entity.User{
		"u-dev": {ID: "u-dev", HourlyRate: dec(50)},
	}}
	return analytics.NewSummaryUseCase(projects, invoices, bills, expenses, timesheets, users)
}

func TestProjectSummary_CalculaIngresosCostosYUtilidad(t *testing.T) {
	uc := newSummaryFixture()
	admin := policy.Actor{ID: "u-admin", Role: entity.RoleAdmin}

	out, err := uc.ProjectSummary(admin, "p1")
	require.NoError(t, err)

	// Ingresos: 1000 + 500 facturas pagadas del proyecto.
	assert.True(t, dec(1500).Equal(out.Revenue), "revenue = %s", out.Revenue)

	// Costos: 300 proveedor + (4+2)×50 horas + 50 gastos pagados = 650.
	assert.True(t, dec(650).Equal(out.Cost), "cost = %s", out.Cost)
	assert.True(t, dec(300).Equal(out.Breakdown.VendorBills))
	assert.True(t, dec(300).Equal(out.Breakdown.Timesheets),
		"el usuario sin perfil aporta horas con tarifa cero")
	assert.True(t, dec(50).Equal(out.Breakdown.Expenses))

	assert.True(t, dec(850).Equal(out.Profit), "profit = revenue - cost")
	assert.True(t, dec(14).Equal(out.HoursLogged), "4+2+8 horas registradas")
	assert.Equal(t, 2, out.InvoiceCount)
	assert.Equal(t, 1, out.ExpenseCount)
	assert.Equal(t, 3, out.TimesheetCount)
}

func TestProjectSummary_ProyectoInexistente(t *testing.T) {
	uc := newSummaryFixture()
	admin := policy.Actor{ID: "u-admin", Role: entity.RoleAdmin}

	_, err := uc.ProjectSummary(admin, "p-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectSummary_Autorizacion(t *testing.T) {
	uc := newSummaryFixture()

	owner := policy.Actor{ID: "u-pm", Role: entity.RoleProjectManager}
	_, err := uc.ProjectSummary(owner, "p1")
	assert.NoError(t, err, "el manager consulta sus propios proyectos")

	other := policy.Actor{ID: "otro-pm", Role: entity.RoleProjectManager}
	_, err = uc.ProjectSummary(other, "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	member := policy.Actor{ID: "u-tm", Role: entity.RoleTeamMember}
	_, err = uc.ProjectSummary(member, "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
