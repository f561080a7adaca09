package billing_test

import (
	"strings"

	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/policy"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests del paquete.

var (
	actorAdmin   = policy.Actor{ID: "u-admin", Role: entity.RoleAdmin}
	actorFinance = policy.Actor{ID: "u-sf", Role: entity.RoleSalesFinance}
	actorManager = policy.Actor{ID: "u-pm", Role: entity.RoleProjectManager}
	actorMember  = policy.Actor{ID: "u-tm", Role: entity.RoleTeamMember}
)

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func newFakeProjectRepo(projects ...*entity.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: map[string]*entity.Project{}}
	for _, p := range projects {
		r.projects[p.ID] = p
	}
	return r
}

func (r *fakeProjectRepo) Create(p *entity.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	return r.projects[id], nil
}
func (r *fakeProjectRepo) List(f repository.ProjectFilter) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.projects {
		if f.ManagerID != "" && p.ManagerID != f.ManagerID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProjectRepo) Update(p *entity.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) Delete(id string) error         { delete(r.projects, id); return nil }

type fakeSalesOrderRepo struct {
	orders map[string]*entity.SalesOrder
}

func newFakeSalesOrderRepo(orders ...*entity.SalesOrder) *fakeSalesOrderRepo {
	r := &fakeSalesOrderRepo{orders: map[string]*entity.SalesOrder{}}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *fakeSalesOrderRepo) Create(o *entity.SalesOrder) error { r.orders[o.ID] = o; return nil }
func (r *fakeSalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	return r.orders[id], nil
}
func (r *fakeSalesOrderRepo) List(f repository.OrderFilter) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}
func (r *fakeSalesOrderRepo) Update(o *entity.SalesOrder) error { r.orders[o.ID] = o; return nil }
func (r *fakeSalesOrderRepo) Delete(id string) error            { delete(r.orders, id); return nil }

// fakeInvoiceRepo replica la restricción de unicidad sobre el número de
// factura, necesaria para ejercitar la generación del consecutivo.
type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	byNumber map[string]string
	// staleCounts simula la carrera del consecutivo: mientras queden valores,
	// Count los devuelve en orden antes de reflejar el estado real.
	staleCounts []int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: map[string]*entity.Invoice{},
		byNumber: map[string]string{},
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if _, ok := r.byNumber[inv.Number]; ok {
		return domain.ErrDuplicate
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	r.byNumber[inv.Number] = inv.ID
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) { return r.invoices[id], nil }

func (r *fakeInvoiceRepo) List(f repository.InvoiceFilter) ([]*entity.Invoice, error) {
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

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	if inv, ok := r.invoices[id]; ok {
		delete(r.byNumber, inv.Number)
		delete(r.invoices, id)
	}
	return nil
}

func (r *fakeInvoiceRepo) Count() (int, error) {
	if len(r.staleCounts) > 0 {
		n := r.staleCounts[0]
		r.staleCounts = r.staleCounts[1:]
		return n, nil
	}
	return len(r.invoices), nil
}

type fakeExpenseRepo struct {
	expenses map[string]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: map[string]*entity.Expense{}}
}

func (r *fakeExpenseRepo) Create(e *entity.Expense) error {
	cp := *e
	r.expenses[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) GetByID(id string) (*entity.Expense, error) { return r.expenses[id], nil }

func (r *fakeExpenseRepo) List(f repository.ExpenseFilter) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		if f.ProjectID != "" && e.ProjectID != f.ProjectID {
			continue
		}
		if f.State != "" && e.State != f.State {
			continue
		}
		if f.UserID != "" && e.UserID != f.UserID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeExpenseRepo) Update(e *entity.Expense) error {
	cp := *e
	r.expenses[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) Delete(id string) error { delete(r.expenses, id); return nil }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error            { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) List(role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *fakeUserRepo) Delete(id string) error { delete(r.users, id); return nil }

// fakePDFGenerator evita tocar maroto en los tests del caso de uso.
type fakePDFGenerator struct{}

func (fakePDFGenerator) Generate(inv *entity.Invoice, p *entity.Project) ([]byte, error) {
	return []byte("%PDF-fake " + inv.Number), nil
}
