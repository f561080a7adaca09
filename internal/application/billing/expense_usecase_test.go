package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/projectflow/internal/application/billing"
	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
)

func newExpenseFixture() *billing.ExpenseUseCase {
	projects := newFakeProjectRepo(
		&entity.Project{ID: "p1", Name: "Plataforma", ManagerID: "u-pm"},
		&entity.Project{ID: "p2", Name: "Migración", ManagerID: "otro-pm"},
	)
	users := newFakeUserRepo(
		&entity.User{ID: "u-tm", FirstName: "Carlos", Role: entity.RoleTeamMember},
		&entity.User{ID: "u-pm", FirstName: "Laura", Role: entity.RoleProjectManager},
	)
	return billing.NewExpenseUseCase(newFakeExpenseRepo(), projects, users)
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseCreate_DefaultsPendingYNoBillable(t *testing.T) {
	uc := newExpenseFixture()

	out, err := uc.Create(actorMember, dto.CreateExpenseRequest{
		ProjectID: "p1",
		Amount:    decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ExpenseStatePending, out.State)
	assert.False(t, out.Billable)
	assert.Equal(t, "u-tm", out.UserID, "user_id vacío = el actor")
}

func TestExpenseCreate_UsuarioExplicitoDebeExistir(t *testing.T) {
	uc := newExpenseFixture()

	out, err := uc.Create(actorAdmin, dto.CreateExpenseRequest{
		ProjectID: "p1", UserID: "u-tm", Amount: decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	assert.Equal(t, "u-tm", out.UserID)

	_, err = uc.Create(actorAdmin, dto.CreateExpenseRequest{
		ProjectID: "p1", UserID: "fantasma", Amount: decimal.NewFromInt(80),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseCreate_ProyectoInexistente(t *testing.T) {
	uc := newExpenseFixture()
	_, err := uc.Create(actorMember, dto.CreateExpenseRequest{
		ProjectID: "p-fantasma", Amount: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — niveles de edición
// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseUpdate_TeamMemberNoPuedeCambiarElEstado(t *testing.T) {
	uc := newExpenseFixture()

	out, err := uc.Create(actorMember, dto.CreateExpenseRequest{
		ProjectID: "p1", Amount: decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	// El state del cuerpo se descarta sin error; el resto de campos sí aplica.
	upd, err := uc.Update(actorMember, out.ID, dto.UpdateExpenseRequest{
		Description: strPtr("taxi al cliente"),
		State:       strPtr(entity.ExpenseStateApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, "taxi al cliente", upd.Description)
	assert.Equal(t, entity.ExpenseStatePending, upd.State, "el state se ignora para team_member")
}

func TestExpenseUpdate_TeamMemberBloqueadoTrasAprobacion(t *testing.T) {
	uc := newExpenseFixture()

	out, err := uc.Create(actorMember, dto.CreateExpenseRequest{
		ProjectID: "p1", Amount: decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	_, err = uc.Update(actorManager, out.ID, dto.UpdateExpenseRequest{
		State: strPtr(entity.ExpenseStateApproved),
	})
	require.NoError(t, err)

	_, err = uc.Update(actorMember, out.ID, dto.UpdateExpenseRequest{
		Description: strPtr("intento tardío"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un gasto aprobado es inmutable para su dueño")
}

func TestExpenseUpdate_ManagerApruebaSoloSusProyectos(t *testing.T) {
	uc := newExpenseFixture()

	propio, err := uc.Create(actorMember, dto.CreateExpenseRequest{
		ProjectID: "p1", Amount: decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	ajeno, err := uc.Create(actorAdmin, dto.CreateExpenseRequest{
		ProjectID: "p2", UserID: "u-tm", Amount: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	upd, err := uc.Update(actorManager, propio.ID, dto.UpdateExpenseRequest{
		State: strPtr(entity.ExpenseStateApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ExpenseStateApproved, upd.State)

	_, err = uc.Update(actorManager, ajeno.ID, dto.UpdateExpenseRequest{
		State: strPtr(entity.ExpenseStateApproved),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestExpenseUpdate_EstadoDesconocido(t *testing.T) {
	uc := newExpenseFixture()

	out, err := uc.Create(actorMember, dto.CreateExpenseRequest{
		ProjectID: "p1", Amount: decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	_, err = uc.Update(actorAdmin, out.ID, dto.UpdateExpenseRequest{
		State: strPtr("reembolsado"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseList_TeamMemberSoloLosPropios(t *testing.T) {
	uc := newExpenseFixture()

	_, err := uc.Create(actorMember, dto.CreateExpenseRequest{
		ProjectID: "p1", Amount: decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	_, err = uc.Create(actorAdmin, dto.CreateExpenseRequest{
		ProjectID: "p1", Amount: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	propios, err := uc.List(actorMember, dto.ExpenseListFilters{})
	require.NoError(t, err)
	require.Len(t, propios, 1)
	assert.Equal(t, "u-tm", propios[0].UserID)

	// El filtro user_id de un team_member se ignora: sigue viendo solo lo suyo.
	otros, err := uc.List(actorMember, dto.ExpenseListFilters{UserID: "u-admin"})
	require.NoError(t, err)
	require.Len(t, otros, 1)
	assert.Equal(t, "u-tm", otros[0].UserID)

	todos, err := uc.List(actorAdmin, dto.ExpenseListFilters{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestExpenseDelete_SoloFinanzas(t *testing.T) {
	uc := newExpenseFixture()

	out, err := uc.Create(actorMember, dto.CreateExpenseRequest{
		ProjectID: "p1", Amount: decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(actorMember, out.ID), domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(actorManager, out.ID), domain.ErrForbidden)
	assert.NoError(t, uc.Delete(actorFinance, out.ID))
}
