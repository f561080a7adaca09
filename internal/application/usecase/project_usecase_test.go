package usecase_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/application/usecase"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

type fakeTagRepo struct{ tags map[string][]*entity.ProjectTag }

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[string][]*entity.ProjectTag{}}
}

func (r *fakeTagRepo) Create(t *entity.ProjectTag) error {
	for _, ex := range r.tags[t.ProjectID] {
		if ex.Tag == t.Tag {
			return domain.ErrDuplicate
		}
	}
	cp := *t
	r.tags[t.ProjectID] = append(r.tags[t.ProjectID], &cp)
	return nil
}

func (r *fakeTagRepo) ListByProject(projectID string) ([]*entity.ProjectTag, error) {
	out := append([]*entity.ProjectTag(nil), r.tags[projectID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out, nil
}

func (r *fakeTagRepo) DeleteByProject(projectID string) error {
	delete(r.tags, projectID)
	return nil
}

// fakeTxRunner ejecuta el callback sobre los mismos repos, sin transacción real.
type fakeTxRunner struct {
	projects *fakeProjectRepo
	tags     *fakeTagRepo
}

func (r fakeTxRunner) RunProjectTags(ctx context.Context, fn func(
	projectRepo repository.ProjectRepository,
	tagRepo repository.ProjectTagRepository,
) error) error {
	return fn(r.projects, r.tags)
}

func newProjectFixture() (*usecase.ProjectUseCase, *fakeProjectRepo, *fakeTagRepo) {
	projects := newFakeProjectRepo()
	tags := newFakeTagRepo()
	users := newFakeUserRepo(
		&entity.User{ID: "u-pm", FirstName: "Laura", Role: entity.RoleProjectManager},
		&entity.User{ID: "u-admin", FirstName: "Admin", Role: entity.RoleAdmin},
	)
	tasks := newFakeTaskRepo()
	uc := usecase.NewProjectUseCase(projects, tags, tasks, users, fakeTxRunner{projects: projects, tags: tags})
	return uc, projects, tags
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectCreate_DefaultsYManagerImplicito(t *testing.T) {
	uc, _, _ := newProjectFixture()

	out, err := uc.Create(context.Background(), actorManager, dto.CreateProjectRequest{
		Name: "Plataforma",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ProjectStatusPlanning, out.Status)
	assert.Equal(t, entity.PriorityMedium, out.Priority)
	assert.Equal(t, "u-pm", out.ManagerID, "manager_id vacío = el actor")
}

// Un project_manager no puede crear proyectos a nombre de otro: el
// manager_id del cuerpo se ignora y el proyecto queda a su nombre. Admin
// sí puede asignar a quien indique.
func TestProjectCreate_ManagerNoAsignaAOtro(t *testing.T) {
	uc, _, _ := newProjectFixture()

	out, err := uc.Create(context.Background(), actorManager, dto.CreateProjectRequest{
		Name: "Plataforma", ManagerID: "otro-pm",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-pm", out.ManagerID, "el manager crea a su propio nombre")

	out, err = uc.Create(context.Background(), actorAdmin, dto.CreateProjectRequest{
		Name: "Migración", ManagerID: "otro-pm",
	})
	require.NoError(t, err)
	assert.Equal(t, "otro-pm", out.ManagerID)
}

func TestProjectCreate_TeamMemberNoPuede(t *testing.T) {
	uc, _, _ := newProjectFixture()

	_, err := uc.Create(context.Background(), actorMember, dto.CreateProjectRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProjectCreate_TagsDeduplicados(t *testing.T) {
	uc, _, _ := newProjectFixture()

	out, err := uc.Create(context.Background(), actorManager, dto.CreateProjectRequest{
		Name: "Plataforma",
		Tags: []string{"backend", "backend", "", "urgente"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"backend", "urgente"}, out.Tags)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectUpdate_ReemplazaElSetDeTags(t *testing.T) {
	uc, _, _ := newProjectFixture()

	created, err := uc.Create(context.Background(), actorManager, dto.CreateProjectRequest{
		Name: "Plataforma", Tags: []string{"backend", "urgente"},
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), actorManager, created.ID, dto.UpdateProjectRequest{
		Tags: []string{"frontend"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"frontend"}, out.Tags, "tags no nil reemplaza el set completo")

	// Tags nil deja el set intacto.
	name := "Plataforma v2"
	out, err = uc.Update(context.Background(), actorManager, created.ID, dto.UpdateProjectRequest{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"frontend"}, out.Tags)
}

func TestProjectUpdate_SoloAdminReasignaManager(t *testing.T) {
	uc, _, _ := newProjectFixture()

	created, err := uc.Create(context.Background(), actorManager, dto.CreateProjectRequest{
		Name: "Plataforma",
	})
	require.NoError(t, err)

	nuevo := "otro-pm"
	out, err := uc.Update(context.Background(), actorManager, created.ID, dto.UpdateProjectRequest{
		ManagerID: &nuevo,
	})
	require.NoError(t, err)
	assert.Equal(t, "u-pm", out.ManagerID, "el manager no puede reasignarse a sí mismo fuera")

	out, err = uc.Update(context.Background(), actorAdmin, created.ID, dto.UpdateProjectRequest{
		ManagerID: &nuevo,
	})
	require.NoError(t, err)
	assert.Equal(t, "otro-pm", out.ManagerID)
}

func TestProjectUpdate_ManagerAjenoRecibe403(t *testing.T) {
	uc, _, _ := newProjectFixture()

	created, err := uc.Create(context.Background(), actorAdmin, dto.CreateProjectRequest{
		Name: "Plataforma", ManagerID: "otro-pm",
	})
	require.NoError(t, err)

	name := "Intruso"
	_, err = uc.Update(context.Background(), actorManager, created.ID, dto.UpdateProjectRequest{
		Name: &name,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / List / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectGet_TeamMemberRequiereTareaAsignada(t *testing.T) {
	uc, _, _ := newProjectFixture()

	created, err := uc.Create(context.Background(), actorManager, dto.CreateProjectRequest{
		Name: "Plataforma",
	})
	require.NoError(t, err)

	_, err = uc.Get(actorMember, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "sin tarea asignada no hay acceso")
}

func TestProjectDelete_Inexistente(t *testing.T) {
	uc, _, _ := newProjectFixture()
	assert.ErrorIs(t, uc.Delete(actorAdmin, "p-fantasma"), domain.ErrNotFound)
}
