package usecase_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/application/usecase"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
)

type fakeSkillRepo struct{ skills map[string]*entity.UserSkill }

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[string]*entity.UserSkill{}}
}

func (r *fakeSkillRepo) Create(s *entity.UserSkill) error {
	for _, ex := range r.skills {
		if ex.UserID == s.UserID && ex.SkillName == s.SkillName {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.skills[s.ID] = &cp
	return nil
}

func (r *fakeSkillRepo) GetByID(id string) (*entity.UserSkill, error) { return r.skills[id], nil }

func (r *fakeSkillRepo) GetByUserAndName(userID, skillName string) (*entity.UserSkill, error) {
	for _, s := range r.skills {
		if s.UserID == userID && s.SkillName == skillName {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSkillRepo) Update(s *entity.UserSkill) error {
	cp := *s
	r.skills[s.ID] = &cp
	return nil
}

func (r *fakeSkillRepo) ListByUser(userID string) ([]*entity.UserSkill, error) {
	var out []*entity.UserSkill
	for _, s := range r.skills {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SkillName < out[j].SkillName })
	return out, nil
}

// ListBySkillNames coincide sin distinguir mayúsculas, como el adaptador real.
func (r *fakeSkillRepo) ListBySkillNames(names []string) ([]*entity.UserSkill, error) {
	wanted := map[string]bool{}
	for _, n := range names {
		wanted[strings.ToLower(strings.TrimSpace(n))] = true
	}
	var out []*entity.UserSkill
	for _, s := range r.skills {
		if wanted[strings.ToLower(s.SkillName)] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSkillRepo) ListSkillNames() ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, s := range r.skills {
		if !seen[s.SkillName] {
			seen[s.SkillName] = true
			out = append(out, s.SkillName)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeSkillRepo) Delete(id string) error { delete(r.skills, id); return nil }

func newSkillFixture() (*usecase.SkillUseCase, *fakeSkillRepo) {
	users := newFakeUserRepo(
		&entity.User{ID: "u-tm", FirstName: "Carlos", Role: entity.RoleTeamMember},
		&entity.User{ID: "u-dev2", FirstName: "Marta", Role: entity.RoleTeamMember},
	)
	repo := newFakeSkillRepo()
	return usecase.NewSkillUseCase(repo, users), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ──────────────────────────────────────────────────────────────────────────────

func TestSkillAdd_NormalizaElNombre(t *testing.T) {
	uc, _ := newSkillFixture()

	out, err := uc.Add(actorMember, "u-tm", dto.AddSkillRequest{SkillName: "  rEACT  "})
	require.NoError(t, err)
	assert.Equal(t, "React", out.SkillName, "recorte + capitalización")
	assert.Equal(t, entity.ProficiencyIntermediate, out.ProficiencyLevel, "nivel default")
}

func TestSkillAdd_UpsertDeNivel(t *testing.T) {
	uc, _ := newSkillFixture()

	first, err := uc.Add(actorMember, "u-tm", dto.AddSkillRequest{
		SkillName: "Go", ProficiencyLevel: entity.ProficiencyBeginner,
	})
	require.NoError(t, err)

	second, err := uc.Add(actorMember, "u-tm", dto.AddSkillRequest{
		SkillName: "go", ProficiencyLevel: entity.ProficiencyExpert,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "misma habilidad: se actualiza, no se duplica")
	assert.Equal(t, entity.ProficiencyExpert, second.ProficiencyLevel)

	list, err := uc.ListByUser("u-tm")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSkillAdd_SoloPropiasOAdmin(t *testing.T) {
	uc, _ := newSkillFixture()

	_, err := uc.Add(actorMember, "u-dev2", dto.AddSkillRequest{SkillName: "Go"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Add(actorAdmin, "u-dev2", dto.AddSkillRequest{SkillName: "Go"})
	assert.NoError(t, err, "admin gestiona habilidades de cualquiera")
}

func TestSkillAdd_UsuarioInexistente(t *testing.T) {
	uc, _ := newSkillFixture()
	_, err := uc.Add(actorAdmin, "fantasma", dto.AddSkillRequest{SkillName: "Go"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSkillRemove_DebePertenecerAlUsuario(t *testing.T) {
	uc, _ := newSkillFixture()

	mine, err := uc.Add(actorMember, "u-tm", dto.AddSkillRequest{SkillName: "Go"})
	require.NoError(t, err)

	// Un skillId válido pero de otro usuario es 404, no una baja silenciosa.
	other, err := uc.Add(actorAdmin, "u-dev2", dto.AddSkillRequest{SkillName: "Sql"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Remove(actorAdmin, "u-tm", other.ID), domain.ErrNotFound)
	assert.NoError(t, uc.Remove(actorMember, "u-tm", mine.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Suggest
// ──────────────────────────────────────────────────────────────────────────────

func TestSkillSuggest_OrdenaPorPuntaje(t *testing.T) {
	uc, _ := newSkillFixture()

	_, err := uc.Add(actorAdmin, "u-tm", dto.AddSkillRequest{
		SkillName: "Go", ProficiencyLevel: entity.ProficiencyExpert,
	})
	require.NoError(t, err)
	_, err = uc.Add(actorAdmin, "u-tm", dto.AddSkillRequest{
		SkillName: "Postgresql", ProficiencyLevel: entity.ProficiencyAdvanced,
	})
	require.NoError(t, err)
	_, err = uc.Add(actorAdmin, "u-dev2", dto.AddSkillRequest{
		SkillName: "Go", ProficiencyLevel: entity.ProficiencyBeginner,
	})
	require.NoError(t, err)

	out, err := uc.Suggest("go, postgresql")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "u-tm", out[0].User.ID)
	assert.Equal(t, 7, out[0].MatchScore, "expert(4) + advanced(3)")
	assert.Equal(t, 100, out[0].MatchPercentage)

	assert.Equal(t, "u-dev2", out[1].User.ID)
	assert.Equal(t, 1, out[1].MatchScore)
	assert.Equal(t, 50, out[1].MatchPercentage)
}

func TestSkillSuggest_SinRequeridasListaVacia(t *testing.T) {
	uc, _ := newSkillFixture()

	out, err := uc.Suggest("")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = uc.Suggest(" , , ")
	require.NoError(t, err)
	assert.Empty(t, out)
}
