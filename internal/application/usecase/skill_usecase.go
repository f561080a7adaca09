package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/policy"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
	"github.com/tu-usuario/projectflow/internal/domain/skills"
)

var skillTitle = cases.Title(language.English)

// SkillUseCase perfiles de habilidades y sugerencia de asignados para tareas.
type SkillUseCase struct {
	skillRepo repository.UserSkillRepository
	userRepo  repository.UserRepository
}

// NewSkillUseCase construye el caso de uso.
func NewSkillUseCase(skillRepo repository.UserSkillRepository, userRepo repository.UserRepository) *SkillUseCase {
	return &SkillUseCase{skillRepo: skillRepo, userRepo: userRepo}
}

// normalizeSkillName recorta y capitaliza para que "react", "React " y
// "REACT" converjan en una sola habilidad.
func normalizeSkillName(raw string) string {
	return skillTitle.String(strings.ToLower(strings.TrimSpace(raw)))
}

// ListByUser habilidades de un usuario. Visible para cualquier autenticado.
func (uc *SkillUseCase) ListByUser(userID string) ([]dto.UserSkillResponse, error) {
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	list, err := uc.skillRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserSkillResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSkillResponse(s))
	}
	return out, nil
}

// ListAllNames catálogo de nombres de habilidad conocidos, orden alfabético.
func (uc *SkillUseCase) ListAllNames() ([]string, error) {
	return uc.skillRepo.ListSkillNames()
}

// Add agrega o actualiza una habilidad del perfil. Solo el propio usuario o
// un admin; si la habilidad ya existe se actualiza la proficiencia.
func (uc *SkillUseCase) Add(actor policy.Actor, userID string, in dto.AddSkillRequest) (*dto.UserSkillResponse, error) {
	if !policy.CanManageSkills(actor, userID) {
		return nil, domain.ErrForbidden
	}
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	name := normalizeSkillName(in.SkillName)
	if name == "" {
		return nil, fmt.Errorf("%w: skill_name es requerido", domain.ErrInvalidInput)
	}
	prof := in.ProficiencyLevel
	if prof == "" {
		prof = entity.ProficiencyIntermediate
	}
	if !entity.ValidProficiency(prof) {
		return nil, fmt.Errorf("%w: nivel de proficiencia desconocido %q", domain.ErrInvalidInput, prof)
	}

	existing, err := uc.skillRepo.GetByUserAndName(userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.ProficiencyLevel = prof
		existing.UpdatedAt = time.Now()
		if err := uc.skillRepo.Update(existing); err != nil {
			return nil, err
		}
		resp := toSkillResponse(existing)
		return &resp, nil
	}

	now := time.Now()
	s := &entity.UserSkill{
		ID:               uuid.New().String(),
		UserID:           userID,
		SkillName:        name,
		ProficiencyLevel: prof,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.skillRepo.Create(s); err != nil {
		return nil, err
	}
	resp := toSkillResponse(s)
	return &resp, nil
}

// Remove quita una habilidad del perfil. Mismo permiso que Add.
func (uc *SkillUseCase) Remove(actor policy.Actor, userID, skillID string) error {
	if !policy.CanManageSkills(actor, userID) {
		return domain.ErrForbidden
	}
	s, err := uc.skillRepo.GetByID(skillID)
	if err != nil {
		return err
	}
	if s == nil || s.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.skillRepo.Delete(skillID)
}

// Suggest ordena candidatos según las habilidades requeridas (lista separada
// por comas, típicamente el required_skills de una tarea). Sin habilidades
// requeridas la lista sugerida queda vacía.
func (uc *SkillUseCase) Suggest(requiredRaw string) ([]dto.SuggestionResponse, error) {
	required := skills.ParseRequired(requiredRaw)
	if len(required) == 0 {
		return []dto.SuggestionResponse{}, nil
	}
	userSkills, err := uc.skillRepo.ListBySkillNames(required)
	if err != nil {
		return nil, err
	}
	ranked := skills.Rank(userSkills, required)
	out := make([]dto.SuggestionResponse, 0, len(ranked))
	for _, c := range ranked {
		u, err := uc.userRepo.GetByID(c.UserID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			continue
		}
		matched := make([]dto.MatchedSkillDTO, 0, len(c.MatchingSkills))
		for _, m := range c.MatchingSkills {
			matched = append(matched, dto.MatchedSkillDTO{
				SkillName:        m.SkillName,
				ProficiencyLevel: m.ProficiencyLevel,
			})
		}
		out = append(out, dto.SuggestionResponse{
			User:            *dto.NewUserResponse(u),
			MatchingSkills:  matched,
			MatchScore:      c.Score,
			MatchPercentage: c.MatchPercentage,
		})
	}
	return out, nil
}

func toSkillResponse(s *entity.UserSkill) dto.UserSkillResponse {
	return dto.UserSkillResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		SkillName:        s.SkillName,
		ProficiencyLevel: s.ProficiencyLevel,
		CreatedAt:        s.CreatedAt,
	}
}
