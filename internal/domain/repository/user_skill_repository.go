package repository

import "github.com/tu-usuario/projectflow/internal/domain/entity"

// UserSkillRepository define el puerto de persistencia para UserSkill.
type UserSkillRepository interface {
	// Create devuelve domain.ErrDuplicate si (user_id, skill_name) ya existe.
	Create(s *entity.UserSkill) error
	GetByID(id string) (*entity.UserSkill, error)
	GetByUserAndName(userID, skillName string) (*entity.UserSkill, error)
	Update(s *entity.UserSkill) error
	// ListByUser orden skill_name ASC.
	ListByUser(userID string) ([]*entity.UserSkill, error)
	// ListBySkillNames todas las filas cuyo skill_name esté en names.
	ListBySkillNames(names []string) ([]*entity.UserSkill, error)
	// ListSkillNames nombres distintos, orden ASC (autocompletar).
	ListSkillNames() ([]string, error)
	Delete(id string) error
}
