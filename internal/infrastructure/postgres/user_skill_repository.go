package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

var _ repository.UserSkillRepository = (*UserSkillRepo)(nil)

// UserSkillRepo implementación del puerto UserSkillRepository sobre PostgreSQL.
type UserSkillRepo struct {
	q Querier
}

// NewUserSkillRepository construye el adaptador de habilidades de usuario.
func NewUserSkillRepository(q Querier) *UserSkillRepo {
	return &UserSkillRepo{q: q}
}

const userSkillColumns = `id, user_id, skill_name, proficiency_level, created_at, updated_at`

// Create persiste una habilidad. (user_id, skill_name) duplicado devuelve domain.ErrDuplicate.
func (r *UserSkillRepo) Create(s *entity.UserSkill) error {
	query := `
		INSERT INTO user_skills (` + userSkillColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.UserID, s.SkillName, s.ProficiencyLevel, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user skill: %w", err)
	}
	return nil
}

// GetByID obtiene una habilidad por ID.
func (r *UserSkillRepo) GetByID(id string) (*entity.UserSkill, error) {
	return r.getBy(`id = $1`, id)
}

// GetByUserAndName obtiene la habilidad de un usuario por nombre exacto.
func (r *UserSkillRepo) GetByUserAndName(userID, skillName string) (*entity.UserSkill, error) {
	return r.getBy(`user_id = $1 AND skill_name = $2`, userID, skillName)
}

func (r *UserSkillRepo) getBy(where string, args ...any) (*entity.UserSkill, error) {
	query := `SELECT ` + userSkillColumns + ` FROM user_skills WHERE ` + where
	var s entity.UserSkill
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.UserID, &s.SkillName, &s.ProficiencyLevel, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user skill: %w", err)
	}
	return &s, nil
}

// Update actualiza la proficiencia de una habilidad existente.
func (r *UserSkillRepo) Update(s *entity.UserSkill) error {
	query := `UPDATE user_skills SET proficiency_level = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.ProficiencyLevel, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update user skill: %w", err)
	}
	return nil
}

// ListByUser habilidades de un usuario, orden alfabético.
func (r *UserSkillRepo) ListByUser(userID string) ([]*entity.UserSkill, error) {
	query := `SELECT ` + userSkillColumns + ` FROM user_skills WHERE user_id = $1 ORDER BY skill_name`
	return r.list(query, userID)
}

// ListBySkillNames todas las filas cuyo skill_name esté en names, ignorando
// mayúsculas (para sugerencias).
func (r *UserSkillRepo) ListBySkillNames(names []string) ([]*entity.UserSkill, error) {
	query := `SELECT ` + userSkillColumns + ` FROM user_skills WHERE LOWER(skill_name) = ANY($1)`
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(strings.TrimSpace(n))
	}
	return r.list(query, lowered)
}

func (r *UserSkillRepo) list(query string, arg any) ([]*entity.UserSkill, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list user skills: %w", err)
	}
	defer rows.Close()

	var skills []*entity.UserSkill
	for rows.Next() {
		var s entity.UserSkill
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.SkillName, &s.ProficiencyLevel, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user skill: %w", err)
		}
		skills = append(skills, &s)
	}
	return skills, rows.Err()
}

// ListSkillNames nombres distintos conocidos, orden ASC (autocompletar).
func (r *UserSkillRepo) ListSkillNames() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT skill_name FROM user_skills ORDER BY skill_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list skill names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan skill name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// Delete elimina una habilidad por ID.
func (r *UserSkillRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM user_skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user skill: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
