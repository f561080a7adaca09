package entity

import "time"

// Niveles de competencia de una habilidad.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// ValidProficiency indica si el nivel es conocido.
func ValidProficiency(p string) bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

// UserSkill habilidad declarada de un usuario. Única por (user_id, skill_name).
type UserSkill struct {
	ID               string
	UserID           string
	SkillName        string
	ProficiencyLevel string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
