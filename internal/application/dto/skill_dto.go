package dto

import "time"

// UserSkillResponse salida de una habilidad declarada.
type UserSkillResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	SkillName        string    `json:"skill_name"`
	ProficiencyLevel string    `json:"proficiency_level"`
	CreatedAt        time.Time `json:"created_at"`
}

// AddSkillRequest alta (o upsert de nivel) de una habilidad del usuario.
type AddSkillRequest struct {
	SkillName        string `json:"skill_name"`
	ProficiencyLevel string `json:"proficiency_level"`
}

// MatchedSkillDTO habilidad coincidente dentro de una sugerencia.
type MatchedSkillDTO struct {
	SkillName        string `json:"skill_name"`
	ProficiencyLevel string `json:"proficiency_level"`
}

// SuggestionResponse candidato sugerido para asignación por habilidades.
type SuggestionResponse struct {
	User            UserResponse      `json:"user"`
	MatchingSkills  []MatchedSkillDTO `json:"matching_skills"`
	MatchScore      int               `json:"match_score"`
	MatchPercentage int               `json:"match_percentage"`
}
