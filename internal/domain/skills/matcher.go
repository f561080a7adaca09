// Package skills implementa la puntuación de candidatos para asignación de
// tareas a partir de sus habilidades declaradas.
package skills

import (
	"sort"
	"strings"

	"github.com/tu-usuario/projectflow/internal/domain/entity"
)

// Pesos por nivel de competencia.
const (
	weightBeginner     = 1
	weightIntermediate = 2
	weightAdvanced     = 3
	weightExpert       = 4
)

// MatchedSkill habilidad del candidato que coincide con las requeridas.
type MatchedSkill struct {
	SkillName        string
	ProficiencyLevel string
}

// Candidate candidato puntuado para una lista de habilidades requeridas.
type Candidate struct {
	UserID          string
	MatchingSkills  []MatchedSkill
	Score           int
	MatchPercentage int // habilidades coincidentes / requeridas * 100, redondeado
}

// Weight devuelve el peso de un nivel de competencia (desconocido = 1).
func Weight(proficiency string) int {
	switch proficiency {
	case entity.ProficiencyBeginner:
		return weightBeginner
	case entity.ProficiencyIntermediate:
		return weightIntermediate
	case entity.ProficiencyAdvanced:
		return weightAdvanced
	case entity.ProficiencyExpert:
		return weightExpert
	}
	return weightBeginner
}

// Rank agrupa las habilidades por usuario, suma el peso de cada coincidencia y
// devuelve los candidatos ordenados por puntaje descendente. El empate se
// resuelve por ID de usuario ascendente para que el orden sea determinista.
func Rank(userSkills []*entity.UserSkill, required []string) []Candidate {
	if len(required) == 0 || len(userSkills) == 0 {
		return nil
	}

	wanted := make(map[string]bool, len(required))
	for _, s := range required {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			wanted[s] = true
		}
	}
	if len(wanted) == 0 {
		return nil
	}

	byUser := make(map[string]*Candidate)
	var order []string
	for _, us := range userSkills {
		if !wanted[strings.ToLower(us.SkillName)] {
			continue
		}
		c, ok := byUser[us.UserID]
		if !ok {
			c = &Candidate{UserID: us.UserID}
			byUser[us.UserID] = c
			order = append(order, us.UserID)
		}
		c.MatchingSkills = append(c.MatchingSkills, MatchedSkill{
			SkillName:        us.SkillName,
			ProficiencyLevel: us.ProficiencyLevel,
		})
		c.Score += Weight(us.ProficiencyLevel)
	}

	out := make([]Candidate, 0, len(byUser))
	for _, id := range order {
		c := byUser[id]
		c.MatchPercentage = (len(c.MatchingSkills)*100 + len(wanted)/2) / len(wanted)
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}

// ParseRequired separa una lista "a,b,c" en habilidades limpias no vacías.
func ParseRequired(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
