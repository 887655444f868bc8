package matching

import (
	"strings"

	"organ-match/internal/domain/profiles"
)

// HighQualityScore: health score a partir del cual un donante cuenta como "high quality".
const HighQualityScore = 8

// roleRules es lo único que cambia entre matchear como donante o como receptor.
type roleRules struct {
	candidate profiles.Role

	// bloodOK aplica la dirección de donación.
	bloodOK func(subject, candidate profiles.Profile) bool

	// priority es la clave primaria de orden (mayor primero).
	priority func(candidate profiles.Profile) int

	// count suma los contadores propios del rol.
	count func(st *Stats, candidate profiles.Profile)
}

var rulesByRole = map[profiles.Role]roleRules{
	profiles.RoleDonor: {
		candidate: profiles.RoleReceiver,
		bloodOK: func(subject, candidate profiles.Profile) bool {
			return IsBloodCompatible(subject.BloodType, candidate.BloodType)
		},
		priority: func(c profiles.Profile) int { return c.Urgency.Weight() },
		count: func(st *Stats, c profiles.Profile) {
			if c.Urgency == profiles.UrgencyCritical {
				st.CriticalMatches++
			}
		},
	},
	profiles.RoleReceiver: {
		candidate: profiles.RoleDonor,
		bloodOK: func(subject, candidate profiles.Profile) bool {
			return IsBloodCompatible(candidate.BloodType, subject.BloodType)
		},
		priority: func(c profiles.Profile) int { return c.Score() },
		count: func(st *Stats, c profiles.Profile) {
			if c.Score() >= HighQualityScore {
				st.HighQualityMatches++
			}
		},
	},
}

// Eligible aplica el predicado de compatibilidad desde el punto de vista de subject:
// rol opuesto, sangre (direccional), órgano y tejido exactos, candidato activo.
func Eligible(subject, candidate profiles.Profile) bool {
	rules, ok := rulesByRole[subject.Role]
	if !ok {
		return false
	}
	return eligible(rules, subject, candidate)
}

func eligible(rules roleRules, subject, candidate profiles.Profile) bool {
	return candidate.Role == rules.candidate &&
		candidate.Active &&
		candidate.Organ == subject.Organ &&
		candidate.TissueType == subject.TissueType &&
		rules.bloodOK(subject, candidate)
}

// locationContains: substring case-insensitive. Un lado vacío nunca matchea.
func locationContains(outer, inner string) bool {
	o := strings.ToLower(strings.TrimSpace(outer))
	i := strings.ToLower(strings.TrimSpace(inner))
	if o == "" || i == "" {
		return false
	}
	return strings.Contains(o, i)
}

// locationRelated es el desempate de orden (contención en cualquier dirección).
func locationRelated(a, b string) bool {
	return locationContains(a, b) || locationContains(b, a)
}
