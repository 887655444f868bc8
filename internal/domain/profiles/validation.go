package profiles

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError indica qué campo falló. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (b BloodType) Valid() bool { return slices.Contains(BloodTypes, b) }

func (o Organ) Valid() bool { return slices.Contains(Organs, o) }

func (t TissueType) Valid() bool { return slices.Contains(TissueTypes, t) }

func (u Urgency) Valid() bool { return slices.Contains(Urgencies, u) }

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func validScore(score int) bool {
	return score >= MinHealthScore && score <= MaxHealthScore
}

func validAge(age int) bool { return age >= MinAge && age <= MaxAge }

// NormalizeEmail es la forma con la que se indexa el email (trim + lower).
func NormalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// ValidateMatchSubject exige solo los atributos que el matcher necesita del sujeto.
func ValidateMatchSubject(p Profile) error {
	if _, ok := ParseRole(string(p.Role)); !ok {
		return invalid("role", "must be donor or receiver")
	}
	if blank(string(p.BloodType)) {
		return invalid("blood_type", "required")
	}
	if blank(string(p.Organ)) {
		return invalid("organ", "required")
	}
	if blank(string(p.TissueType)) {
		return invalid("tissue_type", "required")
	}
	if blank(p.Location) {
		return invalid("location", "required")
	}
	switch p.Role {
	case RoleDonor:
		if p.HealthScore == nil {
			return invalid("health_score", "required for donors")
		}
	case RoleReceiver:
		if blank(string(p.Urgency)) {
			return invalid("urgency", "required for receivers")
		}
	}
	return nil
}

// Validate aplica todas las reglas del perfil (alta y edición).
func Validate(p Profile) error {
	if _, ok := ParseRole(string(p.Role)); !ok {
		return invalid("role", "must be donor or receiver")
	}
	if blank(p.Name) {
		return invalid("name", "required")
	}
	if !validAge(p.Age) {
		return invalid("age", fmt.Sprintf("must be between %d and %d", MinAge, MaxAge))
	}
	if !p.Gender.Valid() {
		return invalid("gender", "must be male, female or other")
	}
	if blank(p.Email) || !strings.Contains(p.Email, "@") {
		return invalid("email", "must be a valid address")
	}
	if !p.BloodType.Valid() {
		return invalid("blood_type", "unknown blood type")
	}
	if !p.Organ.Valid() {
		return invalid("organ", "unknown organ")
	}
	if !p.TissueType.Valid() {
		return invalid("tissue_type", "unknown tissue type")
	}
	if blank(p.Location) {
		return invalid("location", "required")
	}
	if blank(p.HospitalName) {
		return invalid("hospital_name", "required")
	}
	if blank(p.MedicalHistory) {
		return invalid("medical_history", "required")
	}

	switch p.Role {
	case RoleDonor:
		if p.HealthScore == nil || !validScore(*p.HealthScore) {
			return invalid("health_score", fmt.Sprintf("must be between %d and %d", MinHealthScore, MaxHealthScore))
		}
		if p.Urgency != "" {
			return invalid("urgency", "only applies to receivers")
		}
	case RoleReceiver:
		if !p.Urgency.Valid() {
			return invalid("urgency", "unknown urgency level")
		}
		if p.HealthScore != nil {
			return invalid("health_score", "only applies to donors")
		}
		if p.HospitalTransportation != "" {
			return invalid("hospital_transportation", "only applies to donors")
		}
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLen))
	}
	return nil
}
