package profiles

import "time"

// Role distingue las dos colecciones de perfiles.
// @Enum donor, receiver
type Role string

const (
	RoleDonor    Role = "donor"
	RoleReceiver Role = "receiver"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleDonor, RoleReceiver:
		return Role(s), true
	default:
		return "", false
	}
}

// Opposite devuelve el rol de la contraparte.
func (r Role) Opposite() Role {
	if r == RoleDonor {
		return RoleReceiver
	}
	return RoleDonor
}

// IDPrefix es el prefijo de los IDs de cada colección.
func (r Role) IDPrefix() string {
	if r == RoleDonor {
		return "DONOR"
	}
	return "RECEIVER"
}

// Gender
// @Enum male, female, other
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// BloodType ABO/Rh.
// @Enum O-, O+, A-, A+, B-, B+, AB-, AB+
type BloodType string

const (
	BloodOneg  BloodType = "O-"
	BloodOpos  BloodType = "O+"
	BloodAneg  BloodType = "A-"
	BloodApos  BloodType = "A+"
	BloodBneg  BloodType = "B-"
	BloodBpos  BloodType = "B+"
	BloodABneg BloodType = "AB-"
	BloodABpos BloodType = "AB+"
)

// BloodTypes en orden de catálogo.
var BloodTypes = []BloodType{
	BloodOneg, BloodOpos, BloodAneg, BloodApos,
	BloodBneg, BloodBpos, BloodABneg, BloodABpos,
}

// Organ catálogo fijo.
type Organ string

const (
	OrganHeart          Organ = "Heart"
	OrganLiver          Organ = "Liver"
	OrganKidney         Organ = "Kidney"
	OrganLung           Organ = "Lung"
	OrganPancreas       Organ = "Pancreas"
	OrganSmallIntestine Organ = "Small Intestine"
	OrganCornea         Organ = "Cornea"
	OrganSkin           Organ = "Skin"
	OrganBone           Organ = "Bone"
	OrganHeartValve     Organ = "Heart Valve"
)

var Organs = []Organ{
	OrganHeart, OrganLiver, OrganKidney, OrganLung, OrganPancreas,
	OrganSmallIntestine, OrganCornea, OrganSkin, OrganBone, OrganHeartValve,
}

// TissueType locus HLA (comparación exacta, no es matching HLA real).
// @Enum HLA-A, HLA-B, HLA-C, HLA-DR, HLA-DQ, HLA-DP
type TissueType string

const (
	TissueHLAA  TissueType = "HLA-A"
	TissueHLAB  TissueType = "HLA-B"
	TissueHLAC  TissueType = "HLA-C"
	TissueHLADR TissueType = "HLA-DR"
	TissueHLADQ TissueType = "HLA-DQ"
	TissueHLADP TissueType = "HLA-DP"
)

var TissueTypes = []TissueType{
	TissueHLAA, TissueHLAB, TissueHLAC, TissueHLADR, TissueHLADQ, TissueHLADP,
}

// Urgency banda ordinal del receptor.
type Urgency string

const (
	UrgencyCritical Urgency = "Critical (1-7 days)"
	UrgencyHigh     Urgency = "High (1-30 days)"
	UrgencyMedium   Urgency = "Medium (1-6 months)"
	UrgencyLow      Urgency = "Low (6+ months)"
)

var Urgencies = []Urgency{UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow}

// Weight: Critical=4 ... Low=1, desconocida=0.
func (u Urgency) Weight() int {
	switch u {
	case UrgencyCritical:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	default:
		return 0
	}
}

const (
	MinAge         = 18
	MaxAge         = 80
	MinHealthScore = 1
	MaxHealthScore = 10
	MinPasswordLen = 6
)

// Profile es la forma común de donantes y receptores.
// Los campos de un solo rol quedan en cero para el otro.
type Profile struct {
	ID   string
	Role Role

	Name   string
	Age    int
	Gender Gender

	BloodType  BloodType
	Organ      Organ
	TissueType TissueType

	Location               string
	HospitalName           string
	HospitalTransportation string // solo donor, opcional
	MedicalHistory         string

	Email        string
	PasswordHash string

	HealthScore *int    // solo donor
	Urgency     Urgency // solo receiver

	Active       bool
	RegisteredAt time.Time
	UpdatedAt    time.Time
}

// Score devuelve el health score o 0 si no hay.
func (p Profile) Score() int {
	if p.HealthScore == nil {
		return 0
	}
	return *p.HealthScore
}

func (p Profile) IsDonor() bool    { return p.Role == RoleDonor }
func (p Profile) IsReceiver() bool { return p.Role == RoleReceiver }
