package matching

import "organ-match/internal/domain/profiles"

// donorCompatibility: tipo del donante -> tipos de receptor que puede recibirlo (ABO/Rh).
var donorCompatibility = map[profiles.BloodType][]profiles.BloodType{
	profiles.BloodOneg: {
		profiles.BloodOneg, profiles.BloodOpos, profiles.BloodAneg, profiles.BloodApos,
		profiles.BloodBneg, profiles.BloodBpos, profiles.BloodABneg, profiles.BloodABpos,
	},
	profiles.BloodOpos:  {profiles.BloodOpos, profiles.BloodApos, profiles.BloodBpos, profiles.BloodABpos},
	profiles.BloodAneg:  {profiles.BloodAneg, profiles.BloodApos, profiles.BloodABneg, profiles.BloodABpos},
	profiles.BloodApos:  {profiles.BloodApos, profiles.BloodABpos},
	profiles.BloodBneg:  {profiles.BloodBneg, profiles.BloodBpos, profiles.BloodABneg, profiles.BloodABpos},
	profiles.BloodBpos:  {profiles.BloodBpos, profiles.BloodABpos},
	profiles.BloodABneg: {profiles.BloodABneg, profiles.BloodABpos},
	profiles.BloodABpos: {profiles.BloodABpos},
}

// IsBloodCompatible indica si sangre del donante puede ir al receptor.
// Un tipo de donante desconocido nunca es compatible.
func IsBloodCompatible(donor, receiver profiles.BloodType) bool {
	for _, bt := range donorCompatibility[donor] {
		if bt == receiver {
			return true
		}
	}
	return false
}
