package profiles

import (
	"context"
	"errors"
	"time"
)

// Sample es un perfil de demo con ID y fecha de alta fijos.
type Sample struct {
	ID           string
	RegisteredAt time.Time
	Input        RegisterInput
}

// Seed registra los samples que no existan todavía (por email dentro del rol).
// Devuelve cuántos se crearon.
func (s *Service) Seed(ctx context.Context, samples []Sample) (int, error) {
	created := 0
	for _, smp := range samples {
		p, err := s.buildProfile(smp.Input)
		if err != nil {
			return created, err
		}
		p.ID = smp.ID
		p.RegisteredAt = smp.RegisteredAt
		p.UpdatedAt = smp.RegisteredAt

		if _, err := s.create(ctx, p, smp.Input.Password); err != nil {
			if errors.Is(err, ErrEmailTaken) {
				continue
			}
			return created, err
		}
		created++
	}

	s.log.Info("sample profiles seeded", map[string]any{"created": created, "total": len(samples)})
	return created, nil
}

// SampleProfiles son los donantes y receptores de demo.
// Todos usan la contraseña "password123".
func SampleProfiles() []Sample {
	score := func(n int) *int { return &n }
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	return []Sample{
		{
			ID:           "DONOR_001",
			RegisteredAt: at("2024-01-15T10:30:00Z"),
			Input: RegisterInput{
				Role: RoleDonor, Name: "John Smith", Age: 35, Gender: GenderMale,
				BloodType: BloodOpos, Organ: OrganKidney, TissueType: TissueHLAA,
				Location: "New York, NY", HospitalName: "Mount Sinai Hospital",
				HospitalTransportation: "Ambulance available 24/7",
				MedicalHistory:         "Healthy individual with no major medical conditions. Regular exercise, non-smoker, occasional social drinker.",
				Email:                  "john.smith@email.com", Password: "password123",
				HealthScore: score(9),
			},
		},
		{
			ID:           "DONOR_002",
			RegisteredAt: at("2024-02-01T14:20:00Z"),
			Input: RegisterInput{
				Role: RoleDonor, Name: "Sarah Johnson", Age: 28, Gender: GenderFemale,
				BloodType: BloodApos, Organ: OrganLiver, TissueType: TissueHLAB,
				Location: "Los Angeles, CA", HospitalName: "UCLA Medical Center",
				HospitalTransportation: "Hospital transport service",
				MedicalHistory:         "Excellent health, vegetarian diet, regular medical checkups. No history of liver disease.",
				Email:                  "sarah.johnson@email.com", Password: "password123",
				HealthScore: score(8),
			},
		},
		{
			ID:           "DONOR_003",
			RegisteredAt: at("2024-01-20T09:15:00Z"),
			Input: RegisterInput{
				Role: RoleDonor, Name: "Michael Chen", Age: 42, Gender: GenderMale,
				BloodType: BloodBpos, Organ: OrganHeart, TissueType: TissueHLADR,
				Location: "Chicago, IL", HospitalName: "Northwestern Memorial Hospital",
				HospitalTransportation: "Emergency medical services",
				MedicalHistory:         "Good cardiovascular health, regular cardio exercise, no smoking history.",
				Email:                  "michael.chen@email.com", Password: "password123",
				HealthScore: score(7),
			},
		},
		{
			ID:           "RECEIVER_001",
			RegisteredAt: at("2024-01-10T08:00:00Z"),
			Input: RegisterInput{
				Role: RoleReceiver, Name: "Emily Davis", Age: 45, Gender: GenderFemale,
				BloodType: BloodOpos, Organ: OrganKidney, TissueType: TissueHLAA,
				Location: "New York, NY", HospitalName: "Mount Sinai Hospital",
				MedicalHistory: "Chronic kidney disease stage 5, on dialysis for 2 years. Diabetes type 2 managed with medication.",
				Email:          "emily.davis@email.com", Password: "password123",
				Urgency: UrgencyHigh,
			},
		},
		{
			ID:           "RECEIVER_002",
			RegisteredAt: at("2024-02-10T16:45:00Z"),
			Input: RegisterInput{
				Role: RoleReceiver, Name: "Robert Wilson", Age: 38, Gender: GenderMale,
				BloodType: BloodApos, Organ: OrganLiver, TissueType: TissueHLAB,
				Location: "Los Angeles, CA", HospitalName: "UCLA Medical Center",
				MedicalHistory: "End-stage liver disease due to hepatitis C. Currently hospitalized and on priority waiting list.",
				Email:          "robert.wilson@email.com", Password: "password123",
				Urgency: UrgencyCritical,
			},
		},
		{
			ID:           "RECEIVER_003",
			RegisteredAt: at("2024-01-25T11:30:00Z"),
			Input: RegisterInput{
				Role: RoleReceiver, Name: "Lisa Thompson", Age: 52, Gender: GenderFemale,
				BloodType: BloodBpos, Organ: OrganHeart, TissueType: TissueHLADR,
				Location: "Chicago, IL", HospitalName: "Northwestern Memorial Hospital",
				MedicalHistory: "Cardiomyopathy with reduced ejection fraction. Heart failure symptoms managed with medications.",
				Email:          "lisa.thompson@email.com", Password: "password123",
				Urgency: UrgencyMedium,
			},
		},
	}
}
