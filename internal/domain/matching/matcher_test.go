package matching

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"
	"time"

	"organ-match/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

func score(n int) *int { return &n }

func donor(id string, bt profiles.BloodType, s int, loc string) profiles.Profile {
	return profiles.Profile{
		ID:          id,
		Role:        profiles.RoleDonor,
		BloodType:   bt,
		Organ:       profiles.OrganKidney,
		TissueType:  profiles.TissueHLAA,
		Location:    loc,
		HealthScore: score(s),
		Active:      true,
	}
}

func receiver(id string, bt profiles.BloodType, u profiles.Urgency, loc string) profiles.Profile {
	return profiles.Profile{
		ID:         id,
		Role:       profiles.RoleReceiver,
		BloodType:  bt,
		Organ:      profiles.OrganKidney,
		TissueType: profiles.TissueHLAA,
		Location:   loc,
		Urgency:    u,
		Active:     true,
	}
}

func ids(ps []profiles.Profile) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

// -------------------------
// Escenarios
// -------------------------

func TestFindMatches_UniversalDonorCriticalSameCity(t *testing.T) {
	subject := donor("DONOR_1", profiles.BloodOneg, 9, "Boston")
	pool := []profiles.Profile{
		receiver("RECEIVER_1", profiles.BloodABpos, profiles.UrgencyCritical, "Boston, MA"),
	}

	res, err := FindMatches(subject, pool, testNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"RECEIVER_1"}, ids(res.Ranked))
	assert.Equal(t, 1, res.Stats.TotalMatches)
	assert.Equal(t, 1, res.Stats.CriticalMatches)
	assert.Equal(t, 1, res.Stats.SameLocation)
	assert.Equal(t, profiles.RoleDonor, res.Role)
}

func TestFindMatches_OrganMismatchExcluded(t *testing.T) {
	subject := donor("DONOR_1", profiles.BloodOneg, 9, "Boston")
	r := receiver("RECEIVER_1", profiles.BloodABpos, profiles.UrgencyCritical, "Boston, MA")
	r.Organ = profiles.OrganLiver

	res, err := FindMatches(subject, []profiles.Profile{r}, testNow)
	require.NoError(t, err)

	require.NotNil(t, res.Ranked)
	assert.Empty(t, res.Ranked)
	assert.Equal(t, Stats{}, res.Stats)
}

func TestFindMatches_ReceiverRanksByHealthScore(t *testing.T) {
	subject := receiver("RECEIVER_1", profiles.BloodABpos, profiles.UrgencyHigh, "Denver")
	subject.Organ = profiles.OrganHeart
	subject.TissueType = profiles.TissueHLADR

	low := donor("DONOR_LOW", profiles.BloodOpos, 6, "Austin")
	high := donor("DONOR_HIGH", profiles.BloodBneg, 9, "Seattle")
	for _, d := range []*profiles.Profile{&low, &high} {
		d.Organ = profiles.OrganHeart
		d.TissueType = profiles.TissueHLADR
	}

	res, err := FindMatches(subject, []profiles.Profile{low, high}, testNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"DONOR_HIGH", "DONOR_LOW"}, ids(res.Ranked))
	assert.Equal(t, 1, res.Stats.HighQualityMatches)
	assert.Equal(t, 0, res.Stats.SameLocation)
}

func TestFindMatches_InactiveCandidateExcludedFromListAndStats(t *testing.T) {
	subject := donor("DONOR_1", profiles.BloodOneg, 9, "Boston")
	inactive := receiver("RECEIVER_OFF", profiles.BloodABpos, profiles.UrgencyCritical, "Boston, MA")
	inactive.Active = false

	res, err := FindMatches(subject, []profiles.Profile{inactive}, testNow)
	require.NoError(t, err)

	assert.Empty(t, res.Ranked)
	assert.Zero(t, res.Stats.TotalMatches)
	assert.Zero(t, res.Stats.CriticalMatches)
	assert.Zero(t, res.Stats.SameLocation)
}

// -------------------------
// Orden
// -------------------------

func TestFindMatches_DonorRanksByUrgencyThenLocation(t *testing.T) {
	subject := donor("DONOR_1", profiles.BloodOneg, 9, "Chicago")
	pool := []profiles.Profile{
		receiver("R_LOW", profiles.BloodOpos, profiles.UrgencyLow, "Chicago, IL"),
		receiver("R_HIGH_FAR", profiles.BloodOpos, profiles.UrgencyHigh, "Miami, FL"),
		receiver("R_CRIT", profiles.BloodOpos, profiles.UrgencyCritical, "Miami, FL"),
		receiver("R_HIGH_NEAR", profiles.BloodOpos, profiles.UrgencyHigh, "chicago"),
		receiver("R_MED", profiles.BloodOpos, profiles.UrgencyMedium, "Chicago, IL"),
	}

	res, err := FindMatches(subject, pool, testNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"R_CRIT", "R_HIGH_NEAR", "R_HIGH_FAR", "R_MED", "R_LOW"}, ids(res.Ranked))
	assert.Equal(t, 1, res.Stats.CriticalMatches)
	assert.Equal(t, 3, res.Stats.SameLocation)
}

func TestFindMatches_LocationTieBreakIsBidirectional(t *testing.T) {
	// el sujeto contiene al candidato ("New York, NY" contiene "new york")
	subject := receiver("RECEIVER_1", profiles.BloodABpos, profiles.UrgencyHigh, "New York, NY")
	far := donor("D_FAR", profiles.BloodOpos, 7, "Boston")
	near := donor("D_NEAR", profiles.BloodOpos, 7, "new york")

	res, err := FindMatches(subject, []profiles.Profile{far, near}, testNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"D_NEAR", "D_FAR"}, ids(res.Ranked))
	// la estadística solo cuenta candidato-contiene-sujeto
	assert.Equal(t, 0, res.Stats.SameLocation)
}

func TestFindMatches_StableForEqualKeys(t *testing.T) {
	subject := donor("DONOR_1", profiles.BloodOneg, 9, "Denver")
	pool := []profiles.Profile{
		receiver("R_A", profiles.BloodAneg, profiles.UrgencyHigh, "Austin"),
		receiver("R_B", profiles.BloodBneg, profiles.UrgencyHigh, "Boise"),
		receiver("R_C", profiles.BloodOpos, profiles.UrgencyHigh, "Camden"),
		receiver("R_D", profiles.BloodABneg, profiles.UrgencyHigh, "Dayton"),
	}

	res, err := FindMatches(subject, pool, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"R_A", "R_B", "R_C", "R_D"}, ids(res.Ranked))
}

func TestFindMatches_EmptyCandidateLocationNeverRelated(t *testing.T) {
	subject := donor("DONOR_1", profiles.BloodOneg, 9, "Boston")
	blank := receiver("R_BLANK", profiles.BloodOpos, profiles.UrgencyHigh, "   ")
	near := receiver("R_NEAR", profiles.BloodOpos, profiles.UrgencyHigh, "Boston, MA")

	res, err := FindMatches(subject, []profiles.Profile{blank, near}, testNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"R_NEAR", "R_BLANK"}, ids(res.Ranked))
	assert.Equal(t, 1, res.Stats.SameLocation)
}

// -------------------------
// Filtro
// -------------------------

func TestFindMatches_DirectionalBlood(t *testing.T) {
	// donante A+ no puede ir a receptor O+, pero donante O+ sí a receptor A+
	subject := donor("DONOR_APOS", profiles.BloodApos, 8, "Reno")
	res, err := FindMatches(subject, []profiles.Profile{
		receiver("R_OPOS", profiles.BloodOpos, profiles.UrgencyHigh, "Reno"),
	}, testNow)
	require.NoError(t, err)
	assert.Empty(t, res.Ranked)

	subjectR := receiver("R_APOS", profiles.BloodApos, profiles.UrgencyHigh, "Reno")
	res, err = FindMatches(subjectR, []profiles.Profile{
		donor("D_OPOS", profiles.BloodOpos, 8, "Reno"),
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"D_OPOS"}, ids(res.Ranked))
}

func TestFindMatches_WrongRoleAndUnknownBloodExcluded(t *testing.T) {
	subject := receiver("RECEIVER_1", profiles.BloodABpos, profiles.UrgencyHigh, "Reno")
	pool := []profiles.Profile{
		receiver("R_OTHER", profiles.BloodOneg, profiles.UrgencyHigh, "Reno"),
		donor("D_UNKNOWN", "Z+", 9, "Reno"),
		donor("D_OK", profiles.BloodABpos, 5, "Reno"),
	}

	res, err := FindMatches(subject, pool, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"D_OK"}, ids(res.Ranked))
}

func TestFindMatches_TissueAndOrganAreCaseSensitive(t *testing.T) {
	subject := donor("DONOR_1", profiles.BloodOneg, 9, "Boston")
	r1 := receiver("R_ORGAN", profiles.BloodOpos, profiles.UrgencyHigh, "Boston")
	r1.Organ = "kidney"
	r2 := receiver("R_TISSUE", profiles.BloodOpos, profiles.UrgencyHigh, "Boston")
	r2.TissueType = profiles.TissueHLAB

	res, err := FindMatches(subject, []profiles.Profile{r1, r2}, testNow)
	require.NoError(t, err)
	assert.Empty(t, res.Ranked)
}

func TestFindMatches_SoundAndCompleteOverRandomPools(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	organs := []profiles.Organ{profiles.OrganKidney, profiles.OrganLiver}
	tissues := []profiles.TissueType{profiles.TissueHLAA, profiles.TissueHLAB}
	locs := []string{"Boston", "Boston, MA", "Chicago", ""}

	randomPool := func(role profiles.Role, n int) []profiles.Profile {
		pool := make([]profiles.Profile, 0, n)
		for i := 0; i < n; i++ {
			p := profiles.Profile{
				ID:         fmt.Sprintf("%s_%03d", role.IDPrefix(), i),
				Role:       role,
				BloodType:  profiles.BloodTypes[rng.Intn(len(profiles.BloodTypes))],
				Organ:      organs[rng.Intn(len(organs))],
				TissueType: tissues[rng.Intn(len(tissues))],
				Location:   locs[rng.Intn(len(locs))],
				Active:     rng.Intn(4) != 0,
			}
			if role == profiles.RoleDonor {
				p.HealthScore = score(1 + rng.Intn(10))
			} else {
				p.Urgency = profiles.Urgencies[rng.Intn(len(profiles.Urgencies))]
			}
			// algún candidato del rol equivocado
			if rng.Intn(10) == 0 {
				p.Role = role.Opposite()
			}
			pool = append(pool, p)
		}
		return pool
	}

	subjects := []profiles.Profile{
		donor("DONOR_S", profiles.BloodOneg, 7, "Boston"),
		donor("DONOR_S2", profiles.BloodBpos, 7, "Chicago"),
		receiver("RECEIVER_S", profiles.BloodABpos, profiles.UrgencyHigh, "Boston"),
		receiver("RECEIVER_S2", profiles.BloodAneg, profiles.UrgencyLow, "Chicago"),
	}

	for round := 0; round < 50; round++ {
		for _, subject := range subjects {
			pool := randomPool(subject.Role.Opposite(), 40)
			before := slices.Clone(pool)

			res, err := FindMatches(subject, pool, testNow)
			require.NoError(t, err)

			// no muta el pool
			assert.Equal(t, before, pool)

			// total == len(ranked)
			assert.Equal(t, len(res.Ranked), res.Stats.TotalMatches)

			// soundness + completeness
			got := map[string]bool{}
			for _, p := range res.Ranked {
				got[p.ID] = true
				assert.True(t, Eligible(subject, p), "ranked %s is not eligible", p.ID)
			}
			for _, p := range pool {
				if Eligible(subject, p) {
					assert.True(t, got[p.ID], "eligible %s omitted", p.ID)
				}
			}

			// prioridad no creciente
			rules := rulesByRole[subject.Role]
			for i := 1; i < len(res.Ranked); i++ {
				assert.GreaterOrEqual(t, rules.priority(res.Ranked[i-1]), rules.priority(res.Ranked[i]))
			}

			// estable: con claves iguales se conserva el orden de entrada
			pos := map[string]int{}
			for i, p := range pool {
				pos[p.ID] = i
			}
			for i := 1; i < len(res.Ranked); i++ {
				a, b := res.Ranked[i-1], res.Ranked[i]
				if rules.priority(a) == rules.priority(b) &&
					locationRelated(a.Location, subject.Location) == locationRelated(b.Location, subject.Location) {
					assert.Less(t, pos[a.ID], pos[b.ID])
				}
			}
		}
	}
}

// -------------------------
// Validación y stats
// -------------------------

func TestFindMatches_InvalidSubject(t *testing.T) {
	cases := map[string]func(*profiles.Profile){
		"role":        func(p *profiles.Profile) { p.Role = "" },
		"blood_type":  func(p *profiles.Profile) { p.BloodType = "" },
		"organ":       func(p *profiles.Profile) { p.Organ = "" },
		"tissue_type": func(p *profiles.Profile) { p.TissueType = "" },
		"location":    func(p *profiles.Profile) { p.Location = " " },
		"urgency":     func(p *profiles.Profile) { p.Urgency = "" },
	}

	for field, mut := range cases {
		t.Run(field, func(t *testing.T) {
			subject := receiver("RECEIVER_1", profiles.BloodABpos, profiles.UrgencyHigh, "Reno")
			mut(&subject)

			res, err := FindMatches(subject, []profiles.Profile{donor("D", profiles.BloodOneg, 9, "Reno")}, testNow)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSubject)
			assert.ErrorIs(t, err, profiles.ErrInvalidInput)

			var ve *profiles.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, field, ve.Field)
			assert.Nil(t, res.Ranked)
		})
	}

	t.Run("health_score", func(t *testing.T) {
		subject := donor("DONOR_1", profiles.BloodOneg, 9, "Reno")
		subject.HealthScore = nil

		_, err := FindMatches(subject, nil, testNow)
		assert.ErrorIs(t, err, ErrInvalidSubject)
	})
}

func TestFindMatches_WaitingDays(t *testing.T) {
	subject := receiver("RECEIVER_1", profiles.BloodABpos, profiles.UrgencyHigh, "Reno")

	subject.RegisteredAt = testNow.Add(-36 * time.Hour)
	res, err := FindMatches(subject, nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Stats.WaitingDays)

	subject.RegisteredAt = testNow
	res, err = FindMatches(subject, nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Stats.WaitingDays)

	// donantes no reportan espera
	d := donor("DONOR_1", profiles.BloodOneg, 9, "Reno")
	d.RegisteredAt = testNow.Add(-100 * time.Hour)
	res, err = FindMatches(d, nil, testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Stats.WaitingDays)
}

func TestWaitingDays(t *testing.T) {
	assert.Equal(t, 0, WaitingDays(time.Time{}, testNow))
	assert.Equal(t, 0, WaitingDays(testNow.Add(time.Hour), testNow))
	assert.Equal(t, 1, WaitingDays(testNow.Add(-time.Minute), testNow))
	assert.Equal(t, 2, WaitingDays(testNow.Add(-48*time.Hour), testNow))
	assert.Equal(t, 3, WaitingDays(testNow.Add(-48*time.Hour-time.Second), testNow))
}
