package matching

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"organ-match/internal/domain/profiles"
)

var ErrInvalidSubject = errors.New("invalid match subject")

// Stats se calcula sobre la lista final. Los contadores que no aplican al rol quedan en 0.
type Stats struct {
	TotalMatches int

	// sujeto donante
	CriticalMatches int

	// sujeto receptor
	HighQualityMatches int
	WaitingDays        int

	SameLocation int
}

type Result struct {
	Role   profiles.Role
	Ranked []profiles.Profile
	Stats  Stats
}

// FindMatches filtra pool con el predicado de compatibilidad, ordena de forma estable
// por la prioridad del rol (desempate: ubicación relacionada primero) y calcula stats.
// No muta subject ni pool. now solo se usa para WaitingDays.
func FindMatches(subject profiles.Profile, pool []profiles.Profile, now time.Time) (Result, error) {
	if err := profiles.ValidateMatchSubject(subject); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidSubject, err)
	}
	rules := rulesByRole[subject.Role]

	ranked := make([]profiles.Profile, 0, len(pool))
	for _, c := range pool {
		if eligible(rules, subject, c) {
			ranked = append(ranked, c)
		}
	}

	slices.SortStableFunc(ranked, func(a, b profiles.Profile) int {
		if c := cmp.Compare(rules.priority(b), rules.priority(a)); c != 0 {
			return c
		}
		la := locationRelated(a.Location, subject.Location)
		lb := locationRelated(b.Location, subject.Location)
		switch {
		case la && !lb:
			return -1
		case lb && !la:
			return 1
		default:
			return 0
		}
	})

	return Result{
		Role:   subject.Role,
		Ranked: ranked,
		Stats:  computeStats(rules, subject, ranked, now),
	}, nil
}

func computeStats(rules roleRules, subject profiles.Profile, ranked []profiles.Profile, now time.Time) Stats {
	st := Stats{TotalMatches: len(ranked)}
	for _, c := range ranked {
		rules.count(&st, c)
		if locationContains(c.Location, subject.Location) {
			st.SameLocation++
		}
	}
	if subject.Role == profiles.RoleReceiver {
		st.WaitingDays = WaitingDays(subject.RegisteredAt, now)
	}
	return st
}

// WaitingDays: días desde el alta redondeados hacia arriba; 0 si no hay fecha o es futura.
func WaitingDays(registeredAt, now time.Time) int {
	if registeredAt.IsZero() || !now.After(registeredAt) {
		return 0
	}
	days := now.Sub(registeredAt).Hours() / 24
	return int(math.Ceil(days))
}
