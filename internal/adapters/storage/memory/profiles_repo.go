package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"organ-match/internal/domain/profiles"
)

type profileRepo struct {
	mu   sync.RWMutex
	byID map[string]profiles.Profile
}

func NewProfilesRepo() profiles.Repository {
	return &profileRepo{
		byID: make(map[string]profiles.Profile),
	}
}

// ListAll devuelve la colección del rol ordenada por fecha de registro (y ID),
// así el orden estable del ranking no depende del map.
func (r *profileRepo) ListAll(ctx context.Context, role profiles.Role) ([]profiles.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]profiles.Profile, 0)
	for _, p := range r.byID {
		if p.Role == role {
			out = append(out, p)
		}
	}
	sortByRegistration(out)
	return out, nil
}

func (r *profileRepo) Save(ctx context.Context, p profiles.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("profile id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *profileRepo) FindByID(ctx context.Context, id string) (profiles.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	return p, nil
}

func (r *profileRepo) FindByEmail(ctx context.Context, role profiles.Role, email string) (profiles.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = profiles.NormalizeEmail(email)
	if email == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	for _, p := range r.byID {
		if p.Role == role && p.Email == email {
			return p, nil
		}
	}
	return profiles.Profile{}, profiles.ErrNotFound
}

func sortByRegistration(ps []profiles.Profile) {
	sort.SliceStable(ps, func(i, j int) bool {
		if !ps[i].RegisteredAt.Equal(ps[j].RegisteredAt) {
			return ps[i].RegisteredAt.Before(ps[j].RegisteredAt)
		}
		return ps[i].ID < ps[j].ID
	})
}
