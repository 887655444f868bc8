package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"organ-match/internal/domain/profiles"

	"github.com/redis/go-redis/v9"
)

// Una colección por rol: hash id -> JSON, más un índice email -> id.
const (
	donorsKey    = "organ_donors"
	receiversKey = "organ_receivers"
	emailSuffix  = ":email"
)

type ProfilesRepo struct {
	client *redis.Client
}

func NewProfilesRepo(client *redis.Client) *ProfilesRepo {
	return &ProfilesRepo{client: client}
}

// record es la forma persistida (snake_case, como el resto de la API).
type record struct {
	ID                     string    `json:"id"`
	Role                   string    `json:"role"`
	Name                   string    `json:"name"`
	Age                    int       `json:"age"`
	Gender                 string    `json:"gender,omitempty"`
	BloodType              string    `json:"blood_type"`
	Organ                  string    `json:"organ"`
	TissueType             string    `json:"tissue_type"`
	Location               string    `json:"location"`
	HospitalName           string    `json:"hospital_name,omitempty"`
	HospitalTransportation string    `json:"hospital_transportation,omitempty"`
	MedicalHistory         string    `json:"medical_history,omitempty"`
	Email                  string    `json:"email"`
	PasswordHash           string    `json:"password_hash"`
	HealthScore            *int      `json:"health_score,omitempty"`
	Urgency                string    `json:"urgency,omitempty"`
	Active                 bool      `json:"active"`
	RegisteredAt           time.Time `json:"registered_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func collectionKey(role profiles.Role) (string, error) {
	switch role {
	case profiles.RoleDonor:
		return donorsKey, nil
	case profiles.RoleReceiver:
		return receiversKey, nil
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}
}

func (r *ProfilesRepo) ListAll(ctx context.Context, role profiles.Role) ([]profiles.Profile, error) {
	key, err := collectionKey(role)
	if err != nil {
		return nil, err
	}

	blobs, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	out := make([]profiles.Profile, 0, len(blobs))
	for id, blob := range blobs {
		p, err := decode(blob)
		if err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", key, id, err)
		}
		out = append(out, p)
	}

	// HGETALL no garantiza orden
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].RegisteredAt.Equal(out[j].RegisteredAt) {
			return out[i].RegisteredAt.Before(out[j].RegisteredAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Save: upsert atómico del blob y del índice de email (MULTI/EXEC).
func (r *ProfilesRepo) Save(ctx context.Context, p profiles.Profile) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("profile id required")
	}
	key, err := collectionKey(p.Role)
	if err != nil {
		return err
	}

	blob, err := json.Marshal(encode(p))
	if err != nil {
		return err
	}

	// Si cambió el email hay que limpiar el índice viejo.
	var previousEmail string
	prev, err := r.client.HGet(ctx, key, p.ID).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return err
	default:
		if old, derr := decode(prev); derr == nil {
			previousEmail = old.Email
		}
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, p.ID, blob)
		if previousEmail != "" && previousEmail != p.Email {
			pipe.HDel(ctx, key+emailSuffix, previousEmail)
		}
		if p.Email != "" {
			pipe.HSet(ctx, key+emailSuffix, p.Email, p.ID)
		}
		return nil
	})
	return err
}

// FindByID busca en ambas colecciones (el ID no se interpreta).
func (r *ProfilesRepo) FindByID(ctx context.Context, id string) (profiles.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	cmds, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HGet(ctx, donorsKey, id)
		pipe.HGet(ctx, receiversKey, id)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return profiles.Profile{}, err
	}

	for _, cmd := range cmds {
		blob, err := cmd.(*redis.StringCmd).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return profiles.Profile{}, err
		}
		return decode(blob)
	}
	return profiles.Profile{}, profiles.ErrNotFound
}

func (r *ProfilesRepo) FindByEmail(ctx context.Context, role profiles.Role, email string) (profiles.Profile, error) {
	key, err := collectionKey(role)
	if err != nil {
		return profiles.Profile{}, err
	}
	email = profiles.NormalizeEmail(email)
	if email == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	id, err := r.client.HGet(ctx, key+emailSuffix, email).Result()
	if errors.Is(err, redis.Nil) {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	if err != nil {
		return profiles.Profile{}, err
	}

	blob, err := r.client.HGet(ctx, key, id).Result()
	if errors.Is(err, redis.Nil) {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	if err != nil {
		return profiles.Profile{}, err
	}
	return decode(blob)
}

func encode(p profiles.Profile) record {
	return record{
		ID:                     p.ID,
		Role:                   string(p.Role),
		Name:                   p.Name,
		Age:                    p.Age,
		Gender:                 string(p.Gender),
		BloodType:              string(p.BloodType),
		Organ:                  string(p.Organ),
		TissueType:             string(p.TissueType),
		Location:               p.Location,
		HospitalName:           p.HospitalName,
		HospitalTransportation: p.HospitalTransportation,
		MedicalHistory:         p.MedicalHistory,
		Email:                  p.Email,
		PasswordHash:           p.PasswordHash,
		HealthScore:            p.HealthScore,
		Urgency:                string(p.Urgency),
		Active:                 p.Active,
		RegisteredAt:           p.RegisteredAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

func decode(blob string) (profiles.Profile, error) {
	var rec record
	if err := json.Unmarshal([]byte(blob), &rec); err != nil {
		return profiles.Profile{}, err
	}
	return profiles.Profile{
		ID:                     rec.ID,
		Role:                   profiles.Role(rec.Role),
		Name:                   rec.Name,
		Age:                    rec.Age,
		Gender:                 profiles.Gender(rec.Gender),
		BloodType:              profiles.BloodType(rec.BloodType),
		Organ:                  profiles.Organ(rec.Organ),
		TissueType:             profiles.TissueType(rec.TissueType),
		Location:               rec.Location,
		HospitalName:           rec.HospitalName,
		HospitalTransportation: rec.HospitalTransportation,
		MedicalHistory:         rec.MedicalHistory,
		Email:                  rec.Email,
		PasswordHash:           rec.PasswordHash,
		HealthScore:            rec.HealthScore,
		Urgency:                profiles.Urgency(rec.Urgency),
		Active:                 rec.Active,
		RegisteredAt:           rec.RegisteredAt,
		UpdatedAt:              rec.UpdatedAt,
	}, nil
}
