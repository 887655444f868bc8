package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"organ-match/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

const profileColumns = `
	id, role, name, age, gender,
	blood_type, organ, tissue_type,
	location, hospital_name, hospital_transportation, medical_history,
	email, password_hash,
	health_score, urgency,
	active, registered_at, updated_at`

// Save hace upsert por id: último en escribir gana.
func (r *ProfilesRepo) Save(ctx context.Context, p profiles.Profile) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("profile id required")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		ON CONFLICT (id) DO UPDATE SET
			role = EXCLUDED.role,
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			blood_type = EXCLUDED.blood_type,
			organ = EXCLUDED.organ,
			tissue_type = EXCLUDED.tissue_type,
			location = EXCLUDED.location,
			hospital_name = EXCLUDED.hospital_name,
			hospital_transportation = EXCLUDED.hospital_transportation,
			medical_history = EXCLUDED.medical_history,
			email = EXCLUDED.email,
			password_hash = EXCLUDED.password_hash,
			health_score = EXCLUDED.health_score,
			urgency = EXCLUDED.urgency,
			active = EXCLUDED.active,
			registered_at = EXCLUDED.registered_at,
			updated_at = EXCLUDED.updated_at
	`,
		p.ID,
		string(p.Role),
		p.Name,
		p.Age,
		string(p.Gender),
		string(p.BloodType),
		string(p.Organ),
		string(p.TissueType),
		p.Location,
		p.HospitalName,
		p.HospitalTransportation,
		p.MedicalHistory,
		p.Email,
		p.PasswordHash,
		toNullInt(p.HealthScore),
		string(p.Urgency),
		p.Active,
		p.RegisteredAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProfilesRepo) FindByID(ctx context.Context, id string) (profiles.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	return scanProfile(row)
}

func (r *ProfilesRepo) FindByEmail(ctx context.Context, role profiles.Role, email string) (profiles.Profile, error) {
	email = profiles.NormalizeEmail(email)
	if email == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE role = $1 AND email = $2
	`, string(role), email)
	return scanProfile(row)
}

// ListAll: orden de registro, igual que el adapter en memoria.
func (r *ProfilesRepo) ListAll(ctx context.Context, role profiles.Role) ([]profiles.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE role = $1
		ORDER BY registered_at ASC, id ASC
	`, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profiles.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (profiles.Profile, error) {
	var (
		p                                        profiles.Profile
		role, gender, blood, organ, tissue, urgs string
		health                                   sql.NullInt64
	)

	if err := row.Scan(
		&p.ID,
		&role,
		&p.Name,
		&p.Age,
		&gender,
		&blood,
		&organ,
		&tissue,
		&p.Location,
		&p.HospitalName,
		&p.HospitalTransportation,
		&p.MedicalHistory,
		&p.Email,
		&p.PasswordHash,
		&health,
		&urgs,
		&p.Active,
		&p.RegisteredAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Profile{}, profiles.ErrNotFound
		}
		return profiles.Profile{}, err
	}

	p.Role = profiles.Role(role)
	p.Gender = profiles.Gender(gender)
	p.BloodType = profiles.BloodType(blood)
	p.Organ = profiles.Organ(organ)
	p.TissueType = profiles.TissueType(tissue)
	p.Urgency = profiles.Urgency(urgs)
	if health.Valid {
		v := int(health.Int64)
		p.HealthScore = &v
	}
	return p, nil
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
