package profiles

import (
	"context"
	"errors"
	"strings"
	"time"

	"organ-match/internal/platform/logger"
	"organ-match/internal/platform/metrics"

	"github.com/google/uuid"
)

type Service struct {
	repo    Repository
	log     logger.Logger
	metrics *metrics.Metrics

	now      func() time.Time
	newID    func(Role) string
	hashCost int
}

func NewService(repo Repository, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:    repo,
		log:     log.With(map[string]any{"module": "profiles"}),
		metrics: m,
		now:     time.Now,
		newID: func(r Role) string {
			return r.IDPrefix() + "_" + uuid.NewString()
		},
	}
}

type RegisterInput struct {
	Role Role

	Name   string
	Age    int
	Gender Gender

	BloodType  BloodType
	Organ      Organ
	TissueType TissueType

	Location               string
	HospitalName           string
	HospitalTransportation string
	MedicalHistory         string

	Email    string
	Password string

	HealthScore *int
	Urgency     Urgency
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Profile, error) {
	p, err := s.buildProfile(in)
	if err != nil {
		return Profile{}, err
	}

	now := s.now()
	p.ID = s.newID(p.Role)
	p.RegisteredAt = now
	p.UpdatedAt = now

	saved, err := s.create(ctx, p, in.Password)
	if err != nil {
		return Profile{}, err
	}
	s.metrics.IncrementRegistered(string(saved.Role))
	s.log.Info("profile registered", map[string]any{"profile_id": saved.ID, "role": string(saved.Role)})
	return saved, nil
}

// buildProfile normaliza el input y lo valida (sin tocar el repo).
func (s *Service) buildProfile(in RegisterInput) (Profile, error) {
	role, ok := ParseRole(strings.TrimSpace(string(in.Role)))
	if !ok {
		return Profile{}, invalid("role", "must be donor or receiver")
	}
	if err := validatePassword(in.Password); err != nil {
		return Profile{}, err
	}

	p := Profile{
		Role:           role,
		Name:           strings.TrimSpace(in.Name),
		Age:            in.Age,
		Gender:         Gender(strings.ToLower(strings.TrimSpace(string(in.Gender)))),
		BloodType:      BloodType(strings.TrimSpace(string(in.BloodType))),
		Organ:          Organ(strings.TrimSpace(string(in.Organ))),
		TissueType:     TissueType(strings.TrimSpace(string(in.TissueType))),
		Location:       strings.TrimSpace(in.Location),
		HospitalName:   strings.TrimSpace(in.HospitalName),
		MedicalHistory: strings.TrimSpace(in.MedicalHistory),
		Email:          NormalizeEmail(in.Email),
		Active:         true,
	}

	switch role {
	case RoleDonor:
		p.HealthScore = copyInt(in.HealthScore)
		p.HospitalTransportation = strings.TrimSpace(in.HospitalTransportation)
	case RoleReceiver:
		p.Urgency = Urgency(strings.TrimSpace(string(in.Urgency)))
	}

	if err := Validate(p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// create chequea email único dentro del rol, hashea y persiste.
func (s *Service) create(ctx context.Context, p Profile, password string) (Profile, error) {
	_, err := s.repo.FindByEmail(ctx, p.Role, p.Email)
	switch {
	case err == nil:
		return Profile{}, ErrEmailTaken
	case !errors.Is(err, ErrNotFound):
		return Profile{}, err
	}

	hash, err := HashPassword(password, s.hashCost)
	if err != nil {
		return Profile{}, err
	}
	p.PasswordHash = hash

	if err := s.repo.Save(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Authenticate valida (rol, email, password). Un perfil inactivo igual puede entrar.
func (s *Service) Authenticate(ctx context.Context, role Role, email, password string) (Profile, error) {
	if _, ok := ParseRole(string(role)); !ok {
		return Profile{}, invalid("role", "must be donor or receiver")
	}

	p, err := s.repo.FindByEmail(ctx, role, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{}, ErrInvalidCredentials
		}
		return Profile{}, err
	}

	ok, err := VerifyPassword(p.PasswordHash, password)
	if err != nil {
		s.log.Warn("stored password hash unreadable", map[string]any{"profile_id": p.ID, "err": err})
		return Profile{}, ErrInvalidCredentials
	}
	if !ok {
		return Profile{}, ErrInvalidCredentials
	}
	return p, nil
}

// UpdateInput: punteros para PATCH real, nil = no tocar.
// ID, Email, Role y RegisteredAt no son editables.
type UpdateInput struct {
	Name   *string
	Age    *int
	Gender *Gender

	BloodType  *BloodType
	Organ      *Organ
	TissueType *TissueType

	Location               *string
	HospitalName           *string
	HospitalTransportation *string
	MedicalHistory         *string

	HealthScore *int
	Urgency     *Urgency
}

func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateInput) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, invalid("id", "required")
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Gender != nil {
		p.Gender = Gender(strings.ToLower(strings.TrimSpace(string(*in.Gender))))
	}
	if in.BloodType != nil {
		p.BloodType = BloodType(strings.TrimSpace(string(*in.BloodType)))
	}
	if in.Organ != nil {
		p.Organ = Organ(strings.TrimSpace(string(*in.Organ)))
	}
	if in.TissueType != nil {
		p.TissueType = TissueType(strings.TrimSpace(string(*in.TissueType)))
	}
	if in.Location != nil {
		p.Location = strings.TrimSpace(*in.Location)
	}
	if in.HospitalName != nil {
		p.HospitalName = strings.TrimSpace(*in.HospitalName)
	}
	if in.MedicalHistory != nil {
		p.MedicalHistory = strings.TrimSpace(*in.MedicalHistory)
	}

	// Campos de un solo rol: Validate rechaza el cruce.
	if in.HospitalTransportation != nil {
		p.HospitalTransportation = strings.TrimSpace(*in.HospitalTransportation)
	}
	if in.HealthScore != nil {
		p.HealthScore = copyInt(in.HealthScore)
	}
	if in.Urgency != nil {
		p.Urgency = Urgency(strings.TrimSpace(string(*in.Urgency)))
	}

	if err := Validate(p); err != nil {
		return Profile{}, err
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// SetActive activa/desactiva. Nunca se borra un perfil.
func (s *Service) SetActive(ctx context.Context, id string, active bool) (Profile, error) {
	p, err := s.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Profile{}, err
	}

	// Idempotente
	if p.Active == active {
		return p, nil
	}

	p.Active = active
	p.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, p); err != nil {
		return Profile{}, err
	}
	s.log.Info("profile activity changed", map[string]any{"profile_id": p.ID, "active": active})
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, ErrNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context, role Role) ([]Profile, error) {
	if _, ok := ParseRole(string(role)); !ok {
		return nil, invalid("role", "must be donor or receiver")
	}
	return s.repo.ListAll(ctx, role)
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
