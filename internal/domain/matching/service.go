package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"organ-match/internal/domain/profiles"
	"organ-match/internal/platform/logger"
	"organ-match/internal/platform/metrics"
	"organ-match/internal/ports/scoring"
)

var ErrNotReceiver = errors.New("remote prediction is only available to receivers")

// ProfileSource es lo que el service necesita del repositorio de perfiles.
type ProfileSource interface {
	FindByID(ctx context.Context, id string) (profiles.Profile, error)
	ListAll(ctx context.Context, role profiles.Role) ([]profiles.Profile, error)
}

// Service carga sujeto + pool y delega en FindMatches (local) o en el Scorer (remoto).
// Las dos estrategias no se mezclan: una falla remota nunca cae al cálculo local.
type Service struct {
	profiles ProfileSource
	scorer   scoring.Scorer // nil = scorer remoto no configurado
	log      logger.Logger
	metrics  *metrics.Metrics

	now func() time.Time
}

func NewService(src ProfileSource, scorer scoring.Scorer, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		profiles: src,
		scorer:   scorer,
		log:      log.With(map[string]any{"module": "matching"}),
		metrics:  m,
		now:      time.Now,
	}
}

// MatchesFor corre el motor local para el perfil indicado.
func (s *Service) MatchesFor(ctx context.Context, profileID string) (Result, error) {
	started := time.Now()

	subject, err := s.profiles.FindByID(ctx, strings.TrimSpace(profileID))
	if err != nil {
		return Result{}, err
	}

	pool, err := s.profiles.ListAll(ctx, subject.Role.Opposite())
	if err != nil {
		return Result{}, fmt.Errorf("load candidate pool: %w", err)
	}

	res, err := FindMatches(subject, pool, s.now())
	if err != nil {
		s.log.Warn("match subject rejected", map[string]any{"profile_id": subject.ID, "err": err})
		return Result{}, err
	}

	s.metrics.ObserveMatch(string(subject.Role), res.Stats.TotalMatches, time.Since(started))
	s.log.Debug("matches computed", map[string]any{
		"profile_id": subject.ID,
		"role":       string(subject.Role),
		"pool":       len(pool),
		"matches":    res.Stats.TotalMatches,
	})
	return res, nil
}

// Predict arma el formulario del scorer a partir del perfil del receptor.
func (s *Service) Predict(ctx context.Context, profileID string) (scoring.Result, error) {
	subject, err := s.profiles.FindByID(ctx, strings.TrimSpace(profileID))
	if err != nil {
		return scoring.Result{}, err
	}
	if !subject.IsReceiver() {
		return scoring.Result{}, ErrNotReceiver
	}
	return s.PredictFor(ctx, RequestFromProfile(subject))
}

// PredictFor envía un formulario explícito al scorer remoto.
// Toda falla remota se devuelve envuelta en scoring.ErrUnavailable.
func (s *Service) PredictFor(ctx context.Context, req scoring.Request) (scoring.Result, error) {
	if err := ValidatePredictRequest(req); err != nil {
		return scoring.Result{}, err
	}
	if s.scorer == nil {
		s.metrics.IncrementScorerFailure("not_configured")
		return scoring.Result{}, scoring.ErrNotConfigured
	}

	started := time.Now()
	res, err := s.scorer.Score(ctx, req)
	s.metrics.ObserveScorer(time.Since(started))
	if err != nil {
		if !errors.Is(err, scoring.ErrUnavailable) {
			err = fmt.Errorf("%w: %w", scoring.ErrUnavailable, err)
		}
		reason := "upstream"
		if errors.Is(err, scoring.ErrNotConfigured) {
			reason = "not_configured"
		}
		s.metrics.IncrementScorerFailure(reason)
		s.log.Warn("remote scorer failed", map[string]any{"err": err})
		return scoring.Result{}, err
	}

	if res.Matches == nil {
		res.Matches = []scoring.Match{}
	}
	return res, nil
}

// RequestFromProfile traduce un receptor al formulario del scorer.
func RequestFromProfile(p profiles.Profile) scoring.Request {
	return scoring.Request{
		Age:        p.Age,
		Location:   p.Location,
		BloodGroup: string(p.BloodType),
		Organ:      string(p.Organ),
		TissueType: string(p.TissueType),
		Urgency:    p.Urgency.Weight(),
	}
}

// ValidatePredictRequest aplica las mismas reglas de catálogo que el alta de perfiles.
func ValidatePredictRequest(req scoring.Request) error {
	switch {
	case req.Age < profiles.MinAge || req.Age > profiles.MaxAge:
		return &profiles.ValidationError{Field: "age", Reason: fmt.Sprintf("must be between %d and %d", profiles.MinAge, profiles.MaxAge)}
	case strings.TrimSpace(req.Location) == "":
		return &profiles.ValidationError{Field: "location", Reason: "required"}
	case !profiles.BloodType(req.BloodGroup).Valid():
		return &profiles.ValidationError{Field: "bloodgroup", Reason: "unknown blood type"}
	case !profiles.Organ(req.Organ).Valid():
		return &profiles.ValidationError{Field: "organ", Reason: "unknown organ"}
	case !profiles.TissueType(req.TissueType).Valid():
		return &profiles.ValidationError{Field: "tissue_type", Reason: "unknown tissue type"}
	case req.Urgency < 1 || req.Urgency > 4:
		return &profiles.ValidationError{Field: "urgency", Reason: "must be between 1 (low) and 4 (critical)"}
	}
	return nil
}
