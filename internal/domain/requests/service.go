package requests

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"organ-match/internal/domain/matching"
	"organ-match/internal/domain/profiles"
	"organ-match/internal/platform/logger"
	"organ-match/internal/platform/metrics"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrBadState      = errors.New("invalid state")
	ErrNotCompatible = errors.New("donor is not compatible with receiver")
)

// ProfileLookup evita depender del service de profiles completo.
type ProfileLookup interface {
	FindByID(ctx context.Context, id string) (profiles.Profile, error)
}

type Service struct {
	repo     Repository
	profiles ProfileLookup
	log      logger.Logger
	metrics  *metrics.Metrics

	now func() time.Time
}

func NewService(repo Repository, lookup ProfileLookup, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:     repo,
		profiles: lookup,
		log:      log.With(map[string]any{"module": "requests"}),
		metrics:  m,
		now:      time.Now,
	}
}

type SendInput struct {
	ReceiverID string
	DonorID    string
	Message    string
}

// Send crea (o reutiliza) la solicitud receptor -> donante.
// El donante tiene que pasar el mismo predicado que el motor de matching.
func (s *Service) Send(ctx context.Context, in SendInput) (Request, error) {
	receiverID := strings.TrimSpace(in.ReceiverID)
	donorID := strings.TrimSpace(in.DonorID)
	if receiverID == "" || donorID == "" {
		return Request{}, ErrInvalidInput
	}

	receiver, err := s.lookup(ctx, receiverID)
	if err != nil {
		return Request{}, err
	}
	if !receiver.IsReceiver() {
		return Request{}, ErrForbidden
	}

	donor, err := s.lookup(ctx, donorID)
	if err != nil {
		return Request{}, err
	}
	if !donor.IsDonor() {
		return Request{}, ErrInvalidInput
	}
	if !matching.Eligible(receiver, donor) {
		return Request{}, ErrNotCompatible
	}

	now := s.now()
	message := strings.TrimSpace(in.Message)

	// Dedup: si ya hay una abierta para el par, se actualiza el mensaje.
	existing, err := s.repo.ListByReceiver(ctx, receiverID)
	if err != nil {
		return Request{}, err
	}
	for _, r := range existing {
		if r.DonorID != donorID || !r.Open() {
			continue
		}
		r.Message = message
		r.UpdatedAt = now
		if err := s.repo.Update(ctx, r); err != nil {
			return Request{}, err
		}
		return r, nil
	}

	r := Request{
		ID:         uuid.NewString(),
		ReceiverID: receiverID,
		DonorID:    donorID,
		Message:    message,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Request{}, err
	}

	s.metrics.IncrementRequestTransition(string(StatusPending))
	s.log.Info("match request sent", map[string]any{"request_id": r.ID, "receiver_id": receiverID, "donor_id": donorID})
	return r, nil
}

// Accept: solo el donante, solo desde pending. Idempotente si ya está accepted.
func (s *Service) Accept(ctx context.Context, requestID, donorID string) (Request, error) {
	return s.respond(ctx, requestID, donorID, StatusAccepted)
}

// Decline: solo el donante, solo desde pending. Idempotente si ya está declined.
func (s *Service) Decline(ctx context.Context, requestID, donorID string) (Request, error) {
	return s.respond(ctx, requestID, donorID, StatusDeclined)
}

func (s *Service) respond(ctx context.Context, requestID, donorID string, target Status) (Request, error) {
	r, err := s.load(ctx, requestID, donorID)
	if err != nil {
		return Request{}, err
	}
	if r.DonorID != strings.TrimSpace(donorID) {
		return Request{}, ErrForbidden
	}

	// Idempotente
	if r.Status == target {
		return r, nil
	}
	if r.Status != StatusPending {
		return Request{}, ErrBadState
	}

	now := s.now()
	r.Status = target
	r.UpdatedAt = now
	if target == StatusDeclined {
		r.ClosedAt = &now
	}
	return s.save(ctx, r)
}

// Withdraw: solo el receptor, desde pending o accepted. Idempotente.
func (s *Service) Withdraw(ctx context.Context, requestID, receiverID string) (Request, error) {
	r, err := s.load(ctx, requestID, receiverID)
	if err != nil {
		return Request{}, err
	}
	if r.ReceiverID != strings.TrimSpace(receiverID) {
		return Request{}, ErrForbidden
	}

	// Idempotente
	if r.Status == StatusWithdrawn {
		return r, nil
	}
	if !r.Open() {
		return Request{}, ErrBadState
	}

	now := s.now()
	r.Status = StatusWithdrawn
	r.UpdatedAt = now
	r.ClosedAt = &now
	return s.save(ctx, r)
}

func (s *Service) ListForDonor(ctx context.Context, donorID string) ([]Request, error) {
	donorID = strings.TrimSpace(donorID)
	if donorID == "" {
		return nil, ErrInvalidInput
	}
	items, err := s.repo.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}
	return newestFirst(items), nil
}

func (s *Service) ListForReceiver(ctx context.Context, receiverID string) ([]Request, error) {
	receiverID = strings.TrimSpace(receiverID)
	if receiverID == "" {
		return nil, ErrInvalidInput
	}
	items, err := s.repo.ListByReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	return newestFirst(items), nil
}

// ListFor elige la bandeja según el rol del perfil.
func (s *Service) ListFor(ctx context.Context, profileID string) ([]Request, error) {
	p, err := s.lookup(ctx, strings.TrimSpace(profileID))
	if err != nil {
		return nil, err
	}
	if p.IsDonor() {
		return s.ListForDonor(ctx, p.ID)
	}
	return s.ListForReceiver(ctx, p.ID)
}

func (s *Service) load(ctx context.Context, requestID, actorID string) (Request, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" || strings.TrimSpace(actorID) == "" {
		return Request{}, ErrInvalidInput
	}
	r, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Request{}, ErrNotFound
		}
		return Request{}, fmt.Errorf("load request %s: %w", requestID, err)
	}
	return r, nil
}

func (s *Service) save(ctx context.Context, r Request) (Request, error) {
	if err := s.repo.Update(ctx, r); err != nil {
		return Request{}, err
	}
	s.metrics.IncrementRequestTransition(string(r.Status))
	s.log.Info("match request updated", map[string]any{"request_id": r.ID, "status": string(r.Status)})
	return r, nil
}

func (s *Service) lookup(ctx context.Context, id string) (profiles.Profile, error) {
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return profiles.Profile{}, ErrNotFound
		}
		return profiles.Profile{}, err
	}
	return p, nil
}

func newestFirst(items []Request) []Request {
	slices.SortStableFunc(items, func(a, b Request) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return items
}
