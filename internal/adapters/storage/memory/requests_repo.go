package memory

import (
	"context"
	"errors"
	"sync"

	"organ-match/internal/domain/requests"
)

type requestRepo struct {
	mu   sync.RWMutex
	byID map[string]requests.Request
}

func NewRequestsRepo() requests.Repository {
	return &requestRepo{
		byID: make(map[string]requests.Request),
	}
}

func (r *requestRepo) Create(ctx context.Context, req requests.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		return errors.New("request id required")
	}
	if _, exists := r.byID[req.ID]; exists {
		return errors.New("request already exists")
	}
	r.byID[req.ID] = req
	return nil
}

func (r *requestRepo) Update(ctx context.Context, req requests.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		return errors.New("request id required")
	}
	if _, exists := r.byID[req.ID]; !exists {
		return requests.ErrNotFound
	}
	r.byID[req.ID] = req
	return nil
}

func (r *requestRepo) GetByID(ctx context.Context, id string) (requests.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.byID[id]
	if !ok {
		return requests.Request{}, requests.ErrNotFound
	}
	return req, nil
}

func (r *requestRepo) ListByDonor(ctx context.Context, donorID string) ([]requests.Request, error) {
	return r.filter(func(req requests.Request) bool { return req.DonorID == donorID }), nil
}

func (r *requestRepo) ListByReceiver(ctx context.Context, receiverID string) ([]requests.Request, error) {
	return r.filter(func(req requests.Request) bool { return req.ReceiverID == receiverID }), nil
}

func (r *requestRepo) filter(keep func(requests.Request) bool) []requests.Request {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]requests.Request, 0)
	for _, req := range r.byID {
		if keep(req) {
			out = append(out, req)
		}
	}
	return out
}
