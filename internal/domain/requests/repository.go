package requests

import "context"

type Repository interface {
	Create(ctx context.Context, r Request) error
	Update(ctx context.Context, r Request) error
	GetByID(ctx context.Context, id string) (Request, error)
	ListByDonor(ctx context.Context, donorID string) ([]Request, error)
	ListByReceiver(ctx context.Context, receiverID string) ([]Request, error)
}
