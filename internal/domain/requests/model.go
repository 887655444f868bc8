package requests

import "time"

// Status del ciclo de vida de una solicitud de match.
// @Enum pending, accepted, declined, withdrawn
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusWithdrawn Status = "withdrawn"
)

// Request: un receptor le pide a un donante compatible que considere el match.
type Request struct {
	ID string

	ReceiverID string // quien pide
	DonorID    string // a quien se le pide

	Message string
	Status  Status

	CreatedAt time.Time
	UpdatedAt time.Time
	ClosedAt  *time.Time // declined / withdrawn
}

// Open: pending o accepted. Mientras hay una abierta no se crea otra para el mismo par.
func (r Request) Open() bool {
	return r.Status == StatusPending || r.Status == StatusAccepted
}
