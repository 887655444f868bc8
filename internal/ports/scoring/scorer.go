package scoring

//go:generate mockgen -source=scorer.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable cubre cualquier falla del scorer remoto (red, timeout, no-2xx, JSON inválido).
	ErrUnavailable = errors.New("remote scorer unavailable")
	// ErrNotConfigured también matchea ErrUnavailable.
	ErrNotConfigured = fmt.Errorf("%w: not configured", ErrUnavailable)
)

// Request es el formulario que se envía al modelo remoto.
// Urgency va como ordinal (Critical=4 ... Low=1).
type Request struct {
	Age        int
	Location   string
	BloodGroup string
	Organ      string
	TissueType string
	Urgency    int
}

// Match es un donante sugerido por el modelo. MatchProbability es opaco para el core.
type Match struct {
	DonorID                string
	Age                    int
	HealthScore            float64
	MatchProbability       float64
	HospitalName           string
	Email                  string
	Location               string
	HospitalTransportation int // 1 = traslado aéreo disponible
}

type Result struct {
	Matches []Match
}

// Scorer es el colaborador remoto opcional. No hay reintentos en esta capa.
type Scorer interface {
	Score(ctx context.Context, req Request) (Result, error)
}
