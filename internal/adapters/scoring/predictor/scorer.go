package predictor

import (
	"context"
	"fmt"

	"organ-match/internal/ports/scoring"
)

// Scorer adapta Client al puerto scoring.Scorer.
// Cualquier falla sale como scoring.ErrUnavailable (con la causa).
type Scorer struct {
	client *Client
}

func NewScorer(client *Client) *Scorer {
	return &Scorer{client: client}
}

func (s *Scorer) Score(ctx context.Context, req scoring.Request) (scoring.Result, error) {
	if s == nil || !s.client.IsConfigured() {
		return scoring.Result{}, scoring.ErrNotConfigured
	}

	resp, err := s.client.Predict(ctx, predictRequest{
		Age:        req.Age,
		Location:   req.Location,
		BloodGroup: req.BloodGroup,
		Organ:      req.Organ,
		TissueType: req.TissueType,
		Urgency:    req.Urgency,
	})
	if err != nil {
		return scoring.Result{}, fmt.Errorf("%w: %w", scoring.ErrUnavailable, err)
	}

	out := scoring.Result{Matches: make([]scoring.Match, 0, len(resp.Matches))}
	for _, m := range resp.Matches {
		out.Matches = append(out.Matches, scoring.Match{
			DonorID:                m.DonorID,
			Age:                    m.Age,
			HealthScore:            m.HealthScore,
			MatchProbability:       m.MatchProbability,
			HospitalName:           m.HospitalName,
			Email:                  m.Email,
			Location:               m.Location,
			HospitalTransportation: m.HospitalTransportation,
		})
	}
	return out, nil
}
