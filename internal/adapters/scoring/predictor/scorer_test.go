package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"organ-match/internal/ports/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer(t *testing.T, h http.HandlerFunc) *Scorer {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k-123", Timeout: 200 * time.Millisecond})
	require.NoError(t, err)
	return NewScorer(c)
}

var form = scoring.Request{Age: 45, Location: "Boston", BloodGroup: "AB+", Organ: "Kidney", TissueType: "HLA-A", Urgency: 4}

func TestScorer_SendsFormAndMapsMatches(t *testing.T) {
	s := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "k-123", r.Header.Get("X-Api-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "AB+", body["bloodgroup"])
		assert.Equal(t, "HLA-A", body["tissue_type"])
		assert.EqualValues(t, 4, body["urgency"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"matches":[{"donor_id":"D1","age":30,"health_score":8.5,"match_probability":0.91,"hospital_name":"General","email":"d@x.org","location":"Boston","hospital_transportation":1}]}`))
	})

	res, err := s.Score(context.Background(), form)
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	m := res.Matches[0]
	assert.Equal(t, "D1", m.DonorID)
	assert.InDelta(t, 0.91, m.MatchProbability, 1e-9)
	assert.Equal(t, 1, m.HospitalTransportation)
}

func TestScorer_FailuresAreUnavailable(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
		"unauthorized": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusUnauthorized)
		},
		"malformed json": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"matches":[`))
		},
		"timeout": func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
		},
		"empty body": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
		"missing matches": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		},
		"null matches": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"matches":null}`))
		},
	}

	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			s := newTestScorer(t, h)
			res, err := s.Score(context.Background(), form)
			require.Error(t, err)
			assert.ErrorIs(t, err, scoring.ErrUnavailable)
			assert.Empty(t, res.Matches)
		})
	}
}

func TestScorer_EmptyMatchListIsNotAnError(t *testing.T) {
	s := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"matches":[]}`))
	})

	res, err := s.Score(context.Background(), form)
	require.NoError(t, err)
	assert.NotNil(t, res.Matches)
	assert.Empty(t, res.Matches)
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestScorer_NetworkFailureIsUnavailable(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "http://scorer.internal", Transport: failingTransport{}})
	require.NoError(t, err)

	_, err = NewScorer(c).Score(context.Background(), form)
	assert.ErrorIs(t, err, scoring.ErrUnavailable)
	assert.ErrorIs(t, err, ErrPredictorUpstream)
}

func TestScorer_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)

	_, err = NewScorer(c).Score(context.Background(), form)
	assert.ErrorIs(t, err, scoring.ErrNotConfigured)
	assert.ErrorIs(t, err, scoring.ErrUnavailable)
}

func TestNewClient_RejectsInvalidBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "not a url"})
	assert.Error(t, err)
}
