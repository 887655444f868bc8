package predictor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"organ-match/internal/platform/httpclient"
)

type Config struct {
	BaseURL string
	APIKey  string // opcional

	APIKeyHeader string
	Timeout      time.Duration

	// Transport opcional (nil => default).
	Transport http.RoundTripper
}

// Client habla con el servicio de predicción (POST /predict).
type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.NewWithTransport(strings.TrimSpace(cfg.BaseURL), timeout, cfg.Transport)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

// predictRequest es el formulario tal cual lo espera el modelo.
type predictRequest struct {
	Age        int    `json:"age"`
	Location   string `json:"location"`
	BloodGroup string `json:"bloodgroup"`
	Organ      string `json:"organ"`
	TissueType string `json:"tissue_type"`
	Urgency    int    `json:"urgency"`
}

type predictResponse struct {
	Matches []predictedMatch `json:"matches"`
}

// wireResponse distingue "matches" ausente o null de una lista vacía.
type wireResponse struct {
	Matches *[]predictedMatch `json:"matches"`
}

type predictedMatch struct {
	DonorID                string  `json:"donor_id"`
	Age                    int     `json:"age"`
	HealthScore            float64 `json:"health_score"`
	MatchProbability       float64 `json:"match_probability"`
	HospitalName           string  `json:"hospital_name"`
	Email                  string  `json:"email"`
	Location               string  `json:"location"`
	HospitalTransportation int     `json:"hospital_transportation"`
}

var (
	ErrPredictorUnauthorized = errors.New("predictor unauthorized")
	ErrPredictorUpstream     = errors.New("predictor upstream error")
)

func (c *Client) Predict(ctx context.Context, in predictRequest) (predictResponse, error) {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers[c.apiKeyHeader] = c.apiKey
	}

	var out wireResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/predict", headers, in, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && (he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden) {
			return predictResponse{}, ErrPredictorUnauthorized
		}
		return predictResponse{}, fmt.Errorf("%w: %v", ErrPredictorUpstream, err)
	}
	if out.Matches == nil {
		return predictResponse{}, fmt.Errorf("%w: response without matches", ErrPredictorUpstream)
	}
	return predictResponse{Matches: *out.Matches}, nil
}
