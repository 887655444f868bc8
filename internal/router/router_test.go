package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jwtauth "organ-match/internal/adapters/auth/jwt"
	"organ-match/internal/platform/metrics"
	"organ-match/internal/router"

	"github.com/prometheus/client_golang/prometheus"
)

func newDevServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier:   nil,
		Metrics:        metrics.New(prometheus.NewRegistry()),
		SeedSampleData: true,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_MatchAndRequestLifecycle(t *testing.T) {
	ts := newDevServer(t)

	// 1) Receptor ve sus donantes compatibles
	{
		st, body := doReq(t, ts.URL, "GET", "/me/matches", "RECEIVER_001", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 matches, got %d body=%s", st, string(body))
		}
		var out struct {
			Role    string `json:"role"`
			Matches []struct {
				ID string `json:"id"`
			} `json:"matches"`
			Stats map[string]int `json:"stats"`
		}
		mustJSON(t, body, &out)
		if out.Role != "receiver" || len(out.Matches) != 1 || out.Matches[0].ID != "DONOR_001" {
			t.Fatalf("unexpected matches: %s", string(body))
		}
		if out.Stats["total_matches"] != 1 || out.Stats["high_quality_matches"] != 1 || out.Stats["same_location"] != 1 {
			t.Fatalf("unexpected stats: %#v", out.Stats)
		}
		if _, ok := out.Stats["critical_matches"]; ok {
			t.Fatalf("receiver stats must not include critical_matches")
		}
	}

	// 2) Donante ve receptores compatibles
	{
		st, body := doReq(t, ts.URL, "GET", "/me/matches", "DONOR_002", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 matches, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), `"RECEIVER_002"`) || !strings.Contains(string(body), `"critical_matches":1`) {
			t.Fatalf("unexpected donor matches: %s", string(body))
		}
	}

	// 3) Receptor envía solicitud a un donante compatible
	var requestID string
	{
		st, body := doReq(t, ts.URL, "POST", "/requests", "RECEIVER_001", "", map[string]any{
			"donor_id": "DONOR_001",
			"message":  "hola",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 send request, got %d body=%s", st, string(body))
		}
		var out struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		mustJSON(t, body, &out)
		if out.Status != "pending" || out.ID == "" {
			t.Fatalf("unexpected request: %s", string(body))
		}
		requestID = out.ID
	}

	// 4) Donante no compatible => 422
	{
		st, _ := doReq(t, ts.URL, "POST", "/requests", "RECEIVER_001", "", map[string]any{"donor_id": "DONOR_003"})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 for incompatible donor, got %d", st)
		}
	}

	// 5) Donante ve la solicitud pendiente
	{
		st, body := doReq(t, ts.URL, "GET", "/me/requests?status=pending", "DONOR_001", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var out []map[string]any
		mustJSON(t, body, &out)
		if len(out) != 1 || out[0]["id"] != requestID {
			t.Fatalf("expected the pending request, got %s", string(body))
		}
	}

	// 6) Receptor no puede aceptar
	{
		st, _ := doReq(t, ts.URL, "POST", "/requests/"+requestID+"/accept", "RECEIVER_001", "", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 accept by receiver, got %d", st)
		}
	}

	// 7) Donante acepta; rechazar después => 409
	{
		st, body := doReq(t, ts.URL, "POST", "/requests/"+requestID+"/accept", "DONOR_001", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 accept, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "POST", "/requests/"+requestID+"/decline", "DONOR_001", "", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 decline after accept, got %d", st)
		}
	}

	// 8) Sin scorer remoto configurado => 503, nunca resultados locales
	{
		st, _ := doReq(t, ts.URL, "POST", "/me/matches/predict", "RECEIVER_001", "", nil)
		if st != http.StatusServiceUnavailable {
			t.Fatalf("expected 503 without scorer, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/me/matches/predict", "DONOR_001", "", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 predict for donor, got %d", st)
		}
	}

	// 9) Deactivate saca al donante del pool
	{
		st, _ := doReq(t, ts.URL, "POST", "/me/deactivate", "DONOR_001", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 deactivate, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/me/matches", "RECEIVER_001", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"matches":[]`) {
			t.Fatalf("expected empty matches after deactivate, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_RequiresIdentity(t *testing.T) {
	ts := newDevServer(t)

	for _, path := range []string{"/me", "/me/matches", "/me/requests"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without identity, got %d", path, st)
		}
	}
}

func TestHTTP_RegisterLoginWithJWT(t *testing.T) {
	tokens, err := jwtauth.NewService("test-signing-key", time.Hour)
	if err != nil {
		t.Fatalf("jwt service: %v", err)
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: tokens,
		Tokens:       tokens,
		Metrics:      metrics.New(prometheus.NewRegistry()),
	}))
	defer ts.Close()

	// 1) Registro
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/register", "", "", map[string]any{
			"role":            "donor",
			"name":            "Ana Pérez",
			"age":             34,
			"gender":          "female",
			"blood_type":      "O-",
			"organ":           "Kidney",
			"tissue_type":     "HLA-A",
			"location":        "Boston, MA",
			"hospital_name":   "General",
			"medical_history": "none",
			"email":           "ana@example.com",
			"password":        "secret1",
			"health_score":    9,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
		}
		if strings.Contains(string(body), "secret1") || strings.Contains(string(body), "password") {
			t.Fatalf("register response must not leak credentials: %s", string(body))
		}
	}

	// 2) Email repetido en el mismo rol
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/register", "", "", map[string]any{
			"role": "donor", "name": "Otra", "age": 40, "gender": "female", "blood_type": "O-", "organ": "Kidney",
			"tissue_type": "HLA-A", "location": "Boston", "hospital_name": "General",
			"medical_history": "none", "email": "ANA@example.com", "password": "secret1", "health_score": 5,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate email, got %d", st)
		}
	}

	// 3) Login incorrecto / correcto
	var token string
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/login", "", "", map[string]any{
			"role": "donor", "email": "ana@example.com", "password": "wrong!",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad password, got %d", st)
		}

		st, body := doReq(t, ts.URL, "POST", "/auth/login", "", "", map[string]any{
			"role": "donor", "email": "ana@example.com", "password": "secret1",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var out struct {
			Token string `json:"token"`
		}
		mustJSON(t, body, &out)
		if out.Token == "" {
			t.Fatalf("expected token in login response: %s", string(body))
		}
		token = out.Token
	}

	// 4) Bearer => /me; X-Debug-User-ID no sirve con verifier
	{
		st, body := doReq(t, ts.URL, "GET", "/me", "", token, nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"ana@example.com"`) {
			t.Fatalf("expected 200 /me with token, got %d body=%s", st, string(body))
		}

		st, _ = doReq(t, ts.URL, "GET", "/me", "DONOR_001", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 with debug header in jwt mode, got %d", st)
		}
	}

	// 5) Token inválido => 401; donante no puede pedir predicción remota
	{
		st, _ := doReq(t, ts.URL, "GET", "/me", "", "not-a-jwt", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 with invalid bearer, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/me/matches/predict", "", token, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 predict with donor token, got %d", st)
		}
	}

	// 6) PATCH /me no permite cambiar email
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/me", "", token, map[string]any{"email": "x@example.com"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 patching email, got %d", st)
		}
		st, body := doReq(t, ts.URL, "PATCH", "/me", "", token, map[string]any{"health_score": 6})
		if st != http.StatusOK || !strings.Contains(string(body), `"health_score":6`) {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := newDevServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", "", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, string(body))
	}

	// genera al menos una serie
	_, _ = doReq(t, ts.URL, "GET", "/me/matches", "RECEIVER_001", "", nil)

	st, body = doReq(t, ts.URL, "GET", "/metrics", "", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "organmatch_match_runs_total") {
		t.Fatalf("expected organmatch metrics, got %d", st)
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID, bearer string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func mustJSON(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, string(b))
	}
}
