package matching

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"organ-match/internal/domain/profiles"
	"organ-match/internal/middleware"
	"organ-match/internal/ports/scoring"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Motor local
	r.Get("/me/matches", myMatchesHandler(svc))

	// Scorer remoto (alternativo, nunca mezclado con el local)
	r.Post("/me/matches/predict", myPredictHandler(svc))
	r.Post("/matches/predict", predictHandler(svc))
}

type matchesResponse struct {
	Role    profiles.Role              `json:"role"`
	Matches []profiles.ProfileResponse `json:"matches"`
	Stats   statsResponse              `json:"stats"`
}

// statsResponse solo incluye los contadores del rol del sujeto.
type statsResponse struct {
	TotalMatches       int  `json:"total_matches"`
	SameLocation       int  `json:"same_location"`
	CriticalMatches    *int `json:"critical_matches,omitempty"`     // donor
	HighQualityMatches *int `json:"high_quality_matches,omitempty"` // receiver
	WaitingDays        *int `json:"waiting_days,omitempty"`         // receiver
}

// predictRequest replica el formulario del modelo remoto.
type predictRequest struct {
	Age        int    `json:"age"`
	Location   string `json:"location"`
	BloodGroup string `json:"bloodgroup"`
	Organ      string `json:"organ"`
	TissueType string `json:"tissue_type"`
	Urgency    int    `json:"urgency"` // 4=Critical, 3=High, 2=Medium, 1=Low
}

type predictResponse struct {
	Matches []predictedMatch `json:"matches"`
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

// myMatchesHandler godoc
// @Summary Matches compatibles para mi perfil
// @Description Donante: receptores ordenados por urgencia. Receptor: donantes ordenados por health score. Desempate: ubicación relacionada primero. Sin matches devuelve lista vacía.
// @Tags matching
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de perfil"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} matchesResponse
// @Failure 400 {string} string "perfil incompleto para matching"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "profile not found"
// @Router /me/matches [get]
func myMatchesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := svc.MatchesFor(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toMatchesResponse(res))
	}
}

// myPredictHandler godoc
// @Summary Predicción remota para mi perfil (solo receptores)
// @Description Envía los datos del receptor al scorer remoto. Si el scorer falla responde 503; no hay fallback al motor local.
// @Tags matching
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de perfil"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} predictResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "solo receptores"
// @Failure 503 {string} string "remote scorer unavailable"
// @Router /me/matches/predict [post]
func myPredictHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		// con JWT el rol viene en el token; en modo dev lo resuelve el service
		if role := middleware.GetRole(r.Context()); role != "" && profiles.Role(role) != profiles.RoleReceiver {
			http.Error(w, "solo receptores", http.StatusForbidden)
			return
		}

		res, err := svc.Predict(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPredictResponse(res))
	}
}

// predictHandler godoc
// @Summary Predicción remota desde formulario
// @Tags matching
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de perfil"
// @Param Authorization header string false "Bearer token"
// @Param payload body predictRequest true "Formulario del receptor"
// @Success 200 {object} predictResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 503 {string} string "remote scorer unavailable"
// @Router /matches/predict [post]
func predictHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req predictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.PredictFor(r.Context(), scoring.Request{
			Age:        req.Age,
			Location:   strings.TrimSpace(req.Location),
			BloodGroup: strings.TrimSpace(req.BloodGroup),
			Organ:      strings.TrimSpace(req.Organ),
			TissueType: strings.TrimSpace(req.TissueType),
			Urgency:    req.Urgency,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPredictResponse(res))
	}
}

func toMatchesResponse(res Result) matchesResponse {
	out := matchesResponse{
		Role:    res.Role,
		Matches: make([]profiles.ProfileResponse, 0, len(res.Ranked)),
		Stats: statsResponse{
			TotalMatches: res.Stats.TotalMatches,
			SameLocation: res.Stats.SameLocation,
		},
	}
	for _, p := range res.Ranked {
		out.Matches = append(out.Matches, profiles.ToResponse(p))
	}

	st := res.Stats
	switch res.Role {
	case profiles.RoleDonor:
		out.Stats.CriticalMatches = &st.CriticalMatches
	case profiles.RoleReceiver:
		out.Stats.HighQualityMatches = &st.HighQualityMatches
		out.Stats.WaitingDays = &st.WaitingDays
	}
	return out
}

func toPredictResponse(res scoring.Result) predictResponse {
	out := predictResponse{Matches: make([]predictedMatch, 0, len(res.Matches))}
	for _, m := range res.Matches {
		out.Matches = append(out.Matches, predictedMatch{
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
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profiles.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, profiles.ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, ErrNotReceiver):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, scoring.ErrUnavailable):
		http.Error(w, "remote scorer unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
