package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"organ-match/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Receptor: pedirle el match a un donante compatible
	r.Post("/requests", sendRequestHandler(svc))

	// Donante/Receptor: bandeja propia (según rol del perfil)
	r.Get("/me/requests", listMyRequestsHandler(svc))

	r.Route("/requests/{requestID}", func(rr chi.Router) {
		rr.Post("/accept", transitionHandler(svc.Accept))
		rr.Post("/decline", transitionHandler(svc.Decline))
		rr.Post("/withdraw", transitionHandler(svc.Withdraw))
	})
}

type sendRequestBody struct {
	DonorID string `json:"donor_id"`
	Message string `json:"message"`
}

type requestResponse struct {
	ID         string     `json:"id"`
	ReceiverID string     `json:"receiver_id"`
	DonorID    string     `json:"donor_id"`
	Message    string     `json:"message,omitempty"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
}

// sendRequestHandler godoc
// @Summary Enviar solicitud de match a un donante
// @Description Solo receptores. El donante tiene que ser compatible (rol, activo, órgano, tejido y grupo sanguíneo). Si ya existe una solicitud abierta para el par, se actualiza el mensaje.
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de perfil"
// @Param Authorization header string false "Bearer token"
// @Param payload body sendRequestBody true "Donante destino"
// @Success 201 {object} requestResponse
// @Failure 400 {string} string "invalid json / donor_id required"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Failure 422 {string} string "donor is not compatible with receiver"
// @Router /requests [post]
func sendRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body sendRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(body.DonorID) == "" {
			http.Error(w, "donor_id required", http.StatusBadRequest)
			return
		}

		req, err := svc.Send(r.Context(), SendInput{
			ReceiverID: claims.UserID,
			DonorID:    body.DonorID,
			Message:    body.Message,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRequestResponse(req))
	}
}

// listMyRequestsHandler godoc
// @Summary Mis solicitudes de match
// @Description Donante: solicitudes recibidas. Receptor: solicitudes enviadas. Más recientes primero. Filtro opcional status=pending,accepted
// @Tags requests
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de perfil"
// @Param Authorization header string false "Bearer token"
// @Param status query string false "CSV de estados"
// @Success 200 {array} requestResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Router /me/requests [get]
func listMyRequestsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		allowed := parseStatusFilter(r.URL.Query().Get("status"))

		items, err := svc.ListFor(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]requestResponse, 0, len(items))
		for _, it := range items {
			if len(allowed) > 0 {
				if _, ok := allowed[it.Status]; !ok {
					continue
				}
			}
			out = append(out, toRequestResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// transitionHandler godoc
// @Summary Aceptar / rechazar / retirar una solicitud
// @Description accept y decline: solo el donante, desde pending. withdraw: solo el receptor, desde pending o accepted. Repetir la misma acción es idempotente.
// @Tags requests
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de perfil"
// @Param Authorization header string false "Bearer token"
// @Param requestID path string true "Request ID"
// @Success 200 {object} requestResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "invalid state"
// @Router /requests/{requestID}/accept [post]
// @Router /requests/{requestID}/decline [post]
// @Router /requests/{requestID}/withdraw [post]
func transitionHandler(action func(ctx context.Context, requestID, actorID string) (Request, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		req, err := action(r.Context(), chi.URLParam(r, "requestID"), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRequestResponse(req))
	}
}

func toRequestResponse(r Request) requestResponse {
	return requestResponse{
		ID:         r.ID,
		ReceiverID: r.ReceiverID,
		DonorID:    r.DonorID,
		Message:    r.Message,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		ClosedAt:   r.ClosedAt,
	}
}

func parseStatusFilter(raw string) map[Status]struct{} {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := map[Status]struct{}{}
	for _, p := range strings.Split(raw, ",") {
		s := Status(strings.TrimSpace(p))
		if s == "" {
			continue
		}
		out[s] = struct{}{}
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrBadState):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotCompatible):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
