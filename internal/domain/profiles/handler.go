package profiles

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"organ-match/internal/middleware"
	"organ-match/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// TokenIssuer firma el token de sesión tras un login correcto.
// Si es nil (modo dev) el login devuelve solo el perfil.
type TokenIssuer interface {
	Issue(p Profile) (token string, expiresAt time.Time, err error)
}

func RegisterRoutes(r chi.Router, svc *Service, tokens TokenIssuer, log logger.Logger) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, log))
		ar.Post("/login", loginHandler(svc, tokens, log))
	})

	// Otros módulos cuelgan rutas de /me/..., por eso no se usa r.Route("/me").
	r.Get("/me", getMeHandler(svc))
	r.Patch("/me", updateMeHandler(svc))
	r.Post("/me/deactivate", setActiveHandler(svc, false))
	r.Post("/me/activate", setActiveHandler(svc, true))

	r.Get("/profiles/{profileID}", getProfileHandler(svc))
}

// registerRequest alta de donante o receptor.
type registerRequest struct {
	Role                   Role       `json:"role" enums:"donor,receiver"`
	Name                   string     `json:"name"`
	Age                    int        `json:"age"`
	Gender                 Gender     `json:"gender" enums:"male,female,other"`
	BloodType              BloodType  `json:"blood_type" enums:"O-,O+,A-,A+,B-,B+,AB-,AB+"`
	Organ                  Organ      `json:"organ"`
	TissueType             TissueType `json:"tissue_type" enums:"HLA-A,HLA-B,HLA-C,HLA-DR,HLA-DQ,HLA-DP"`
	Location               string     `json:"location"`
	HospitalName           string     `json:"hospital_name"`
	HospitalTransportation string     `json:"hospital_transportation"` // solo donor
	MedicalHistory         string     `json:"medical_history"`
	Email                  string     `json:"email"`
	Password               string     `json:"password"`
	HealthScore            *int       `json:"health_score"` // solo donor, 1-10
	Urgency                Urgency    `json:"urgency"`      // solo receiver
}

type loginRequest struct {
	Role     Role   `json:"role" enums:"donor,receiver"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string          `json:"token,omitempty"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	Profile   ProfileResponse `json:"profile"`
}

type updateProfileRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name                   *string     `json:"name"`
	Age                    *int        `json:"age"`
	Gender                 *Gender     `json:"gender"`
	BloodType              *BloodType  `json:"blood_type"`
	Organ                  *Organ      `json:"organ"`
	TissueType             *TissueType `json:"tissue_type"`
	Location               *string     `json:"location"`
	HospitalName           *string     `json:"hospital_name"`
	HospitalTransportation *string     `json:"hospital_transportation"`
	MedicalHistory         *string     `json:"medical_history"`
	HealthScore            *int        `json:"health_score"`
	Urgency                *Urgency    `json:"urgency"`
}

// ProfileResponse es la vista pública de un perfil (sin hash de contraseña).
// Otros módulos la reutilizan para listar matches.
type ProfileResponse struct {
	ID                     string     `json:"id"`
	Role                   Role       `json:"role"`
	Name                   string     `json:"name"`
	Age                    int        `json:"age"`
	Gender                 Gender     `json:"gender"`
	BloodType              BloodType  `json:"blood_type"`
	Organ                  Organ      `json:"organ"`
	TissueType             TissueType `json:"tissue_type"`
	Location               string     `json:"location"`
	HospitalName           string     `json:"hospital_name"`
	HospitalTransportation string     `json:"hospital_transportation,omitempty"`
	MedicalHistory         string     `json:"medical_history"`
	Email                  string     `json:"email"`
	HealthScore            *int       `json:"health_score,omitempty"`
	Urgency                Urgency    `json:"urgency,omitempty"`
	Active                 bool       `json:"active"`
	RegisteredAt           time.Time  `json:"registered_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// registerHandler godoc
// @Summary Registrar donante o receptor
// @Description Crea un perfil. Valida edad 18-80, contraseña de 6+ caracteres, datos médicos obligatorios, health score (donor) o urgencia (receiver). El email es único dentro de cada rol.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos del perfil"
// @Success 201 {object} ProfileResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 409 {string} string "email already registered"
// @Router /auth/register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Register(r.Context(), RegisterInput{
			Role:                   req.Role,
			Name:                   req.Name,
			Age:                    req.Age,
			Gender:                 req.Gender,
			BloodType:              req.BloodType,
			Organ:                  req.Organ,
			TissueType:             req.TissueType,
			Location:               req.Location,
			HospitalName:           req.HospitalName,
			HospitalTransportation: req.HospitalTransportation,
			MedicalHistory:         req.MedicalHistory,
			Email:                  req.Email,
			Password:               req.Password,
			HealthScore:            req.HealthScore,
			Urgency:                req.Urgency,
		})
		if err != nil {
			if !errors.Is(err, ErrInvalidInput) && !errors.Is(err, ErrEmailTaken) {
				log.Error("register failed", map[string]any{"err": err})
			}
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(p))
	}
}

// loginHandler godoc
// @Summary Login por rol + email + contraseña
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "invalid credentials"
// @Router /auth/login [post]
func loginHandler(svc *Service, tokens TokenIssuer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Authenticate(r.Context(), req.Role, req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		out := loginResponse{Profile: ToResponse(p)}
		if tokens != nil {
			token, exp, err := tokens.Issue(p)
			if err != nil {
				log.Error("token issue failed", map[string]any{"profile_id": p.ID, "err": err})
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			out.Token = token
			out.ExpiresAt = &exp
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getMeHandler godoc
// @Summary Perfil del usuario autenticado
// @Tags profiles
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de perfil"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} ProfileResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "profile not found"
// @Router /me [get]
func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := CurrentProfile(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(p))
	}
}

// updateMeHandler godoc
// @Summary Editar mi perfil
// @Description PATCH: los campos ausentes no se tocan. ID, email, rol y fecha de alta no son editables.
// @Tags profiles
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de perfil"
// @Param Authorization header string false "Bearer token"
// @Param payload body updateProfileRequest true "Campos a modificar"
// @Success 200 {object} ProfileResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Router /me [patch]
func updateMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateProfileRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), claims.UserID, UpdateInput{
			Name:                   req.Name,
			Age:                    req.Age,
			Gender:                 req.Gender,
			BloodType:              req.BloodType,
			Organ:                  req.Organ,
			TissueType:             req.TissueType,
			Location:               req.Location,
			HospitalName:           req.HospitalName,
			HospitalTransportation: req.HospitalTransportation,
			MedicalHistory:         req.MedicalHistory,
			HealthScore:            req.HealthScore,
			Urgency:                req.Urgency,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToResponse(updated))
	}
}

// setActiveHandler godoc
// @Summary Activar / desactivar mi perfil
// @Description Un perfil inactivo no aparece en ningún cálculo de matches. Nunca se borra.
// @Tags profiles
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de perfil"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} ProfileResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/deactivate [post]
// @Router /me/activate [post]
func setActiveHandler(svc *Service, active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.SetActive(r.Context(), claims.UserID, active)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(p))
	}
}

// getProfileHandler godoc
// @Summary Ver un perfil por ID
// @Tags profiles
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de perfil"
// @Param Authorization header string false "Bearer token"
// @Param profileID path string true "ID del perfil (DONOR_... / RECEIVER_...)"
// @Success 200 {object} ProfileResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "profile not found"
// @Router /profiles/{profileID} [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "profileID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(p))
	}
}

// CurrentProfile resuelve el perfil del caller o escribe 401/404.
func CurrentProfile(w http.ResponseWriter, r *http.Request, svc *Service) (Profile, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Profile{}, false
	}

	p, err := svc.GetByID(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return Profile{}, false
	}
	return p, true
}

func ToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:                     p.ID,
		Role:                   p.Role,
		Name:                   p.Name,
		Age:                    p.Age,
		Gender:                 p.Gender,
		BloodType:              p.BloodType,
		Organ:                  p.Organ,
		TissueType:             p.TissueType,
		Location:               p.Location,
		HospitalName:           p.HospitalName,
		HospitalTransportation: p.HospitalTransportation,
		MedicalHistory:         p.MedicalHistory,
		Email:                  p.Email,
		HealthScore:            p.HealthScore,
		Urgency:                p.Urgency,
		Active:                 p.Active,
		RegisteredAt:           p.RegisteredAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado en cada módulo (profiles/matching/requests)
// para no crear un paquete de helpers compartidos todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
