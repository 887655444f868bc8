package middleware

import (
	"context"
	"net/http"
	"strings"

	"organ-match/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

const debugUserHeader = "X-Debug-User-ID"

// AuthContext resuelve la identidad del perfil.
// - verifier == nil: modo dev, X-Debug-User-ID define el perfil (sin rol).
// - verifier != nil: Bearer JWT. Token inválido, sin sub o con rol desconocido => 401.
// Sin credenciales el request sigue sin claims; cada handler exige auth o no.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get(debugUserHeader)); uid != "" {
					next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), auth.Claims{UserID: uid})))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			header := strings.TrimSpace(r.Header.Get("Authorization"))
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(header)
			if token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil || strings.TrimSpace(claims.UserID) == "" || !knownRole(claims.Role) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// GetRole devuelve el rol del token ("" en modo dev).
func GetRole(ctx context.Context) string {
	c, _ := GetClaims(ctx)
	return c.Role
}

func withClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func knownRole(role string) bool {
	return role == "donor" || role == "receiver"
}

func bearerToken(authHeader string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
