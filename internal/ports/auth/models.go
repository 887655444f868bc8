package auth

import "context"

// Claims representa la identidad del perfil autenticado.
// Role es "donor" o "receiver"; vacío en modo dev (X-Debug-User-ID).
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// AuthVerifier valida un bearer token de perfil. El adapter jwt lo implementa.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
