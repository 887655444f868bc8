package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"organ-match/internal/domain/profiles"
	"organ-match/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenEmpty    = errors.New("token is empty")
	ErrInvalidToken  = errors.New("invalid token")
	ErrNotConfigured = errors.New("jwt signing key not configured")
)

const (
	defaultTTL    = 24 * time.Hour
	defaultIssuer = "organ-match"
)

// tokenClaims es lo que viaja firmado dentro del token.
type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	gojwt.RegisteredClaims
}

// Service emite (profiles.TokenIssuer) y verifica (auth.AuthVerifier) tokens HS256.
type Service struct {
	signingKey []byte
	ttl        time.Duration
	issuer     string

	now func() time.Time
}

func NewService(signingKey string, ttl time.Duration) (*Service, error) {
	signingKey = strings.TrimSpace(signingKey)
	if signingKey == "" {
		return nil, ErrNotConfigured
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		issuer:     defaultIssuer,
		now:        time.Now,
	}, nil
}

func (s *Service) Issue(p profiles.Profile) (string, time.Time, error) {
	if strings.TrimSpace(p.ID) == "" {
		return "", time.Time{}, errors.New("profile id required")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, tokenClaims{
		Email: p.Email,
		Role:  string(p.Role),
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   p.ID,
			Issuer:    s.issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var claims tokenClaims
	parsed, err := gojwt.ParseWithClaims(token, &claims, func(t *gojwt.Token) (any, error) {
		if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, gojwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	},
		gojwt.WithIssuer(s.issuer),
		gojwt.WithTimeFunc(s.now),
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	return auth.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
