package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/grademl/inference-api/internal/core/domain"
)

// Demo deployment credentials: a single fixed pair, constant for the life of
// the deployed system.
const (
	demoUsername = "demo"
	demoPassword = "password"

	tokenTTL = time.Hour
)

// TokenService issues and validates HS256-signed JWTs keyed by the
// process-lifetime signing secret.
type TokenService struct {
	secret []byte
	now    func() time.Time
	log    zerolog.Logger
}

func NewTokenService(secret string, log zerolog.Logger) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		now:    time.Now,
		log:    log,
	}
}

// Issue compares the credentials against the fixed pair and, on match,
// returns a token with subject = username and a one-hour expiry.
//
// Both fields are compared in constant time and the results combined before
// branching, so neither the response nor the timing reveals which field was
// wrong.
func (s *TokenService) Issue(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(demoUsername))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(demoPassword))
	if userOK&passOK != 1 {
		s.log.Info().Str("username", username).Msg("failed login attempt")
		return "", domain.ErrBadCredentials
	}

	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(s.now().Add(tokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature, algorithm and expiry and returns the token
// subject. All failure modes collapse to domain.ErrInvalidToken; the real
// cause is logged server-side only.
func (s *TokenService) Validate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		s.log.Warn().Err(err).Msg("token validation failed")
		return "", domain.ErrInvalidToken
	}

	// Expiry must be present, and now >= exp is rejected (strict).
	if claims.ExpiresAt == nil || !s.now().Before(claims.ExpiresAt.Time) {
		s.log.Warn().Msg("token validation failed: missing or passed expiry")
		return "", domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		s.log.Warn().Msg("token validation failed: empty subject")
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
