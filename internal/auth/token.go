package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails validation. Expired,
// forged and malformed tokens are deliberately indistinguishable.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenConfig holds the immutable signing parameters, injected at startup.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// DefaultTokenTTL is how long an issued bearer token remains valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenIssuer creates and verifies signed bearer tokens carrying a user
// identity claim.
type TokenIssuer struct {
	cfg TokenConfig
	now func() time.Time
}

// NewTokenIssuer returns a TokenIssuer for the given config. A zero TTL
// falls back to DefaultTokenTTL.
func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTokenTTL
	}
	return &TokenIssuer{cfg: cfg, now: time.Now}
}

// Issue creates a signed, time-boxed bearer token for the given user ID.
func (t *TokenIssuer) Issue(userID uint) (string, error) {
	if t.cfg.Secret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := t.now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": t.cfg.Issuer,
		"aud": t.cfg.Audience,
		"exp": now.Add(t.cfg.TTL).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": t.generateJTI(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.cfg.Secret))
}

// Validate verifies signature, issuer, audience and expiry, and returns the
// user ID claim. Any failure is reported uniformly as ErrInvalidToken.
func (t *TokenIssuer) Validate(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(t.cfg.Secret), nil
	},
		jwt.WithIssuer(t.cfg.Issuer),
		jwt.WithAudience(t.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (t *TokenIssuer) generateJTI(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8])
}
