package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "passgen"
	tokenAudience = "passgen-api"
)

var (
	ErrInvalidToken = errors.New("invalid or expired session token")
)

// SessionClaims carries a widget session's generation settings. The password
// itself is never stored in the token.
type SessionClaims struct {
	jwt.RegisteredClaims
	Length  int  `json:"len"`
	Digits  bool `json:"dig"`
	Symbols bool `json:"sym"`
}

// Config returns the generation settings held by the claims.
func (c *SessionClaims) Config() GenerationConfig {
	return GenerationConfig{
		Length:         c.Length,
		IncludeDigits:  c.Digits,
		IncludeSymbols: c.Symbols,
	}
}

// GenerateToken creates a signed session token for cfg. An empty sessionID starts a
// new session with a fresh UUID.
func GenerateToken(sessionID string, cfg GenerationConfig, secret string, expiry time.Duration) (string, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Length:  cfg.Length,
		Digits:  cfg.IncludeDigits,
		Symbols: cfg.IncludeSymbols,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a session token string, returning the claims if valid.
func ValidateToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.ID); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
