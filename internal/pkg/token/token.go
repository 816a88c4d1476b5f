package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// DefaultTTL matches the session cookie lifetime.
const DefaultTTL = 24 * time.Hour

// Verification failure reasons. Callers treat any non-nil error as
// "unauthenticated"; the distinction exists for audit logging only.
var (
	ErrMissing      = errors.New("token missing")
	ErrMalformed    = errors.New("token malformed")
	ErrBadSignature = errors.New("token signature mismatch")
	ErrExpired      = errors.New("token expired")
	ErrBadClaims    = errors.New("token claims incomplete")
)

// Identity is the claim set carried by a session token.
type Identity struct {
	UserID   string
	Username string
	Role     string
}

type claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwtlib.RegisteredClaims
}

// Codec signs and verifies session tokens with a symmetric secret.
// It holds no mutable state; Verify is deterministic and side-effect free.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a codec. An empty secret is a configuration error and is
// rejected here so the process fails at startup rather than at first login.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the token lifetime, which the cookie max-age mirrors.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue signs a token for the given identity, valid for the codec TTL.
func (c *Codec) Issue(id Identity) (string, error) {
	now := time.Now()
	cl := claims{
		UserID:   id.UserID,
		Username: id.Username,
		Role:     id.Role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(c.ttl)),
		},
	}
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, cl)
	return tok.SignedString(c.secret)
}

// Verify checks signature, expiry and claim shape, returning the identity.
func (c *Codec) Verify(raw string) (Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}, ErrMissing
	}

	tok, err := jwtlib.ParseWithClaims(raw, &claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwtlib.ErrTokenExpired):
			return Identity{}, ErrExpired
		case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
			return Identity{}, ErrBadSignature
		default:
			return Identity{}, ErrMalformed
		}
	}

	cl, ok := tok.Claims.(*claims)
	if !ok || !tok.Valid {
		return Identity{}, ErrMalformed
	}
	if cl.UserID == "" || cl.Username == "" || cl.Role == "" {
		return Identity{}, ErrBadClaims
	}
	return Identity{UserID: cl.UserID, Username: cl.Username, Role: cl.Role}, nil
}
