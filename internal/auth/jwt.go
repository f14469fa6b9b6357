package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var (
	ErrInvalidJWTToken = errors.New("JWT token is invalid")
	ErrExpiredJWTToken = errors.New("JWT token is expired")
)

// DefaultTokenDuration applies when Issue is called without a lifetime.
const DefaultTokenDuration = 15 * time.Minute

type JWTManagerInterface interface {
	Issue(subject string, duration time.Duration) (string, error)
	Validate(tokenString string) (*Claims, error)
}

// Claims is the signed claim set: subject email, expiration and a token id
// used by the deny-list.
type Claims struct {
	jwt.StandardClaims
	now func() time.Time
}

// Valid checks the time claims against the manager's clock and requires a
// subject. iat and nbf are optional but must not lie in the future.
func (c *Claims) Valid() error {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	at := now().Unix()
	if !c.VerifyExpiresAt(at, true) {
		return jwt.NewValidationError("token is expired", jwt.ValidationErrorExpired)
	}
	if !c.VerifyIssuedAt(at, false) {
		return jwt.NewValidationError("token used before issued", jwt.ValidationErrorIssuedAt)
	}
	if !c.VerifyNotBefore(at, false) {
		return jwt.NewValidationError("token is not valid yet", jwt.ValidationErrorNotValidYet)
	}
	if c.Subject == "" {
		return jwt.NewValidationError("token has no subject", jwt.ValidationErrorClaimsInvalid)
	}
	return nil
}

// ExpiresAtTime returns the expiration as a time.Time.
func (c *Claims) ExpiresAtTime() time.Time {
	return time.Unix(c.ExpiresAt, 0)
}

type JWTManager struct {
	secret          []byte
	defaultDuration time.Duration
	now             func() time.Time
}

type JWTOption func(*JWTManager)

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) JWTOption {
	return func(m *JWTManager) { m.now = now }
}

func WithDefaultDuration(d time.Duration) JWTOption {
	return func(m *JWTManager) { m.defaultDuration = d }
}

func NewJWTManager(secret string, opts ...JWTOption) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("JWT secret must not be empty")
	}
	m := &JWTManager{
		secret:          []byte(secret),
		defaultDuration: DefaultTokenDuration,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Issue signs an HS256 token for subject. A non-positive duration falls back
// to the manager default.
func (j *JWTManager) Issue(subject string, duration time.Duration) (string, error) {
	if duration <= 0 {
		duration = j.defaultDuration
	}
	now := j.now()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(duration).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature, algorithm and expiration. It depends only on
// the token, the secret and the clock.
func (j *JWTManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{now: j.now}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})

	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors == jwt.ValidationErrorExpired {
			return nil, ErrExpiredJWTToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}
