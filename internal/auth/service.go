package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/badoux/checkmail"
	"github.com/sebuszqo/LanaApp/internal/httpx"
	"github.com/sebuszqo/LanaApp/internal/logging"
	"github.com/sebuszqo/LanaApp/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("Email o contraseña incorrectos")
	ErrUnauthorized       = errors.New("Token inválido")
	ErrRevokedToken       = errors.New("token has been revoked")
)

// LoginTokenDuration is the lifetime of tokens minted by Login.
const LoginTokenDuration = 24 * time.Hour

// UserLookup resolves a token subject to its account.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
}

type Service interface {
	Login(ctx context.Context, email, password string) (*user.User, string, error)
	Authenticate(ctx context.Context, token string) (*user.User, *Claims, error)
	Logout(ctx context.Context, token string) error
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	users          UserLookup
	jwtManager     JWTManagerInterface
	revocations    RevocationList
	loginTTL       time.Duration
	passwordsMatch func(hashedPassword, password string) bool
	respondError   httpx.RespondErrorFunc
	logger         logging.Logger
}

func NewAuthService(
	users UserLookup,
	jwtManager JWTManagerInterface,
	revocations RevocationList,
	loginTTL time.Duration,
	respondError httpx.RespondErrorFunc,
	logger logging.Logger,
) Service {
	if users == nil || jwtManager == nil {
		panic("auth service requires a user lookup and a JWT manager")
	}
	if respondError == nil {
		panic("respondError function must not be nil")
	}
	if loginTTL <= 0 {
		loginTTL = LoginTokenDuration
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &service{
		users:          users,
		jwtManager:     jwtManager,
		revocations:    revocations,
		loginTTL:       loginTTL,
		passwordsMatch: doPasswordsMatch,
		respondError:   respondError,
		logger:         logger,
	}
}

// Login checks the credentials and mints a token for the account. Every
// credential failure returns ErrInvalidCredentials.
func (s *service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	email = user.NormalizeEmail(email)
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	existingUser, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if user.IsNotFound(err) {
			s.passwordsMatch(dummyPasswordHash(), password)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("could not load user: %w", err)
	}

	if !s.passwordsMatch(existingUser.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.Issue(existingUser.Email, s.loginTTL)
	if err != nil {
		return nil, "", err
	}
	return existingUser, token, nil
}

// Authenticate validates the token, consults the deny-list and resolves the
// subject to a user. Any rejection wraps ErrUnauthorized.
func (s *service) Authenticate(ctx context.Context, token string) (*user.User, *Claims, error) {
	claims, err := s.jwtManager.Validate(token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	if s.revocations != nil && claims.Id != "" {
		revoked, err := s.revocations.IsRevoked(ctx, claims.Id)
		if err != nil {
			return nil, nil, err
		}
		if revoked {
			return nil, nil, fmt.Errorf("%w: %v", ErrUnauthorized, ErrRevokedToken)
		}
	}

	existingUser, err := s.users.GetUserByEmail(ctx, claims.Subject)
	if err != nil {
		if user.IsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return nil, nil, err
	}
	return existingUser, claims, nil
}

// Logout revokes a still-valid token. Invalid or missing tokens are ignored.
func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" || s.revocations == nil {
		return nil
	}
	claims, err := s.jwtManager.Validate(token)
	if err != nil || claims.Id == "" {
		return nil
	}
	return s.revocations.Revoke(ctx, claims.Id, claims.ExpiresAtTime())
}
