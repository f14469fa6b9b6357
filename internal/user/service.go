package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/badoux/checkmail"
	appErrors "github.com/sebuszqo/LanaApp/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength    = 255
	minNameLength     = 3
	maxNameLength     = 100
	minPasswordLength = 6
	bcryptCost        = 12
)

var (
	ErrUserNotFound       = appErrors.NewNotFoundError("Usuario no encontrado")
	ErrInvalidEmail       = appErrors.NewValidationError("El email no es válido")
	ErrEmailAlreadyExists = appErrors.NewValidationError("El email ya está registrado")
	ErrNameLength         = appErrors.NewValidationError(fmt.Sprintf("El nombre de usuario debe tener entre %d y %d caracteres", minNameLength, maxNameLength))
	ErrPasswordLength     = appErrors.NewValidationError(fmt.Sprintf("La contraseña debe tener al menos %d caracteres", minPasswordLength))
)

// User is the account record. PasswordHash never leaves the service.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nombre_usuario"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        *string   `json:"telefono"`
	ProfilePhoto *string   `json:"foto_perfil"`
	CreatedAt    time.Time `json:"fecha_creacion"`
}

type RegisterRequest struct {
	Name         string  `json:"nombre_usuario"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Phone        *string `json:"telefono"`
	ProfilePhoto *string `json:"foto_perfil"`
}

// UpdateRequest changes only the fields that are present.
type UpdateRequest struct {
	Name         *string `json:"nombre_usuario"`
	Password     *string `json:"password"`
	Phone        *string `json:"telefono"`
	ProfilePhoto *string `json:"foto_perfil"`
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id int64, req UpdateRequest) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
	cost int
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo, cost: bcryptCost}
}

func (s *service) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	return string(hashed), err
}

// NormalizeEmail lower-cases and trims an address the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmailAddress(email string) error {
	if len(email) > maxEmailLength {
		return ErrInvalidEmail
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func validateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < minNameLength || n > maxNameLength {
		return ErrNameLength
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordLength
	}
	return nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	email := NormalizeEmail(req.Email)
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	u := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        req.Phone,
		ProfilePhoto: req.ProfilePhoto,
	}
	id, err := s.repo.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	return s.repo.GetUserByID(ctx, id)
}

func (s *service) GetUserByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetUserByEmail(ctx, NormalizeEmail(email))
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *service) UpdateUser(ctx context.Context, id int64, req UpdateRequest) (*User, error) {
	existing, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		existing.Name = name
	}
	if req.Password != nil {
		if err := validatePassword(*req.Password); err != nil {
			return nil, err
		}
		hash, err := s.hashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("could not hash password: %w", err)
		}
		existing.PasswordHash = hash
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.ProfilePhoto != nil {
		existing.ProfilePhoto = req.ProfilePhoto
	}

	if err := s.repo.UpdateUser(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.DeleteUser(ctx, id)
}

// IsNotFound reports whether err means the user does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
