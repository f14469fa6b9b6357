package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sebuszqo/LanaApp/internal/records"
)

type Repository interface {
	CreateUser(ctx context.Context, user *User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id int64, user *User) error
	DeleteUser(ctx context.Context, id int64) error
}

var userSchema = records.Schema[User]{
	Table:      "usuarios",
	Columns:    []string{"nombre_usuario", "email", "password_hash", "telefono", "foto_perfil"},
	Projection: []string{"id", "nombre_usuario", "email", "password_hash", "telefono", "foto_perfil", "fecha_creacion"},
	Values: func(u *User) []any {
		return []any{u.Name, u.Email, u.PasswordHash, u.Phone, u.ProfilePhoto}
	},
	Scan: func(s records.Scanner, u *User) error {
		return s.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.ProfilePhoto, &u.CreatedAt)
	},
	Violations: []records.Violation{
		{Constraint: "usuarios_email_key", Signature: "Duplicate entry", Err: ErrEmailAlreadyExists},
	},
}

type userRepository struct {
	records *records.Gateway[User]
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{records: records.NewGateway(db, userSchema)}
}

func notFound(err error) error {
	if errors.Is(err, records.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (r *userRepository) CreateUser(ctx context.Context, user *User) (int64, error) {
	return r.records.Create(ctx, user)
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
	u, err := r.records.Get(ctx, id)
	return u, notFound(err)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := r.records.First(ctx, records.Query{Filters: []records.Filter{records.Eq("email", email)}})
	return u, notFound(err)
}

func (r *userRepository) ListUsers(ctx context.Context) ([]User, error) {
	return r.records.List(ctx, records.Query{})
}

func (r *userRepository) UpdateUser(ctx context.Context, id int64, user *User) error {
	return notFound(r.records.Update(ctx, id, user))
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	return notFound(r.records.Delete(ctx, id))
}
