package auth

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList is the token deny-list, keyed by the token id (jti).
// Entries only need to outlive the token they revoke.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SQLRevocationList stores revoked ids in the tokens_jwt_invalidos table.
type SQLRevocationList struct {
	db *sql.DB
}

func NewSQLRevocationList(db *sql.DB) *SQLRevocationList {
	return &SQLRevocationList{db: db}
}

func (l *SQLRevocationList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	query := `
		INSERT INTO tokens_jwt_invalidos (jti, expira_en)
		VALUES ($1, $2)
		ON CONFLICT (jti) DO NOTHING
	`
	if _, err := l.db.ExecContext(ctx, query, tokenID, expiresAt.UTC()); err != nil {
		return fmt.Errorf("could not revoke token: %w", err)
	}
	return nil
}

func (l *SQLRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM tokens_jwt_invalidos WHERE jti = $1)"
	if err := l.db.QueryRowContext(ctx, query, tokenID).Scan(&exists); err != nil {
		return false, fmt.Errorf("could not check revoked token: %w", err)
	}
	return exists, nil
}

// RedisRevocationList keeps one key per revoked id with a TTL equal to the
// token's remaining lifetime, so entries expire on their own.
type RedisRevocationList struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRevocationList(client *redis.Client) *RedisRevocationList {
	return &RedisRevocationList{client: client, now: time.Now}
}

func revokedKey(tokenID string) string {
	return "revoked_token:" + tokenID
}

func (l *RedisRevocationList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(l.now())
	if ttl <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, revokedKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("could not revoke token: %w", err)
	}
	return nil
}

func (l *RedisRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("could not check revoked token: %w", err)
	}
	return n > 0, nil
}
