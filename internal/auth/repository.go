// internal/auth/repository.go
// Database access for user accounts

package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// Repository defines account storage operations
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByEmailOrUsername(ctx context.Context, emailOrUsername string) (*User, error)
	EmailOrUsernameExists(ctx context.Context, email, username string) (bool, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a PostgreSQL-backed account repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (email, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
	var user User
	query := `
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *postgresRepository) GetUserByEmailOrUsername(ctx context.Context, emailOrUsername string) (*User, error) {
	var user User
	query := `
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users WHERE email = $1 OR username = $1`

	err := r.db.GetContext(ctx, &user, query, emailOrUsername)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *postgresRepository) EmailOrUsernameExists(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR username = $2)`
	if err := r.db.GetContext(ctx, &exists, query, email, username); err != nil {
		return false, err
	}
	return exists, nil
}
