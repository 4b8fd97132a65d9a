// internal/notify/repository.go
// Lookup of delivery addresses for notification recipients

package notify

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrContactNotFound = errors.New("contact not found")

// Repository resolves user IDs to delivery addresses
type Repository interface {
	GetUserContact(ctx context.Context, userID int64) (*Contact, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a PostgreSQL-backed contact repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetUserContact(ctx context.Context, userID int64) (*Contact, error) {
	var contact Contact
	query := `
		SELECT u.id AS user_id, u.email,
		       COALESCE(u.phone, '') AS phone,
		       COALESCE(p.display_name, u.username) AS display_name
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.id = $1`

	err := r.db.GetContext(ctx, &contact, query, userID)
	if err == sql.ErrNoRows {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
