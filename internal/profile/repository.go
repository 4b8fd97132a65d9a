// internal/profile/repository.go
// Database access for questionnaire profiles

package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrProfileNotFound = errors.New("profile not found")

// Repository defines profile storage operations
type Repository interface {
	UpsertProfile(ctx context.Context, profile *Profile) error
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	TouchLastActive(ctx context.Context, userID int64) error
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a PostgreSQL-backed profile repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) UpsertProfile(ctx context.Context, profile *Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, display_name, bio, gender, interests,
			relationship_intent, social_boundary, appearance_preference,
			last_active_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			bio = EXCLUDED.bio,
			gender = EXCLUDED.gender,
			interests = EXCLUDED.interests,
			relationship_intent = EXCLUDED.relationship_intent,
			social_boundary = EXCLUDED.social_boundary,
			appearance_preference = EXCLUDED.appearance_preference,
			updated_at = NOW()
		RETURNING last_active_at, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.DisplayName, profile.Bio, profile.Gender,
		pq.StringArray(profile.Interests),
		profile.RelationshipIntent, profile.SocialBoundary, profile.AppearancePreference,
	).Scan(&profile.LastActiveAt, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *postgresRepository) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	var profile Profile
	query := `SELECT * FROM profiles WHERE user_id = $1`

	err := r.db.GetContext(ctx, &profile, query, userID)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *postgresRepository) TouchLastActive(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET last_active_at = NOW() WHERE user_id = $1`, userID)
	return err
}
