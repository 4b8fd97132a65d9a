// internal/photo/repository.go
// Database access for photos and their attribute scores

package photo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrPhotoNotFound = errors.New("photo not found")

// Repository defines photo storage operations
type Repository interface {
	CreatePhoto(ctx context.Context, photo *Photo) error
	GetPhoto(ctx context.Context, id string) (*Photo, error)
	GetUserPhotos(ctx context.Context, userID int64) ([]*Photo, error)
	CountUserPhotos(ctx context.Context, userID int64) (int, error)
	SetPrimary(ctx context.Context, userID int64, photoID string) error
	UpdateAttributes(ctx context.Context, photo *Photo) error
	GetPhotosWithDefaultScores(ctx context.Context, limit int) ([]*Photo, error)
	DeletePhoto(ctx context.Context, userID int64, photoID string) (*Photo, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a PostgreSQL-backed photo repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreatePhoto(ctx context.Context, photo *Photo) error {
	query := `
		INSERT INTO photos (
			id, user_id, url, storage_path, is_primary,
			style_score, taste_score, coordination_score, quality_score, beauty_score,
			face_detected, analyzed_at, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, NOW()
		)
		RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		photo.ID, photo.UserID, photo.URL, photo.StoragePath, photo.IsPrimary,
		photo.StyleScore, photo.TasteScore, photo.CoordinationScore,
		photo.QualityScore, photo.BeautyScore,
		photo.FaceDetected, photo.AnalyzedAt,
	).Scan(&photo.CreatedAt)
}

func (r *postgresRepository) GetPhoto(ctx context.Context, id string) (*Photo, error) {
	var photo Photo
	query := `SELECT * FROM photos WHERE id = $1`

	err := r.db.GetContext(ctx, &photo, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrPhotoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *postgresRepository) GetUserPhotos(ctx context.Context, userID int64) ([]*Photo, error) {
	var photos []*Photo
	query := `
		SELECT * FROM photos
		WHERE user_id = $1
		ORDER BY is_primary DESC, created_at DESC`

	if err := r.db.SelectContext(ctx, &photos, query, userID); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *postgresRepository) CountUserPhotos(ctx context.Context, userID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM photos WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, err
	}
	return count, nil
}

// SetPrimary marks one photo as primary and clears the flag on the rest.
// Both updates run in one transaction so a user never has two primaries.
func (r *postgresRepository) SetPrimary(ctx context.Context, userID int64, photoID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE photos SET is_primary = FALSE WHERE user_id = $1`, userID); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE photos SET is_primary = TRUE WHERE id = $1 AND user_id = $2`,
		photoID, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPhotoNotFound
	}

	return tx.Commit()
}

// UpdateAttributes replaces all analyzed scores on a photo in one statement
func (r *postgresRepository) UpdateAttributes(ctx context.Context, photo *Photo) error {
	now := time.Now()
	photo.AnalyzedAt = &now

	query := `
		UPDATE photos SET
			style_score = $1, taste_score = $2, coordination_score = $3,
			quality_score = $4, beauty_score = $5,
			face_detected = $6, analyzed_at = $7
		WHERE id = $8`

	res, err := r.db.ExecContext(ctx, query,
		photo.StyleScore, photo.TasteScore, photo.CoordinationScore,
		photo.QualityScore, photo.BeautyScore,
		photo.FaceDetected, photo.AnalyzedAt, photo.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

// GetPhotosWithDefaultScores returns photos still carrying fallback scores,
// oldest first, for the batch re-scoring job
func (r *postgresRepository) GetPhotosWithDefaultScores(ctx context.Context, limit int) ([]*Photo, error) {
	var photos []*Photo
	query := `
		SELECT * FROM photos
		WHERE face_detected = FALSE
		ORDER BY created_at ASC
		LIMIT $1`

	if err := r.db.SelectContext(ctx, &photos, query, limit); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *postgresRepository) DeletePhoto(ctx context.Context, userID int64, photoID string) (*Photo, error) {
	var photo Photo
	query := `
		DELETE FROM photos
		WHERE id = $1 AND user_id = $2
		RETURNING *`

	err := r.db.GetContext(ctx, &photo, query, photoID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrPhotoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete photo: %w", err)
	}
	return &photo, nil
}
