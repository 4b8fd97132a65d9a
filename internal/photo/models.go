// internal/photo/models.go
// Data structures for user photos and their analyzed appearance attributes

package photo

import (
	"time"
)

// Photo represents an uploaded user photo with its analyzed attribute scores.
// Scores live on the photo row so re-analysis replaces them wholesale.
type Photo struct {
	ID          string `json:"id" db:"id"`
	UserID      int64  `json:"user_id" db:"user_id"`
	URL         string `json:"url" db:"url"`
	StoragePath string `json:"-" db:"storage_path"`
	IsPrimary   bool   `json:"is_primary" db:"is_primary"`

	StyleScore        float64 `json:"style_score" db:"style_score"`
	TasteScore        float64 `json:"taste_score" db:"taste_score"`
	CoordinationScore float64 `json:"coordination_score" db:"coordination_score"`
	QualityScore      float64 `json:"quality_score" db:"quality_score"`
	BeautyScore       float64 `json:"beauty_score" db:"beauty_score"`
	FaceDetected      bool    `json:"face_detected" db:"face_detected"`

	AnalyzedAt *time.Time `json:"analyzed_at" db:"analyzed_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// UploadResponse is returned after a successful photo upload
type UploadResponse struct {
	Photo   *Photo `json:"photo"`
	Message string `json:"message,omitempty"`
}
