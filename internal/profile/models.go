// internal/profile/models.go
// Questionnaire profile data structures

package profile

import (
	"time"

	"github.com/lib/pq"

	"github.com/heartlinkhq/heartlink-backend/internal/match"
)

// Profile holds a user's questionnaire answers. The matching engine reads
// these answers through its own repository; this package owns the writes.
type Profile struct {
	UserID      int64          `json:"user_id" db:"user_id"`
	DisplayName string         `json:"display_name" db:"display_name"`
	Bio         string         `json:"bio" db:"bio"`
	Gender      match.Gender   `json:"gender" db:"gender"`
	Interests   pq.StringArray `json:"interests" db:"interests"`

	RelationshipIntent   string `json:"relationship_intent" db:"relationship_intent"`
	SocialBoundary       string `json:"social_boundary" db:"social_boundary"`
	AppearancePreference string `json:"appearance_preference" db:"appearance_preference"`

	LastActiveAt time.Time `json:"last_active_at" db:"last_active_at"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
