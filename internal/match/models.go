package match

import (
    "encoding/json"
    "time"
)

// Gender is the closed two-category pairing model. Anything outside these two
// values is rejected at the profile boundary and treated as ineligible by the
// ranker.
type Gender string

const (
    GenderMaleStudent Gender = "male_student"
    GenderFemale      Gender = "female"
)

// ParseGender normalizes a raw gender string at the construction boundary.
func ParseGender(s string) (Gender, bool) {
    switch Gender(s) {
    case GenderMaleStudent:
        return GenderMaleStudent, true
    case GenderFemale:
        return GenderFemale, true
    }
    return "", false
}

func (g Gender) Valid() bool {
    return g == GenderMaleStudent || g == GenderFemale
}

// Complement returns the only gender this one may be paired with.
func (g Gender) Complement() (Gender, bool) {
    switch g {
    case GenderMaleStudent:
        return GenderFemale, true
    case GenderFemale:
        return GenderMaleStudent, true
    }
    return "", false
}

// Three-point ordinal questionnaire scales.

type RelationshipIntent string

const (
    IntentShortTerm RelationshipIntent = "short_term"
    IntentLongTerm  RelationshipIntent = "long_term"
    IntentDestined  RelationshipIntent = "destined"
)

type SocialBoundary string

const (
    BoundaryStrict   SocialBoundary = "strict"
    BoundaryModerate SocialBoundary = "moderate"
    BoundaryOpen     SocialBoundary = "open"
)

// AppearancePreference is the user's demand level for the other party's
// looks. The scale is inverted relative to attractiveness: looks_focused
// quantizes to 0 (demands maximum attractiveness), character_focused to 100
// (tolerates any).
type AppearancePreference string

const (
    PrefLooksFocused     AppearancePreference = "looks_focused"
    PrefSomewhat         AppearancePreference = "somewhat"
    PrefCharacterFocused AppearancePreference = "character_focused"
)

// PhotoAttributeSet holds the normalized per-photo scores, each on [1,10].
// It is recomputed wholesale on re-analysis, never partially patched. When
// FaceDetected is false the scores are the global defaults, not measurements.
type PhotoAttributeSet struct {
    Style        float64 `json:"style_score" db:"style_score"`
    Taste        float64 `json:"taste_score" db:"taste_score"`
    Coordination float64 `json:"coordination_score" db:"coordination_score"`
    Quality      float64 `json:"quality_score" db:"quality_score"`
    Beauty       float64 `json:"beauty_score" db:"beauty_score"`
    FaceDetected bool    `json:"face_detected" db:"face_detected"`
}

// UserProfile is the scoring view of a user: identity, questionnaire answers
// and the primary photo's attributes. PrimaryPhoto may be nil (unanalyzed or
// missing photo); scoring falls back to defaults rather than failing.
type UserProfile struct {
    ID             int64                `json:"id" db:"id"`
    Gender         Gender               `json:"gender" db:"gender"`
    Interests      []string             `json:"interests" db:"interests"`
    Intent         RelationshipIntent   `json:"relationship_intent" db:"relationship_intent"`
    Boundary       SocialBoundary       `json:"social_boundary" db:"social_boundary"`
    AppearancePref AppearancePreference `json:"appearance_pref" db:"appearance_pref"`
    PrimaryPhoto   *PhotoAttributeSet   `json:"primary_photo,omitempty"`
}

// Dimension names used as DimensionScores keys.
const (
    DimInterests  = "interests"
    DimIntent     = "relationship_intent"
    DimBoundary   = "social_boundary"
    DimAppearance = "appearance"
)

// MatchResult is the output of one pairwise computation. DimensionScores
// holds the weighted contribution of each dimension, so the four values sum
// to TotalScore.
type MatchResult struct {
    UserID          int64              `json:"user_id"`
    TotalScore      float64            `json:"total_score"`
    DimensionScores map[string]float64 `json:"dimension_scores"`
    Reasons         []string           `json:"reasons"`
}

// DailyPick is a persisted recommendation produced by the daily scheduler.
type DailyPick struct {
    ID                int64           `json:"id" db:"id"`
    UserID            int64           `json:"user_id" db:"user_id"`
    RecommendedUserID int64           `json:"recommended_user_id" db:"recommended_user_id"`
    Score             float64         `json:"score" db:"score"`
    Reasons           json.RawMessage `json:"reasons,omitempty" db:"reasons"`
    DimensionScores   json.RawMessage `json:"dimension_scores,omitempty" db:"dimension_scores"`
    IsSeen            bool            `json:"is_seen" db:"is_seen"`
    ExpiresAt         *time.Time      `json:"expires_at,omitempty" db:"expires_at"`
    CreatedAt         time.Time       `json:"created_at" db:"created_at"`
}
