// internal/profile/dto.go
// Request payloads with validation tags

package profile

// UpsertProfileRequest creates or replaces a user's questionnaire answers.
// The oneof values mirror the questionnaire's closed answer sets. The
// interests count cap is configurable and enforced by the service.
type UpsertProfileRequest struct {
	DisplayName string   `json:"display_name" validate:"required,min=1,max=50"`
	Bio         string   `json:"bio" validate:"max=500"`
	Gender      string   `json:"gender" validate:"required,oneof=male_student female"`
	Interests   []string `json:"interests" validate:"unique,dive,min=1,max=30"`

	RelationshipIntent   string `json:"relationship_intent" validate:"omitempty,oneof=short_term long_term destined"`
	SocialBoundary       string `json:"social_boundary" validate:"omitempty,oneof=strict moderate open"`
	AppearancePreference string `json:"appearance_preference" validate:"omitempty,oneof=looks_focused somewhat character_focused"`
}
