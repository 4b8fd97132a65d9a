// internal/profile/service.go
// Questionnaire profile management

package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartlinkhq/heartlink-backend/internal/match"
)

const defaultMaxInterests = 10

// ErrInvalidGender is returned when the submitted gender is outside the
// questionnaire's closed answer set
var ErrInvalidGender = errors.New("invalid gender")

// ErrTooManyInterests is returned when the submitted interests exceed the
// configured cap
var ErrTooManyInterests = errors.New("too many interests")

// Options tunes profile validation. A zero MaxInterests falls back to the
// default cap.
type Options struct {
	MaxInterests int
}

// Service defines profile operations
type Service interface {
	UpsertProfile(ctx context.Context, userID int64, req *UpsertProfileRequest) (*Profile, error)
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	TouchLastActive(ctx context.Context, userID int64) error
}

type service struct {
	repo         Repository
	maxInterests int
}

// NewService creates the profile service
func NewService(repo Repository, opts Options) Service {
	if opts.MaxInterests <= 0 {
		opts.MaxInterests = defaultMaxInterests
	}
	return &service{repo: repo, maxInterests: opts.MaxInterests}
}

func (s *service) UpsertProfile(ctx context.Context, userID int64, req *UpsertProfileRequest) (*Profile, error) {
	// Normalize at the boundary so the engine only ever sees known values
	gender, ok := match.ParseGender(req.Gender)
	if !ok {
		return nil, ErrInvalidGender
	}

	if len(req.Interests) > s.maxInterests {
		return nil, fmt.Errorf("%w: %d exceeds cap of %d", ErrTooManyInterests, len(req.Interests), s.maxInterests)
	}

	profile := &Profile{
		UserID:               userID,
		DisplayName:          req.DisplayName,
		Bio:                  req.Bio,
		Gender:               gender,
		Interests:            req.Interests,
		RelationshipIntent:   req.RelationshipIntent,
		SocialBoundary:       req.SocialBoundary,
		AppearancePreference: req.AppearancePreference,
	}

	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *service) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

func (s *service) TouchLastActive(ctx context.Context, userID int64) error {
	return s.repo.TouchLastActive(ctx, userID)
}
