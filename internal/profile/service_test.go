package profile

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/heartlinkhq/heartlink-backend/internal/match"
)

type fakeRepo struct {
	profiles map[int64]*Profile
}

func (f *fakeRepo) UpsertProfile(ctx context.Context, profile *Profile) error {
	now := time.Now()
	profile.LastActiveAt, profile.CreatedAt, profile.UpdatedAt = now, now, now
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeRepo) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeRepo) TouchLastActive(ctx context.Context, userID int64) error {
	if p, ok := f.profiles[userID]; ok {
		p.LastActiveAt = time.Now()
	}
	return nil
}

func TestUpsertProfileNormalizesGender(t *testing.T) {
	repo := &fakeRepo{profiles: make(map[int64]*Profile)}
	svc := NewService(repo, Options{})

	profile, err := svc.UpsertProfile(context.Background(), 1, &UpsertProfileRequest{
		DisplayName: "Ada",
		Gender:      "female",
		Interests:   []string{"reading"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if profile.Gender != match.GenderFemale {
		t.Errorf("Gender = %q, want %q", profile.Gender, match.GenderFemale)
	}
}

func TestUpsertProfileRejectsUnknownGender(t *testing.T) {
	repo := &fakeRepo{profiles: make(map[int64]*Profile)}
	svc := NewService(repo, Options{})

	_, err := svc.UpsertProfile(context.Background(), 1, &UpsertProfileRequest{
		DisplayName: "X",
		Gender:      "other",
	})
	if err != ErrInvalidGender {
		t.Errorf("expected ErrInvalidGender, got %v", err)
	}
}

func TestUpsertProfileEnforcesInterestsCap(t *testing.T) {
	repo := &fakeRepo{profiles: make(map[int64]*Profile)}
	svc := NewService(repo, Options{MaxInterests: 2})

	_, err := svc.UpsertProfile(context.Background(), 1, &UpsertProfileRequest{
		DisplayName: "Ada",
		Gender:      "female",
		Interests:   []string{"reading", "hiking", "chess"},
	})
	if !errors.Is(err, ErrTooManyInterests) {
		t.Errorf("expected ErrTooManyInterests, got %v", err)
	}

	if _, err := svc.UpsertProfile(context.Background(), 1, &UpsertProfileRequest{
		DisplayName: "Ada",
		Gender:      "female",
		Interests:   []string{"reading", "hiking"},
	}); err != nil {
		t.Errorf("expected interests at the cap to pass, got %v", err)
	}
}

func TestUpsertProfileDefaultInterestsCap(t *testing.T) {
	repo := &fakeRepo{profiles: make(map[int64]*Profile)}
	svc := NewService(repo, Options{})

	interests := make([]string, defaultMaxInterests+1)
	for i := range interests {
		interests[i] = fmt.Sprintf("interest-%d", i)
	}

	_, err := svc.UpsertProfile(context.Background(), 1, &UpsertProfileRequest{
		DisplayName: "Ada",
		Gender:      "female",
		Interests:   interests,
	})
	if !errors.Is(err, ErrTooManyInterests) {
		t.Errorf("expected ErrTooManyInterests at %d interests, got %v", len(interests), err)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	repo := &fakeRepo{profiles: make(map[int64]*Profile)}
	svc := NewService(repo, Options{})

	if _, err := svc.GetProfile(context.Background(), 42); err != ErrProfileNotFound {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}
