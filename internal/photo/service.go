// internal/photo/service.go
// Upload, analysis and re-scoring of user photos.
// Analysis failures never block an upload: the photo keeps fallback scores
// and the batch re-scoring job retries it later.

package photo

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/heartlinkhq/heartlink-backend/internal/analysis"
	"github.com/heartlinkhq/heartlink-backend/internal/match"
)

const (
	defaultMaxPhotos  = 6
	rescoreBatchLimit = 30
	photoFolder       = "photos"
)

// ErrPhotoLimitReached is returned when a user already has the maximum
// number of photos
var ErrPhotoLimitReached = fmt.Errorf("photo limit reached")

// Options configures the photo service
type Options struct {
	MaxPhotosPerUser int
	// RemoteStorage selects URL-based analysis (S3) over local file paths
	RemoteStorage bool
}

// Service defines photo operations
type Service interface {
	Upload(ctx context.Context, userID int64, file multipart.File, header *multipart.FileHeader) (*Photo, error)
	ListPhotos(ctx context.Context, userID int64) ([]*Photo, error)
	SetPrimary(ctx context.Context, userID int64, photoID string) error
	Reanalyze(ctx context.Context, userID int64, photoID string) (*Photo, error)
	RescoreDefaults(ctx context.Context) (int, error)
	Delete(ctx context.Context, userID int64, photoID string) error
}

type service struct {
	repo     Repository
	uploader Uploader
	provider analysis.Provider
	batch    *analysis.BatchScorer
	opts     Options
}

// NewService creates the photo service
func NewService(repo Repository, uploader Uploader, provider analysis.Provider, opts Options) Service {
	if opts.MaxPhotosPerUser <= 0 {
		opts.MaxPhotosPerUser = defaultMaxPhotos
	}
	return &service{
		repo:     repo,
		uploader: uploader,
		provider: provider,
		batch:    analysis.NewBatchScorer(provider, 0, 0),
		opts:     opts,
	}
}

func (s *service) Upload(ctx context.Context, userID int64, file multipart.File, header *multipart.FileHeader) (*Photo, error) {
	count, err := s.repo.CountUserPhotos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}
	if count >= s.opts.MaxPhotosPerUser {
		return nil, ErrPhotoLimitReached
	}

	url, storagePath, err := s.uploader.UploadFile(ctx, file, header, photoFolder)
	if err != nil {
		return nil, err
	}

	photo := &Photo{
		ID:          uuid.New().String(),
		UserID:      userID,
		URL:         url,
		StoragePath: storagePath,
		IsPrimary:   count == 0, // first photo becomes primary
	}
	applyAttributes(photo, s.analyze(ctx, photo))

	if err := s.repo.CreatePhoto(ctx, photo); err != nil {
		// Best effort: don't leave an orphaned file behind
		if delErr := s.uploader.DeleteFile(ctx, storagePath); delErr != nil {
			log.Printf("photo: failed to remove orphaned file %s: %v", storagePath, delErr)
		}
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	return photo, nil
}

func (s *service) ListPhotos(ctx context.Context, userID int64) ([]*Photo, error) {
	return s.repo.GetUserPhotos(ctx, userID)
}

func (s *service) SetPrimary(ctx context.Context, userID int64, photoID string) error {
	return s.repo.SetPrimary(ctx, userID, photoID)
}

func (s *service) Reanalyze(ctx context.Context, userID int64, photoID string) (*Photo, error) {
	photo, err := s.repo.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo.UserID != userID {
		return nil, ErrPhotoNotFound
	}

	applyAttributes(photo, s.analyze(ctx, photo))
	if err := s.repo.UpdateAttributes(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// RescoreDefaults re-runs analysis for photos still carrying fallback
// scores, respecting the provider's concurrency window. Returns how many
// photos gained real scores.
func (s *service) RescoreDefaults(ctx context.Context) (int, error) {
	photos, err := s.repo.GetPhotosWithDefaultScores(ctx, rescoreBatchLimit)
	if err != nil {
		return 0, fmt.Errorf("failed to list unscored photos: %w", err)
	}
	if len(photos) == 0 {
		return 0, nil
	}

	requests := make([]analysis.AnalyzeRequest, len(photos))
	for i, p := range photos {
		requests[i] = s.analyzeRequest(p)
	}

	results := s.batch.AnalyzeAll(ctx, requests)

	updated := 0
	for i, res := range results {
		if res == nil || !res.FaceDetected {
			continue
		}
		applyAttributes(photos[i], match.NormalizeAttributes(res))
		if err := s.repo.UpdateAttributes(ctx, photos[i]); err != nil {
			log.Printf("photo: failed to update scores for %s: %v", photos[i].ID, err)
			continue
		}
		updated++
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, userID int64, photoID string) error {
	photo, err := s.repo.DeletePhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}
	if err := s.uploader.DeleteFile(ctx, photo.StoragePath); err != nil {
		log.Printf("photo: failed to delete file %s: %v", photo.StoragePath, err)
	}
	return nil
}

// analyze runs the provider and normalizes the outcome; any failure yields
// the fallback attribute set
func (s *service) analyze(ctx context.Context, photo *Photo) match.PhotoAttributeSet {
	res, err := s.provider.Analyze(ctx, s.analyzeRequest(photo))
	if err != nil {
		log.Printf("photo: analysis failed for %s: %v", photo.ID, err)
		return match.DefaultAttributes()
	}
	return match.NormalizeAttributes(res)
}

func (s *service) analyzeRequest(photo *Photo) analysis.AnalyzeRequest {
	if s.opts.RemoteStorage {
		return analysis.AnalyzeRequest{ImageURL: photo.URL}
	}
	return analysis.AnalyzeRequest{ImagePath: photo.StoragePath}
}

func applyAttributes(photo *Photo, attrs match.PhotoAttributeSet) {
	photo.StyleScore = attrs.Style
	photo.TasteScore = attrs.Taste
	photo.CoordinationScore = attrs.Coordination
	photo.QualityScore = attrs.Quality
	photo.BeautyScore = attrs.Beauty
	photo.FaceDetected = attrs.FaceDetected
}
