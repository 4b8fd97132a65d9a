// internal/photo/upload.go

package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for uploads that are not images
var ErrUnsupportedType = errors.New("unsupported file type")

// Uploader stores photo files and returns their public URL plus the path
// the analysis pipeline reads them back from
type Uploader interface {
	UploadFile(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (url, storagePath string, err error)
	DeleteFile(ctx context.Context, storagePath string) error
}

// allowedImageType restricts uploads to formats the analysis API accepts
func allowedImageType(header *multipart.FileHeader) bool {
	contentType := header.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png":
		return true
	}
	// Fall back to the extension when the client omits a content type
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".jpg", ".jpeg", ".png":
		return contentType == ""
	}
	return false
}

// LocalUploader implements local file storage
type LocalUploader struct {
	uploadDir string
	baseURL   string
}

// NewLocalUploader creates a new local upload service
func NewLocalUploader(uploadDir, baseURL string) Uploader {
	return &LocalUploader{
		uploadDir: uploadDir,
		baseURL:   baseURL,
	}
}

// UploadFile uploads a file to local storage
func (s *LocalUploader) UploadFile(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (string, string, error) {
	if !allowedImageType(header) {
		return "", "", ErrUnsupportedType
	}

	fullPath := filepath.Join(s.uploadDir, folder)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	// Unique filename so concurrent uploads never collide
	ext := filepath.Ext(header.Filename)
	filename := fmt.Sprintf("%s_%d%s", uuid.New().String(), time.Now().Unix(), ext)
	filePath := filepath.Join(fullPath, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.baseURL, folder, filename)
	return url, filePath, nil
}

// DeleteFile deletes a file from local storage
func (s *LocalUploader) DeleteFile(ctx context.Context, storagePath string) error {
	if err := os.Remove(storagePath); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete file: %w", err)
		}
	}
	return nil
}

// S3Uploader implements AWS S3 file storage
type S3Uploader struct {
	s3Client *s3.S3
	bucket   string
	region   string
	baseURL  string
}

// NewS3Uploader creates a new S3 upload service
func NewS3Uploader(bucket, region string) (Uploader, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	s3Client := s3.New(sess)
	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)

	return &S3Uploader{
		s3Client: s3Client,
		bucket:   bucket,
		region:   region,
		baseURL:  baseURL,
	}, nil
}

// UploadFile uploads a file to S3. The storage path is the object key; the
// analysis pipeline reaches S3 photos through their public URL instead.
func (s *S3Uploader) UploadFile(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (string, string, error) {
	if !allowedImageType(header) {
		return "", "", ErrUnsupportedType
	}

	ext := filepath.Ext(header.Filename)
	key := fmt.Sprintf("%s/%s_%d%s", folder, uuid.New().String(), time.Now().Unix(), ext)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileBytes),
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := fmt.Sprintf("%s/%s", s.baseURL, key)
	return url, key, nil
}

// DeleteFile deletes a file from S3
func (s *S3Uploader) DeleteFile(ctx context.Context, storagePath string) error {
	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storagePath),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
