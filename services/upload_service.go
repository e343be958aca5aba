package services

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"agrodoc/models"
	awspkg "agrodoc/pkg/aws"

	"go.uber.org/zap"
)

// UploadPrefix is the fixed root every uploaded CSV lands under.
const UploadPrefix = "csv"

var allowedUploadDirs = map[string]bool{
	"caminhoes": true,
	"navios":    true,
}

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	invalidCharRe = regexp.MustCompile(`[^A-Za-z0-9._-]`)
	dotRunRe      = regexp.MustCompile(`\.{2,}`)
)

// SanitizeFileName collapses whitespace to underscores, strips every
// character outside [A-Za-z0-9._-] and collapses runs of dots. The result may
// be empty; callers must reject that.
func SanitizeFileName(name string) string {
	name = whitespaceRe.ReplaceAllString(name, "_")
	name = invalidCharRe.ReplaceAllString(name, "")
	name = dotRunRe.ReplaceAllString(name, ".")
	return name
}

// UploadService accepts one CSV file plus a destination category and persists
// it at a deterministic path, overwriting any prior object there.
type UploadService interface {
	Upload(ctx context.Context, dir, presentedKey string, file *multipart.FileHeader) *models.UploadOutcome
}

type uploadServiceImpl struct {
	storage   awspkg.BlobStorage
	sns       awspkg.SNSPublisher
	topicARN  string
	uploadKey string
	logger    *zap.Logger
}

// NewUploadService creates a new UploadService. uploadKey is the shared
// secret callers must present; empty means the server is misconfigured.
func NewUploadService(storage awspkg.BlobStorage, sns awspkg.SNSPublisher, topicARN, uploadKey string, logger *zap.Logger) UploadService {
	return &uploadServiceImpl{
		storage:   storage,
		sns:       sns,
		topicARN:  topicARN,
		uploadKey: uploadKey,
		logger:    logger,
	}
}

// Upload runs the gate checks in order, short-circuiting on the first
// failure, then writes the file. file may be nil when the request carried no
// file field.
func (s *uploadServiceImpl) Upload(ctx context.Context, dir, presentedKey string, file *multipart.FileHeader) *models.UploadOutcome {
	if s.uploadKey == "" {
		s.logger.Error("Upload key not configured")
		return failure(models.UploadCodeConfigError, "upload key is not configured on the server")
	}

	if presentedKey != s.uploadKey {
		return failure(models.UploadCodeUnauthorized, "missing or invalid upload key")
	}

	if !allowedUploadDirs[dir] {
		return failure(models.UploadCodeInvalidDir, "dir must be 'caminhoes' or 'navios'")
	}

	if file == nil {
		return failure(models.UploadCodeInvalidFile, "a single 'file' field is required")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedCSVExtensions[ext] {
		return failure(models.UploadCodeInvalidExt, "file must be .csv or .txt")
	}

	name := SanitizeFileName(file.Filename)
	if name == "" || strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) {
		return failure(models.UploadCodeInvalidName, "file name is not acceptable")
	}

	if file.Size > MaxCSVSize {
		return failure(models.UploadCodeTooLarge, "file exceeds the 5MB limit")
	}

	src, err := file.Open()
	if err != nil {
		s.logger.Error("Failed to open uploaded file", zap.Error(err))
		return failure(models.UploadCodeUnknownError, "failed to read uploaded file")
	}
	defer src.Close()

	path := UploadPrefix + "/" + dir + "/" + name
	url, err := s.storage.Put(ctx, path, "text/csv", src)
	if err != nil {
		s.logger.Error("Failed to store uploaded file",
			zap.String("path", path),
			zap.Error(err),
		)
		return failure(models.UploadCodeUnknownError, "failed to store file")
	}

	s.logger.Info("CSV uploaded",
		zap.String("path", path),
		zap.String("dir", dir),
		zap.Int64("size", file.Size),
	)

	s.publishUploaded(ctx, dir, path, name, file.Size)

	return &models.UploadOutcome{
		Success:   true,
		Path:      path,
		PublicURL: url,
		FileName:  name,
	}
}

// publishUploaded emits a csv_uploaded SNS event; failures are logged, never
// surfaced.
func (s *uploadServiceImpl) publishUploaded(ctx context.Context, dir, path, name string, size int64) {
	if s.sns == nil || s.topicARN == "" {
		return
	}
	b, err := json.Marshal(models.CSVUploadedEvent{
		EventType: "csv_uploaded",
		Dir:       dir,
		Path:      path,
		FileName:  name,
		SizeBytes: size,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		s.logger.Error("Failed to marshal upload event", zap.Error(err))
		return
	}
	if err := s.sns.Publish(ctx, s.topicARN, b); err != nil {
		s.logger.Error("Failed to publish upload event", zap.Error(err))
	}
}

func failure(code, message string) *models.UploadOutcome {
	return &models.UploadOutcome{Code: code, Message: message}
}
