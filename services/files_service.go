package services

import (
	"context"
	"path"
	"regexp"

	awspkg "agrodoc/pkg/aws"

	"go.uber.org/zap"
)

var isoDateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// FilesService lists uploaded CSV files grouped by date.
type FilesService interface {
	ListCSV(ctx context.Context, dir string) (map[string][]string, *ServiceError)
}

type filesServiceImpl struct {
	storage awspkg.BlobStorage
	logger  *zap.Logger
}

// NewFilesService creates a new FilesService.
func NewFilesService(storage awspkg.BlobStorage, logger *zap.Logger) FilesService {
	return &filesServiceImpl{storage: storage, logger: logger}
}

// ListCSV maps date keys to the filenames stored under csv/<dir>/. Filenames
// carrying an ISO date are bucketed by it; anything else falls back to the
// object's LastModified day.
func (s *filesServiceImpl) ListCSV(ctx context.Context, dir string) (map[string][]string, *ServiceError) {
	if !allowedUploadDirs[dir] {
		return nil, &ServiceError{StatusCode: 400, Message: "dir must be 'caminhoes' or 'navios'"}
	}

	prefix := UploadPrefix + "/" + dir + "/"
	objects, err := s.storage.ListByPrefix(ctx, prefix)
	if err != nil {
		s.logger.Error("Failed to list stored files",
			zap.String("prefix", prefix),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list stored files"}
	}

	byDate := make(map[string][]string)
	for _, obj := range objects {
		name := path.Base(obj.Key)
		if name == "" || name == "." || name == "/" {
			continue
		}

		key := isoDateRe.FindString(name)
		if key == "" {
			key = obj.LastModified.Format("2006-01-02")
		}
		byDate[key] = append(byDate[key], name)
	}

	return byDate, nil
}
