package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Malmeu/car-manager-server/internal/model"
	"github.com/Malmeu/car-manager-server/internal/repository"
	"github.com/Malmeu/car-manager-server/internal/storage"
)

var (
	ErrTypeRequired    = errors.New("type is required")
	ErrReaderNil       = errors.New("reader is nil")
	ErrInvalidFilename = errors.New("filename is invalid")
)

// UploadResult is returned after a successful upload. Path is the public
// relative path the file can be fetched from.
type UploadResult struct {
	Path     string         `json:"path"`
	Document model.Document `json:"document"`
}

// UploadService stores uploaded vehicle documents in blob storage under
// documents/{vehicleId}/{type}/{timestampMillis}-{filename}.
type UploadService interface {
	Upload(ctx context.Context, r io.Reader, vehicleID, docType, originalName, contentType string, size int64) (*UploadResult, error)
}

type uploadService struct {
	store storage.Storage
	repo  repository.VehicleRepository
	now   func() time.Time
}

// NewUploadService constructs a new UploadService.
func NewUploadService(store storage.Storage, repo repository.VehicleRepository) UploadService {
	return &uploadService{store: store, repo: repo, now: time.Now}
}

func (s *uploadService) Upload(ctx context.Context, r io.Reader, vehicleID, docType, originalName, contentType string, size int64) (*UploadResult, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	vid := sanitizeSegment(vehicleID)
	if vid == "" {
		return nil, ErrVehicleIDRequired
	}
	dt := sanitizeSegment(docType)
	if dt == "" {
		return nil, ErrTypeRequired
	}
	name := sanitizeSegment(originalName)
	if name == "" {
		return nil, ErrInvalidFilename
	}

	// Millisecond timestamp prefix keeps names unique across sequential
	// uploads of the same file.
	genName := fmt.Sprintf("%d-%s", s.now().UnixMilli(), name)
	key := path.Join("documents", vid, dt, genName)

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := model.Document{
		ID:          uuid.NewString(),
		Path:        "/" + key,
		Filename:    name,
		Type:        dt,
		Size:        info.Size,
		ContentType: contentType,
		UploadedAt:  s.now().UTC(),
	}

	// Uploads do not require a vehicle record to exist; attaching the
	// metadata to the vehicle document is best effort.
	_ = s.repo.AttachDocument(ctx, vehicleID, doc)

	return &UploadResult{Path: doc.Path, Document: doc}, nil
}

// sanitizeSegment reduces caller input to a single safe path segment: any
// directory structure is stripped and characters outside [A-Za-z0-9._-] are
// replaced. Returns "" when nothing safe remains.
func sanitizeSegment(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\\", "/"))
	s = path.Base(s)
	if s == "." || s == ".." || s == "/" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if strings.Trim(out, ".") == "" {
		return ""
	}
	return out
}
