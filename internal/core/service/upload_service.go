package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/theyard/fanpass/internal/core/domain"
	"github.com/theyard/fanpass/internal/core/ports"
)

// MaxUploadSize caps admin uploads at 10MB.
const MaxUploadSize = 10 << 20

// allowedUploadTypes maps accepted sniffed content types to the extension
// used for the stored file.
var allowedUploadTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadService validates and stores admin image uploads.
type UploadService struct {
	store  ports.FileStore
	logger zerolog.Logger
}

func NewUploadService(store ports.FileStore, logger zerolog.Logger) *UploadService {
	return &UploadService{store: store, logger: logger}
}

// Store sniffs the content type from the first bytes (the client-declared
// type is not trusted), enforces the size cap, and stores the file under a
// generated name. The returned path is the public URL path.
func (s *UploadService) Store(ctx context.Context, originalName string, size int64, r io.Reader) (string, error) {
	if size > MaxUploadSize {
		return "", domain.ErrUploadTooLarge
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := allowedUploadTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, contentType)
	}

	name := uuid.New().String() + ext
	path, err := s.store.Save(name, io.LimitReader(io.MultiReader(bytes.NewReader(head), r), MaxUploadSize))
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	s.logger.Info().
		Str("file", name).
		Str("content_type", contentType).
		Str("original", filepath.Base(strings.TrimSpace(originalName))).
		Msg("upload stored")

	return path, nil
}
