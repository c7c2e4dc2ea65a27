package ports

import (
	"context"
	"io"

	"github.com/theyard/fanpass/internal/core/domain"
)

// CreatePassInput carries all data needed to create (or regenerate) a pass.
type CreatePassInput struct {
	Name   string
	Email  string
	Phone  string
	Gender string
	// AnonID is the device's anonymous id resolved from its cookie.
	AnonID string
	// Photo is the raw bytes of an optional user photo. Decode failures are
	// tolerated downstream; the renderer substitutes a placeholder scene.
	Photo []byte
	// ExportedPNG, when non-nil, is a client-rendered card stored verbatim
	// instead of rendering server-side.
	ExportedPNG []byte
	IP          string
	UserAgent   string
}

// PassView is the device-facing read model: the pass (nil when none exists)
// plus the resolved flow state.
type PassView struct {
	Pass  *domain.Pass
	State domain.FlowState
}

// PassService defines the pass use-cases.
type PassService interface {
	Create(ctx context.Context, in CreatePassInput) (*domain.Pass, error)
	Get(ctx context.Context, anonID string) (*PassView, error)
	// List returns all passes newest-first for the admin panel.
	List(ctx context.Context) ([]*domain.Pass, error)
}

// CMSService defines the admin content use-cases.
type CMSService interface {
	Get(ctx context.Context) (*domain.CMSDocument, error)
	Update(ctx context.Context, doc *domain.CMSDocument) (*domain.CMSDocument, error)
	Reset(ctx context.Context) (*domain.CMSDocument, error)
}

// AuthService validates the admin password and mints session tokens.
type AuthService interface {
	Login(password string) (string, error)
}

// UploadService validates and stores an uploaded file, returning its
// public path.
type UploadService interface {
	Store(ctx context.Context, originalName string, size int64, r io.Reader) (string, error)
}
