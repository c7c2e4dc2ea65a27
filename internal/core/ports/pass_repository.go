package ports

import (
	"context"
	"io"

	"github.com/theyard/fanpass/internal/core/domain"
)

// PassRepository defines persistence operations for passes. The store is
// last-write-wins per AnonID key; Save on an existing key overwrites.
type PassRepository interface {
	Save(ctx context.Context, p *domain.Pass) error
	// FindByAnonID returns domain.ErrPassNotFound when the device has no pass.
	FindByAnonID(ctx context.Context, anonID string) (*domain.Pass, error)
	// List returns every stored pass. Ordering is left to the service layer.
	List(ctx context.Context) ([]*domain.Pass, error)
}

// CMSRepository defines persistence for the singleton CMS document.
type CMSRepository interface {
	// Load returns domain.ErrCMSNotFound before the document is first seeded.
	Load(ctx context.Context) (*domain.CMSDocument, error)
	Store(ctx context.Context, doc *domain.CMSDocument) error
}

// FileStore persists uploaded files and returns their public path.
type FileStore interface {
	Save(name string, r io.Reader) (string, error)
}
