package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/theyard/fanpass/internal/core/domain"
	"github.com/theyard/fanpass/internal/core/ports"
)

// CMSService owns the singleton marketing-content document.
type CMSService struct {
	repo   ports.CMSRepository
	logger zerolog.Logger
}

func NewCMSService(repo ports.CMSRepository, logger zerolog.Logger) *CMSService {
	return &CMSService{repo: repo, logger: logger}
}

// Get returns the live document, seeding the defaults on first access.
func (s *CMSService) Get(ctx context.Context) (*domain.CMSDocument, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrCMSNotFound) {
			return nil, err
		}
		doc = domain.DefaultCMS()
		doc.UpdatedAt = time.Now().UTC()
		if err := s.repo.Store(ctx, doc); err != nil {
			// The caller still gets the defaults; only persistence lagged.
			s.logger.Warn().Err(err).Msg("failed to seed cms defaults")
		}
		s.logger.Info().Msg("cms document seeded with defaults")
	}
	return doc, nil
}

// Update replaces the document wholesale. The server stamps Version and
// UpdatedAt; there is no field-level merge.
func (s *CMSService) Update(ctx context.Context, doc *domain.CMSDocument) (*domain.CMSDocument, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	doc.Version = current.Version + 1
	doc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Store(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info().Int("version", doc.Version).Msg("cms document updated")
	return doc, nil
}

// Reset restores the default document.
func (s *CMSService) Reset(ctx context.Context) (*domain.CMSDocument, error) {
	doc := domain.DefaultCMS()
	doc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Store(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info().Msg("cms document reset to defaults")
	return doc, nil
}
