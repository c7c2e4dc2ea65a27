package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/theyard/fanpass/internal/core/domain"
)

// CMSRepository persists the singleton CMS document under a fixed key.
type CMSRepository struct {
	client *redis.Client
}

func NewCMSRepository(client *redis.Client) *CMSRepository {
	return &CMSRepository{client: client}
}

func (r *CMSRepository) Load(ctx context.Context) (*domain.CMSDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b, err := r.client.Get(ctx, cmsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCMSNotFound
		}
		return nil, fmt.Errorf("get cms: %w", err)
	}

	var doc domain.CMSDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal cms: %w", err)
	}
	return &doc, nil
}

func (r *CMSRepository) Store(ctx context.Context, doc *domain.CMSDocument) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal cms: %w", err)
	}
	if err := r.client.Set(ctx, cmsKey, b, 0).Err(); err != nil {
		return fmt.Errorf("set cms: %w", err)
	}
	return nil
}
