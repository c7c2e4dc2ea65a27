package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/theyard/fanpass/internal/core/domain"
)

// Key layout:
//
//	pass:<anon_id>  JSON pass record
//	passes:index    set of anon ids holding a pass
//	cms:document    JSON CMS document
const (
	passKeyPrefix = "pass:"
	passIndexKey  = "passes:index"
	cmsKey        = "cms:document"
)

// PassRepository persists passes in Redis. The index set backs the admin
// listing; entries whose record has disappeared are skipped on read, so the
// listing is always complete and consistent with the records.
type PassRepository struct {
	client *redis.Client
}

func NewPassRepository(client *redis.Client) *PassRepository {
	return &PassRepository{client: client}
}

// Save writes the record and its index entry. Overwrites any existing pass
// for the same anon id (last write wins).
func (r *PassRepository) Save(ctx context.Context, p *domain.Pass) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal pass: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, passKeyPrefix+p.AnonID, b, 0)
	pipe.SAdd(ctx, passIndexKey, p.AnonID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save pass: %w", err)
	}
	return nil
}

// FindByAnonID retrieves the pass stored for a device.
func (r *PassRepository) FindByAnonID(ctx context.Context, anonID string) (*domain.Pass, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b, err := r.client.Get(ctx, passKeyPrefix+anonID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPassNotFound
		}
		return nil, fmt.Errorf("get pass: %w", err)
	}

	var p domain.Pass
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal pass: %w", err)
	}
	return &p, nil
}

// List returns all stored passes by walking the index set.
func (r *PassRepository) List(ctx context.Context) ([]*domain.Pass, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ids, err := r.client.SMembers(ctx, passIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list passes: %w", err)
	}

	passes := make([]*domain.Pass, 0, len(ids))
	for _, id := range ids {
		b, err := r.client.Get(ctx, passKeyPrefix+id).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// stale index entry
				continue
			}
			return nil, fmt.Errorf("list passes: %w", err)
		}
		var p domain.Pass
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, fmt.Errorf("unmarshal pass %s: %w", id, err)
		}
		passes = append(passes, &p)
	}
	return passes, nil
}
