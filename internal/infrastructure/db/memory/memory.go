// Package memory provides constructor-injected in-memory repositories, used
// when no Redis backend is reachable and in tests. Records are kept as JSON
// blobs so the read/write semantics mirror the Redis implementation exactly
// (callers always get their own copy, last write wins per key).
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/theyard/fanpass/internal/core/domain"
)

// PassRepository is the in-memory pass store.
type PassRepository struct {
	mu     sync.RWMutex
	passes map[string][]byte
}

func NewPassRepository() *PassRepository {
	return &PassRepository{passes: make(map[string][]byte)}
}

func (r *PassRepository) Save(_ context.Context, p *domain.Pass) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal pass: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes[p.AnonID] = b
	return nil
}

func (r *PassRepository) FindByAnonID(_ context.Context, anonID string) (*domain.Pass, error) {
	r.mu.RLock()
	b, ok := r.passes[anonID]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrPassNotFound
	}

	var p domain.Pass
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal pass: %w", err)
	}
	return &p, nil
}

func (r *PassRepository) List(_ context.Context) ([]*domain.Pass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	passes := make([]*domain.Pass, 0, len(r.passes))
	for id, b := range r.passes {
		var p domain.Pass
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, fmt.Errorf("unmarshal pass %s: %w", id, err)
		}
		passes = append(passes, &p)
	}
	return passes, nil
}

// CMSRepository is the in-memory store for the singleton CMS document.
type CMSRepository struct {
	mu  sync.RWMutex
	doc []byte
}

func NewCMSRepository() *CMSRepository {
	return &CMSRepository{}
}

func (r *CMSRepository) Load(_ context.Context) (*domain.CMSDocument, error) {
	r.mu.RLock()
	b := r.doc
	r.mu.RUnlock()
	if b == nil {
		return nil, domain.ErrCMSNotFound
	}

	var doc domain.CMSDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal cms: %w", err)
	}
	return &doc, nil
}

func (r *CMSRepository) Store(_ context.Context, doc *domain.CMSDocument) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal cms: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = b
	return nil
}
