// Package repository provides in-memory storage for pricing configurations.
package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

// DefaultHistorySize is the number of configuration versions kept when no
// limit is given.
const DefaultHistorySize = 50

// ErrEmptyCreator is returned when a configuration is saved without an author.
var ErrEmptyCreator = errors.New("created_by is required")

// PricingConfigRepository keeps the active pricing configuration and a bounded
// history of previous versions.
//
// Readers load the active version through an atomic pointer and never block on
// writers; a reader sees either the old or the new configuration, never a mix.
type PricingConfigRepository struct {
	active atomic.Pointer[model.ConfigVersion]

	mu         sync.Mutex
	history    []model.ConfigVersion
	maxHistory int
	now        func() time.Time
}

// NewPricingConfigRepository creates a repository whose version 1 is initial.
func NewPricingConfigRepository(initial model.PricingConfig, maxHistory int) *PricingConfigRepository {
	if maxHistory <= 0 {
		maxHistory = DefaultHistorySize
	}
	r := &PricingConfigRepository{
		maxHistory: maxHistory,
		now:        time.Now,
	}
	first := model.ConfigVersion{
		Version:   1,
		Config:    initial.Clone(),
		Active:    true,
		CreatedAt: r.now().UTC(),
		CreatedBy: "system",
	}
	r.history = []model.ConfigVersion{first}
	r.active.Store(&first)
	return r
}

// GetActive returns the active configuration version. The returned value is
// a copy and may be modified freely.
func (r *PricingConfigRepository) GetActive(_ context.Context) model.ConfigVersion {
	v := *r.active.Load()
	v.Config = v.Config.Clone()
	return v
}

// Save stores cfg as a new active version. The configuration must already be
// validated.
func (r *PricingConfigRepository) Save(_ context.Context, cfg model.PricingConfig, createdBy string) (model.ConfigVersion, error) {
	if createdBy == "" {
		return model.ConfigVersion{}, ErrEmptyCreator
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.active.Load()
	next := model.ConfigVersion{
		Version:   current.Version + 1,
		Config:    cfg.Clone(),
		Active:    true,
		CreatedAt: r.now().UTC(),
		CreatedBy: createdBy,
	}

	r.history[len(r.history)-1].Active = false
	r.history = append(r.history, next)
	if len(r.history) > r.maxHistory {
		r.history = append([]model.ConfigVersion(nil), r.history[len(r.history)-r.maxHistory:]...)
	}

	stored := next
	r.active.Store(&stored)

	next.Config = next.Config.Clone()
	return next, nil
}

// List returns up to limit versions, newest first. A limit <= 0 returns the
// whole retained history.
func (r *PricingConfigRepository) List(_ context.Context, limit int) []model.ConfigVersion {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.history)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]model.ConfigVersion, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		v := r.history[i]
		v.Config = v.Config.Clone()
		out = append(out, v)
	}
	return out
}
