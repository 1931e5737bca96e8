package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/metrics"
	"github.com/hackarena/backend/pkg/redis"
)

// CacheTTL bounds staleness of the public list endpoints. Mutations
// invalidate eagerly, so the TTL only matters for out-of-band edits.
const CacheTTL = 5 * time.Minute

const (
	keyEvents     = "catalog:events"
	keyCategories = "catalog:categories"
	keySponsors   = "catalog:sponsors"
	keySpeakers   = "catalog:speakers"
	keyCriteria   = "catalog:criteria"
)

// Cached decorates a Repository with Redis read-through caching on the list
// methods. Cache failures degrade to the underlying store, never to errors.
type Cached struct {
	inner  Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewCached wraps inner with Redis caching.
func NewCached(inner Repository, rdb *redis.Client, logger *zap.Logger) *Cached {
	return &Cached{inner: inner, rdb: rdb, logger: logger}
}

func cachedList[T any](ctx context.Context, c *Cached, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var list []T
	hit, err := c.rdb.GetJSON(ctx, key, &list)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		metrics.CacheHits.Inc()
		return list, nil
	}
	metrics.CacheMisses.Inc()

	list, err = load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.rdb.SetJSON(ctx, key, list, CacheTTL); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return list, nil
}

func (c *Cached) invalidate(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

// Events

func (c *Cached) ListEvents(ctx context.Context) ([]models.Event, error) {
	return cachedList(ctx, c, keyEvents, c.inner.ListEvents)
}

func (c *Cached) CreateEvent(ctx context.Context, e *models.Event) error {
	if err := c.inner.CreateEvent(ctx, e); err != nil {
		return err
	}
	c.invalidate(ctx, keyEvents)
	return nil
}

func (c *Cached) UpdateEvent(ctx context.Context, e *models.Event) error {
	if err := c.inner.UpdateEvent(ctx, e); err != nil {
		return err
	}
	c.invalidate(ctx, keyEvents)
	return nil
}

func (c *Cached) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.DeleteEvent(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, keyEvents)
	return nil
}

// Categories

func (c *Cached) ListCategories(ctx context.Context) ([]models.Category, error) {
	return cachedList(ctx, c, keyCategories, c.inner.ListCategories)
}

func (c *Cached) CreateCategory(ctx context.Context, cat *models.Category) error {
	if err := c.inner.CreateCategory(ctx, cat); err != nil {
		return err
	}
	c.invalidate(ctx, keyCategories)
	return nil
}

func (c *Cached) UpdateCategory(ctx context.Context, cat *models.Category) error {
	if err := c.inner.UpdateCategory(ctx, cat); err != nil {
		return err
	}
	c.invalidate(ctx, keyCategories)
	return nil
}

func (c *Cached) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.DeleteCategory(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, keyCategories)
	return nil
}

// Sponsors

func (c *Cached) ListSponsors(ctx context.Context) ([]models.Sponsor, error) {
	return cachedList(ctx, c, keySponsors, c.inner.ListSponsors)
}

func (c *Cached) CreateSponsor(ctx context.Context, sp *models.Sponsor) error {
	if err := c.inner.CreateSponsor(ctx, sp); err != nil {
		return err
	}
	c.invalidate(ctx, keySponsors)
	return nil
}

func (c *Cached) UpdateSponsor(ctx context.Context, sp *models.Sponsor) error {
	if err := c.inner.UpdateSponsor(ctx, sp); err != nil {
		return err
	}
	c.invalidate(ctx, keySponsors)
	return nil
}

func (c *Cached) DeleteSponsor(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.DeleteSponsor(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, keySponsors)
	return nil
}

// Speakers

func (c *Cached) ListSpeakers(ctx context.Context) ([]models.Speaker, error) {
	return cachedList(ctx, c, keySpeakers, c.inner.ListSpeakers)
}

func (c *Cached) CreateSpeaker(ctx context.Context, sp *models.Speaker) error {
	if err := c.inner.CreateSpeaker(ctx, sp); err != nil {
		return err
	}
	c.invalidate(ctx, keySpeakers)
	return nil
}

func (c *Cached) UpdateSpeaker(ctx context.Context, sp *models.Speaker) error {
	if err := c.inner.UpdateSpeaker(ctx, sp); err != nil {
		return err
	}
	c.invalidate(ctx, keySpeakers)
	return nil
}

func (c *Cached) DeleteSpeaker(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.DeleteSpeaker(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, keySpeakers)
	return nil
}

// Scoring criteria

func (c *Cached) ListCriteria(ctx context.Context) ([]models.ScoringCriterion, error) {
	return cachedList(ctx, c, keyCriteria, c.inner.ListCriteria)
}

func (c *Cached) CreateCriterion(ctx context.Context, cr *models.ScoringCriterion) error {
	if err := c.inner.CreateCriterion(ctx, cr); err != nil {
		return err
	}
	c.invalidate(ctx, keyCriteria)
	return nil
}

func (c *Cached) UpdateCriterion(ctx context.Context, cr *models.ScoringCriterion) error {
	if err := c.inner.UpdateCriterion(ctx, cr); err != nil {
		return err
	}
	c.invalidate(ctx, keyCriteria)
	return nil
}

func (c *Cached) DeleteCriterion(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.DeleteCriterion(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, keyCriteria)
	return nil
}
