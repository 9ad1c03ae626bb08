package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/ecollege-api/pkg/cache"
	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
)

// GenerationKey holds the counter that every write increments. View keys
// embed its value, so a view rendered before a write can only land under a
// retired generation.
const GenerationKey = cache.KeyPrefix + "generation"

const viewPattern = cache.KeyPrefix + "view:*"

// CacheRepository abstracts persistence for cached payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
	Counter(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// CacheService is a read-through cache for entity views. A nil or disabled
// service turns every call into a no-op so callers never branch on it.
type CacheService struct {
	repo       CacheRepository
	metrics    *MetricsService
	defaultTTL time.Duration
	logger     *zap.Logger
	enabled    bool
}

// NewCacheService constructs a cache service.
func NewCacheService(repo CacheRepository, metrics *MetricsService, defaultTTL time.Duration, logger *zap.Logger, enabled bool) *CacheService {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{repo: repo, metrics: metrics, defaultTTL: defaultTTL, logger: logger, enabled: enabled}
}

// Enabled indicates whether caching is active.
func (s *CacheService) Enabled() bool {
	return s != nil && s.enabled && s.repo != nil
}

// Key resolves name against the current generation and must be called
// before the store is read. An empty key disables Get and Set.
func (s *CacheService) Key(ctx context.Context, name string) string {
	if !s.Enabled() {
		return ""
	}
	gen, err := s.repo.Counter(ctx, GenerationKey)
	if err != nil {
		s.logger.Warn("cache generation unavailable", zap.Error(err))
		return ""
	}
	return fmt.Sprintf("%sview:%d:%s", cache.KeyPrefix, gen, name)
}

// Get reports whether key was found and decoded into dest. Backend failures
// count as misses.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) bool {
	if !s.Enabled() || key == "" {
		return false
	}
	start := time.Now()
	err := s.repo.Get(ctx, key, dest)
	s.metrics.RecordCacheOperation(err == nil, time.Since(start))
	if err != nil && !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	}
	return err == nil
}

// Set stores value under key with the default TTL.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) {
	if !s.Enabled() || key == "" {
		return
	}
	start := time.Now()
	err := s.repo.Set(ctx, key, value, s.defaultTTL)
	s.metrics.ObserveCacheWrite(time.Since(start))
	if err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateAll retires the current generation and drops the views stored
// so far. Views embed related entities, so any write can stale any key.
func (s *CacheService) InvalidateAll(ctx context.Context) {
	if !s.Enabled() {
		return
	}
	if _, err := s.repo.Incr(ctx, GenerationKey); err != nil {
		s.logger.Warn("cache generation bump failed", zap.Error(err))
	} else {
		s.metrics.RecordInvalidation()
	}
	if err := s.repo.DeleteByPattern(ctx, viewPattern); err != nil {
		s.logger.Warn("cache invalidate failed", zap.String("pattern", viewPattern), zap.Error(err))
	}
}
