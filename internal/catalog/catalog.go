package catalog

import (
	"context"
	"log/slog"

	"giftwell/internal/campaign/models"
	"giftwell/internal/platform/metrics"
	dErrors "giftwell/pkg/domain-errors"
)

// Fetcher retrieves the bundle catalog from the external inventory source.
type Fetcher interface {
	FetchBundles(ctx context.Context) ([]models.Bundle, error)
}

// Cache is a read-through cache for the full bundle listing.
type Cache interface {
	Get(ctx context.Context) ([]models.Bundle, bool, error)
	Set(ctx context.Context, bundles []models.Bundle) error
}

// Service serves the gift bundle catalog. Lookups go cache first, then the
// fetcher; a fetch failure degrades to the static fallback catalog so the
// designer never renders an empty gift step.
type Service struct {
	fetcher Fetcher
	cache   Cache
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithCache(cache Cache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(fetcher Fetcher, opts ...Option) *Service {
	s := &Service{fetcher: fetcher}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bundles lists the catalog.
func (s *Service) Bundles(ctx context.Context) ([]models.Bundle, error) {
	if s.cache != nil {
		bundles, ok, err := s.cache.Get(ctx)
		if err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "catalog cache read failed", "error", err)
		}
		if ok {
			s.countCacheHit()
			return bundles, nil
		}
		s.countCacheMiss()
	}

	bundles, err := s.fetcher.FetchBundles(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "bundle fetch failed, serving fallback catalog", "error", err)
		}
		s.countFallback()
		return DefaultBundles(), nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, bundles); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "catalog cache write failed", "error", err)
		}
	}
	return bundles, nil
}

// Bundle resolves a single bundle by id.
func (s *Service) Bundle(ctx context.Context, bundleID string) (models.Bundle, error) {
	bundles, err := s.Bundles(ctx)
	if err != nil {
		return models.Bundle{}, err
	}
	for _, b := range bundles {
		if b.BundleID == bundleID {
			return b, nil
		}
	}
	return models.Bundle{}, dErrors.Newf(dErrors.CodeNotFound, "bundle %q not found", bundleID)
}

func (s *Service) countCacheHit() {
	if s.metrics != nil {
		s.metrics.CatalogCacheHits.Inc()
	}
}

func (s *Service) countCacheMiss() {
	if s.metrics != nil {
		s.metrics.CatalogCacheMisses.Inc()
	}
}

func (s *Service) countFallback() {
	if s.metrics != nil {
		s.metrics.CatalogFallbacks.Inc()
	}
}
