package provider

import (
	"context"

	"github.com/rs/zerolog"

	"breakout-scanner/internal/models"
	"breakout-scanner/internal/store"
)

// CachedProvider wraps an upstream provider with the local bar cache.
// Successful fetches are upserted into the cache; when the upstream fails,
// the cached range is served instead so a flaky connection does not block a
// scan over previously seen data.
type CachedProvider struct {
	upstream Provider
	cache    store.DataStore
	logger   zerolog.Logger
}

// NewCachedProvider creates a cache-backed provider.
func NewCachedProvider(upstream Provider, cache store.DataStore, logger zerolog.Logger) *CachedProvider {
	return &CachedProvider{
		upstream: upstream,
		cache:    cache,
		logger:   logger,
	}
}

func (p *CachedProvider) Name() string {
	return p.upstream.Name()
}

// DailyBars fetches from upstream, falling back to the cache on failure.
func (p *CachedProvider) DailyBars(ctx context.Context, req FetchRequest) (models.BarSeries, error) {
	bars, err := p.upstream.DailyBars(ctx, req)
	if err != nil {
		cached, cacheErr := p.cache.GetBars(ctx, req.Ticker, req.BufferedStart(), req.End)
		if cacheErr == nil && len(cached) > 0 {
			p.logger.Warn().Err(err).
				Str("ticker", req.Ticker).
				Int("bars", len(cached)).
				Msg("Provider fetch failed, serving cached bars")
			return cached, nil
		}
		return nil, err
	}

	if err := p.cache.SaveBars(ctx, req.Ticker, bars); err != nil {
		// Cache writes are best effort; the fetched series is still good.
		p.logger.Warn().Err(err).Str("ticker", req.Ticker).Msg("Failed to cache bars")
	}

	return bars, nil
}
