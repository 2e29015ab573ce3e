package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"breakout-scanner/internal/models"
)

type stubProvider struct {
	bars models.BarSeries
	err  error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) DailyBars(ctx context.Context, req FetchRequest) (models.BarSeries, error) {
	return s.bars, s.err
}

type stubStore struct {
	bars    models.BarSeries
	getErr  error
	saveErr error
	saved   models.BarSeries
}

func (s *stubStore) GetBars(ctx context.Context, ticker string, from, to time.Time) (models.BarSeries, error) {
	return s.bars, s.getErr
}

func (s *stubStore) SaveBars(ctx context.Context, ticker string, bars models.BarSeries) error {
	s.saved = bars
	return s.saveErr
}

func (s *stubStore) Close() error { return nil }

func cacheTestRequest() FetchRequest {
	return FetchRequest{
		Ticker:        "NVDA",
		Start:         time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
		RollingWindow: 2,
	}
}

func TestCachedProviderSavesFetchedBars(t *testing.T) {
	fetched := models.BarSeries{{Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Close: 100, Volume: 1000}}
	cache := &stubStore{}
	p := NewCachedProvider(&stubProvider{bars: fetched}, cache, zerolog.Nop())

	got, err := p.DailyBars(context.Background(), cacheTestRequest())
	if err != nil {
		t.Fatalf("DailyBars: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("bars = %d, want 1", len(got))
	}
	if len(cache.saved) != 1 {
		t.Errorf("fetched bars were not cached")
	}
}

func TestCachedProviderServesCacheOnUpstreamFailure(t *testing.T) {
	cached := models.BarSeries{{Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Close: 100, Volume: 1000}}
	cache := &stubStore{bars: cached}
	p := NewCachedProvider(&stubProvider{err: errors.New("connection refused")}, cache, zerolog.Nop())

	got, err := p.DailyBars(context.Background(), cacheTestRequest())
	if err != nil {
		t.Fatalf("DailyBars: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("bars = %d, want cached bar", len(got))
	}
}

func TestCachedProviderPropagatesErrorOnEmptyCache(t *testing.T) {
	wantErr := errors.New("connection refused")
	p := NewCachedProvider(&stubProvider{err: wantErr}, &stubStore{}, zerolog.Nop())

	_, err := p.DailyBars(context.Background(), cacheTestRequest())
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want upstream error", err)
	}
}

func TestCachedProviderIgnoresCacheWriteFailure(t *testing.T) {
	fetched := models.BarSeries{{Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Close: 100, Volume: 1000}}
	cache := &stubStore{saveErr: errors.New("disk full")}
	p := NewCachedProvider(&stubProvider{bars: fetched}, cache, zerolog.Nop())

	got, err := p.DailyBars(context.Background(), cacheTestRequest())
	if err != nil {
		t.Fatalf("DailyBars: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("bars = %d, want 1", len(got))
	}
}
