// Package store provides data persistence implementations.
package store

import (
	"context"
	"time"

	"breakout-scanner/internal/models"
)

// DataStore caches daily bars locally so repeated scans over the same range
// do not refetch from the provider, and offline runs remain possible.
type DataStore interface {
	GetBars(ctx context.Context, ticker string, from, to time.Time) (models.BarSeries, error)
	SaveBars(ctx context.Context, ticker string, bars models.BarSeries) error
	Close() error
}
