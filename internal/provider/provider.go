// Package provider supplies daily bar series from market data sources.
// Providers own the buffer sizing: every fetch starts enough business days
// before the reported window that the rolling volume baseline is fully
// populated on the first reported day.
package provider

import (
	"context"
	"time"

	"breakout-scanner/internal/models"
	"breakout-scanner/pkg/utils"
)

// FetchRequest describes one buffered daily-bar fetch.
type FetchRequest struct {
	Ticker        string
	Start         time.Time // first reported day
	End           time.Time // last reported day, inclusive
	RollingWindow int
}

// BufferedStart returns the date the fetch actually begins: rolling_window+1
// business days before the reported start, so the baseline and daily return
// are both defined on the first reported day.
func (r FetchRequest) BufferedStart() time.Time {
	return utils.SubtractBusinessDays(r.Start, r.RollingWindow+1)
}

// Provider fetches daily bars. Implementations report "no data" as an empty
// series, not as an error; transport failures are errors.
type Provider interface {
	Name() string
	DailyBars(ctx context.Context, req FetchRequest) (models.BarSeries, error)
}
