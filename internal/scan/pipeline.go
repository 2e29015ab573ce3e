package scan

import (
	"time"

	apperrors "breakout-scanner/internal/errors"
	"breakout-scanner/internal/models"
)

// Params configures one breakout analysis run. Ticker and date range are
// owned by the caller; the pipeline only needs the first reported day and
// the thresholds.
type Params struct {
	Start              time.Time
	RollingWindow      int     // trading days of trailing volume, >= 2
	VolumeThresholdPct float64 // volume vs baseline, > 100 (200 means 2x)
	PriceThresholdPct  float64 // daily move in percent, > 0
	HoldingPeriod      int     // trading days held after a signal, >= 1
}

// Validate checks the threshold ranges.
func (p Params) Validate() error {
	if p.Start.IsZero() {
		return apperrors.NewValidationError("start", p.Start, "start date is required")
	}
	if p.RollingWindow < 2 {
		return apperrors.NewValidationError("rolling_window", p.RollingWindow, "must be at least 2")
	}
	if p.VolumeThresholdPct <= 100 {
		return apperrors.NewValidationError("volume_threshold_pct", p.VolumeThresholdPct, "must be greater than 100")
	}
	if p.PriceThresholdPct <= 0 {
		return apperrors.NewValidationError("price_threshold_pct", p.PriceThresholdPct, "must be greater than 0")
	}
	if p.HoldingPeriod < 1 {
		return apperrors.NewValidationError("holding_period", p.HoldingPeriod, "must be at least 1")
	}
	return nil
}

// Result holds the output of one analysis run. Classified covers every
// reported bar with defined derived fields; Trades only the breakouts whose
// holding period fit inside the series. A zero-trade Result is a legitimate
// outcome, distinct from the errors Run can return.
type Result struct {
	Classified []models.ClassifiedBar
	Trades     []models.Trade
	Summary    models.Summary
}

// Breakouts counts the flagged bars, including those too close to the end
// of the series to produce a trade.
func (r *Result) Breakouts() int {
	var n int
	for _, c := range r.Classified {
		if c.IsBreakout {
			n++
		}
	}
	return n
}

// Run executes the full pipeline over a pre-fetched, buffer-included series:
// baselines over the whole buffered series, classification restricted to
// bars on or after p.Start, holding-period evaluation against the full
// series, then the summary reduction. The series is never mutated; multiple
// runs with different thresholds may share one series.
func Run(series models.BarSeries, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := series.Validate(); err != nil {
		return nil, apperrors.Wrap(err, "invalid bar series")
	}

	derived, err := ComputeBaselines(series, p.RollingWindow)
	if err != nil {
		return nil, err
	}

	classified := Classify(derived, series.IndexOn(p.Start), p.VolumeThresholdPct, p.PriceThresholdPct)
	trades := EvaluateHolding(series, classified, p.HoldingPeriod)

	return &Result{
		Classified: classified,
		Trades:     trades,
		Summary:    Summarize(trades),
	}, nil
}
