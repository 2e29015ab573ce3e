// Package scan implements the breakout signal pipeline: trailing volume
// baselines, breakout classification, holding-period evaluation and the
// summary aggregate.
package scan

import (
	apperrors "breakout-scanner/internal/errors"
	"breakout-scanner/internal/models"
)

// ComputeBaselines derives the trailing average volume and daily return for
// every bar of the buffered series. The baseline at index i is the mean
// volume of exactly window preceding bars and never includes bar i itself,
// so the value is point-in-time correct for a decision made on day i.
// The series must hold at least window+1 bars; the data collaborator is
// responsible for fetching enough buffer before the reported window.
func ComputeBaselines(series models.BarSeries, window int) ([]models.DerivedBar, error) {
	n := len(series)
	if n == 0 {
		return nil, apperrors.NewSeriesError(0, window+1, apperrors.ErrEmptySeries)
	}
	if n < window+1 {
		return nil, apperrors.NewSeriesError(n, window+1, apperrors.ErrInsufficientHistory)
	}

	derived := make([]models.DerivedBar, n)
	var sum float64

	for i := 0; i < n; i++ {
		d := models.DerivedBar{Bar: series[i]}

		// sum holds volumes [i-window, i-1] once i >= window
		if i >= window {
			d.AvgVolume = models.Float(sum / float64(window))
		}
		if i >= 1 {
			prev := series[i-1].Close
			d.DailyReturn = models.Float((series[i].Close - prev) / prev * 100)
		}
		derived[i] = d

		sum += float64(series[i].Volume)
		if i >= window {
			sum -= float64(series[i-window].Volume)
		}
	}

	return derived, nil
}
