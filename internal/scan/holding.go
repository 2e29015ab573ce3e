package scan

import (
	"breakout-scanner/internal/models"
)

// EvaluateHolding resolves each breakout signal against the close exactly
// holdingPeriod trading-day positions later in the full buffered series.
// The lookup is positional, never calendar-based, so weekend and holiday
// gaps cannot skew the holding period. A signal whose sell index falls
// beyond the last bar produces no trade: its outcome is not yet determined
// within the fetched window, which is a silent drop rather than an error.
func EvaluateHolding(series models.BarSeries, classified []models.ClassifiedBar, holdingPeriod int) []models.Trade {
	n := len(series)
	trades := make([]models.Trade, 0)

	for _, c := range classified {
		if !c.IsBreakout {
			continue
		}

		j := c.Index + holdingPeriod
		if j >= n {
			continue
		}

		buy := c.Close
		sell := series[j].Close
		trades = append(trades, models.Trade{
			SignalDate:  c.Date,
			Close:       c.Close,
			Volume:      c.Volume,
			AvgVolume:   c.AvgVolume.Float64,
			DailyReturn: c.DailyReturn.Float64,
			BuyPrice:    buy,
			SellDate:    series[j].Date,
			SellPrice:   sell,
			ReturnPct:   (sell - buy) / buy * 100,
		})
	}

	return trades
}
