package scan

import (
	"breakout-scanner/internal/models"
)

// Summarize reduces evaluated trades to count, mean return and win rate.
// With zero trades the mean and win rate are left undefined so callers can
// render "no signals" instead of a spurious zero.
func Summarize(trades []models.Trade) models.Summary {
	s := models.Summary{TotalTrades: len(trades)}
	if len(trades) == 0 {
		return s
	}

	var sum float64
	var wins int
	for _, t := range trades {
		sum += t.ReturnPct
		if t.ReturnPct > 0 {
			wins++
		}
	}

	s.MeanReturn = models.Float(sum / float64(len(trades)))
	s.WinRate = models.Float(float64(wins) / float64(len(trades)) * 100)
	return s
}
