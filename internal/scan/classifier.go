package scan

import (
	"breakout-scanner/internal/models"
)

// Classify flags breakout bars in the reported window of the derived series.
// startIdx is the position of the first reported day in the full buffered
// series; earlier bars contributed to the baselines but are dropped here.
// Bars with an undefined baseline or daily return cannot be compared
// point-in-time and are excluded from the output entirely, not flagged false.
func Classify(derived []models.DerivedBar, startIdx int, volumeThresholdPct, priceThresholdPct float64) []models.ClassifiedBar {
	if startIdx < 0 {
		return nil
	}

	classified := make([]models.ClassifiedBar, 0, len(derived)-startIdx)
	for i := startIdx; i < len(derived); i++ {
		d := derived[i]
		if !d.AvgVolume.Valid || !d.DailyReturn.Valid {
			continue
		}

		volumeBreakout := float64(d.Volume) >= (volumeThresholdPct/100)*d.AvgVolume.Float64
		priceBreakout := d.DailyReturn.Float64 > priceThresholdPct

		classified = append(classified, models.ClassifiedBar{
			DerivedBar: d,
			Index:      i,
			IsBreakout: volumeBreakout && priceBreakout,
		})
	}

	return classified
}
