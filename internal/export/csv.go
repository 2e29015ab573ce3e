// Package export serializes analysis results for download.
package export

import (
	"os"

	"github.com/gocarina/gocsv"

	"breakout-scanner/internal/models"
)

// tradeRow mirrors the column layout of the original results download:
// signal-day context first, then the realized buy/sell pair and return.
type tradeRow struct {
	Date        string  `csv:"date"`
	Close       float64 `csv:"close"`
	Volume      int64   `csv:"volume"`
	AvgVolume   float64 `csv:"avg_volume"`
	DailyReturn float64 `csv:"daily_return_pct"`
	BuyPrice    float64 `csv:"buy_price"`
	SellDate    string  `csv:"sell_date"`
	SellPrice   float64 `csv:"sell_price"`
	ReturnPct   float64 `csv:"return_pct"`
}

// WriteTradesCSV writes the evaluated trades to path.
func WriteTradesCSV(path string, trades []models.Trade) error {
	rows := make([]tradeRow, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, tradeRow{
			Date:        t.SignalDate.Format("2006-01-02"),
			Close:       t.Close,
			Volume:      t.Volume,
			AvgVolume:   t.AvgVolume,
			DailyReturn: t.DailyReturn,
			BuyPrice:    t.BuyPrice,
			SellDate:    t.SellDate.Format("2006-01-02"),
			SellPrice:   t.SellPrice,
			ReturnPct:   t.ReturnPct,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&rows, f)
}
