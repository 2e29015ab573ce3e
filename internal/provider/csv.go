package provider

import (
	"context"
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"

	apperrors "breakout-scanner/internal/errors"
	"breakout-scanner/internal/models"
)

// FileProvider serves daily bars from a local CSV file for offline runs.
// The file needs date, close and volume columns; extra columns are ignored.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider backed by the given CSV file.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Name() string {
	return "csv:" + p.path
}

type csvBar struct {
	Date   string  `csv:"date"`
	Close  float64 `csv:"close"`
	Volume int64   `csv:"volume"`
}

// DailyBars loads the file and restricts it to the buffered request window.
func (p *FileProvider) DailyBars(ctx context.Context, req FetchRequest) (models.BarSeries, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, apperrors.NewProviderError(p.Name(), req.Ticker, "opening file", err)
	}
	defer f.Close()

	var rows []csvBar
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, apperrors.NewProviderError(p.Name(), req.Ticker, "parsing csv", err)
	}

	start := req.BufferedStart()
	bars := make(models.BarSeries, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			return nil, apperrors.NewProviderError(p.Name(), req.Ticker, "bad date "+row.Date, err)
		}
		if date.Before(start) || date.After(req.End) {
			continue
		}
		bars = append(bars, models.Bar{Date: date, Close: row.Close, Volume: row.Volume})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}
