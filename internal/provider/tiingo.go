package provider

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	apperrors "breakout-scanner/internal/errors"
	"breakout-scanner/internal/logging"
	"breakout-scanner/internal/models"
	"breakout-scanner/pkg/utils"
)

const defaultTiingoBaseURL = "https://api.tiingo.com"

// TiingoProvider fetches end-of-day bars from the Tiingo REST API.
type TiingoProvider struct {
	client *resty.Client
	logger zerolog.Logger
}

// TiingoConfig holds Tiingo client configuration.
type TiingoConfig struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// NewTiingoProvider creates a new Tiingo provider.
func NewTiingoProvider(cfg TiingoConfig, logger zerolog.Logger) *TiingoProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultTiingoBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetAuthScheme("Token").
		SetAuthToken(cfg.APIToken)

	return &TiingoProvider{
		client: client,
		logger: logger.With().Str("provider", "tiingo").Logger(),
	}
}

func (p *TiingoProvider) Name() string {
	return "tiingo"
}

// tiingoPrice is one row of the Tiingo end-of-day response.
type tiingoPrice struct {
	Date      time.Time `json:"date"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
	AdjClose  float64   `json:"adjClose"`
	AdjVolume int64     `json:"adjVolume"`
}

// DailyBars fetches the buffered daily series for one ticker. Adjusted close
// and volume are preferred when present so volume baselines survive splits.
func (p *TiingoProvider) DailyBars(ctx context.Context, req FetchRequest) (models.BarSeries, error) {
	start := req.BufferedStart()

	fetch := func() ([]tiingoPrice, error) {
		var prices []tiingoPrice
		resp, err := p.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"startDate":    start.Format("2006-01-02"),
				"endDate":      req.End.Format("2006-01-02"),
				"resampleFreq": "daily",
			}).
			SetResult(&prices).
			Get("/tiingo/daily/" + req.Ticker + "/prices")
		if err != nil {
			return nil, apperrors.NewProviderError(p.Name(), req.Ticker, "request failed", err)
		}

		switch resp.StatusCode() {
		case http.StatusOK:
			return prices, nil
		case http.StatusNotFound:
			// Unknown ticker or no coverage: an empty series, not a failure.
			return nil, nil
		case http.StatusTooManyRequests:
			return nil, apperrors.NewProviderError(p.Name(), req.Ticker, "throttled", apperrors.ErrRateLimited)
		default:
			return nil, apperrors.NewProviderError(p.Name(), req.Ticker, "unexpected status "+resp.Status(), nil)
		}
	}

	started := time.Now()
	prices, err := utils.RetryWithResult(ctx, utils.DefaultRetryConfig(), fetch)
	if err != nil {
		return nil, err
	}

	bars := make(models.BarSeries, 0, len(prices))
	for _, row := range prices {
		closePx, volume := row.Close, row.Volume
		if row.AdjClose > 0 {
			closePx = row.AdjClose
		}
		if row.AdjVolume > 0 {
			volume = row.AdjVolume
		}
		bars = append(bars, models.Bar{
			Date:   row.Date.UTC().Truncate(24 * time.Hour),
			Close:  closePx,
			Volume: volume,
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	logging.LogFetch(logging.WithTicker(p.logger, req.Ticker), p.Name(), len(bars), time.Since(started))

	return bars, nil
}
