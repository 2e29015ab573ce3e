// Package cli provides the command-line interface for the breakout scanner.
package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apperrors "breakout-scanner/internal/errors"
	"breakout-scanner/internal/export"
	"breakout-scanner/internal/logging"
	"breakout-scanner/internal/provider"
	"breakout-scanner/internal/scan"
)

func newScanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <ticker>",
		Short: "Run breakout analysis for a ticker",
		Long: `Fetch daily bars for a ticker and detect breakout days: days where
volume reaches the configured multiple of its trailing average and the
daily move exceeds the price threshold. Each breakout is evaluated by
holding for a fixed number of trading days.

The fetch is oversized by the rolling window so the volume baseline is
fully populated on the first reported day.`,
		Example: `  breakout-scanner scan NVDA
  breakout-scanner scan AAPL --start 2024-01-02 --end 2024-06-28
  breakout-scanner scan TSLA --window 10 --volume-threshold 300 --holding 5
  breakout-scanner scan NVDA --offline bars.csv --csv results.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			ticker := strings.ToUpper(args[0])

			startStr, _ := cmd.Flags().GetString("start")
			endStr, _ := cmd.Flags().GetString("end")
			window, _ := cmd.Flags().GetInt("window")
			volThreshold, _ := cmd.Flags().GetFloat64("volume-threshold")
			priceThreshold, _ := cmd.Flags().GetFloat64("price-threshold")
			holding, _ := cmd.Flags().GetInt("holding")
			csvPath, _ := cmd.Flags().GetString("csv")
			offline, _ := cmd.Flags().GetString("offline")

			end := time.Now().UTC().Truncate(24 * time.Hour)
			if endStr != "" {
				var err error
				if end, err = ParseDate(endStr); err != nil {
					return err
				}
			}
			start := end.AddDate(0, 0, -300)
			if startStr != "" {
				var err error
				if start, err = ParseDate(startStr); err != nil {
					return err
				}
			}
			if end.Before(start) {
				output.Error("End date must not precede start date")
				return apperrors.NewValidationError("end", endStr, "before start date")
			}

			params := scan.Params{
				Start:              start,
				RollingWindow:      window,
				VolumeThresholdPct: volThreshold,
				PriceThresholdPct:  priceThreshold,
				HoldingPeriod:      holding,
			}
			if err := params.Validate(); err != nil {
				output.Error("%v", err)
				return err
			}

			prov := app.Provider
			if offline != "" {
				prov = provider.NewFileProvider(offline)
			}

			bars, err := prov.DailyBars(ctx, provider.FetchRequest{
				Ticker:        ticker,
				Start:         start,
				End:           end,
				RollingWindow: window,
			})
			if err != nil {
				output.Error("Failed to fetch data: %v", err)
				return err
			}

			result, err := scan.Run(bars, params)
			if err != nil {
				switch {
				case apperrors.Is(err, apperrors.ErrEmptySeries):
					output.Error("No data found for the specified ticker and date range.")
				case apperrors.Is(err, apperrors.ErrInsufficientHistory):
					output.Error("Not enough history before %s for a %d-day rolling window.",
						FormatDate(start), window)
				default:
					output.Error("Analysis failed: %v", err)
				}
				return err
			}

			logging.LogScan(logging.WithTicker(app.Logger, ticker), len(bars), result.Breakouts(), len(result.Trades))

			if csvPath != "" {
				if err := export.WriteTradesCSV(csvPath, result.Trades); err != nil {
					output.Error("Failed to write CSV: %v", err)
					return err
				}
			}

			if output.IsJSON() {
				return output.JSON(scanJSON(ticker, result))
			}
			displayScanResult(output, ticker, result)
			if csvPath != "" {
				output.Dim("Results written to %s", csvPath)
			}
			return nil
		},
	}

	cmd.Flags().String("start", "", "start date YYYY-MM-DD (default: 300 days before end)")
	cmd.Flags().String("end", "", "end date YYYY-MM-DD (default: today)")
	cmd.Flags().IntP("window", "w", app.Config.Scan.RollingWindow, "rolling window in trading days")
	cmd.Flags().Float64("volume-threshold", app.Config.Scan.VolumeThresholdPct, "volume threshold as percent of baseline (> 100)")
	cmd.Flags().Float64("price-threshold", app.Config.Scan.PriceThresholdPct, "price threshold in percent (> 0)")
	cmd.Flags().Int("holding", app.Config.Scan.HoldingPeriodDays, "holding period in trading days")
	cmd.Flags().String("csv", "", "write results to a CSV file")
	cmd.Flags().String("offline", "", "read bars from a local CSV file instead of the provider")

	return cmd
}

func scanJSON(ticker string, result *scan.Result) map[string]interface{} {
	out := map[string]interface{}{
		"ticker":       ticker,
		"breakouts":    result.Breakouts(),
		"trades":       result.Trades,
		"total_trades": result.Summary.TotalTrades,
	}
	if result.Summary.MeanReturn.Valid {
		out["mean_return_pct"] = result.Summary.MeanReturn.Float64
	}
	if result.Summary.WinRate.Valid {
		out["win_rate_pct"] = result.Summary.WinRate.Float64
	}
	return out
}

func displayScanResult(output *Output, ticker string, result *scan.Result) {
	output.Bold("%s - Breakout Days with Returns", ticker)
	output.Println()

	if len(result.Trades) == 0 {
		if result.Breakouts() > 0 {
			output.Info("%d breakout(s) found, but none had enough subsequent trading days to evaluate.",
				result.Breakouts())
		} else {
			output.Info("No breakout days found in the requested window.")
		}
		return
	}

	table := NewTable(output, "Date", "Close", "Volume", "Avg Volume", "Daily Ret", "Buy", "Sell Date", "Sell", "Return")
	for _, t := range result.Trades {
		table.AddRow(
			FormatDate(t.SignalDate),
			FormatPrice(t.Close),
			FormatVolume(t.Volume),
			FormatVolume(int64(t.AvgVolume)),
			output.FormatReturn(t.DailyReturn),
			FormatPrice(t.BuyPrice),
			FormatDate(t.SellDate),
			FormatPrice(t.SellPrice),
			output.FormatReturn(t.ReturnPct),
		)
	}
	table.Render()

	output.Println()
	output.Bold("Summary")
	output.Printf("  Total Trades: %d\n", result.Summary.TotalTrades)
	if result.Summary.MeanReturn.Valid {
		output.Printf("  Mean Return:  %s\n", output.FormatReturn(result.Summary.MeanReturn.Float64))
	}
	if result.Summary.WinRate.Valid {
		output.Printf("  Win Rate:     %.1f%%\n", result.Summary.WinRate.Float64)
	}
}
