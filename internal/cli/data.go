// Package cli provides the command-line interface for the breakout scanner.
package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"breakout-scanner/internal/models"
	"breakout-scanner/internal/provider"
)

func newDataCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data <ticker>",
		Short: "Fetch and display daily bars",
		Long: `Fetch daily close/volume bars for a ticker and display them.

Fetched bars are cached locally; --cached displays only what is already
in the cache without contacting the provider.`,
		Example: `  breakout-scanner data NVDA
  breakout-scanner data AAPL --days 90
  breakout-scanner data NVDA --cached`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			ticker := strings.ToUpper(args[0])
			days, _ := cmd.Flags().GetInt("days")
			cached, _ := cmd.Flags().GetBool("cached")

			end := time.Now().UTC().Truncate(24 * time.Hour)
			start := end.AddDate(0, 0, -days)

			var bars models.BarSeries
			var err error
			if cached {
				if app.Store == nil {
					output.Error("Bar cache is disabled.")
					return nil
				}
				bars, err = app.Store.GetBars(ctx, ticker, start, end)
			} else {
				bars, err = app.Provider.DailyBars(ctx, provider.FetchRequest{
					Ticker: ticker,
					Start:  start,
					End:    end,
					// No baseline needed here, a single buffer day keeps
					// the first daily return defined.
					RollingWindow: 1,
				})
			}
			if err != nil {
				output.Error("Failed to get bars: %v", err)
				return err
			}

			if len(bars) == 0 {
				output.Info("No bars found for %s.", ticker)
				return nil
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"ticker": ticker,
					"count":  len(bars),
					"bars":   bars,
				})
			}

			displayBars(output, ticker, bars)
			return nil
		},
	}

	cmd.Flags().IntP("days", "d", 30, "number of calendar days of history")
	cmd.Flags().Bool("cached", false, "read only from the local cache")

	return cmd
}

func displayBars(output *Output, ticker string, bars models.BarSeries) {
	output.Bold("%s - daily bars", ticker)
	output.Printf("  %d bars\n\n", len(bars))

	table := NewTable(output, "Date", "Close", "Volume", "Change")
	for i, b := range bars {
		change := "-"
		if i > 0 {
			pct := (b.Close - bars[i-1].Close) / bars[i-1].Close * 100
			change = output.FormatReturn(pct)
		}
		table.AddRow(FormatDate(b.Date), FormatPrice(b.Close), FormatVolume(b.Volume), change)
	}
	table.Render()
}
