// Package cli provides the command-line interface for the breakout scanner.
package cli

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"breakout-scanner/internal/config"
	"breakout-scanner/internal/logging"
	"breakout-scanner/internal/provider"
	"breakout-scanner/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Provider provider.Provider
	Store    store.DataStore
}

// Output builds the command output, honoring the configured color setting.
func (a *App) Output(cmd *cobra.Command) *Output {
	out := NewOutput(cmd)
	if !a.Config.UI.ColorEnabled {
		out.colorEnabled = false
	}
	return out
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Initialize the bar cache
	if cfg.Cache.Enabled {
		dbPath := cfg.Cache.Path
		if dbPath == "" {
			dbPath = filepath.Join(config.DefaultConfigDir(), "bars.db")
		}
		barStore, err := store.NewSQLiteStore(dbPath)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize bar cache, fetches will not be cached")
		} else {
			app.Store = barStore
			logger.Debug().Str("path", dbPath).Msg("Bar cache initialized")
		}
	}

	// Initialize the data provider
	tiingo := provider.NewTiingoProvider(provider.TiingoConfig{
		BaseURL:  cfg.Provider.BaseURL,
		APIToken: cfg.Credentials.Tiingo.APIToken,
		Timeout:  time.Duration(cfg.Provider.TimeoutSeconds) * time.Second,
	}, logger)
	if app.Store != nil {
		app.Provider = provider.NewCachedProvider(tiingo, app.Store, logger)
	} else {
		app.Provider = tiingo
	}

	rootCmd := &cobra.Command{
		Use:   "breakout-scanner",
		Short: "Breakout Scanner - volume/price breakout analysis for daily bars",
		Long: `Breakout Scanner detects days where traded volume and price movement both
exceed configured thresholds, then evaluates the return of holding each
signal for a fixed number of trading days.

Use 'breakout-scanner scan <ticker>' to run an analysis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newScanCmd(app))
	rootCmd.AddCommand(newDataCmd(app))

	return rootCmd
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := app.Output(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Breakout Scanner v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := app.Output(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.Output(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("Provider")
	output.Printf("  Name:     %s\n", cfg.Provider.Name)
	output.Printf("  Timeout:  %ds\n", cfg.Provider.TimeoutSeconds)
	output.Println()

	output.Bold("Scan Defaults")
	output.Printf("  Rolling Window:    %d days\n", cfg.Scan.RollingWindow)
	output.Printf("  Volume Threshold:  %.1f%%\n", cfg.Scan.VolumeThresholdPct)
	output.Printf("  Price Threshold:   %.1f%%\n", cfg.Scan.PriceThresholdPct)
	output.Printf("  Holding Period:    %d days\n", cfg.Scan.HoldingPeriodDays)
	output.Println()

	output.Bold("Cache")
	output.Printf("  Enabled:  %v\n", cfg.Cache.Enabled)
	output.Printf("  Path:     %s\n", cfg.Cache.Path)

	return nil
}
