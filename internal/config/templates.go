package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Breakout Scanner Configuration

[provider]
# Market data provider: "tiingo"
name = "tiingo"
# Override the API base URL (leave empty for the default)
base_url = ""
# HTTP timeout in seconds
timeout_seconds = 30

[scan]
# Trailing trading days used for the volume baseline (minimum 2)
rolling_window = 20
# Volume must reach this percentage of the baseline (must be > 100)
volume_threshold_pct = 200.0
# Daily move must exceed this percentage (must be > 0)
price_threshold_pct = 2.0
# Trading days a position is held after a signal (minimum 1)
holding_period_days = 10

[cache]
# Cache fetched bars in a local SQLite database
enabled = true
# Database path (defaults to bars.db in the config directory)
path = ""

[ui]
# Enable colored output
color_enabled = true

[logging]
# Log level: debug, info, warn, error
level = "info"
# Also write logs to a rotating file under the config directory
file = true
`

const credentialsTemplate = `# Breakout Scanner Credentials
# WARNING: Keep this file secure! Do not commit to version control.

[tiingo]
api_token = ""
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	credPath := filepath.Join(configDir, "credentials.toml")
	if _, err := os.Stat(credPath); os.IsNotExist(err) {
		// Restricted permissions for the credentials file
		if err := os.WriteFile(credPath, []byte(credentialsTemplate), 0600); err != nil {
			return fmt.Errorf("writing credentials template: %w", err)
		}
	}

	return fmt.Errorf("config file not found, created template at %s", path)
}
