package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCreatesTemplatesOnFirstRun(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected first-run template error")
	}
	if !strings.Contains(err.Error(), "created template") {
		t.Errorf("err = %v, want template creation notice", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("config template not written: %v", err)
	}
	credInfo, err := os.Stat(filepath.Join(dir, "credentials.toml"))
	if err != nil {
		t.Fatalf("credentials template not written: %v", err)
	}
	if perm := credInfo.Mode().Perm(); perm != 0600 {
		t.Errorf("credentials perm = %o, want 0600", perm)
	}
}

func TestLoadReadsConfigAndCredentials(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", `
[provider]
name = "tiingo"
timeout_seconds = 10

[scan]
rolling_window = 15
volume_threshold_pct = 250.0
price_threshold_pct = 3.0
holding_period_days = 5
`)
	writeFile(t, dir, "credentials.toml", `
[tiingo]
api_token = "secret-token"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Scan.RollingWindow != 15 || cfg.Scan.HoldingPeriodDays != 5 {
		t.Errorf("scan config = %+v", cfg.Scan)
	}
	if cfg.Provider.TimeoutSeconds != 10 {
		t.Errorf("timeout = %d, want 10", cfg.Provider.TimeoutSeconds)
	}
	if cfg.Credentials.Tiingo.APIToken != "secret-token" {
		t.Errorf("token = %q", cfg.Credentials.Tiingo.APIToken)
	}
	// Unset keys fall back to defaults
	if !cfg.Cache.Enabled {
		t.Error("cache default not applied")
	}
}

func TestLoadEnvOverridesToken(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", "[provider]\nname = \"tiingo\"\n")
	writeFile(t, dir, "credentials.toml", "[tiingo]\napi_token = \"from-file\"\n")
	t.Setenv("TIINGO_API_TOKEN", "from-env")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Credentials.Tiingo.APIToken != "from-env" {
		t.Errorf("token = %q, want env value", cfg.Credentials.Tiingo.APIToken)
	}
}

func TestLoadRejectsBadThresholds(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", `
[scan]
volume_threshold_pct = 50.0
`)

	if _, err := Load(dir); err == nil {
		t.Error("volume threshold at 50% accepted")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{
		Provider: ProviderConfig{Name: "tiingo"},
		Scan: ScanConfig{
			RollingWindow:      20,
			VolumeThresholdPct: 200,
			PriceThresholdPct:  2,
			HoldingPeriodDays:  10,
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg.Provider.Name = "bloomberg"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider accepted")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
