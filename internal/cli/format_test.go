package cli

import (
	"testing"
	"time"
)

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{2.5, "+2.50%"},
		{-1.234, "-1.23%"},
		{0, "0.00%"},
	}
	for _, tc := range cases {
		if got := FormatPercent(tc.value); got != tc.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatVolume(t *testing.T) {
	cases := []struct {
		volume int64
		want   string
	}{
		{512, "512"},
		{1500, "1.5K"},
		{2_450_000, "2.45M"},
		{3_100_000_000, "3.10B"},
	}
	for _, tc := range cases {
		if got := FormatVolume(tc.volume); got != tc.want {
			t.Errorf("FormatVolume(%d) = %q, want %q", tc.volume, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-06-28")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	for _, bad := range []string{"28-06-2024", "2024/06/28", "yesterday", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) accepted", bad)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "28-Jun-2024" {
		t.Errorf("FormatDate = %q", got)
	}
}
