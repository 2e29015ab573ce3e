// Package models provides domain models for breakout analysis.
package models

import (
	"fmt"
	"time"
)

// Bar represents one trading day's close price and traded volume.
type Bar struct {
	Date   time.Time
	Close  float64
	Volume int64
}

// BarSeries is an ordered sequence of daily bars, sorted ascending by date
// with no duplicate dates. Weekend/holiday gaps are permitted; the series
// only contains actual trading days.
type BarSeries []Bar

// Validate checks the series ordering invariant.
func (s BarSeries) Validate() error {
	for i := 1; i < len(s); i++ {
		if !s[i].Date.After(s[i-1].Date) {
			return fmt.Errorf("bars out of order at index %d: %s follows %s",
				i, s[i].Date.Format("2006-01-02"), s[i-1].Date.Format("2006-01-02"))
		}
	}
	return nil
}

// IndexOn returns the index of the first bar on or after the given date,
// or -1 if every bar precedes it.
func (s BarSeries) IndexOn(date time.Time) int {
	for i, b := range s {
		if !b.Date.Before(date) {
			return i
		}
	}
	return -1
}

// NullFloat is a float64 that may be undefined. It replaces the implicit
// NaN/row-drop behavior of spreadsheet-style pipelines with an explicit flag.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float returns a defined NullFloat.
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// DerivedBar is a Bar plus its point-in-time derived fields. AvgVolume is the
// trailing mean volume over the rolling window strictly before the bar's own
// day; DailyReturn is the close-over-close percentage move. Either field may
// be undefined near the start of the series.
type DerivedBar struct {
	Bar
	AvgVolume   NullFloat
	DailyReturn NullFloat
}

// ClassifiedBar is a DerivedBar with its breakout flag. Index is the bar's
// position in the full buffered series; forward lookups are positional, not
// date-based.
type ClassifiedBar struct {
	DerivedBar
	Index      int
	IsBreakout bool
}

// Trade is one realized breakout signal held for a fixed number of trading
// days. Volume, AvgVolume and DailyReturn carry the signal-day context for
// display and export.
type Trade struct {
	SignalDate  time.Time
	Close       float64
	Volume      int64
	AvgVolume   float64
	DailyReturn float64
	BuyPrice    float64
	SellDate    time.Time
	SellPrice   float64
	ReturnPct   float64
}

// Summary aggregates a set of trades. MeanReturn and WinRate are undefined
// when there are no trades; callers must render that as "no signals" rather
// than zero.
type Summary struct {
	TotalTrades int
	MeanReturn  NullFloat
	WinRate     NullFloat
}
