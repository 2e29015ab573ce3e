package utils

import "time"

// SubtractBusinessDays returns the date n weekdays before d. Exchange
// holidays are not modeled; the result is used only to oversize the fetch
// buffer, and a couple of extra calendar days are harmless.
func SubtractBusinessDays(d time.Time, n int) time.Time {
	for n > 0 {
		d = d.AddDate(0, 0, -1)
		if isWeekday(d) {
			n--
		}
	}
	return d
}

// AddBusinessDays returns the date n weekdays after d.
func AddBusinessDays(d time.Time, n int) time.Time {
	for n > 0 {
		d = d.AddDate(0, 0, 1)
		if isWeekday(d) {
			n--
		}
	}
	return d
}

func isWeekday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
