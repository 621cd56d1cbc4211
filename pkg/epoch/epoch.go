// Package epoch bridges UNIX timestamps, UTC instants, plotting-axis date
// numbers, and the ISO time-string forms found in DSN logs and filenames.
// A UNIX timestamp is a float64 count of seconds since 1970-01-01T00:00:00
// UT with the fractional part carrying sub-second precision.
package epoch

import (
	"fmt"
	"math"
	"time"

	"github.com/SDRAST/DatesTimes/pkg/clock"
)

// SecondsPerDay is the number of UT seconds in a day.
const SecondsPerDay = 86400.0

// PlotEpochOffsetDays is the plotting-axis date number of the UNIX epoch:
// the number of days from 0001-01-01T00:00:00 UT to 1970-01-01T00:00:00 UT
// in the proleptic Gregorian calendar, where 0001-01-01 itself is day 1.
const PlotEpochOffsetDays = 719163.0

// TimeToUnix converts a UTC instant to a UNIX timestamp, preserving the
// sub-second fraction.
func TimeToUnix(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// UnixToTime converts a UNIX timestamp to a UTC instant. Integer-second
// inputs round-trip exactly through TimeToUnix; fractional inputs are
// reconstructed to nanosecond resolution.
func UnixToTime(ts float64) time.Time {
	sec := math.Floor(ts)
	ns := math.Round((ts - sec) * 1e9)
	return time.Unix(int64(sec), int64(ns)).UTC()
}

// UnixToPlotNumber converts a UNIX timestamp to a plotting-axis date number
// (days since the 0001-01-01 plot epoch).
func UnixToPlotNumber(ts float64) float64 {
	return PlotEpochOffsetDays + ts/SecondsPerDay
}

// PlotNumberToUnix converts a plotting-axis date number back to a UNIX
// timestamp.
func PlotNumberToUnix(num float64) float64 {
	return (num - PlotEpochOffsetDays) * SecondsPerDay
}

// PlotNumberYearDay returns the year and day of year of a plotting-axis
// date number. It returns a RangeError for numbers before plot day 1.
func PlotNumberYearDay(num float64) (year, yearDay int, err error) {
	if num < 1 {
		return 0, 0, &RangeError{Quantity: "plot date number", Value: num}
	}
	t := UnixToTime(PlotNumberToUnix(num))
	return t.Year(), t.YearDay(), nil
}

// FormatTimestampMilli formats a UNIX timestamp as
// "YYYY-MM-DD HH:MM:SS.mmm" with exactly three fractional digits.
func FormatTimestampMilli(ts float64) string {
	return UnixToTime(ts).Format("2006-01-02 15:04:05.000")
}

// NowString formats the current minute as YYYY/DDD-HHMM.
func NowString(clk clock.Clock) string {
	now := clk.Now()
	return fmt.Sprintf("%04d/%03d-%02d%02d",
		now.Year(), now.YearDay(), now.Hour(), now.Minute())
}

// FormatNow returns the current time in ctime form,
// e.g. "Mon Jan  2 15:04:05 2006".
func FormatNow(clk clock.Clock) string {
	return clk.Now().Format(time.ANSIC)
}

// Seconds expresses a duration in the requested unit: "sec", "min" or
// "hour". Unknown units are an error rather than a silent default.
func Seconds(d time.Duration, unit string) (float64, error) {
	switch unit {
	case "sec":
		return d.Seconds(), nil
	case "min":
		return d.Minutes(), nil
	case "hour":
		return d.Hours(), nil
	default:
		return 0, fmt.Errorf("unknown duration unit %q", unit)
	}
}
