// Package vsr handles the Video Science Recorder time formats: the
// (year, day of year, seconds since midnight) tuple, the filename time
// string "YYYY DDD sssss", and the script timestamp "DDD/HH:MM:SS".
//
// The tuple keeps day-level and sub-day precision separate so that
// sub-second offsets survive conversions over large epochs.
package vsr

import (
	"fmt"
	"math"
	"time"

	"github.com/SDRAST/DatesTimes/pkg/calendar"
	"github.com/SDRAST/DatesTimes/pkg/clock"
	"github.com/SDRAST/DatesTimes/pkg/epoch"
)

const secondsPerDay = 86400.0

// Tuple is a VSR instant: a year, an integer day of year, and seconds
// since midnight in [0, 86400).
type Tuple struct {
	Year    int
	YearDay int
	Seconds float64
}

// Validate checks the tuple's fields. Seconds outside [0, 86400) and
// non-positive day numbers are RangeErrors; a day number past the end of
// the year is an InvalidDateError from the calendar kernel.
func (t Tuple) Validate() error {
	if t.Seconds < 0 || t.Seconds >= secondsPerDay {
		return &RangeError{Quantity: "seconds since midnight", Value: t.Seconds}
	}
	if t.YearDay <= 0 {
		return &RangeError{Quantity: "day of year", Value: float64(t.YearDay)}
	}
	if t.YearDay > calendar.DaysInYear(t.Year) {
		return &calendar.InvalidDateError{Year: t.Year, YearDay: float64(t.YearDay)}
	}
	return nil
}

// Increment advances the tuple by the configured emission interval. The
// seconds overflow cascades into the day and, at the end of December 31,
// into the year, so the step is exact across year boundaries.
func Increment(t Tuple, cfg Config) (Tuple, error) {
	if err := t.Validate(); err != nil {
		return Tuple{}, err
	}
	if cfg.Interval <= 0 {
		return Tuple{}, &RangeError{Quantity: "emission interval", Value: cfg.Interval}
	}
	t.Seconds += cfg.Interval
	for t.Seconds >= secondsPerDay {
		t.Seconds -= secondsPerDay
		t.YearDay++
		if t.YearDay > calendar.DaysInYear(t.Year) {
			t.YearDay = 1
			t.Year++
		}
	}
	return t, nil
}

// Time converts the tuple to a UTC instant, decomposing the seconds into
// hours, minutes, seconds and nanoseconds.
func (t Tuple) Time() (time.Time, error) {
	if err := t.Validate(); err != nil {
		return time.Time{}, err
	}
	d, err := calendar.FromYearDay(t.Year, float64(t.YearDay))
	if err != nil {
		return time.Time{}, err
	}
	whole := int(t.Seconds)
	ns := int(math.Round((t.Seconds - float64(whole)) * 1e9))
	h := whole / 3600
	m := (whole - 3600*h) / 60
	s := whole - 3600*h - 60*m
	return time.Date(d.Year, time.Month(d.Month), d.Day, h, m, s, ns, time.UTC), nil
}

// Unix converts the tuple to a UNIX timestamp.
func (t Tuple) Unix() (float64, error) {
	instant, err := t.Time()
	if err != nil {
		return 0, err
	}
	return epoch.TimeToUnix(instant), nil
}

// PlotNumber converts the tuple to a plotting-axis date number.
func (t Tuple) PlotNumber() (float64, error) {
	ts, err := t.Unix()
	if err != nil {
		return 0, err
	}
	return epoch.UnixToPlotNumber(ts), nil
}

// FromTime builds a Tuple from a UTC instant.
func FromTime(instant time.Time) Tuple {
	instant = instant.UTC()
	secs := float64(3600*instant.Hour()+60*instant.Minute()+instant.Second()) +
		float64(instant.Nanosecond())/1e9
	return Tuple{Year: instant.Year(), YearDay: instant.YearDay(), Seconds: secs}
}

// Timestamp formats the current instant read from clk as a VSR filename
// time string.
func Timestamp(clk clock.Clock, cfg Config) string {
	return Format(FromTime(clk.Now()), cfg)
}

// ScriptTime formats a timestamp in the form VSR script files use,
// DDD/HH:MM:SS, e.g. ScriptTime(101, 3, 25, 45) == "101/03:25:45".
func ScriptTime(yearDay, h, m, s int) (string, error) {
	if yearDay < 1 || yearDay > 366 {
		return "", &RangeError{Quantity: "day of year", Value: float64(yearDay)}
	}
	if h < 0 || h > 23 {
		return "", &RangeError{Quantity: "hour", Value: float64(h)}
	}
	if m < 0 || m > 59 {
		return "", &RangeError{Quantity: "minute", Value: float64(m)}
	}
	if s < 0 || s > 59 {
		return "", &RangeError{Quantity: "second", Value: float64(s)}
	}
	return fmt.Sprintf("%03d/%02d:%02d:%02d", yearDay, h, m, s), nil
}
