package vsr

import (
	"testing"
	"time"

	"github.com/SDRAST/DatesTimes/pkg/calendar"
	"github.com/SDRAST/DatesTimes/pkg/clock"
	"github.com/SDRAST/DatesTimes/pkg/epoch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTupleTime(t *testing.T) {
	instant, err := Tuple{Year: 2010, YearDay: 15, Seconds: 16212}.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2010, 1, 15, 4, 30, 12, 0, time.UTC), instant)

	instant, err = Tuple{Year: 2010, YearDay: 101, Seconds: 12345}.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2010, 4, 11, 3, 25, 45, 0, time.UTC), instant)
}

func TestTupleTimeFractionalSeconds(t *testing.T) {
	instant, err := Tuple{Year: 2010, YearDay: 15, Seconds: 16212.25}.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2010, 1, 15, 4, 30, 12, 250000000, time.UTC), instant)
}

func TestTupleUnix(t *testing.T) {
	ts, err := Tuple{Year: 2010, YearDay: 15, Seconds: 16212}.Unix()
	require.NoError(t, err)
	want := epoch.TimeToUnix(time.Date(2010, 1, 15, 4, 30, 12, 0, time.UTC))
	assert.Equal(t, want, ts)
}

func TestTuplePlotNumber(t *testing.T) {
	tup := Tuple{Year: 2010, YearDay: 15, Seconds: 16212}
	num, err := tup.PlotNumber()
	require.NoError(t, err)
	ts, err := tup.Unix()
	require.NoError(t, err)
	assert.Equal(t, epoch.UnixToPlotNumber(ts), num)
}

func TestFromTime(t *testing.T) {
	tup := FromTime(time.Date(2010, 1, 15, 4, 30, 12, 0, time.UTC))
	assert.Equal(t, Tuple{Year: 2010, YearDay: 15, Seconds: 16212}, tup)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		tuple   Tuple
		wantErr any
	}{
		{"negative_seconds", Tuple{2023, 100, -1}, &RangeError{}},
		{"full_day_seconds", Tuple{2023, 100, 86400}, &RangeError{}},
		{"day_zero", Tuple{2023, 0, 100}, &RangeError{}},
		{"day_past_common_year", Tuple{2023, 366, 100}, &calendar.InvalidDateError{}},
		{"day_past_leap_year", Tuple{2024, 367, 100}, &calendar.InvalidDateError{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tuple.Validate()
			require.Error(t, err)
			switch tc.wantErr.(type) {
			case *RangeError:
				var rangeErr *RangeError
				assert.ErrorAs(t, err, &rangeErr)
			case *calendar.InvalidDateError:
				var invalid *calendar.InvalidDateError
				assert.ErrorAs(t, err, &invalid)
			}
		})
	}

	assert.NoError(t, Tuple{2024, 366, 86399.999}.Validate())
}

func TestIncrementMidDay(t *testing.T) {
	got, err := Increment(Tuple{Year: 2024, YearDay: 60, Seconds: 100}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Tuple{Year: 2024, YearDay: 60, Seconds: 101}, got)
}

func TestIncrementDayRollover(t *testing.T) {
	got, err := Increment(Tuple{Year: 2023, YearDay: 100, Seconds: 86399.5}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 2023, got.Year)
	assert.Equal(t, 101, got.YearDay)
	assert.InDelta(t, 0.5, got.Seconds, 1e-9)
}

// 2023 has 365 days, so the last second of day 365 rolls over into day 1
// of 2024.
func TestIncrementYearRollover(t *testing.T) {
	got, err := Increment(Tuple{Year: 2023, YearDay: 365, Seconds: 86399.5}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 1, got.YearDay)
	assert.InDelta(t, 0.5, got.Seconds, 1e-9)
}

func TestIncrementLeapYearRollover(t *testing.T) {
	got, err := Increment(Tuple{Year: 2024, YearDay: 366, Seconds: 86399}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Tuple{Year: 2025, YearDay: 1, Seconds: 0}, got)
}

func TestIncrementLongInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interval = 1000
	got, err := Increment(Tuple{Year: 2023, YearDay: 365, Seconds: 86000}, cfg)
	require.NoError(t, err)
	assert.Equal(t, Tuple{Year: 2024, YearDay: 1, Seconds: 600}, got)
}

func TestIncrementInvalid(t *testing.T) {
	_, err := Increment(Tuple{Year: 2023, YearDay: 1, Seconds: -5}, DefaultConfig())
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)

	cfg := DefaultConfig()
	cfg.Interval = 0
	_, err = Increment(Tuple{Year: 2023, YearDay: 1, Seconds: 5}, cfg)
	require.ErrorAs(t, err, &rangeErr)
}

func TestScriptTime(t *testing.T) {
	got, err := ScriptTime(101, 3, 25, 45)
	require.NoError(t, err)
	assert.Equal(t, "101/03:25:45", got)

	got, err = ScriptTime(7, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "007/00:00:00", got)
}

func TestScriptTimeInvalid(t *testing.T) {
	cases := []struct {
		name          string
		doy, h, m, s  int
	}{
		{"day_zero", 0, 0, 0, 0},
		{"day_too_big", 367, 0, 0, 0},
		{"hour", 100, 24, 0, 0},
		{"minute", 100, 0, 60, 0},
		{"second", 100, 0, 0, 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ScriptTime(tc.doy, tc.h, tc.m, tc.s)
			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
		})
	}
}

func TestTimestamp(t *testing.T) {
	clk := clock.Fixed(time.Date(2010, 1, 15, 4, 30, 12, 0, time.UTC))
	assert.Equal(t, "2010 015 16212", Timestamp(clk, DefaultConfig()))
}
