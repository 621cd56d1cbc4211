package vsr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SDRAST/DatesTimes/pkg/epoch"
)

// Format renders a tuple as a VSR filename time string "YYYY DDD sssss",
// with the seconds field zero-padded to cfg.SecondsWidth digits.
func Format(t Tuple, cfg Config) string {
	width := cfg.SecondsWidth
	if width == 0 {
		width = DefaultSecondsWidth
	}
	return fmt.Sprintf("%04d %03d %0*d", t.Year, t.YearDay, width, int(t.Seconds))
}

// Parse parses a VSR filename time string "YYYY DDD sssss" into a Tuple.
// The seconds field may carry a fraction. The parsed tuple is validated,
// so out-of-range fields fail here rather than in a later conversion.
func Parse(s string) (Tuple, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Tuple{}, &ParseError{Input: s, Expected: "YYYY DDD sssss"}
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return Tuple{}, &ParseError{Input: s, Expected: "YYYY DDD sssss"}
	}
	yearDay, err := strconv.Atoi(fields[1])
	if err != nil {
		return Tuple{}, &ParseError{Input: s, Expected: "YYYY DDD sssss"}
	}
	secs, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Tuple{}, &ParseError{Input: s, Expected: "YYYY DDD sssss"}
	}
	t := Tuple{Year: year, YearDay: yearDay, Seconds: secs}
	if err := t.Validate(); err != nil {
		return Tuple{}, err
	}
	return t, nil
}

// IncrementString advances a VSR filename time string by the configured
// emission interval, preserving the fixed-width zero-padded format. The
// rollover cascades across day and year boundaries.
func IncrementString(s string, cfg Config) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	t, err = Increment(t, cfg)
	if err != nil {
		return "", err
	}
	return Format(t, cfg), nil
}

// StringToISO converts a VSR filename time string to an extended ISO
// timestamp YYYY-MM-DDTHH:MM:SS.
func StringToISO(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	instant, err := t.Time()
	if err != nil {
		return "", err
	}
	return epoch.FormatISOTime(instant), nil
}

// ScriptTimeToUnix converts a VSR script timestamp "DDD/HH:MM:SS" within
// the given year to a UNIX timestamp.
func ScriptTimeToUnix(year int, s string) (float64, error) {
	doyStr, clockStr, ok := strings.Cut(s, "/")
	if !ok {
		return 0, &ParseError{Input: s, Expected: "DDD/HH:MM:SS"}
	}
	yearDay, err := strconv.Atoi(doyStr)
	if err != nil {
		return 0, &ParseError{Input: s, Expected: "DDD/HH:MM:SS"}
	}
	h, m, sec, err := splitClock(clockStr)
	if err != nil {
		return 0, &ParseError{Input: s, Expected: "DDD/HH:MM:SS"}
	}
	t := Tuple{Year: year, YearDay: yearDay, Seconds: float64(3600*h + 60*m + sec)}
	return t.Unix()
}

// WScriptTimeToUnix converts a WVSR-style pair like ("16/237", "08:45:01")
// to a UNIX timestamp. The two-digit year is taken to be in the 2000s.
func WScriptTimeToUnix(yrDoy, clockStr string) (float64, error) {
	yrStr, doyStr, ok := strings.Cut(yrDoy, "/")
	if !ok {
		return 0, &ParseError{Input: yrDoy, Expected: "YY/DDD"}
	}
	yr, err := strconv.Atoi(yrStr)
	if err != nil || yr < 0 || yr > 99 {
		return 0, &ParseError{Input: yrDoy, Expected: "YY/DDD"}
	}
	return ScriptTimeToUnix(2000+yr, doyStr+"/"+clockStr)
}

// MacroLogTimeToUnix converts a macro log timestamp "DDD_HH:MM:SS" within
// the given year to a UNIX timestamp.
func MacroLogTimeToUnix(year int, s string) (float64, error) {
	return ScriptTimeToUnix(year, strings.Replace(s, "_", "/", 1))
}

func splitClock(s string) (h, m, sec int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want HH:MM:SS, got %q", s)
	}
	h, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, err
	}
	sec, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, 0, 0, fmt.Errorf("clock fields out of range in %q", s)
	}
	return h, m, sec, nil
}
