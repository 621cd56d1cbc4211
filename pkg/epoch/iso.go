package epoch

import (
	"fmt"
	"strings"
	"time"

	"github.com/SDRAST/DatesTimes/pkg/calendar"
)

// ISO time layouts recognized by ParseISO. The layout is selected from the
// shape of the input (position of 'T', separators, length) before parsing,
// so a malformed string fails instead of matching a nearby format.
const (
	layoutCompact      = "20060102T150405"       // YYYYMMDDTHHMMSS
	layoutExtended     = "2006-01-02T15:04:05"   // YYYY-MM-DDTHH:MM:SS
	layoutExtendedHM   = "2006-01-02T15:04"      // YYYY-MM-DDTHH:MM
	layoutOrdinal      = "2006-002T15:04:05"     // YYYY-DDDTHH:MM:SS
	layoutOrdinalHM    = "2006-002T15:04"        // YYYY-DDDTHH:MM
	layoutOrdCompact   = "2006002T150405"        // YYYYDDDTHHMMSS
	layoutOrdCompactHM = "2006002T1504"          // YYYYDDDTHHMM
	layoutSpace        = "2006-01-02 15:04:05"   // YYYY-MM-DD HH:MM:SS
	layoutSpaceFrac    = "2006-01-02 15:04:05.999999"
)

// ParseISO parses an ISO-style time string into a UTC instant. It accepts
// the calendar forms YYYYMMDDTHHMMSS, YYYY-MM-DDTHH:MM(:SS) and
// YYYY-MM-DD HH:MM:SS(.ffffff), and the ordinal forms YYYY-DDDTHH:MM(:SS)
// and YYYYDDDTHHMM(SS). Any other shape is a ParseError.
func ParseISO(s string) (time.Time, error) {
	layout := isoLayout(s)
	if layout == "" {
		return time.Time{}, &ParseError{Input: s, Expected: "ISO time"}
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, &ParseError{Input: s, Expected: "ISO time"}
	}
	return t.UTC(), nil
}

func isoLayout(s string) string {
	idxT := strings.IndexByte(s, 'T')
	if idxT >= 0 {
		if strings.Contains(s, ":") {
			if strings.Contains(s, "-") {
				switch {
				case idxT == 10 && len(s) == 19:
					return layoutExtended
				case idxT == 10 && len(s) == 16:
					return layoutExtendedHM
				case idxT == 8 && len(s) == 17:
					return layoutOrdinal
				case idxT == 8 && len(s) == 14:
					return layoutOrdinalHM
				}
			}
			return ""
		}
		switch {
		case idxT == 8 && len(s) == 15:
			return layoutCompact
		case idxT == 7 && len(s) == 14:
			return layoutOrdCompact
		case idxT == 7 && len(s) == 12:
			return layoutOrdCompactHM
		}
		return ""
	}
	if strings.Contains(s, ".") {
		return layoutSpaceFrac
	}
	if strings.Contains(s, " ") {
		return layoutSpace
	}
	return ""
}

// FormatISO combines a year, day of year and a clock string ("HH:MM:SS" or
// "HH:MM") into an extended ISO timestamp YYYY-MM-DDTHH:MM:SS.
func FormatISO(year, yearDay int, clockStr string) (string, error) {
	d, err := calendar.FromYearDay(year, float64(yearDay))
	if err != nil {
		return "", err
	}
	switch strings.Count(clockStr, ":") {
	case 1:
		clockStr += ":00"
	case 2:
	default:
		return "", &ParseError{Input: clockStr, Expected: "HH:MM:SS"}
	}
	if _, err := time.Parse("15:04:05", clockStr); err != nil {
		return "", &ParseError{Input: clockStr, Expected: "HH:MM:SS"}
	}
	return fmt.Sprintf("%04d-%02d-%02dT%s", d.Year, d.Month, d.Day, clockStr), nil
}

// FormatISOTime formats a UTC instant as YYYY-MM-DDTHH:MM:SS.
func FormatISOTime(t time.Time) string {
	return t.Format(layoutExtended)
}
