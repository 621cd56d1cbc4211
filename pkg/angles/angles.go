// Package angles converts between the sexagesimal string forms used in DSN
// schedules and logs (HHMM, DDMM, HH:MM:SS) and decimal degrees or seconds,
// and formats IAU position-based source names.
package angles

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HHMMToDegrees converts a right-ascension string HHMM to decimal degrees
// (15 degrees per hour).
func HHMMToDegrees(s string) (float64, error) {
	if len(s) != 4 || !allDigits(s) {
		return 0, &ParseError{Input: s, Expected: "HHMM"}
	}
	hh, _ := strconv.Atoi(s[0:2])
	mm, _ := strconv.Atoi(s[2:4])
	if hh > 23 {
		return 0, &RangeError{Quantity: "hours", Value: float64(hh)}
	}
	if mm > 59 {
		return 0, &RangeError{Quantity: "minutes", Value: float64(mm)}
	}
	return 15 * (float64(hh) + float64(mm)/60), nil
}

// DDDMMToDegrees converts a declination-like string of degrees and minutes,
// with an optional leading sign, to decimal degrees. The final two digits
// are minutes; the rest are degrees.
func DDDMMToDegrees(s string) (float64, error) {
	sign, digits := splitSign(s)
	if len(digits) < 3 || len(digits) > 5 || !allDigits(digits) {
		return 0, &ParseError{Input: s, Expected: "DDMM or DDDMM with optional sign"}
	}
	deg, _ := strconv.Atoi(digits[:len(digits)-2])
	mm, _ := strconv.Atoi(digits[len(digits)-2:])
	if mm > 59 {
		return 0, &RangeError{Quantity: "minutes", Value: float64(mm)}
	}
	return sign * (float64(deg) + float64(mm)/60), nil
}

// HHMMSSToSeconds converts a colon-separated clock string, HH:MM:SS or
// HH:MM, to seconds since midnight.
func HHMMSSToSeconds(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, &ParseError{Input: s, Expected: "HH:MM:SS or HH:MM"}
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, &ParseError{Input: s, Expected: "HH:MM:SS or HH:MM"}
		}
		vals[i] = v
	}
	if vals[0] > 23 || vals[1] > 59 || vals[2] > 59 {
		return 0, &RangeError{Quantity: "clock field", Value: float64(max3(vals))}
	}
	return float64((vals[0]*60+vals[1])*60 + vals[2]), nil
}

// SexagesimalToDecimal converts a packed sexagesimal number such as HHMMSS
// or +/-DDMMSS, with an optional fractional part on the seconds, to a
// decimal value in the leading unit (hours or degrees).
func SexagesimalToDecimal(s string) (float64, error) {
	sign, rest := splitSign(s)
	intPart, frac, _ := strings.Cut(rest, ".")
	if len(intPart) < 4 || len(intPart) > 6 || !allDigits(intPart) {
		return 0, &ParseError{Input: s, Expected: "HHMMSS or +/-DDMMSS"}
	}
	if frac != "" && !allDigits(frac) {
		return 0, &ParseError{Input: s, Expected: "HHMMSS or +/-DDMMSS"}
	}
	// Work from the back: the last four digits are minutes and seconds.
	intPart = strings.Repeat("0", 6-len(intPart)) + intPart
	hh, _ := strconv.Atoi(intPart[0:2])
	mm, _ := strconv.Atoi(intPart[2:4])
	ss, _ := strconv.ParseFloat(intPart[4:6]+"."+frac+"0", 64)
	if mm > 59 {
		return 0, &RangeError{Quantity: "minutes", Value: float64(mm)}
	}
	if ss >= 60 {
		return 0, &RangeError{Quantity: "seconds", Value: ss}
	}
	return sign * (float64(hh) + float64(mm)/60 + ss/3600), nil
}

// HHMMClock formats the clock part of a UTC instant as HHMM, the form used
// in DSN schedules.
func HHMMClock(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%02d%02d", t.Hour(), t.Minute())
}

// ParseHHMM parses a DSN schedule time string HHMM into hours and minutes.
func ParseHHMM(s string) (h, m int, err error) {
	if len(s) != 4 || !allDigits(s) {
		return 0, 0, &ParseError{Input: s, Expected: "HHMM"}
	}
	h, _ = strconv.Atoi(s[0:2])
	m, _ = strconv.Atoi(s[2:4])
	if h > 23 || m > 59 {
		return 0, 0, &RangeError{Quantity: "clock field", Value: float64(h*100 + m)}
	}
	return h, m, nil
}

// ParseClock parses an EAC/RAC log time string HH:MM:SS into hours,
// minutes and seconds.
func ParseClock(s string) (h, m, sec int, err error) {
	t, perr := time.Parse("15:04:05", s)
	if perr != nil {
		return 0, 0, 0, &ParseError{Input: s, Expected: "HH:MM:SS"}
	}
	return t.Hour(), t.Minute(), t.Second(), nil
}

func splitSign(s string) (float64, string) {
	switch {
	case strings.HasPrefix(s, "-"):
		return -1, s[1:]
	case strings.HasPrefix(s, "+"):
		return 1, s[1:]
	default:
		return 1, s
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func max3(v []int) int {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
