// Package julian converts between (year, day of year) and Julian Date,
// the day count astronomers use to avoid calendar complexities, along with
// the Modified Julian Date forms used in DSN data products.
//
// Julian Date is the number of days since -4713-11-24 12:00:00 UT; day
// boundaries fall at noon, so Date(-4713, 328.5) is exactly 0.
package julian

import (
	"math"

	"github.com/SDRAST/DatesTimes/pkg/calendar"
)

const (
	// MJDOffset converts between Julian Date and Modified Julian Date:
	// MJD = JD - MJDOffset.
	MJDOffset = 2400000.5

	// UnixEpochMJD is the Modified Julian Date of 1970-01-01 00:00:00 UT.
	UnixEpochMJD = 40587

	secondsPerDay = 86400.0
)

// Date returns the Julian Date for a year and (possibly fractional) day of
// year. Leap days are counted with floor division so the closed form also
// holds for negative years.
func Date(year int, yearDay float64) float64 {
	prev := year - 1
	century := floorDiv(prev, 100)
	leaps := floorDiv(prev, 4) - century + floorDiv(century, 4)
	return 1721425.0 + 365.0*float64(prev) + float64(leaps) - 0.5 + yearDay
}

// YearDay inverts Date, recovering the year and fractional day of year of a
// Julian Date.
func YearDay(jd float64) (year int, yearDay float64) {
	year = int(math.Floor((jd-1721425.5)/365.2425)) + 1
	for {
		yearDay = jd - Date(year, 0)
		if yearDay < 1 {
			year--
			continue
		}
		if yearDay >= float64(calendar.DaysInYear(year))+1 {
			year++
			continue
		}
		return year, yearDay
	}
}

// MJD returns the Modified Julian Date at 00:00:00 UT of a calendar date.
// MJD(1858, 11, 17) is 0 and MJD(1970, 1, 1) is 40587.
func MJD(year, month, day int) (float64, error) {
	doy, err := calendar.YearDay(year, month, day)
	if err != nil {
		return 0, err
	}
	return MJDFromYearDay(year, float64(doy)), nil
}

// MJDFromYearDay returns the Modified Julian Date for a year and fractional
// day of year.
func MJDFromYearDay(year int, yearDay float64) float64 {
	return Date(year, yearDay) - MJDOffset
}

// MJDFromUnix converts a UNIX timestamp to a fractional Modified Julian Date.
func MJDFromUnix(ts float64) float64 {
	return UnixEpochMJD + ts/secondsPerDay
}

// MJDToUnix converts a fractional Modified Julian Date to a UNIX timestamp.
func MJDToUnix(mjd float64) float64 {
	return (mjd - UnixEpochMJD) * secondsPerDay
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
