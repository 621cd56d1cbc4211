// Package calendar implements the proleptic Gregorian calendar arithmetic
// that the other conversion packages are built on: the leap-year rule,
// day-of-year and calendar-date conversions, day-of-week and week numbers.
//
// All functions apply the Gregorian leap-year rule uniformly to zero and
// negative years; there is no Julian/Gregorian switchover modeling.
package calendar

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SDRAST/DatesTimes/pkg/clock"
)

// Date is a calendar date. Year may be negative (proleptic Gregorian).
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// String formats the date as YYYY-MM-DD, the form used by session logs.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// daysBefore[m] is the number of days in a non-leap year before month m+1
// begins.
var daysBefore = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// daysInMonth[m] is the length of month m+1 in a non-leap year.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year: divisible by 4 and
// either not divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	if year%100 == 0 {
		return year%400 == 0
	}
	return year%4 == 0
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month of year, or an
// InvalidDateError if month is outside 1-12.
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, &InvalidDateError{Year: year, Month: month}
	}
	n := daysInMonth[month-1]
	if month == 2 && IsLeapYear(year) {
		n = 29
	}
	return n, nil
}

// YearDay returns the day of year for a calendar date, where Jan 1 is day 1.
// It returns an InvalidDateError if month or day is out of range for the
// given year.
func YearDay(year, month, day int) (int, error) {
	monthLen, err := DaysInMonth(year, month)
	if err != nil {
		return 0, err
	}
	if day < 1 || day > monthLen {
		return 0, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	doy := daysBefore[month-1] + day
	if month > 2 && IsLeapYear(year) {
		doy++
	}
	return doy, nil
}

// FromYearDay is the inverse of YearDay. A fractional yearDay is accepted;
// the fraction encodes time of day and is ignored for the date part (use
// DayFraction to recover it). It returns an InvalidDateError if yearDay is
// below 1 or its integer part exceeds the length of the year.
func FromYearDay(year int, yearDay float64) (Date, error) {
	doy := int(math.Floor(yearDay))
	if yearDay < 1 || doy > DaysInYear(year) {
		return Date{}, &InvalidDateError{Year: year, YearDay: yearDay}
	}
	leapShift := 0
	if IsLeapYear(year) {
		leapShift = 1
	}
	month := 12
	for m := 1; m < 12; m++ {
		bound := daysBefore[m]
		if m >= 2 {
			bound += leapShift
		}
		if doy <= bound {
			month = m
			break
		}
	}
	day := doy - daysBefore[month-1]
	if month > 2 {
		day -= leapShift
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DayFraction returns the time-of-day part of a fractional day of year,
// as a fraction of a day in [0, 1).
func DayFraction(yearDay float64) float64 {
	return yearDay - math.Floor(yearDay)
}

// Weekday anchor: 1970-01-01 (day of year 1) was a Thursday.
const (
	anchorYear    = 1970
	anchorWeekday = 4 // 0 = Sunday
)

// DayOfWeek returns the day of week for a day of year, 0 = Sunday through
// 6 = Saturday. The result is derived by projecting the number of elapsed
// days from the 1970-01-01 Thursday anchor, leap days included.
func DayOfWeek(year, yearDay int) (int, error) {
	if yearDay < 1 || yearDay > DaysInYear(year) {
		return 0, &InvalidDateError{Year: year, YearDay: float64(yearDay)}
	}
	elapsed := daysBeforeYear(year) - daysBeforeYear(anchorYear) + yearDay - 1
	return ((elapsed%7+7)%7 + anchorWeekday) % 7, nil
}

// WeekNumber returns the 1-based week number for a day of year. Weeks begin
// on Sunday. Week 1 is the first week fully inside the year, so days before
// the year's first Sunday belong to week 52 of the previous year.
func WeekNumber(year, yearDay int) (int, error) {
	jan1, err := DayOfWeek(year, 1)
	if err != nil {
		return 0, err
	}
	if yearDay < 1 || yearDay > DaysInYear(year) {
		return 0, &InvalidDateError{Year: year, YearDay: float64(yearDay)}
	}
	firstSunday := 1 + (7-jan1)%7
	if yearDay < firstSunday {
		return 52, nil
	}
	return 1 + (yearDay-firstSunday)/7, nil
}

// CurrentWeek returns the week number and year of the instant read from clk.
func CurrentWeek(clk clock.Clock) (week, year int) {
	now := clk.Now()
	week, _ = WeekNumber(now.Year(), now.YearDay())
	return week, now.Year()
}

// ParseDate parses a session date of the form YYYY-MM-DD and returns the
// date and its day of year. A single trailing letter on the day (session
// suffix, e.g. "2015-12-19a") is ignored.
func ParseDate(s string) (Date, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, 0, &ParseError{Input: s, Expected: "YYYY-MM-DD"}
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, 0, &ParseError{Input: s, Expected: "YYYY-MM-DD"}
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, 0, &ParseError{Input: s, Expected: "YYYY-MM-DD"}
	}
	dayStr := strings.TrimRight(parts[2], "abcdefghijklmnopqrstuvwxyz")
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return Date{}, 0, &ParseError{Input: s, Expected: "YYYY-MM-DD"}
	}
	doy, err := YearDay(year, month, day)
	if err != nil {
		return Date{}, 0, err
	}
	return Date{Year: year, Month: month, Day: day}, doy, nil
}

// DateCode formats the year-midfix-doy pattern used in log file names,
// e.g. DateCode(2015, "_", 7) == "2015_007".
func DateCode(year int, midfix string, yearDay int) string {
	return fmt.Sprintf("%d%s%03d", year, midfix, yearDay)
}

// daysBeforeYear returns the number of days from 0001-01-01 to January 1 of
// year in the proleptic Gregorian calendar.
func daysBeforeYear(year int) int {
	y := year - 1
	return 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
}

// floorDiv divides rounding toward negative infinity, which the leap-day
// counts need for years before the epoch.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
