package calendar

import "fmt"

// InvalidDateError reports a calendar field outside its valid range for the
// given year. An invalid date is never resolved to a nearby valid one.
type InvalidDateError struct {
	Year    int
	Month   int
	Day     int
	YearDay float64
}

func (e *InvalidDateError) Error() string {
	switch {
	case e.YearDay != 0:
		return fmt.Sprintf("invalid date: day %g of year %d", e.YearDay, e.Year)
	case e.Day != 0:
		return fmt.Sprintf("invalid date: %04d-%02d-%02d", e.Year, e.Month, e.Day)
	default:
		return fmt.Sprintf("invalid date: month %d of year %d", e.Month, e.Year)
	}
}

// ParseError reports an input string that does not match the expected
// date format.
type ParseError struct {
	Input    string
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Expected)
}
