package vsr

import "fmt"

// ParseError reports an input string that does not match the expected VSR
// time format.
type ParseError struct {
	Input    string
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Expected)
}

// RangeError reports a numeric field outside the domain a VSR conversion
// is valid for, e.g. negative seconds since midnight.
type RangeError struct {
	Quantity string
	Value    float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range: %g", e.Quantity, e.Value)
}
