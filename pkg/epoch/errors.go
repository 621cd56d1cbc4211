package epoch

import "fmt"

// ParseError reports a time string that does not match any recognized
// format for the target parser.
type ParseError struct {
	Input    string
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Expected)
}

// RangeError reports a numeric input outside the domain a conversion is
// valid for.
type RangeError struct {
	Quantity string
	Value    float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range: %g", e.Quantity, e.Value)
}
