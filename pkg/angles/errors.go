package angles

import "fmt"

// ParseError reports an input string that does not match any recognized
// sexagesimal or IAU name format.
type ParseError struct {
	Input    string
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Expected)
}

// RangeError reports a coordinate or clock field outside its valid domain.
type RangeError struct {
	Quantity string
	Value    float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range: %g", e.Quantity, e.Value)
}
