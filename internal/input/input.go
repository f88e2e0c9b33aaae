// Package input provides parsing and constraint validation for raw
// parameter text entered at the interactive prompts.
package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Reason classifies why a raw input was rejected.
type Reason string

const (
	// NotANumber means the input could not be parsed as a number at all.
	NotANumber Reason = "not_a_number"
	// WrongType means the input parsed as a number but has the wrong
	// numeric type, e.g. a decimal where an integer is required.
	WrongType Reason = "wrong_type"
	// OutOfRange means the input parsed but violates a bound.
	OutOfRange Reason = "out_of_range"
)

// InvalidInputError describes a rejected parameter value. It is the only
// user-facing error kind; callers recover by re-prompting.
type InvalidInputError struct {
	// Param is the parameter name the input was offered for, e.g. "k".
	Param string
	// Raw is the original input text.
	Raw string
	// Reason classifies the violation.
	Reason Reason
	// Detail is a human-readable description of the violated constraint.
	Detail string
}

// Error returns the violation description prefixed with the parameter name.
//
// Postcondition: Returns a non-empty string naming e.Param.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Param, e.Detail)
}

// Constraint describes the admissible values for a single parameter.
// A nil Min/Max leaves that side unbounded.
type Constraint struct {
	// Integer requires a whole number; decimals are rejected as WrongType.
	Integer bool
	// Min is the lower bound, inclusive unless MinExclusive is set.
	Min *float64
	// Max is the upper bound, inclusive unless MaxExclusive is set.
	Max *float64
	// MinExclusive makes Min a strict bound.
	MinExclusive bool
	// MaxExclusive makes Max a strict bound.
	MaxExclusive bool
}

// Bound returns a pointer to v, for use as a Constraint Min or Max.
func Bound(v float64) *float64 { return &v }

// Describe returns a short human-readable rendering of the constraint,
// e.g. "integer >= 0" or "0 <= value <= 1". Used in prompt hints and
// error messages.
//
// Postcondition: Returns a non-empty string.
func (c Constraint) Describe() string {
	kind := "value"
	if c.Integer {
		kind = "integer"
	}
	switch {
	case c.Min != nil && c.Max != nil:
		return fmt.Sprintf("%s %s %s %s %s",
			formatBound(*c.Min), relation(c.MinExclusive), kind,
			relation(c.MaxExclusive), formatBound(*c.Max))
	case c.Min != nil:
		return fmt.Sprintf("%s %s %s", kind, inverse(c.MinExclusive), formatBound(*c.Min))
	case c.Max != nil:
		return fmt.Sprintf("%s %s %s", kind, relation(c.MaxExclusive), formatBound(*c.Max))
	default:
		return "any " + kind
	}
}

func relation(exclusive bool) string {
	if exclusive {
		return "<"
	}
	return "<="
}

func inverse(exclusive bool) string {
	if exclusive {
		return ">"
	}
	return ">="
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// check validates an already-parsed value against the bounds.
func (c Constraint) check(param, raw string, v float64) error {
	if c.Min != nil {
		if v < *c.Min || (c.MinExclusive && v == *c.Min) {
			return &InvalidInputError{
				Param: param, Raw: raw, Reason: OutOfRange,
				Detail: fmt.Sprintf("must be %s %s", inverse(c.MinExclusive), formatBound(*c.Min)),
			}
		}
	}
	if c.Max != nil {
		if v > *c.Max || (c.MaxExclusive && v == *c.Max) {
			return &InvalidInputError{
				Param: param, Raw: raw, Reason: OutOfRange,
				Detail: fmt.Sprintf("must be %s %s", relation(c.MaxExclusive), formatBound(*c.Max)),
			}
		}
	}
	return nil
}

// ParseFloat parses raw as a real number and validates it against c.
//
// Precondition: param must be non-empty.
// Postcondition: Returns the parsed value, or a *InvalidInputError
// describing the first violated constraint.
func ParseFloat(param, raw string, c Constraint) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &InvalidInputError{
			Param: param, Raw: raw, Reason: NotANumber,
			Detail: "must be a valid number",
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidInputError{
			Param: param, Raw: raw, Reason: NotANumber,
			Detail: "must be a finite number",
		}
	}
	if err := c.check(param, raw, v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseInt parses raw as an integer and validates it against c.
// A decimal form such as "1.5" is rejected as WrongType rather than
// NotANumber, so the user sees that the shape, not the digits, is wrong.
//
// Precondition: param must be non-empty.
// Postcondition: Returns the parsed value, or a *InvalidInputError
// describing the first violated constraint.
func ParseInt(param, raw string, c Constraint) (int, error) {
	trimmed := strings.TrimSpace(raw)
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		if _, ferr := strconv.ParseFloat(trimmed, 64); ferr == nil {
			return 0, &InvalidInputError{
				Param: param, Raw: raw, Reason: WrongType,
				Detail: "must be a whole number, not a decimal",
			}
		}
		return 0, &InvalidInputError{
			Param: param, Raw: raw, Reason: NotANumber,
			Detail: "must be a valid whole number",
		}
	}
	if err := c.check(param, raw, float64(v)); err != nil {
		return 0, err
	}
	return v, nil
}
