package tempconv

import (
	"errors"
	"fmt"
)

// ErrBelowAbsoluteZero is the failure underlying every [ValidationError].
var ErrBelowAbsoluteZero = errors.New("below absolute zero")

// A ValidationError reports a value below absolute zero for its stated
// unit. It carries the offending value, the unit's full name, and the
// unit's absolute-zero threshold.
type ValidationError struct {
	Value     float64
	Unit      string
	Threshold float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("value %v is %v for %s (%v)", e.Value, ErrBelowAbsoluteZero, e.Unit, e.Threshold)
}

func (e *ValidationError) Unwrap() error {
	return ErrBelowAbsoluteZero
}

// A Request is a single conversion of Value, interpreted in From, to To.
// Requests are plain values and hold no state between conversions.
type Request struct {
	Value float64
	From  Unit
	To    Unit
}

// A Result pairs the converted value with the request that produced it.
type Result struct {
	Value     float64
	From      Unit
	Converted float64
	To        Unit
}

// String renders the result to two decimal places,
// e.g. "32.00°Fahrenheit is 0.00°Celsius".
// Rounding happens only here, never in the conversion itself.
func (r Result) String() string {
	return fmt.Sprintf("%.2f°%s is %.2f°%s", r.Value, r.From.Name(), r.Converted, r.To.Name())
}

// Convert validates the request and converts its value. Values at or
// above the source unit's absolute zero are valid; anything lower fails
// with a [ValidationError]. All conversions are routed through Celsius,
// so the three units need only a to-Celsius and a from-Celsius formula
// instead of a pairwise table.
func (r Request) Convert() (Result, error) {
	if min := r.From.AbsoluteZero(); r.Value < min {
		return Result{}, &ValidationError{
			Value:     r.Value,
			Unit:      r.From.Name(),
			Threshold: min,
		}
	}

	return Result{
		Value:     r.Value,
		From:      r.From,
		Converted: r.To.FromCelsius(r.From.ToCelsius(r.Value)),
		To:        r.To,
	}, nil
}

// Convert converts value, interpreted in from, to to. It is shorthand
// for building a [Request] and returning only the converted value.
func Convert(value float64, from, to Unit) (float64, error) {
	res, err := Request{Value: value, From: from, To: to}.Convert()
	if err != nil {
		return 0, err
	}

	return res.Converted, nil
}
