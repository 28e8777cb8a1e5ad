// Package tempconv converts temperature values between Celsius,
// Fahrenheit, and Kelvin.
//
// Conversion is a pure function of the value and the two units. Values
// below the source unit's absolute zero are rejected with a
// [ValidationError]; the threshold itself is a valid value. All
// conversions pivot through Celsius.
//
// The tempconv command wraps this package. When no unit flags are given,
// its defaults are determined by the following environment variables:
//
//   - source unit: $TEMPCONV_UNIT
//   - target unit: $TEMPCONV_CONVERT
//
// Full documentation is available at:
// https://pkg.go.dev/github.com/lone-faerie/tempconv
package tempconv
