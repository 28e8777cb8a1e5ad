package tempconv

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// A Unit is one of the supported temperature scales. Units are tagged
// with their single-letter code, so a Unit may be compared directly
// against the corresponding byte. The zero value is not a valid Unit.
type Unit byte

const (
	Celsius    Unit = 'C'
	Fahrenheit Unit = 'F'
	Kelvin     Unit = 'K'
)

// Absolute zero expressed in each supported unit.
const (
	AbsoluteZeroCelsius    = -273.15
	AbsoluteZeroFahrenheit = -459.67
	AbsoluteZeroKelvin     = 0.0
)

// Units returns the supported units, ordered by code.
func Units() []Unit {
	return []Unit{Celsius, Fahrenheit, Kelvin}
}

// ParseUnit returns the Unit named by s, ignoring case. It accepts both
// the single-letter code and the full name of the unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "k", "kelvin":
		return Kelvin, nil
	}

	return 0, fmt.Errorf("unknown temperature unit %q", s)
}

// AbsoluteZero returns the lowest physically valid value expressible in u.
func (u Unit) AbsoluteZero() float64 {
	switch u {
	case Celsius:
		return AbsoluteZeroCelsius
	case Fahrenheit:
		return AbsoluteZeroFahrenheit
	case Kelvin:
		return AbsoluteZeroKelvin
	}

	panic("tempconv: unknown temperature unit")
}

// Code returns the single-letter code of u, e.g. "c" for Celsius.
func (u Unit) Code() string {
	return strings.ToLower(string([]byte{byte(u)}))
}

// Name returns the full human-readable name of u.
func (u Unit) Name() string {
	switch u {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	case Kelvin:
		return "Kelvin"
	}

	panic("tempconv: unknown temperature unit")
}

// String returns the same name as [Unit.Name].
func (u Unit) String() string { return u.Name() }

// ToCelsius converts v, interpreted in u, to Celsius.
func (u Unit) ToCelsius(v float64) float64 {
	switch u {
	case Celsius:
		return v
	case Fahrenheit:
		return (v - 32) * 5 / 9
	case Kelvin:
		return v - 273.15
	}

	panic("tempconv: unknown temperature unit")
}

// FromCelsius converts the Celsius value c to u.
func (u Unit) FromCelsius(c float64) float64 {
	switch u {
	case Celsius:
		return c
	case Fahrenheit:
		return (c * 9 / 5) + 32
	case Kelvin:
		return c + 273.15
	}

	panic("tempconv: unknown temperature unit")
}

// AppendText implements [encoding.TextAppender]
// by appending the full name of u.
func (u Unit) AppendText(b []byte) ([]byte, error) {
	return append(b, u.Name()...), nil
}

// MarshalText implements [encoding.TextMarshaler]
// by calling [Unit.AppendText].
func (u Unit) MarshalText() ([]byte, error) {
	return u.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It accepts anything accepted by [ParseUnit].
func (u *Unit) UnmarshalText(data []byte) error {
	v, err := ParseUnit(string(data))
	if err != nil {
		return err
	}

	*u = v

	return nil
}

// UnmarshalYAML implements [gopkg.in/yaml.v3.Unmarshaler].
// It accepts anything accepted by [ParseUnit].
func (u *Unit) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return u.UnmarshalText([]byte(s))
}

// MarshalYAML implements [gopkg.in/yaml.v3.Marshaler]
// by encoding the full name of u.
func (u Unit) MarshalYAML() (any, error) {
	return u.Name(), nil
}

// UnitFlag implements the interfaces needed to be used as a command-line flag.
type UnitFlag Unit

func (uf *UnitFlag) String() string {
	return Unit(*uf).Name()
}

func (uf *UnitFlag) Set(s string) error {
	return (*Unit)(uf).UnmarshalText([]byte(s))
}

func (uf *UnitFlag) Get() any {
	return Unit(*uf)
}

func (uf *UnitFlag) Type() string {
	return "unit"
}

func (uf *UnitFlag) UnmarshalText(b []byte) error {
	return (*Unit)(uf).UnmarshalText(b)
}
