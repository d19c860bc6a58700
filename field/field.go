package field

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownField is returned by Lookup for an unregistered name.
var ErrUnknownField = errors.New("field: unknown field name")

// Field is a time-varying scalar function of the plane.
type Field interface {
	// Evaluate returns the field value at (x, y) for time t.
	Evaluate(x, y, t float64) float64
}

// Func is an adapter that lets an ordinary function act as a Field.
type Func func(x, y, t float64) float64

// Evaluate calls f(x, y, t).
func (f Func) Evaluate(x, y, t float64) float64 { return f(x, y, t) }

// Wave is cos(x·t) + sin(y·t). At t=0 it is the constant 1.
var Wave Field = Func(func(x, y, t float64) float64 {
	return math.Cos(x*t) + math.Sin(y*t)
})

// Ripple is a circular wave sin(k·r − t) travelling outward from the origin.
func Ripple(k float64) Field {
	return Func(func(x, y, t float64) float64 {
		return math.Sin(k*math.Hypot(x, y) - t)
	})
}

// Constant returns a field that is v everywhere and at all times.
func Constant(v float64) Field {
	return Func(func(_, _, _ float64) float64 { return v })
}

var registry = map[string]Field{
	"wave":   Wave,
	"ripple": Ripple(4),
	"zero":   Constant(0),
}

// Lookup returns the built-in field registered under name.
func Lookup(name string) (Field, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	return f, nil
}

// Names lists the registered field names in ascending order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
