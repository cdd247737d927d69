package boson

import "github.com/stewi1014/boson/registry"

// RegisterRecord makes zero's concrete struct type resolvable by name
// during record decode. It must be called once per type, typically from an
// init function, before any value of that type is decoded; it is safe to
// call from concurrent goroutines.
func RegisterRecord(zero any) {
	registry.RegisterRecord(zero)
}

// RegisterEnum makes zero's concrete type resolvable by name during enum
// decode, matching decoded constant text against the String() form of each
// value in values. zero's type must implement fmt.Stringer.
func RegisterEnum(zero any, values ...any) {
	registry.RegisterEnum(zero, values...)
}
