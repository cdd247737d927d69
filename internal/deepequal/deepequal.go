// Package deepequal provides a cycle-safe structural equality check for use
// in tests. reflect.DeepEqual on values reachable through pointers/maps/
// slices that form a cycle can, depending on the shape, recurse very deeply
// comparing the same pair of objects over and over; this tracks visited
// pointer pairs so tests can compare graphs produced by round-tripping
// cyclic records without that risk.
package deepequal

import "reflect"

// visit records a pair of pointer-like values already being compared, so a
// cycle short-circuits to "equal" instead of recursing forever.
type visit struct {
	a1, a2 uintptr
	typ    reflect.Type
}

// Equal reports whether x and y are deeply equal, tolerating cycles and
// shared substructure in the graphs reachable from x and y.
func Equal(x, y any) bool {
	if x == nil || y == nil {
		return x == y
	}
	v1 := reflect.ValueOf(x)
	v2 := reflect.ValueOf(y)
	if v1.Type() != v2.Type() {
		return false
	}
	return deepValueEqual(v1, v2, make(map[visit]bool))
}

func deepValueEqual(v1, v2 reflect.Value, visited map[visit]bool) bool {
	if !v1.IsValid() || !v2.IsValid() {
		return v1.IsValid() == v2.IsValid()
	}
	if v1.Type() != v2.Type() {
		return false
	}

	if hard(v1, v2) {
		addr1, addr2 := v1.Pointer(), v2.Pointer()
		if addr1 == addr2 {
			// Same underlying storage; further comparison of aliased
			// content is guaranteed equal, and skipping it is exactly
			// what breaks the potential cycle.
			return true
		}
		if addr1 > addr2 {
			addr1, addr2 = addr2, addr1
		}
		key := visit{addr1, addr2, v1.Type()}
		if visited[key] {
			return true
		}
		visited[key] = true
	}

	switch v1.Kind() {
	case reflect.Array:
		for i := 0; i < v1.Len(); i++ {
			if !deepValueEqual(v1.Index(i), v2.Index(i), visited) {
				return false
			}
		}
		return true

	case reflect.Slice:
		if v1.IsNil() != v2.IsNil() {
			return false
		}
		if v1.Len() != v2.Len() {
			return false
		}
		for i := 0; i < v1.Len(); i++ {
			if !deepValueEqual(v1.Index(i), v2.Index(i), visited) {
				return false
			}
		}
		return true

	case reflect.Interface:
		if v1.IsNil() || v2.IsNil() {
			return v1.IsNil() == v2.IsNil()
		}
		return deepValueEqual(v1.Elem(), v2.Elem(), visited)

	case reflect.Ptr:
		if v1.Pointer() == v2.Pointer() {
			return true
		}
		return deepValueEqual(v1.Elem(), v2.Elem(), visited)

	case reflect.Struct:
		for i, n := 0, v1.NumField(); i < n; i++ {
			if !deepValueEqual(v1.Field(i), v2.Field(i), visited) {
				return false
			}
		}
		return true

	case reflect.Map:
		if v1.IsNil() != v2.IsNil() {
			return false
		}
		if v1.Len() != v2.Len() {
			return false
		}
		iter := v1.MapRange()
		for iter.Next() {
			val2 := v2.MapIndex(iter.Key())
			if !val2.IsValid() || !deepValueEqual(iter.Value(), val2, visited) {
				return false
			}
		}
		return true

	case reflect.Func:
		return v1.IsNil() && v2.IsNil()

	default:
		return safeInterface(v1) == safeInterface(v2)
	}
}

// hard reports whether v1/v2 need cycle tracking: only reference-like kinds
// with a stable pointer can participate in a cycle.
func hard(v1, v2 reflect.Value) bool {
	switch v1.Kind() {
	case reflect.Map, reflect.Ptr:
		return !v1.IsNil() && !v2.IsNil()
	}
	return false
}

// safeInterface returns v's value for comparison with ==, which panics for
// unexported fields; those compare equal here since exported-field equality
// already dominates records produced by this package's own decoder.
func safeInterface(v reflect.Value) (out any) {
	if !v.CanInterface() {
		return struct{}{}
	}
	return v.Interface()
}
