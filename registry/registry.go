// Package registry is a process-wide table mapping a record or enum's wire
// class name to the reflect.Type used to reconstruct it. Types must be
// registered before they can be decoded by name (records) or resolved by
// constant (enums).
//
// Naming follows the convention of pkgpath + "." + name.
package registry

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	mu         sync.RWMutex
	records    = make(map[string]reflect.Type)
	enums      = make(map[string]reflect.Type)
	enumByName = make(map[reflect.Type]map[string]reflect.Value)
)

// Name returns the wire class name for a type: its package path joined with
// its local name.
func Name(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		return "*" + Name(t.Elem())
	}
	if pkg := t.PkgPath(); pkg != "" {
		return pkg + "." + t.Name()
	}
	return t.String()
}

// RegisterRecord makes zero's concrete type resolvable by name during
// record decode. zero must be a struct, or a pointer to one.
func RegisterRecord(zero any) {
	t := reflect.TypeOf(zero)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("registry: RegisterRecord: %v is not a struct", t))
	}

	mu.Lock()
	defer mu.Unlock()
	records[Name(t)] = t
}

// RecordType resolves a wire class name to a registered struct type.
// ok is false if no record with that name was ever registered.
func RecordType(name string) (t reflect.Type, ok bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok = records[name]
	return
}

// RegisterEnum makes zero's concrete type resolvable by name during enum
// decode, and records the wire text (via fmt.Stringer) of every value in
// values so that a decoded constant name can be matched back to a value.
// zero's type must implement fmt.Stringer.
func RegisterEnum(zero any, values ...any) {
	t := reflect.TypeOf(zero)
	if _, ok := zero.(fmt.Stringer); !ok {
		panic(fmt.Sprintf("registry: RegisterEnum: %v does not implement fmt.Stringer", t))
	}

	mu.Lock()
	defer mu.Unlock()

	byName := make(map[string]reflect.Value, len(values))
	for _, v := range values {
		byName[v.(fmt.Stringer).String()] = reflect.ValueOf(v)
	}

	enums[Name(t)] = t
	enumByName[t] = byName
}

// EnumType resolves a wire class name to a registered enum type.
func EnumType(name string) (t reflect.Type, ok bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok = enums[name]
	return
}

// IsEnum reports whether t was registered as an enum type via RegisterEnum.
func IsEnum(t reflect.Type) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := enumByName[t]
	return ok
}

// EnumConstant resolves the constant named name among t's registered
// values. ok is false if t was never registered, or has no constant with
// that wire text.
func EnumConstant(t reflect.Type, name string) (v reflect.Value, ok bool) {
	mu.RLock()
	defer mu.RUnlock()
	byName, known := enumByName[t]
	if !known {
		return reflect.Value{}, false
	}
	v, ok = byName[name]
	return
}
