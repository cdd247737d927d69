// Package record derives, for a given struct type, the ordered set of slots
// (external name, accessor, declared type) that the Boson codec reads and
// writes for that type's record ("POLO") form. It honours per-field
// opt-out/rename directives carried in the "boson" struct tag and caches
// the result per type.
package record

import (
	"reflect"
	"sort"
	"strings"
	"sync"
)

// StructTag is the struct tag Boson reads for per-field directives.
//
//	boson:"externalName"          // rename
//	boson:"-"                     // exclude (ignore)
//	boson:",readonly"             // Go analogue of a "final" field; excluded
//	                               // unless serializeFinalFields is set
const StructTag = "boson"

// Slot is one included field of a record: its wire name, the path of field
// indices needed to reach it (supporting embedded structs), and its
// declared type.
type Slot struct {
	Name     string
	Index    []int
	Type     reflect.Type
	ReadOnly bool
}

// Get returns the slot's current value within v, a struct value (addressable
// or not; Get only reads).
func (s Slot) Get(v reflect.Value) reflect.Value {
	return v.FieldByIndex(s.Index)
}

// Set assigns val into the slot's field within v. v must be addressable.
func (s Slot) Set(v reflect.Value, val reflect.Value) {
	v.FieldByIndex(s.Index).Set(val)
}

// Descriptor is the ordered slot list for one struct type.
type Descriptor struct {
	Type  reflect.Type
	Slots []Slot
}

var (
	mu             sync.Mutex
	cache          sync.Map // descriptorKey -> *Descriptor
	ignoreEmbedded sync.Map // reflect.Type -> struct{}
)

// IgnoreEmbedded marks zero's type so that, when it is scanned as a record,
// only fields declared directly on the type are considered; fields promoted
// from embedded ("inherited") structs are skipped. This is a type-level
// directive rather than a field-level one, since Go has no tag position on
// an embedded field that doesn't also apply to where it's embedded from.
func IgnoreEmbedded(zero any) {
	t := reflect.TypeOf(zero)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	ignoreEmbedded.Store(t, struct{}{})
}

// Describe returns the cached (or newly computed) descriptor for t, a
// struct type. serializeFinalFields controls whether ReadOnly slots are
// included.
func Describe(t reflect.Type, serializeFinalFields bool) *Descriptor {
	key := descriptorKey{t, serializeFinalFields}
	if v, ok := cache.Load(key); ok {
		return v.(*Descriptor)
	}

	mu.Lock()
	defer mu.Unlock()
	if v, ok := cache.Load(key); ok {
		return v.(*Descriptor)
	}

	_, onlyDeclared := ignoreEmbedded.Load(t)
	slots := scan(t, nil, 0, onlyDeclared, serializeFinalFields, make(map[reflect.Type]int))
	sort.Slice(slots, func(i, j int) bool { return slots[i].Name < slots[j].Name })

	d := &Descriptor{Type: t, Slots: slots}
	cache.Store(key, d)
	return d
}

type descriptorKey struct {
	t                    reflect.Type
	serializeFinalFields bool
}

// maxEmbedDepth guards against runaway recursion through repeated or
// self-referential embedding.
const maxEmbedDepth = 32

func scan(t reflect.Type, prefix []int, depth int, onlyDeclared, serializeFinalFields bool, seen map[reflect.Type]int) []Slot {
	if depth > maxEmbedDepth || seen[t] > 1 {
		return nil
	}
	seen[t]++

	var slots []Slot
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		index := append(append([]int{}, prefix...), i)

		if f.Anonymous && f.Type.Kind() == reflect.Struct && !onlyDeclared {
			slots = append(slots, scan(f.Type, index, depth+1, onlyDeclared, serializeFinalFields, seen)...)
			continue
		}

		if f.PkgPath != "" {
			continue // unexported: Go's analogue of a field that reflection cannot force-access safely
		}

		directive, hasTag := parseTag(f.Tag.Get(StructTag))
		if hasTag && directive.ignore {
			continue
		}
		if directive.readonly && !serializeFinalFields {
			continue
		}

		name := f.Name
		if hasTag && directive.name != "" {
			name = directive.name
		}

		slots = append(slots, Slot{
			Name:     name,
			Index:    index,
			Type:     f.Type,
			ReadOnly: directive.readonly,
		})
	}
	return slots
}

type tagDirective struct {
	name     string
	ignore   bool
	readonly bool
}

func parseTag(raw string) (tagDirective, bool) {
	if raw == "" {
		return tagDirective{}, false
	}
	if raw == "-" {
		return tagDirective{ignore: true}, true
	}

	parts := strings.Split(raw, ",")
	d := tagDirective{name: parts[0]}
	for _, opt := range parts[1:] {
		switch strings.TrimSpace(opt) {
		case "ignore":
			d.ignore = true
		case "readonly":
			d.readonly = true
		}
	}
	return d, true
}
