package boson

import (
	"reflect"

	"github.com/stewi1014/boson/record"
	"github.com/stewi1014/boson/registry"
	"github.com/stewi1014/boson/tag"
)

// encodeRecord writes ptr (a non-nil pointer to a struct, or the address of
// an addressable struct value) as either a RECORD payload the first time
// its identity is seen, or a REFERENCE to the id already assigned to it.
func encodeRecord(s *encodeState, w *writer, ptr reflect.Value) error {
	if _, ok := ptr.Interface().(error); ok {
		return newError(ErrUnsupportedValue, "%v implements error, records may not carry errors", ptr.Type())
	}

	identity := identityOf(ptr)
	if id, ok := s.lookup(identity); ok {
		if err := w.writeTag(tag.Reference); err != nil {
			return err
		}
		return w.writeInt32(id)
	}

	id := s.assign(identity)
	elem := ptr.Elem()
	t := elem.Type()
	desc := record.Describe(t, s.cfg.serializeFinalFields)

	if err := w.writeTag(tag.Record); err != nil {
		return err
	}
	if err := w.writeInt32(id); err != nil {
		return err
	}
	if err := w.writeString(registry.Name(t)); err != nil {
		return err
	}
	if err := w.writeInt32(int32(len(desc.Slots))); err != nil {
		return err
	}
	for _, slot := range desc.Slots {
		if err := w.writeString(slot.Name); err != nil {
			return err
		}
		if err := encodeValue(s, w, slot.Get(elem)); err != nil {
			return err
		}
	}
	return nil
}

// decodeRecord reads a RECORD payload whose header has already had its tag
// consumed. It registers the new instance in the reference table before any
// field payload is read, so a self-referencing field resolves correctly.
func decodeRecord(s *decodeState, r *reader) (reflect.Value, error) {
	id, err := r.readInt32()
	if err != nil {
		return reflect.Value{}, err
	}
	className, err := r.readString()
	if err != nil {
		return reflect.Value{}, err
	}
	fieldCount, err := r.readInt32()
	if err != nil {
		return reflect.Value{}, err
	}

	if s.cfg.readRecordsAsMap {
		m := reflect.MakeMapWithSize(reflect.MapOf(reflect.TypeOf(""), anyType), int(fieldCount))
		s.register(id, m)
		for i := int32(0); i < fieldCount; i++ {
			name, err := r.readString()
			if err != nil {
				return reflect.Value{}, err
			}
			val, err := decodeValue(s, r)
			if err != nil {
				return reflect.Value{}, err
			}
			m.SetMapIndex(reflect.ValueOf(name), boxInterface(val))
		}
		return m, nil
	}

	t, ok := registry.RecordType(className)
	if !ok {
		return reflect.Value{}, newError(ErrMissingClass, "record class %q is not registered", className)
	}

	ptr := reflect.New(t)
	s.register(id, ptr)

	desc := record.Describe(t, true)
	slots := make(map[string]record.Slot, len(desc.Slots))
	for _, slot := range desc.Slots {
		slots[slot.Name] = slot
	}

	for i := int32(0); i < fieldCount; i++ {
		name, err := r.readString()
		if err != nil {
			return reflect.Value{}, err
		}
		val, err := decodeValue(s, r)
		if err != nil {
			return reflect.Value{}, err
		}
		slot, ok := slots[name]
		if !ok {
			Logger.Warn().Str("record", className).Str("slot", name).Msg("dropping unknown slot")
			continue
		}
		assignSlot(slot, ptr.Elem(), val, className)
	}

	return ptr, nil
}

// assignSlot assigns val, the already-decoded payload, into slot's field
// within structVal. It copies array-to-array assignments element by element
// when shapes permit and otherwise logs and drops an incompatible assignment
// rather than failing the whole decode.
func assignSlot(slot record.Slot, structVal, val reflect.Value, recordName string) {
	field := slot.Get(structVal)

	if !val.IsValid() {
		switch field.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
			field.Set(reflect.Zero(field.Type()))
		default:
			Logger.Debug().Str("record", recordName).Str("slot", slot.Name).Msg("cannot assign null into non-nilable slot")
		}
		return
	}

	if field.Type() == val.Type() {
		field.Set(val)
		return
	}

	if field.Kind() == reflect.Struct && val.Kind() == reflect.Ptr && val.Type().Elem() == field.Type() {
		field.Set(val.Elem())
		return
	}

	if field.Kind() == reflect.Array && val.Kind() == reflect.Array {
		n := field.Len()
		if val.Len() < n {
			n = val.Len()
		}
		elemType := field.Type().Elem()
		fresh := reflect.New(field.Type()).Elem()
		for i := 0; i < n; i++ {
			elem := val.Index(i)
			if elem.Kind() == reflect.Interface && elemType.Kind() != reflect.Interface {
				if elem.IsNil() {
					continue
				}
				elem = elem.Elem()
			}
			if !elem.Type().AssignableTo(elemType) {
				Logger.Warn().Str("record", recordName).Str("slot", slot.Name).
					Str("wantType", field.Type().String()).Str("gotType", val.Type().String()).
					Msg("dropping array slot with incompatible element type")
				return
			}
			fresh.Index(i).Set(elem)
		}
		field.Set(fresh)
		return
	}

	if field.Kind() == reflect.Interface && val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return
	}

	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return
	}

	Logger.Warn().Str("record", recordName).Str("slot", slot.Name).
		Str("wantType", field.Type().String()).Str("gotType", val.Type().String()).
		Msg("dropping slot with incompatible shape")
}

// boxInterface wraps a decoded payload value (possibly the invalid zero
// Value standing for null) into a reflect.Value of interface{} type,
// suitable for storing into a map[string]any.
func boxInterface(val reflect.Value) reflect.Value {
	if !val.IsValid() {
		return reflect.Zero(anyType)
	}
	box := reflect.New(anyType).Elem()
	box.Set(val)
	return box
}
