package boson

import (
	"reflect"

	"github.com/stewi1014/boson/tag"
)

func encodeList(s *encodeState, w *writer, v reflect.Value) error {
	n := v.Len()
	if err := w.writeTag(tag.List); err != nil {
		return err
	}
	if err := w.writeInt32(int32(n)); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := encodeValue(s, w, v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

// decodeList decodes into []any: the payload is self-describing per
// element and carries no element type. The result is not converted
// afterwards, so a record slot of any other slice type does not receive it
// (assignSlot logs a warning and leaves the slot unset).
func decodeList(s *decodeState, r *reader) (reflect.Value, error) {
	n, err := r.readInt32()
	if err != nil {
		return reflect.Value{}, err
	}
	list := reflect.MakeSlice(reflect.SliceOf(anyType), 0, int(n))
	for i := int32(0); i < n; i++ {
		v, err := decodeValue(s, r)
		if err != nil {
			return reflect.Value{}, err
		}
		list = reflect.Append(list, boxInterface(v))
	}
	return list, nil
}

func encodeSet(s *encodeState, w *writer, v reflect.Value) error {
	n := v.Len()
	if err := w.writeTag(tag.Set); err != nil {
		return err
	}
	if err := w.writeInt32(int32(n)); err != nil {
		return err
	}
	for _, key := range v.MapKeys() {
		if err := encodeValue(s, w, key); err != nil {
			return err
		}
	}
	return nil
}

func decodeSet(s *decodeState, r *reader) (reflect.Value, error) {
	n, err := r.readInt32()
	if err != nil {
		return reflect.Value{}, err
	}
	m := reflect.MakeMapWithSize(reflect.MapOf(anyType, emptyStructType), int(n))
	for i := int32(0); i < n; i++ {
		key, err := decodeValue(s, r)
		if err != nil {
			return reflect.Value{}, err
		}
		m.SetMapIndex(boxInterface(key), reflect.ValueOf(struct{}{}))
	}
	return m, nil
}

func encodeMap(s *encodeState, w *writer, v reflect.Value) error {
	n := v.Len()
	if err := w.writeTag(tag.Map); err != nil {
		return err
	}
	if err := w.writeInt32(int32(n)); err != nil {
		return err
	}
	iter := v.MapRange()
	for iter.Next() {
		if err := encodeValue(s, w, iter.Key()); err != nil {
			return err
		}
		if err := encodeValue(s, w, iter.Value()); err != nil {
			return err
		}
	}
	return nil
}

func decodeMap(s *decodeState, r *reader) (reflect.Value, error) {
	n, err := r.readInt32()
	if err != nil {
		return reflect.Value{}, err
	}
	m := reflect.MakeMapWithSize(reflect.MapOf(anyType, anyType), int(n))
	for i := int32(0); i < n; i++ {
		key, err := decodeValue(s, r)
		if err != nil {
			return reflect.Value{}, err
		}
		val, err := decodeValue(s, r)
		if err != nil {
			return reflect.Value{}, err
		}
		m.SetMapIndex(boxInterface(key), boxInterface(val))
	}
	return m, nil
}

func encodeByteArray(w *writer, v reflect.Value) error {
	b := v.Bytes()
	if err := w.writeTag(tag.ByteArray); err != nil {
		return err
	}
	if err := w.writeInt32(int32(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return w.writeRaw(b)
}

func decodeByteArray(r *reader) (reflect.Value, error) {
	n, err := r.readInt32()
	if err != nil {
		return reflect.Value{}, err
	}
	if n == 0 {
		return reflect.ValueOf([]byte{}), nil
	}
	b, err := r.readRaw(int(n))
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(b), nil
}

func encodeArray(s *encodeState, w *writer, v reflect.Value) error {
	n := v.Len()
	if err := w.writeTag(tag.Array); err != nil {
		return err
	}
	if err := w.writeInt32(int32(n)); err != nil {
		return err
	}
	if err := w.writeString(typeName(v.Type().Elem())); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := encodeValue(s, w, v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func decodeArray(s *decodeState, r *reader) (reflect.Value, error) {
	n, err := r.readInt32()
	if err != nil {
		return reflect.Value{}, err
	}
	componentName, err := r.readString()
	if err != nil {
		return reflect.Value{}, err
	}
	elemType, ok := typeFromName(componentName)
	if !ok {
		Logger.Warn().Str("componentType", componentName).Msg("unresolvable array component type, decoding as an array of any")
		elemType = anyType
	}

	arr := reflect.New(reflect.ArrayOf(int(n), elemType)).Elem()
	for i := int32(0); i < n; i++ {
		val, err := decodeValue(s, r)
		if err != nil {
			return reflect.Value{}, err
		}
		if !val.IsValid() {
			continue // zero value already present
		}
		if val.Type().AssignableTo(elemType) {
			arr.Index(int(i)).Set(val)
		} else if elemType.Kind() == reflect.Interface {
			arr.Index(int(i)).Set(boxInterface(val))
		} else if val.Type().ConvertibleTo(elemType) {
			arr.Index(int(i)).Set(val.Convert(elemType))
		}
	}
	return arr, nil
}
