package boson

import (
	"fmt"
	"reflect"

	"github.com/stewi1014/boson/registry"
	"github.com/stewi1014/boson/tag"
)

func encodeEnum(w *writer, v reflect.Value) error {
	t := v.Type()
	if err := w.writeTag(tag.Enum); err != nil {
		return err
	}
	if err := w.writeString(registry.Name(t)); err != nil {
		return err
	}
	constName := v.Interface().(fmt.Stringer).String()
	return w.writeString(constName)
}

// decodeEnum resolves the registered constant by its wire text. A missing
// constant decodes to null unless WithStrictEnums was set.
func decodeEnum(s *decodeState, r *reader) (reflect.Value, error) {
	className, err := r.readString()
	if err != nil {
		return reflect.Value{}, err
	}
	constName, err := r.readString()
	if err != nil {
		return reflect.Value{}, err
	}

	t, ok := registry.EnumType(className)
	if !ok {
		return reflect.Value{}, newError(ErrMissingClass, "enum class %q is not registered", className)
	}
	v, ok := registry.EnumConstant(t, constName)
	if !ok {
		if s.cfg.strictEnums {
			return reflect.Value{}, newError(ErrUnknownEnumConstant, "%s has no constant %q", className, constName)
		}
		Logger.Warn().Str("enum", className).Str("constant", constName).Msg("unknown enum constant, decoding as null")
		return reflect.Value{}, nil
	}
	return v, nil
}
