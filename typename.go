package boson

import (
	"reflect"
	"strings"
	"time"

	"github.com/stewi1014/boson/registry"
)

var (
	charType          = reflect.TypeOf(Char(0))
	timeType          = reflect.TypeOf(time.Time{})
	durationType      = reflect.TypeOf(time.Duration(0))
	localDateType     = reflect.TypeOf(LocalDate{})
	localTimeType     = reflect.TypeOf(LocalTime{})
	localDateTimeType = reflect.TypeOf(LocalDateTime{})
	periodType        = reflect.TypeOf(Period{})

	jodaDateTimeType      = reflect.TypeOf(JodaDateTime{})
	jodaLocalDateType     = reflect.TypeOf(JodaLocalDate{})
	jodaLocalTimeType     = reflect.TypeOf(JodaLocalTime{})
	jodaLocalDateTimeType = reflect.TypeOf(JodaLocalDateTime{})
	jodaDurationType      = reflect.TypeOf(JodaDuration(0))
	jodaIntervalType      = reflect.TypeOf(JodaInterval{})
	jodaPeriodType        = reflect.TypeOf(JodaPeriod{})

	byteArrayType   = reflect.TypeOf([]byte(nil))
	emptyStructType = reflect.TypeOf(struct{}{})
	anyType         = reflect.TypeOf((*any)(nil)).Elem()
	uuidType        = reflect.TypeOf(uuidZero)
)

// typeName returns the wire text used for an ARRAY payload's
// COMPONENT-TYPE-NAME string: the fixed name for a primitive kind, or the
// registry name for a record/enum type. This is also how a record or enum
// class name is produced elsewhere, so array-of-record round-trips through
// the same name table.
func typeName(t reflect.Type) string {
	if t == charType {
		return "char"
	}
	switch t.Kind() {
	case reflect.Int8:
		return "byte"
	case reflect.Int16:
		return "short"
	case reflect.Int32:
		return "int"
	case reflect.Int64:
		return "long"
	case reflect.Float32:
		return "float"
	case reflect.Float64:
		return "double"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Ptr:
		return "*" + typeName(t.Elem())
	case reflect.Interface:
		return "object"
	}
	return registry.Name(t)
}

// typeFromName reverses typeName, used to allocate a Go array of the right
// element type while decoding an ARRAY payload.
func typeFromName(name string) (reflect.Type, bool) {
	switch name {
	case "byte":
		return reflect.TypeOf(int8(0)), true
	case "short":
		return reflect.TypeOf(int16(0)), true
	case "int":
		return reflect.TypeOf(int32(0)), true
	case "long":
		return reflect.TypeOf(int64(0)), true
	case "float":
		return reflect.TypeOf(float32(0)), true
	case "double":
		return reflect.TypeOf(float64(0)), true
	case "boolean":
		return reflect.TypeOf(false), true
	case "char":
		return charType, true
	case "string":
		return reflect.TypeOf(""), true
	case "object":
		return anyType, true
	}
	if strings.HasPrefix(name, "*") {
		inner, ok := typeFromName(name[1:])
		if !ok {
			return nil, false
		}
		return reflect.PtrTo(inner), true
	}
	if t, ok := registry.RecordType(name); ok {
		return t, true
	}
	if t, ok := registry.EnumType(name); ok {
		return t, true
	}
	return nil, false
}
