package boson

import (
	"bytes"
	"io"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/stewi1014/boson/registry"
	"github.com/stewi1014/boson/tag"
)

// Encoder walks a value graph once and writes it to an underlying
// io.Writer. It is not safe for concurrent use; callers needing concurrent
// encoding should build one Encoder per goroutine.
type Encoder struct {
	w   *writer
	cfg encodeConfig
}

// NewEncoder returns an Encoder writing to w, configured by opts.
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	var cfg encodeConfig
	for _, o := range opts {
		o(&cfg)
	}
	return &Encoder{w: newWriter(w), cfg: cfg}
}

// Encode writes the version byte followed by value's payload. Each call
// gets a fresh reference table, so the same Encoder may be reused across
// independent top-level values, but back-references never span calls.
func (e *Encoder) Encode(value any) error {
	if err := e.w.writeByte(tag.Version); err != nil {
		return err
	}
	state := newEncodeState(e.cfg)
	return encodeValue(state, e.w, reflect.ValueOf(value))
}

// Encode serializes value to a new byte slice.
func Encode(value any, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, value, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo serializes value to w.
func EncodeTo(w io.Writer, value any, opts ...EncodeOption) error {
	return NewEncoder(w, opts...).Encode(value)
}

// encodeValue implements the dispatch ladder: null, then enum, then
// temporal, then primitive/container kinds, falling back to record.
func encodeValue(s *encodeState, w *writer, v reflect.Value) error {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return w.writeTag(tag.Null)
	}

	t := v.Type()

	if registry.IsEnum(t) {
		return encodeEnum(w, v)
	}

	switch t {
	case timeType:
		return encodeDate(w, v.Interface().(time.Time))
	case localDateType:
		return encodeLocalDate(w, v.Interface().(LocalDate))
	case localTimeType:
		return encodeLocalTime(w, v.Interface().(LocalTime))
	case localDateTimeType:
		return encodeLocalDateTime(w, v.Interface().(LocalDateTime))
	case durationType:
		return encodeDuration(w, v.Interface().(time.Duration))
	case periodType:
		return encodePeriod(w, v.Interface().(Period))
	case jodaDateTimeType:
		return encodeJodaDateTime(w, v.Interface().(JodaDateTime))
	case jodaLocalDateType:
		return encodeJodaLocalDate(w, v.Interface().(JodaLocalDate))
	case jodaLocalTimeType:
		return encodeJodaLocalTime(w, v.Interface().(JodaLocalTime))
	case jodaLocalDateTimeType:
		return encodeJodaLocalDateTime(w, v.Interface().(JodaLocalDateTime))
	case jodaDurationType:
		return encodeJodaDuration(w, v.Interface().(JodaDuration))
	case jodaIntervalType:
		return encodeJodaInterval(w, v.Interface().(JodaInterval))
	case jodaPeriodType:
		return encodeJodaPeriod(w, v.Interface().(JodaPeriod))
	case uuidType:
		if err := w.writeTag(tag.UUID); err != nil {
			return err
		}
		return encodeUUID(w, v.Interface().(uuid.UUID))
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return w.writeTag(tag.Null)
		}
		if v.Elem().Kind() == reflect.Struct {
			return encodeRecord(s, w, v)
		}
		return encodeValue(s, w, v.Elem())

	case reflect.Int8:
		if err := w.writeTag(tag.Byte); err != nil {
			return err
		}
		return w.writeInt8(int8(v.Int()))

	case reflect.Int16:
		if err := w.writeTag(tag.Short); err != nil {
			return err
		}
		return w.writeInt16(int16(v.Int()))

	case reflect.Int32:
		if err := w.writeTag(tag.Int); err != nil {
			return err
		}
		return w.writeInt32(int32(v.Int()))

	case reflect.Int64:
		if err := w.writeTag(tag.Long); err != nil {
			return err
		}
		return w.writeInt64(v.Int())

	case reflect.Float32:
		if err := w.writeTag(tag.Float); err != nil {
			return err
		}
		return w.writeFloat32(float32(v.Float()))

	case reflect.Float64:
		if err := w.writeTag(tag.Double); err != nil {
			return err
		}
		return w.writeFloat64(v.Float())

	case reflect.Bool:
		if err := w.writeTag(tag.Boolean); err != nil {
			return err
		}
		return w.writeBool(v.Bool())

	case reflect.Uint16:
		if t != charType {
			return newError(ErrUnsupportedValue, "unsupported uint16 type %v", t)
		}
		if err := w.writeTag(tag.Char); err != nil {
			return err
		}
		return w.writeUint16(uint16(v.Uint()))

	case reflect.String:
		if err := w.writeTag(tag.String); err != nil {
			return err
		}
		return w.writeString(v.String())

	case reflect.Slice:
		if v.IsNil() {
			return w.writeTag(tag.Null)
		}
		if t.Elem().Kind() == reflect.Uint8 {
			return encodeByteArray(w, v)
		}
		return encodeList(s, w, v)

	case reflect.Map:
		if v.IsNil() {
			return w.writeTag(tag.Null)
		}
		if isSetType(t) {
			return encodeSet(s, w, v)
		}
		return encodeMap(s, w, v)

	case reflect.Array:
		return encodeArray(s, w, v)

	case reflect.Struct:
		if !v.CanAddr() {
			return newError(ErrUnsupportedValue, "%v must be passed by pointer to be encoded as a record", t)
		}
		return encodeRecord(s, w, v.Addr())
	}

	return newError(ErrUnsupportedValue, "no wire representation for %v", t)
}

func isSetType(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Elem() == emptyStructType
}

func encodeDate(w *writer, t time.Time) error {
	if err := w.writeTag(tag.Date); err != nil {
		return err
	}
	return w.writeInt64(t.UnixMilli())
}

func encodeLocalDate(w *writer, d LocalDate) error {
	if err := w.writeTag(tag.LocalDate); err != nil {
		return err
	}
	return w.writeInt64(d.EpochDay())
}

func encodeLocalTime(w *writer, t LocalTime) error {
	if err := w.writeTag(tag.LocalTime); err != nil {
		return err
	}
	return w.writeString(t.String())
}

func encodeLocalDateTime(w *writer, t LocalDateTime) error {
	if err := w.writeTag(tag.LocalDateTime); err != nil {
		return err
	}
	return w.writeString(t.String())
}

func encodeDuration(w *writer, d time.Duration) error {
	if err := w.writeTag(tag.Duration); err != nil {
		return err
	}
	return w.writeString(formatISODuration(d))
}

func encodePeriod(w *writer, p Period) error {
	if err := w.writeTag(tag.Period); err != nil {
		return err
	}
	return w.writeString(p.String())
}

func encodeJodaDateTime(w *writer, t JodaDateTime) error {
	if err := w.writeTag(tag.JodaDateTime); err != nil {
		return err
	}
	return w.writeInt64(time.Time(t).UnixMilli())
}

func encodeJodaLocalDate(w *writer, d JodaLocalDate) error {
	if err := w.writeTag(tag.JodaLocalDate); err != nil {
		return err
	}
	return w.writeInt64(LocalDate(d).EpochDay())
}

func encodeJodaLocalTime(w *writer, t JodaLocalTime) error {
	if err := w.writeTag(tag.JodaLocalTime); err != nil {
		return err
	}
	return w.writeString(LocalTime(t).String())
}

func encodeJodaLocalDateTime(w *writer, t JodaLocalDateTime) error {
	if err := w.writeTag(tag.JodaLocalDateTime); err != nil {
		return err
	}
	return w.writeString(LocalDateTime(t).String())
}

func encodeJodaDuration(w *writer, d JodaDuration) error {
	if err := w.writeTag(tag.JodaDuration); err != nil {
		return err
	}
	return w.writeString(formatISODuration(time.Duration(d)))
}

func encodeJodaInterval(w *writer, iv JodaInterval) error {
	if err := w.writeTag(tag.JodaInterval); err != nil {
		return err
	}
	return w.writeString(iv.String())
}

func encodeJodaPeriod(w *writer, p JodaPeriod) error {
	if err := w.writeTag(tag.JodaPeriod); err != nil {
		return err
	}
	return w.writeString(Period(p).String())
}
