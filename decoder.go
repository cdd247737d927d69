package boson

import (
	"bytes"
	"io"
	"reflect"
	"time"

	"github.com/stewi1014/boson/tag"
)

// Decoder reads one or more top-level values from an underlying io.Reader.
// It is not safe for concurrent use; each call to Decode gets its own
// reference table, so back-references never span calls.
type Decoder struct {
	r   *reader
	cfg decodeConfig
}

// NewDecoder returns a Decoder reading from r, configured by opts.
func NewDecoder(r io.Reader, opts ...ReadOption) *Decoder {
	var cfg decodeConfig
	for _, o := range opts {
		o(&cfg)
	}
	return &Decoder{r: newReader(r), cfg: cfg}
}

// Decode reads one version byte and one payload, returning the
// reconstructed value as any. A nil return represents the wire NULL tag.
func (d *Decoder) Decode() (any, error) {
	v, err := d.r.readByte()
	if err != nil {
		return nil, err
	}
	if v != tag.Version {
		return nil, newError(ErrVersionMismatch, "got version byte %d, want %d", v, tag.Version)
	}

	state := newDecodeState(d.cfg)
	val, err := decodeValue(state, d.r)
	if err != nil {
		return nil, err
	}
	if !val.IsValid() {
		return nil, nil
	}
	return val.Interface(), nil
}

// Decode parses data and returns the reconstructed top-level value.
func Decode(data []byte, opts ...ReadOption) (any, error) {
	return DecodeFrom(bytes.NewReader(data), opts...)
}

// DecodeFrom parses one value read from r.
func DecodeFrom(r io.Reader, opts ...ReadOption) (any, error) {
	return NewDecoder(r, opts...).Decode()
}

// decodeValue reads one tag byte and its payload, dispatching on the tag.
// The invalid zero reflect.Value stands for the wire NULL tag throughout
// the decoder.
func decodeValue(s *decodeState, r *reader) (reflect.Value, error) {
	t, err := r.readTag()
	if err != nil {
		return reflect.Value{}, err
	}

	switch t {
	case tag.Null:
		return reflect.Value{}, nil

	case tag.Byte:
		v, err := r.readInt8()
		return reflect.ValueOf(v), err
	case tag.Short:
		v, err := r.readInt16()
		return reflect.ValueOf(v), err
	case tag.Int:
		v, err := r.readInt32()
		return reflect.ValueOf(v), err
	case tag.Long:
		v, err := r.readInt64()
		return reflect.ValueOf(v), err
	case tag.Float:
		v, err := r.readFloat32()
		return reflect.ValueOf(v), err
	case tag.Double:
		v, err := r.readFloat64()
		return reflect.ValueOf(v), err
	case tag.Boolean:
		v, err := r.readBool()
		return reflect.ValueOf(v), err
	case tag.Char:
		v, err := r.readUint16()
		return reflect.ValueOf(Char(v)), err
	case tag.String:
		v, err := r.readString()
		return reflect.ValueOf(v), err

	case tag.ByteArray:
		return decodeByteArray(r)
	case tag.List:
		return decodeList(s, r)
	case tag.Set:
		return decodeSet(s, r)
	case tag.Map:
		return decodeMap(s, r)
	case tag.Array:
		return decodeArray(s, r)
	case tag.Record:
		return decodeRecord(s, r)
	case tag.Enum:
		return decodeEnum(s, r)
	case tag.UUID:
		v, err := decodeUUID(r)
		return reflect.ValueOf(v), err

	case tag.Reference:
		id, err := r.readInt32()
		if err != nil {
			return reflect.Value{}, err
		}
		v, ok := s.resolve(id)
		if !ok {
			return reflect.Value{}, newError(ErrDanglingReference, "unregistered reference id %d", id)
		}
		return v, nil

	case tag.Date:
		ms, err := r.readInt64()
		return reflect.ValueOf(time.UnixMilli(ms).UTC()), err
	case tag.LocalDate:
		days, err := r.readInt64()
		return reflect.ValueOf(LocalDateFromEpochDay(days)), err
	case tag.LocalTime:
		str, err := r.readString()
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := parseLocalTime(str)
		return reflect.ValueOf(v), err
	case tag.LocalDateTime:
		str, err := r.readString()
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := parseLocalDateTime(str)
		return reflect.ValueOf(v), err
	case tag.Duration:
		str, err := r.readString()
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := parseISODuration(str)
		return reflect.ValueOf(v), err
	case tag.Period:
		str, err := r.readString()
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := parsePeriod(str)
		return reflect.ValueOf(v), err

	case tag.JodaDateTime:
		ms, err := r.readInt64()
		return reflect.ValueOf(JodaDateTime(time.UnixMilli(ms).UTC())), err
	case tag.JodaLocalDate:
		days, err := r.readInt64()
		return reflect.ValueOf(JodaLocalDate(LocalDateFromEpochDay(days))), err
	case tag.JodaLocalTime:
		str, err := r.readString()
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := parseLocalTime(str)
		return reflect.ValueOf(JodaLocalTime(v)), err
	case tag.JodaLocalDateTime:
		str, err := r.readString()
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := parseLocalDateTime(str)
		return reflect.ValueOf(JodaLocalDateTime(v)), err
	case tag.JodaDuration:
		str, err := r.readString()
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := parseISODuration(str)
		return reflect.ValueOf(JodaDuration(v)), err
	case tag.JodaInterval:
		str, err := r.readString()
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := parseJodaInterval(str)
		return reflect.ValueOf(v), err
	case tag.JodaPeriod:
		str, err := r.readString()
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := parsePeriod(str)
		return reflect.ValueOf(JodaPeriod(v)), err
	}

	return reflect.Value{}, newError(ErrUnsupportedTag, "tag byte %d", byte(t))
}
