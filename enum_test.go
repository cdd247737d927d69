package boson_test

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"

	"github.com/stewi1014/boson"
	"github.com/stewi1014/boson/registry"
	"github.com/stewi1014/boson/tag"
	"github.com/stretchr/testify/require"
)

func writeWireInt32(buf *bytes.Buffer, v int32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func writeWireString(buf *bytes.Buffer, s string) {
	writeWireInt32(buf, int32(len(s)))
	buf.WriteString(s)
}

func TestEnumNestedInRecord(t *testing.T) {
	b := &Box{C: Green}

	data, err := boson.Encode(b)
	require.NoError(t, err)

	got, err := boson.Decode(data)
	require.NoError(t, err)
	b2, ok := got.(*Box)
	require.True(t, ok)
	require.Equal(t, Green, b2.C)
}

func unknownColorConstantPayload() []byte {
	var buf bytes.Buffer
	buf.WriteByte(1) // version
	buf.WriteByte(byte(tag.Enum))
	writeWireString(&buf, registry.Name(reflect.TypeOf(Color(0))))
	writeWireString(&buf, "Purple")
	return buf.Bytes()
}

func TestUnknownEnumConstantDefaultsToNull(t *testing.T) {
	got, err := boson.Decode(unknownColorConstantPayload())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUnknownEnumConstantStrict(t *testing.T) {
	_, err := boson.Decode(unknownColorConstantPayload(), boson.WithStrictEnums(true))
	require.ErrorIs(t, err, boson.ErrUnknownEnumConstant)
}

func TestUnknownSlotTolerated(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(1)
	buf.WriteByte(byte(tag.Record))
	writeWireInt32(&buf, 0)
	writeWireString(&buf, registry.Name(reflect.TypeOf(Widget{})))
	writeWireInt32(&buf, 2)

	writeWireString(&buf, "Name")
	buf.WriteByte(byte(tag.String))
	writeWireString(&buf, "known")

	writeWireString(&buf, "Extra")
	buf.WriteByte(byte(tag.String))
	writeWireString(&buf, "dropped")

	got, err := boson.Decode(buf.Bytes())
	require.NoError(t, err)
	w, ok := got.(*Widget)
	require.True(t, ok)
	require.Equal(t, "known", w.Name)
}
