package boson_test

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stewi1014/boson"
	"github.com/stretchr/testify/require"
)

func TestRoundTripPrimitives(t *testing.T) {
	cases := []any{
		int8(5), int16(-7), int32(42), int64(-9000000000),
		float32(1.5), float64(3.14159), true, false,
		boson.Char('z'), "hello", "",
	}
	for _, v := range cases {
		data, err := boson.Encode(v)
		require.NoError(t, err)
		got, err := boson.Decode(data)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestRoundTripContainers(t *testing.T) {
	data, err := boson.Encode([]byte{1, 2, 3})
	require.NoError(t, err)
	got, err := boson.Decode(data)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)

	data, err = boson.Encode([]any{int32(5), int32(6)})
	require.NoError(t, err)
	got, err = boson.Decode(data)
	require.NoError(t, err)
	require.Equal(t, []any{int32(5), int32(6)}, got)

	data, err = boson.Encode(map[int32]struct{}{34: {}})
	require.NoError(t, err)
	got, err = boson.Decode(data)
	require.NoError(t, err)
	gotSet, ok := got.(map[any]struct{})
	require.True(t, ok)
	_, present := gotSet[int32(34)]
	require.True(t, present)

	data, err = boson.Encode([4]int32{3, 4, 2, 5})
	require.NoError(t, err)
	got, err = boson.Decode(data)
	require.NoError(t, err)
	require.Equal(t, [4]int32{3, 4, 2, 5}, got)

	data, err = boson.Encode(map[string]any{"a": int32(1)})
	require.NoError(t, err)
	got, err = boson.Decode(data)
	require.NoError(t, err)
	gotMap, ok := got.(map[any]any)
	require.True(t, ok)
	require.Equal(t, int32(1), gotMap["a"])
}

func TestMixedMap(t *testing.T) {
	input := map[string]any{
		"int":       int32(1),
		"long":      int64(2),
		"byte":      int8(3),
		"short":     int16(4),
		"boolean":   true,
		"byte[]":    []byte{1, 2, 3},
		"float":     float32(5.3),
		"double":    float64(6.2),
		"char":      boson.Char('z'),
		"null":      nil,
		"str":       "a str",
		"array":     [2]any{int32(1), "2"},
		"list":      []any{int32(5), int32(6)},
		"set":       map[int32]struct{}{34: {}},
		"int-array": [4]int32{3, 4, 2, 5},
	}

	data, err := boson.Encode(input)
	require.NoError(t, err)
	decoded, err := boson.Decode(data)
	require.NoError(t, err)
	got, ok := decoded.(map[any]any)
	require.True(t, ok)

	require.Equal(t, int32(1), got["int"])
	require.Equal(t, int64(2), got["long"])
	require.Equal(t, int8(3), got["byte"])
	require.Equal(t, int16(4), got["short"])
	require.Equal(t, true, got["boolean"])
	require.Equal(t, []byte{1, 2, 3}, got["byte[]"])
	require.Equal(t, float32(5.3), got["float"])
	require.Equal(t, float64(6.2), got["double"])
	require.Equal(t, boson.Char('z'), got["char"])
	require.Nil(t, got["null"])
	require.Equal(t, "a str", got["str"])
	require.Equal(t, [2]any{int32(1), "2"}, got["array"])
	require.Equal(t, []any{int32(5), int32(6)}, got["list"])
	require.Equal(t, [4]int32{3, 4, 2, 5}, got["int-array"])

	gotSet, ok := got["set"].(map[any]struct{})
	require.True(t, ok)
	_, present := gotSet[int32(34)]
	require.True(t, present)
}

func TestStringByteCount(t *testing.T) {
	s := "日本語" // 3 code points, 9 UTF-8 bytes
	data, err := boson.Encode(s)
	require.NoError(t, err)

	require.Equal(t, byte(1), data[0], "version byte")
	require.Equal(t, byte(10), data[1], "string tag")
	length := binary.BigEndian.Uint32(data[2:6])
	require.Equal(t, uint32(len(s)), length)
	require.NotEqual(t, uint32(len([]rune(s))), length)
}

func TestSlotIgnore(t *testing.T) {
	v := &WithDirectives{Visible: "v", Hidden: "h"}
	data, err := boson.Encode(v)
	require.NoError(t, err)
	require.NotContains(t, string(data), "Hidden")

	got, err := boson.Decode(data)
	require.NoError(t, err)
	w, ok := got.(*WithDirectives)
	require.True(t, ok)
	require.Equal(t, "v", w.Visible)
	require.Equal(t, "", w.Hidden)
}

func TestSlotRename(t *testing.T) {
	v := &RenamedSource{X: "val"}
	data, err := boson.Encode(v)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "renamedX"))

	got, err := boson.Decode(data)
	require.NoError(t, err)
	r, ok := got.(*RenamedSource)
	require.True(t, ok)
	require.Equal(t, "val", r.X)
}
