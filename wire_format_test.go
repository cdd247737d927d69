package boson_test

import (
	"testing"

	"github.com/stewi1014/boson"
	"github.com/stretchr/testify/require"
)

func TestByteLevelMapSnapshot(t *testing.T) {
	data, err := boson.Encode(map[string]any{"a": int32(1)})
	require.NoError(t, err)

	require.Equal(t, byte(1), data[0], "version byte")
	body := data[1:]
	want := []byte{13, 0, 0, 0, 1, 10, 0, 0, 0, 1, 'a', 3, 0, 0, 0, 1}
	require.Equal(t, want, body)
}

func TestVersionMismatch(t *testing.T) {
	_, err := boson.Decode([]byte{2, 9})
	require.ErrorIs(t, err, boson.ErrVersionMismatch)
}

func TestUnsupportedTag(t *testing.T) {
	_, err := boson.Decode([]byte{1, 200})
	require.ErrorIs(t, err, boson.ErrUnsupportedTag)
}

func TestTruncated(t *testing.T) {
	_, err := boson.Decode([]byte{1, 3, 0, 0}) // int tag, 2 of 4 payload bytes
	require.ErrorIs(t, err, boson.ErrTruncated)
}

func TestDanglingReference(t *testing.T) {
	data := []byte{1, 15, 0, 0, 0, 99} // reference tag to an id never assigned
	_, err := boson.Decode(data)
	require.ErrorIs(t, err, boson.ErrDanglingReference)
}
