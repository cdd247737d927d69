package boson

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/stewi1014/boson/tag"
)

// writer is the encode-side sink: a thin wrapper over io.Writer that turns
// short writes into wireError-wrapped failures instead of raw I/O errors.
type writer struct {
	w   io.Writer
	buf [8]byte
}

func newWriter(w io.Writer) *writer {
	return &writer{w: w}
}

func (w *writer) writeTag(t tag.Tag) error {
	return w.writeByte(byte(t))
}

func (w *writer) writeByte(b byte) error {
	w.buf[0] = b
	_, err := w.w.Write(w.buf[:1])
	if err != nil {
		return newError(ErrInvalidData, "writing byte: %v", err)
	}
	return nil
}

func (w *writer) writeInt8(v int8) error  { return w.writeByte(byte(v)) }
func (w *writer) writeBool(v bool) error {
	if v {
		return w.writeByte(1)
	}
	return w.writeByte(0)
}

func (w *writer) writeUint16(v uint16) error {
	binary.BigEndian.PutUint16(w.buf[:2], v)
	return w.writeRaw(w.buf[:2])
}

func (w *writer) writeInt16(v int16) error { return w.writeUint16(uint16(v)) }

func (w *writer) writeUint32(v uint32) error {
	binary.BigEndian.PutUint32(w.buf[:4], v)
	return w.writeRaw(w.buf[:4])
}

func (w *writer) writeInt32(v int32) error { return w.writeUint32(uint32(v)) }

func (w *writer) writeUint64(v uint64) error {
	binary.BigEndian.PutUint64(w.buf[:8], v)
	return w.writeRaw(w.buf[:8])
}

func (w *writer) writeInt64(v int64) error { return w.writeUint64(uint64(v)) }

func (w *writer) writeFloat32(v float32) error {
	return w.writeUint32(math.Float32bits(v))
}

func (w *writer) writeFloat64(v float64) error {
	return w.writeUint64(math.Float64bits(v))
}

func (w *writer) writeRaw(b []byte) error {
	_, err := w.w.Write(b)
	if err != nil {
		return newError(ErrInvalidData, "writing %d bytes: %v", len(b), err)
	}
	return nil
}

// writeString writes a length-prefixed UTF-8 byte sequence; the length
// prefix counts encoded bytes, not code points.
func (w *writer) writeString(s string) error {
	if err := w.writeInt32(int32(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	return w.writeRaw([]byte(s))
}

// reader is the decode-side source: a thin wrapper over io.Reader that
// turns a short read into ErrTruncated.
type reader struct {
	r   io.Reader
	buf [8]byte
}

func newReader(r io.Reader) *reader {
	return &reader{r: r}
}

func (r *reader) readRaw(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, newError(ErrTruncated, "wanted %d bytes: %v", n, err)
		}
		return nil, newError(ErrInvalidData, "reading %d bytes: %v", n, err)
	}
	return buf, nil
}

func (r *reader) readByte() (byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:1]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, newError(ErrTruncated, "wanted 1 byte: %v", err)
		}
		return 0, newError(ErrInvalidData, "reading byte: %v", err)
	}
	return r.buf[0], nil
}

func (r *reader) readTag() (tag.Tag, error) {
	b, err := r.readByte()
	return tag.Tag(b), err
}

func (r *reader) readInt8() (int8, error) {
	b, err := r.readByte()
	return int8(b), err
}

func (r *reader) readBool() (bool, error) {
	b, err := r.readByte()
	return b != 0, err
}

func (r *reader) readUint16() (uint16, error) {
	if _, err := io.ReadFull(r.r, r.buf[:2]); err != nil {
		return 0, truncatedOr(err, 2)
	}
	return binary.BigEndian.Uint16(r.buf[:2]), nil
}

func (r *reader) readInt16() (int16, error) {
	v, err := r.readUint16()
	return int16(v), err
}

func (r *reader) readUint32() (uint32, error) {
	if _, err := io.ReadFull(r.r, r.buf[:4]); err != nil {
		return 0, truncatedOr(err, 4)
	}
	return binary.BigEndian.Uint32(r.buf[:4]), nil
}

func (r *reader) readInt32() (int32, error) {
	v, err := r.readUint32()
	return int32(v), err
}

func (r *reader) readUint64() (uint64, error) {
	if _, err := io.ReadFull(r.r, r.buf[:8]); err != nil {
		return 0, truncatedOr(err, 8)
	}
	return binary.BigEndian.Uint64(r.buf[:8]), nil
}

func (r *reader) readInt64() (int64, error) {
	v, err := r.readUint64()
	return int64(v), err
}

func (r *reader) readFloat32() (float32, error) {
	v, err := r.readUint32()
	return math.Float32frombits(v), err
}

func (r *reader) readFloat64() (float64, error) {
	v, err := r.readUint64()
	return math.Float64frombits(v), err
}

// readString reads a length-prefixed UTF-8 byte sequence.
func (r *reader) readString() (string, error) {
	n, err := r.readInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", newError(ErrInvalidData, "negative string length %d", n)
	}
	if n == 0 {
		return "", nil
	}
	b, err := r.readRaw(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func truncatedOr(err error, n int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return newError(ErrTruncated, "wanted %d bytes: %v", n, err)
	}
	return newError(ErrInvalidData, "reading %d bytes: %v", n, err)
}
