package boson

import "github.com/google/uuid"

// uuidZero exists only so typename.go can take reflect.TypeOf(uuidZero)
// without constructing a real random UUID at package init.
var uuidZero uuid.UUID

func encodeUUID(w *writer, u uuid.UUID) error {
	return w.writeRaw(u[:])
}

func decodeUUID(r *reader) (uuid.UUID, error) {
	b, err := r.readRaw(16)
	if err != nil {
		return uuid.UUID{}, err
	}
	var u uuid.UUID
	copy(u[:], b)
	return u, nil
}
