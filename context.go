package boson

import "reflect"

// encodeState is created per top-level Encode call and discarded when it
// returns. It owns the identity keyed reference table used to detect
// records already visited, so a cyclic or shared object graph only writes
// each record once.
type encodeState struct {
	cfg encodeConfig

	// refs maps a record's identity (its pointer value, or the address of
	// an addressable struct field standing in for one — see DESIGN.md,
	// Open Question 6 — paired with its struct type) to the reference id it
	// was assigned.
	//
	// The key is deliberately a raw address rather than anything derived
	// from the value's own Equal/hash: cyclic records may recurse forever
	// computing their own equality.
	refs    map[recordIdentity]int32
	nextRef int32
}

func newEncodeState(cfg encodeConfig) *encodeState {
	return &encodeState{cfg: cfg, refs: make(map[recordIdentity]int32)}
}

// recordIdentity is a record's address together with its struct type. The
// type is part of the key because a struct and a struct-typed field at
// offset 0 inside it share one address but are distinct records.
type recordIdentity struct {
	addr uintptr
	typ  reflect.Type
}

// identityOf returns the stable identity key for v. v must be a pointer to
// a struct, or an addressable struct.
func identityOf(v reflect.Value) recordIdentity {
	if v.Kind() == reflect.Ptr {
		return recordIdentity{addr: v.Pointer(), typ: v.Type().Elem()}
	}
	return recordIdentity{addr: v.Addr().Pointer(), typ: v.Type()}
}

// lookup returns the reference id already assigned to the record at
// identity, if any.
func (s *encodeState) lookup(identity recordIdentity) (int32, bool) {
	id, ok := s.refs[identity]
	return id, ok
}

// assign allocates the next reference id for identity and registers it.
// Callers must do this before writing the record's fields, so a field that
// refers back to the record itself sees it already assigned.
func (s *encodeState) assign(identity recordIdentity) int32 {
	id := s.nextRef
	s.nextRef++
	s.refs[identity] = id
	return id
}

// decodeState is created per top-level Decode call and discarded when it
// returns. It owns the id keyed reference table used to resolve
// back-references to records still being decoded.
type decodeState struct {
	cfg decodeConfig

	refs map[int32]reflect.Value
}

func newDecodeState(cfg decodeConfig) *decodeState {
	return &decodeState{cfg: cfg, refs: make(map[int32]reflect.Value)}
}

// register records id -> v immediately after a record's header (tag,
// reference id, class name, field count) is read and before any of its
// field payloads are read, so that a field pointing back to the record
// itself resolves correctly.
func (s *decodeState) register(id int32, v reflect.Value) {
	s.refs[id] = v
}

// resolve looks up a previously registered record by reference id. A miss
// means the stream referenced an id that was never assigned, a protocol
// violation the caller should surface as ErrDanglingReference.
func (s *decodeState) resolve(id int32) (reflect.Value, bool) {
	v, ok := s.refs[id]
	return v, ok
}
