// Package boson implements a self-describing binary serialization codec
// for arbitrary Go value graphs, including graphs containing cycles.
//
// Encode walks a value once, dispatching on its exact runtime type to one
// of the fixed wire tags in package tag. Struct values reached through a
// pointer (or an addressable field) become records: their fields are
// looked up via package record's field introspector and tracked by
// identity so a value visited more than once is written once and
// back-referenced thereafter. Decode is the mirror image: it reads a tag,
// reconstructs the value, and — for records — registers the new instance
// in its own reference table before reading any of its fields, so a field
// that points back to the record under construction resolves correctly.
//
// Record and enum types must be registered with package registry before
// they can be decoded by name.
package boson
