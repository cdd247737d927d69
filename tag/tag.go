// Package tag enumerates the Boson wire tags: the single byte that
// precedes every payload and fixes the layout of what follows.
//
// Tag values are fixed for interoperability with other Boson
// implementations and must never be renumbered.
package tag

import "fmt"

// Tag is a single byte identifying the shape of the payload that follows
// it on the wire.
type Tag byte

const (
	Byte              Tag = 1
	Short             Tag = 2
	Int               Tag = 3
	Long              Tag = 4
	Float             Tag = 5
	Double            Tag = 6
	Boolean           Tag = 7
	Char              Tag = 8
	Null              Tag = 9
	String            Tag = 10
	Array             Tag = 11
	List              Tag = 12
	Map               Tag = 13
	Record            Tag = 14
	Reference         Tag = 15
	Set               Tag = 16
	Enum              Tag = 17
	ByteArray         Tag = 18
	Date              Tag = 19
	LocalDate         Tag = 20
	LocalDateTime     Tag = 21
	LocalTime         Tag = 22
	Duration          Tag = 23
	Period            Tag = 24
	JodaDateTime      Tag = 25
	JodaLocalDate     Tag = 26
	JodaLocalTime     Tag = 27
	JodaLocalDateTime Tag = 28
	JodaDuration      Tag = 29
	JodaInterval      Tag = 30
	JodaPeriod        Tag = 31
	UUID              Tag = 32
)

// Version is the single byte that precedes every encoded message. A decoder
// that does not recognise this byte must refuse the stream rather than
// guess at its layout.
const Version byte = 1

var names = map[Tag]string{
	Byte:              "byte",
	Short:             "short",
	Int:               "int",
	Long:              "long",
	Float:             "float",
	Double:            "double",
	Boolean:           "boolean",
	Char:              "char",
	Null:              "null",
	String:            "string",
	Array:             "array",
	List:              "list",
	Map:               "map",
	Record:            "record",
	Reference:         "reference",
	Set:               "set",
	Enum:              "enum",
	ByteArray:         "byte-array",
	Date:              "date",
	LocalDate:         "local-date",
	LocalDateTime:     "local-date-time",
	LocalTime:         "local-time",
	Duration:          "duration",
	Period:            "period",
	JodaDateTime:      "joda-datetime",
	JodaLocalDate:     "joda-local-date",
	JodaLocalTime:     "joda-local-time",
	JodaLocalDateTime: "joda-local-date-time",
	JodaDuration:      "joda-duration",
	JodaInterval:      "joda-interval",
	JodaPeriod:        "joda-period",
	UUID:              "uuid",
}

// String returns the tag's wire name, or "unknown(N)" for an undefined tag.
func (t Tag) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", byte(t))
}

// Defined reports whether t is one of the 32 tags fixed by the wire grammar.
func (t Tag) Defined() bool {
	_, ok := names[t]
	return ok
}
