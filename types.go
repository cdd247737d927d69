package boson

import (
	"fmt"
	"time"
)

// Char is a UTF-16 code unit, Boson's CHAR wire kind. Go has no built-in
// type distinct from uint16 for this, so the encoder emits CHAR only for
// values whose type is exactly Char; any other uint16 type is rejected.
type Char uint16

// LocalDate is a calendar date with no time-of-day or zone component,
// Boson's LOCAL_DATE wire kind (an epoch day count on the wire).
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

func (d LocalDate) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// EpochDay returns the number of days since 1970-01-01.
func (d LocalDate) EpochDay() int64 {
	return d.toTime().Unix() / secondsPerDay
}

// LocalDateFromEpochDay reconstructs a LocalDate from a day count.
func LocalDateFromEpochDay(days int64) LocalDate {
	t := time.Unix(days*secondsPerDay, 0).UTC()
	return LocalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

const secondsPerDay = 24 * 60 * 60

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// LocalTime is a time-of-day with no date or zone component, Boson's
// LOCAL_TIME wire kind (an ISO-8601 string on the wire).
type LocalTime struct {
	Hour, Minute, Second, Nanosecond int
}

func (t LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond > 0 {
		s += fmt.Sprintf(".%09d", t.Nanosecond)
	}
	return s
}

// LocalDateTime combines LocalDate and LocalTime, Boson's LOCAL_DATE_TIME
// wire kind (an ISO-8601 string on the wire).
type LocalDateTime struct {
	LocalDate
	LocalTime
}

func (t LocalDateTime) String() string {
	return t.LocalDate.String() + "T" + t.LocalTime.String()
}

// Period is a calendar-based amount of time (years, months, days), Boson's
// PERIOD wire kind (an ISO-8601 string such as "P6Y3M1D" on the wire).
type Period struct {
	Years, Months, Days int
}

func (p Period) String() string {
	if p.Years == 0 && p.Months == 0 && p.Days == 0 {
		return "P0D"
	}
	s := "P"
	if p.Years != 0 {
		s += fmt.Sprintf("%dY", p.Years)
	}
	if p.Months != 0 {
		s += fmt.Sprintf("%dM", p.Months)
	}
	if p.Days != 0 {
		s += fmt.Sprintf("%dD", p.Days)
	}
	return s
}

// The Joda-* types below carry the same wire shape as their plain
// counterparts, but as distinct Go types so the encoder can pick the
// corresponding joda-* tag by exact static type. Real Joda-Time calendar
// semantics are out of scope; these exist only so the wire tags round-trip.
type (
	JodaDateTime      time.Time
	JodaLocalDate     LocalDate
	JodaLocalTime     LocalTime
	JodaLocalDateTime LocalDateTime
	JodaDuration      time.Duration
	JodaPeriod        Period

	// JodaInterval is a half-open range between two instants, Boson's
	// JODA_INTERVAL wire kind (an ISO-8601 interval string on the wire).
	JodaInterval struct {
		Start, End time.Time
	}
)

func (i JodaInterval) String() string {
	return i.Start.UTC().Format(time.RFC3339Nano) + "/" + i.End.UTC().Format(time.RFC3339Nano)
}
