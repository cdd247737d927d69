package boson_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stewi1014/boson"
	"github.com/stretchr/testify/require"
)

func TestTemporalRoundTrip(t *testing.T) {
	instant := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	date := boson.LocalDate{Year: 2024, Month: time.March, Day: 15}
	clock := boson.LocalTime{Hour: 10, Minute: 30, Second: 15, Nanosecond: 123000000}

	cases := []any{
		instant,
		date,
		clock,
		boson.LocalDateTime{LocalDate: date, LocalTime: clock},
		8*time.Hour + 6*time.Minute + 12*time.Second + 345*time.Millisecond,
		boson.Period{Years: 6, Months: 3, Days: 1},
		boson.Period{},
		boson.JodaDateTime(instant),
		boson.JodaLocalDate(date),
		boson.JodaLocalTime(clock),
		boson.JodaLocalDateTime(boson.LocalDateTime{LocalDate: date, LocalTime: clock}),
		boson.JodaDuration(2 * time.Hour),
		boson.JodaPeriod(boson.Period{Years: 1}),
	}

	for _, v := range cases {
		data, err := boson.Encode(v)
		require.NoErrorf(t, err, "encoding %#v", v)
		got, err := boson.Decode(data)
		require.NoErrorf(t, err, "decoding %#v", v)
		require.Equal(t, v, got)
	}
}

func TestJodaIntervalRoundTrip(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	iv := boson.JodaInterval{Start: start, End: end}

	data, err := boson.Encode(iv)
	require.NoError(t, err)
	got, err := boson.Decode(data)
	require.NoError(t, err)

	iv2, ok := got.(boson.JodaInterval)
	require.True(t, ok)
	require.True(t, iv2.Start.Equal(start))
	require.True(t, iv2.End.Equal(end))
}

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")

	data, err := boson.Encode(id)
	require.NoError(t, err)
	got, err := boson.Decode(data)
	require.NoError(t, err)

	require.Equal(t, id, got)
}
