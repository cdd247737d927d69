package record_test

import (
	"reflect"
	"testing"

	"github.com/stewi1014/boson/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type base struct {
	Shared string
}

type withEmbed struct {
	base
	Name string
}

type withDirectives struct {
	Visible  string
	Hidden   string `boson:"-"`
	Renamed  string `boson:"other"`
	Locked   string `boson:",readonly"`
	unexport string //nolint:unused
}

func names(d *record.Descriptor) []string {
	out := make([]string, len(d.Slots))
	for i, s := range d.Slots {
		out[i] = s.Name
	}
	return out
}

func TestDescribeSortsAndIncludesEmbedded(t *testing.T) {
	d := record.Describe(reflect.TypeOf(withEmbed{}), false)
	assert.Equal(t, []string{"Name", "Shared"}, names(d))
}

func TestDescribeDirectives(t *testing.T) {
	d := record.Describe(reflect.TypeOf(withDirectives{}), false)
	assert.ElementsMatch(t, []string{"Visible", "other"}, names(d))

	withFinal := record.Describe(reflect.TypeOf(withDirectives{}), true)
	assert.ElementsMatch(t, []string{"Visible", "other", "Locked"}, names(withFinal))
}

type withEmbed2 struct {
	base
	Name string
}

func TestIgnoreEmbedded(t *testing.T) {
	record.IgnoreEmbedded(withEmbed2{})
	d := record.Describe(reflect.TypeOf(withEmbed2{}), false)
	require.Equal(t, []string{"Name"}, names(d))
}
