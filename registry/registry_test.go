package registry_test

import (
	"reflect"
	"testing"

	"github.com/stewi1014/boson/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Name string
}

type color int

func (c color) String() string {
	return [...]string{"Red", "Green", "Blue"}[c]
}

const (
	red color = iota
	green
	blue
)

func TestRegisterRecordRoundTrip(t *testing.T) {
	registry.RegisterRecord(widget{})

	name := registry.Name(reflect.TypeOf(widget{}))
	ty, ok := registry.RecordType(name)
	require.True(t, ok)
	assert.Equal(t, "widget", ty.Name())
}

func TestRegisterEnumRoundTrip(t *testing.T) {
	registry.RegisterEnum(red, red, green, blue)

	ty := reflect.TypeOf(green)
	require.True(t, registry.IsEnum(ty))

	v, ok := registry.EnumConstant(ty, "Green")
	require.True(t, ok)
	assert.Equal(t, green, v.Interface())

	_, ok = registry.EnumConstant(ty, "Purple")
	assert.False(t, ok)
}
