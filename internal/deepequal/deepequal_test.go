package deepequal_test

import (
	"testing"

	"github.com/stewi1014/boson/internal/deepequal"
	"github.com/stretchr/testify/assert"
)

type node struct {
	Value int
	Next  *node
}

func TestEqualSimple(t *testing.T) {
	assert.True(t, deepequal.Equal(1, 1))
	assert.False(t, deepequal.Equal(1, 2))
	assert.True(t, deepequal.Equal("a", "a"))
	assert.True(t, deepequal.Equal([]int{1, 2}, []int{1, 2}))
	assert.False(t, deepequal.Equal([]int{1, 2}, []int{1, 3}))
}

func TestEqualSelfCycle(t *testing.T) {
	a := &node{Value: 1}
	a.Next = a

	b := &node{Value: 1}
	b.Next = b

	assert.True(t, deepequal.Equal(a, b))

	c := &node{Value: 2}
	c.Next = c
	assert.False(t, deepequal.Equal(a, c))
}

func TestEqualMutualCycle(t *testing.T) {
	a1, a2 := &node{Value: 1}, &node{Value: 1}
	b1, b2 := &node{Value: 2}, &node{Value: 2}
	a1.Next = b1
	b1.Next = a1
	a2.Next = b2
	b2.Next = a2

	assert.True(t, deepequal.Equal(a1, a2))
}
