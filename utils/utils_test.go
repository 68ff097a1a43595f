package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnpack2(t *testing.T) {
	a, b := Unpack2([]string{"x", "y", "z"})
	assert.Equal(t, "x", a)
	assert.Equal(t, "y", b)

	a, b = Unpack2([]string{"x"})
	assert.Equal(t, "x", a)
	assert.Equal(t, "", b)

	a, b = Unpack2([]string(nil))
	assert.Equal(t, "", a)
	assert.Equal(t, "", b)
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0.0, 0.5, 1.0))
	assert.True(t, IsInRange(0, 0, 0))
	assert.False(t, IsInRange(0.0, 1.5, 1.0))
	assert.False(t, IsInRange(1, 0, 3))
}

func TestUnpack3(t *testing.T) {
	a, b, c := Unpack3([]string{"m", "(I)V", "func_1_m"})
	assert.Equal(t, []string{"m", "(I)V", "func_1_m"}, []string{a, b, c})

	x, y, z := Unpack3([]int{7})
	assert.Equal(t, []int{7, 0, 0}, []int{x, y, z})
}
