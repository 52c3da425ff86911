package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsMultiple([]string{"a"}))
	assert.True(t, IsMultiple([]string{"a", "b"}))

	v, ok := First([]string{"x", "y"})
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = First([]string(nil))
	assert.False(t, ok)
}

func TestSortedKeys(t *testing.T) {
	m := map[string]any{"02": nil, "01": "good", "  ": "blank"}

	assert.Equal(t, []string{"  ", "01", "02"}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[string]int{}))
}
