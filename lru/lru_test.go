package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c, err := New[string, int](5)
	require.NoError(t, err)

	_, found := c.Get("nope")
	assert.False(t, found, "empty cache must miss")

	for i, key := range []string{"a", "b", "c", "d", "e"} {
		c.Set(key, i+1)
	}
	assert.True(t, c.IsFull())
	assert.Equal(t, 5, c.Len())

	v, found := c.Get("b")
	require.True(t, found)
	assert.Equal(t, 2, v)
	v, found = c.Get("a")
	require.True(t, found)
	assert.Equal(t, 1, v)

	_, found = c.Get("z")
	assert.False(t, found)

	// 'c' is now the least recently used entry.
	c.Set("f", 6)
	v, found = c.Get("f")
	require.True(t, found)
	assert.Equal(t, 6, v)
	assert.False(t, c.Contains("c"))
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, []string{"d", "e", "b", "a", "f"}, c.Keys())
}

func TestCache_Update(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Set("a", 1)
	v, found := c.Get("a")
	require.True(t, found)
	assert.Equal(t, 1, v)

	c.Set("a", 2)
	v, found = c.Get("a")
	require.True(t, found)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestCache_UpdateWhenFullDoesNotEvict(t *testing.T) {
	c, err := New[string, int](2)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 10)

	assert.True(t, c.Contains("a"))
	assert.True(t, c.Contains("b"))
	assert.Equal(t, []string{"b", "a"}, c.Keys())

	c.Set("c", 3)
	assert.False(t, c.Contains("b"), "b should have been evicted")
	assert.Equal(t, []string{"a", "c"}, c.Keys())
}

func TestCache_ContainsDoesNotRefresh(t *testing.T) {
	c, err := New[int, string](2)
	require.NoError(t, err)

	c.Set(1, "one")
	c.Set(2, "two")
	assert.True(t, c.Contains(1))
	c.Set(3, "three")

	assert.False(t, c.Contains(1))
	assert.Equal(t, []int{2, 3}, c.Keys())
}

func TestCache_CapacityOne(t *testing.T) {
	c, err := New[string, int](1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Cap())

	c.Set("a", 1)
	c.Set("b", 2)
	assert.False(t, c.Contains("a"))
	v, found := c.Get("b")
	require.True(t, found)
	assert.Equal(t, 2, v)
}

func TestNew_ZeroCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		c, err := New[string, int](capacity)
		assert.ErrorIs(t, err, ErrZeroCapacity)
		assert.Nil(t, c)
	}
}
