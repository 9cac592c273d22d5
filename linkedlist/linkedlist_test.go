package linkedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	var l List[string]
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Values())

	l.Append("a")
	l.Append("b")
	l.Append("c")
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"a", "b", "c"}, l.Values())
	assert.True(t, l.Contains("b"))
	assert.False(t, l.Contains("z"))
}

func TestUnionIntersection(t *testing.T) {
	listA := FromSlice([]string{"a", "b", "c"})
	listB := FromSlice([]string{"a", "b", "d"})
	listC := FromSlice([]string{"e", "f"})

	assert.Equal(t, []string{"a", "b", "c"}, listA.Values())
	assert.Equal(t, []string{"a", "b", "d"}, listB.Values())
	assert.Equal(t, []string{"e", "f"}, listC.Values())

	assert.Equal(t, []string{"a", "b", "c", "d"}, Union(listA, listB).Values())
	assert.Equal(t, []string{"a", "b"}, Intersection(listA, listB).Values())
	assert.Empty(t, Intersection(listA, listC).Values())
	assert.Equal(t, []string{"a", "b", "c", "e", "f"}, Union(listA, listC).Values())
}

func TestUnionIntersection_Duplicates(t *testing.T) {
	a := FromSlice([]int{3, 2, 3, 1, 2})
	b := FromSlice([]int{1, 1, 4, 3})

	assert.Equal(t, []int{3, 2, 1, 4}, Union(a, b).Values())
	assert.Equal(t, []int{3, 1}, Intersection(a, b).Values())
}

func TestUnionIntersection_Nil(t *testing.T) {
	a := FromSlice([]int{1, 2})
	var empty *List[int]

	assert.Equal(t, []int{1, 2}, Union(a, empty).Values())
	assert.Equal(t, []int{1, 2}, Union(empty, a).Values())
	assert.Empty(t, Intersection(a, empty).Values())
	assert.Empty(t, Intersection(empty, a).Values())
	assert.Equal(t, 0, Union(empty, empty).Len())
}
