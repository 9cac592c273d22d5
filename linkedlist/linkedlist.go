// Package linkedlist implements a singly linked list along with set union
// and intersection over lists.
package linkedlist

import (
	"github.com/chronos-tachyon/assert"
)

type node[T comparable] struct {
	value T
	next  *node[T]
}

// List is a singly linked list.  The zero value is an empty list ready to
// use.
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// FromSlice returns a list holding values, in order.
func FromSlice[T comparable](values []T) *List[T] {
	l := New[T]()
	for _, value := range values {
		l.Append(value)
	}
	return l
}

// Append adds value to the end of the list.
func (l *List[T]) Append(value T) {
	n := &node[T]{value: value}
	if l.tail == nil {
		assert.Assertf(l.head == nil && l.size == 0, "list has a head but no tail")
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Len returns the number of values in the list.  A nil list is empty.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Values returns the values of the list, in order.  A nil list is empty.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.Len())
	if l == nil {
		return out
	}
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Contains reports whether value is in the list.
func (l *List[T]) Contains(value T) bool {
	if l == nil {
		return false
	}
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			return true
		}
	}
	return false
}

// Union returns a new list holding each distinct value found in a or b,
// in order of first appearance in a followed by b.
func Union[T comparable](a, b *List[T]) *List[T] {
	out := New[T]()
	seen := make(map[T]struct{}, a.Len()+b.Len())
	for _, l := range [...]*List[T]{a, b} {
		for _, value := range l.Values() {
			if _, found := seen[value]; !found {
				seen[value] = struct{}{}
				out.Append(value)
			}
		}
	}
	return out
}

// Intersection returns a new list holding each distinct value found in both
// a and b, in order of first appearance in a.
func Intersection[T comparable](a, b *List[T]) *List[T] {
	inB := make(map[T]struct{}, b.Len())
	for _, value := range b.Values() {
		inB[value] = struct{}{}
	}

	out := New[T]()
	for _, value := range a.Values() {
		if _, found := inB[value]; found {
			delete(inB, value)
			out.Append(value)
		}
	}
	return out
}
