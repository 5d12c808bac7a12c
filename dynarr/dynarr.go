// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package dynarr implements a growable array with an explicit growth policy.
//
// An Array starts with capacity zero. When a push overflows, the capacity
// doubles, with a minimum of 16 elements. A bulk append grows to twice the
// old capacity plus the number of appended elements.
package dynarr

import (
	"errors"
	"fmt"
)

// ErrOverflow is reported when an array cannot grow to hold more elements.
var ErrOverflow = errors.New("dynarr: overflow")

// minCap is the capacity of an array after its first growth.
const minCap = 16

// An Array is a growable sequence of elements of type T.
// The zero value is an empty array ready for use, with no limit.
type Array[T any] struct {
	data  []T // len(data) is the capacity
	n     int // number of live elements
	limit int // maximum number of elements; 0 means no limit
}

// NewLimited constructs an empty array that refuses to grow beyond limit
// elements. A limit <= 0 means no limit.
func NewLimited[T any](limit int) *Array[T] { return &Array[T]{limit: max(limit, 0)} }

// Len reports the number of elements in a.
func (a *Array[T]) Len() int { return a.n }

// Cap reports the number of elements a can hold without growing.
func (a *Array[T]) Cap() int { return len(a.data) }

// At returns the element at offset i. It panics if i is out of range.
func (a *Array[T]) At(i int) T { return a.data[:a.n][i] }

// Set replaces the element at offset i. It panics if i is out of range.
func (a *Array[T]) Set(i int, v T) { a.data[:a.n][i] = v }

// Slice returns the live elements of a. The slice aliases the storage of a
// and is valid only until the next operation that modifies a.
func (a *Array[T]) Slice() []T { return a.data[:a.n:a.n] }

// Push adds a copy of v to the end of a.
func (a *Array[T]) Push(v T) error {
	if a.n >= len(a.data) {
		next := minCap
		if len(a.data) != 0 {
			next = 2 * len(a.data)
		}
		if err := a.grow(next, a.n+1); err != nil {
			return err
		}
	}
	a.data[a.n] = v
	a.n++
	return nil
}

// Append adds copies of vs to the end of a, in order.
func (a *Array[T]) Append(vs ...T) error {
	if a.n+len(vs) > len(a.data) {
		next := minCap
		if len(a.data) != 0 {
			next = 2 * len(a.data)
		}
		if err := a.grow(next+len(vs), a.n+len(vs)); err != nil {
			return err
		}
	}
	copy(a.data[a.n:], vs)
	a.n += len(vs)
	return nil
}

// grow reallocates a to hold want elements. If a has a limit, the new
// capacity is clipped to it, and growth fails if need exceeds the limit.
func (a *Array[T]) grow(want, need int) error {
	if a.limit > 0 {
		if need > a.limit {
			return fmt.Errorf("%w: %d elements exceeds limit %d", ErrOverflow, need, a.limit)
		}
		want = min(want, a.limit)
	}
	if want < need {
		// The capacity computation wrapped around.
		return fmt.Errorf("%w: cannot allocate %d elements", ErrOverflow, need)
	}
	next := make([]T, want)
	copy(next, a.data[:a.n])
	a.data = next
	return nil
}

// Pop removes and returns the last element of a. It reports false if a is
// empty.
func (a *Array[T]) Pop() (T, bool) {
	var zero T
	if a.n == 0 {
		return zero, false
	}
	a.n--
	v := a.data[a.n]
	a.data[a.n] = zero
	return v, true
}

// Truncate discards all but the first n elements of a. It panics if n is
// negative or greater than the length of a.
func (a *Array[T]) Truncate(n int) {
	if n < 0 || n > a.n {
		panic(fmt.Sprintf("dynarr: truncate %d out of range (n=%d)", n, a.n))
	}
	clear(a.data[n:a.n])
	a.n = n
}

// Clear resets a to empty without releasing its storage to a. It is used
// when the contents of a have been handed off elsewhere, so the previous
// storage is not modified. The limit of a is preserved.
func (a *Array[T]) Clear() { a.data, a.n = nil, 0 }

// Free releases the storage of a and resets it to empty. Free is safe to
// call more than once.
func (a *Array[T]) Free() {
	clear(a.data)
	a.data, a.n = nil, 0
}
