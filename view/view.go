// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package view defines a half-open window over a sequence of elements, and
// the operations that promote scratch data into an arena.
//
// A View does not necessarily own the elements it spans. A view produced by
// Of borrows the storage of a dynamic array, and is valid only until that
// array is next modified. A view produced by CopyToArena or DrainToArena is
// owned by the arena, and is valid until the arena is reset.
package view

import (
	"unsafe"

	"github.com/creachadair/skyjson/arena"
	"github.com/creachadair/skyjson/dynarr"
)

// A View is a half-open range [start, end) of elements of type T.
// The zero value is an empty view.
type View[T any] struct{ elts []T }

// Over returns a view spanning the elements of s.
func Over[T any](s []T) View[T] { return View[T]{elts: s[:len(s):len(s)]} }

// Of returns a view of the current contents of arr, without copying.
func Of[T any](arr *dynarr.Array[T]) View[T] { return View[T]{elts: arr.Slice()} }

// Len reports the number of elements spanned by v.
func (v View[T]) Len() int { return len(v.elts) }

// Size reports the number of bytes spanned by v.
func (v View[T]) Size() int {
	var zero T
	return len(v.elts) * int(unsafe.Sizeof(zero))
}

// IsEmpty reports whether v spans no elements.
func (v View[T]) IsEmpty() bool { return len(v.elts) == 0 }

// At returns the element at offset i of v. It panics if i is out of range.
func (v View[T]) At(i int) T { return v.elts[i] }

// Items returns the elements spanned by v. The caller must not modify the
// contents of the slice unless it owns the storage.
func (v View[T]) Items() []T { return v.elts }

// Sub returns the subview of v spanning [i, j).
// It panics if the range is not valid for v.
func (v View[T]) Sub(i, j int) View[T] { return View[T]{elts: v.elts[i:j:j]} }

// CopyToArena copies the elements of v into a, and returns a view of the
// copy. If a does not have room for the copy, it reports arena.ErrNoSpace.
func CopyToArena[T any](a *arena.Arena, v View[T]) (View[T], error) {
	buf, err := arena.AllocSlice[T](a, len(v.elts))
	if err != nil {
		return View[T]{}, err
	}
	copy(buf, v.elts)
	return View[T]{elts: buf}, nil
}

// DrainToArena copies the contents of arr into a and frees arr, returning a
// view of the copy. The array is freed whether or not the copy succeeds.
func DrainToArena[T any](a *arena.Arena, arr *dynarr.Array[T]) (View[T], error) {
	defer arr.Free()
	return CopyToArena(a, Of(arr))
}
