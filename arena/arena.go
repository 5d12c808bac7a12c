// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package arena implements a fixed-capacity bump allocator for temporary
// data.
//
// An Arena hands out regions of a single buffer in order. Regions are never
// freed individually; Reset reclaims all of them at once. Once an arena is
// full, allocation reports ErrNoSpace rather than growing.
//
// An Arena is not safe for concurrent use. A region obtained from an arena
// must not be used after the next call to Reset.
package arena

import (
	"errors"
	"fmt"
	"unsafe"
)

// DefaultCapacity is the capacity in bytes of an arena constructed with a
// non-positive capacity.
const DefaultCapacity = 8 << 20

// ErrNoSpace is reported when an allocation would exceed the capacity of an
// arena.
var ErrNoSpace = errors.New("arena: no space")

// An Arena is a bump allocator over a fixed-capacity buffer.
// A nil *Arena is not usable; use New.
type Arena struct {
	buf  []byte // allocated on first use
	mark int    // offset of the next free byte
	cap  int    // total byte budget
	peak int    // maximum observed mark
	gen  uint64 // number of resets
}

// New constructs an arena with the specified capacity in bytes. If capacity
// <= 0, DefaultCapacity is used. The backing buffer is not allocated until
// the first allocation.
func New(capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Arena{cap: capacity}
}

// Alloc returns a region of n bytes from a. If the arena does not have n
// bytes remaining, Alloc reports ErrNoSpace and a is not modified.
//
// The contents of the region are unspecified if a has been reset since the
// bytes were last used.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if err := a.reserve(n); err != nil {
		return nil, err
	}
	if a.buf == nil {
		a.buf = make([]byte, a.cap)
	}
	start := a.mark - n
	return a.buf[start:a.mark:a.mark], nil
}

// AllocSlice returns a slice of n elements of type T charged against the
// capacity of a. Byte slices are carved from the arena buffer; other element
// types are allocated separately, since the buffer cannot hold values the
// garbage collector must trace. In both cases the size counts against the
// arena and is reclaimed by Reset.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	var zero T
	if _, ok := any(zero).(byte); ok {
		b, err := a.Alloc(n)
		if err != nil {
			return nil, err
		}
		return any(b).([]T), nil
	}
	if n < 0 {
		return nil, fmt.Errorf("arena: invalid size %d", n)
	}
	if err := a.reserve(n * int(unsafe.Sizeof(zero))); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

func (a *Arena) reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("arena: invalid size %d", n)
	} else if n > a.cap-a.mark {
		return fmt.Errorf("%w (want %d bytes, have %d)", ErrNoSpace, n, a.cap-a.mark)
	}
	a.mark += n
	a.peak = max(a.peak, a.mark)
	return nil
}

// Reset discards all allocations from a, without releasing its buffer.
// Regions returned by earlier allocations are invalid after Reset.
func (a *Arena) Reset() {
	a.mark = 0
	a.gen++
}

// Len reports the number of bytes currently allocated from a.
func (a *Arena) Len() int { return a.mark }

// Cap reports the total capacity of a in bytes.
func (a *Arena) Cap() int { return a.cap }

// Available reports the number of bytes that can still be allocated.
func (a *Arena) Available() int { return a.cap - a.mark }

// Peak reports the largest number of bytes allocated from a at any one
// time. It is not cleared by Reset.
func (a *Arena) Peak() int { return a.peak }

// Generation reports the number of times a has been reset.
func (a *Arena) Generation() uint64 { return a.gen }
