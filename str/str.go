// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package str implements immutable null-terminated strings and a builder
// that constructs them.
//
// A String spans a sequence of bytes that is always followed in memory by a
// terminating zero byte. The terminator is not counted in the length of the
// string. A Builder is the only mutable representation: it keeps its buffer
// terminated after every operation, so a String can be built from it at any
// time without copying.
package str

import (
	"errors"

	"github.com/creachadair/skyjson/view"
	"go4.org/mem"
)

// ErrUnterminated is reported by FromView when the view does not end with a
// terminating zero byte.
var ErrUnterminated = errors.New("str: view is not null-terminated")

// A String is an immutable sequence of bytes followed by a zero terminator.
// The zero value is the empty string.
type String struct {
	b []byte // text plus terminator, or nil
}

// Of returns a String containing a copy of s.
func Of(s string) String {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return String{b: b}
}

// FromView returns a String spanning v, which must end with a zero byte.
// The String shares the storage of v.
func FromView(v view.View[byte]) (String, error) {
	b := v.Items()
	if len(b) == 0 || b[len(b)-1] != 0 {
		return String{}, ErrUnterminated
	}
	if len(b) == 1 {
		return String{}, nil
	}
	return String{b: b}, nil
}

// Len reports the length of s in bytes, not including the terminator.
func (s String) Len() int {
	if len(s.b) == 0 {
		return 0
	}
	return len(s.b) - 1
}

// IsEmpty reports whether s has length zero.
func (s String) IsEmpty() bool { return s.Len() == 0 }

// Bytes returns the contents of s, without the terminator. The caller must
// not modify the returned slice.
func (s String) Bytes() []byte {
	if len(s.b) == 0 {
		return nil
	}
	return s.b[:len(s.b)-1 : len(s.b)-1]
}

// Terminated returns the contents of s including the terminator. The caller
// must not modify the returned slice.
func (s String) Terminated() []byte {
	if len(s.b) == 0 {
		return []byte{0}
	}
	return s.b
}

// View returns a view of s that includes the terminator.
func (s String) View() view.View[byte] { return view.Over(s.Terminated()) }

// RO returns a read-only view of the contents of s.
func (s String) RO() mem.RO { return mem.B(s.Bytes()) }

// String returns a copy of the contents of s as a Go string.
func (s String) String() string { return string(s.Bytes()) }

// Compare compares a and b bytewise. It returns 0 if a and b are equal.
// Otherwise, if i is the offset of the first byte where they differ, it
// returns 1+i if a is greater and -1-i if b is greater. If one string is a
// proper prefix of the other, the first difference is at the end of the
// shorter.
func Compare(a, b String) int {
	ab, bb := a.Bytes(), b.Bytes()
	n := min(len(ab), len(bb))
	for i := 0; i < n; i++ {
		if ab[i] > bb[i] {
			return 1 + i
		} else if ab[i] < bb[i] {
			return -1 - i
		}
	}
	switch {
	case len(ab) > len(bb):
		return 1 + len(bb)
	case len(bb) > len(ab):
		return -1 - len(ab)
	}
	return 0
}

// Equal reports whether a and b have the same contents.
func Equal(a, b String) bool { return a.RO().Equal(b.RO()) }

// HasPrefix reports whether s begins with prefix.
func HasPrefix(s, prefix String) bool { return mem.HasPrefix(s.RO(), prefix.RO()) }

// HasSuffix reports whether s ends with suffix.
func HasSuffix(s, suffix String) bool { return mem.HasSuffix(s.RO(), suffix.RO()) }

// TrimLeft returns the substring of s with leading spaces, tabs and
// newlines removed. It does not copy.
func TrimLeft(s String) String {
	i := 0
	for i < s.Len() && isSpace(s.b[i]) {
		i++
	}
	if i == s.Len() {
		return String{}
	}
	return String{b: s.b[i:]}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' }
