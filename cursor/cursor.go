// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the structure of a JSON value.
package cursor

import (
	"fmt"

	"github.com/creachadair/skyjson"
	"github.com/creachadair/skyjson/str"
)

// Path traverses a sequential path into the structure of v where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its value.
func Path[T skyjson.Value](v skyjson.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("wrong value type %T", c.Value())
	}
	return out, nil
}

// A Cursor is a pointer that navigates into the structure of a value.
type Cursor struct {
	org skyjson.Value
	stk []step
	err error
}

// A step is one position on the path of a cursor. If the value was reached
// through an object member, mem points to that member.
type step struct {
	val skyjson.Value
	mem *skyjson.Member
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin skyjson.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() skyjson.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() skyjson.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1].val
}

// Member reports the object member whose value is under the cursor, or nil
// if the current value was not reached through an object member. The member
// points into its enclosing object, so changes to it are visible there.
func (c *Cursor) Member() *skyjson.Member {
	if c.AtOrigin() {
		return nil
	}
	return c.stk[len(c.stk)-1].mem
}

// Path reports the complete sequence of values from the origin to the
// current location in c.
func (c *Cursor) Path() []skyjson.Value {
	out := make([]skyjson.Value, 0, len(c.stk)+1)
	out = append(out, c.org)
	for _, s := range c.stk {
		out = append(out, s.val)
	}
	return out
}

// Names reports the names of the members traversed from the origin to the
// current location in c, as stored (escaped). Steps into arrays or through
// functions contribute no name.
func (c *Cursor) Names() []str.String {
	var out []str.String
	for _, s := range c.stk {
		if s.mem != nil {
			out = append(out, s.mem.Name)
		}
	}
	return out
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are strings or str.String values
// (denoting object member names), integers (denoting offsets into arrays or
// objects), functions (see below), or nil. If the path cannot be completely consumed, traversal stops
// at the last value reached and an error is recorded. Use Err to recover the
// error.
//
// If a path element is a string, the current value must be an object, and
// the string selects the value of the first member with that name, as by
// Object.Find. A str.String element instead matches the stored (escaped)
// member name exactly, so it can select names written with any escapes.
//
// If a path element is an integer, the current value must be an array or
// object, and the integer selects an element of the array or the value of a
// member of the object by position. Negative indices count backward from
// the end (-1 is last, -2 second last).
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(skyjson.Value) (skyjson.Value, error)
//
// If the function reports an error, traversal stops and the error is
// recorded. A nil path element is ignored.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, ok := cur.(skyjson.Object)
			if !ok {
				return c.setErrorf("cannot traverse %T with %q", cur, elt)
			}
			m := o.Find(t)
			if m == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.pushMember(m)

		case str.String:
			o, ok := cur.(skyjson.Object)
			if !ok {
				return c.setErrorf("cannot traverse %T with %q", cur, t.String())
			}
			m := findRaw(o, t)
			if m == nil {
				return c.setErrorf("key %q not found", t.String())
			}
			cur = c.pushMember(m)

		case int:
			switch e := cur.(type) {
			case skyjson.Array:
				i, ok := fixArrayBound(len(e), t)
				if !ok {
					return c.setErrorf("array index %d out of bounds (n=%d)", i, len(e))
				}
				cur = c.push(e[i])
			case skyjson.Object:
				i, ok := fixArrayBound(len(e), t)
				if !ok {
					return c.setErrorf("object index %d out of bounds (n=%d)", i, len(e))
				}
				cur = c.pushMember(&e[i])
			default:
				return c.setErrorf("cannot traverse %T with %v", cur, elt)
			}

		case func(skyjson.Value) (skyjson.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v skyjson.Value) skyjson.Value {
	c.stk = append(c.stk, step{val: v})
	return v
}

func (c *Cursor) pushMember(m *skyjson.Member) skyjson.Value {
	c.stk = append(c.stk, step{val: m.Value, mem: m})
	return m.Value
}

// findRaw returns the first member of o whose stored name equals name.
func findRaw(o skyjson.Object, name str.String) *skyjson.Member {
	for i := range o {
		if str.Equal(o[i].Name, name) {
			return &o[i]
		}
	}
	return nil
}

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
