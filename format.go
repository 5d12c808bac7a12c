// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package skyjson

import (
	"fmt"
	"math"

	"github.com/creachadair/skyjson/arena"
	"github.com/creachadair/skyjson/str"
)

// intTolerance is the largest distance from its integer part at which a
// number is rendered as an integer.
const intTolerance = 1e-4

// Format renders the compact JSON encoding of v into a new string allocated
// in a. Formatted numbers are staged in a as well.
func Format(a *arena.Arena, v Value) (str.String, error) {
	var sb str.Builder
	defer sb.Free()
	if err := Append(a, &sb, v); err != nil {
		return str.String{}, err
	}
	n := sb.Len()
	s, err := sb.BuildToArena(a)
	if err != nil {
		return str.String{}, resourceError(n, err)
	}
	return s, nil
}

// Append writes the compact JSON encoding of v to sb. The members of objects
// are written in their stored order. If a != nil, formatted numbers are
// staged in a; otherwise they are allocated on the heap.
//
// Numbers within 1e-4 of their integer part are written as that integer.
// Other numbers are written with exactly three digits after the decimal
// point, so that 3.14159 is written as 3.142. Infinities and NaN are written
// as null.
func Append(a *arena.Arena, sb *str.Builder, v Value) error {
	return Visit(v, formatter{a: a, sb: sb})
}

// toJSON renders v as a Go string, staging numbers on the heap.
func toJSON(v Value) string {
	var sb str.Builder
	if err := Append(nil, &sb, v); err != nil {
		panic(fmt.Sprintf("skyjson: formatting failed: %v", err))
	}
	return sb.Build().String()
}

// formatter implements Visitor to write values to a string builder.
type formatter struct {
	a  *arena.Arena
	sb *str.Builder
}

func (f formatter) VisitArray(v Array) error {
	if err := f.push('['); err != nil {
		return err
	}
	for i, elt := range v {
		if i > 0 {
			if err := f.push(','); err != nil {
				return err
			}
		}
		if err := Visit(elt, f); err != nil {
			return err
		}
	}
	return f.push(']')
}

func (f formatter) VisitObject(v Object) error {
	if err := f.push('{'); err != nil {
		return err
	}
	for i, m := range v {
		if i > 0 {
			if err := f.push(','); err != nil {
				return err
			}
		}
		if err := f.quoted(m.Name); err != nil {
			return err
		}
		if err := f.push(':'); err != nil {
			return err
		}
		if err := Visit(m.Value, f); err != nil {
			return err
		}
	}
	return f.push('}')
}

func (f formatter) VisitNumber(v Number) error {
	x := float64(v)
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return f.pushString("null")
	}
	if t := math.Trunc(x); math.Abs(x-t) < intTolerance {
		if t == 0 {
			t = 0 // discard the sign of negative zero
		}
		return f.pushFmt("%.0f", t)
	}
	return f.pushFmt("%.3f", x)
}

func (f formatter) VisitString(v String) error { return f.quoted(v.raw) }

func (f formatter) VisitBool(v Bool) error {
	if v {
		return f.pushString("true")
	}
	return f.pushString("false")
}

func (f formatter) VisitNull(Null) error { return f.pushString("null") }

func (f formatter) quoted(s str.String) error {
	if err := f.push('"'); err != nil {
		return err
	}
	if err := f.sb.PushStr(s); err != nil {
		return f.fail(err)
	}
	return f.push('"')
}

func (f formatter) push(c byte) error { return f.fail(f.sb.Push(c)) }

func (f formatter) pushString(s string) error { return f.fail(f.sb.PushString(s)) }

func (f formatter) pushFmt(format string, args ...any) error {
	if f.a == nil {
		return f.fail(f.sb.PushBytes(fmt.Appendf(nil, format, args...)))
	}
	return f.fail(f.sb.PushFmt(f.a, format, args...))
}

// fail converts an error from the builder into an *Error whose offset is
// the length of the output so far.
func (f formatter) fail(err error) error {
	if err == nil {
		return nil
	}
	return resourceError(f.sb.Len(), err)
}
