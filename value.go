// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package skyjson

import (
	"fmt"

	"github.com/creachadair/skyjson/str"
)

// A Value is an arbitrary JSON value. The concrete type of a Value is
// exactly one of Array, Object, Number, String, Bool, or Null.
type Value interface {
	// Kind reports which variant of value this is.
	Kind() Kind

	// JSON returns the compact JSON encoding of the value.
	JSON() string

	isValue()
}

// Kind identifies the variants of Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindArray Kind = iota + 1
	KindObject
	KindNumber
	KindString
	KindBool
	KindNull
)

var kindStr = [...]string{
	0:          "invalid",
	KindArray:  "array",
	KindObject: "object",
	KindNumber: "number",
	KindString: "string",
	KindBool:   "bool",
	KindNull:   "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[k]
}

// An Array is an ordered sequence of values.
type Array []Value

// An Object is an ordered sequence of named members. Member names should be
// unique, but this is not enforced.
type Object []Member

// Find returns the first member of o with the given name, or nil. The name
// is plain text: it matches a member whose stored name is the escaped form of
// name as produced by Quote. Names spelled with other escapes, such as \u0041
// for A, do not match.
func (o Object) Find(name string) *Member {
	want := Quote(name)
	for i, m := range o {
		if m.Name.RO().EqualString(want) {
			return &o[i]
		}
	}
	return nil
}

// A Member is a single name-value pair belonging to an Object. Like the
// body of a String, Name holds the escaped text of the name.
type Member struct {
	Name  str.String
	Value Value
}

// Field constructs an object member with the given plain-text name, escaped
// as by Quote, and value. The value is converted as by ToValue.
func Field(name string, value any) Member {
	return Member{Name: str.Of(Quote(name)), Value: ToValue(value)}
}

// A Number is a numeric value.
type Number float64

// A String is a string value. Its text is the body of a JSON string as it
// appears in the source, without the quotation marks: escape sequences are
// not decoded.
type String struct{ raw str.String }

// Raw returns a String whose body is s, which must already be escaped.
func Raw(s str.String) String { return String{raw: s} }

// Text returns a String for the plain text s, escaping it as needed.
func Text(s string) String { return String{raw: str.Of(Quote(s))} }

// Raw returns the undecoded body of s.
func (s String) Raw() str.String { return s.raw }

// Len reports the length in bytes of the undecoded body of s.
func (s String) Len() int { return s.raw.Len() }

// A Bool is a Boolean value, true or false.
type Bool bool

// Null is the null value.
type Null struct{}

func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Bool) Kind() Kind   { return KindBool }
func (Null) Kind() Kind   { return KindNull }

// JSON satisfies the Value interface.
func (a Array) JSON() string { return toJSON(a) }

// JSON satisfies the Value interface.
func (o Object) JSON() string { return toJSON(o) }

// JSON satisfies the Value interface.
func (n Number) JSON() string { return toJSON(n) }

// JSON satisfies the Value interface.
func (s String) JSON() string { return toJSON(s) }

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return toJSON(b) }

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

func (Array) isValue()  {}
func (Object) isValue() {}
func (Number) isValue() {}
func (String) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}

// A Visitor handles each variant of Value. Every method must be defined, so
// a type that implements Visitor is guaranteed to handle all the variants.
type Visitor[T any] interface {
	VisitArray(Array) T
	VisitObject(Object) T
	VisitNumber(Number) T
	VisitString(String) T
	VisitBool(Bool) T
	VisitNull(Null) T
}

// Visit calls the method of vis corresponding to the concrete type of v, and
// returns its result. It panics if v is nil.
func Visit[T any](v Value, vis Visitor[T]) T {
	switch t := v.(type) {
	case Array:
		return vis.VisitArray(t)
	case Object:
		return vis.VisitObject(t)
	case Number:
		return vis.VisitNumber(t)
	case String:
		return vis.VisitString(t)
	case Bool:
		return vis.VisitBool(t)
	case Null:
		return vis.VisitNull(t)
	}
	panic(fmt.Sprintf("skyjson: invalid value %T", v))
}

// ToValue converts a Go value into a Value. It panics if v does not have
// one of the types listed below:
//
//	Go type                     | Value type
//	--------------------------- | -----------------------
//	nil                         | Null
//	bool                        | Bool
//	int, intN, uint, uintN      | Number
//	float32, float64            | Number
//	string                      | String (as by Text)
//	str.String                  | String (as by Text)
//	[]any, []Value              | Array, elements converted
//	Value                       | unchanged
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case string:
		return Text(t)
	case str.String:
		return Text(t.String())
	case []Value:
		return Array(t)
	case []any:
		a := make(Array, len(t))
		for i, e := range t {
			a[i] = ToValue(e)
		}
		return a
	}
	panic(fmt.Sprintf("skyjson: cannot convert %T to a value", v))
}
