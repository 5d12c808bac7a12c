// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package skyjson implements a JSON parser and serializer whose results are
// allocated in a bounded arena.
//
// # Arenas
//
// All the storage for parsed values is drawn from an arena.Arena supplied by
// the caller. Values remain valid until the arena is reset; after that, any
// value parsed from the arena must not be used:
//
//	a := arena.New(arena.DefaultCapacity)
//	v, err := skyjson.ParseString(a, `{"a": [1, 2, 3]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	...
//	a.Reset() // v is no longer valid
//
// When the arena runs out of space, parsing and formatting fail with an
// error whose code is NoSpace.
//
// # Parsing
//
// The parser tries each kind of value in a fixed order: null, Boolean,
// number, string, array, and object. Strings are not decoded: the String
// value records the body of the string as it appeared in the input, so that
// formatting a parsed value reproduces its string contents exactly.
//
// Errors from the parser have concrete type *Error, which carries a Code and
// the offset in the input where the problem was found. Codes are themselves
// errors, and may be matched with errors.Is:
//
//	if errors.Is(err, skyjson.ExpectCloseBrace) {
//	   log.Print("Unterminated object")
//	}
//
// # Formatting
//
// Format and Append render values as compact JSON. Numbers close to an
// integer are written without a fractional part; all other numbers are
// written with three digits after the decimal point. Indent renders a value
// in a multi-line layout intended for people to read.
package skyjson
