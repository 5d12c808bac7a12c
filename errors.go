// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package skyjson

import (
	"errors"
	"fmt"

	"github.com/creachadair/skyjson/arena"
	"github.com/creachadair/skyjson/dynarr"
)

// Code classifies the errors reported by the parser and serializer.
// A Code is itself an error, so that errors.Is can match a code:
//
//	if errors.Is(err, skyjson.ExpectCloseBracket) { ... }
type Code byte

// Constants defining the valid Code values.
const (
	NoSpace            Code = iota + 1 // the arena is exhausted
	Overflow                           // a scratch array could not grow
	ExpectNull                         // want constant null
	ExpectBool                         // want constant true or false
	ExpectNumber                       // want a number
	ExpectOpenQuote                    // want opening quotation mark
	ExpectCloseQuote                   // want closing quotation mark
	ExpectOpenBracket                  // want "["
	ExpectCloseBracket                 // want "]"
	ExpectOpenBrace                    // want "{"
	ExpectCloseBrace                   // want "}"
	ExpectColon                        // want ":" after an object member name
	InvalidVariant                     // no value of any type was found
	ExtraInput                         // unconsumed input after a value
	TooDeep                            // values are nested too deeply
)

var codeStr = [...]string{
	0:                  "unknown error",
	NoSpace:            "arena exhausted",
	Overflow:           "array overflow",
	ExpectNull:         "expected null",
	ExpectBool:         "expected true or false",
	ExpectNumber:       "expected number",
	ExpectOpenQuote:    `expected opening "`,
	ExpectCloseQuote:   `expected closing "`,
	ExpectOpenBracket:  `expected "["`,
	ExpectCloseBracket: `expected "]"`,
	ExpectOpenBrace:    `expected "{"`,
	ExpectCloseBrace:   `expected "}"`,
	ExpectColon:        `expected ":"`,
	InvalidVariant:     "invalid value",
	ExtraInput:         "extra input after value",
	TooDeep:            "nesting too deep",
}

func (c Code) String() string {
	if int(c) >= len(codeStr) {
		return codeStr[0]
	}
	return codeStr[c]
}

// Error satisfies the error interface.
func (c Code) Error() string { return c.String() }

// Error is the concrete type of errors reported by Parse and its variants,
// and by the serializer when it runs out of space.
type Error struct {
	Code   Code // the kind of failure
	Offset int  // byte offset in the input where the failure was detected
	Err    error

	// Whether the failure was at the leading token of a production, meaning
	// a different production may still match at this position.
	lead bool
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("offset %d: %v: %v", e.Offset, e.Code, e.Err)
	}
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Code)
}

// Unwrap supports error wrapping. An *Error matches its code, and its
// underlying cause if it has one.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Code, e.Err}
	}
	return []error{e.Code}
}

// isLeading reports whether err denotes a mismatch at the leading token of
// a production.
func isLeading(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.lead
}

// resourceError converts err from an arena or array operation into an
// *Error at the given offset.
func resourceError(offset int, err error) error {
	code := Overflow
	if errors.Is(err, arena.ErrNoSpace) {
		code = NoSpace
	} else if !errors.Is(err, dynarr.ErrOverflow) {
		return err
	}
	return &Error{Code: code, Offset: offset, Err: err}
}
