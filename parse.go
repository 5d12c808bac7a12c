// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package skyjson

import (
	"github.com/creachadair/skyjson/arena"
	"github.com/creachadair/skyjson/dynarr"
	"github.com/creachadair/skyjson/str"
	"github.com/creachadair/skyjson/view"

	"go4.org/mem"
)

// DefaultMaxDepth is the default limit on the nesting depth of arrays and
// objects accepted by a Parser.
const DefaultMaxDepth = 512

// A Cursor is a position in JSON source text. Parsing a value advances the
// cursor past the text of that value.
type Cursor struct {
	src mem.RO
	pos int
}

// NewCursor returns a cursor positioned at the start of s.
func NewCursor(s string) *Cursor { return &Cursor{src: mem.S(s)} }

// NewCursorBytes returns a cursor positioned at the start of b.
// The caller must not modify b while the cursor is in use.
func NewCursorBytes(b []byte) *Cursor { return &Cursor{src: mem.B(b)} }

// Pos reports the offset of c from the start of its input.
func (c *Cursor) Pos() int { return c.pos }

// Rest returns the unconsumed portion of the input.
func (c *Cursor) Rest() mem.RO { return c.src.SliceFrom(c.pos) }

// AtEnd reports whether c has consumed all its input.
func (c *Cursor) AtEnd() bool { return c.pos >= c.src.Len() }

// SkipSpace advances c past any spaces, tabs, and newlines.
func (c *Cursor) SkipSpace() {
	for c.pos < c.src.Len() && isSpace(c.src.At(c.pos)) {
		c.pos++
	}
}

// accept consumes b if it is the next byte of input, and reports whether it
// did so.
func (c *Cursor) accept(b byte) bool {
	if c.pos < c.src.Len() && c.src.At(c.pos) == b {
		c.pos++
		return true
	}
	return false
}

// acceptWord consumes w if it is a prefix of the remaining input.
func (c *Cursor) acceptWord(w string) bool {
	if mem.HasPrefix(c.Rest(), mem.S(w)) {
		c.pos += len(w)
		return true
	}
	return false
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' }

// A Parser constructs values from JSON source text. Strings and the
// contents of arrays and objects are allocated in the parser's arena, and
// remain valid until that arena is reset.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	arena    *arena.Arena
	maxDepth int
	depth    int
	scratch  int // scratch arrays not yet freed
}

// NewParser constructs a parser that allocates its results in a.
func NewParser(a *arena.Arena) *Parser {
	return &Parser{arena: a, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth sets the maximum nesting depth of arrays and objects.
// If n <= 0, DefaultMaxDepth is used.
func (p *Parser) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

// Parse parses a single value from the input of c. On success, c is advanced
// past the end of the value. On failure, the position of c is unspecified.
func Parse(a *arena.Arena, c *Cursor) (Value, error) { return NewParser(a).Parse(c) }

// ParseString parses a single value from s. It is an error if s contains
// anything other than whitespace after the value.
func ParseString(a *arena.Arena, s string) (Value, error) { return NewParser(a).ParseString(s) }

// Parse parses a single value from the input of c. On success, c is advanced
// past the end of the value. On failure, the position of c is unspecified.
//
// In case of error, the concrete type of the error is *Error.
func (p *Parser) Parse(c *Cursor) (Value, error) {
	p.depth = 0
	return p.parseValue(c)
}

// ParseString parses a single value from s. It is an error if s contains
// anything other than whitespace after the value.
func (p *Parser) ParseString(s string) (Value, error) {
	c := NewCursor(s)
	v, err := p.Parse(c)
	if err != nil {
		return nil, err
	}
	c.SkipSpace()
	if !c.AtEnd() {
		return nil, &Error{Code: ExtraInput, Offset: c.Pos()}
	}
	return v, nil
}

// parseValue tries each production in turn, beginning at the current
// position. A production that fails on its leading token yields to the next
// one; any other result is final.
func (p *Parser) parseValue(c *Cursor) (Value, error) {
	productions := [...]func(*Cursor) (Value, error){
		p.parseNull,
		p.parseBool,
		p.parseNumber,
		p.parseString,
		p.parseArray,
		p.parseObject,
	}
	start := c.pos
	for _, parse := range productions {
		c.pos = start
		v, err := parse(c)
		if err != nil && isLeading(err) {
			continue
		}
		return v, err
	}
	c.pos = start
	c.SkipSpace()
	return nil, p.fail(c, InvalidVariant)
}

func (p *Parser) parseNull(c *Cursor) (Value, error) {
	c.SkipSpace()
	if !c.acceptWord("null") {
		return nil, p.mismatch(c, ExpectNull)
	}
	return Null{}, nil
}

func (p *Parser) parseBool(c *Cursor) (Value, error) {
	c.SkipSpace()
	if c.acceptWord("true") {
		return Bool(true), nil
	} else if c.acceptWord("false") {
		return Bool(false), nil
	}
	return nil, p.mismatch(c, ExpectBool)
}

func (p *Parser) parseNumber(c *Cursor) (Value, error) {
	c.SkipSpace()
	n := scanNumber(c.Rest())
	if n == 0 {
		return nil, p.mismatch(c, ExpectNumber)
	}

	// A value out of range is reported as ±Inf, along with an error we
	// ignore; other errors are precluded by scanNumber.
	f, _ := mem.ParseFloat(c.Rest().SliceTo(n), 64)
	c.pos += n
	return Number(f), nil
}

func (p *Parser) parseString(c *Cursor) (Value, error) {
	s, err := p.parseQuoted(c)
	if err != nil {
		return nil, err
	}
	return String{raw: s}, nil
}

// parseQuoted parses a quoted string and returns its undecoded body.
// A backslash escapes the byte following it, whatever it is.
func (p *Parser) parseQuoted(c *Cursor) (str.String, error) {
	c.SkipSpace()
	if !c.accept('"') {
		return str.String{}, p.mismatch(c, ExpectOpenQuote)
	}

	var sb str.Builder
	defer sb.Free()
	for {
		if c.AtEnd() {
			return str.String{}, p.fail(c, ExpectCloseQuote)
		}
		ch := c.src.At(c.pos)
		c.pos++
		if ch == '"' {
			break
		}
		if err := sb.Push(ch); err != nil {
			return str.String{}, resourceError(c.pos, err)
		}
		if ch != '\\' {
			continue
		}
		if c.AtEnd() {
			return str.String{}, p.fail(c, ExpectCloseQuote)
		}
		if err := sb.Push(c.src.At(c.pos)); err != nil {
			return str.String{}, resourceError(c.pos, err)
		}
		c.pos++
	}
	s, err := sb.BuildToArena(p.arena)
	if err != nil {
		return str.String{}, resourceError(c.pos, err)
	}
	return s, nil
}

func (p *Parser) parseArray(c *Cursor) (Value, error) {
	c.SkipSpace()
	if !c.accept('[') {
		return nil, p.mismatch(c, ExpectOpenBracket)
	}
	if err := p.enter(c); err != nil {
		return nil, err
	}
	defer p.leave()

	elts, done := scratch[Value](p)
	defer done()
	for {
		c.SkipSpace()
		if c.accept(']') {
			break
		} else if c.AtEnd() {
			return nil, p.fail(c, ExpectCloseBracket)
		}

		v, err := p.parseValue(c)
		if err != nil {
			return nil, err
		}
		if err := elts.Push(v); err != nil {
			return nil, resourceError(c.pos, err)
		}
		c.SkipSpace()
		c.accept(',')
	}

	out, err := view.DrainToArena(p.arena, elts)
	if err != nil {
		return nil, resourceError(c.pos, err)
	}
	return Array(out.Items()), nil
}

func (p *Parser) parseObject(c *Cursor) (Value, error) {
	c.SkipSpace()
	if !c.accept('{') {
		return nil, p.mismatch(c, ExpectOpenBrace)
	}
	if err := p.enter(c); err != nil {
		return nil, err
	}
	defer p.leave()

	mems, done := scratch[Member](p)
	defer done()
	for {
		c.SkipSpace()
		if c.accept('}') {
			break
		} else if c.AtEnd() {
			return nil, p.fail(c, ExpectCloseBrace)
		}

		name, err := p.parseQuoted(c)
		if err != nil {
			return nil, inner(err)
		}
		c.SkipSpace()
		if !c.accept(':') {
			return nil, p.fail(c, ExpectColon)
		}
		v, err := p.parseValue(c)
		if err != nil {
			return nil, err
		}
		if err := mems.Push(Member{Name: name, Value: v}); err != nil {
			return nil, resourceError(c.pos, err)
		}
		c.SkipSpace()
		c.accept(',')
	}

	out, err := view.DrainToArena(p.arena, mems)
	if err != nil {
		return nil, resourceError(c.pos, err)
	}
	return Object(out.Items()), nil
}

// scratch returns an empty scratch array for the contents of an array or
// object, and a function the caller must call to free it on every exit path.
func scratch[T any](p *Parser) (*dynarr.Array[T], func()) {
	p.scratch++
	a := new(dynarr.Array[T])
	return a, func() { a.Free(); p.scratch-- }
}

func (p *Parser) enter(c *Cursor) error {
	if p.depth >= p.maxDepth {
		return p.fail(c, TooDeep)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() { p.depth-- }

// mismatch reports a failure at the leading token of a production.
func (p *Parser) mismatch(c *Cursor, code Code) error {
	return &Error{Code: code, Offset: c.pos, lead: true}
}

// fail reports a failure after the leading token of a production.
func (p *Parser) fail(c *Cursor, code Code) error {
	return &Error{Code: code, Offset: c.pos}
}

// inner marks err, if it was a leading-token mismatch, as a failure inside
// an enclosing production.
func inner(err error) error {
	if e, ok := err.(*Error); ok && e.lead {
		cp := *e
		cp.lead = false
		return &cp
	}
	return err
}

// scanNumber reports the length of the longest prefix of m that has the
// form of a decimal floating-point number: an optional sign, digits with an
// optional decimal point, and an optional exponent. At least one digit is
// required. It returns 0 if there is no such prefix.
func scanNumber(m mem.RO) int {
	i := 0
	if i < m.Len() && (m.At(i) == '-' || m.At(i) == '+') {
		i++
	}
	nd := 0
	for i < m.Len() && isDigit(m.At(i)) {
		i++
		nd++
	}
	if i < m.Len() && m.At(i) == '.' {
		i++
		for i < m.Len() && isDigit(m.At(i)) {
			i++
			nd++
		}
	}
	if nd == 0 {
		return 0
	}

	// An exponent counts only if it has at least one digit.
	if i < m.Len() && (m.At(i) == 'e' || m.At(i) == 'E') {
		j := i + 1
		if j < m.Len() && (m.At(j) == '-' || m.At(j) == '+') {
			j++
		}
		if j < m.Len() && isDigit(m.At(j)) {
			for j < m.Len() && isDigit(m.At(j)) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
