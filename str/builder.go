// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package str

import (
	"fmt"

	"github.com/creachadair/skyjson/arena"
	"github.com/creachadair/skyjson/dynarr"
	"github.com/creachadair/skyjson/view"
)

// A Builder accumulates bytes for a String. Once a builder is non-empty, the
// last byte of its buffer is always a zero terminator.
// The zero value is an empty builder ready for use.
type Builder struct {
	buf dynarr.Array[byte]
}

// NewLimited returns an empty builder whose buffer, terminator included,
// may not grow beyond limit bytes.
func NewLimited(limit int) *Builder {
	return &Builder{buf: *dynarr.NewLimited[byte](limit)}
}

// Len reports the number of bytes of text in b, not including the
// terminator.
func (b *Builder) Len() int { return max(b.buf.Len()-1, 0) }

// Push appends the single byte c to b.
func (b *Builder) Push(c byte) error {
	if b.buf.Len() == 0 {
		return b.buf.Append(c, 0)
	}
	if err := b.buf.Push(0); err != nil {
		return err
	}
	b.buf.Set(b.buf.Len()-2, c)
	return nil
}

// PushStr appends the contents of s to b.
func (b *Builder) PushStr(s String) error { return b.PushBytes(s.Bytes()) }

// PushString appends the contents of s to b.
func (b *Builder) PushString(s string) error { return b.PushBytes([]byte(s)) }

// PushBytes appends the contents of p to b. If b cannot grow to hold p, it
// reports an error and b is unchanged.
func (b *Builder) PushBytes(p []byte) error {
	n := b.buf.Len()
	if n == 0 && len(p) == 0 {
		return nil
	}
	if n != 0 {
		b.buf.Truncate(n - 1) // drop the terminator
	}
	if err := b.buf.Append(p...); err != nil {
		b.restore(n)
		return err
	}
	if err := b.buf.Push(0); err != nil {
		b.restore(n)
		return err
	}
	return nil
}

// restore truncates the buffer of b to its length n before an unsuccessful
// operation, and replaces its terminator. There is always room for the
// terminator, since it was present before.
func (b *Builder) restore(n int) {
	if n == 0 {
		b.buf.Truncate(0)
		return
	}
	b.buf.Truncate(n - 1)
	b.buf.Push(0)
}

// PushFmt formats args according to format, as fmt.Sprintf, and appends
// the result to b. The formatted text is measured first and rendered into
// a, then copied into b.
func (b *Builder) PushFmt(a *arena.Arena, format string, args ...any) error {
	var cw countWriter
	fmt.Fprintf(&cw, format, args...)

	tmp, err := a.Alloc(int(cw) + 1)
	if err != nil {
		return err
	}
	out := fmt.Appendf(tmp[:0], format, args...)
	return b.PushBytes(out)
}

// Build returns a String that shares the buffer of b. The String remains
// valid until b is modified, so b must be reset before it is reused.
func (b *Builder) Build() String {
	if b.buf.Len() == 0 {
		return String{}
	}
	return String{b: b.buf.Slice()}
}

// BuildToArena copies the contents of b into a and frees b, returning a
// String independent of b. The builder is freed even if the copy fails.
func (b *Builder) BuildToArena(a *arena.Arena) (String, error) {
	if b.buf.Len() == 0 {
		b.buf.Free()
		return String{}, nil
	}
	v, err := view.DrainToArena(a, &b.buf)
	if err != nil {
		return String{}, err
	}
	return FromView(v)
}

// Reset discards the contents of b without disturbing any String built from
// it, so b is ready for reuse.
func (b *Builder) Reset() { b.buf.Clear() }

// Free releases the buffer of b. Strings built from b without copying are
// invalid after Free.
func (b *Builder) Free() { b.buf.Free() }

// countWriter is an io.Writer that counts the bytes written to it.
type countWriter int

func (c *countWriter) Write(p []byte) (int, error) {
	*c += countWriter(len(p))
	return len(p), nil
}
