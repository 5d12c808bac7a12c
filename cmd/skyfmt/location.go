// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import "bytes"

// A lineCol describes the line number and column offset of a location in
// source text.
type lineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

// locate returns the line and column of the given byte offset in src.
// Offsets past the end of src are clamped to the end.
func locate(src []byte, offset int) lineCol {
	offset = min(max(offset, 0), len(src))
	pre := src[:offset]
	return lineCol{
		Line:   1 + bytes.Count(pre, []byte("\n")),
		Column: offset - (bytes.LastIndexByte(pre, '\n') + 1),
	}
}
