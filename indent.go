// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package skyjson

import (
	"io"
	"strings"
	"unicode/utf8"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Number of spaces added at each level of nesting (default 2).
	Indent int

	// Arrays of more than this many scalar elements are written one element
	// per line (default 8).
	MaxLineItems int
}

func (f Formatter) indent() string {
	if f.Indent <= 0 {
		return "  "
	}
	return strings.Repeat(" ", f.Indent)
}

func (f Formatter) maxLineItems() int {
	if f.MaxLineItems <= 0 {
		return 8
	}
	return f.MaxLineItems
}

// Indent renders a pretty-printed representation of v to w with default
// settings. The output is valid JSON, and follows the number formatting rules
// of Append.
func Indent(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// Format renders a pretty-printed representation of v to w using the settings
// from f. String contents are written exactly as stored.
func (f Formatter) Format(w io.Writer, v Value) error {
	var buf strings.Builder
	f.formatValue(&buf, v, "")
	buf.WriteString("\n")
	_, err := io.WriteString(w, buf.String())
	return err
}

// formatValue writes a representation of v to w, with nested lines indented
// by indent.
func (f Formatter) formatValue(w *strings.Builder, v Value, indent string) {
	switch t := v.(type) {
	case Array:
		f.formatArray(w, t, indent)
	case Object:
		f.formatObject(w, t, indent)
	default:
		w.WriteString(v.JSON())
	}
}

func (f Formatter) formatArray(w *strings.Builder, a Array, indent string) {
	if f.isBoring(a) {
		w.WriteString("[")
		for i, v := range a {
			if i > 0 {
				w.WriteString(", ")
			}
			w.WriteString(v.JSON())
		}
		w.WriteString("]")
		return
	}

	w.WriteString("[\n")
	adent := indent + f.indent()
	for i, v := range a {
		w.WriteString(adent)
		f.formatValue(w, v, adent)
		if i < len(a)-1 {
			w.WriteString(",")
		}
		w.WriteString("\n")
	}
	w.WriteString(indent)
	w.WriteString("]")
}

func (f Formatter) formatObject(w *strings.Builder, o Object, indent string) {
	if f.isBoring(o) {
		w.WriteString("{")
		for _, m := range o {
			w.WriteString(`"` + m.Name.String() + `": ` + m.Value.JSON())
		}
		w.WriteString("}")
		return
	}

	w.WriteString("{\n")
	mdent := indent + f.indent()
	width := 0 // label width of the current run of boring members
	for i, m := range o {
		boring := f.isBoring(m.Value)

		// Leave extra space before the next member if either it or its
		// predecessor was non-boring.
		if i != 0 && !(boring && f.isBoring(o[i-1].Value)) {
			w.WriteString("\n")
		}

		label := `"` + m.Name.String() + `":`
		w.WriteString(mdent)
		w.WriteString(label)
		if boring {
			// Boring values line up in a column across a run of boring members.
			if i == 0 || !f.isBoring(o[i-1].Value) {
				width = f.runWidth(o[i:])
			}
			w.WriteString(strings.Repeat(" ", 1+width-utf8.RuneCountInString(label)))
		} else {
			w.WriteString(" ")
		}
		f.formatValue(w, m.Value, mdent)
		if i < len(o)-1 {
			w.WriteString(",")
		}
		w.WriteString("\n")
	}
	w.WriteString(indent)
	w.WriteString("}")
}

// runWidth reports the widest member label among the leading run of members
// of o with boring values.
func (f Formatter) runWidth(o Object) int {
	width := 0
	for _, m := range o {
		if !f.isBoring(m.Value) {
			break
		}
		width = max(width, utf8.RuneCount(m.Name.Bytes())+3)
	}
	return width
}

// isBoring reports whether v has a simple enough structure that it can be
// rendered on one line.
func (f Formatter) isBoring(v Value) bool {
	switch t := v.(type) {
	case Array:
		if len(t) > f.maxLineItems() {
			return false
		}
		for _, elt := range t {
			if elt.Kind() == KindArray || elt.Kind() == KindObject {
				return false
			}
		}
		return true
	case Object:
		if len(t) == 1 {
			k := t[0].Value.Kind()
			return k != KindArray && k != KindObject
		}
		return len(t) == 0
	default:
		return true
	}
}
