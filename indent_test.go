// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package skyjson_test

import (
	"strings"
	"testing"

	"github.com/creachadair/skyjson"
	"github.com/creachadair/skyjson/arena"
	"github.com/creachadair/skyjson/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestIndent(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"Scalar", `3.14159`, "3.142\n"},
		{"ShortArray", `[1, "two", null]`, "[1, \"two\", null]\n"},
		{"SingleMember", `{"k": true}`, "{\"k\": true}\n"},
		{"Aligned", `{"a": 1, "bbb": true, "c": [1, 2]}`, `{
  "a":   1,
  "bbb": true,
  "c":   [1, 2]
}
`},
		{"Nested", `{"x": [[1], 2]}`, `{
  "x": [
    [1],
    2
  ]
}
`},
		{"Spacing", `{"a": 1, "b": {"c": 1, "d": 2}, "e": 3}`, `{
  "a": 1,

  "b": {
    "c": 1,
    "d": 2
  },

  "e": 3
}
`},
		{"TabInString", "{\"a\": \"x\ty\", \"long\": 2}", "{\n  \"a\":    \"x\ty\",\n  \"long\": 2\n}\n"},
		{"RawByte", "{\"a\": \"x\xffy\", \"bb\": 2}", "{\n  \"a\":  \"x\xffy\",\n  \"bb\": 2\n}\n"},
		{"WideName", `{"é": 1, "ab": 2}`, "{\n  \"é\":  1,\n  \"ab\": 2\n}\n"},
		{"ArrayOfObjects", `[{"k": 1}, {"k": 2}]`, `[
  {"k": 1},
  {"k": 2}
]
`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := testutil.MustParse(t, 1<<16, tc.input)

			var buf strings.Builder
			if err := skyjson.Indent(&buf, v); err != nil {
				t.Fatalf("Indent: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("Indent (-want, +got):\n%s", diff)
			}

			// The indented output parses to the same value.
			w, err := skyjson.ParseString(arena.New(1<<16), buf.String())
			if err != nil {
				t.Fatalf("Parse indented: unexpected error: %v", err)
			}
			if diff := cmp.Diff(v.JSON(), w.JSON()); diff != "" {
				t.Errorf("Reparse (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFormatterSettings(t *testing.T) {
	v := testutil.MustParse(t, 1<<16, `{"list": [1, 2, 3]}`)

	f := skyjson.Formatter{Indent: 4, MaxLineItems: 2}
	var buf strings.Builder
	if err := f.Format(&buf, v); err != nil {
		t.Fatalf("Format: unexpected error: %v", err)
	}
	const want = `{
    "list": [
        1,
        2,
        3
    ]
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Format (-want, +got):\n%s", diff)
	}
}
