// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/skyjson"
	"github.com/creachadair/skyjson/cursor"
	"github.com/creachadair/skyjson/internal/testutil"
	"github.com/creachadair/skyjson/str"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestCursor(t *testing.T) {
	v := testutil.MustParse(t, 1<<16, testJSON)
	root := v.(skyjson.Object)

	tests := []struct {
		name string
		path []any
		want skyjson.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NilElement", []any{nil, "y", nil}, root.Find("y").Value, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{"xyz", "p", 0}, skyjson.Bool(true), true},
		{"BadElement", []any{1.5}, v, true},

		{"ArrayPos", []any{"list", 1},
			root.Find("list").Value.(skyjson.Array)[1],
			false,
		},
		{"ArrayNeg", []any{"list", -1},
			root.Find("list").Value.(skyjson.Array)[1],
			false,
		},
		{"ArrayRange", []any{"o", 25},
			root.Find("o").Value,
			true,
		},
		{"ObjIndex", []any{-3, "hello"}, skyjson.Text("there"), false},
		{"ObjPath", []any{"xyz", "d"}, skyjson.Bool(true), false},
		{"Deep", []any{"list", 0, "x"}, skyjson.Number(1), false},

		{"FuncArray", []any{"o", testPathFunc}, skyjson.ToValue(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, skyjson.ToValue(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, skyjson.Bool(true), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Fatalf("Down %+v: got nil, want error", tc.path)
			}
			got := c.Value()
			if diff := cmp.Diff(got, tc.want, testutil.ValueOpts); diff != "" {
				t.Errorf("Down %+v: wrong result (-got, +want):\n%s", tc.path, diff)
			} else if err == nil {
				t.Logf("Found %s OK", got.JSON())
			}
		})
	}
}

func TestUpReset(t *testing.T) {
	v := testutil.MustParse(t, 1<<16, testJSON)

	c := cursor.New(v).Down("list", 0, "x")
	if err := c.Err(); err != nil {
		t.Fatalf("Down: unexpected error: %v", err)
	}
	if got := len(c.Path()); got != 4 {
		t.Errorf("Path: got %d values, want 4", got)
	}
	if got, want := c.Up().Value().JSON(), `{"x":1}`; got != want {
		t.Errorf("Up: got %s, want %s", got, want)
	}
	if got, want := c.Up().Up().Up().Value(), v; !c.AtOrigin() || got.JSON() != want.JSON() {
		t.Errorf("Up past origin: got %s, want origin", got.JSON())
	}

	c.Down("nonesuch")
	if c.Err() == nil {
		t.Error("Down: got nil, want error")
	}
	c.Reset()
	if c.Err() != nil || !c.AtOrigin() {
		t.Errorf("Reset: err=%v, at origin=%v", c.Err(), c.AtOrigin())
	}
	if c.Origin().JSON() != v.JSON() {
		t.Error("Origin changed after reset")
	}
}

func TestMembers(t *testing.T) {
	v := testutil.MustParse(t, 1<<16, `{"a\"b": {"\u0041": [{"k": 1}]}, "A": 2}`)

	// A plain name matches the escaped form of the name only.
	c := cursor.New(v).Down(`a"b`, "A")
	if c.Err() == nil {
		t.Fatalf("Down: got %s, want error", c.Value().JSON())
	}

	// A raw name matches the stored name exactly.
	c.Reset()
	c.Down(`a"b`, str.Of(`\u0041`), 0, "k")
	if err := c.Err(); err != nil {
		t.Fatalf("Down: unexpected error: %v", err)
	}
	if got := c.Value(); got.JSON() != "1" {
		t.Errorf("Value: got %s, want 1", got.JSON())
	}
	var names []string
	for _, n := range c.Names() {
		names = append(names, n.String())
	}
	if diff := cmp.Diff([]string{`a\"b`, `\u0041`, "k"}, names); diff != "" {
		t.Errorf("Names (-want, +got):\n%s", diff)
	}

	// An array element has no member.
	if m := c.Up().Member(); m != nil {
		t.Errorf("Member of array element: got %+v, want nil", m)
	}
	if m := c.Up().Member(); m == nil || m.Name.String() != `\u0041` {
		t.Errorf("Member: got %+v, want \\u0041", m)
	}
	if m := c.Up().Member(); m == nil || m.Name.String() != `a\"b` {
		t.Errorf("Member: got %+v, want a\\\"b", m)
	}
	if m := c.Up().Member(); m != nil || !c.AtOrigin() {
		t.Errorf("Member at origin: got %+v, want nil", m)
	}

	// Members selected by offset are reported, and point into the object.
	m := cursor.New(v).Down(-1).Member()
	if m == nil || m.Name.String() != "A" {
		t.Fatalf("Member: got %+v, want A", m)
	}
	m.Value = skyjson.Bool(true)
	if got := v.(skyjson.Object).Find("A").Value; got != skyjson.Bool(true) {
		t.Errorf("After update: got %s, want true", got.JSON())
	}

	if c := cursor.New(v).Down(str.Of("nonesuch")); c.Err() == nil {
		t.Error("Down raw: got nil, want error")
	}
	if c := cursor.New(v).Down(-1, str.Of("A")); c.Err() == nil {
		t.Error("Down raw on number: got nil, want error")
	}
}

func TestPath(t *testing.T) {
	v := testutil.MustParse(t, 1<<16, testJSON)

	s, err := cursor.Path[skyjson.String](v, "o", 1)
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	} else if got := s.Raw().String(); got != "yourself" {
		t.Errorf("Path: got %q, want yourself", got)
	}

	if _, err := cursor.Path[skyjson.Number](v, "o", 1); err == nil {
		t.Error("Path: got nil, want type error")
	}
	if _, err := cursor.Path[skyjson.Object](v, "nonesuch"); err == nil {
		t.Error("Path: got nil, want lookup error")
	}
}

func testPathFunc(v skyjson.Value) (skyjson.Value, error) {
	switch t := v.(type) {
	case skyjson.Array:
		return skyjson.ToValue(len(t)), nil
	case skyjson.Object:
		return skyjson.ToValue(len(t)), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
