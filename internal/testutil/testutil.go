// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	"github.com/creachadair/skyjson"
	"github.com/creachadair/skyjson/arena"
	"github.com/creachadair/skyjson/str"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ValueOpts are options for comparing values with cmp.Diff. Strings compare
// by content, and nil and empty containers are equal.
var ValueOpts = cmp.Options{
	cmp.Comparer(str.Equal),
	cmp.Comparer(func(a, b skyjson.String) bool { return str.Equal(a.Raw(), b.Raw()) }),
	cmpopts.EquateEmpty(),
}

// MustParse parses s into a new arena of the given capacity, and fails t if
// that does not succeed.
func MustParse(t testing.TB, capacity int, s string) skyjson.Value {
	t.Helper()
	v, err := skyjson.ParseString(arena.New(capacity), s)
	if err != nil {
		t.Fatalf("Parse %q: unexpected error: %v", s, err)
	}
	return v
}
