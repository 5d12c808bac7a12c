// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package view_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/creachadair/skyjson/arena"
	"github.com/creachadair/skyjson/dynarr"
	"github.com/creachadair/skyjson/view"
	"github.com/google/go-cmp/cmp"
)

func TestOf(t *testing.T) {
	var arr dynarr.Array[int]
	arr.Append(3, 1, 4, 1, 5)

	v := view.Of(&arr)
	if v.Len() != 5 {
		t.Errorf("Len: got %d, want 5", v.Len())
	}
	if got := v.At(2); got != 4 {
		t.Errorf("At(2): got %d, want 4", got)
	}

	// A borrowed view sees changes to the array it was taken from.
	arr.Set(2, 9)
	if got := v.At(2); got != 9 {
		t.Errorf("At(2) after Set: got %d, want 9", got)
	}

	if diff := cmp.Diff([]int{1, 9}, v.Sub(1, 3).Items()); diff != "" {
		t.Errorf("Sub (-want, +got):\n%s", diff)
	}
	if got, want := v.Size(), 5*int(unsafe.Sizeof(0)); got != want {
		t.Errorf("Size: got %d, want %d", got, want)
	}

	var empty view.View[string]
	if !empty.IsEmpty() || empty.Len() != 0 {
		t.Errorf("Zero view: IsEmpty=%v Len=%d", empty.IsEmpty(), empty.Len())
	}
}

func TestCopyToArena(t *testing.T) {
	a := arena.New(32)
	src := []byte("transient")
	v, err := view.CopyToArena(a, view.Over(src))
	if err != nil {
		t.Fatalf("CopyToArena: unexpected error: %v", err)
	}
	copy(src, "XXXXXXXXX")
	if got := string(v.Items()); got != "transient" {
		t.Errorf("Copied view: got %q, want %q", got, "transient")
	}
	if a.Len() != len(src) {
		t.Errorf("Arena len: got %d, want %d", a.Len(), len(src))
	}
}

func TestDrainToArena(t *testing.T) {
	a := arena.New(64)

	var arr dynarr.Array[byte]
	arr.Append([]byte("scratch data")...)
	v, err := view.DrainToArena(a, &arr)
	if err != nil {
		t.Fatalf("DrainToArena: unexpected error: %v", err)
	}
	if got := string(v.Items()); got != "scratch data" {
		t.Errorf("Drained view: got %q, want %q", got, "scratch data")
	}
	if arr.Len() != 0 || arr.Cap() != 0 {
		t.Errorf("Source not freed: len=%d cap=%d", arr.Len(), arr.Cap())
	}

	// On failure the source is still freed.
	small := arena.New(4)
	arr.Append([]byte("too long for it")...)
	if _, err := view.DrainToArena(small, &arr); !errors.Is(err, arena.ErrNoSpace) {
		t.Errorf("DrainToArena: got %v, want %v", err, arena.ErrNoSpace)
	}
	if arr.Len() != 0 || arr.Cap() != 0 {
		t.Errorf("Source not freed after failure: len=%d cap=%d", arr.Len(), arr.Cap())
	}
}
