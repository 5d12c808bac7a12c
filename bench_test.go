// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package skyjson_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/skyjson"
	"github.com/creachadair/skyjson/arena"
)

// benchInput returns a JSON array of n records.
func benchInput(n int) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "item-%d", "score": %d.25, "tags": ["a", "b\"c"], "ok": %v, "next": null}`,
			i, i, i, i%2 == 0)
	}
	sb.WriteString("]")
	return sb.String()
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(1000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		for b.Loop() {
			var v any
			if err := json.Unmarshal([]byte(input), &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Arena", func(b *testing.B) {
		a := arena.New(arena.DefaultCapacity)
		for b.Loop() {
			if _, err := skyjson.ParseString(a, input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			a.Reset()
		}
		b.ReportMetric(float64(a.Peak()), "arena-bytes")
	})
}

func BenchmarkFormat(b *testing.B) {
	a := arena.New(arena.DefaultCapacity)
	v, err := skyjson.ParseString(a, benchInput(1000))
	if err != nil {
		b.Fatalf("Parse: %v", err)
	}
	f := arena.New(arena.DefaultCapacity)
	for b.Loop() {
		if _, err := skyjson.Format(f, v); err != nil {
			b.Fatalf("Unexpected error: %v", err)
		}
		f.Reset()
	}
}
