// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/goccy/go-json"
)

// benchInput generates a JSON document of n records.
func benchInput(n int) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `  {"id": %d, "name": "record \"%d\"", "score": %g, "ok": %v, `+
			`"tags": ["a", "b\n", "é"], "next": null, "nested": {"x": [%d, -%d.5e-3]}}`,
			i, i, float64(i)/7, i%2 == 0, i, i)
	}
	sb.WriteString("\n]\n")
	return sb.String()
}

func BenchmarkDecode(b *testing.B) {
	input := benchInput(2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("go-json", func(b *testing.B) {
		data := []byte(input)
		for b.Loop() {
			var v any
			if err := json.Unmarshal(data, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("jvalue", func(b *testing.B) {
		for b.Loop() {
			if _, err := jvalue.Decode(input, nil); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Scanner", func(b *testing.B) {
		for b.Loop() {
			s := jvalue.NewScanner(input)
			for s.Next() {
			}
			if err := s.Err(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkEncode(b *testing.B) {
	v, err := jvalue.Decode(benchInput(2000), nil)
	if err != nil {
		b.Fatalf("Decode: %v", err)
	}
	plain := jvalue.ToAny(v)

	b.Run("go-json", func(b *testing.B) {
		for b.Loop() {
			if _, err := json.Marshal(plain); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("jvalue", func(b *testing.B) {
		for b.Loop() {
			if _, err := jvalue.Encode(v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Indent", func(b *testing.B) {
		for b.Loop() {
			if _, err := jvalue.Stringify(v, nil, 2); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
