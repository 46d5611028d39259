// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/google/go-cmp/cmp"
)

// MustDecode decodes src, or fails t.
func MustDecode(t testing.TB, src string) jvalue.Value {
	t.Helper()
	v, err := jvalue.Decode(src, nil)
	if err != nil {
		t.Fatalf("Decode %#q: unexpected error: %v", src, err)
	}
	return v
}

// Member is the comparable form of an object member.
type Member struct {
	Key   string
	Value any
}

// Object is the comparable form of an object, with members in order.
type Object []Member

// Undefined is the comparable form of jvalue.Undefined.
type Undefined struct{}

// Plain converts v into a form that can be compared with cmp.Diff, retaining
// the order of object members.
func Plain(v jvalue.Value) any {
	switch t := v.(type) {
	case nil:
		return nil
	case jvalue.Bool:
		return bool(t)
	case jvalue.Number:
		return float64(t)
	case jvalue.String:
		return string(t)
	case *jvalue.Array:
		out := make([]any, t.Len())
		for i, ev := range t.Values {
			out[i] = Plain(ev)
		}
		return out
	case *jvalue.Object:
		out := Object{}
		for key, mv := range t.All() {
			out = append(out, Member{Key: key, Value: Plain(mv)})
		}
		return out
	case jvalue.Func:
		return "<function>"
	}
	switch {
	case v == jvalue.Null:
		return nil
	case jvalue.IsUndefined(v):
		return Undefined{}
	}
	return fmt.Sprintf("<%T>", v)
}

// Diff reports the differences between want and got, or "" if they are
// equivalent.
func Diff(want, got jvalue.Value) string { return cmp.Diff(Plain(want), Plain(got)) }
