// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements navigation into a decoded jvalue tree.
//
// A Cursor starts at an origin value and moves downward by path elements:
//
//	c := cursor.New(v).Down("users", 0, "name")
//	if err := c.Err(); err != nil {
//	   log.Fatalf("Lookup failed: %v", err)
//	}
//	name := c.Value()
//
// Path is a shortcut for a single lookup with a type check on the result.
package cursor

import (
	"fmt"

	"github.com/creachadair/jvalue"
)

// A StepFunc is a path element that computes the next value from the current
// one. A StepFunc that reports an error stops the traversal.
type StepFunc = func(jvalue.Value) (jvalue.Value, error)

// Path resolves path from v and returns the value reached, which must have
// type T. Path elements are as described for [Cursor.Down].
func Path[T jvalue.Value](v jvalue.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	got, ok := c.Value().(T)
	if !ok {
		return zero, fmt.Errorf("value has kind %v (%T), not %T", kindOf(c.Value()), c.Value(), zero)
	}
	return got, nil
}

// A Cursor records a position in a value tree as the sequence of values
// visited from its origin.
type Cursor struct {
	origin  jvalue.Value
	visited []jvalue.Value // excluding origin
	err     error
}

// New returns a Cursor positioned at origin.
func New(origin jvalue.Value) *Cursor { return &Cursor{origin: origin} }

// Origin returns the value at which c started.
func (c *Cursor) Origin() jvalue.Value { return c.origin }

// AtOrigin reports whether c is positioned at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.visited) == 0 }

// Value returns the value at the current position of c.
func (c *Cursor) Value() jvalue.Value {
	if n := len(c.visited); n > 0 {
		return c.visited[n-1]
	}
	return c.origin
}

// Path returns the values from the origin to the current position, inclusive.
func (c *Cursor) Path() []jvalue.Value {
	out := make([]jvalue.Value, 0, len(c.visited)+1)
	return append(append(out, c.origin), c.visited...)
}

// Err returns the error from the last call to Down, or nil.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the parent of its current position. At the origin, Up has no
// effect. It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.visited); n > 0 {
		c.visited = c.visited[:n-1]
	}
	return c
}

// Reset moves c back to its origin and clears its error.
func (c *Cursor) Reset() {
	c.visited = c.visited[:0]
	c.err = nil
}

// Down moves c along path from its current position, and returns c.
// Each path element is one of:
//
//   - a string, naming a member of an *jvalue.Object;
//   - an int, indexing an *jvalue.Array, or an *jvalue.Object by the order
//     of its keys. A negative index counts from the end, so -1 is the last;
//   - a StepFunc, whose result is the next value.
//
// If an element cannot be applied, Down stops at the last value reached and
// records an error, which Err reports. Down clears any previous error.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		next, err := step(c.Value(), elt)
		if err != nil {
			c.err = err
			break
		}
		c.visited = append(c.visited, next)
	}
	return c
}

// step applies a single path element to cur.
func step(cur jvalue.Value, elt any) (jvalue.Value, error) {
	switch t := elt.(type) {
	case string:
		o, ok := cur.(*jvalue.Object)
		if !ok {
			return nil, fmt.Errorf("cannot look up key %q in %v", t, kindOf(cur))
		} else if !o.Has(t) {
			return nil, fmt.Errorf("key %q not found", t)
		}
		return o.Get(t), nil

	case int:
		switch e := cur.(type) {
		case *jvalue.Array:
			i, ok := resolveIndex(e.Len(), t)
			if !ok {
				return nil, fmt.Errorf("array index %d out of range (n=%d)", t, e.Len())
			}
			return e.Index(i), nil
		case *jvalue.Object:
			keys := e.Keys()
			i, ok := resolveIndex(len(keys), t)
			if !ok {
				return nil, fmt.Errorf("object index %d out of range (n=%d)", t, len(keys))
			}
			return e.Get(keys[i]), nil
		}
		return nil, fmt.Errorf("cannot index %v with %d", kindOf(cur), t)

	case StepFunc:
		return t(cur)
	}
	return nil, fmt.Errorf("invalid path element %T", elt)
}

// resolveIndex maps i to an offset in a sequence of length n, counting from
// the end if i < 0, and reports whether the result is in range.
func resolveIndex(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, 0 <= i && i < n
}

func kindOf(v jvalue.Value) jvalue.Kind {
	if v == nil {
		return jvalue.KindNull
	}
	return v.Kind()
}
