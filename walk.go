// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "strconv"

// A Reviver is called by Walk for each value in a tree, after the values it
// contains have been visited. The holder is the array or object from which v
// was read, and key is the key of v in holder; for an array element the key
// is its decimal index.
//
// The Reviver returns the value to store in place of v. If it returns
// Undefined, v is removed from its holder.
type Reviver func(holder Value, key string, v Value) Value

// Walk applies fn to each value in the tree rooted at v, in post-order, and
// returns the result of applying fn to v itself. Arrays and objects in the
// tree are modified in place.
//
// The elements of an array are visited from the highest index to the lowest,
// so that removing an element does not disturb the elements not yet visited.
// The members of an object are visited in order.
//
// The root is visited as the member with key "" of a synthetic holder object.
// If fn returns Undefined for the root, Walk returns Undefined.
func Walk(v Value, fn Reviver) Value {
	root := NewObject().Set("", v)
	return walk(root, "", v, fn)
}

func walk(holder Value, key string, v Value, fn Reviver) Value {
	switch t := v.(type) {
	case *Array:
		if t == nil {
			break
		}
		for i := len(t.Values) - 1; i >= 0; i-- {
			if i >= len(t.Values) {
				continue // removed by an earlier call of fn
			}
			nv := walk(t, strconv.Itoa(i), t.Values[i], fn)
			switch {
			case i >= len(t.Values):
				// fn truncated the array; there is nothing to update
			case IsUndefined(nv):
				t.Delete(i)
			default:
				t.Values[i] = nv
			}
		}
	case *Object:
		if t == nil {
			break
		}
		for _, k := range t.Keys() {
			nv := walk(t, k, t.Get(k), fn)
			switch {
			case IsUndefined(nv):
				t.Delete(k)
			case t.Has(k):
				t.replace(k, nv)
			default:
				t.Set(k, nv)
			}
		}
	}
	return fn(holder, key, v)
}
