// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"iter"
	"slices"
)

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindUndefined Kind = iota // no value; see Undefined
	KindNull                  // the constant null
	KindBool                  // true or false
	KindNumber                // double-precision number
	KindString                // text string
	KindArray                 // ordered sequence of values
	KindObject                // keyed collection of values
	KindFunction              // function-typed value; see Func
)

var kindStr = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBool:      "boolean",
	KindNumber:    "number",
	KindString:    "string",
	KindArray:     "array",
	KindObject:    "object",
	KindFunction:  "function",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value. The concrete types defined by this
// package are Bool, Number, String, *Array, *Object, Time, Func, and the
// values Null and Undefined.
//
// Other types may implement Value so that they can be placed in a tree for
// encoding. Such values are encoded only if they implement Marshaler or Date;
// otherwise they are treated as absent.
type Value interface {
	Kind() Kind
}

type null struct{}

func (null) Kind() Kind { return KindNull }

type undefined struct{}

func (undefined) Kind() Kind { return KindUndefined }

var (
	// Null is the JSON null constant.
	Null Value = null{}

	// Undefined is a placeholder for a missing value. The parser never
	// produces it. A Reviver or Replacer returns Undefined to delete the
	// value it was given, and the encoder treats it as absent.
	Undefined Value = undefined{}
)

// IsUndefined reports whether v is Undefined.
func IsUndefined(v Value) bool { return v == Undefined }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return KindBool }

// A Number is a double-precision floating-point value.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KindNumber }

// A String is a text string value.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KindString }

// A Func is a function-typed value. Functions have no JSON representation:
// the encoder omits them from objects and renders them as null in arrays.
type Func func(args ...Value) Value

// Kind satisfies the Value interface.
func (Func) Kind() Kind { return KindFunction }

// An Array is a dense, ordered sequence of values.
type Array struct {
	Values []Value
}

// NewArray constructs an array containing the given values.
func NewArray(vs ...Value) *Array { return &Array{Values: vs} }

// Kind satisfies the Value interface.
func (*Array) Kind() Kind { return KindArray }

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

// Index returns the element of a at offset i.
// It panics if i is out of range.
func (a *Array) Index(i int) Value { return a.Values[i] }

// Append adds vs to the end of a.
func (a *Array) Append(vs ...Value) { a.Values = append(a.Values, vs...) }

// Delete removes the element at offset i, shifting later elements down.
// It panics if i is out of range.
func (a *Array) Delete(i int) { a.Values = slices.Delete(a.Values, i, i+1) }

// An Object is a collection of key-value members with unique keys.
// Members are ordered by the time of the most recent Set of their key.
// A zero Object is empty and ready for use.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject constructs an empty object.
func NewObject() *Object { return new(Object) }

// Kind satisfies the Value interface.
func (*Object) Kind() Kind { return KindObject }

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns a copy of the keys of o in order.
func (o *Object) Keys() []string { return slices.Clone(o.keys) }

// Has reports whether o has a member with the given key.
func (o *Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Get returns the value of the member of o with the given key, or Undefined
// if there is no such member.
func (o *Object) Get(key string) Value {
	if v, ok := o.vals[key]; ok {
		return v
	}
	return Undefined
}

// Set adds a member with the given key and value to o. If o already has a
// member with that key, it is replaced and moved to the end of the order.
// It returns o to permit chaining.
func (o *Object) Set(key string, v Value) *Object {
	if o.vals == nil {
		o.vals = make(map[string]Value)
	} else if _, ok := o.vals[key]; ok {
		o.removeKey(key)
	}
	o.keys = append(o.keys, key)
	o.vals[key] = v
	return o
}

// Delete removes the member with the given key from o, if it exists, and
// reports whether it was present.
func (o *Object) Delete(key string) bool {
	if _, ok := o.vals[key]; !ok {
		return false
	}
	delete(o.vals, key)
	o.removeKey(key)
	return true
}

// All returns an iterator over the members of o in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range o.keys {
			if !yield(key, o.vals[key]) {
				return
			}
		}
	}
}

// replace updates the value of an existing member without changing its
// position in the order.
func (o *Object) replace(key string, v Value) { o.vals[key] = v }

func (o *Object) removeKey(key string) {
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
}
