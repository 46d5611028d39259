// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/mds/mapset"
)

// A Marshaler is a value that supplies its own encoding. The encoder calls
// MarshalValue before applying any other rule, passing the key under which
// the value appears in its holder (the empty string at the top level), and
// encodes the result in its place.
type Marshaler interface {
	MarshalValue(key string) Value
}

// A Replacer is called by the encoder for each value before it is formatted.
// The holder is the array or object from which v was read, and key is the key
// of v in holder. The value returned is encoded in place of v; returning
// Undefined omits the value from an object, or renders null in an array.
type Replacer func(holder Value, key string, v Value) Value

// An Encoder carries the settings for encoding values as JSON text.
// A zero value is ready for use and produces compact output.
type Encoder struct {
	// If set, Replacer is applied to each value before it is encoded.
	Replacer Replacer

	// If non-nil, only object members whose keys are listed in Allowlist are
	// encoded, in the order given. A non-nil empty Allowlist encodes every
	// object as {}.
	Allowlist []string

	// Indent is the string added for each level of nesting. If Indent is
	// empty, the output is compact; otherwise each element and member is
	// written on its own line.
	Indent string
}

// Encode encodes v as compact JSON text. See [Encoder.Encode].
func Encode(v Value) (string, error) { return Encoder{}.Encode(v) }

// Encode encodes v as JSON text using the settings from e.
//
// If v has no JSON representation, for example if it is Undefined or a Func,
// Encode returns "" without error. The only error reported is a
// [*CycleError], when an array or object contains itself.
func (e Encoder) Encode(v Value) (_ string, err error) {
	st := &encodeState{
		Encoder:   e,
		ancestors: mapset.New[Value](),
	}
	if e.Allowlist != nil {
		st.Allowlist = dedupKeys(e.Allowlist)
	}
	defer func() {
		if x := recover(); x != nil {
			cerr, ok := x.(*CycleError)
			if !ok {
				panic(x)
			}
			err = cerr
		}
	}()

	root := NewObject().Set("", v)
	out, _ := st.encode(root, "", v, "")
	return out, nil
}

// encodeState is the state of a single call to Encode.
type encodeState struct {
	Encoder

	// The arrays and objects currently being encoded.
	ancestors mapset.Set[Value]
}

// encode returns the encoding of v, which was read from holder under key, or
// reports false if v has no encoding. The indent is the indentation of the
// line on which v begins.
func (st *encodeState) encode(holder Value, key string, v Value, indent string) (string, bool) {
	if m, ok := v.(Marshaler); ok {
		v = m.MarshalValue(key)
	}
	if d, ok := v.(Date); ok {
		v = String(FormatDate(d))
	}
	if st.Replacer != nil {
		v = st.Replacer(holder, key, v)
	}

	switch t := v.(type) {
	case nil, null:
		return "null", true
	case Bool:
		return strconv.FormatBool(bool(t)), true
	case Number:
		return formatNumber(float64(t)), true
	case String:
		return Quote(string(t)), true
	case *Array:
		if t == nil {
			return "null", true
		}
		st.push(key, t)
		defer st.pop(t)
		return st.encodeArray(t, indent), true
	case *Object:
		if t == nil {
			return "null", true
		}
		st.push(key, t)
		defer st.pop(t)
		return st.encodeObject(t, indent), true
	default:
		return "", false
	}
}

func (st *encodeState) encodeArray(a *Array, indent string) string {
	inner := indent + st.Indent
	n := len(a.Values) // a replacer may modify a
	parts := make([]string, 0, n)
	for i := range n {
		s, ok := "", false
		if i < len(a.Values) {
			s, ok = st.encode(a, strconv.Itoa(i), a.Values[i], inner)
		}
		if !ok {
			s = "null" // arrays never drop elements
		}
		parts = append(parts, s)
	}
	return st.join("[", "]", parts, indent, inner)
}

func (st *encodeState) encodeObject(o *Object, indent string) string {
	inner := indent + st.Indent
	keys := st.Allowlist
	if keys == nil {
		keys = o.Keys() // a replacer may modify o
	}
	sep := ":"
	if st.Indent != "" {
		sep = ": "
	}

	var parts []string
	for _, key := range keys {
		if !o.Has(key) {
			continue // not in o
		}
		if s, ok := st.encode(o, key, o.Get(key), inner); ok {
			parts = append(parts, Quote(key)+sep+s)
		}
	}
	return st.join("{", "}", parts, indent, inner)
}

// join renders parts between the left and right brackets, with one element
// per line at the inner indentation if indentation is enabled.
func (st *encodeState) join(left, right string, parts []string, indent, inner string) string {
	if len(parts) == 0 {
		return left + right
	} else if st.Indent == "" {
		return left + strings.Join(parts, ",") + right
	}
	return left + "\n" + inner + strings.Join(parts, ",\n"+inner) + "\n" + indent + right
}

func (st *encodeState) push(key string, v Value) {
	if st.ancestors.Has(v) {
		panic(&CycleError{Key: key, Kind: v.Kind()})
	}
	st.ancestors.Add(v)
}

func (st *encodeState) pop(v Value) { st.ancestors.Remove(v) }

// formatNumber renders v in the format of the ECMAScript Number to String
// conversion. Non-finite values are rendered as null.
func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "null"
	} else if v == 0 {
		return "0" // including negative zero
	}
	return numberText(v)
}

// numberText renders a finite nonzero v in ECMAScript notation: decimal
// unless the magnitude is below 1e-6 or at least 1e21.
func numberText(v float64) string {
	fmt := byte('f')
	if abs := math.Abs(v); abs < 1e-6 || abs >= 1e21 {
		fmt = 'e'
	}
	out := strconv.AppendFloat(nil, v, fmt, -1, 64)
	if fmt == 'e' {
		// Clean up e-09 to e-9.
		n := len(out)
		if n >= 4 && out[n-4] == 'e' && out[n-3] == '-' && out[n-2] == '0' {
			out[n-2] = out[n-1]
			out = out[:n-1]
		}
	}
	return string(out)
}
