// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"math"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/mds/mapset"
)

// maxIndent is the longest indentation string used by Stringify.
const maxIndent = 10

// Stringify encodes v as JSON text, with encoder settings derived from
// dynamically-typed filter and width arguments.
//
// The filter may be a Replacer (or a func with the same signature), which is
// used as the replacer; a Func, which is called with the holder, the key as a
// String, and the value; or a list of keys, which is used as the allowlist. A
// list of keys may be a []string, a slice of any integer or floating-point
// type, an []any or []Value whose elements are strings or numbers, or an
// *Array. Numbers are converted to keys in their JSON text form, elements of
// other types are ignored, and duplicate keys are removed. A filter of any
// other type is ignored.
//
// The width may be a number, which is truncated toward zero and clamped to
// the range 0..10 to give a number of spaces; or a string, of which the first
// 10 characters are used. A width of any other type gives compact output.
func Stringify(v Value, filter, width any) (string, error) {
	e := Encoder{Indent: normalizeWidth(width)}
	e.Replacer, e.Allowlist = normalizeFilter(filter)
	return e.Encode(v)
}

func normalizeFilter(filter any) (Replacer, []string) {
	switch f := filter.(type) {
	case nil:
		return nil, nil
	case Replacer:
		return f, nil
	case func(Value, string, Value) Value:
		return f, nil
	case Func:
		if f == nil {
			return nil, nil
		}
		return func(holder Value, key string, v Value) Value {
			return f(holder, String(key), v)
		}, nil
	case []string:
		return nil, dedupKeys(f)
	case []any:
		return nil, keysOf(f)
	case []Value:
		return nil, keysOf(f)
	case *Array:
		if f == nil {
			return nil, nil
		}
		return nil, keysOf(f.Values)
	}

	rv := reflect.ValueOf(filter)
	if rv.Kind() != reflect.Slice {
		return nil, nil
	}
	keys := make([]string, 0, rv.Len())
	for i := range rv.Len() {
		if key, ok := keyOf(rv.Index(i).Interface()); ok {
			keys = append(keys, key)
		}
	}
	return nil, dedupKeys(keys)
}

func keysOf[T any](vs []T) []string {
	keys := make([]string, 0, len(vs))
	for _, v := range vs {
		if key, ok := keyOf(v); ok {
			keys = append(keys, key)
		}
	}
	return dedupKeys(keys)
}

// keyOf reports the allowlist key for a list element, if it has one.
func keyOf(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case String:
		return string(t), true
	case Number:
		return numberKey(float64(t)), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numberKey(float64(rv.Int())), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numberKey(float64(rv.Uint())), true
	case reflect.Float32, reflect.Float64:
		return numberKey(rv.Float()), true
	case reflect.String:
		return rv.String(), true
	}
	return "", false
}

// numberKey renders v as a property key, following the ECMAScript Number to
// String conversion.
func numberKey(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return formatNumber(v)
}

// dedupKeys returns a copy of keys with duplicates removed, retaining the
// first occurrence of each key. The result is non-nil even if keys is empty.
func dedupKeys(keys []string) []string {
	seen := mapset.New[string]()
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if !seen.Has(key) {
			seen.Add(key)
			out = append(out, key)
		}
	}
	return out
}

func normalizeWidth(width any) string {
	switch w := width.(type) {
	case nil:
		return ""
	case string:
		return truncate(w, maxIndent)
	case String:
		return truncate(string(w), maxIndent)
	case Number:
		return spaces(float64(w))
	}
	rv := reflect.ValueOf(width)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return spaces(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return spaces(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return spaces(rv.Float())
	case reflect.String:
		return truncate(rv.String(), maxIndent)
	}
	return ""
}

// spaces returns a string of n spaces, where n is truncated toward zero and
// clamped to 0..maxIndent.
func spaces(n float64) string {
	if math.IsNaN(n) || n < 1 {
		return ""
	}
	return strings.Repeat(" ", int(min(math.Trunc(n), maxIndent)))
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for range n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
