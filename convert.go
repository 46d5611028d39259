// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"time"
)

// FromAny converts a Go value into a Value. It accepts nil, bool, string,
// all integer and floating-point types, time.Time, Value, and slices and
// string-keyed maps of these. Map members are added in order of their keys.
// Any other type is reported as an error.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null, nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case float64:
		return Number(t), nil
	case time.Time:
		return TimeOf(t), nil
	case []any:
		return fromSlice(reflect.ValueOf(t))
	case map[string]any:
		return fromMap(reflect.ValueOf(t))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null, nil
		}
		return fromSlice(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		} else if rv.IsNil() {
			return Null, nil
		}
		return fromMap(rv)
	case reflect.Pointer:
		if rv.IsNil() {
			return Null, nil
		}
		return FromAny(rv.Elem().Interface())
	}
	return nil, fmt.Errorf("cannot convert %T to a value", v)
}

func fromSlice(rv reflect.Value) (Value, error) {
	arr := &Array{Values: make([]Value, rv.Len())}
	for i := range rv.Len() {
		ev, err := FromAny(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		arr.Values[i] = ev
	}
	return arr, nil
}

func fromMap(rv reflect.Value) (Value, error) {
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return cmp.Compare(a.String(), b.String())
	})
	obj := NewObject()
	for _, key := range keys {
		mv, err := FromAny(rv.MapIndex(key).Interface())
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key.String(), err)
		}
		obj.Set(key.String(), mv)
	}
	return obj, nil
}

// ToAny converts v into a plain Go value: nil for Null, bool, float64,
// string, []any for an array, map[string]any for an object, and time.Time for
// a Time. Values with no JSON representation, such as Undefined, convert to
// nil; array elements and object members that convert this way are kept.
func ToAny(v Value) any {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case Time:
		return t.Time()
	case *Array:
		if t == nil {
			return nil
		}
		out := make([]any, len(t.Values))
		for i, ev := range t.Values {
			out[i] = ToAny(ev)
		}
		return out
	case *Object:
		if t == nil {
			return nil
		}
		out := make(map[string]any, t.Len())
		for key, mv := range t.All() {
			out[key] = ToAny(mv)
		}
		return out
	}
	return nil
}
