// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jvalue implements a strict JSON decoder and encoder over a tree of
// dynamically-typed values, with the semantics of the ECMAScript JSON.parse
// and JSON.stringify functions.
//
// # Decoding
//
// Decode parses a string containing exactly one JSON value and returns the
// corresponding Value tree:
//
//	v, err := jvalue.Decode(`{"a": 1, "b": [true, false, null]}`, nil)
//	if err != nil {
//	   log.Fatalf("Decode failed: %v", err)
//	}
//
// The grammar is strict: numbers may not have redundant leading zeroes, a
// decimal point must be followed by digits, strings may not contain raw
// control characters, and there are no comments or trailing commas. In case
// of error, the decoder returns a *jvalue.SyntaxError whose Code reports the
// specific problem:
//
//	if errors.Is(err, jvalue.ErrTrailingComma) { ... }
//
// If a Reviver is given, it is applied bottom-up to each value of the tree
// and can replace or remove values (see Walk).
//
// # Encoding
//
// Encode renders a Value tree as compact JSON text. An Encoder carries
// settings for a Replacer, an allowlist of object keys, and an indentation
// string for pretty-printing:
//
//	e := jvalue.Encoder{Indent: "  "}
//	text, err := e.Encode(v)
//
// Stringify accepts the same settings as dynamically-typed arguments, in the
// manner of JSON.stringify.
//
// Values that implement Marshaler supply their own encoding, and values that
// implement Date are rendered as ISO 8601 timestamps. Undefined and Func
// values have no encoding: they are omitted from objects, and rendered as
// null in arrays. The encoder reports a *jvalue.CycleError if an array or
// object contains itself.
//
// # Scanning
//
// The Scanner type implements the lexical scanner used by the decoder.
// Construct a scanner from a string and call its Next method to iterate over
// the tokens:
//
//	s := jvalue.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//	if err := s.Err(); err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
package jvalue

// Version is the version of the jvalue codec.
const Version = "1.0.0"
