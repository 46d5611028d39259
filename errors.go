// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"fmt"
)

// An ErrorCode classifies a syntax error reported by the decoder.
// ErrorCode values satisfy the error interface, so that a *SyntaxError can be
// matched against a code with errors.Is:
//
//	if errors.Is(err, jvalue.ErrTrailingComma) { ... }
type ErrorCode byte

// Constants defining the valid ErrorCode values.
const (
	ErrUnknown            ErrorCode = iota // unclassified error
	ErrControlChar                         // unescaped control character in string
	ErrUnicodeEscape                       // invalid or incomplete \u escape
	ErrInvalidEscape                       // invalid character after \
	ErrUnterminatedString                  // missing closing quotation mark
	ErrLeadingZero                         // number with a redundant leading zero
	ErrTrailingDecimal                     // decimal point without fraction digits
	ErrEmptyExponent                       // exponent without digits
	ErrUnexpectedMinus                     // minus sign not followed by a digit
	ErrUnrecognizedToken                   // input that begins no valid token
	ErrMissingComma                        // elements or members not separated
	ErrTrailingComma                       // comma before a closing bracket
	ErrLeadingComma                        // comma after an opening bracket
	ErrEmptyElement                        // consecutive commas in an array
	ErrNonStringKey                        // object key is not a string
	ErrMissingColon                        // object key not followed by colon
	ErrUnexpectedEOF                       // input ended where a value was required
	ErrExpectedBracket                     // punctuation where a value must begin
	ErrExpectedEOF                         // input continues after the top-level value
	ErrTooDeep                             // nesting exceeds the depth limit
)

var codeStr = [...]string{
	ErrUnknown:            "syntax error",
	ErrControlChar:        "unescaped control character",
	ErrUnicodeEscape:      "invalid Unicode escape",
	ErrInvalidEscape:      "invalid escape",
	ErrUnterminatedString: "unterminated string",
	ErrLeadingZero:        "illegal leading zero",
	ErrTrailingDecimal:    "illegal trailing decimal point",
	ErrEmptyExponent:      "illegal empty exponent",
	ErrUnexpectedMinus:    "unexpected '-'",
	ErrUnrecognizedToken:  "unrecognized token",
	ErrMissingComma:       "missing comma",
	ErrTrailingComma:      "unexpected trailing comma",
	ErrLeadingComma:       "unexpected leading comma",
	ErrEmptyElement:       "unexpected comma",
	ErrNonStringKey:       "object key must be a string",
	ErrMissingColon:       "missing colon",
	ErrUnexpectedEOF:      "unexpected end of input",
	ErrExpectedBracket:    "expected '[' or '{'",
	ErrExpectedEOF:        "expected end of input",
	ErrTooDeep:            "nesting too deep",
}

func (c ErrorCode) String() string {
	if int(c) >= len(codeStr) {
		return codeStr[ErrUnknown]
	}
	return codeStr[c]
}

// Error satisfies the error interface.
func (c ErrorCode) Error() string { return c.String() }

// SyntaxError is the concrete type of errors reported by the decoder.
type SyntaxError struct {
	Code     ErrorCode
	Offset   int     // byte offset of the error in the input
	Location LineCol // line and column of the error
	Message  string
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}

// Is reports whether target is the ErrorCode of e.
func (e *SyntaxError) Is(target error) bool {
	c, ok := target.(ErrorCode)
	return ok && c == e.Code
}

// ErrCyclic is reported by the encoder when a value contains itself.
var ErrCyclic = errors.New("cyclic structure")

// CycleError is the concrete type of errors reported by the encoder when an
// array or object is reached again while it is still being encoded.
type CycleError struct {
	Key  string // the key at which the cycle closed
	Kind Kind   // the kind of the repeated value
}

// Error satisfies the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s at key %q", ErrCyclic, e.Kind, e.Key)
}

// Unwrap supports error wrapping.
func (e *CycleError) Unwrap() error { return ErrCyclic }
