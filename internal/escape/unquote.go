// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// unescape maps the character following a backslash to its decoded byte, for
// all escapes other than \u.
var unescape = [...]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Unquote decodes the body of a JSON string literal. The input must have the
// enclosing double quotation marks already removed.
//
// A \u escape denotes a UTF-16 code unit. Adjacent escapes that form a
// surrogate pair decode to a single rune; an unpaired surrogate decodes to the
// Unicode replacement rune. Unquote reports an error for an invalid or
// incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putRune := func(r rune) { dec = utf8.AppendRune(dec, r) }
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		c := src.At(0)
		src = src.SliceFrom(1)
		if c != 'u' {
			if int(c) >= len(unescape) || unescape[c] == 0 {
				return nil, fmt.Errorf("invalid escape %q", c)
			}
			dec = append(dec, unescape[c])
		} else {
			r, n, err := decodeUnit(src)
			if err != nil {
				return nil, err
			}
			putRune(r)
			src = src.SliceFrom(n)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
}

// decodeUnit decodes the code unit of a \u escape whose "\u" prefix has
// already been consumed from src. It returns the decoded rune and the number
// of bytes of src consumed, which includes a second escape when the two form
// a surrogate pair.
func decodeUnit(src mem.RO) (rune, int, error) {
	r, err := parseHex4(src)
	if err != nil {
		return 0, 0, err
	} else if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}
	rest := src.SliceFrom(4)
	if rest.Len() >= 6 && rest.At(0) == '\\' && rest.At(1) == 'u' {
		lo, err := parseHex4(rest.SliceFrom(2))
		if err == nil {
			if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
				return pair, 10, nil
			}
		}
	}
	return utf8.RuneError, 4, nil
}

func parseHex4(data mem.RO) (rune, error) {
	if data.Len() < 4 {
		return 0, errors.New("incomplete Unicode escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
