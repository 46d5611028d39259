// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"

	"github.com/creachadair/jvalue/internal/escape"
	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
// Unquote reports an error if src is not exactly one valid string literal.
func Unquote(src string) (string, error) {
	s := NewScanner(src)
	if !s.Next() {
		if err := s.Err(); err != nil {
			return "", err
		}
		return "", errors.New("missing quotations")
	} else if s.Token() != StringLit || s.Span() != (Span{Pos: 0, End: len(src)}) {
		return "", errors.New("not a single string literal")
	}
	return s.Text(), nil
}
