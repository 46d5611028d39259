// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jvalue/internal/escape"
	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	NumberLit            // number
	StringLit            // quoted string
	TrueLit              // constant: true
	FalseLit             // constant: false
	NullLit              // constant: null
)

var tokenStr = [...]string{
	Invalid:   "invalid token",
	LBrace:    `"{"`,
	RBrace:    `"}"`,
	LSquare:   `"["`,
	RSquare:   `"]"`,
	Comma:     `","`,
	Colon:     `":"`,
	NumberLit: "number",
	StringLit: "string",
	TrueLit:   "true",
	FalseLit:  "false",
	NullLit:   "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner reads lexical tokens from a source string. Each call to Next
// advances the scanner to the next token, and reports whether one was found.
//
// At the end of the input, Next returns false and Err returns nil. If the
// input is malformed, Next returns false and Err reports a *SyntaxError.
type Scanner struct {
	src  string
	tok  Token
	text string  // current token, decoded if a string
	num  float64 // value of the current token if a number
	err  error

	pos, end int // start and end offsets of current token
}

// NewScanner constructs a new lexical scanner that consumes input from src.
func NewScanner(src string) *Scanner { return &Scanner{src: src} }

// Next advances s to the next token of the input, and reports whether a token
// is available.
func (s *Scanner) Next() bool {
	s.tok, s.text, s.num, s.err = Invalid, "", 0, nil

	// Discard whitespace.
	for s.end < len(s.src) && isSpace(s.src[s.end]) {
		s.end++
	}
	s.pos = s.end
	if s.end >= len(s.src) {
		return false
	}

	ch := s.src[s.end]

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.end++
		s.tok, s.text = t, s.src[s.pos:s.end]
		return true
	}

	// Handle numbers.
	if isNumStart(ch) {
		return s.scanNumber()
	}

	// Handle string values.
	if ch == '"' {
		return s.scanString()
	}

	// Handle constants: true, false, null
	rest := mem.S(s.src[s.pos:])
	for _, c := range constants {
		if mem.HasPrefix(rest, c.text) {
			s.end += c.text.Len()
			s.tok, s.text = c.tok, s.src[s.pos:s.end]
			return true
		}
	}
	return s.failf(s.pos, ErrUnrecognizedToken, "unrecognized token %q", tokenPrefix(s.src[s.pos:]))
}

var constants = [...]struct {
	text mem.RO
	tok  Token
}{
	{mem.S("true"), TrueLit},
	{mem.S("false"), FalseLit},
	{mem.S("null"), NullLit},
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next, or nil.
func (s *Scanner) Err() error { return s.err }

// Text returns the text of the current token. For a StringLit token, quotation
// marks are removed and escape sequences are decoded. For other tokens, it is
// the source text of the token.
func (s *Scanner) Text() string { return s.text }

// Float64 returns the value of the current token if it is a NumberLit, or 0.
// Numbers too large to represent are reported as positive or negative
// infinity.
func (s *Scanner) Float64() float64 { return s.num }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: lineCol(s.src, s.pos),
		Last:  lineCol(s.src, s.end),
	}
}

func (s *Scanner) scanString() bool {
	i, esc := s.pos+1, false
	for i < len(s.src) {
		switch ch := s.src[i]; {
		case ch == '"':
			body := s.src[s.pos+1 : i]
			s.end = i + 1
			s.tok, s.text = StringLit, body
			if esc {
				dec, err := escape.Unquote(mem.S(body))
				if err != nil {
					return s.failf(s.pos, ErrInvalidEscape, "%v", err) // should not be possible
				}
				s.text = string(dec)
			}
			return true

		case ch < ' ':
			return s.failf(i, ErrControlChar, "unescaped control %q in string", ch)

		case ch == '\\':
			// Check the escape here, so that Unquote will not fail.
			esc = true
			if i+1 >= len(s.src) {
				return s.failf(len(s.src), ErrUnterminatedString, "unterminated string")
			}
			switch e := s.src[i+1]; e {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if !isHex4(s.src[i+2:]) {
					return s.failf(i, ErrUnicodeEscape, "invalid Unicode escape %q", tokenPrefix(s.src[i:]))
				}
				i += 6
			default:
				return s.failf(i, ErrInvalidEscape, "invalid %q after escape", e)
			}

		default:
			i++
		}
	}
	return s.failf(len(s.src), ErrUnterminatedString, "unterminated string")
}

func (s *Scanner) scanNumber() bool {
	i := s.pos
	if s.src[i] == '-' {
		// If there is a leading sign, we need at least one digit.
		i++
		if i >= len(s.src) || !isDigit(s.src[i]) {
			return s.failf(s.pos, ErrUnexpectedMinus, "unexpected '-'")
		}
	}

	// Consume the integer part. Extra leading zeroes are disallowed: 0.12 is
	// OK, 01.2 is not.
	if s.src[i] == '0' {
		i++
		if i < len(s.src) && isDigit(s.src[i]) {
			return s.failf(i, ErrLeadingZero, "illegal leading zero")
		}
	} else {
		i = s.skipDigits(i)
	}

	// If a decimal point follows, consume a fractional part.
	if i < len(s.src) && s.src[i] == '.' {
		i++
		if i >= len(s.src) || !isDigit(s.src[i]) {
			return s.failf(i, ErrTrailingDecimal, "no digits after decimal point")
		}
		i = s.skipDigits(i)
	}

	// If an exponent follows, consume it.
	if i < len(s.src) && (s.src[i] == 'e' || s.src[i] == 'E') {
		i++
		if i < len(s.src) && (s.src[i] == '+' || s.src[i] == '-') {
			i++
		}
		if i >= len(s.src) || !isDigit(s.src[i]) {
			return s.failf(i, ErrEmptyExponent, "missing exponent digits")
		}
		i = s.skipDigits(i)
	}

	s.end = i
	s.tok, s.text = NumberLit, s.src[s.pos:s.end]
	v, err := strconv.ParseFloat(s.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return s.failf(s.pos, ErrUnknown, "invalid number: %v", err)
	}
	s.num = v
	return true
}

func (s *Scanner) skipDigits(i int) int {
	for i < len(s.src) && isDigit(s.src[i]) {
		i++
	}
	return i
}

func (s *Scanner) failf(pos int, code ErrorCode, msg string, args ...any) bool {
	s.tok, s.text = Invalid, ""
	s.end = pos
	s.err = &SyntaxError{
		Code:     code,
		Offset:   pos,
		Location: lineCol(s.src, pos),
		Message:  fmt.Sprintf(msg, args...),
	}
	return false
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isHex4(s string) bool {
	if len(s) < 4 {
		return false
	}
	for i := range 4 {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// tokenPrefix returns a short prefix of s for use in error messages.
func tokenPrefix(s string) string {
	const maxLen = 8
	if i := strings.IndexAny(s, " \t\r\n,:[]{}"); i > 0 && i < maxLen {
		return s[:i]
	} else if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
