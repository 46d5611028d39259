// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"errors"
	"math"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jvalue.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jvalue.Token{jvalue.TrueLit, jvalue.FalseLit, jvalue.NullLit}},

		// Punctuation
		{"{ [ ] } , :", []jvalue.Token{
			jvalue.LBrace, jvalue.LSquare, jvalue.RSquare, jvalue.RBrace, jvalue.Comma, jvalue.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jvalue.Token{jvalue.StringLit, jvalue.StringLit, jvalue.StringLit}},
		{`"\"\\\/\b\f\n\r\t"`, []jvalue.Token{jvalue.StringLit}},
		{`"\u0000\u01fc\uAA9c"`, []jvalue.Token{jvalue.StringLit}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100 1e5`, []jvalue.Token{
			jvalue.NumberLit, jvalue.NumberLit, jvalue.NumberLit, jvalue.NumberLit,
			jvalue.NumberLit, jvalue.NumberLit, jvalue.NumberLit, jvalue.NumberLit,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jvalue.Token{
			jvalue.LBrace, jvalue.TrueLit, jvalue.Comma, jvalue.StringLit, jvalue.Colon,
			jvalue.NumberLit, jvalue.NullLit, jvalue.LSquare, jvalue.RSquare, jvalue.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jvalue.Token{
			jvalue.LBrace,
			jvalue.StringLit, jvalue.Colon, jvalue.TrueLit, jvalue.Comma,
			jvalue.StringLit, jvalue.Colon,
			jvalue.LSquare,
			jvalue.NullLit, jvalue.Comma, jvalue.NumberLit, jvalue.Comma, jvalue.NumberLit,
			jvalue.RSquare,
			jvalue.RBrace,
		}},
		{`"a",1,true
       false["b"]
       `, []jvalue.Token{
			jvalue.StringLit, jvalue.Comma, jvalue.NumberLit, jvalue.Comma, jvalue.TrueLit,
			jvalue.FalseLit, jvalue.LSquare, jvalue.StringLit, jvalue.RSquare,
		}},
	}

	for _, test := range tests {
		var got []jvalue.Token
		s := jvalue.NewScanner(test.input)
		for s.Next() {
			got = append(got, s.Token())
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerValues(t *testing.T) {
	mustScan := func(t *testing.T, input string, want jvalue.Token) *jvalue.Scanner {
		t.Helper()
		s := jvalue.NewScanner(input)
		if !s.Next() {
			t.Fatalf("Next failed: %v", s.Err())
		} else if s.Token() != want {
			t.Fatalf("Next token: got %v, want %v", s.Token(), want)
		}
		return s
	}

	t.Run("Number", func(t *testing.T) {
		tests := []struct {
			input string
			want  float64
		}{
			{"0", 0},
			{"-0", math.Copysign(0, -1)},
			{"-15", -15},
			{"3.25e-5", 3.25e-5},
			{"1E3", 1000},
			{"1e+2", 100},
			{"0.5", 0.5},
			{"1e400", math.Inf(1)},
			{"-1e400", math.Inf(-1)},
		}
		for _, tc := range tests {
			s := mustScan(t, tc.input, jvalue.NumberLit)
			if got := s.Float64(); got != tc.want || math.Signbit(got) != math.Signbit(tc.want) {
				t.Errorf("Float64(%q): got %v, want %v", tc.input, got, tc.want)
			}
			if got := s.Text(); got != tc.input {
				t.Errorf("Text(%q): got %q", tc.input, got)
			}
		}
	})
	t.Run("Constants", func(t *testing.T) {
		mustScan(t, `true`, jvalue.TrueLit)
		mustScan(t, `false`, jvalue.FalseLit)
		mustScan(t, `null`, jvalue.NullLit)
	})
	t.Run("String", func(t *testing.T) {
		const wantDec = "a\tb c\n/\"" // with escapes undone
		s := mustScan(t, `"a\tb\u0020c\n\/\""`, jvalue.StringLit)
		if got := s.Text(); got != wantDec {
			t.Errorf("Text: got %#q, want %#q", got, wantDec)
		}
	})
	t.Run("Surrogates", func(t *testing.T) {
		s := mustScan(t, `"\ud83d\ude00 \ud83d"`, jvalue.StringLit)
		if got, want := s.Text(), "\U0001F600 \xef\xbf\xbd"; got != want {
			t.Errorf("Text: got %q, want %q", got, want)
		}
	})
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		input string
		code  jvalue.ErrorCode
		pos   int
	}{
		{"\"a\x01b\"", jvalue.ErrControlChar, 2},
		{"\"a\nb\"", jvalue.ErrControlChar, 2},
		{`"\u12"`, jvalue.ErrUnicodeEscape, 1},
		{`"\uZZZZ"`, jvalue.ErrUnicodeEscape, 1},
		{`"\x"`, jvalue.ErrInvalidEscape, 1},
		{`"\'"`, jvalue.ErrInvalidEscape, 1},
		{`"abc`, jvalue.ErrUnterminatedString, 4},
		{`"abc\`, jvalue.ErrUnterminatedString, 5},
		{`01`, jvalue.ErrLeadingZero, 1},
		{`-00`, jvalue.ErrLeadingZero, 2},
		{`1.`, jvalue.ErrTrailingDecimal, 2},
		{`1.e5`, jvalue.ErrTrailingDecimal, 2},
		{`1e`, jvalue.ErrEmptyExponent, 2},
		{`1e+`, jvalue.ErrEmptyExponent, 3},
		{`2E-x`, jvalue.ErrEmptyExponent, 3},
		{`-`, jvalue.ErrUnexpectedMinus, 0},
		{`-a`, jvalue.ErrUnexpectedMinus, 0},
		{`.5`, jvalue.ErrUnrecognizedToken, 0},
		{`+1`, jvalue.ErrUnrecognizedToken, 0},
		{`nul`, jvalue.ErrUnrecognizedToken, 0},
		{`True`, jvalue.ErrUnrecognizedToken, 0},
		{`'a'`, jvalue.ErrUnrecognizedToken, 0},
		{`  undefined`, jvalue.ErrUnrecognizedToken, 2},
	}
	for _, tc := range tests {
		s := jvalue.NewScanner(tc.input)
		for s.Next() {
			// skip valid tokens
		}
		err := s.Err()
		var serr *jvalue.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Input %#q: got error %v, want *SyntaxError", tc.input, err)
			continue
		}
		if !errors.Is(err, tc.code) {
			t.Errorf("Input %#q: got code %v, want %v", tc.input, serr.Code, tc.code)
		}
		if serr.Offset != tc.pos {
			t.Errorf("Input %#q: got offset %d, want %d", tc.input, serr.Offset, tc.pos)
		}
	}
}

func TestScannerLoc(t *testing.T) {
	type tokPos struct {
		Tok jvalue.Token
		Pos string
	}
	tests := []struct {
		input string
		want  []tokPos
	}{
		{"", nil},
		{"{ }", []tokPos{{jvalue.LBrace, "1:0-1"}, {jvalue.RBrace, "1:2-3"}}},
		{`"foo" 12`, []tokPos{{jvalue.StringLit, "1:0-5"}, {jvalue.NumberLit, "1:6-8"}}},
		{"true\n false\n", []tokPos{{jvalue.TrueLit, "1:0-4"}, {jvalue.FalseLit, "2:1-6"}}},
		{"[1,\n 2\n]", []tokPos{
			{jvalue.LSquare, "1:0-1"}, {jvalue.NumberLit, "1:1-2"}, {jvalue.Comma, "1:2-3"},
			{jvalue.NumberLit, "2:1-2"}, {jvalue.RSquare, "3:0-1"},
		}},
	}
	for _, tc := range tests {
		var got []tokPos
		s := jvalue.NewScanner(tc.input)
		for s.Next() {
			got = append(got, tokPos{s.Token(), s.Location().String()})
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"\xe2\x80\xa8", "\"\xe2\x80\xa8\""},
	}
	for _, test := range tests {
		got := jvalue.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                        // missing quotes
		{`"missing quote`, ``, true},          // missing quotes
		{`missing quote"`, ``, true},          // missing quotes
		{`"a" "b"`, ``, true},                 // not a single string
		{` "a"`, ``, true},                    // not a single string
		{`12`, ``, true},                      // not a string
		{`""`, ``, false},                     // ok
		{`"ok go"`, "ok go", false},           // ok
		{`"abc\ndef"`, "abc\ndef", false},     // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false}, // C escapes
		{`"a \u0026 b"`, "a & b", false},     // short Unicode escape
		{`"\u"`, ``, true},                    // incomplete Unicode escape
		{`"\u00"`, ``, true},                  // incomplete Unicode escape
		{`"\u00x9"`, ``, true},                // invalid Unicode escape
		{`"a\"b"`, `a"b`, false},              // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},       // ok
	}

	for _, test := range tests {
		got, err := jvalue.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got %#q, want error", test.input, got)
		}
		if got != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}
