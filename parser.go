// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import "fmt"

// DefaultMaxDepth is the nesting limit used by the decoder when the MaxDepth
// option is not set.
const DefaultMaxDepth = 10000

// DecodeOptions are settings for decoding. A zero value is ready for use with
// default settings.
type DecodeOptions struct {
	// MaxDepth is the maximum permitted nesting of arrays and objects.
	// If MaxDepth ≤ 0, DefaultMaxDepth is used.
	MaxDepth int

	// If set, Reviver is applied to the decoded value as described by Walk.
	Reviver Reviver
}

func (o DecodeOptions) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

// Decode parses src as a single JSON value. If reviver != nil, it is applied to
// the result as described by Walk. In case of a syntax error, the returned
// error has type [*SyntaxError], and no value is returned.
func Decode(src string, reviver Reviver) (Value, error) {
	return DecodeOptions{Reviver: reviver}.Decode(src)
}

// Decode parses src as a single JSON value using the settings from o.
// The input must contain exactly one value, optionally surrounded by
// whitespace.
func (o DecodeOptions) Decode(src string) (_ Value, err error) {
	p := &parser{s: NewScanner(src), maxDepth: o.maxDepth()}
	defer p.recoverSyntaxError(&err)

	p.advance()
	v := p.parseValue()
	if p.next() {
		p.syntaxError(ErrExpectedEOF, "expected end of input, got %v", p.s.Token())
	}
	if o.Reviver != nil {
		return Walk(v, o.Reviver), nil
	}
	return v, nil
}

// A parser is a recursive-descent parser over the tokens of a Scanner.
// Errors are propagated by panicking with a *SyntaxError, which is recovered
// at the top level by Decode.
type parser struct {
	s        *Scanner
	depth    int
	maxDepth int
}

func (p *parser) recoverSyntaxError(errp *error) {
	if serr := recover(); serr != nil {
		if err, ok := serr.(*SyntaxError); ok {
			*errp = err
			return
		}
		panic(serr)
	}
}

// parseValue consumes a single value of any type.
// Precondition: the current token begins the value.
func (p *parser) parseValue() Value {
	switch tok := p.s.Token(); tok {
	case LBrace:
		return p.parseObject()
	case LSquare:
		return p.parseArray()
	case StringLit:
		return String(p.s.Text())
	case NumberLit:
		return Number(p.s.Float64())
	case TrueLit, FalseLit:
		return Bool(tok == TrueLit)
	case NullLit:
		return Null
	default:
		p.syntaxError(ErrExpectedBracket, "expected '[' or '{', got %v", tok)
		panic("unreachable")
	}
}

// parseArray consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (p *parser) parseArray() Value {
	p.enter()
	defer p.leave()

	arr := new(Array)
	switch tok := p.advance(); tok {
	case RSquare:
		return arr // empty array
	case Comma:
		p.syntaxError(ErrLeadingComma, "unexpected leading comma in array")
	}
	for {
		arr.Values = append(arr.Values, p.parseValue())

		// Check whether we have more elements (",") or are done ("]").
		switch tok := p.advance(); tok {
		case RSquare:
			return arr
		case Comma:
			switch p.advance() {
			case RSquare:
				p.syntaxError(ErrTrailingComma, "unexpected trailing comma in array")
			case Comma:
				p.syntaxError(ErrEmptyElement, "unexpected comma, missing array element")
			}
		default:
			p.syntaxError(ErrMissingComma, "expected %v or %v, got %v", Comma, RSquare, tok)
		}
	}
}

// parseObject consumes zero or more key:value object members.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (p *parser) parseObject() Value {
	p.enter()
	defer p.leave()

	obj := new(Object)
	switch tok := p.advance(); tok {
	case RBrace:
		return obj // empty object
	case Comma:
		p.syntaxError(ErrLeadingComma, "unexpected leading comma in object")
	}
	for {
		// Parse a single member: "key": value
		if tok := p.s.Token(); tok != StringLit {
			p.syntaxError(ErrNonStringKey, "expected string key, got %v", tok)
		}
		key := p.s.Text()
		if tok := p.advance(); tok != Colon {
			p.syntaxError(ErrMissingColon, "expected %v after key, got %v", Colon, tok)
		}
		p.advance()
		obj.Set(key, p.parseValue())

		// Check whether we have more members (",") or are done ("}").
		switch tok := p.advance(); tok {
		case RBrace:
			return obj
		case Comma:
			if p.advance() == RBrace {
				p.syntaxError(ErrTrailingComma, "unexpected trailing comma in object")
			}
		default:
			p.syntaxError(ErrMissingComma, "expected %v or %v, got %v", Comma, RBrace, tok)
		}
	}
}

// next advances to the next token and reports whether one is available.
// A lexical error is propagated as a syntax error.
func (p *parser) next() bool {
	if p.s.Next() {
		return true
	} else if err := p.s.Err(); err != nil {
		panic(err)
	}
	return false
}

// advance advances to the next token and returns it. Running out of input is
// a syntax error, since every caller expects a further token.
func (p *parser) advance() Token {
	if !p.next() {
		p.syntaxError(ErrUnexpectedEOF, "unexpected end of input")
	}
	return p.s.Token()
}

func (p *parser) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		p.syntaxError(ErrTooDeep, "nesting depth exceeds %d", p.maxDepth)
	}
}

func (p *parser) leave() { p.depth-- }

func (p *parser) syntaxError(code ErrorCode, msg string, args ...any) {
	loc := p.s.Location()
	panic(&SyntaxError{
		Code:     code,
		Offset:   loc.Pos,
		Location: loc.First,
		Message:  fmt.Sprintf(msg, args...),
	})
}
