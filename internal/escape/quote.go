// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

// controlEsc maps the control characters that have a two-character escape to
// the letter following the backslash. Other controls use a \u escape.
var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a JSON string literal, including the enclosing double
// quotation marks. Backslash, quotation mark, and control characters below
// U+0020 are escaped; all other input is copied unchanged.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	putByte := func(bs ...byte) { buf = append(buf, bs...) }

	putByte('"')
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case b < ' ':
			if e := controlEsc[b]; e != 0 {
				putByte('\\', e)
			} else {
				putByte('\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
			}
		case b == '\\' || b == '"':
			putByte('\\', b)
		default:
			putByte(b)
		}
	}
	putByte('"')
	return buf
}
