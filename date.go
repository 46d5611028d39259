// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"strconv"
	"strings"
	"time"
)

// A Date is a value that reports calendar and clock components. The encoder
// renders a Date as a string in extended ISO 8601 format (see FormatDate)
// rather than as an object. The components are interpreted as UTC.
type Date interface {
	Date() (year int, month time.Month, day int)
	Clock() (hour, min, sec int)
	Nanosecond() int
}

// Time is a Value wrapping a time.Time, for use as a Date.
type Time struct{ t time.Time }

// TimeOf returns a Time value for t, converted to UTC.
func TimeOf(t time.Time) Time { return Time{t: t.UTC()} }

// Kind satisfies the Value interface. A Time is an object with no members.
func (Time) Kind() Kind { return KindObject }

// Time returns the time.Time wrapped by t, in UTC.
func (t Time) Time() time.Time { return t.t }

// Date satisfies the Date interface.
func (t Time) Date() (int, time.Month, int) { return t.t.UTC().Date() }

// Clock satisfies the Date interface.
func (t Time) Clock() (int, int, int) { return t.t.UTC().Clock() }

// Nanosecond satisfies the Date interface.
func (t Time) Nanosecond() int { return t.t.Nanosecond() }

// FormatDate renders d in the extended ISO 8601 format
//
//	YYYY-MM-DDTHH:MM:SS.sssZ
//
// with millisecond precision. Years before 1 or after 9999 are written with a
// sign and six digits, for example "-000001" or "+010000".
func FormatDate(d Date) string {
	year, month, day := d.Date()
	hour, minute, sec := d.Clock()
	msec := d.Nanosecond() / int(time.Millisecond)

	var sb strings.Builder
	if year <= 0 || year >= 10000 {
		if year < 0 {
			sb.WriteByte('-')
			year = -year
		} else {
			sb.WriteByte('+')
		}
		sb.WriteString(padZero(6, year))
	} else {
		sb.WriteString(padZero(4, year))
	}
	sb.WriteString("-" + padZero(2, int(month)))
	sb.WriteString("-" + padZero(2, day))
	sb.WriteString("T" + padZero(2, hour))
	sb.WriteString(":" + padZero(2, minute))
	sb.WriteString(":" + padZero(2, sec))
	sb.WriteString("." + padZero(3, msec))
	sb.WriteByte('Z')
	return sb.String()
}

// padZero returns the decimal representation of v, left-padded with zeroes to
// at least width digits.
func padZero(width, v int) string {
	s := strconv.Itoa(v)
	if n := width - len(s); n > 0 {
		return strings.Repeat("0", n) + s
	}
	return s
}
