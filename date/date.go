// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package date provides small, stateless helpers for working with dates
// and times: parsing the two common textual interchange formats,
// formatting intervals, and a few calendar and clock calculations.
//
// All functions are pure and safe for concurrent use.
package date // import "go.dateutil.net/date"

import (
	"fmt"
	"math"
	nmail "net/mail"
	"time"
)

// rfc2822Fallbacks covers date forms that net/mail rejects but that
// commonly appear in feeds and mail archives.
var rfc2822Fallbacks = [...]string{
	"02 Jan 2006 15:04:05",
	"Mon, 02 Jan 2006 15:04:05",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// ParseRFC2822 parses an RFC 2822 date-time string such as
// "Tue, 01 Nov 2016 08:49:37 GMT" and returns the instant it denotes.
// The leading day of week is optional, and the zone may be a 4-digit
// numeric offset or one of the named zones RFC 5322 allows ("GMT",
// "UT", "EST", ...). Malformed input yields the zero Time and an error.
func ParseRFC2822(value string) (time.Time, error) {
	t, err := nmail.ParseDate(value)
	if err == nil {
		return t, nil
	}
	for _, layout := range rfc2822Fallbacks {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as an RFC 2822 date", value)
}

// ParseISO8601 parses an ISO 8601 date-time string with an explicit
// zone, such as "2016-11-01T08:49:37Z" or "2016-11-01T08:49:37+05:00",
// and returns the instant it denotes. Malformed input yields the zero
// Time and an error.
func ParseISO8601(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q as an ISO 8601 date: %v", value, err)
	}
	return t, nil
}

// FormatRFC2822 renders t in RFC 2822 form, always in UTC with a
// numeric "+0000" zone. The result round-trips through ParseRFC2822
// to the second.
func FormatRFC2822(t time.Time) string {
	return t.UTC().Format(time.RFC1123Z)
}

// IsLeapYear reports whether t's year, read in t's location, is a leap
// year: divisible by 400, or divisible by 4 but not by 100.
func IsLeapYear(t time.Time) bool {
	year := t.Year()
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// FormatTimeSpan renders the interval from start to end as
// "HH:mm:ss.sss". Hours do not roll over into days, so intervals of a
// day or more render with HH above 24. Minutes and seconds are padded
// to two digits, milliseconds to three. The behavior when end precedes
// start is unspecified.
func FormatTimeSpan(start, end time.Time) string {
	ms := end.Sub(start).Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}

const oneRad = 2 * math.Pi / 360

// ClockAngle returns the angle in radians between the hour and minute
// hands of an analog clock showing t's UTC hour and minute. The minute
// hand moves 6 degrees per minute; the hour hand 30 degrees per hour
// plus half a degree per minute. The result is the smaller of the two
// angles between the hands, in [0, pi].
func ClockAngle(t time.Time) float64 {
	u := t.UTC()
	hour := float64(u.Hour() % 12)
	min := float64(u.Minute())
	angle := math.Abs(hour*30 + min/2 - min*6)
	if angle > 180 {
		angle = 360 - angle
	}
	return angle * oneRad
}
