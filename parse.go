package httpdate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrParse is returned (wrapped) by Parse when the text is not an HTTP date in
// any of the accepted formats.
var ErrParse = errors.New("invalid HTTP date")

var (
	shortDays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	longDays  = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	months    = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// Parse reads an HTTP date in any of these formats:
//
//	Sun, 06 Nov 1994 08:49:37 GMT    ; IMF-fixdate
//	Sunday, 06-Nov-94 08:49:37 GMT   ; obsolete RFC 850 format
//	Sun Nov  6 08:49:37 1994         ; ANSI C's asctime() format
//
// Matching is exact and case-sensitive. Leading or trailing space is not
// permitted. Seconds must be in 0-59, so a leap second is rejected.
//
// The weekday must be a weekday name, but it is not checked against the date.
// The weekday rendered by String is always computed from the date.
//
// The two digit years of the RFC 850 format are read as 2000-2068 for 00-68
// and as 1969-1999 for 69-99.
//
// On failure, the error returned wraps ErrParse.
func Parse(text string) (Date, error) {
	if d, ok := parseIMFFixdate(text); ok {
		return d, nil
	}

	if d, ok := parseRFC850(text); ok {
		return d, nil
	}

	if d, ok := parseASCTime(text); ok {
		return d, nil
	}

	return Date{}, fmt.Errorf("%w: %q", ErrParse, text)
}

// stamp holds the fields of a parsed date before validation.
type stamp struct {
	year, month, day     int
	hour, minute, second int
}

// date validates the fields and converts them into a Date.
func (s stamp) date() (Date, bool) {
	if s.month < 1 || s.month > 12 {
		return Date{}, false
	}
	if s.day < 1 || s.day > daysIn(time.Month(s.month), s.year) {
		return Date{}, false
	}
	if s.hour > 23 || s.minute > 59 || s.second > 59 {
		return Date{}, false
	}

	t := time.Date(s.year, time.Month(s.month), s.day, s.hour, s.minute, s.second, 0, time.UTC)
	return Date{sec: t.Unix()}, true
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(m time.Month, year int) int {
	switch m {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}

// digits reads s as an unsigned decimal number. Every byte must be an ASCII
// digit.
func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func lookup(names []string, s string) (int, bool) {
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}

// clock reads "hh:mm:ss" into the stamp.
func (s *stamp) clock(c string) bool {
	if len(c) != 8 || c[2] != ':' || c[5] != ':' {
		return false
	}

	var ok [3]bool
	s.hour, ok[0] = digits(c[0:2])
	s.minute, ok[1] = digits(c[3:5])
	s.second, ok[2] = digits(c[6:8])
	return ok[0] && ok[1] && ok[2]
}

// parseIMFFixdate reads "Sun, 06 Nov 1994 08:49:37 GMT".
func parseIMFFixdate(text string) (Date, bool) {
	if len(text) != Len {
		return Date{}, false
	}

	if _, ok := lookup(shortDays, text[0:3]); !ok {
		return Date{}, false
	}
	if text[3:5] != ", " || text[7] != ' ' || text[11] != ' ' || text[16] != ' ' {
		return Date{}, false
	}
	if text[25:] != " GMT" {
		return Date{}, false
	}

	var (
		s  stamp
		ok [3]bool
	)
	s.day, ok[0] = digits(text[5:7])
	s.month, ok[1] = lookup(months, text[8:11])
	s.year, ok[2] = digits(text[12:16])
	if !ok[0] || !ok[1] || !ok[2] || !s.clock(text[17:25]) {
		return Date{}, false
	}
	s.month++

	return s.date()
}

// parseRFC850 reads "Sunday, 06-Nov-94 08:49:37 GMT".
func parseRFC850(text string) (Date, bool) {
	comma := strings.IndexByte(text, ',')
	if comma < 0 {
		return Date{}, false
	}

	if _, ok := lookup(longDays, text[:comma]); !ok {
		return Date{}, false
	}

	// ", 06-Nov-94 08:49:37 GMT"
	rest := text[comma:]
	if len(rest) != 24 {
		return Date{}, false
	}
	if rest[0:2] != ", " || rest[4] != '-' || rest[8] != '-' || rest[11] != ' ' {
		return Date{}, false
	}
	if rest[20:] != " GMT" {
		return Date{}, false
	}

	var (
		s  stamp
		ok [3]bool
	)
	s.day, ok[0] = digits(rest[2:4])
	s.month, ok[1] = lookup(months, rest[5:8])
	s.year, ok[2] = digits(rest[9:11])
	if !ok[0] || !ok[1] || !ok[2] || !s.clock(rest[12:20]) {
		return Date{}, false
	}
	s.month++

	if s.year < 69 {
		s.year += 2000
	} else {
		s.year += 1900
	}

	return s.date()
}

// parseASCTime reads "Sun Nov  6 08:49:37 1994".
func parseASCTime(text string) (Date, bool) {
	if len(text) != 24 {
		return Date{}, false
	}

	if _, ok := lookup(shortDays, text[0:3]); !ok {
		return Date{}, false
	}
	if text[3] != ' ' || text[7] != ' ' || text[10] != ' ' || text[19] != ' ' {
		return Date{}, false
	}

	// the day is padded with a space, never with a zero
	day := text[8:10]
	switch day[0] {
	case ' ':
		day = day[1:]
	case '0':
		return Date{}, false
	}

	var (
		s  stamp
		ok [3]bool
	)
	s.month, ok[0] = lookup(months, text[4:7])
	s.day, ok[1] = digits(day)
	s.year, ok[2] = digits(text[20:24])
	if !ok[0] || !ok[1] || !ok[2] || !s.clock(text[11:19]) {
		return Date{}, false
	}
	s.month++

	return s.date()
}
