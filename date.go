package httpdate

import (
	"fmt"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/zostay/go-httpdate/header/field"
)

// Layout is the time.Format layout of IMF-fixdate, the only format a Date is
// ever rendered in.
const Layout = "Mon, 02 Jan 2006 15:04:05 GMT"

// Len is the length of every rendered Date.
const Len = len(Layout)

// The range of instants that can be written with a 4-digit year.
const (
	minUnix = -62167219200 // 0000-01-01T00:00:00Z
	maxUnix = 253402300799 // 9999-12-31T23:59:59Z
)

// Bounds on the instants a Date can hold. Clock readings outside of this range
// are clamped by FromTime and FromUnix.
var (
	MinDate = Date{sec: minUnix}
	MaxDate = Date{sec: maxUnix}
)

// Date is an instant with one-second resolution in UTC. The zero value is the
// Unix epoch.
//
// Nothing but the number of seconds since the epoch is stored. The weekday and
// the format a Date was parsed from are not kept, so every rendering is
// computed fresh.
type Date struct {
	sec int64
}

// FromUnix returns the Date for the given number of seconds since the Unix
// epoch.
func FromUnix(sec int64) Date {
	switch {
	case sec < minUnix:
		sec = minUnix
	case sec > maxUnix:
		sec = maxUnix
	}
	return Date{sec: sec}
}

// FromTime returns the Date for the given time. Anything below a second is
// discarded.
func FromTime(t time.Time) Date {
	return FromUnix(t.Unix())
}

// Now returns the current time as a Date.
func Now() Date {
	return FromTime(time.Now())
}

// MustParse is like Parse, but panics if the text cannot be parsed.
func MustParse(text string) Date {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// Unix returns the number of seconds since the Unix epoch.
func (d Date) Unix() int64 {
	return d.sec
}

// Time returns the Date as a UTC time.Time.
func (d Date) Time() time.Time {
	return time.Unix(d.sec, 0).UTC()
}

// IsZero reports whether the Date is the Unix epoch.
func (d Date) IsZero() bool {
	return d.sec == 0
}

// Equal reports whether both dates name the same instant. This is the same as
// comparing them with ==.
func (d Date) Equal(o Date) bool {
	return d.sec == o.sec
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	return d.sec < o.sec
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool {
	return d.sec > o.sec
}

// Compare returns -1 if d is before o, +1 if d is after o, and 0 if they are
// equal.
func (d Date) Compare(o Date) int {
	switch {
	case d.sec < o.sec:
		return -1
	case d.sec > o.sec:
		return +1
	}
	return 0
}

// Hash returns a hash of the instant. Equal dates always have the same hash.
func (d Date) Hash() uint64 {
	h, err := hashstructure.Hash(d.sec, hashstructure.FormatV2, nil)
	if err != nil {
		// an int64 is always hashable
		panic(fmt.Sprintf("httpdate: hashing %d: %v", d.sec, err))
	}
	return h
}

// AppendFormat appends the IMF-fixdate form of the Date to b.
func (d Date) AppendFormat(b []byte) []byte {
	return d.Time().AppendFormat(b, Layout)
}

// String returns the Date in IMF-fixdate format, e.g.
// "Sun, 06 Nov 1994 08:49:37 GMT". The result is always Len bytes long.
func (d Date) String() string {
	return string(d.AppendFormat(make([]byte, 0, Len)))
}

// HeaderValue returns the Date as a value ready to be placed in a header
// field.
func (d Date) HeaderValue() field.Value {
	return field.Value(d.AppendFormat(make([]byte, 0, Len)))
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return d.AppendFormat(make([]byte, 0, Len)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any of the formats
// accepted by Parse may be used.
func (d *Date) UnmarshalText(text []byte) error {
	pd, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = pd
	return nil
}
