package header

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/araddon/dateparse"

	"github.com/zostay/go-httpdate"
)

// ParseTime parses a field body as a time in just about any format. It tries
// httpdate.Parse first, then the date format of RFC 5322, then the many
// formats known to dateparse.
//
// This is for reading headers from senders that do not follow the rules. A
// strict reader should use httpdate.Parse or Header.GetDateField instead.
func ParseTime(body string) (time.Time, error) {
	d, err := httpdate.Parse(body)
	if err == nil {
		return d.Time(), nil
	}

	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: time string %q cannot be parsed", ErrInvalidField, body)
}

// GetTime gets the named field as a time.Time, parsed with ParseTime.
//
// It will return the zero value and ErrNoSuchField if the field does not
// exist, or ErrManyFields if it is set more than once.
func (h *Header) GetTime(name string) (time.Time, error) {
	body, err := h.Get(name)
	if err != nil {
		return time.Time{}, err
	}

	if v, found := h.getValue(name, body); found {
		if t, isTime := v.(time.Time); isTime {
			return t, nil
		}
	}

	t, err := ParseTime(body)
	if err != nil {
		return t, err
	}

	h.setValue(name, body, t)

	return t, nil
}
