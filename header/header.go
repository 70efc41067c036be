package header

import (
	"errors"
	"strings"

	"github.com/zostay/go-httpdate"
)

// Errors returned by various header methods and functions.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned by Header methods when the operation
	// being performed failed because the there are multiple fields with the
	// given name.
	ErrManyFields = errors.New("many header fields found")

	// ErrInvalidField is returned when a field is present, but its body
	// cannot be parsed as the value the field is supposed to hold.
	ErrInvalidField = errors.New("invalid header field")
)

// These are the standard HTTP header fields that hold an HTTP date.
const (
	Date              = "Date"
	Expires           = "Expires"
	IfModifiedSince   = "If-Modified-Since"
	IfUnmodifiedSince = "If-Unmodified-Since"
	LastModified      = "Last-Modified"
)

// DateFields lists every standard field that holds an HTTP date.
var DateFields = []string{Date, Expires, IfModifiedSince, IfUnmodifiedSince, LastModified}

// cached is a parsed value along with the body it was parsed from.
type cached struct {
	body  string
	value any
}

// Header wraps a Base, which does the actual storage and low-level field
// manipulation. This provides several methods to make reading and manipulating
// the header more convenient and some caching for values parsed from header
// fields.
//
// The getter methods of this object will return ErrNoSuchField if the field
// being fetched has not been set and ErrManyFields if it has been set more
// than once.
type Header struct {
	// Base provides the low-level storage of header fields.
	Base

	// valueCache holds the semantic value for a header. Every entry records
	// the body it was parsed from and is only used while the field still holds
	// that body, so edits made through Base or a field.Field cannot make it
	// stale. It must only hold immutable values.
	valueCache map[string]cached
}

// Clone returns a deep copy of the header object.
func (h *Header) Clone() *Header {
	c := &Header{
		Base: Base{
			lbr:    h.lbr,
			fields: h.ListFields(),
		},
		valueCache: make(map[string]cached, len(h.valueCache)),
	}

	for i, f := range c.fields {
		cf := *f
		c.fields[i] = &cf
	}

	// the cached values are immutable
	for k, v := range h.valueCache {
		c.valueCache[k] = v
	}

	return c
}

// getValue returns the cached value for name if it was parsed from body.
func (h *Header) getValue(name, body string) (any, bool) {
	c, found := h.valueCache[strings.ToLower(name)]
	if !found || c.body != body {
		return nil, false
	}
	return c.value, true
}

// setValue replaces the cached value for the given name.
func (h *Header) setValue(name, body string, value any) {
	if h.valueCache == nil {
		h.valueCache = make(map[string]cached, h.Len())
	}
	h.valueCache[strings.ToLower(name)] = cached{body, value}
}

// Get retrieves the body of the named field.
//
// If the named field is not set in the header, it will return an empty string
// with ErrNoSuchField. If there are multiple fields with the given name, it
// will return the first value found and ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	b := h.GetField(ixs[0]).Body()
	if len(ixs) > 1 {
		return b, ErrManyFields
	}

	return b, nil
}

// GetValues returns the bodies of every field with the given name, in order.
func (h *Header) GetValues(name string) []string {
	fs := h.GetAllFieldsNamed(name)
	vs := make([]string, len(fs))
	for i, f := range fs {
		vs[i] = f.Body()
	}
	return vs
}

// Set replaces the named field with the given body. The first field with the
// name is updated in place and any others are removed. If no such field is
// set, a new one is appended to the end of the header.
func (h *Header) Set(name, body string) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		h.InsertBeforeField(h.Len(), name, body)
		return
	}

	h.GetField(ixs[0]).SetBody(body)
	for i := len(ixs) - 1; i > 0; i-- {
		_ = h.DeleteField(ixs[i])
	}
}

// Delete removes every field with the given name. It returns ErrNoSuchField if
// there was nothing to remove.
func (h *Header) Delete(name string) error {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return ErrNoSuchField
	}

	for i := len(ixs) - 1; i >= 0; i-- {
		_ = h.DeleteField(ixs[i])
	}
	return nil
}

// GetDateField returns the named field as an httpdate.Date. The field must be
// set exactly once and must hold an HTTP date in any of the formats accepted by
// httpdate.Parse.
//
// It returns ErrNoSuchField or ErrManyFields when the field is missing or
// repeated. It returns an error wrapping both ErrInvalidField and
// httpdate.ErrParse when the body is not an HTTP date.
func (h *Header) GetDateField(name string) (httpdate.Date, error) {
	vs := h.GetValues(name)
	if len(vs) == 1 {
		if v, found := h.getValue(name, vs[0]); found {
			if d, isDate := v.(httpdate.Date); isDate {
				return d, nil
			}
		}
	}

	d, err := DateFromValues(vs)
	if err != nil {
		return d, err
	}

	h.setValue(name, vs[0], d)

	return d, nil
}

// SetDateField replaces the named field with the given date in IMF-fixdate
// format.
func (h *Header) SetDateField(name string, d httpdate.Date) {
	body := d.HeaderValue().String()
	h.Set(name, body)
	h.setValue(name, body, d)
}

// GetDate retrieves the Date field.
func (h *Header) GetDate() (httpdate.Date, error) {
	return h.GetDateField(Date)
}

// SetDate updates the Date field.
func (h *Header) SetDate(d httpdate.Date) {
	h.SetDateField(Date, d)
}

// GetExpires retrieves the Expires field.
func (h *Header) GetExpires() (httpdate.Date, error) {
	return h.GetDateField(Expires)
}

// SetExpires updates the Expires field.
func (h *Header) SetExpires(d httpdate.Date) {
	h.SetDateField(Expires, d)
}

// GetLastModified retrieves the Last-Modified field.
func (h *Header) GetLastModified() (httpdate.Date, error) {
	return h.GetDateField(LastModified)
}

// SetLastModified updates the Last-Modified field.
func (h *Header) SetLastModified(d httpdate.Date) {
	h.SetDateField(LastModified, d)
}

// GetIfModifiedSince retrieves the If-Modified-Since field.
func (h *Header) GetIfModifiedSince() (httpdate.Date, error) {
	return h.GetDateField(IfModifiedSince)
}

// SetIfModifiedSince updates the If-Modified-Since field.
func (h *Header) SetIfModifiedSince(d httpdate.Date) {
	h.SetDateField(IfModifiedSince, d)
}

// GetIfUnmodifiedSince retrieves the If-Unmodified-Since field.
func (h *Header) GetIfUnmodifiedSince() (httpdate.Date, error) {
	return h.GetDateField(IfUnmodifiedSince)
}

// SetIfUnmodifiedSince updates the If-Unmodified-Since field.
func (h *Header) SetIfUnmodifiedSince(d httpdate.Date) {
	h.SetDateField(IfUnmodifiedSince, d)
}
