// Package field holds the low-level pieces of a header: a single header field,
// the raw bytes it was parsed from, and Value, a field body that is safe to
// write to the wire.
package field

// Field is a single header field. Name() and Body() come from the embedded
// Base and always hold the decoded, unfolded values.
//
// A Field returned by Parse also remembers the line it was read from, so a
// header can be written back out byte-for-byte. That memory is lost as soon as
// the name or body is changed, after which the field is written from Base.
type Field struct {
	Base
	raw *Raw
}

// New constructs a new field with no original value.
func New(name, body string) *Field {
	return &Field{Base: Base{name, body}}
}

// Raw returns the line the field was parsed from or nil if the field was built
// with New or has been modified since it was parsed.
func (f *Field) Raw() *Raw {
	return f.raw
}

// String returns the original line if there is one and the field rendered from
// its name and body otherwise.
func (f *Field) String() string {
	if f.raw != nil {
		return f.raw.String()
	}
	return f.Base.String()
}

// Bytes is the wire form of String().
func (f *Field) Bytes() []byte {
	if f.raw != nil {
		return f.raw.Bytes()
	}
	return f.Base.Bytes()
}

// SetName sets the name of the field and forgets the original line.
func (f *Field) SetName(n string) {
	f.raw = nil
	f.Base.SetName(n)
}

// SetBody sets the body of the field and forgets the original line.
func (f *Field) SetBody(b string) {
	f.raw = nil
	f.Base.SetBody(b)
}
