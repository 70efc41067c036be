package field

// Base is a header field name and body without any memory of how it was
// originally written. The body is held decoded, as a Go string.
type Base struct {
	name string
	body string
}

// Name returns the name of the header field.
func (f *Base) Name() string {
	return f.name
}

// SetName updates the name of the header field.
func (f *Base) SetName(name string) {
	f.name = name
}

// Body returns the value of the header field as a string.
func (f *Base) Body() string {
	return f.body
}

// SetBody updates the body of the header field.
func (f *Base) SetBody(body string) {
	f.body = body
}

// String returns the complete header field as a string.
func (f *Base) String() string {
	return f.name + ": " + f.body
}

// Bytes returns the complete header field as it should be written to the wire.
// The body is encoded as ISO-8859-1 when possible. Otherwise, it is written
// as-is, except that control characters in the name or body are written as
// spaces, so a field always occupies a single line.
func (f *Base) Bytes() []byte {
	b := make([]byte, 0, len(f.name)+2+len(f.body))
	b = appendLine(b, f.name)
	b = append(b, ':', ' ')
	if v, err := NewValue(f.body); err == nil {
		return append(b, v...)
	}
	return appendLine(b, f.body)
}

// appendLine appends s to b with every control character but tab replaced by
// a space.
func appendLine(b []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isCtl(c) {
			c = ' '
		}
		b = append(b, c)
	}
	return b
}
