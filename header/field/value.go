package field

import (
	"errors"

	"golang.org/x/text/encoding/charmap"
)

// ErrInvalidValue is returned by NewValue when the string given cannot be
// written into a header field.
var ErrInvalidValue = errors.New("invalid header field value")

// Value is a header field body encoded for the wire. It holds ISO-8859-1
// bytes and contains no control characters other than horizontal tab.
type Value []byte

// NewValue encodes s as a Value. It fails with ErrInvalidValue if s holds a
// control character or a character that ISO-8859-1 cannot represent.
func NewValue(s string) (Value, error) {
	b, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, ErrInvalidValue
	}

	for i := 0; i < len(b); i++ {
		if isCtl(b[i]) {
			return nil, ErrInvalidValue
		}
	}

	return Value(b), nil
}

// MustValue is like NewValue, but panics on error.
func MustValue(s string) Value {
	v, err := NewValue(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String decodes the value back into a Go string.
func (v Value) String() string {
	return decodeLatin1(v)
}

// Bytes returns the encoded value.
func (v Value) Bytes() []byte {
	return []byte(v)
}

// isCtl reports whether c is a control character other than horizontal tab.
func isCtl(c byte) bool {
	return (c < 0x20 && c != '\t') || c == 0x7f
}

func decodeLatin1(b []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// every byte is defined in ISO-8859-1
		return string(b)
	}
	return string(s)
}
