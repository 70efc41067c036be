package header

import "bytes"

// Break represents the line break used to separate header fields.
type Break string

// Constants for use when selecting a line break to use with a new header. HTTP
// requires CRLF, but LF is commonly tolerated.
const (
	CRLF Break = "\x0d\x0a" // \r\n - Network linebreak
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}

// DetectBreak guesses the line break in use by a raw header. It returns CRLF
// if the input contains one and LF otherwise.
func DetectBreak(m []byte) Break {
	if bytes.Contains(m, CRLF.Bytes()) {
		return CRLF
	}
	return LF
}
