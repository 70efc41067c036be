package field

import (
	"bytes"
)

// BadStartError is returned when the header begins with junk text that does not
// appear to be a header. This text is preserved in the error object.
type BadStartError struct {
	BadStart []byte // the text skipped at the start of header
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header"
}

// Line represents the unparsed content for a complete header field line.
type Line []byte

// Lines represents the unparsed content for zero or more header field
// lines.
type Lines []Line

// ParseLines splits the given header block into field lines. The lb argument
// is the line break in use. Parsing stops at the first empty line, which ends
// the header.
//
// A new field starts on any line that does not start with a space or tab and
// contains a colon. Any other line is a continuation of the field before it.
//
// If the first line (or lines) of input start with spaces or contain no colons,
// these lines will be skipped in the Lines returned and a BadStartError will be
// returned with them.
func ParseLines(m, lb []byte) (Lines, error) {
	h := make(Lines, 0, len(m)/80)
	var err *BadStartError
	for _, line := range bytes.SplitAfter(m, lb) {
		if len(line) == 0 || bytes.Equal(line, lb) {
			break
		}
		if line[0] == '\t' || line[0] == ' ' || !bytes.Contains(line, []byte(":")) {
			if len(h) == 0 {
				if err != nil {
					err.BadStart = append(err.BadStart, line...)
				} else {
					err = &BadStartError{line}
				}
				continue
			}

			h[len(h)-1] = append(h[len(h)-1], line...)
		} else {
			h = append(h, line)
		}
	}

	if err != nil {
		return h, err
	}
	return h, nil
}

// Parse will take a single header field line, including any folded
// continuation lines, and construct a header field from it. Folding is removed
// from the body, surrounding whitespace is trimmed, and the bytes are decoded
// as ISO-8859-1.
func Parse(f Line, lb []byte) *Field {
	rawField := bytes.TrimSuffix(f, lb)

	off := 1
	ix := bytes.IndexByte(rawField, ':')
	if ix < 0 {
		ix = len(rawField)
		off = 0
	}

	name := string(bytes.TrimSpace(unfold(rawField[:ix], lb)))
	body := decodeLatin1(bytes.TrimSpace(unfold(rawField[ix+off:], lb)))

	return &Field{
		Base: Base{name, body},
		raw:  &Raw{rawField, ix},
	}
}

// unfold joins continuation lines with a single space.
func unfold(b, lb []byte) []byte {
	if !bytes.Contains(b, lb) {
		return b
	}

	parts := bytes.Split(b, lb)
	for i := 1; i < len(parts); i++ {
		parts[i] = bytes.TrimLeft(parts[i], " \t")
	}
	return bytes.Join(parts, []byte{' '})
}
