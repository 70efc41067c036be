package header

import (
	"errors"

	"github.com/zostay/go-httpdate/header/field"
)

// Parse will parse the given raw header block using the given line break. It
// will assume the entire input represents the header, up to the first blank
// line.
//
// Every field keeps its raw form, so a header that is parsed and then written
// back out is unchanged apart from the fields that were modified.
//
// If the input starts with junk, the junk is skipped and a *field.BadStartError
// is returned along with the header.
func Parse(m []byte, lb Break) (*Header, error) {
	lines, err := field.ParseLines(m, lb.Bytes())

	var badStartErr *field.BadStartError // recoverable
	var finalErr error
	if errors.As(err, &badStartErr) {
		finalErr = badStartErr
	} else if err != nil {
		return nil, err
	}

	fields := make([]*field.Field, len(lines))
	for i, line := range lines {
		fields[i] = field.Parse(line, lb.Bytes())
	}

	h := &Header{
		Base: Base{
			lbr:    lb,
			fields: fields,
		},
	}

	return h, finalErr
}
