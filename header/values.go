package header

import (
	"fmt"

	"github.com/zostay/go-httpdate"
)

// DateFromValues parses the raw values of a single field as an HTTP date. There
// must be exactly one value.
//
// It returns ErrNoSuchField when values is empty and ErrManyFields when there
// is more than one. Otherwise, it returns the result of httpdate.Parse, with
// any error also wrapping ErrInvalidField.
func DateFromValues(values []string) (httpdate.Date, error) {
	switch len(values) {
	case 0:
		return httpdate.Date{}, ErrNoSuchField
	case 1:
	default:
		return httpdate.Date{}, ErrManyFields
	}

	d, err := httpdate.Parse(values[0])
	if err != nil {
		return httpdate.Date{}, fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	return d, nil
}
