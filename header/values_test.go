package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-httpdate"
	"github.com/zostay/go-httpdate/header"
)

func TestDateFromValues(t *testing.T) {
	t.Parallel()

	_, err := header.DateFromValues(nil)
	assert.ErrorIs(t, err, header.ErrNoSuchField)

	_, err = header.DateFromValues([]string{})
	assert.ErrorIs(t, err, header.ErrNoSuchField)

	_, err = header.DateFromValues([]string{
		"Sun, 06 Nov 1994 08:49:37 GMT",
		"Sun, 06 Nov 1994 08:49:37 GMT",
	})
	assert.ErrorIs(t, err, header.ErrManyFields)

	_, err = header.DateFromValues([]string{"this-is-no-date"})
	assert.ErrorIs(t, err, header.ErrInvalidField)
	assert.ErrorIs(t, err, httpdate.ErrParse)

	d, err := header.DateFromValues([]string{"Sun Nov  6 08:49:37 1994"})
	require.NoError(t, err)
	assert.Equal(t, httpdate.FromUnix(784111777), d)
}
