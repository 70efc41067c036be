package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-httpdate/header/field"
)

func TestNewValue(t *testing.T) {
	t.Parallel()

	v, err := field.NewValue("Sun, 06 Nov 1994 08:49:37 GMT")
	require.NoError(t, err)
	assert.Equal(t, []byte("Sun, 06 Nov 1994 08:49:37 GMT"), v.Bytes())
	assert.Equal(t, "Sun, 06 Nov 1994 08:49:37 GMT", v.String())

	v, err = field.NewValue("caf\u00e9\tau lait")
	require.NoError(t, err)
	assert.Equal(t, field.Value("caf\xe9\tau lait"), v)
	assert.Equal(t, "café\tau lait", v.String())

	bad := []string{
		"line\r\nbreak",
		"nul\x00",
		"del\x7f",
		"東京",
		"\xff\xfe",
	}
	for _, s := range bad {
		_, err := field.NewValue(s)
		assert.ErrorIs(t, err, field.ErrInvalidValue, s)
	}
}

func TestMustValue(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { field.MustValue("bad\n") })
	assert.Equal(t, field.Value("ok"), field.MustValue("ok"))
}
