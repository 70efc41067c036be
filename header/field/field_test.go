package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-httpdate/header/field"
)

func TestField(t *testing.T) {
	t.Parallel()

	f := field.New("Last-Modified", "Sun, 06 Nov 1994 08:49:37 GMT")
	assert.Nil(t, f.Raw())
	assert.Equal(t, "Last-Modified", f.Name())
	assert.Equal(t, "Sun, 06 Nov 1994 08:49:37 GMT", f.Body())
	assert.Equal(t, "Last-Modified: Sun, 06 Nov 1994 08:49:37 GMT", f.String())
	assert.Equal(t, []byte("Last-Modified: Sun, 06 Nov 1994 08:49:37 GMT"), f.Bytes())
}

func TestField_Modified(t *testing.T) {
	t.Parallel()

	f := field.Parse([]byte("last-modified:Sun, 06 Nov 1994 08:49:37 GMT\n"), []byte{'\n'})
	require.NotNil(t, f.Raw())
	assert.Equal(t, "last-modified:Sun, 06 Nov 1994 08:49:37 GMT", f.String())
	assert.Equal(t, "last-modified", f.Raw().Name())

	f.SetBody("Mon, 07 Nov 1994 08:48:37 GMT")
	assert.Nil(t, f.Raw())
	assert.Equal(t, "last-modified: Mon, 07 Nov 1994 08:48:37 GMT", f.String())

	f = field.Parse([]byte("x: y\n"), []byte{'\n'})
	require.NotNil(t, f.Raw())
	f.SetName("Expires")
	assert.Nil(t, f.Raw())
	assert.Equal(t, "Expires: y", f.String())
}

func TestBase_Bytes(t *testing.T) {
	t.Parallel()

	f := field.New("X-Place", "café")
	assert.Equal(t, []byte("X-Place: caf\xe9"), f.Bytes())
	assert.Equal(t, "X-Place: café", f.String())

	f = field.New("X-Place", "東京")
	assert.Equal(t, []byte("X-Place: 東京"), f.Bytes())

	// a field is never written as more than one line
	f = field.New("X-Note", "hi\r\nSet-Cookie: evil=1")
	assert.Equal(t, []byte("X-Note: hi  Set-Cookie: evil=1"), f.Bytes())

	f = field.New("X-Note\n", "東京\n\x00")
	assert.Equal(t, []byte("X-Note : 東京  "), f.Bytes())

	f = field.New("X-Tab", "a\tb")
	assert.Equal(t, []byte("X-Tab: a\tb"), f.Bytes())
}
