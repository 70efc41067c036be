package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-httpdate/header/field"
)

func TestParseLines(t *testing.T) {
	t.Parallel()

	// basic parse, no folding
	input := []byte("a:\nb:\nc:\nd:\n")
	lb := []byte("\n")
	lines, err := field.ParseLines(input, lb)
	assert.NoError(t, err)
	assert.Equal(t, field.Lines{
		[]byte("a:\n"),
		[]byte("b:\n"),
		[]byte("c:\n"),
		[]byte("d:\n"),
	}, lines)

	// folding parse
	input = []byte("a:b\n b\n b\nb:\nc:\nd:\n\teeee\n")
	lines, err = field.ParseLines(input, lb)
	assert.NoError(t, err)
	assert.Equal(t, field.Lines{
		[]byte("a:b\n b\n b\n"),
		[]byte("b:\n"),
		[]byte("c:\n"),
		[]byte("d:\n\teeee\n"),
	}, lines)

	// folding parse, with start junk
	input = []byte(" start:\njunk\na:b\n b\n b\nb:\n")
	lines, err = field.ParseLines(input, lb)
	var badStart *field.BadStartError
	require.ErrorAs(t, err, &badStart)
	assert.Equal(t, []byte(" start:\njunk\n"), badStart.BadStart)
	assert.Equal(t, field.Lines{
		[]byte("a:b\n b\n b\n"),
		[]byte("b:\n"),
	}, lines)

	// the blank line ends the header
	input = []byte("Date: Sun, 06 Nov 1994 08:49:37 GMT\r\n\r\nbody: text\r\n")
	lines, err = field.ParseLines(input, []byte("\r\n"))
	assert.NoError(t, err)
	assert.Equal(t, field.Lines{
		[]byte("Date: Sun, 06 Nov 1994 08:49:37 GMT\r\n"),
	}, lines)
}

func TestParse(t *testing.T) {
	t.Parallel()

	f := field.Parse([]byte("Date: Sun, 06 Nov 1994 08:49:37 GMT\n"), []byte{'\n'})
	require.NotNil(t, f)
	require.NotNil(t, f.Raw())
	assert.Equal(t, "Date", f.Name())
	assert.Equal(t, "Sun, 06 Nov 1994 08:49:37 GMT", f.Body())
	assert.Equal(t, "Date", f.Raw().Name())
	assert.Equal(t, " Sun, 06 Nov 1994 08:49:37 GMT", f.Raw().Body())
	assert.Equal(t, "Date: Sun, 06 Nov 1994 08:49:37 GMT", f.String())

	f = field.Parse([]byte("Expires: Sun,\r\n 06 Nov 1994\r\n\t08:49:37 GMT\r\n"), []byte("\r\n"))
	require.NotNil(t, f)
	assert.Equal(t, "Expires", f.Name())
	assert.Equal(t, "Sun, 06 Nov 1994 08:49:37 GMT", f.Body())
	assert.Equal(t, []byte("Expires: Sun,\r\n 06 Nov 1994\r\n\t08:49:37 GMT"), f.Bytes())

	f = field.Parse([]byte("X-Place: caf\xe9\n"), []byte{'\n'})
	assert.Equal(t, "café", f.Body())

	f = field.Parse([]byte("no colon here\n"), []byte{'\n'})
	assert.Equal(t, "no colon here", f.Name())
	assert.Equal(t, "", f.Body())
	assert.Equal(t, "", f.Raw().Body())
}
