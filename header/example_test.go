package header_test

import (
	"fmt"

	"github.com/zostay/go-httpdate/header"
)

func ExampleHeader_GetDateField() {
	h, err := header.Parse([]byte("Date: Sun Nov  6 08:49:37 1994\n\n"), header.LF)
	if err != nil {
		panic(err)
	}

	d, err := h.GetDateField(header.Date)
	if err != nil {
		panic(err)
	}

	h.SetExpires(d)
	fmt.Print(h)

	// Output:
	// Date: Sun Nov  6 08:49:37 1994
	// Expires: Sun, 06 Nov 1994 08:49:37 GMT
}
