package header

import (
	"net/http"
	"sort"
)

// FromHTTP copies a net/http header into a new Header. The net/http header
// does not keep fields in order, so the fields are sorted by name.
func FromHTTP(hh http.Header) *Header {
	names := make([]string, 0, len(hh))
	for name := range hh {
		names = append(names, name)
	}
	sort.Strings(names)

	h := &Header{}
	for _, name := range names {
		for _, v := range hh[name] {
			h.InsertBeforeField(h.Len(), name, v)
		}
	}
	return h
}

// HTTP copies the header into a new net/http header.
func (h *Header) HTTP() http.Header {
	hh := make(http.Header, h.Len())
	for _, f := range h.fields {
		hh.Add(f.Name(), f.Body())
	}
	return hh
}
