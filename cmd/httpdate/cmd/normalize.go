package cmd

import (
	"errors"

	"github.com/zostay/go-httpdate"
	"github.com/zostay/go-httpdate/header"
)

// readDate fetches the named field as a date. In lenient mode, a body that is
// not an HTTP date is given to header.ParseTime as a last resort.
func readDate(h *header.Header, name string) (httpdate.Date, error) {
	d, err := h.GetDateField(name)
	if err == nil || !cfg.Lenient || !errors.Is(err, header.ErrInvalidField) {
		return d, err
	}

	t, err := h.GetTime(name)
	if err != nil {
		return httpdate.Date{}, err
	}

	logger.Debug().Str("field", name).Msg("accepted non-HTTP date in lenient mode")
	return httpdate.FromTime(t), nil
}

// normalizeDates rewrites the configured date fields of h in IMF-fixdate
// format. Fields that are already in that format are left untouched. It
// returns the number of fields rewritten and whether any field had to be
// skipped.
func normalizeDates(h *header.Header) (int, bool) {
	changed, skipped := 0, false
	for _, name := range cfg.Fields {
		d, err := readDate(h, name)
		if errors.Is(err, header.ErrNoSuchField) {
			continue
		} else if err != nil {
			logger.Warn().Str("field", name).Err(err).Msg("skipping field")
			skipped = true
			continue
		}

		if body, _ := h.Get(name); body == d.String() {
			continue
		}

		h.SetDateField(name, d)
		changed++
	}

	return changed, skipped
}
