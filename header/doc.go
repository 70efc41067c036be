// Package header provides a container for the fields of an HTTP-style header
// and typed access to the date fields within it.
//
// Base is the low-level ordered list of fields. Header adds getters and setters
// that parse and render field bodies, such as GetDate() and SetLastModified().
// Date getters follow a strict rule: the field must appear exactly once and
// its body must be an HTTP date (see httpdate.Parse). DateFromValues applies
// the same rule to any slice of raw field values, such as those found in a
// net/http Header.
//
// The provided Parse() function will parse a raw header block and keeps every
// field as it was written so that untouched fields are written back out
// byte-for-byte.
package header
