// Package httpdate provides Date, a timestamp as it appears in HTTP header
// fields such as Date, Expires, and Last-Modified.
//
// Prior to 1995, there were three different formats commonly used by servers
// to communicate timestamps. A recipient must accept all three of them:
//
//	Sun, 06 Nov 1994 08:49:37 GMT    ; IMF-fixdate
//	Sunday, 06-Nov-94 08:49:37 GMT   ; obsolete RFC 850 format
//	Sun Nov  6 08:49:37 1994         ; ANSI C's asctime() format
//
// A sender must only ever generate the first of these. Parse accepts all three
// and Date.String always renders IMF-fixdate. This is the same "liberal in what
// it accepts, strict in what it generates" rule the rest of this module follows.
//
// A Date has one-second resolution and is always in UTC. Two Date values are
// equal whenever they name the same instant, no matter which format they were
// parsed from, so Date may be compared with == and used as a map key.
//
// The header sub-package provides a header container that extracts dates from
// header fields and stores them back, and header/field provides the field and
// wire value types it is built on.
package httpdate
