package mobius

import "errors"

// ErrInvalidParameter is the single error kind raised by this package.
// New returns it (wrapped with the offending field and value) whenever
// radius ≤ 0, width ≤ 0, or resolution < 2. All downstream queries assume
// a validly constructed Strip and cannot fail.
var ErrInvalidParameter = errors.New("mobius: invalid strip parameter")
