package dimacs

import "errors"

// ErrMalformedInput is returned when the header is missing, a vertex token
// is not an integer, or a vertex id falls outside [0,n).
var ErrMalformedInput = errors.New("dimacs: malformed input")
