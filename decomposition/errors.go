package decomposition

import "errors"

// ErrUnknownBag is returned by operations that reference a bag id never
// created via AddBag.
var ErrUnknownBag = errors.New("decomposition: unknown bag id")
