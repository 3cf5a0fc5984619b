package sanitizer

import "errors"

// ErrUnknownPolicy is returned by PolicyByName for unrecognized names.
var ErrUnknownPolicy = errors.New("unknown sanitize policy")
