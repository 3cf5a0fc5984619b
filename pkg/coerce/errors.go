package coerce

import "errors"

// ErrMalformedLiteral is reported when a bracketed default literal is not valid JSON.
var ErrMalformedLiteral = errors.New("malformed JSON literal")
