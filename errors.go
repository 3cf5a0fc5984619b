package paramkit

import "errors"

// ErrInvalidConfig is returned by NewFromConfig.
var ErrInvalidConfig = errors.New("invalid paramkit config")
