package specchecker

import "errors"

// ErrNotMapping reports a document whose top level is not a mapping.
var ErrNotMapping = errors.New("openapi document is not a mapping")
