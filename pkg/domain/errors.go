package domain

import "errors"

// ErrNoActiveFlow is returned when a flow context is requested for a user
// that has no conversation in progress.
var ErrNoActiveFlow = errors.New("no active flow")
