package client

import "errors"

var (
	// ErrTransport marks socket-level failures: dial, write, or read
	// errors. These propagate to the caller instead of degrading into a
	// Response.
	ErrTransport = errors.New("transport failure")

	// ErrInvalidData marks a response header block that is not valid
	// UTF-8. This is the only parse failure that is fatal; every other
	// malformation yields a degraded Response.
	ErrInvalidData = errors.New("invalid response data")
)
