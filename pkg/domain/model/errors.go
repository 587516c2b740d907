package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagTransport marks failures where no HTTP response was obtained
	ErrTagTransport = goerr.NewTag("transport")

	// ErrTagRejected marks deliveries the receiver answered with status >= 400
	ErrTagRejected = goerr.NewTag("rejected")

	// ErrTagInvalidTarget marks a delivery URL that cannot be used
	ErrTagInvalidTarget = goerr.NewTag("invalid_target")
)
