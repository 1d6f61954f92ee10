package batch

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrSourceNotFound = errors.New("source file not found")
	ErrWriteFailure   = errors.New("error writing to output file")
	ErrConfig         = errors.New("invalid arguments")
	ErrUnformatted    = errors.New("files are not formatted")
)
