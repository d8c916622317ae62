package bif6

import "errors"

var (
	// ErrBadMagic means the first 6 bytes did not match the BIF6 magic.
	ErrBadMagic = errors.New("invalid BIF6 magic")

	// ErrTruncatedHeader means the source ended before the 12-byte header.
	ErrTruncatedHeader = errors.New("truncated BIF6 header")

	// ErrTruncatedInterval means an interval record started but the source
	// ended before the record was complete. The session is unrecoverable.
	ErrTruncatedInterval = errors.New("truncated BIF6 interval")

	// ErrClosed is returned by Next after the reader has been closed.
	ErrClosed = errors.New("BIF6 reader is closed")
)
