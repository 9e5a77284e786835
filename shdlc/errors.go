package shdlc

import "errors"

// The SHDLC error taxonomy.  Every failure produced by this package and by
// the envelope layer above it is one of these values; compare with errors.Is.
var (
	// DuplicateSpecialChar reports an escape table in which a special
	// character appears twice.  It is not reachable with the built-in table,
	// whose eight values are pairwise distinct.
	DuplicateSpecialChar = errors.New("duplicate special character in escape table")

	// FendCharInData is returned when an escape marker is followed by a byte
	// that is not a recognized substitute.
	FendCharInData = errors.New("escape marker followed by unrecognized substitute")

	// MissingTradeChar is returned when an escape marker is the last byte of
	// the frame interior, with no following byte to interpret.
	MissingTradeChar = errors.New("escape marker with no substitute byte")

	// MissingFirstFend is returned when the input does not begin with the
	// frame boundary marker.
	MissingFirstFend = errors.New("frame does not start with boundary marker")

	// MissingFinalFend is returned when the input does not end with the
	// frame boundary marker.
	MissingFinalFend = errors.New("frame does not end with boundary marker")

	// TooMuchData is returned when a payload cannot fit within the requested
	// encode capacity.
	TooMuchData = errors.New("too much data for encode capacity")

	// TooFewData is returned when the input is shorter than the minimum
	// valid frame.
	TooFewData = errors.New("too few data for a valid frame")

	// InvalidChecksum is returned by the envelope layer when the checksum of
	// a decoded frame does not match its content.  The codec itself never
	// produces it.
	InvalidChecksum = errors.New("invalid frame checksum")

	// TooMuchDecodedData is returned when a decoded payload cannot fit
	// within the requested decode capacity.
	TooMuchDecodedData = errors.New("too much data for decode capacity")
)
