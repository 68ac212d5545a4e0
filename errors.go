package cuuid

import "errors"

// Sentinel errors for every failure kind the codec defines. Callers should
// use errors.Is against these. Decode wraps ErrBadChecksum, ErrBadCharacter
// or ErrBadCompound with %w around a basex decode error; every other call
// site returns the sentinel as-is.
var (
	// ErrTruncated is returned when a serialised record ends before its
	// declared length.
	ErrTruncated = errors.New("cuuid: truncated record")
	// ErrBadTag is returned when a condensed record's top byte matches no
	// row of the length-tag table.
	ErrBadTag = errors.New("cuuid: unrecognised length tag")
	// ErrBadVersion is returned by Encode for a Form value it does not
	// recognise. No operation in this package checks a recovered UUID's
	// version against an expected kind.
	ErrBadVersion = errors.New("cuuid: unexpected UUID version")
	// ErrBadChecksum is returned by the base-X decoder on a checksum
	// mismatch.
	ErrBadChecksum = errors.New("cuuid: base-X checksum mismatch")
	// ErrBadCharacter is returned by the base-X decoder when a character
	// falls outside the alphabet and translation set.
	ErrBadCharacter = errors.New("cuuid: character outside base-X alphabet")
	// ErrUUIDTooLarge is returned by FromData when the payload would
	// overflow the UUID's 122 variable bits.
	ErrUUIDTooLarge = errors.New("cuuid: payload too large for a UUID")
	// ErrBadCompound is returned when compound textual input cannot be
	// split into tokens, or a token is malformed.
	ErrBadCompound = errors.New("cuuid: malformed compound text")
	// ErrBadHex is returned by Parse on syntactically invalid canonical
	// hex input.
	ErrBadHex = errors.New("cuuid: malformed canonical hex UUID")
)
