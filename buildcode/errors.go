package buildcode

import "errors"

// Decode failures are typed by cause. Codec.Decode wraps every one of them
// in ErrMalformed so callers probing arbitrary strings have a single error
// to check; the cause stays reachable through errors.Is for diagnostics.
var (
	// ErrMalformed is the uniform outer error returned by Codec.Decode.
	ErrMalformed = errors.New("buildcode: not a valid build code")

	// ErrAlphabet marks a character outside the code alphabet.
	ErrAlphabet = errors.New("buildcode: character outside code alphabet")

	// ErrCountMismatch marks a declared count that disagrees with the
	// content following it. The message carries both values.
	ErrCountMismatch = errors.New("buildcode: declared count mismatch")

	// ErrBadNumber marks a string that does not decode as base62.
	ErrBadNumber = errors.New("buildcode: invalid base62 number")

	// ErrIncomplete marks a code with fewer segments than its declared
	// counts require.
	ErrIncomplete = errors.New("buildcode: truncated code")
)
