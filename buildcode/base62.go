package buildcode

import (
	"fmt"
	"math"
)

// Levels, counts and the owned total all travel as base62: digits first,
// then lowercase, then uppercase. The alphabet is URL-path-safe and packs
// four-figure currency totals into two characters.
const base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const base62Radix = 62

// max base62 digits of a positive int64
const maxBase62Digits = 11

// encode62 renders n in base62. encode62(0) is "0". Negative input clamps
// to zero; the data model has no negative quantities.
func encode62(n int) string {
	if n <= 0 {
		return "0"
	}
	var buf [maxBase62Digits]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = base62Alphabet[n%base62Radix]
		n /= base62Radix
	}
	return string(buf[i:])
}

// decode62 parses a base62 string. The empty string and any character
// outside the digit set fail with ErrBadNumber.
func decode62(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty number", ErrBadNumber)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		d, ok := base62Value(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q in %q", ErrBadNumber, s[i], s)
		}
		if n > (math.MaxInt-d)/base62Radix {
			return 0, fmt.Errorf("%w: %q overflows", ErrBadNumber, s)
		}
		n = n*base62Radix + d
	}
	return n, nil
}

// base62Value maps one byte to its digit value.
func base62Value(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 36, true
	}
	return 0, false
}
