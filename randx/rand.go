// Package randx generates random values for tests, jitter, and scratch
// identifiers. It draws from math/rand/v2 and is not suitable for keys,
// tokens, or anything security-sensitive.
package randx

import (
	"errors"
	"math"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ErrEmptyCharset is returned by StringFrom for an empty charset.
var ErrEmptyCharset = errors.New("randx: empty charset")

// ErrBadRatio is returned by Ratio for a zero denominator or a numerator
// above it.
var ErrBadRatio = errors.New("randx: ratio numerator must be <= denominator, denominator > 0")

// Int returns a uniform random integer in [lo, hi], both inclusive. Bounds
// given in the wrong order are swapped.
func Int[T constraints.Integer](lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	// two's-complement subtraction gives the span even for negative bounds
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return T(rand.Uint64())
	}
	return lo + T(rand.Uint64N(span+1))
}

// Float returns a uniform random float in [lo, hi). Bounds given in the
// wrong order are swapped.
func Float[T constraints.Float](lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + T(rand.Float64())*(hi-lo)
}

// Bool returns true or false with equal probability.
func Bool() bool {
	return rand.Uint64()&1 == 1
}

// Ratio returns true with probability num/den.
func Ratio(num, den uint32) (bool, error) {
	if den == 0 || num > den {
		return false, ErrBadRatio
	}
	return rand.Uint32N(den) < num, nil
}

// String returns a random alphanumeric string of length n.
func String(n int) string {
	s, _ := StringFrom(n, alphanumeric)
	return s
}

// StringFrom returns a random string of length n drawn from charset.
// The charset is interpreted as runes, so multi-byte characters work.
func StringFrom(n int, charset string) (string, error) {
	if charset == "" {
		return "", ErrEmptyCharset
	}
	if n <= 0 {
		return "", nil
	}
	runes := []rune(charset)
	out := make([]rune, n)
	for i := range out {
		out[i] = runes[rand.IntN(len(runes))]
	}
	return string(out), nil
}

// Bytes returns n random bytes.
func Bytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i += 8 {
		v := rand.Uint64()
		for j := 0; j < 8 && i+j < n; j++ {
			out[i+j] = byte(v >> (8 * j))
		}
	}
	return out
}
