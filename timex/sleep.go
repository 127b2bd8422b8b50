// Package timex parses human-entered sleep durations and sleeps under a
// context.
//
// The format is a number with an optional unit suffix: ns, ms, s, m, h. A
// bare number means seconds, fractions are allowed ("1.5s", "0.25"), case
// and surrounding whitespace are ignored. This is deliberately looser than
// time.ParseDuration: a plain "5" is a valid five-second sleep.
package timex

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNegative is returned for durations below zero.
	ErrNegative = errors.New("timex: negative duration")
	// ErrOutOfRange is returned when the value overflows time.Duration.
	ErrOutOfRange = errors.New("timex: duration out of range")
)

// FormatError reports input that is not a number with an optional known
// unit suffix.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("timex: invalid time format %q", e.Input)
}

// Parse converts a duration string to a time.Duration.
func Parse(s string) (time.Duration, error) {
	in := strings.ToLower(strings.TrimSpace(s))

	i := 0
	if i < len(in) && (in[i] == '-' || in[i] == '+') {
		i++
	}
	for i < len(in) && (in[i] == '.' || (in[i] >= '0' && in[i] <= '9')) {
		i++
	}
	numPart, unit := in[:i], in[i:]

	num, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, &FormatError{Input: s}
	}

	var mult float64
	switch unit {
	case "ns":
		mult = 1e-9
	case "ms":
		mult = 1e-3
	case "s", "":
		mult = 1
	case "m":
		mult = 60
	case "h":
		mult = 3600
	default:
		return 0, &FormatError{Input: s}
	}

	if num < 0 {
		return 0, ErrNegative
	}
	ns := num * mult * 1e9
	if ns > math.MaxInt64 {
		return 0, ErrOutOfRange
	}
	return time.Duration(math.Round(ns)), nil
}

// Sleep pauses for d, returning early with ctx.Err() when the context is
// cancelled. Non-positive durations return immediately.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SleepFor parses s and sleeps for the resulting duration.
func SleepFor(ctx context.Context, s string) error {
	d, err := Parse(s)
	if err != nil {
		return err
	}
	return Sleep(ctx, d)
}
