package codec

import "fmt"

// SyntaxError reports a digit string that cannot represent a whole number of
// bytes: it is empty after cleaning, its digit count is not a multiple of the
// codec width, or the decoded bytes are not valid UTF-8.
type SyntaxError struct {
	Reason string
}

func (e *SyntaxError) Error() string {
	return "codec: invalid syntax: " + e.Reason
}

// ParseError reports a digit group that failed radix parsing. Given that
// Clean filters input to valid digits first, this indicates an internal
// inconsistency rather than bad user input, but it is still surfaced as a
// regular error.
type ParseError struct {
	Group string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codec: parse group %q: %v", e.Group, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
