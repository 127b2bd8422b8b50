// Package codec converts between UTF-8 text and its digit-string
// representation in a fixed radix (binary or hexadecimal).
//
// A digit string encodes each byte as a fixed-width group of radix digits
// (8 for binary, 2 for hex), most-significant digit first, with optional
// whitespace separators between groups. Decoding is lenient by default:
// anything that is not a valid radix digit is stripped before grouping, and
// only then must the digit count align to whole bytes.
//
// All operations are pure functions of their input and safe for concurrent
// use.
package codec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Codec is a text <-> digit-string converter for one radix.
// The zero value is not usable; use Binary, Hex or New.
type Codec struct {
	radix int
	width int // digits per encoded byte
}

var (
	// Binary encodes each byte as 8 digits over {0,1}.
	Binary = Codec{radix: 2, width: 8}
	// Hex encodes each byte as 2 digits over {0-9,A-F}. Input digit
	// classification is case-insensitive; Encode emits uppercase.
	Hex = Codec{radix: 16, width: 2}
)

// New returns the codec for the given radix. Only 2 and 16 are supported;
// any other radix is a caller bug and panics.
func New(radix int) Codec {
	switch radix {
	case 2:
		return Binary
	case 16:
		return Hex
	default:
		panic(fmt.Sprintf("codec: unsupported radix %d (want 2 or 16)", radix))
	}
}

// Radix returns the numeric base of the codec (2 or 16).
func (c Codec) Radix() int { return c.radix }

// Width returns the number of digits one byte encodes to (8 or 2).
func (c Codec) Width() int { return c.width }

func (c Codec) isDigit(r rune) bool {
	if c.radix == 2 {
		return r == '0' || r == '1'
	}
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Clean returns the maximal subsequence of s consisting only of valid radix
// digits, preserving order. It never fails; input with no valid digits yields
// the empty string.
func (c Codec) Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c.isDigit(r) {
			b.WriteByte(byte(r)) // radix digits are ASCII
		}
	}
	return b.String()
}

// DecodeBytes cleans s and parses the remaining digits into bytes, one byte
// per Width digits, most-significant digit first. It returns a *SyntaxError
// when the cleaned string is empty or its length is not a multiple of Width.
func (c Codec) DecodeBytes(s string) ([]byte, error) {
	cleaned := c.Clean(s)
	if cleaned == "" {
		return nil, &SyntaxError{Reason: "empty digit string"}
	}
	if len(cleaned)%c.width != 0 {
		return nil, &SyntaxError{
			Reason: fmt.Sprintf("digit count %d is not a multiple of %d", len(cleaned), c.width),
		}
	}

	out := make([]byte, 0, len(cleaned)/c.width)
	for i := 0; i < len(cleaned); i += c.width {
		group := cleaned[i : i+c.width]
		v, err := strconv.ParseUint(group, c.radix, 8)
		if err != nil {
			// Clean already filtered to valid digits; kept as a typed
			// error rather than a panic in case the two ever diverge.
			return nil, &ParseError{Group: group, Err: err}
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// Decode converts a digit string to the UTF-8 text it encodes. On top of
// DecodeBytes it rejects byte sequences that are not valid UTF-8 with a
// *SyntaxError.
func (c Codec) Decode(s string) (string, error) {
	b, err := c.DecodeBytes(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &SyntaxError{Reason: "decoded bytes are not valid UTF-8"}
	}
	return string(b), nil
}

// EncodeBytes renders p as a digit string: one fixed-width zero-padded group
// per byte, single space between groups. Empty input yields "".
func (c Codec) EncodeBytes(p []byte) string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(p)*(c.width+1) - 1)
	for i, v := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		g := strconv.FormatUint(uint64(v), c.radix)
		if c.radix == 16 {
			g = strings.ToUpper(g)
		}
		for pad := c.width - len(g); pad > 0; pad-- {
			b.WriteByte('0')
		}
		b.WriteString(g)
	}
	return b.String()
}

// Encode renders the UTF-8 encoding of text as a digit string.
func (c Codec) Encode(text string) string {
	return c.EncodeBytes([]byte(text))
}

// Check reports lenient validity: s is non-empty and every character is
// either whitespace or a valid radix digit. Alignment is not required.
func (c Codec) Check(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) && !c.isDigit(r) {
			return false
		}
	}
	return true
}

// CheckStrict reports strict validity: with all whitespace removed, s is
// non-empty, its length is a multiple of Width, and every remaining
// character is a valid radix digit.
func (c Codec) CheckStrict(s string) bool {
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if !c.isDigit(r) {
			return false
		}
		n++
	}
	return n > 0 && n%c.width == 0
}

// Format cleans s and regroups the digits into space-separated groups of
// Width characters. It returns a *SyntaxError when the cleaned string is
// empty or misaligned. The result always satisfies CheckStrict.
func (c Codec) Format(s string) (string, error) {
	cleaned := c.Clean(s)
	if cleaned == "" || len(cleaned)%c.width != 0 {
		return "", &SyntaxError{
			Reason: fmt.Sprintf("digit string length must be a non-zero multiple of %d", c.width),
		}
	}
	var b strings.Builder
	b.Grow(len(cleaned) + len(cleaned)/c.width - 1)
	for i := 0; i < len(cleaned); i += c.width {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cleaned[i : i+c.width])
	}
	return b.String(), nil
}
