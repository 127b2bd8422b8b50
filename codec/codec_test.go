package codec

import (
	"errors"
	"strings"
	"testing"
)

func mustDecode(t *testing.T, c Codec, s string) string {
	t.Helper()
	out, err := c.Decode(s)
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", s, err)
	}
	return out
}

func mustFormat(t *testing.T, c Codec, s string) string {
	t.Helper()
	out, err := c.Format(s)
	if err != nil {
		t.Fatalf("Format(%q) error: %v", s, err)
	}
	return out
}

func isSyntaxErr(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

func TestNew(t *testing.T) {
	if c := New(2); c != Binary {
		t.Fatalf("New(2) = %+v, want Binary", c)
	}
	if c := New(16); c != Hex {
		t.Fatalf("New(16) = %+v, want Hex", c)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("New(8) did not panic")
		}
	}()
	New(8)
}

func TestBinaryEncodeDecode(t *testing.T) {
	if got := Binary.Encode("H"); got != "01001000" {
		t.Fatalf("Encode(H) = %q, want 01001000", got)
	}
	if got := mustDecode(t, Binary, "01001000"); got != "H" {
		t.Fatalf("Decode(01001000) = %q, want H", got)
	}
	want := "01001000 01100101 01101100 01101100 01101111"
	if got := Binary.Encode("Hello"); got != want {
		t.Fatalf("Encode(Hello) = %q, want %q", got, want)
	}
}

func TestBinaryDecodeIgnoresNoise(t *testing.T) {
	if got := mustDecode(t, Binary, "0100 1000 !@#"); got != "H" {
		t.Fatalf("got %q, want H", got)
	}
}

func TestBinaryDecodeMisaligned(t *testing.T) {
	_, err := Binary.Decode("010010")
	if !isSyntaxErr(err) {
		t.Fatalf("expected SyntaxError for 6 digits, got %v", err)
	}
}

func TestBinaryDecodeInvalidUTF8(t *testing.T) {
	// 0xFF 0xFF is aligned but not valid UTF-8.
	_, err := Binary.Decode("11111111 11111111")
	if !isSyntaxErr(err) {
		t.Fatalf("expected SyntaxError for invalid UTF-8, got %v", err)
	}
	// The byte-level decode itself must succeed.
	b, err := Binary.DecodeBytes("11111111 11111111")
	if err != nil {
		t.Fatalf("DecodeBytes error: %v", err)
	}
	if len(b) != 2 || b[0] != 0xFF || b[1] != 0xFF {
		t.Fatalf("DecodeBytes = %x, want ffff", b)
	}
}

func TestHexEncodeDecode(t *testing.T) {
	if got := Hex.Encode("Hello"); got != "48 65 6C 6C 6F" {
		t.Fatalf("Encode(Hello) = %q, want 48 65 6C 6C 6F", got)
	}
	if got := mustDecode(t, Hex, "48656C6C6F"); got != "Hello" {
		t.Fatalf("Decode = %q, want Hello", got)
	}
	// lowercase digits accepted on input
	if got := mustDecode(t, Hex, "48656c6c6f"); got != "Hello" {
		t.Fatalf("Decode lowercase = %q, want Hello", got)
	}
}

func TestHexDecodeStripsNoise(t *testing.T) {
	if got := mustDecode(t, Hex, "48z65$6C\n6C_6F"); got != "Hello" {
		t.Fatalf("got %q, want Hello", got)
	}
}

func TestEncodeLengthInvariant(t *testing.T) {
	for _, c := range []Codec{Binary, Hex} {
		for n := 0; n <= 5; n++ {
			in := strings.Repeat("a", n)
			got := len(c.Encode(in))
			want := 0
			if n > 0 {
				want = n*c.Width() + (n - 1)
			}
			if got != want {
				t.Fatalf("radix %d: len(Encode(%d bytes)) = %d, want %d", c.Radix(), n, got, want)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"H",
		"Hello",
		"hello, world",
		"multi\nline\ttext",
		"привет", // multi-byte UTF-8
		"日本語",
		"mixed ascii + ünïcödé",
	}
	for _, c := range []Codec{Binary, Hex} {
		for _, text := range texts {
			if got := mustDecode(t, c, c.Encode(text)); got != text {
				t.Fatalf("radix %d: round trip %q -> %q", c.Radix(), text, got)
			}
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{"", "01001000xyz", "48 65 6C", "!@#$", "deadBEEF", "0100\t1000\n"}
	for _, c := range []Codec{Binary, Hex} {
		for _, s := range inputs {
			once := c.Clean(s)
			if twice := c.Clean(once); twice != once {
				t.Fatalf("radix %d: Clean not idempotent on %q: %q != %q", c.Radix(), s, twice, once)
			}
		}
	}
}

func TestCleanKeepsOrderDropsRest(t *testing.T) {
	if got := Binary.Clean("01001000xyz01100101"); got != "0100100001100101" {
		t.Fatalf("Binary.Clean = %q", got)
	}
	if got := Hex.Clean("48z65$6C"); got != "48656C" {
		t.Fatalf("Hex.Clean = %q", got)
	}
	if got := Hex.Clean("ghijk"); got != "" {
		t.Fatalf("Hex.Clean(no digits) = %q, want empty", got)
	}
	if got := Binary.Clean(""); got != "" {
		t.Fatalf("Clean(empty) = %q, want empty", got)
	}
}

func TestCheck(t *testing.T) {
	cases := []struct {
		c    Codec
		in   string
		want bool
	}{
		{Binary, "", false},
		{Binary, "01001000 01100101", true},
		{Binary, "01001000 01100101x", false},
		{Binary, "010010", true}, // alignment not required
		{Binary, " \t\n", true},  // whitespace only is non-empty
		{Hex, "", false},
		{Hex, "48 65 6C", true},
		{Hex, "deadBEEF", true},
		{Hex, "48z65", false},
	}
	for _, tc := range cases {
		if got := tc.c.Check(tc.in); got != tc.want {
			t.Fatalf("radix %d: Check(%q) = %v, want %v", tc.c.Radix(), tc.in, got, tc.want)
		}
	}
}

func TestCheckStrict(t *testing.T) {
	cases := []struct {
		c    Codec
		in   string
		want bool
	}{
		{Binary, "", false},
		{Binary, "0100100001100101", true},
		{Binary, "01001000 01100101", true}, // whitespace stripped first
		{Binary, "010010000110010", false},  // 15 digits
		{Binary, "0100100x01100101", false},
		{Hex, "DEADBEEF", true},
		{Hex, "DEADBEE", false}, // odd length
		{Hex, "DE AD BE EF", true},
		{Hex, " \t", false}, // empty once whitespace is removed
	}
	for _, tc := range cases {
		if got := tc.c.CheckStrict(tc.in); got != tc.want {
			t.Fatalf("radix %d: CheckStrict(%q) = %v, want %v", tc.c.Radix(), tc.in, got, tc.want)
		}
	}
}

func TestStrictImpliesLenient(t *testing.T) {
	inputs := []string{"", "01001000", "0100 1000", "DEADBEEF", "DE AD", "xyz", "010", " "}
	for _, c := range []Codec{Binary, Hex} {
		for _, s := range inputs {
			if c.CheckStrict(s) && !c.Check(s) {
				t.Fatalf("radix %d: CheckStrict(%q) true but Check false", c.Radix(), s)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	dirty := "01001000xyz01100101...01101100   0110110001101111"
	want := "01001000 01100101 01101100 01101100 01101111"
	if got := mustFormat(t, Binary, dirty); got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
	if got := mustFormat(t, Hex, "4865"); got != "48 65" {
		t.Fatalf("Format(4865) = %q, want 48 65", got)
	}

	for _, bad := range []string{"", "0100100", "xyz"} {
		if _, err := Binary.Format(bad); !isSyntaxErr(err) {
			t.Fatalf("Binary.Format(%q): expected SyntaxError, got %v", bad, err)
		}
	}
	if _, err := Hex.Format("48A"); !isSyntaxErr(err) {
		t.Fatalf("Hex.Format(48A): expected SyntaxError")
	}
}

func TestFormatOutputIsStrict(t *testing.T) {
	inputs := []string{"01001000 01100101", "deadbeef", "48656C6C6F", "0100100001100101"}
	for _, c := range []Codec{Binary, Hex} {
		for _, s := range inputs {
			out, err := c.Format(s)
			if err != nil {
				continue // misaligned for this codec
			}
			if !c.CheckStrict(out) {
				t.Fatalf("radix %d: Format(%q) = %q fails CheckStrict", c.Radix(), s, out)
			}
		}
	}
}

func TestDecodeSucceedsIffAligned(t *testing.T) {
	inputs := []string{"", "0", "01", "01001000", "0100 1000", "010010", "xyz",
		"48", "486", "4865", "48 65 6C", "DEADBEE", "DEADBEEF"}
	for _, c := range []Codec{Binary, Hex} {
		for _, s := range inputs {
			cleaned := c.Clean(s)
			wantOK := len(cleaned) > 0 && len(cleaned)%c.Width() == 0
			_, err := c.DecodeBytes(s)
			if gotOK := err == nil; gotOK != wantOK {
				t.Fatalf("radix %d: DecodeBytes(%q) ok=%v, want %v (cleaned=%q)",
					c.Radix(), s, gotOK, wantOK, cleaned)
			}
		}
	}
}

func TestDecodeEmptyRejected(t *testing.T) {
	for _, c := range []Codec{Binary, Hex} {
		for _, s := range []string{"", "   ", "!@#"} {
			if _, err := c.Decode(s); !isSyntaxErr(err) {
				t.Fatalf("radix %d: Decode(%q) expected SyntaxError, got %v", c.Radix(), s, err)
			}
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	for _, c := range []Codec{Binary, Hex} {
		if got := c.Encode(""); got != "" {
			t.Fatalf("radix %d: Encode(empty) = %q", c.Radix(), got)
		}
	}
}

func TestUnicodeWhitespaceTreatedAsSeparator(t *testing.T) {
	// U+00A0 (NBSP) is unicode whitespace, not just ASCII space.
	in := "01001000 01100101"
	if !Binary.Check(in) {
		t.Fatalf("Check should accept unicode whitespace")
	}
	if !Binary.CheckStrict(in) {
		t.Fatalf("CheckStrict should strip unicode whitespace")
	}
	if got := mustDecode(t, Binary, in); got != "He" {
		t.Fatalf("got %q, want He", got)
	}
}
