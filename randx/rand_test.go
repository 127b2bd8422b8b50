package randx

import (
	"errors"
	"strings"
	"testing"
)

func TestIntWithinRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if n := Int(5, 15); n < 5 || n > 15 {
			t.Fatalf("Int(5,15) = %d out of range", n)
		}
	}
}

func TestIntSwapsBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if n := Int(15, 5); n < 5 || n > 15 {
			t.Fatalf("Int(15,5) = %d out of range", n)
		}
	}
}

func TestIntNegativeRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if n := Int(-10, -2); n < -10 || n > -2 {
			t.Fatalf("Int(-10,-2) = %d out of range", n)
		}
	}
}

func TestIntDegenerateRange(t *testing.T) {
	if n := Int(7, 7); n != 7 {
		t.Fatalf("Int(7,7) = %d", n)
	}
}

func TestFloatWithinRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if f := Float(1.0, 2.0); f < 1.0 || f >= 2.0 {
			t.Fatalf("Float(1,2) = %v out of range", f)
		}
	}
}

func TestRatio(t *testing.T) {
	if _, err := Ratio(1, 0); !errors.Is(err, ErrBadRatio) {
		t.Fatalf("expected ErrBadRatio for zero denominator")
	}
	if _, err := Ratio(3, 2); !errors.Is(err, ErrBadRatio) {
		t.Fatalf("expected ErrBadRatio for num > den")
	}
	always, err := Ratio(2, 2)
	if err != nil || !always {
		t.Fatalf("Ratio(2,2) = %v, %v", always, err)
	}
	never, err := Ratio(0, 2)
	if err != nil || never {
		t.Fatalf("Ratio(0,2) = %v, %v", never, err)
	}
}

func TestString(t *testing.T) {
	s := String(32)
	if len(s) != 32 {
		t.Fatalf("len = %d", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(alphanumeric, r) {
			t.Fatalf("unexpected rune %q", r)
		}
	}
}

func TestStringFrom(t *testing.T) {
	s, err := StringFrom(16, "ab")
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 16 {
		t.Fatalf("len = %d", len(s))
	}
	for _, r := range s {
		if r != 'a' && r != 'b' {
			t.Fatalf("unexpected rune %q", r)
		}
	}

	if _, err := StringFrom(5, ""); !errors.Is(err, ErrEmptyCharset) {
		t.Fatalf("expected ErrEmptyCharset")
	}
	if s, err := StringFrom(0, "ab"); err != nil || s != "" {
		t.Fatalf("StringFrom(0) = %q, %v", s, err)
	}
}

func TestStringFromMultibyteCharset(t *testing.T) {
	s, err := StringFrom(4, "絵文")
	if err != nil {
		t.Fatal(err)
	}
	if got := len([]rune(s)); got != 4 {
		t.Fatalf("rune len = %d", got)
	}
}

func TestBytes(t *testing.T) {
	b := Bytes(33)
	if len(b) != 33 {
		t.Fatalf("len = %d", len(b))
	}
	if Bytes(0) != nil {
		t.Fatalf("Bytes(0) should be nil")
	}
	// 33 random bytes all zero is a broken generator, not bad luck
	allZero := true
	for _, v := range b {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatalf("Bytes returned all zeros")
	}
}
