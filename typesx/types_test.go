package typesx

import (
	"encoding/json"
	"testing"
)

type widget struct{}

func TestTypeOf(t *testing.T) {
	if got := TypeOf(widget{}); got != "typesx.widget" {
		t.Fatalf("TypeOf = %q", got)
	}
	if got := TypeOf(&widget{}); got != "*typesx.widget" {
		t.Fatalf("TypeOf ptr = %q", got)
	}
	if got := TypeOf(42); got != "int" {
		t.Fatalf("TypeOf int = %q", got)
	}
}

func TestSimplify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"int", "int"},
		{"typesx.widget", "widget"},
		{"*typesx.widget", "*widget"},
		{"[]typesx.widget", "[]widget"},
		{"map[string]json.RawMessage", "map[string]RawMessage"},
		{"encoding/json.RawMessage", "RawMessage"},
		{"pkg.Pair[a.X, b.Y]", "Pair[X, Y]"},
		{"map[pkg.Key]*other.Value", "map[Key]*Value"},
	}
	for _, tc := range cases {
		if got := Simplify(tc.in); got != tc.want {
			t.Fatalf("Simplify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSimpleTypeOf(t *testing.T) {
	if got := SimpleTypeOf(json.RawMessage("{}")); got != "RawMessage" {
		t.Fatalf("SimpleTypeOf = %q", got)
	}
	if got := SimpleTypeOf(map[string]widget{}); got != "map[string]widget" {
		t.Fatalf("SimpleTypeOf map = %q", got)
	}
}

func TestParity(t *testing.T) {
	if !IsEven(0) || !IsEven(2) || !IsEven(-4) {
		t.Fatalf("IsEven broken")
	}
	if IsEven(1) || IsEven(-3) {
		t.Fatalf("IsEven accepted odd")
	}
	if !IsOdd(int8(7)) || IsOdd(uint16(8)) {
		t.Fatalf("IsOdd broken")
	}
}
