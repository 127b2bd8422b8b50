// Package typesx has small helpers for type names and integer parity.
package typesx

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/constraints"
)

// qualifierRe matches package qualifiers in reflected type names, including
// full import paths ("encoding/json.RawMessage" -> "RawMessage").
var qualifierRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*[./])+`)

// TypeOf returns the full type name of v, qualifiers included.
func TypeOf(v any) string {
	return fmt.Sprintf("%T", v)
}

// Simplify strips package qualifiers from a type string, inside composite
// and generic types too: "map[string]json.RawMessage" -> "map[string]RawMessage",
// "pkg.Pair[a.X, b.Y]" -> "Pair[X, Y]".
func Simplify(typeStr string) string {
	if !strings.ContainsAny(typeStr, "./") {
		return typeStr
	}
	return qualifierRe.ReplaceAllString(typeStr, "")
}

// SimpleTypeOf is Simplify(TypeOf(v)).
func SimpleTypeOf(v any) string {
	return Simplify(TypeOf(v))
}

// IsEven reports whether v is even.
func IsEven[T constraints.Integer](v T) bool {
	return v%2 == 0
}

// IsOdd reports whether v is odd.
func IsOdd[T constraints.Integer](v T) bool {
	return !IsEven(v)
}
