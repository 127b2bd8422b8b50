package sysx

import (
	"os"
	"strings"
)

// FullArgs returns the command line including the program name.
func FullArgs() []string {
	out := make([]string, len(os.Args))
	copy(out, os.Args)
	return out
}

// Args returns the command line without the program name.
func Args() []string {
	if len(os.Args) <= 1 {
		return nil
	}
	out := make([]string, len(os.Args)-1)
	copy(out, os.Args[1:])
	return out
}

// FullArgsString returns the full command line joined by spaces.
func FullArgsString() string {
	return strings.Join(os.Args, " ")
}

// ArgsString returns the arguments (without the program name) joined by spaces.
func ArgsString() string {
	return strings.Join(Args(), " ")
}
