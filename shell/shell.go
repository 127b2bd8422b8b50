// Package shell executes shell command lines with captured output.
//
// Commands are parsed and interpreted by mvdan.cc/sh, so POSIX shell syntax
// (quoting, pipes, variable expansion) works the same on every platform
// without spawning /bin/sh. Syntax errors are surfaced before anything runs.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ErrEmptyCommand is returned when the command line is empty or blank.
var ErrEmptyCommand = errors.New("shell: empty command line")

// Output holds the captured result of a command.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Text returns stdout when the command succeeded and stderr otherwise.
func (o *Output) Text() string {
	if o.ExitCode == 0 {
		return o.Stdout
	}
	return o.Stderr
}

type options struct {
	dir    string
	env    map[string]string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option tunes a single Run invocation.
type Option func(*options)

// WithDir sets the working directory for the command.
func WithDir(dir string) Option { return func(o *options) { o.dir = dir } }

// WithEnv overlays env on top of the process environment for the command.
func WithEnv(env map[string]string) Option { return func(o *options) { o.env = env } }

// WithStdin supplies the command's standard input.
func WithStdin(r io.Reader) Option { return func(o *options) { o.stdin = r } }

// WithStdout mirrors the command's stdout to w in addition to capturing it.
func WithStdout(w io.Writer) Option { return func(o *options) { o.stdout = w } }

// WithStderr mirrors the command's stderr to w in addition to capturing it.
func WithStderr(w io.Writer) Option { return func(o *options) { o.stderr = w } }

// Run parses and executes commandLine, capturing stdout and stderr. A
// non-zero exit status is not an error: it is reported via Output.ExitCode.
// Run returns an error for blank input, shell syntax errors, option/runner
// setup failures, and context cancellation.
func Run(ctx context.Context, commandLine string, opts ...Option) (*Output, error) {
	trimmed := strings.TrimSpace(commandLine)
	if trimmed == "" {
		return nil, ErrEmptyCommand
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(trimmed), "")
	if err != nil {
		return nil, fmt.Errorf("shell: parse command: %w", err)
	}

	var stdout, stderr bytes.Buffer
	outW := io.Writer(&stdout)
	if o.stdout != nil {
		outW = io.MultiWriter(&stdout, o.stdout)
	}
	errW := io.Writer(&stderr)
	if o.stderr != nil {
		errW = io.MultiWriter(&stderr, o.stderr)
	}

	environ := os.Environ()
	for k, v := range o.env {
		environ = append(environ, k+"="+v) // later entries win in ListEnviron
	}

	runner, err := interp.New(
		interp.Dir(o.dir),
		interp.Env(expand.ListEnviron(environ...)),
		interp.StdIO(o.stdin, outW, errW),
	)
	if err != nil {
		return nil, fmt.Errorf("shell: setup runner: %w", err)
	}

	runErr := runner.Run(ctx, prog)
	out := &Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if runErr != nil {
		var status interp.ExitStatus
		if errors.As(runErr, &status) {
			out.ExitCode = int(status)
			return out, nil
		}
		return out, runErr
	}
	return out, nil
}
