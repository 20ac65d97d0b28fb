// Package logger is the diagnostic stream behind the --verbose flag.
// Solace keeps stdout reserved for command output, so every Debug, Info
// and Warn line goes to stderr, and nothing at all is written unless
// verbose mode is on.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

type level string

const (
	levelDebug level = "DEBUG"
	levelInfo  level = "INFO"
	levelWarn  level = "WARN"
)

var (
	verbose atomic.Bool

	// mu guards the writer; emits are serialised through it so lines
	// from concurrent goroutines do not interleave.
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetVerbose enables or disables the diagnostic stream.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// IsVerbose reports whether the diagnostic stream is enabled.
func IsVerbose() bool {
	return verbose.Load()
}

// SetOutput redirects the stream away from stderr. Useful for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Debug logs fine-grained pipeline detail.
func Debug(format string, args ...any) {
	emit(levelDebug, format, args...)
}

// Info logs notable milestones.
func Info(format string, args ...any) {
	emit(levelInfo, format, args...)
}

// Warn logs recoverable problems.
func Warn(format string, args ...any) {
	emit(levelWarn, format, args...)
}

// Section writes a banner that groups the lines following it.
func Section(name string) {
	if !verbose.Load() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "\n=== %s ===\n", name)
}

func emit(lv level, format string, args ...any) {
	if !verbose.Load() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "[%s] %s\n", lv, fmt.Sprintf(format, args...))
}
