// Package logger provides leveled logging for the fichas CLI.
// Debug, info and section output is only printed in verbose mode
// (--verbose). Warnings are printed unless quiet mode is set.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	quiet   bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetQuiet suppresses warnings. Verbose output is unaffected.
func SetQuiet(q bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = q
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func printf(prefix, format string, args ...any) {
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		printf("[DEBUG] ", format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		printf("[INFO] ", format, args...)
	}
}

// Warn prints a warning unless quiet mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !quiet {
		printf("[WARN] ", format, args...)
	}
}

// Ficha returns a logger whose messages are prefixed with a ficha code.
func Ficha(code string) Scoped {
	return Scoped{prefix: "[" + code + "] "}
}

// Scoped logs with a fixed prefix after the level tag.
type Scoped struct {
	prefix string
}

// Debug prints a prefixed message if verbose mode is enabled.
func (s Scoped) Debug(format string, args ...any) {
	Debug(s.prefix+format, args...)
}

// Info prints a prefixed message if verbose mode is enabled.
func (s Scoped) Info(format string, args ...any) {
	Info(s.prefix+format, args...)
}

// Warn prints a prefixed warning unless quiet mode is enabled.
func (s Scoped) Warn(format string, args ...any) {
	Warn(s.prefix+format, args...)
}
