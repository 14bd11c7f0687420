// Package logger provides logging for the praise CLI.
//
// There are two outputs. The verbose output (stderr by default) receives
// debug, info and warning lines only when verbose mode is enabled via the
// --verbose flag. The operational sink receives every info, warning and
// error line with a timestamp, regardless of verbosity, so that each run
// leaves a success or failure record behind.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	sink    io.Writer = io.Discard
	now               = time.Now
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

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetSink sets the operational log writer.
// Defaults to io.Discard.
func SetSink(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	sink = w
}

// OpenFileSink routes the operational log to a size-rotated file at path.
// maxSizeMB <= 0 uses a 10MB limit. The returned closer flushes and closes
// the file and resets the sink to io.Discard.
func OpenFileSink(path string, maxSizeMB int) io.Closer {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		MaxAge:     90,
	}
	SetSink(lj)
	return closerFunc(func() error {
		SetSink(nil)
		return lj.Close()
	})
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
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

// Info records an informational message in the operational log
// and prints it if verbose mode is enabled.
func Info(format string, args ...any) {
	write("INFO", false, format, args...)
}

// Warn records a warning in the operational log
// and prints it if verbose mode is enabled.
func Warn(format string, args ...any) {
	write("WARN", false, format, args...)
}

// Error records an error in the operational log and always prints it.
func Error(format string, args ...any) {
	write("ERROR", true, format, args...)
}

func write(level string, always bool, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()

	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(sink, "%s [%s] %s\n", now().UTC().Format(time.RFC3339), level, msg)
	if verbose || always {
		fmt.Fprintf(output, "[%s] %s\n", level, msg)
	}
}
