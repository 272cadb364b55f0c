// Package runlog holds the ordered, append-only trace of a single
// install run. Every run owns exactly one Log; logs are never shared,
// rotated, or deduplicated across runs, which is what makes concurrent
// runs safe without locking.
package runlog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/depot/pkg/logging"
	"github.com/rs/zerolog"
)

// Entry is one appended log line with the time it was recorded.
type Entry struct {
	Time time.Time
	Text string
}

// Options configures a Log.
type Options struct {
	// Mirror receives each line synchronously as it is appended. A nil
	// Mirror disables live output. Write errors are ignored; mirroring
	// is a best-effort diagnostic channel and never fails the run.
	Mirror io.Writer
}

// Log is the ordered trace of one run. Not safe for use from multiple
// goroutines; a run appends from a single flow of control.
type Log struct {
	entries []Entry
	mirror  io.Writer
	logger  zerolog.Logger
}

// New returns an empty Log for a fresh run.
func New(opts Options) *Log {
	return &Log{
		mirror: opts.Mirror,
		logger: logging.GetLogger("runlog"),
	}
}

// Append records one line at the end of the log.
func (l *Log) Append(line string) {
	entry := Entry{Time: time.Now(), Text: line}
	l.entries = append(l.entries, entry)

	l.logger.Debug().Str("line", line).Msg("Run log appended")

	if l.mirror != nil {
		// Mirror output carries the timestamp; the log value itself
		// exposes bare lines.
		fmt.Fprintf(l.mirror, "%s %s\n", entry.Time.Format(time.Kitchen), entry.Text)
	}
}

// Logf formats and appends one line.
func (l *Log) Logf(format string, args ...interface{}) {
	l.Append(fmt.Sprintf(format, args...))
}

// Lines returns the appended line texts in order, as a copy.
func (l *Log) Lines() []string {
	lines := make([]string, len(l.entries))
	for i, entry := range l.entries {
		lines[i] = entry.Text
	}
	return lines
}

// Entries returns the timestamped entries in order, as a copy.
func (l *Log) Entries() []Entry {
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// String joins all lines with newlines.
func (l *Log) String() string {
	return strings.Join(l.Lines(), "\n")
}

// Len returns the number of appended lines.
func (l *Log) Len() int {
	return len(l.entries)
}
