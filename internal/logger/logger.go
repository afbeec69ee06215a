package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger provides component-tagged structured logging
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

// ParseLevel maps a config string to a LogLevel, defaulting to InfoLevel.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds the process logger. Console output goes to stderr so the
// toolkit's own diagnostics and ours interleave on the same stream.
func New(level LogLevel, useJSON bool) *ZerologAdapter {
	if useJSON {
		return NewZerolog(os.Stderr, level.zerolog())
	}
	return NewConsoleLogger(os.Stderr, level.zerolog())
}

// Nop discards everything.
type Nop struct{}

func (Nop) Info(component string, message string, fields map[string]interface{})    {}
func (Nop) Error(component string, err error, fields map[string]interface{})        {}
func (Nop) Warning(component string, message string, fields map[string]interface{}) {}
func (Nop) Debug(component string, message string, fields map[string]interface{})   {}

// Entry is a single captured log call.
type Entry struct {
	Level     LogLevel
	Component string
	Message   string
	Err       error
	Fields    map[string]interface{}
}

// Recorder keeps every log call in memory. Tests use it to assert on
// diagnostics without parsing output.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *Recorder) Info(component string, message string, fields map[string]interface{}) {
	r.record(Entry{Level: InfoLevel, Component: component, Message: message, Fields: fields})
}

func (r *Recorder) Error(component string, err error, fields map[string]interface{}) {
	r.record(Entry{Level: ErrorLevel, Component: component, Message: "operation failed", Err: err, Fields: fields})
}

func (r *Recorder) Warning(component string, message string, fields map[string]interface{}) {
	r.record(Entry{Level: WarnLevel, Component: component, Message: message, Fields: fields})
}

func (r *Recorder) Debug(component string, message string, fields map[string]interface{}) {
	r.record(Entry{Level: DebugLevel, Component: component, Message: message, Fields: fields})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns how many entries were logged at level.
func (r *Recorder) Count(level LogLevel) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}
