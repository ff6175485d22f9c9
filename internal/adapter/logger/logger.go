package logger

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes structured JSON log lines, one per event.
type Logger interface {
	Info(action, message, requestID string, details map[string]any)
	Debug(action, message, requestID string, details map[string]any)
	Warn(action, message, requestID string, details map[string]any)
	Error(action, message, requestID string, details map[string]any, err error)
}

type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Service   string         `json:"service"`
	Hostname  string         `json:"hostname"`
	RequestID string         `json:"request_id,omitempty"`
	Action    string         `json:"action"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type jsonLogger struct {
	service  string
	hostname string
	out      io.Writer
	mu       sync.Mutex
}

// New returns a logger tagged with the service name, writing to stdout.
func New(service string) Logger {
	return NewWithWriter(service, os.Stdout)
}

// NewWithWriter is New with an explicit sink, for tests.
func NewWithWriter(service string, out io.Writer) Logger {
	hostname, _ := os.Hostname()
	return &jsonLogger{
		service:  service,
		hostname: hostname,
		out:      out,
	}
}

func (l *jsonLogger) Info(action, message, requestID string, details map[string]any) {
	l.log("INFO", action, message, requestID, details, nil)
}

func (l *jsonLogger) Debug(action, message, requestID string, details map[string]any) {
	l.log("DEBUG", action, message, requestID, details, nil)
}

func (l *jsonLogger) Warn(action, message, requestID string, details map[string]any) {
	l.log("WARN", action, message, requestID, details, nil)
}

func (l *jsonLogger) Error(action, message, requestID string, details map[string]any, err error) {
	l.log("ERROR", action, message, requestID, details, err)
}

func (l *jsonLogger) log(level, action, message, requestID string, details map[string]any, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Service:   l.service,
		Hostname:  l.hostname,
		RequestID: requestID,
		Action:    action,
		Message:   message,
		Details:   details,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	json.NewEncoder(l.out).Encode(entry)
}
