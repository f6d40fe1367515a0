package testabilities

import (
	"fmt"
	"strings"
	"sync"
)

// LoggerSpy records every formatted log line together with its level.
type LoggerSpy struct {
	mu    sync.Mutex
	lines []string
}

func (l *LoggerSpy) record(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}

func (l *LoggerSpy) Debugf(format string, args ...any) { l.record("DEBUG", format, args...) }
func (l *LoggerSpy) Infof(format string, args ...any)  { l.record("INFO", format, args...) }
func (l *LoggerSpy) Warnf(format string, args ...any)  { l.record("WARN", format, args...) }
func (l *LoggerSpy) Errorf(format string, args ...any) { l.record("ERROR", format, args...) }

// Lines returns the recorded lines prefixed with their level, e.g. "WARN Missing input ...".
func (l *LoggerSpy) Lines(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []string
	for _, line := range l.lines {
		if strings.HasPrefix(line, level+" ") {
			out = append(out, line)
		}
	}
	return out
}

func (l *LoggerSpy) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}
