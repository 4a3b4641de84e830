package core

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	loggerMu        sync.Mutex
	loggerSingleton *Logger
)

type VerboseLevel int

const (
	VerboseOff VerboseLevel = iota
	VerboseInfo
	VerboseDebug
	VerboseTrace
)

func CurrentLogger() *Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if loggerSingleton == nil {
		loggerSingleton = NewLogger(os.Stderr)
	}
	return loggerSingleton
}

type Logger struct {
	mu      sync.RWMutex
	verbose VerboseLevel
	out     *log.Logger
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{
		verbose: VerboseOff,
		out:     log.New(w, "", log.LstdFlags),
	}
}

// SetVerboseLevel overrides the default verbose level
func (l *Logger) SetVerboseLevel(level VerboseLevel) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = level
	return l
}

// Enabled reports if messages at the given level are printed.
func (l *Logger) Enabled(level VerboseLevel) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose >= level
}

func (l *Logger) Fatal(v ...any) {
	l.out.Fatalln(v...)
}
func (l *Logger) Fatalf(format string, v ...any) {
	l.out.Fatalf(format, v...)
}

func (l *Logger) Warn(v ...any) {
	l.out.Println(v...)
}
func (l *Logger) Warnf(format string, v ...any) {
	l.out.Printf(format, v...)
}

func (l *Logger) Info(v ...any) {
	if l.Enabled(VerboseInfo) {
		l.out.Println(v...)
	}
}
func (l *Logger) Infof(format string, v ...any) {
	if l.Enabled(VerboseInfo) {
		l.out.Printf(format, v...)
	}
}

func (l *Logger) Debug(v ...any) {
	if l.Enabled(VerboseDebug) {
		l.out.Println(v...)
	}
}
func (l *Logger) Debugf(format string, v ...any) {
	if l.Enabled(VerboseDebug) {
		l.out.Printf(format, v...)
	}
}

func (l *Logger) Trace(v ...any) {
	if l.Enabled(VerboseTrace) {
		l.out.Println(v...)
	}
}
func (l *Logger) Tracef(format string, v ...any) {
	if l.Enabled(VerboseTrace) {
		l.out.Printf(format, v...)
	}
}
