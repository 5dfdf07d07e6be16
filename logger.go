package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Log is the global structured logger instance. It discards until InitLogger runs.
var Log = slog.New(slog.NewTextHandler(io.Discard, nil))

// logLevelVar allows changing the log level at runtime.
var logLevelVar slog.LevelVar

// InitLogger initializes the global structured logger.
// level: "error" (default), "info", or "debug".
// Returns the log file handle (caller should defer Close) and any error.
func InitLogger(level string) (*os.File, error) {
	setLogLevelVar(level)

	logDir := LogDir()
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}
	logFile := filepath.Join(logDir, "runner_"+time.Now().Format("20060102_150405")+".log")

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	Log = newLogger(f)
	return f, nil
}

// TeeLogToStderr additionally writes log records to os.Stderr. Called once a
// console is reachable so interactive debugging sees diagnostics.
func TeeLogToStderr(f *os.File) {
	if f == nil {
		Log = newLogger(os.Stderr)
		return
	}
	Log = newLogger(io.MultiWriter(f, os.Stderr))
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &logLevelVar}))
}

// LogDir returns the path to the log directory.
func LogDir() string {
	return DataPath("logs")
}

func setLogLevelVar(level string) {
	switch strings.ToLower(level) {
	case "debug":
		logLevelVar.Set(slog.LevelDebug)
	case "info":
		logLevelVar.Set(slog.LevelInfo)
	default:
		logLevelVar.Set(slog.LevelError)
	}
}
