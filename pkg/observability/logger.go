// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package observability provides structured logging.
package observability

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Logger is the structured logger interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// Options configures a logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	Output io.Writer
}

// logger is the slog backed implementation.
type logger struct {
	sl *slog.Logger
}

var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(holder{NewLogger("info")})
}

// holder keeps atomic.Value storing a single concrete type.
type holder struct{ Logger }

// NewLogger creates a text logger on stderr at the given level.
func NewLogger(level string) Logger {
	l, _ := New(Options{Level: level})
	return l
}

// New creates a logger from options. An unknown level falls back to info
// and is reported as an error alongside the usable logger.
func New(opts Options) (Logger, error) {
	lvl, err := ParseLevel(opts.Level)

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, handlerOpts)
	default:
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	return &logger{sl: slog.New(handler)}, err
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// Default returns the process-wide logger.
func Default() Logger {
	return defaultLogger.Load().(holder).Logger
}

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(holder{l})
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &logger{sl: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *logger) Debug(msg string, fields ...Field) {
	l.log(slog.LevelDebug, msg, fields)
}

func (l *logger) Info(msg string, fields ...Field) {
	l.log(slog.LevelInfo, msg, fields)
}

func (l *logger) Warn(msg string, fields ...Field) {
	l.log(slog.LevelWarn, msg, fields)
}

func (l *logger) Error(msg string, fields ...Field) {
	l.log(slog.LevelError, msg, fields)
}

func (l *logger) With(fields ...Field) Logger {
	return &logger{sl: l.sl.With(toArgs(fields)...)}
}

func (l *logger) log(level slog.Level, msg string, fields []Field) {
	l.sl.Log(context.Background(), level, msg, toArgs(fields)...)
}

func toArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return args
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
