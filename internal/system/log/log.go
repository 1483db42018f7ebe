/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *Logger
	mu     sync.RWMutex
)

// Logger is a wrapper around the slog logger.
type Logger struct {
	internal *slog.Logger
}

// GetLogger returns the process wide logger. Until Init is called, a logger writing
// errors to stderr is returned so that library code never has to nil check.
func GetLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	if logger == nil {
		return &Logger{internal: slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelError}))}
	}
	return logger
}

// Init initializes the slog logger with the given log level string.
func Init(logLevel string) error {
	return InitWithWriter(logLevel, "text", os.Stdout)
}

// InitWithWriter initializes the logger with an explicit format ("text" or "json") and output.
func InitWithWriter(logLevel, format string, out io.Writer) error {
	level, err := parseLogLevel(logLevel)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	handlerOptions := &slog.HandlerOptions{Level: level}
	var logHandler slog.Handler
	if strings.EqualFold(format, "json") {
		logHandler = slog.NewJSONHandler(out, handlerOptions)
	} else {
		logHandler = slog.NewTextHandler(out, handlerOptions)
	}

	mu.Lock()
	logger = &Logger{
		internal: slog.New(logHandler),
	}
	mu.Unlock()
	return nil
}

// With creates a new logger instance with additional fields.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{
		internal: l.internal.With(convertFields(fields)...),
	}
}

// Info logs an informational message with custom fields.
func (l *Logger) Info(msg string, fields ...Field) {
	l.internal.Info(msg, convertFields(fields)...)
}

// Debug logs a debug message with custom fields.
func (l *Logger) Debug(msg string, fields ...Field) {
	l.internal.Debug(msg, convertFields(fields)...)
}

// Warn logs a warning message with custom fields.
func (l *Logger) Warn(msg string, fields ...Field) {
	l.internal.Warn(msg, convertFields(fields)...)
}

// Error logs an error message with custom fields.
func (l *Logger) Error(msg string, fields ...Field) {
	l.internal.Error(msg, convertFields(fields)...)
}

// Fatal logs a fatal message with custom fields and exits the application.
func (l *Logger) Fatal(msg string, fields ...Field) {
	l.internal.Error(msg, convertFields(fields)...)
	os.Exit(1)
}

func parseLogLevel(logLevel string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(logLevel) == "" {
		return slog.LevelInfo, nil
	}
	var err = level.UnmarshalText([]byte(logLevel))
	if err != nil {
		return slog.LevelError, err
	}
	return level, nil
}

func convertFields(fields []Field) []any {
	attrs := make([]any, len(fields))
	for i, field := range fields {
		attrs[i] = slog.Any(field.Key, field.Value)
	}
	return attrs
}
