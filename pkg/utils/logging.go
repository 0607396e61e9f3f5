/*
 * m3u-tools is a set of utilities to post-process IPTV M3U playlists.
 * Copyright (C) 2025  Lucas Duport
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config holds the logging configuration shared by every command.
var Config = struct {
	DebugLoggingEnabled bool
	LogLevel            logrus.Level
	LogToFile           bool
	LogFilePath         string
	logFile             *os.File
}{
	LogLevel: logrus.InfoLevel,
}

var logger = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// ParseLogLevel maps a user supplied level name to a logrus level.
// An empty name resolves to info.
func ParseLogLevel(name string) (logrus.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return logrus.InfoLevel, nil
	case "debug", "info", "warn", "error":
		return logrus.ParseLevel(name)
	default:
		return logrus.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// InitLogging configures the shared logger. DEBUG_LOGGING=true always wins
// over the requested level, and a non-empty logFile redirects the output.
func InitLogging(level string, logFile string) error {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return err
	}

	Config.DebugLoggingEnabled = os.Getenv("DEBUG_LOGGING") == "true" || lvl == logrus.DebugLevel
	if Config.DebugLoggingEnabled {
		lvl = logrus.DebugLevel
	}
	Config.LogLevel = lvl
	logger.SetLevel(lvl)

	if logFile == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	Close()
	Config.LogToFile = true
	Config.LogFilePath = logFile
	Config.logFile = file
	logger.SetOutput(file)

	DebugLog("Logging initialized - Level: %s, File: %s", lvl, logFile)
	return nil
}

// SetLogOutput redirects log output. A log file passed to InitLogging takes
// precedence afterwards.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Close closes any open log files
func Close() {
	if Config.logFile != nil {
		Config.logFile.Close()
		Config.logFile = nil
		Config.LogToFile = false
		logger.SetOutput(os.Stderr)
	}
}

// InfoLog logs an info message
func InfoLog(format string, v ...interface{}) {
	logWithCaller(logrus.InfoLevel, format, v...)
}

// WarnLog logs a warning message
func WarnLog(format string, v ...interface{}) {
	logWithCaller(logrus.WarnLevel, format, v...)
}

// DebugLog logs a debug message if debug logging is enabled
func DebugLog(format string, v ...interface{}) {
	logWithCaller(logrus.DebugLevel, format, v...)
}

// ErrorLog logs an error message
func ErrorLog(format string, v ...interface{}) {
	logWithCaller(logrus.ErrorLevel, format, v...)
}

// logWithCaller attaches the file:line of the helper's caller.
func logWithCaller(level logrus.Level, format string, v ...interface{}) {
	if !logger.IsLevelEnabled(level) {
		return
	}

	caller := "unknown"
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	logger.WithField("caller", caller).Logf(level, format, v...)
}
