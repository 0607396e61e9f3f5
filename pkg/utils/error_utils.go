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
)

// ErrorDetailLevel represents the level of error detail to display
type ErrorDetailLevel int

const (
	// ErrorDetailNone prints the bare error message
	ErrorDetailNone ErrorDetailLevel = iota
	// ErrorDetailSimple prefixes the message with file, line and function (default)
	ErrorDetailSimple
	// ErrorDetailFull adds the stack trace
	ErrorDetailFull
)

// getErrorDetailLevel returns the configured error detail level from environment
func getErrorDetailLevel() ErrorDetailLevel {
	switch strings.ToLower(os.Getenv("ERROR_DETAIL_LEVEL")) {
	case "none":
		return ErrorDetailNone
	case "full":
		return ErrorDetailFull
	default:
		return ErrorDetailSimple
	}
}

// formatError decorates err with the location of the frame skip levels above it.
func formatError(err error, skip int) error {
	if err == nil {
		return nil
	}

	level := getErrorDetailLevel()
	if level == ErrorDetailNone {
		return err
	}

	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return err
	}
	fnName := filepath.Base(runtime.FuncForPC(pc).Name())

	if level == ErrorDetailFull {
		buffer := make([]byte, 4096)
		n := runtime.Stack(buffer, false)
		stackLines := strings.Split(string(buffer[:n]), "\n")
		if len(stackLines) > 0 {
			stackLines = stackLines[1:]
		}

		return fmt.Errorf(`
Error Location:
  File: %s
  Line: %d
  Function: %s
Error Details:
  %w
Stack Trace:
%s`, filepath.Base(file), line, fnName, err, strings.Join(stackLines, "\n"))
	}

	return fmt.Errorf("%s:%d [%s]: %w", filepath.Base(file), line, fnName, err)
}

// ErrorWithLocation wraps an error with location information based on detail level.
// The original error stays reachable through errors.Is / errors.As.
func ErrorWithLocation(err error) error {
	return formatError(err, 1)
}

// ReportError writes err to w as "Error: <message>" and logs it. Errors built
// with ErrorWithLocation carry the location selected by ERROR_DETAIL_LEVEL.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	DebugLog("Command failed: %v", err)
}
