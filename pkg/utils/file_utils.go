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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	uuid "github.com/satori/go.uuid"
)

// TempFilePrefix marks the scratch files created next to a playlist while it
// is being replaced.
const TempFilePrefix = ".tmp_"

// SamePath reports whether a and b resolve to the same absolute path.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// WriteFileSafe writes the output produced by write to outputPath.
//
// When outputPath and inputPath are the same file the data is written to a
// temporary file in the same directory first and moved over the original with
// os.Rename, so a failure never truncates the source. The temporary file is
// removed on every error path. Otherwise outputPath is created or truncated
// directly.
func WriteFileSafe(inputPath, outputPath string, write func(io.Writer) error) error {
	if !SamePath(inputPath, outputPath) {
		return writeFile(outputPath, write)
	}

	dir := filepath.Dir(outputPath)
	tempPath := filepath.Join(dir, TempFilePrefix+uuid.NewV4().String()+".m3u")

	mode := os.FileMode(0644)
	if info, err := os.Stat(outputPath); err == nil {
		mode = info.Mode().Perm()
	}

	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("creating temporary file in %s: %w", dir, err)
	}
	DebugLog("Writing %s through temporary file %s", outputPath, tempPath)

	if err := writeAndClose(f, write); err != nil {
		cleanupTempFile(tempPath)
		return err
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		cleanupTempFile(tempPath)
		return fmt.Errorf("replacing %s: %w", outputPath, err)
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return writeAndClose(f, write)
}

func writeAndClose(f *os.File, write func(io.Writer) error) error {
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", f.Name(), err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", f.Name(), err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing %s: %w", f.Name(), err)
	}
	return f.Close()
}

func cleanupTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		WarnLog("Unable to remove temporary file %s: %v", path, err)
		return
	}
	DebugLog("Removed temporary file %s", path)
}
