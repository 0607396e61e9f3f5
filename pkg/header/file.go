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

package header

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasduport/m3u-tools/pkg/utils"
)

var (
	errNotRegular  = errors.New("not a regular file")
	errNotReadable = errors.New("not readable")
	errNotWritable = errors.New("output directory is not writable")
)

// ValidateInput checks that path is an existing, readable regular file.
// A missing .m3u/.m3u8 extension only produces a warning.
func ValidateInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input file %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input file %q: %w", path, errNotRegular)
	}
	if !utils.CanRead(path) {
		return fmt.Errorf("input file %q: %w", path, errNotReadable)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".m3u", ".m3u8":
	default:
		utils.WarnLog("Input file %q may not be a standard M3U file", path)
	}

	return nil
}

// ValidateOutputDir checks that the directory receiving path is writable.
func ValidateOutputDir(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if !utils.CanWrite(dir) {
		return fmt.Errorf("%q: %w", dir, errNotWritable)
	}
	return nil
}

// ProcessFile rewrites the directive of input into output. When both name
// the same file the original is replaced atomically.
func ProcessFile(input, output string, opts Options) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return utils.ErrorWithLocation(fmt.Errorf("reading %s: %w", input, err))
	}

	processed := Process(string(data), opts)

	err = utils.WriteFileSafe(input, output, func(w io.Writer) error {
		_, err := io.WriteString(w, processed)
		return err
	})
	if err != nil {
		return utils.ErrorWithLocation(fmt.Errorf("writing %s: %w", output, err))
	}
	return nil
}
