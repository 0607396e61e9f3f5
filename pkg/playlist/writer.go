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

package playlist

import (
	"bufio"
	"io"
	"os"
)

// WriteTo serialises the playlist, one line per entry, each terminated by
// "\n". It implements io.WriterTo.
func (p *Playlist) WriteTo(w io.Writer) (int64, error) {
	var total int64
	writeLine := func(line string) error {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		return err
	}

	if p.HasHeader() {
		if err := writeLine(p.Header); err != nil {
			return total, err
		}
	}

	for _, ch := range p.Channels {
		if err := writeLine(ch.Info); err != nil {
			return total, err
		}
		for _, line := range ch.Lines {
			if err := writeLine(line); err != nil {
				return total, err
			}
		}
	}

	return total, nil
}

// WriteFile creates or truncates path and writes the playlist into it.
// A failure part way through may leave a partially written file.
func WriteFile(path string, p *Playlist) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if _, err := p.WriteTo(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
