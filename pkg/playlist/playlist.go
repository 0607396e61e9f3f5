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

// Package playlist reads and writes loosely structured M3U playlists.
//
// A playlist is an optional #EXTM3U directive followed by channels. Each
// channel starts at an #EXTINF info line and owns every following non-blank
// line up to the next info line: stream URLs and auxiliary directives such as
// #EXTGRP or #EXTVLCOPT, kept in file order.
package playlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lucasduport/m3u-tools/pkg/utils"
)

const (
	// DirectiveMarker identifies the playlist directive line.
	DirectiveMarker = "#EXTM3U"
	// InfoMarker starts a channel.
	InfoMarker = "#EXTINF"
	// SchemeSeparator is what makes a line a URL.
	SchemeSeparator = "://"

	byteOrderMark = "\ufeff"
)

// Channel is one #EXTINF entry and the lines listed under it.
type Channel struct {
	Info  string
	Lines []string
}

// Playlist is a parsed playlist. Header is empty when the input had no
// directive line.
type Playlist struct {
	Header   string
	Channels []*Channel
}

// HasHeader reports whether the playlist starts with a directive line.
func (p *Playlist) HasHeader() bool {
	return p.Header != ""
}

// IsURL reports whether line carries a scheme separator.
func IsURL(line string) bool {
	return strings.Contains(line, SchemeSeparator)
}

// IsInfo reports whether line introduces a channel.
func IsInfo(line string) bool {
	return strings.HasPrefix(line, InfoMarker)
}

// ParseFile reads and parses the playlist stored at path.
func ParseFile(path string) (*Playlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p, nil
}

// Parse reads a whole playlist from r.
//
// Blank lines are dropped. Lines found before the first #EXTINF have no
// channel to belong to and are discarded as well.
func Parse(r io.Reader) (*Playlist, error) {
	br := bufio.NewReader(r)

	p := &Playlist{}
	var current *Channel
	seenContent := false
	orphans := 0

	for done := false; !done; {
		raw, err := br.ReadString('\n')
		if err == io.EOF {
			done = true
		} else if err != nil {
			return nil, err
		}

		line := strings.TrimSpace(raw)
		if !seenContent {
			line = strings.TrimSpace(strings.TrimPrefix(line, byteOrderMark))
		}
		if line == "" {
			continue
		}

		if !seenContent {
			seenContent = true
			if strings.Contains(line, DirectiveMarker) {
				p.Header = line
				continue
			}
		}

		if IsInfo(line) {
			if current != nil {
				p.Channels = append(p.Channels, current)
			}
			current = &Channel{Info: line}
			continue
		}

		if current == nil {
			orphans++
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	if current != nil {
		p.Channels = append(p.Channels, current)
	}

	if orphans > 0 {
		utils.DebugLog("Dropped %d line(s) found before the first %s", orphans, InfoMarker)
	}

	return p, nil
}
