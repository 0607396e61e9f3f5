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

// Package header edits the #EXTM3U directive line of playlists and its
// x-tvg-url attribute.
package header

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lucasduport/m3u-tools/pkg/playlist"
)

// TVGURLAttribute is the directive attribute pointing at the EPG.
const TVGURLAttribute = "x-tvg-url"

// Options selects the edits applied to the directive line.
type Options struct {
	// Replace rewrites x-tvg-url only when it exists with a non-empty value.
	Replace *string
	// Force sets x-tvg-url, adding it when missing.
	Force *string
	// Delete drops the directive line.
	Delete bool
}

// Process applies opts to the first directive line of content. Every other
// line, including later #EXTM3U lines, is kept verbatim.
//
// When the result has no directive line, one is synthesised at the top:
// carrying the forced x-tvg-url when Force is set, or a bare #EXTM3U unless
// Delete was requested.
func Process(content string, opts Options) string {
	trailingNewline := strings.HasSuffix(content, "\n")
	body := strings.TrimSuffix(content, "\n")

	var lines []string
	if body != "" || trailingNewline {
		lines = strings.Split(body, "\n")
	}

	out := make([]string, 0, len(lines)+1)
	found := false
	for _, line := range lines {
		if found || !isDirective(line) {
			out = append(out, line)
			continue
		}
		found = true

		if opts.Delete {
			continue
		}
		out = append(out, rewriteDirective(strings.TrimRightFunc(line, unicode.IsSpace), opts)+lineEnding(line))
	}

	if !found || opts.Delete {
		eol := ""
		if len(lines) > 0 {
			eol = lineEnding(lines[0])
		}
		switch {
		case opts.Force != nil:
			out = append([]string{fmt.Sprintf(`%s %s="%s"`, playlist.DirectiveMarker, TVGURLAttribute, *opts.Force) + eol}, out...)
		case !opts.Delete:
			out = append([]string{playlist.DirectiveMarker + eol}, out...)
		}
	}

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	return result
}

// lineEnding returns "\r" for a CRLF terminated line.
func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r") {
		return "\r"
	}
	return ""
}

func isDirective(line string) bool {
	return strings.HasPrefix(strings.TrimPrefix(line, "\ufeff"), playlist.DirectiveMarker)
}

func rewriteDirective(line string, opts Options) string {
	current, present := playlist.Attribute(line, TVGURLAttribute)

	switch {
	case opts.Force != nil:
		if present {
			return playlist.SetAttribute(line, TVGURLAttribute, *opts.Force)
		}
		return fmt.Sprintf(`%s %s="%s"`, line, TVGURLAttribute, *opts.Force)
	case opts.Replace != nil:
		if present && strings.TrimSpace(current) != "" {
			return playlist.SetAttribute(line, TVGURLAttribute, *opts.Replace)
		}
	}

	return line
}
