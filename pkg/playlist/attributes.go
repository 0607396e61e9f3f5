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
	"fmt"
	"regexp"
	"strings"
)

func attributePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`%s="([^"]*)"`, regexp.QuoteMeta(name)))
}

// Attribute returns the quoted value of name="..." in line.
func Attribute(line, name string) (string, bool) {
	matches := attributePattern(name).FindStringSubmatch(line)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}

// HasAttribute reports whether line carries name="...".
func HasAttribute(line, name string) bool {
	_, ok := Attribute(line, name)
	return ok
}

// SetAttribute replaces the quoted value of every name="..." occurrence in
// line with value. The line is returned unchanged when the attribute is absent.
func SetAttribute(line, name, value string) string {
	return attributePattern(name).ReplaceAllLiteralString(line, fmt.Sprintf(`%s="%s"`, name, value))
}

// DisplayName returns the text after the last comma of an info line.
func DisplayName(info string) string {
	idx := strings.LastIndex(info, ",")
	if idx == -1 {
		return ""
	}
	return strings.TrimSpace(info[idx+1:])
}

// SetDisplayName replaces the text after the last comma of info with name,
// or appends ",name" when info has no comma.
func SetDisplayName(info, name string) string {
	if idx := strings.LastIndex(info, ","); idx != -1 {
		return info[:idx+1] + name
	}
	return info + "," + name
}
