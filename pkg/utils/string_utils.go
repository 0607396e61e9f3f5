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
	"net/url"
	"strings"
)

// SplitList splits a comma separated flag value, trimming every entry and
// dropping empty ones. Order is preserved.
func SplitList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// MaskString masks sensitive parts of strings for logging.
func MaskString(s string) string {
	if len(s) <= 8 {
		if len(s) == 0 {
			return "[empty]"
		}
		return s[:1] + "******"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// MaskURL hides provider credentials before a stream URL is logged: the
// userinfo, the username/password query values and the two path segments of
// Xtream style URLs (http://host/live/user/pass/id).
func MaskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	if u.User != nil {
		u.User = url.User(MaskString(u.User.Username()))
	}

	q := u.Query()
	masked := false
	for _, key := range []string{"username", "password"} {
		if v := q.Get(key); v != "" {
			q.Set(key, MaskString(v))
			masked = true
		}
	}
	if masked {
		u.RawQuery = q.Encode()
	}

	parts := strings.Split(u.Path, "/")
	if len(parts) >= 5 {
		parts[2] = MaskString(parts[2])
		parts[3] = MaskString(parts[3])
		u.Path = strings.Join(parts, "/")
		u.RawPath = ""
	}

	return u.String()
}
