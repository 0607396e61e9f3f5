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

//go:build !windows

package utils

import "golang.org/x/sys/unix"

// CanRead reports whether the current user may read path.
func CanRead(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

// CanWrite reports whether the current user may write to path.
func CanWrite(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
