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

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// legacyFlags maps the two-letter short flags kept for older scripts to
// their long form; pflag only supports single character shorthands.
var legacyFlags = map[string]string{
	"-ch": "--channels",
	"-rn": "--rename",
}

// normalizeLegacyArgs rewrites "-ch x" and "-ch=x" style arguments. Anything
// after a "--" terminator is left alone.
func normalizeLegacyArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}

		name, value, hasValue := arg, "", false
		if idx := strings.Index(arg, "="); idx > 0 {
			name, value, hasValue = arg[:idx], arg[idx+1:], true
		}

		long, ok := legacyFlags[name]
		if !ok {
			out = append(out, arg)
			continue
		}
		if hasValue {
			out = append(out, long+"="+value)
		} else {
			out = append(out, long)
		}
	}
	return out
}

func flagNames(cmd *cobra.Command) []string {
	var names []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		names = append(names, f.Name)
	})
	return names
}
