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

package sorter

import (
	"fmt"

	"github.com/lucasduport/m3u-tools/pkg/config"
	"github.com/lucasduport/m3u-tools/pkg/playlist"
	"github.com/lucasduport/m3u-tools/pkg/utils"
)

// Run reads cfg.Input, processes every channel and writes cfg.Output.
// Nothing is written when the input cannot be read.
func Run(cfg config.SortConfig) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}

	pl, err := playlist.ParseFile(cfg.Input)
	if err != nil {
		return Stats{}, utils.ErrorWithLocation(fmt.Errorf("reading input: %w", err))
	}
	utils.InfoLog("Parsed %d channel(s) from %s", len(pl.Channels), cfg.Input)

	stats := NewProcessor(Options{
		Keywords: cfg.Keywords,
		Reverse:  cfg.Reverse,
		Targets:  cfg.Channels,
		Rename:   cfg.Rename,
	}).Apply(pl)

	if err := playlist.WriteFile(cfg.Output, pl); err != nil {
		return stats, utils.ErrorWithLocation(fmt.Errorf("writing output: %w", err))
	}
	utils.InfoLog("Wrote %s (%d sorted, %d reordered, %d renamed)",
		cfg.Output, stats.Sorted, stats.Reordered, stats.Renamed)

	return stats, nil
}
