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
	"strings"

	"github.com/lucasduport/m3u-tools/pkg/playlist"
	"github.com/lucasduport/m3u-tools/pkg/utils"
)

// Options configures a Processor.
type Options struct {
	Keywords []string
	Reverse  bool
	// Targets limits renaming and sorting to channels whose info line
	// contains one of these substrings. Empty means every channel.
	Targets []string
	// Rename is the new display name of target channels, if any.
	Rename string
}

// Stats counts what a Processor did to a playlist.
type Stats struct {
	Channels  int
	Targets   int
	Renamed   int
	Sorted    int
	Reordered int
}

// Processor applies renaming and URL sorting to playlist channels.
type Processor struct {
	scorer  Scorer
	targets []string
	rename  string
}

// NewProcessor creates a processor for opts.
func NewProcessor(opts Options) *Processor {
	return &Processor{
		scorer:  Scorer{Keywords: opts.Keywords, Reverse: opts.Reverse},
		targets: opts.Targets,
		rename:  opts.Rename,
	}
}

// Filtered reports whether a target filter is configured.
func (p *Processor) Filtered() bool {
	return len(p.targets) > 0
}

// IsTarget reports whether info is eligible for renaming. Without a filter
// every channel is a target.
func (p *Processor) IsTarget(info string) bool {
	if !p.Filtered() {
		return true
	}
	for _, t := range p.targets {
		if strings.Contains(info, t) {
			return true
		}
	}
	return false
}

// RenameInfo rewrites the tvg-name attribute (when present) and the trailing
// display name of an info line.
func RenameInfo(info, name string) string {
	if playlist.HasAttribute(info, "tvg-name") {
		info = playlist.SetAttribute(info, "tvg-name", name)
	}
	return playlist.SetDisplayName(info, name)
}

// Process renames and sorts ch in place. It reports whether the channel was
// a target, was renamed and was sorted.
func (p *Processor) Process(ch *playlist.Channel) (target, renamed, sorted bool) {
	target = p.IsTarget(ch.Info)
	shouldSort := true
	if p.Filtered() {
		shouldSort = target
	}

	if target && p.rename != "" {
		ch.Info = RenameInfo(ch.Info, p.rename)
		renamed = true
	}

	if shouldSort && len(ch.Lines) > 0 {
		ch.Lines = p.scorer.Sort(ch.Lines)
		sorted = true
	}

	return target, renamed, sorted
}

// Apply processes every channel of pl.
func (p *Processor) Apply(pl *playlist.Playlist) Stats {
	if p.rename != "" && !p.Filtered() {
		utils.WarnLog("No channel filter given: every channel will be renamed to %q", p.rename)
	}

	stats := Stats{Channels: len(pl.Channels)}
	for _, ch := range pl.Channels {
		before := append([]string(nil), ch.Lines...)

		target, renamed, sorted := p.Process(ch)
		if target {
			stats.Targets++
		}
		if renamed {
			stats.Renamed++
		}
		if !sorted {
			continue
		}
		stats.Sorted++
		if !equalLines(before, ch.Lines) {
			stats.Reordered++
			if len(ch.Lines) > 0 {
				class, _ := p.scorer.Classify(ch.Lines[0])
				utils.DebugLog("Reordered %s, first candidate now %s (%s)",
					playlist.DisplayName(ch.Info), utils.MaskURL(ch.Lines[0]), class)
			}
		}
	}

	return stats
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
