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
	"strings"

	"github.com/jamesnetherton/m3u"
)

// ChannelSummary describes one channel of a playlist for listing purposes.
type ChannelSummary struct {
	Name    string
	TVGName string
	Group   string
	Length  int
	URI     string
}

// Matches reports whether the summary name or tvg-name contains one of the
// target substrings. An empty target list matches everything.
func (s ChannelSummary) Matches(targets []string) bool {
	if len(targets) == 0 {
		return true
	}
	for _, t := range targets {
		if strings.Contains(s.Name, t) || strings.Contains(s.TVGName, t) {
			return true
		}
	}
	return false
}

// ListChannels parses path with the m3u library and summarises its tracks.
// The library keeps the last URL of a channel only, which is enough to
// identify it.
func ListChannels(path string) ([]ChannelSummary, error) {
	p, err := m3u.Parse(path)
	if err != nil {
		return nil, err
	}

	summaries := make([]ChannelSummary, 0, len(p.Tracks))
	for _, track := range p.Tracks {
		s := ChannelSummary{
			Name:   track.Name,
			Length: track.Length,
			URI:    track.URI,
		}
		for _, tag := range track.Tags {
			switch tag.Name {
			case "tvg-name":
				s.TVGName = tag.Value
			case "group-title":
				s.Group = tag.Value
			}
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}
