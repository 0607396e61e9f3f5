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
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestListChannels(t *testing.T) {
	path := writeTemp(t, "list.m3u", `#EXTM3U
#EXTINF:-1 tvg-name="ESPN" group-title="Sports",ESPN HD
http://cdn1.example.com/espn.m3u8
#EXTINF:-1 tvg-name="CNN" group-title="News",CNN
http://cdn1.example.com/cnn.m3u8
`)

	summaries, err := ListChannels(path)
	if err != nil {
		t.Fatalf("ListChannels failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 channels, got %d", len(summaries))
	}

	first := summaries[0]
	if first.Name != "ESPN HD" {
		t.Errorf("Name = %q, want %q", first.Name, "ESPN HD")
	}
	if first.TVGName != "ESPN" {
		t.Errorf("TVGName = %q, want %q", first.TVGName, "ESPN")
	}
	if first.Group != "Sports" {
		t.Errorf("Group = %q, want %q", first.Group, "Sports")
	}
	if first.Length != -1 {
		t.Errorf("Length = %d, want -1", first.Length)
	}
	if first.URI != "http://cdn1.example.com/espn.m3u8" {
		t.Errorf("URI = %q", first.URI)
	}
}

func TestListChannelsMissingFile(t *testing.T) {
	if _, err := ListChannels(filepath.Join(t.TempDir(), "missing.m3u")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestChannelSummaryMatches(t *testing.T) {
	s := ChannelSummary{Name: "ESPN HD", TVGName: "espn.us"}

	tests := []struct {
		name    string
		targets []string
		want    bool
	}{
		{"no filter", nil, true},
		{"name match", []string{"ESPN"}, true},
		{"tvg-name match", []string{"espn.us"}, true},
		{"case sensitive", []string{"espn hd"}, false},
		{"no match", []string{"CNN", "BBC"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Matches(tt.targets); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", tt.targets, got, tt.want)
			}
		})
	}
}
