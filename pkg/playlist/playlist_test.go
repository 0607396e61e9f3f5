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
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const samplePlaylist = `#EXTM3U x-tvg-url="http://epg.example.com/guide.xml"

#EXTINF:-1 tvg-name="ESPN" group-title="Sports",ESPN HD
http://cdn2.example.com/espn.m3u8
#EXTVLCOPT:http-user-agent=VLC

http://cdn1.example.com/espn.m3u8
#EXTINF:-1 tvg-name="CNN",CNN
http://cdn1.example.com/cnn.m3u8
`

func TestParse(t *testing.T) {
	p, err := Parse(strings.NewReader(samplePlaylist))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if p.Header != `#EXTM3U x-tvg-url="http://epg.example.com/guide.xml"` {
		t.Errorf("unexpected header %q", p.Header)
	}
	if len(p.Channels) != 2 {
		t.Fatalf("expected 2 channels, got %d", len(p.Channels))
	}

	first := p.Channels[0]
	if first.Info != `#EXTINF:-1 tvg-name="ESPN" group-title="Sports",ESPN HD` {
		t.Errorf("unexpected info %q", first.Info)
	}
	wantLines := []string{
		"http://cdn2.example.com/espn.m3u8",
		"#EXTVLCOPT:http-user-agent=VLC",
		"http://cdn1.example.com/espn.m3u8",
	}
	if !reflect.DeepEqual(first.Lines, wantLines) {
		t.Errorf("lines = %v, want %v", first.Lines, wantLines)
	}
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantHeader   string
		wantChannels int
		wantLines    [][]string
	}{
		{
			name:         "empty input",
			input:        "",
			wantChannels: 0,
		},
		{
			name:         "no directive line",
			input:        "#EXTINF:-1,A\nhttp://a\n",
			wantChannels: 1,
			wantLines:    [][]string{{"http://a"}},
		},
		{
			name:         "directive after leading blank lines",
			input:        "\n\n  #EXTM3U  \n#EXTINF:-1,A\nhttp://a\n",
			wantHeader:   "#EXTM3U",
			wantChannels: 1,
			wantLines:    [][]string{{"http://a"}},
		},
		{
			name:         "byte order mark before directive",
			input:        "\ufeff#EXTM3U\n#EXTINF:-1,A\nhttp://a\n",
			wantHeader:   "#EXTM3U",
			wantChannels: 1,
			wantLines:    [][]string{{"http://a"}},
		},
		{
			name:         "byte order mark before first channel",
			input:        "\ufeff#EXTINF:-1,A\nhttp://a\n",
			wantChannels: 1,
			wantLines:    [][]string{{"http://a"}},
		},
		{
			name:         "lines before first channel are dropped",
			input:        "#EXTM3U\nhttp://orphan\n#EXTGRP:x\n#EXTINF:-1,A\nhttp://a\n",
			wantHeader:   "#EXTM3U",
			wantChannels: 1,
			wantLines:    [][]string{{"http://a"}},
		},
		{
			name:         "channel without lines",
			input:        "#EXTM3U\n#EXTINF:-1,A\n#EXTINF:-1,B\nhttp://b\n",
			wantHeader:   "#EXTM3U",
			wantChannels: 2,
			wantLines:    [][]string{nil, {"http://b"}},
		},
		{
			name:         "windows line endings",
			input:        "#EXTM3U\r\n#EXTINF:-1,A\r\nhttp://a\r\n",
			wantHeader:   "#EXTM3U",
			wantChannels: 1,
			wantLines:    [][]string{{"http://a"}},
		},
		{
			name:         "line longer than one mebibyte",
			input:        "#EXTM3U\n#EXTINF:-1 tvg-logo=\"" + strings.Repeat("a", 2<<20) + "\",Big\nhttp://x/a\n",
			wantHeader:   "#EXTM3U",
			wantChannels: 1,
			wantLines:    [][]string{{"http://x/a"}},
		},
		{
			name:         "last line without newline",
			input:        "#EXTINF:-1,A\nhttp://a\nhttp://b",
			wantChannels: 1,
			wantLines:    [][]string{{"http://a", "http://b"}},
		},
		{
			name:         "later directive line is an auxiliary line",
			input:        "#EXTINF:-1,A\n#EXTM3U\nhttp://a\n",
			wantChannels: 1,
			wantLines:    [][]string{{"#EXTM3U", "http://a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if p.Header != tt.wantHeader {
				t.Errorf("header = %q, want %q", p.Header, tt.wantHeader)
			}
			if len(p.Channels) != tt.wantChannels {
				t.Fatalf("channels = %d, want %d", len(p.Channels), tt.wantChannels)
			}
			for i, want := range tt.wantLines {
				if !reflect.DeepEqual(p.Channels[i].Lines, want) {
					t.Errorf("channel %d lines = %#v, want %#v", i, p.Channels[i].Lines, want)
				}
			}
		})
	}
}

func TestParseKeepsLongInfoLine(t *testing.T) {
	info := `#EXTINF:-1 tvg-logo="data:image/png;base64,` + strings.Repeat("A", 3<<20) + `",Big`
	p, err := Parse(strings.NewReader("#EXTM3U\n" + info + "\nhttp://x/a\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(p.Channels) != 1 {
		t.Fatalf("expected 1 channel, got %d", len(p.Channels))
	}
	if p.Channels[0].Info != info {
		t.Errorf("info line truncated to %d bytes, want %d", len(p.Channels[0].Info), len(info))
	}
}

func TestParseChannelCountMatchesInfoLines(t *testing.T) {
	inputs := []string{
		samplePlaylist,
		"#EXTM3U\n#EXTINF:-1,A\n#EXTINF:-1,B\n#EXTINF:-1,C\nhttp://c\n",
		"junk\n#EXTINF:-1,A\nhttp://a\nhttp://b\n",
	}

	for _, input := range inputs {
		p, err := Parse(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		want := 0
		for _, line := range strings.Split(input, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), InfoMarker) {
				want++
			}
		}
		if len(p.Channels) != want {
			t.Errorf("got %d channels, want %d for input %q", len(p.Channels), want, input)
		}
	}
}

func TestWriteTo(t *testing.T) {
	p, err := Parse(strings.NewReader(samplePlaylist))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	want := `#EXTM3U x-tvg-url="http://epg.example.com/guide.xml"
#EXTINF:-1 tvg-name="ESPN" group-title="Sports",ESPN HD
http://cdn2.example.com/espn.m3u8
#EXTVLCOPT:http-user-agent=VLC
http://cdn1.example.com/espn.m3u8
#EXTINF:-1 tvg-name="CNN",CNN
http://cdn1.example.com/cnn.m3u8
`
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo returned %d bytes, want %d", n, len(want))
	}
}

func TestWriteToWithoutHeader(t *testing.T) {
	p := &Playlist{Channels: []*Channel{{Info: "#EXTINF:-1,A"}}}

	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if buf.String() != "#EXTINF:-1,A\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestParseFileAndWriteFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.m3u")
	out := filepath.Join(dir, "out.m3u")

	if err := os.WriteFile(in, []byte(samplePlaylist), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(out, []byte("stale content that is longer than nothing"), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := ParseFile(in)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if err := WriteFile(out, p); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	reparsed, err := ParseFile(out)
	if err != nil {
		t.Fatalf("ParseFile(out) failed: %v", err)
	}
	if !reflect.DeepEqual(p, reparsed) {
		t.Errorf("written playlist differs after re-parse:\n%#v\n%#v", p, reparsed)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.m3u"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"http://example.com/a":    true,
		"rtmp://example.com/live": true,
		"#EXTVLCOPT:foo=bar":      false,
		"example.com/no-scheme":   false,
	}
	for line, want := range tests {
		if got := IsURL(line); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", line, got, want)
		}
	}
}
