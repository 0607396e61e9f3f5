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

// Package sorter reorders the candidate URLs of each playlist channel by
// keyword priority and renames target channels.
package sorter

import (
	"sort"
	"strings"

	"github.com/lucasduport/m3u-tools/pkg/playlist"
)

// Class is the coarse category of a channel line.
type Class int

const (
	// ClassMatched is a URL containing at least one keyword.
	ClassMatched Class = iota
	// ClassUnmatched is a URL containing none of the keywords.
	ClassUnmatched
	// ClassAux is any non URL line (#EXTVLCOPT, #EXTGRP, ...).
	ClassAux
)

func (c Class) String() string {
	switch c {
	case ClassMatched:
		return "matched"
	case ClassUnmatched:
		return "unmatched"
	case ClassAux:
		return "aux"
	default:
		return "unknown"
	}
}

// Scorer ranks channel lines against an ordered, case sensitive keyword list.
//
// In normal mode keyword matches come first in keyword order, then unmatched
// URLs, then auxiliary lines. In reverse mode unmatched URLs come first, then
// matches in keyword order, then auxiliary lines.
type Scorer struct {
	Keywords []string
	Reverse  bool
}

// Classify returns the class of line and, for ClassMatched, the index of the
// first keyword found in it. The index is -1 otherwise.
func (s Scorer) Classify(line string) (Class, int) {
	if !playlist.IsURL(line) {
		return ClassAux, -1
	}
	for i, kw := range s.Keywords {
		if strings.Contains(line, kw) {
			return ClassMatched, i
		}
	}
	return ClassUnmatched, -1
}

// Score maps line onto an integer sort key, lower first.
//
//	normal:  matched index-len(keywords), unmatched 0, aux len(keywords)+1
//	reverse: matched index+1,             unmatched 0, aux len(keywords)+1
func (s Scorer) Score(line string) int {
	class, idx := s.Classify(line)
	switch class {
	case ClassMatched:
		if s.Reverse {
			return idx + 1
		}
		return idx - len(s.Keywords)
	case ClassUnmatched:
		return 0
	default:
		return len(s.Keywords) + 1
	}
}

// Sort returns a copy of lines stably ordered by Score.
func (s Scorer) Sort(lines []string) []string {
	type keyed struct {
		line  string
		score int
	}

	items := make([]keyed, len(lines))
	for i, line := range lines {
		items[i] = keyed{line: line, score: s.Score(line)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score < items[j].score
	})

	sorted := make([]string, len(items))
	for i, it := range items {
		sorted[i] = it.line
	}
	return sorted
}
