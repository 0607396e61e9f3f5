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

// Package config holds the typed settings of every m3u-tools command.
package config

import (
	"errors"
	"fmt"
	"os"
)

// DefaultSortOutput is used when the sorter is not given an output path.
const DefaultSortOutput = "output.m3u"

var (
	// ErrInputRequired is returned when no input playlist is configured.
	ErrInputRequired = errors.New("input path is required")
	// ErrKeywordsRequired is returned when the keyword list is empty after trimming.
	ErrKeywordsRequired = errors.New("at least one keyword is required")
	// ErrReplaceAndForce is returned when both the replace and the force values are set.
	ErrReplaceAndForce = errors.New("replace (-e) and force (-E) cannot be used together")
	// ErrOutputWithMultipleInputs is returned when -o is combined with several inputs.
	ErrOutputWithMultipleInputs = errors.New("output (-o) accepts a single input file")
	// ErrInputNotFound is returned when an input path does not exist.
	ErrInputNotFound = errors.New("input file does not exist")
)

// SortConfig configures the URL sorter.
type SortConfig struct {
	Input    string
	Output   string
	Keywords []string
	Reverse  bool
	// Channels restricts sorting and renaming to channels whose info line
	// contains one of these substrings. Empty means every channel.
	Channels []string
	Rename   string
}

// Validate checks the sorter configuration and fills in defaults.
func (c *SortConfig) Validate() error {
	if c.Input == "" {
		return ErrInputRequired
	}
	if len(c.Keywords) == 0 {
		return ErrKeywordsRequired
	}
	if c.Output == "" {
		c.Output = DefaultSortOutput
	}
	return nil
}

// HeaderConfig configures the header tool.
type HeaderConfig struct {
	Inputs []string
	Output string
	// Replace rewrites an existing, non-empty x-tvg-url. nil means unset.
	Replace *string
	// Force sets x-tvg-url, adding the attribute or the directive if missing.
	Force          *string
	Clean          bool
	ForceOverwrite bool
	Verbose        bool
}

// Validate rejects conflicting arguments. It is run before any file is touched.
func (c *HeaderConfig) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrInputRequired
	}
	if c.Replace != nil && c.Force != nil {
		return ErrReplaceAndForce
	}
	if c.Output != "" && len(c.Inputs) > 1 {
		return ErrOutputWithMultipleInputs
	}
	for _, in := range c.Inputs {
		if _, err := os.Stat(in); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", ErrInputNotFound, in)
			}
			return fmt.Errorf("checking %s: %w", in, err)
		}
	}
	return nil
}

// InPlace reports whether every input is rewritten onto itself.
func (c *HeaderConfig) InPlace() bool {
	return c.Output == ""
}

// ChannelsConfig configures the channel listing.
type ChannelsConfig struct {
	Input    string
	Channels []string
}

// Validate checks the listing configuration.
func (c *ChannelsConfig) Validate() error {
	if c.Input == "" {
		return ErrInputRequired
	}
	return nil
}
