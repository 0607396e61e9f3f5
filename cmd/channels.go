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
	"fmt"
	"text/tabwriter"

	"github.com/lucasduport/m3u-tools/pkg/config"
	"github.com/lucasduport/m3u-tools/pkg/playlist"
	"github.com/lucasduport/m3u-tools/pkg/utils"
	"github.com/spf13/cobra"
)

func newChannelsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List the channels of a playlist",
		Long: `Channels prints the name, tvg-name and group of every channel so the
values passed to "sort --channels" can be checked beforehand. The playlist
must start with #EXTM3U.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.ChannelsConfig{
				Input:    a.v.GetString("channels.input"),
				Channels: a.list("channels.channels"),
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			summaries, err := playlist.ListChannels(cfg.Input)
			if err != nil {
				return fmt.Errorf("listing %s: %w", cfg.Input, err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTVG-NAME\tGROUP\tURL")
			shown := 0
			for _, s := range summaries {
				if !s.Matches(cfg.Channels) {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, s.TVGName, s.Group, utils.MaskURL(s.URI))
				shown++
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			utils.DebugLog("Listed %d of %d channel(s)", shown, len(summaries))
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Input playlist path (required)")
	cmd.Flags().String("channels", "", "Only list channels whose name contains one of these comma separated values (-ch)")

	a.bindFlags(cmd, "channels")

	return cmd
}
