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

	"github.com/lucasduport/m3u-tools/pkg/config"
	"github.com/lucasduport/m3u-tools/pkg/sorter"
	"github.com/spf13/cobra"
)

func newSortCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort each channel's URLs by keyword priority and rename target channels",
		Long: `Sort reorders the URLs listed under every #EXTINF entry.

URLs containing a keyword move to the front in keyword order; URLs matching
no keyword follow, then auxiliary lines such as #EXTVLCOPT. With --reverse the
unmatched URLs come first and keyword matches move after them. Keywords are
case sensitive.

With --channels only the channels whose #EXTINF line contains one of the given
substrings are sorted (and renamed with --rename). The legacy -ch and -rn
shorthands are accepted.`,
		Example: `  m3u-tools sort -i in.m3u -o out.m3u -k "cdn1,cdn2"
  m3u-tools sort -i in.m3u -k "backup" -r
  m3u-tools sort -i in.m3u -k "hd" -ch "ESPN,Sky" -rn "Sports"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.SortConfig{
				Input:    a.v.GetString("sort.input"),
				Output:   a.v.GetString("sort.output"),
				Keywords: a.list("sort.keywords"),
				Reverse:  a.v.GetBool("sort.reverse"),
				Channels: a.list("sort.channels"),
				Rename:   a.v.GetString("sort.rename"),
			}

			stats, err := sorter.Run(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Done! Output written to: %s\n", cfg.Output)
			fmt.Fprintf(out, "Channels: %d, sorted: %d, reordered: %d, renamed: %d\n",
				stats.Channels, stats.Sorted, stats.Reordered, stats.Renamed)
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Input playlist path (required)")
	cmd.Flags().StringP("output", "o", config.DefaultSortOutput, "Output playlist path")
	cmd.Flags().StringP("keywords", "k", "", "Comma separated URL keywords, highest priority first (required, case sensitive)")
	cmd.Flags().BoolP("reverse", "r", false, "Reverse mode: keyword matches go after unmatched URLs")
	cmd.Flags().String("channels", "", "Comma separated target channel filter (-ch)")
	cmd.Flags().String("rename", "", "New display name and tvg-name for target channels (-rn)")

	a.bindFlags(cmd, "sort")

	return cmd
}
