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
	"github.com/lucasduport/m3u-tools/pkg/header"
	"github.com/spf13/cobra"
)

func newHeaderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header -i FILE [FILE...]",
		Short: "Edit the #EXTM3U line and its x-tvg-url attribute",
		Long: `Header rewrites the #EXTM3U directive of one or more playlists.

Without --output every input is modified in place; the new content is written
to a temporary file next to it and moved over the original, so a failed write
never truncates the source. With --output exactly one input is accepted.`,
		Example: `  # modify several files in place
  m3u-tools header -i file1.m3u file2.m3u -e "http://example.com/epg.xml"

  # single file to a new file
  m3u-tools header -i input.m3u -o output.m3u -E "http://new-epg.com/epg.xml"

  # delete then re-add the directive with a forced x-tvg-url
  m3u-tools header -i playlist.m3u -E "http://epg.com/epg.xml" -c`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := cmd.Flags().GetStringArray("input")
			if err != nil {
				return err
			}

			cfg := config.HeaderConfig{
				Inputs:         append(inputs, args...),
				Output:         a.v.GetString("header.output"),
				Replace:        a.optional("header.replace"),
				Force:          a.optional("header.force"),
				Clean:          a.v.GetBool("header.clean"),
				ForceOverwrite: a.v.GetBool("header.force-overwrite"),
				Verbose:        a.v.GetBool("header.verbose"),
			}

			runner := header.NewRunner(cmd.OutOrStdout())
			res, err := runner.Run(cfg)
			if err != nil {
				return err
			}
			runner.PrintSummary(cfg, res)

			if res.Failed > 0 {
				return fmt.Errorf("%d file(s) failed", res.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayP("input", "i", nil, "Input playlist path(s); extra arguments are inputs too")
	cmd.Flags().StringP("output", "o", "", "Output path (only with a single input)")
	cmd.Flags().StringP("replace", "e", "", "Replace an existing non-empty x-tvg-url with this value")
	cmd.Flags().StringP("force", "E", "", "Set x-tvg-url to this value, adding it if missing")
	cmd.Flags().BoolP("clean", "c", false, "Delete the #EXTM3U line")
	cmd.Flags().Bool("force-overwrite", false, "Overwrite an existing output file different from the input")
	cmd.Flags().BoolP("verbose", "v", false, "Print per-file progress and an operation summary")

	a.bindFlags(cmd, "header")

	return cmd
}
