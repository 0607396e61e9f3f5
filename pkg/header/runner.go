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

package header

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lucasduport/m3u-tools/pkg/config"
	"github.com/lucasduport/m3u-tools/pkg/utils"
)

// ErrOutputExists is returned in single output mode when the destination
// already exists, differs from the input and overwriting was not allowed.
var ErrOutputExists = errors.New("output file already exists (use --force-overwrite)")

// Result counts the outcome of a run.
type Result struct {
	Succeeded int
	Failed    int
	Skipped   int
}

// Runner processes the files described by a HeaderConfig and reports
// progress to Out.
type Runner struct {
	Out io.Writer
}

// NewRunner creates a runner printing to out.
func NewRunner(out io.Writer) *Runner {
	return &Runner{Out: out}
}

// Run validates cfg and processes every input. The returned error is set for
// configuration problems only; per-file failures are counted in Result.
func (r *Runner) Run(cfg config.HeaderConfig) (Result, error) {
	var res Result
	if err := cfg.Validate(); err != nil {
		return res, err
	}

	opts := Options{Replace: cfg.Replace, Force: cfg.Force, Delete: cfg.Clean}

	if !cfg.InPlace() {
		input, output := cfg.Inputs[0], cfg.Output
		if err := ValidateInput(input); err != nil {
			return res, err
		}
		if err := ValidateOutputDir(output); err != nil {
			return res, err
		}
		if _, err := os.Stat(output); err == nil && !utils.SamePath(input, output) && !cfg.ForceOverwrite {
			return res, fmt.Errorf("%w: %s", ErrOutputExists, output)
		}

		r.verbosef(cfg, "Processing %s -> %s\n", input, output)
		r.processOne(cfg, &res, input, output, opts)
		return res, nil
	}

	for _, input := range cfg.Inputs {
		if err := ValidateInput(input); err != nil {
			utils.WarnLog("Skipping %s: %v", input, err)
			res.Skipped++
			continue
		}

		r.verbosef(cfg, "Processing %s\n", input)
		r.processOne(cfg, &res, input, input, opts)
	}

	return res, nil
}

func (r *Runner) processOne(cfg config.HeaderConfig, res *Result, input, output string, opts Options) {
	if err := ProcessFile(input, output, opts); err != nil {
		utils.ErrorLog("Failed to process %s: %v", input, err)
		res.Failed++
		r.verbosef(cfg, "  failed: %v\n", err)
		return
	}
	res.Succeeded++
	r.verbosef(cfg, "  ok\n")
}

func (r *Runner) verbosef(cfg config.HeaderConfig, format string, args ...interface{}) {
	if cfg.Verbose && r.Out != nil {
		fmt.Fprintf(r.Out, format, args...)
	}
}

// PrintSummary writes the final counts and, in verbose mode, the operations
// that were requested.
func (r *Runner) PrintSummary(cfg config.HeaderConfig, res Result) {
	if r.Out == nil {
		return
	}

	fmt.Fprintf(r.Out, "\nDone!\nSucceeded: %d file(s)\nFailed: %d file(s)\n", res.Succeeded, res.Failed)
	if res.Skipped > 0 {
		fmt.Fprintf(r.Out, "Skipped: %d file(s)\n", res.Skipped)
	}

	if !cfg.Verbose {
		return
	}

	fmt.Fprintln(r.Out, "\nOperations:")
	if cfg.Replace != nil {
		fmt.Fprintf(r.Out, "  - replace non-empty x-tvg-url: %s\n", *cfg.Replace)
	}
	if cfg.Force != nil {
		fmt.Fprintf(r.Out, "  - force x-tvg-url: %s\n", *cfg.Force)
	}
	fmt.Fprintf(r.Out, "  - delete #EXTM3U line: %t\n", cfg.Clean)
	if cfg.InPlace() {
		fmt.Fprintln(r.Out, "  - mode: in place")
	} else {
		fmt.Fprintln(r.Out, "  - mode: single output")
	}
}
