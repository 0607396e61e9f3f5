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
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/lucasduport/m3u-tools/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configName = ".m3u-tools"

// app carries the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
}

// newRootCmd builds the command tree with a fresh viper instance.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "m3u-tools",
		Short: "Post-processing utilities for IPTV M3U playlists",
		Long: `m3u-tools rewrites generated M3U playlists in a deterministic,
scriptable way.

It supports:
- Sorting the candidate URLs of each channel by keyword priority
- Renaming target channels (display name and tvg-name)
- Editing the #EXTM3U directive and its x-tvg-url attribute
- Listing channels to pick sort/rename targets`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			utils.SetLogOutput(cmd.ErrOrStderr())
			a.initConfig()
			return utils.InitLogging(a.v.GetString("log-level"), a.v.GetString("log-file"))
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default is $HOME/.m3u-tools.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")

	if err := a.v.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		utils.ErrorLog("Error binding persistent flags: %v", err)
	}

	rootCmd.AddCommand(
		newSortCmd(a),
		newHeaderCmd(a),
		newChannelsCmd(a),
	)

	return rootCmd
}

// Execute runs the root command with os.Args and exits non-zero on error.
func Execute() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeLegacyArgs(os.Args[1:]))

	err := rootCmd.Execute()
	utils.Close()
	if err != nil {
		utils.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set
func (a *app) initConfig() {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := homedir.Dir(); err == nil {
			a.v.AddConfigPath(home)
		} else {
			utils.WarnLog("Unable to locate home directory: %v", err)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName(configName)
	}

	// M3U_TOOLS_SORT_KEYWORDS, M3U_TOOLS_LOG_LEVEL, ...
	a.v.SetEnvPrefix("M3U_TOOLS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err == nil {
		utils.DebugLog("Using config file: %s", a.v.ConfigFileUsed())
	} else if a.cfgFile != "" {
		utils.WarnLog("Unable to read config file %s: %v", a.cfgFile, err)
	}
}

// bindFlags binds every local flag of cmd under prefix.name.
func (a *app) bindFlags(cmd *cobra.Command, prefix string) {
	for _, name := range flagNames(cmd) {
		if err := a.v.BindPFlag(prefix+"."+name, cmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

// list reads a comma separated value or a config file list.
func (a *app) list(key string) []string {
	switch a.v.Get(key).(type) {
	case []interface{}, []string:
		return utils.SplitList(strings.Join(a.v.GetStringSlice(key), ","))
	default:
		return utils.SplitList(a.v.GetString(key))
	}
}

// optional returns nil when key was never set.
func (a *app) optional(key string) *string {
	if !a.v.IsSet(key) {
		return nil
	}
	s := a.v.GetString(key)
	return &s
}
