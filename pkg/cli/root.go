package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/replicatedhq/dirload/pkg/constants"
	"github.com/replicatedhq/dirload/pkg/loader"
	"github.com/replicatedhq/dirload/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands
func RootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "dirload",
		Short: "mirror a directory tree into structured data",
		Long: `dirload crawls a directory and mirrors it as a tree keyed by
derived file names. Data files are parsed, templates and Go scripts
become callable leaves, everything else is read as text.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			version.Init()
			return initConfig(viper.GetViper(), cfgFile)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file, yaml, json or toml")
	flags.StringP(constants.DirFlag, "d", constants.DefaultDir, "directory to crawl")
	flags.String(constants.NotFlag, constants.DefaultNot, "regular expression; matching file names are skipped")
	flags.String(constants.MatchFlag, "", "regular expression; when set, only matching file names are kept")
	flags.String(constants.IgnoreFlag, constants.DefaultIgnore, "regular expression; matching directories are not crawled")
	flags.String(constants.RequireFlag, constants.DefaultRequire, "regular expression; matching files are parsed or loaded instead of read as text")
	flags.Bool(constants.RecursiveFlag, true, "crawl sub-directories")
	flags.Bool(constants.TreeFlag, true, "nest sub-directories; when false their entries are merged into the parent")
	flags.String(constants.EncodingFlag, loader.DefaultEncoding, "text encoding of files read as text")
	flags.String(constants.ChrootFlag, "", "restrict crawling to this directory")
	flags.StringP(constants.OutputFlag, "o", "yaml", "output format, yaml, json or table")
	flags.String(constants.SelectFlag, "", "print only the node at this slash-separated key path")
	flags.String(constants.LogLevelFlag, "off", "log level")
	flags.String(constants.LogFormatFlag, "logfmt", "log format, logfmt or json")
	flags.String(constants.LogFileFlag, "", "also write debug logs to this file")
	flags.Bool(constants.NoColorFlag, false, "disable colored output")
	flags.Bool(constants.ForceColorFlag, false, "color output even when not attached to a terminal")
	flags.Bool(constants.NoOSExitFlag, false, "return instead of exiting on errors")
	_ = flags.MarkHidden(constants.NoOSExitFlag)

	_ = viper.BindPFlags(flags)

	cmd.AddCommand(Crawl())
	cmd.AddCommand(Resolve())
	cmd.AddCommand(Version())
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in the config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", cfgFile)
	}
	return nil
}
