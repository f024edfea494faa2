// Copyright © 2025 The ruff authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ruff",
	Short: "ruff — static analysis for Python stub files",
	Long: `ruff checks Python type-stub files (.pyi) for common mistakes and
anti-patterns, in the spirit of "go vet" for Go.

Getting started:
  ruff check file.pyi          Check a single stub file
  ruff check ./...             Check every stub under the current directory
  ruff check --list            List the available checks
  ruff lsp                     Start a language server for editor integration

Each check is an independent analyzer with a stable rule code (PYI028,
UP013, ...) that examines the parsed syntax tree, consulting a per-file
semantic model for import-aware questions like "does this call target
typing.NamedTuple, under whatever alias the file imported it?"

Project configuration is read from the nearest pyproject.toml:

  [tool.ruff]
  select = ["PYI028"]
  ignore = ["PYI021"]
  exclude = ["build/*"]

To suppress a single finding, add a comment on the offending line:
  Point = NamedTuple("Point", [("x", int)])  # noqa: PYI028

More information:
  Source code:     https://github.com/tomasr8/ruff`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ruff.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".ruff" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".ruff")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
