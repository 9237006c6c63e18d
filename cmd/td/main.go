// Package main is the entry point for the td CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/td/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "td",
	Short: "td - a minimal persistent to-do list",
	Long: `td keeps an ordered to-do list in a .td/ directory.

Tasks are listed in the order they were added. Commands that change a task
take a reference: either the task's position in "td list" (1, 2, ...) or
its ID (T-01, T-02, ...). IDs never change and are never reused.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	rootLogLevel string
	rootNoColor  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides .tdconfig.yaml)")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "disable colored output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("td version {{.Version}}\n")
}
