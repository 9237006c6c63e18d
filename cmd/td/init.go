package main

import (
	"fmt"

	"github.com/jacksmith/td/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new td list",
	Long: `Create a .td/ directory with an empty task list.

Fails if .td/ already exists in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := storage.Init("."); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Initialized td in .td/")
	return nil
}
