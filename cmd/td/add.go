package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/td/internal/cli"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title...]",
	Short: "Add a new task",
	Long: `Add a new task to the end of the list.

All arguments are joined with spaces to form the title. Without arguments,
$EDITOR is opened to enter the title. An empty title adds nothing.

Examples:
  td add Buy milk
  td add "Walk dog"
  td add`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	title := strings.Join(args, " ")
	if len(args) == 0 {
		title, err = cli.PromptTitle("New task", "")
		if err != nil {
			return err
		}
	}

	task, err := a.list.Add(title)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if task == nil {
		fmt.Fprintln(out, cli.Yellow("Nothing added."))
		return nil
	}
	fmt.Fprintf(out, "%s %s\n", cli.Green(task.ID), task.Title)
	return nil
}
