package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/td/internal/cli"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <ref> [title...]",
	Short: "Change a task's title",
	Long: `Replace the title of a task.

<ref> is a position from "td list" or a task ID. The remaining arguments
form the new title. Without a title, $EDITOR is opened pre-filled with the
current one. An empty title changes nothing.

Examples:
  td edit 1 Buy oat milk
  td edit T-02 "Walk the dog"
  td edit 2`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runEdit,
	ValidArgsFunction: completeTaskRefs,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	pos, err := cli.ResolveRef(a.list, args[0])
	if err != nil {
		return err
	}

	title := strings.Join(args[1:], " ")
	if len(args) == 1 {
		current := a.list.Tasks()[pos]
		title, err = cli.PromptTitle("Update task "+current.ID, current.Title)
		if err != nil {
			return err
		}
	}

	task, err := a.list.EditAt(pos, title)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if task == nil {
		fmt.Fprintln(out, cli.Yellow("No changes."))
		return nil
	}
	fmt.Fprintf(out, "%s updated.\n", task.ID)
	return nil
}
