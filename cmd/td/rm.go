package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/td/internal/cli"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <ref>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Long: `Delete a task permanently.

<ref> is a position from "td list" or a task ID. Deleting an ID that no
longer exists succeeds without changing anything.

Examples:
  td rm 2
  td rm T-05`,
	Args:              cobra.ExactArgs(1),
	RunE:              runRm,
	ValidArgsFunction: completeTaskRefs,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	pos, err := cli.ResolveRef(a.list, args[0])
	if err != nil {
		var notFound *cli.NotFoundError
		if errors.As(err, &notFound) {
			// Already gone: the outcome the user asked for.
			a.logger.Debug("delete of absent task ignored", "id", notFound.Ref)
			fmt.Fprintf(out, "%s already deleted.\n", notFound.Ref)
			return nil
		}
		return err
	}

	id, err := a.list.IDAt(pos)
	if err != nil {
		return err
	}
	if err := a.list.DeleteAt(pos); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s deleted.\n", id)
	return nil
}
