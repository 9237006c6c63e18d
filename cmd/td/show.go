package main

import (
	"fmt"
	"time"

	"github.com/jacksmith/td/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:               "show <ref>",
	Short:             "Show a task",
	Long:              `Show a task's ID, position, title and timestamps.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completeTaskRefs,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	pos, err := cli.ResolveRef(a.list, args[0])
	if err != nil {
		return err
	}
	id, err := a.list.IDAt(pos)
	if err != nil {
		return err
	}
	t, err := a.store.Get(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s\n", cli.Gray(fmt.Sprintf("#%d", pos+1)), t.ID)
	fmt.Fprintf(out, "Title:    %s\n", t.Title)
	fmt.Fprintf(out, "Created:  %s\n", formatTime(t.Created))
	fmt.Fprintf(out, "Updated:  %s\n", formatTime(t.Updated))
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
