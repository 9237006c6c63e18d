package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List all tasks in the order they were added.

Each row shows the task's position, its ID and its title. Either the
position or the ID can be passed to edit, rm and show.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	renderList(cmd.OutOrStdout(), a.list.Tasks(), a.config.MaxTitleWidth)
	return nil
}

// renderList prints tasks as a table of position, ID and title.
func renderList(w io.Writer, tasks []model.Task, maxTitleWidth int) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}

	table := cli.NewTable()
	table.SetMaxWidth(2, maxTitleWidth)
	for i, t := range tasks {
		table.AddRow(cli.Gray(strconv.Itoa(i+1)), cli.Gray(t.ID), t.Title)
	}
	table.Render(w)
}
