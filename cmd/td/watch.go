package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/tasks"
	"github.com/jacksmith/td/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show the list and redraw it when it changes",
	Long: `Print the task list, then print it again every time the task file is
changed by another td process (or by hand). Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

var (
	watchDebounce time.Duration
	watchClear    bool
)

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "wait this long for writes to settle before redrawing")
	watchCmd.Flags().BoolVar(&watchClear, "clear", false, "clear the screen before each redraw")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return watchList(ctx, cmd, a)
}

// watchList renders the list now and after every out-of-band change until
// ctx is done. The list and the renderer are store observers; the file
// watcher only triggers Store.Notify.
func watchList(ctx context.Context, cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	render := func() {
		if watchClear {
			fmt.Fprint(out, "\033[H\033[2J")
		}
		fmt.Fprintln(out, cli.Gray(time.Now().Format("15:04:05")))
		renderList(out, a.list.Tasks(), a.config.MaxTitleWidth)
	}

	defer a.store.Subscribe(a.list)()
	defer a.store.Subscribe(tasks.ObserverFunc(render))()

	render()

	w := watch.New(a.storage.TasksPath(), watch.WithLogger(a.logger), watch.WithDebounce(watchDebounce))
	return w.Run(ctx, a.store.Notify)
}
