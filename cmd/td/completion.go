package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/storage"
	"github.com/jacksmith/td/internal/tasks"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for td.

To load completions:

Bash:
  $ source <(td completion bash)

Zsh:
  $ td completion zsh > "${fpath[1]}/_td"

Fish:
  $ td completion fish | source
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeTaskRefs completes the first argument with task IDs, or with
// positions when the user has started typing a number.
func completeTaskRefs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, err := storage.Find(".")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	all, err := tasks.New(s).FetchAll()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	byPosition := toComplete != "" && toComplete[0] >= '0' && toComplete[0] <= '9'
	toCompleteLower := strings.ToLower(toComplete)

	var completions []string
	for i, t := range all {
		ref := t.ID
		if byPosition {
			ref = strconv.Itoa(i + 1)
		}
		if strings.HasPrefix(strings.ToLower(ref), toCompleteLower) {
			completions = append(completions, ref+"\t"+cli.Truncate(t.Title, 40))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
