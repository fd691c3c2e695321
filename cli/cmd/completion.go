package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zeroclickinfo/duckgen/cli/cmdcontext"
	"github.com/zeroclickinfo/duckgen/cli/util"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
	shellFish = "fish"
)

var shellSupported = []string{shellBash, shellZsh, shellFish}

func listShells() string {
	return strings.Join(shellSupported, " | ")
}

// NewCompletionCmd creates a new completion command.
func NewCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "completion <SHELL_TYPE>",
		Short: "Generate autocomplete for a specified shell. " +
			fmt.Sprintf("Supported shell type: %s", listShells()),
		ValidArgs: shellSupported,
		Run:       RunModuleFunc(internalCompletionModule),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `
# Enable auto-completion in current bash shell.

    $ . <(duckgen completion bash)`,
	}

	return cmd
}

// internalCompletionModule is a default (internal) completion module function.
func internalCompletionModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	switch shell := args[0]; shell {
	case shellBash:
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	case shellZsh:
		return rootCmd.GenZshCompletion(os.Stdout)
	case shellFish:
		return rootCmd.GenFishCompletion(os.Stdout, true)
	}

	return util.NewArgError(
		fmt.Sprintf("specified shell type is not supported. Available: %s", listShells()))
}
