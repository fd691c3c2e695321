package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeroclickinfo/duckgen/cli/cmdcontext"
	"github.com/zeroclickinfo/duckgen/cli/scaffold"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
)

var (
	answerName         string
	nonInteractiveMode bool
	varsFromCli        *[]string
)

// NewNewCmd creates an instant answer from a template set.
func NewNewCmd() *cobra.Command {
	var newCmd = &cobra.Command{
		Use:   "new [TEMPLATE_SET] [flags]",
		Short: "Create instant answer boilerplate from a template set",
		Run:   RunModuleFunc(internalNewModule),
		Args:  cobra.MaximumNArgs(1),
		Long: `Create instant answer boilerplate from a template set.

Built-in template sets:
	goodie: a Perl instant answer computed on the server.
	spice: a JavaScript instant answer backed by an external API.
	cheat_sheet: a JSON cheat sheet.
	fathead: a keyed data source with fetch and parse scripts.

Without a template set argument the default set of the surrounding
repository is used.`,
		ValidArgsFunction: newValidArgsFunction,
		Example: `
# Create a Goodie inside a zeroclickinfo-goodies checkout.

    $ duckgen new --name "Is Awesome"

# Create a cheat sheet, force the template set. User interaction is disabled.

    $ duckgen new cheat_sheet --name "Vim Cheat Sheet" --non-interactive

# Create a Spice with an extra template variable.

    $ duckgen new spice --name "Auroras" --var "api_host=api.auroras.live"`,
	}

	newCmd.Flags().StringVarP(&answerName, "name", "n", "", "Instant answer name")
	newCmd.Flags().BoolVarP(&nonInteractiveMode, "non-interactive", "s", false,
		`Non-interactive mode`)

	varsFromCli = newCmd.Flags().StringArray("var", []string{},
		"Variable definition. Usage: --var var_name=value")

	return newCmd
}

// newValidArgsFunction returns valid template set names for the `new` command.
func newValidArgsFunction(
	_ *cobra.Command,
	args []string,
	toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	setNames, err := scaffold.SetNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return setNames, cobra.ShellCompDirectiveNoFileComp
}

// internalNewModule is a default new module.
func internalNewModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	newCtx := scaffold_ctx.NewCtx{
		AnswerName:     answerName,
		NonInteractive: nonInteractiveMode,
		VarsFromCli:    *varsFromCli,
	}

	if err := scaffold.FillCtx(cliOpts, &newCtx, args); err != nil {
		return err
	}

	return scaffold.Run(&newCtx)
}
