package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeroclickinfo/duckgen/cli/cmdcontext"
	"github.com/zeroclickinfo/duckgen/cli/list"
)

var listTemplatesMode bool

// NewListCmd creates list command.
func NewListCmd() *cobra.Command {
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "Show built-in template sets",
		Run:   RunModuleFunc(internalListModule),
		Args:  cobra.ExactArgs(0),
		Example: `
# Show template sets and the templates they generate.

    $ duckgen list

# Show every template with its output location and mode.

    $ duckgen list --templates`,
	}

	listCmd.Flags().BoolVar(&listTemplatesMode, "templates", false,
		"Show a table of all templates")

	return listCmd
}

// internalListModule is a default list module.
func internalListModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if listTemplatesMode {
		return list.ListTemplates()
	}

	return list.ListSets()
}
