package cmd

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/zeroclickinfo/duckgen/cli/cmdcontext"
	"github.com/zeroclickinfo/duckgen/cli/configure"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/builtin"
)

// NewExportCmd creates export command.
func NewExportCmd() *cobra.Command {
	var exportCmd = &cobra.Command{
		Use:   "export <DIRECTORY>",
		Short: "Export built-in templates to a directory",
		Long: `Export built-in templates to a directory.

The exported tree is a starting point for custom templates. Point the
templates.path option of ` + configure.ConfigName + ` at the directory to pick it up.`,
		Run:  RunModuleFunc(internalExportModule),
		Args: cobra.ExactArgs(1),
		Example: `
# Export built-in templates into ./templates.

    $ duckgen export templates`,
	}

	return exportCmd
}

// internalExportModule is a default export module.
func internalExportModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	if err := builtin.Export(args[0]); err != nil {
		return err
	}

	log.Infof("Built-in templates are exported to '%s'", args[0])
	return nil
}
