package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeroclickinfo/duckgen/cli/cmdcontext"
	"github.com/zeroclickinfo/duckgen/cli/configure"
	init_pkg "github.com/zeroclickinfo/duckgen/cli/init"
)

var initCtx init_pkg.InitCtx

// NewInitCmd analyses the current working directory and generates
// duckgen.yaml for the instant answer repository found there. If there
// is no repository, a default version of duckgen.yaml is generated.
func NewInitCmd() *cobra.Command {
	var initCmd = &cobra.Command{
		Use:   "init [flags]",
		Short: "Create duckgen config for the repository in current directory",
		Run:   RunModuleFunc(internalInitModule),
	}

	initCmd.Flags().BoolVarP(&initCtx.SkipRepo, "skip-repo", "", false,
		`Skip instant answer repository detection`)
	initCmd.Flags().BoolVarP(&initCtx.ForceMode, "force", "f", false,
		fmt.Sprintf(`Force re-write existing %s`, configure.ConfigName))

	return initCmd
}

// internalInitModule is a default init module.
func internalInitModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	init_pkg.FillCtx(&initCtx)
	return init_pkg.Run(&initCtx)
}
