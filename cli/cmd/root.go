package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"github.com/zeroclickinfo/duckgen/cli/cmdcontext"
	"github.com/zeroclickinfo/duckgen/cli/config"
	"github.com/zeroclickinfo/duckgen/cli/configure"
	"github.com/zeroclickinfo/duckgen/cli/util"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command
)

// InternalFunc is a type of function that implements a command.
type InternalFunc func(*cmdcontext.CmdCtx, []string) error

// RunModuleFunc returns a cobra handler running the command
// implementation.
func RunModuleFunc(internal InternalFunc) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		cmdCtx.CommandName = cmd.Name()
		err := internal(&cmdCtx, args)
		util.HandleCmdErr(cmd, err)
	}
}

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "duckgen",
		Short: "DuckDuckGo Instant Answer generator",
		Long:  "Utility for creating DuckDuckGo instant answer boilerplate from templates",
		Example: `$ duckgen new --name "Is Awesome"
  $ duckgen new cheat_sheet --name "Vim Cheat Sheet"
  $ duckgen list --templates`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose logging")

	// Do not parse flags that come after a subcommand name.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCompletionCmd(),
		NewNewCmd(),
		NewListCmd(),
		NewInitCmd(),
		NewExportCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// InitRoot initializes global flags, configures logging and loads the
// duckgen configuration file.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	if err := configure.Cli(&cmdCtx); err != nil {
		log.Fatalf("Failed to configure duckgen: %s", err)
	}

	var err error
	cliOpts, _, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to get duckgen configuration: %s", err)
	}
}
