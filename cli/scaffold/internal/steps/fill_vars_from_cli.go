package steps

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
)

const formatError = `Wrong variable definition format: %s
Usage: --var "var-name=value"`

type FillVarsFromCli struct {
}

// Run collects template variables passed using command line args.
func (FillVarsFromCli) Run(ctx *scaffold_ctx.NewCtx, genCtx *iatemplate.GenCtx) error {
	if genCtx.Vars == nil {
		genCtx.Vars = map[string]interface{}{}
	}

	for _, varDefinition := range ctx.VarsFromCli {
		varDefinition = strings.TrimSpace(varDefinition)
		varName, value, found := strings.Cut(varDefinition, "=")
		if !found || varName == "" || value == "" {
			return fmt.Errorf(formatError, varDefinition)
		}
		log.Debugf("Setting var from CLI: %s = %s", varName, value)
		genCtx.Vars[varName] = value
	}
	return nil
}
