// Package steps provides a set of handlers for new command chain of
// responsibility.
package steps

import (
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
)

// Step is an interface for a single step in the new command chain.
type Step interface {
	Run(ctx *scaffold_ctx.NewCtx, genCtx *iatemplate.GenCtx) error
}
