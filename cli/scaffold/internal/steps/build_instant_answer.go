package steps

import (
	"github.com/apex/log"
	"github.com/zeroclickinfo/duckgen/cli/ia"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
)

type BuildInstantAnswer struct {
}

// Run derives the instant answer identifiers from the entered name.
func (BuildInstantAnswer) Run(ctx *scaffold_ctx.NewCtx, genCtx *iatemplate.GenCtx) error {
	answer, err := ia.New(ctx.AnswerName, genCtx.Repo.Kind)
	if err != nil {
		return err
	}

	log.Debugf("Scaffolding %s instant answer %q", answer.Kind, answer.ID)
	genCtx.Answer = &answer
	return nil
}
