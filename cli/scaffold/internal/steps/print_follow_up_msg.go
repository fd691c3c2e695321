package steps

import (
	"io"

	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
)

type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints the template set follow-up message. The message is rendered
// with the same variables the set files were generated with.
func (printFollowUpMsgStep PrintFollowUpMessage) Run(ctx *scaffold_ctx.NewCtx,
	genCtx *iatemplate.GenCtx) error {
	if genCtx.Set.FollowUp == "" || ctx.NonInteractive {
		return nil
	}

	vars := iatemplate.BaseVars(genCtx.Answer, genCtx.Repo)
	for name, value := range genCtx.Vars {
		vars[name] = value
	}

	followUpText, err := genCtx.Engine.RenderText(genCtx.Set.FollowUp, vars)
	if err != nil {
		return err
	}

	_, err = printFollowUpMsgStep.Writer.Write([]byte(followUpText))
	return err
}
