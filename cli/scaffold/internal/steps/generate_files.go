package steps

import (
	"github.com/apex/log"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
	"github.com/zeroclickinfo/duckgen/cli/util"
)

type GenerateFiles struct {
}

// Run generates all template set files. Output paths are relative to the
// repository root, so the working directory is switched for the duration
// of the step. The first failing template aborts the step, files created
// by the preceding templates are kept.
func (GenerateFiles) Run(ctx *scaffold_ctx.NewCtx, genCtx *iatemplate.GenCtx) error {
	cancelChdir, err := util.Chdir(genCtx.Repo.Root)
	if err != nil {
		return err
	}
	defer cancelChdir()

	for _, tmpl := range genCtx.Set.Templates {
		outputFile, err := tmpl.Configure(iatemplate.Options{
			IA:   genCtx.Answer,
			App:  genCtx.App,
			Vars: genCtx.Vars,
		})
		if err != nil {
			return err
		}

		genCtx.CreatedFiles = append(genCtx.CreatedFiles, outputFile)
		log.Infof("Created %s", outputFile)
	}

	return nil
}
