package steps

import (
	"github.com/zeroclickinfo/duckgen/cli/app"
	"github.com/zeroclickinfo/duckgen/cli/repository"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
)

type DetectRepository struct {
}

// Run locates the instant answer repository to scaffold into. A repository
// path from the configuration wins over the working directory lookup.
func (DetectRepository) Run(ctx *scaffold_ctx.NewCtx, genCtx *iatemplate.GenCtx) error {
	var repo *repository.Repository
	var err error

	if ctx.RepoPath != "" {
		repo, err = repository.Load(ctx.RepoPath)
	} else {
		repo, err = repository.Detect(ctx.WorkDir)
	}
	if err != nil {
		return err
	}

	genCtx.Repo = repo
	genCtx.App = app.New(repo, ctx.WorkDir)
	return nil
}
