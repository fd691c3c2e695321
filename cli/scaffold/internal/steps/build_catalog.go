package steps

import (
	"os"

	"github.com/apex/log"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/builtin"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
	"github.com/zeroclickinfo/duckgen/cli/templates"
	"github.com/zeroclickinfo/duckgen/cli/util"
)

type BuildCatalog struct {
}

// Run creates the template engine and the template catalog. The first
// existing directory of the configured template search paths becomes the
// template root, the embedded templates are used when there is none.
func (BuildCatalog) Run(ctx *scaffold_ctx.NewCtx, genCtx *iatemplate.GenCtx) error {
	for _, templatesPath := range ctx.TemplateSearchPaths {
		if !util.IsDir(templatesPath) {
			log.Debugf("Templates directory %s does not exist, skipping", templatesPath)
			continue
		}

		log.Debugf("Using templates from %s", templatesPath)
		genCtx.TemplateRoot = templatesPath
		genCtx.Engine = templates.NewDefaultEngine(os.DirFS(templatesPath))
		break
	}

	if genCtx.Engine == nil {
		log.Debugf("Using built-in templates")
		rootFs, err := builtin.RootFS()
		if err != nil {
			return err
		}
		genCtx.Engine = templates.NewDefaultEngine(rootFs)
	}

	catalog, err := iatemplate.NewCatalog(genCtx.Engine)
	if err != nil {
		return err
	}
	genCtx.Catalog = catalog

	return nil
}
