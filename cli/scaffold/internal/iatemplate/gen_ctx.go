package iatemplate

import (
	"github.com/zeroclickinfo/duckgen/cli/app"
	"github.com/zeroclickinfo/duckgen/cli/ia"
	"github.com/zeroclickinfo/duckgen/cli/repository"
	"github.com/zeroclickinfo/duckgen/cli/templates"
)

// GenCtx carries generation state between scaffolding steps.
type GenCtx struct {
	// Repo is the instant answer repository being worked on.
	Repo *repository.Repository
	// App is the application handle passed to template operations.
	App *app.App
	// Engine renders template files and path patterns.
	Engine templates.TemplateEngine
	// TemplateRoot is the effective template root directory,
	// empty when builtin templates are used.
	TemplateRoot string
	// Catalog of available templates.
	Catalog *Catalog
	// Set is the template set to generate.
	Set *Set
	// Answer is the instant answer being scaffolded.
	Answer *ia.InstantAnswer
	// Vars are extra variables from the command line.
	Vars map[string]interface{}
	// CreatedFiles are the generated file paths, relative
	// to the repository root.
	CreatedFiles []string
}
