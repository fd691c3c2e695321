package iatemplate

import (
	"github.com/zeroclickinfo/duckgen/cli/templates"
)

// PathSpec resolves to a concrete file path just before generation.
type PathSpec interface {
	resolve(engine templates.TemplateEngine, vars map[string]interface{}) (string, error)
}

// LiteralPath is a path pattern. It may contain template syntax and is
// rendered against the generation variables.
type LiteralPath string

func (path LiteralPath) resolve(engine templates.TemplateEngine,
	vars map[string]interface{},
) (string, error) {
	return engine.RenderText(string(path), vars)
}

// ComputedPath derives the path from the generation variables.
type ComputedPath func(vars map[string]interface{}) (string, error)

func (compute ComputedPath) resolve(_ templates.TemplateEngine,
	vars map[string]interface{},
) (string, error) {
	return compute(vars)
}
