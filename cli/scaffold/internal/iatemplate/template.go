package iatemplate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/zeroclickinfo/duckgen/cli/app"
	"github.com/zeroclickinfo/duckgen/cli/ia"
	"github.com/zeroclickinfo/duckgen/cli/repository"
	"github.com/zeroclickinfo/duckgen/cli/templates"
)

const defaultOutputMode = os.FileMode(0644)

// outputDirMode is used for created parent directories.
const outputDirMode = os.FileMode(0755)

// basePackageRe matches the repository-wide module prefix, e.g. "DDG/Goodie/".
var basePackageRe = regexp.MustCompile(`^DDG/[^/]+/`)

// Options are passed to Configure.
type Options struct {
	// IA is the instant answer being scaffolded.
	IA *ia.InstantAnswer
	// App is the application handle.
	App *app.App
	// Vars are caller-provided extra variables.
	Vars map[string]interface{}
}

// ExtraConfigFunc supplies additional template variables. Returned keys
// take priority over the derived ones.
type ExtraConfigFunc func(opts Options) (map[string]interface{}, error)

// Def describes a template to create.
type Def struct {
	// Name is a unique template identifier.
	Name string
	// Label is a human readable template description.
	Label string
	// Input locates the template file, relative to the template root.
	Input PathSpec
	// Output locates the generated file.
	Output PathSpec
	// Allow is a single predicate function or an ordered list of
	// predicate functions, see NewPredicate.
	Allow interface{}
	// ExtraConfig supplies additional template variables, may be nil.
	ExtraConfig ExtraConfigFunc
	// Mode is the output file mode, 0644 when unset.
	Mode os.FileMode
}

// Template is one recipe for producing one output file. Immutable after
// construction and reused across generation requests.
type Template struct {
	name        string
	label       string
	input       PathSpec
	output      PathSpec
	allow       Predicate
	extraConfig ExtraConfigFunc
	mode        os.FileMode
	engine      templates.TemplateEngine

	outputDirOnce sync.Once
	outputDir     string
	outputDirErr  error
}

// New creates a template from its definition. The allow value is
// normalized once here.
func New(def Def, engine templates.TemplateEngine) (*Template, error) {
	if def.Name == "" {
		return nil, &InvalidConfigurationError{Reason: "template name is required"}
	}
	if def.Input == nil {
		return nil, &InvalidConfigurationError{Template: def.Name,
			Reason: "input path is required"}
	}
	if def.Output == nil {
		return nil, &InvalidConfigurationError{Template: def.Name,
			Reason: "output path is required"}
	}
	if engine == nil {
		return nil, &InvalidConfigurationError{Template: def.Name,
			Reason: "template engine is required"}
	}

	allow, err := NewPredicate(def.Allow)
	if err != nil {
		var invalidErr *InvalidConfigurationError
		if errors.As(err, &invalidErr) {
			invalidErr.Template = def.Name
		}
		return nil, err
	}

	mode := def.Mode
	if mode == 0 {
		mode = defaultOutputMode
	}

	return &Template{
		name:        def.Name,
		label:       def.Label,
		input:       def.Input,
		output:      def.Output,
		allow:       allow,
		extraConfig: def.ExtraConfig,
		mode:        mode,
		engine:      engine,
	}, nil
}

// Name returns the template identifier.
func (tmpl *Template) Name() string {
	return tmpl.name
}

// Label returns the human readable template description.
func (tmpl *Template) Label() string {
	return tmpl.label
}

// Mode returns the output file mode.
func (tmpl *Template) Mode() os.FileMode {
	return tmpl.mode
}

// Supports reports whether the template applies to the given context.
func (tmpl *Template) Supports(ctx interface{}) bool {
	return tmpl.allow(ctx)
}

// OutputDirectory returns the deepest ancestor directory of the output
// path pattern that contains no template syntax. It is known without
// rendering, computed on first access and cached. Not defined for a
// computed output path.
func (tmpl *Template) OutputDirectory() (string, error) {
	tmpl.outputDirOnce.Do(func() {
		pattern, ok := tmpl.output.(LiteralPath)
		if !ok {
			tmpl.outputDirErr = &InvalidConfigurationError{Template: tmpl.name,
				Reason: "output directory is not defined for a computed output path"}
			return
		}

		dir := filepath.Dir(string(pattern))
		for strings.Contains(dir, templates.OpenDelim) {
			dir = filepath.Dir(dir)
		}
		tmpl.outputDir = dir
	})

	return tmpl.outputDir, tmpl.outputDirErr
}

// BaseVars builds the standard generation variables for an answer:
// the answer itself, the repository handle and the derived package paths.
func BaseVars(answer *ia.InstantAnswer, repo *repository.Repository) map[string]interface{} {
	packageSeparated := strings.ReplaceAll(answer.Module, "::", "/")

	return map[string]interface{}{
		"ia":                     answer,
		"repo":                   repo,
		"package_separated":      packageSeparated,
		"package_base_separated": basePackageRe.ReplaceAllString(packageSeparated, ""),
	}
}

// Configure builds the generation variables from opts and generates the
// output file. Returns the resolved output path.
func (tmpl *Template) Configure(opts Options) (string, error) {
	if opts.IA == nil {
		return "", &MissingFieldError{Field: "ia"}
	}
	if opts.IA.Module == "" {
		return "", &MissingFieldError{Field: "ia module identifier"}
	}
	if opts.App == nil {
		return "", &MissingFieldError{Field: "app"}
	}

	vars := BaseVars(opts.IA, opts.App.Repository())
	for name, value := range opts.Vars {
		vars[name] = value
	}

	// Extra config keys take priority on collision.
	if tmpl.extraConfig != nil {
		extraVars, err := tmpl.extraConfig(opts)
		if err != nil {
			return "", fmt.Errorf("extra config of template %q failed: %w", tmpl.name, err)
		}
		for name, value := range extraVars {
			vars[name] = value
		}
	}

	return tmpl.generate(opts.App, vars)
}

// generate renders the template and writes the output file. An existing
// file at the output path is never overwritten.
func (tmpl *Template) generate(app *app.App, vars map[string]interface{}) (string, error) {
	inputFile, err := tmpl.input.resolve(tmpl.engine, vars)
	if err != nil {
		return "", fmt.Errorf("failed to resolve input path of template %q: %w",
			tmpl.name, err)
	}

	outputFile, err := tmpl.output.resolve(tmpl.engine, vars)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path of template %q: %w",
			tmpl.name, err)
	}

	if _, err = os.Stat(outputFile); err == nil {
		return "", &OutputAlreadyExistsError{Path: outputFile}
	}

	content, err := tmpl.engine.RenderFile(inputFile, vars)
	if err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", tmpl.name, err)
	}

	if outputDir := filepath.Dir(outputFile); outputDir != "." {
		if err = os.MkdirAll(outputDir, outputDirMode); err != nil {
			return "", &WriteError{Path: outputFile, Err: err}
		}
	}

	// Exclusive create, so a file appearing after the check above is
	// still never overwritten.
	file, err := os.OpenFile(outputFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, tmpl.mode)
	if err != nil {
		if os.IsExist(err) {
			return "", &OutputAlreadyExistsError{Path: outputFile}
		}
		return "", &WriteError{Path: outputFile, Err: err}
	}

	if _, err = file.WriteString(content); err != nil {
		file.Close()
		os.Remove(outputFile)
		return "", &WriteError{Path: outputFile, Err: err}
	}
	if err = file.Close(); err != nil {
		os.Remove(outputFile)
		return "", &WriteError{Path: outputFile, Err: err}
	}

	log.Debugf("Template %q of %s repository generated %s",
		tmpl.name, app.Repository().Kind, outputFile)

	return outputFile, nil
}
