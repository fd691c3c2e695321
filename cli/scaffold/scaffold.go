// Package scaffold creates instant answer boilerplate from template sets.
package scaffold

import (
	"fmt"
	"os"

	"github.com/zeroclickinfo/duckgen/cli/config"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/builtin"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/steps"
	"github.com/zeroclickinfo/duckgen/cli/templates"
	"github.com/zeroclickinfo/duckgen/cli/util"
	"github.com/zeroclickinfo/duckgen/cli/version"
)

// FillCtx fills the new command context.
func FillCtx(cliOpts *config.CliOpts, newCtx *scaffold_ctx.NewCtx, args []string) error {
	if cliOpts.Templates != nil {
		newCtx.TemplateSearchPaths = append(newCtx.TemplateSearchPaths,
			cliOpts.Templates.Path...)
	}
	if cliOpts.Repo != nil {
		newCtx.RepoPath = cliOpts.Repo.Path
	}

	if len(args) >= 1 {
		newCtx.SetName = args[0]
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	newCtx.WorkDir = workingDir

	return nil
}

// Run scaffolds an instant answer from a template set.
func Run(newCtx *scaffold_ctx.NewCtx) error {
	if err := checkCtx(newCtx); err != nil {
		return util.InternalError("Scaffold context check failed: %s",
			version.GetVersion, err)
	}

	stepsChain := []steps.Step{
		steps.DetectRepository{},
		steps.BuildCatalog{},
		steps.ResolveTemplateSet{},
		steps.FillVarsFromCli{},
		steps.CollectAnswerName{Reader: steps.NewConsoleReader()},
		steps.BuildInstantAnswer{},
		steps.GenerateFiles{},
		steps.PrintFollowUpMessage{Writer: os.Stdout},
	}

	genCtx := iatemplate.GenCtx{}
	for _, step := range stepsChain {
		if err := step.Run(newCtx, &genCtx); err != nil {
			return err
		}
	}

	return nil
}

// checkCtx checks the new command context for validity.
func checkCtx(newCtx *scaffold_ctx.NewCtx) error {
	if newCtx.WorkDir == "" {
		return fmt.Errorf("working directory is missing")
	}

	return nil
}

// TemplateInfo describes one template for listings.
type TemplateInfo struct {
	// Name is the template identifier.
	Name string
	// Label is a human readable template description.
	Label string
	// OutputDir is the directory the template generates into, relative to
	// the repository root. Empty when not known without rendering.
	OutputDir string
	// Mode is the generated file mode.
	Mode os.FileMode
}

// SetInfo describes one template set for listings.
type SetInfo struct {
	// Name is the set identifier.
	Name string
	// Label is a human readable set description.
	Label string
	// Templates generated by the set, in order.
	Templates []TemplateInfo
}

// builtinCatalog creates the template catalog over the embedded templates.
func builtinCatalog() (*iatemplate.Catalog, error) {
	rootFs, err := builtin.RootFS()
	if err != nil {
		return nil, err
	}
	return iatemplate.NewCatalog(templates.NewDefaultEngine(rootFs))
}

// templateInfo converts one catalog template for listings.
func templateInfo(tmpl *iatemplate.Template) TemplateInfo {
	outputDir, err := tmpl.OutputDirectory()
	if err != nil {
		outputDir = ""
	}
	return TemplateInfo{
		Name:      tmpl.Name(),
		Label:     tmpl.Label(),
		OutputDir: outputDir,
		Mode:      tmpl.Mode(),
	}
}

// SetNames returns the names of all template sets, in presentation order.
func SetNames() ([]string, error) {
	catalog, err := builtinCatalog()
	if err != nil {
		return nil, err
	}
	return catalog.SetNames(), nil
}

// Inventory returns all template sets for listings, in presentation order.
func Inventory() ([]SetInfo, error) {
	catalog, err := builtinCatalog()
	if err != nil {
		return nil, err
	}

	inventory := []SetInfo{}
	for _, setName := range catalog.SetNames() {
		set, err := catalog.Set(setName)
		if err != nil {
			return nil, err
		}

		info := SetInfo{Name: set.Name, Label: set.Label}
		for _, tmpl := range set.Templates {
			info.Templates = append(info.Templates, templateInfo(tmpl))
		}
		inventory = append(inventory, info)
	}

	return inventory, nil
}

// TemplateInventory returns all distinct templates for listings, sorted
// by name.
func TemplateInventory() ([]TemplateInfo, error) {
	catalog, err := builtinCatalog()
	if err != nil {
		return nil, err
	}

	inventory := []TemplateInfo{}
	for _, tmplName := range catalog.TemplateNames() {
		tmpl, err := catalog.Template(tmplName)
		if err != nil {
			return nil, err
		}
		inventory = append(inventory, templateInfo(tmpl))
	}

	return inventory, nil
}
