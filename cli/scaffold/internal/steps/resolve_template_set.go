package steps

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
)

type ResolveTemplateSet struct {
}

// Run picks the template set to generate. An explicit set name wins, then
// the default set of the repository kind, then an interactive selection
// among the sets applicable to the repository.
func (ResolveTemplateSet) Run(ctx *scaffold_ctx.NewCtx, genCtx *iatemplate.GenCtx) error {
	if ctx.SetName != "" {
		set, err := genCtx.Catalog.Set(ctx.SetName)
		if err != nil {
			return err
		}
		if !set.Supports(genCtx.Repo) {
			return fmt.Errorf("template set %q is not applicable to a %s repository",
				set.Name, genCtx.Repo.Kind)
		}
		genCtx.Set = set
		return nil
	}

	if setName := iatemplate.DefaultSetName(genCtx.Repo.Kind); setName != "" {
		log.Debugf("Using default template set %q for a %s repository",
			setName, genCtx.Repo.Kind)
		set, err := genCtx.Catalog.Set(setName)
		if err != nil {
			return err
		}
		genCtx.Set = set
		return nil
	}

	candidates := []string{}
	for _, setName := range genCtx.Catalog.SetNames() {
		set, err := genCtx.Catalog.Set(setName)
		if err != nil {
			return err
		}
		if set.Supports(genCtx.Repo) {
			candidates = append(candidates, setName)
		}
	}

	if len(candidates) == 0 {
		return fmt.Errorf("no template sets are applicable to a %s repository",
			genCtx.Repo.Kind)
	}
	if len(candidates) == 1 {
		set, err := genCtx.Catalog.Set(candidates[0])
		if err != nil {
			return err
		}
		genCtx.Set = set
		return nil
	}

	if ctx.NonInteractive {
		return fmt.Errorf("template set name is required in non-interactive mode, "+
			"available: %v", candidates)
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("cannot select a template set: standard input is not a terminal")
	}

	setSelect := promptui.Select{
		Label:        "Select template set",
		Items:        candidates,
		HideSelected: true,
	}
	_, setName, err := setSelect.Run()
	if err != nil {
		return err
	}

	set, err := genCtx.Catalog.Set(setName)
	if err != nil {
		return err
	}
	genCtx.Set = set
	return nil
}
