package iatemplate

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/adam-hanna/arrayOperations"
	"github.com/zeroclickinfo/duckgen/cli/repository"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/builtin/static"
	"github.com/zeroclickinfo/duckgen/cli/templates"
)

// Set is an ordered group of templates generated together.
type Set struct {
	// Name is a unique set identifier.
	Name string
	// Label is a human readable set description.
	Label string
	// Templates generated by the set, in order.
	Templates []*Template
	// FollowUp is a template text printed after successful generation.
	FollowUp string
}

// Supports reports whether every template of the set applies to the
// given context.
func (set *Set) Supports(ctx interface{}) bool {
	for _, tmpl := range set.Templates {
		if !tmpl.Supports(ctx) {
			return false
		}
	}
	return true
}

// Catalog holds all known templates and template sets. Built once at
// startup, immutable afterwards.
type Catalog struct {
	templates map[string]*Template
	sets      map[string]*Set
	setNames  []string
}

// kindIs returns a predicate matching repositories of the given kinds.
func kindIs(kinds ...repository.Kind) Predicate {
	return func(ctx interface{}) bool {
		repo, ok := ctx.(*repository.Repository)
		if !ok {
			return false
		}
		for _, kind := range kinds {
			if repo.Kind == kind {
				return true
			}
		}
		return false
	}
}

// spiceExtraConfig supplies the spice JavaScript callback name.
func spiceExtraConfig(opts Options) (map[string]interface{}, error) {
	return map[string]interface{}{
		"callback": "ddg_spice_" + opts.IA.ID,
	}, nil
}

// cheatSheetExtraConfig supplies the dashed cheat sheet id. It takes
// priority over any colliding caller variable.
func cheatSheetExtraConfig(opts Options) (map[string]interface{}, error) {
	return map[string]interface{}{
		"id": strings.ReplaceAll(opts.IA.ID, "_", "-"),
	}, nil
}

// outputMode returns the generated output mode of a built-in template
// file. go:embed does not keep the execute bits, so the modes are
// captured from the source tree by cli/codegen and looked up here.
func outputMode(inputFile string) os.FileMode {
	if mode, ok := static.ShareFileModes[inputFile]; ok {
		return os.FileMode(mode)
	}
	return defaultOutputMode
}

// catalogDefs describe all builtin templates.
func catalogDefs() []Def {
	return []Def{
		{
			Name:   "goodie_pm",
			Label:  "Goodie Perl module",
			Input:  LiteralPath("goodie/goodie.pm.tx"),
			Output: LiteralPath("lib/<: .package_separated :>.pm"),
			Allow:  kindIs(repository.KindGoodie),
		},
		{
			Name:   "goodie_test",
			Label:  "Goodie test file",
			Input:  LiteralPath("goodie/goodie_test.t.tx"),
			Output: LiteralPath("t/<: .package_base_separated :>.t"),
			Allow:  kindIs(repository.KindGoodie),
		},
		{
			Name:   "spice_pm",
			Label:  "Spice Perl module",
			Input:  LiteralPath("spice/spice.pm.tx"),
			Output: LiteralPath("lib/<: .package_separated :>.pm"),
			Allow:  kindIs(repository.KindSpice),
		},
		{
			Name:        "spice_js",
			Label:       "Spice JavaScript callback",
			Input:       LiteralPath("spice/spice.js.tx"),
			Output:      LiteralPath("share/spice/<: .ia.ID :>/<: .ia.ID :>.js"),
			Allow:       kindIs(repository.KindSpice),
			ExtraConfig: spiceExtraConfig,
		},
		{
			Name:   "spice_test",
			Label:  "Spice test file",
			Input:  LiteralPath("spice/spice_test.t.tx"),
			Output: LiteralPath("t/<: .package_base_separated :>.t"),
			Allow:  kindIs(repository.KindSpice),
		},
		{
			Name:        "cheat_sheet_json",
			Label:       "Cheat sheet JSON",
			Input:       LiteralPath("cheat_sheet/cheat_sheet.json.tx"),
			Output:      LiteralPath("share/goodie/cheat_sheets/json/<: .id :>.json"),
			Allow:       kindIs(repository.KindGoodie),
			ExtraConfig: cheatSheetExtraConfig,
		},
		{
			Name:   "fathead_fetch",
			Label:  "Fathead fetch script",
			Input:  LiteralPath("fathead/fetch.sh.tx"),
			Output: LiteralPath("lib/fathead/<: .ia.ID :>/fetch.sh"),
			Allow:  kindIs(repository.KindFathead),
			Mode:   outputMode("fathead/fetch.sh.tx"),
		},
		{
			Name:   "fathead_parse",
			Label:  "Fathead parse script",
			Input:  LiteralPath("fathead/parse.sh.tx"),
			Output: LiteralPath("lib/fathead/<: .ia.ID :>/parse.sh"),
			Allow:  kindIs(repository.KindFathead),
			Mode:   outputMode("fathead/parse.sh.tx"),
		},
		{
			Name:   "fathead_readme",
			Label:  "Fathead README",
			Input:  LiteralPath("fathead/README.md.tx"),
			Output: LiteralPath("lib/fathead/<: .ia.ID :>/README.md"),
			Allow:  kindIs(repository.KindFathead),
		},
	}
}

// setDef describes a template set to create.
type setDef struct {
	name      string
	label     string
	templates []string
	followUp  string
}

// catalogSetDefs describe all builtin template sets, in presentation order.
func catalogSetDefs() []setDef {
	return []setDef{
		{
			name:      "goodie",
			label:     "Goodie instant answer",
			templates: []string{"goodie_pm", "goodie_test"},
			followUp: `Created your <: .ia.Name :> Goodie!
Try it out:
  duckpan query '<: .ia.ID :>'
Run the tests:
  prove -Ilib t/<: .package_base_separated :>.t
`,
		},
		{
			name:      "spice",
			label:     "Spice instant answer",
			templates: []string{"spice_pm", "spice_js", "spice_test"},
			followUp: `Created your <: .ia.Name :> Spice!
Fill in the upstream API endpoint in lib/<: .package_separated :>.pm,
then render the response in share/spice/<: .ia.ID :>/<: .ia.ID :>.js.
Try it out:
  duckpan server
`,
		},
		{
			name:      "cheat_sheet",
			label:     "Cheat sheet",
			templates: []string{"cheat_sheet_json"},
			followUp: `Created the <: .ia.Name :> cheat sheet.
Validate it:
  duckpan check
`,
		},
		{
			name:      "fathead",
			label:     "Fathead instant answer",
			templates: []string{"fathead_fetch", "fathead_parse", "fathead_readme"},
			followUp: `Created your <: .ia.Name :> Fathead!
Describe the data source in lib/fathead/<: .ia.ID :>/README.md,
then implement fetch.sh and parse.sh to produce output.txt.
`,
		},
	}
}

// NewCatalog creates the template catalog on top of the engine.
func NewCatalog(engine templates.TemplateEngine) (*Catalog, error) {
	catalog := Catalog{
		templates: map[string]*Template{},
		sets:      map[string]*Set{},
	}

	for _, def := range catalogDefs() {
		tmpl, err := New(def, engine)
		if err != nil {
			return nil, err
		}
		catalog.templates[tmpl.Name()] = tmpl
	}

	for _, def := range catalogSetDefs() {
		set := Set{
			Name:     def.name,
			Label:    def.label,
			FollowUp: def.followUp,
		}
		for _, tmplName := range def.templates {
			tmpl, ok := catalog.templates[tmplName]
			if !ok {
				return nil, &InvalidConfigurationError{
					Reason: fmt.Sprintf("set %q references unknown template %q",
						def.name, tmplName),
				}
			}
			set.Templates = append(set.Templates, tmpl)
		}
		catalog.sets[set.Name] = &set
		catalog.setNames = append(catalog.setNames, set.Name)
	}

	return &catalog, nil
}

// Template returns a template by name.
func (catalog *Catalog) Template(name string) (*Template, error) {
	tmpl, ok := catalog.templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}
	return tmpl, nil
}

// Set returns a template set by name.
func (catalog *Catalog) Set(name string) (*Set, error) {
	set, ok := catalog.sets[name]
	if !ok {
		return nil, fmt.Errorf("unknown template set %q, available: %s",
			name, strings.Join(catalog.SetNames(), ", "))
	}
	return set, nil
}

// SetNames returns all set names in presentation order.
func (catalog *Catalog) SetNames() []string {
	names := make([]string, len(catalog.setNames))
	copy(names, catalog.setNames)
	return names
}

// TemplateNames returns sorted distinct template names across all sets.
func (catalog *Catalog) TemplateNames() []string {
	names := []string{}
	for _, setName := range catalog.setNames {
		for _, tmpl := range catalog.sets[setName].Templates {
			names = append(names, tmpl.Name())
		}
	}

	names = arrayOperations.DifferenceString(names)
	sort.Strings(names)
	return names
}

// DefaultSetName returns the set generated by default for the repository
// kind, empty if the kind has no default.
func DefaultSetName(kind repository.Kind) string {
	switch kind {
	case repository.KindGoodie:
		return "goodie"
	case repository.KindSpice:
		return "spice"
	case repository.KindFathead:
		return "fathead"
	}
	return ""
}
