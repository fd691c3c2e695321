package steps

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeroclickinfo/duckgen/cli/repository"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
	"github.com/zeroclickinfo/duckgen/cli/templates"
)

// makeGenCtx returns a generation context with a catalog and a detected
// repository of the given kind.
func makeGenCtx(t *testing.T, kind repository.Kind) iatemplate.GenCtx {
	t.Helper()

	engine := templates.NewDefaultEngine(os.DirFS(t.TempDir()))
	catalog, err := iatemplate.NewCatalog(engine)
	require.NoError(t, err)

	return iatemplate.GenCtx{
		Repo:    &repository.Repository{Root: t.TempDir(), Kind: kind},
		Engine:  engine,
		Catalog: catalog,
	}
}

func TestResolveTemplateSetExplicit(t *testing.T) {
	genCtx := makeGenCtx(t, repository.KindGoodie)

	ctx := scaffold_ctx.NewCtx{SetName: "cheat_sheet"}
	require.NoError(t, ResolveTemplateSet{}.Run(&ctx, &genCtx))
	require.NotNil(t, genCtx.Set)
	assert.Equal(t, "cheat_sheet", genCtx.Set.Name)
}

func TestResolveTemplateSetUnknown(t *testing.T) {
	genCtx := makeGenCtx(t, repository.KindGoodie)

	ctx := scaffold_ctx.NewCtx{SetName: "no_such_set"}
	err := ResolveTemplateSet{}.Run(&ctx, &genCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template set")
}

func TestResolveTemplateSetNotApplicable(t *testing.T) {
	genCtx := makeGenCtx(t, repository.KindGoodie)

	ctx := scaffold_ctx.NewCtx{SetName: "spice"}
	err := ResolveTemplateSet{}.Run(&ctx, &genCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(),
		`template set "spice" is not applicable to a goodie repository`)
}

func TestResolveTemplateSetDefaults(t *testing.T) {
	cases := map[repository.Kind]string{
		repository.KindGoodie:  "goodie",
		repository.KindSpice:   "spice",
		repository.KindFathead: "fathead",
	}

	for kind, expectedSet := range cases {
		genCtx := makeGenCtx(t, kind)

		ctx := scaffold_ctx.NewCtx{}
		require.NoError(t, ResolveTemplateSet{}.Run(&ctx, &genCtx))
		require.NotNil(t, genCtx.Set, "kind %s", kind)
		assert.Equal(t, expectedSet, genCtx.Set.Name, "kind %s", kind)
	}
}

func TestResolveTemplateSetNoneApplicable(t *testing.T) {
	genCtx := makeGenCtx(t, repository.KindLongtail)

	ctx := scaffold_ctx.NewCtx{}
	err := ResolveTemplateSet{}.Run(&ctx, &genCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(),
		"no template sets are applicable to a longtail repository")
}
