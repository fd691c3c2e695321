package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeroclickinfo/duckgen/cli/app"
	"github.com/zeroclickinfo/duckgen/cli/ia"
	"github.com/zeroclickinfo/duckgen/cli/repository"
	scaffold_ctx "github.com/zeroclickinfo/duckgen/cli/scaffold/context"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
	"github.com/zeroclickinfo/duckgen/cli/templates"
)

// makeGoodieGenCtx builds a generation context for the goodie set with
// on-disk template files and a goodie repository.
func makeGoodieGenCtx(t *testing.T) iatemplate.GenCtx {
	t.Helper()

	templatesDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(templatesDir, "goodie"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(templatesDir, "goodie", "goodie.pm.tx"),
		[]byte("package <: .ia.Module :>;\n"), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(templatesDir, "goodie", "goodie_test.t.tx"),
		[]byte("use <: .ia.Module :>;\n"), 0644))

	engine := templates.NewDefaultEngine(os.DirFS(templatesDir))
	catalog, err := iatemplate.NewCatalog(engine)
	require.NoError(t, err)

	set, err := catalog.Set("goodie")
	require.NoError(t, err)

	repoDir := makeRepoDir(t, filepath.Join("lib", "DDG", "Goodie"))
	repo, err := repository.Load(repoDir)
	require.NoError(t, err)

	answer, err := ia.New("Hello Bob", repo.Kind)
	require.NoError(t, err)

	return iatemplate.GenCtx{
		Repo:    repo,
		App:     app.New(repo, repoDir),
		Engine:  engine,
		Catalog: catalog,
		Set:     set,
		Answer:  &answer,
	}
}

func TestGenerateFiles(t *testing.T) {
	genCtx := makeGoodieGenCtx(t)
	ctx := scaffold_ctx.NewCtx{}

	origDir, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, GenerateFiles{}.Run(&ctx, &genCtx))

	curDir, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, origDir, curDir, "working directory is not restored")

	assert.Equal(t, []string{
		"lib/DDG/Goodie/HelloBob.pm",
		"t/HelloBob.t",
	}, genCtx.CreatedFiles)

	content, err := os.ReadFile(filepath.Join(genCtx.Repo.Root,
		"lib/DDG/Goodie/HelloBob.pm"))
	require.NoError(t, err)
	assert.Equal(t, "package DDG::Goodie::HelloBob;\n", string(content))
}

func TestGenerateFilesAbortsOnExisting(t *testing.T) {
	genCtx := makeGoodieGenCtx(t)
	ctx := scaffold_ctx.NewCtx{}

	existing := filepath.Join(genCtx.Repo.Root, "lib", "DDG", "Goodie", "HelloBob.pm")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0644))

	err := GenerateFiles{}.Run(&ctx, &genCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	assert.Empty(t, genCtx.CreatedFiles)
	assert.NoFileExists(t, filepath.Join(genCtx.Repo.Root, "t", "HelloBob.t"))

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))
}

func TestGenerateFilesKeepsEarlierFiles(t *testing.T) {
	genCtx := makeGoodieGenCtx(t)
	ctx := scaffold_ctx.NewCtx{}

	require.NoError(t, os.MkdirAll(filepath.Join(genCtx.Repo.Root, "t"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(genCtx.Repo.Root, "t", "HelloBob.t"),
		[]byte("original"), 0644))

	err := GenerateFiles{}.Run(&ctx, &genCtx)
	require.Error(t, err)

	// The first template output stays in place.
	assert.Equal(t, []string{"lib/DDG/Goodie/HelloBob.pm"}, genCtx.CreatedFiles)
	assert.FileExists(t, filepath.Join(genCtx.Repo.Root, "lib/DDG/Goodie/HelloBob.pm"))
}

func TestGenerateFilesVarsFlow(t *testing.T) {
	templatesDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(templatesDir, "goodie"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(templatesDir, "goodie", "goodie.pm.tx"),
		[]byte("# Author: <: .author :>\n"), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(templatesDir, "goodie", "goodie_test.t.tx"),
		[]byte("# Author: <: .author :>\n"), 0644))

	engine := templates.NewDefaultEngine(os.DirFS(templatesDir))
	catalog, err := iatemplate.NewCatalog(engine)
	require.NoError(t, err)
	set, err := catalog.Set("goodie")
	require.NoError(t, err)

	repoDir := makeRepoDir(t, filepath.Join("lib", "DDG", "Goodie"))
	repo, err := repository.Load(repoDir)
	require.NoError(t, err)
	answer, err := ia.New("Hello Bob", repo.Kind)
	require.NoError(t, err)

	genCtx := iatemplate.GenCtx{
		Repo:    repo,
		App:     app.New(repo, repoDir),
		Engine:  engine,
		Catalog: catalog,
		Set:     set,
		Answer:  &answer,
		Vars:    map[string]interface{}{"author": "Alice"},
	}
	ctx := scaffold_ctx.NewCtx{}

	require.NoError(t, GenerateFiles{}.Run(&ctx, &genCtx))

	content, err := os.ReadFile(filepath.Join(repoDir, "lib/DDG/Goodie/HelloBob.pm"))
	require.NoError(t, err)
	assert.Equal(t, "# Author: Alice\n", string(content))
}
