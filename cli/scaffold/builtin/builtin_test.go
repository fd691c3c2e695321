package builtin

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeroclickinfo/duckgen/cli/app"
	"github.com/zeroclickinfo/duckgen/cli/ia"
	"github.com/zeroclickinfo/duckgen/cli/repository"
	"github.com/zeroclickinfo/duckgen/cli/scaffold/internal/iatemplate"
	"github.com/zeroclickinfo/duckgen/cli/templates"
	"github.com/zeroclickinfo/duckgen/cli/util"
)

// TestFileModesCoverTemplates checks that the embedded template tree and
// the generated file modes map stay in sync in both directions.
func TestFileModesCoverTemplates(t *testing.T) {
	rootFs, err := RootFS()
	require.NoError(t, err)

	found := map[string]bool{}
	err = fs.WalkDir(rootFs, ".", func(srcPath string, entry fs.DirEntry, err error) error {
		require.NoError(t, err)
		if !entry.IsDir() {
			found[srcPath] = true
		}
		return nil
	})
	require.NoError(t, err)

	for name := range found {
		assert.Contains(t, FileModes, name, "%q has no generated file mode", name)
	}
	for name := range FileModes {
		assert.True(t, found[name], "file mode entry %q has no template file", name)
	}
}

func TestExport(t *testing.T) {
	dstDir := filepath.Join(t.TempDir(), "templates")
	require.NoError(t, Export(dstDir))

	fetchInfo, err := os.Stat(filepath.Join(dstDir, "fathead", "fetch.sh.tx"))
	require.NoError(t, err)
	assert.NotZero(t, fetchInfo.Mode()&0100, "fetch script template is not executable")

	readmeInfo, err := os.Stat(filepath.Join(dstDir, "fathead", "README.md.tx"))
	require.NoError(t, err)
	assert.Zero(t, readmeInfo.Mode()&0111)

	content, err := os.ReadFile(filepath.Join(dstDir, "goodie", "goodie.pm.tx"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package <: .ia.Module :>;")

	// Exporting over an existing directory rewrites the files.
	require.NoError(t, Export(dstDir))
}

// TestSetsGenerate generates every template set from the embedded tree
// into a fresh repository and checks the produced files.
func TestSetsGenerate(t *testing.T) {
	rootFs, err := RootFS()
	require.NoError(t, err)
	engine := templates.NewDefaultEngine(rootFs)
	catalog, err := iatemplate.NewCatalog(engine)
	require.NoError(t, err)

	cases := map[string]struct {
		marker    string
		wantFiles []string
		check     func(t *testing.T, repoDir string)
	}{
		"goodie": {
			marker: filepath.Join("lib", "DDG", "Goodie"),
			wantFiles: []string{
				"lib/DDG/Goodie/VisualTest.pm",
				"t/VisualTest.t",
			},
			check: func(t *testing.T, repoDir string) {
				content, err := os.ReadFile(
					filepath.Join(repoDir, "lib/DDG/Goodie/VisualTest.pm"))
				require.NoError(t, err)
				assert.Contains(t, string(content), "package DDG::Goodie::VisualTest;")
				assert.Contains(t, string(content), "zci answer_type => 'visual_test';")
			},
		},
		"spice": {
			marker: filepath.Join("lib", "DDG", "Spice"),
			wantFiles: []string{
				"lib/DDG/Spice/VisualTest.pm",
				"share/spice/visual_test/visual_test.js",
				"t/VisualTest.t",
			},
			check: func(t *testing.T, repoDir string) {
				content, err := os.ReadFile(
					filepath.Join(repoDir, "share/spice/visual_test/visual_test.js"))
				require.NoError(t, err)
				assert.Contains(t, string(content),
					"env.ddg_spice_visual_test = function (api_result)")
				assert.Contains(t, string(content), "id: 'visual_test'")
			},
		},
		"cheat_sheet": {
			marker: filepath.Join("lib", "DDG", "Goodie"),
			wantFiles: []string{
				"share/goodie/cheat_sheets/json/visual-test.json",
			},
			check: func(t *testing.T, repoDir string) {
				content, err := os.ReadFile(
					filepath.Join(repoDir, "share/goodie/cheat_sheets/json/visual-test.json"))
				require.NoError(t, err)
				assert.Contains(t, string(content), `"id": "visual_test_cheat_sheet"`)
				assert.Contains(t, string(content), `"visual-test"`)
			},
		},
		"fathead": {
			marker: filepath.Join("lib", "fathead"),
			wantFiles: []string{
				"lib/fathead/visual_test/fetch.sh",
				"lib/fathead/visual_test/parse.sh",
				"lib/fathead/visual_test/README.md",
			},
			check: func(t *testing.T, repoDir string) {
				for _, script := range []string{"fetch.sh", "parse.sh"} {
					info, err := os.Stat(
						filepath.Join(repoDir, "lib/fathead/visual_test", script))
					require.NoError(t, err)
					assert.NotZero(t, info.Mode()&0100, "%s is not executable", script)
				}
			},
		},
	}

	for name, testCase := range cases {
		t.Run(name, func(t *testing.T) {
			repoDir := t.TempDir()
			require.NoError(t, os.MkdirAll(filepath.Join(repoDir, testCase.marker), 0755))

			restore, err := util.Chdir(repoDir)
			require.NoError(t, err)
			defer restore()

			repo, err := repository.Load(repoDir)
			require.NoError(t, err)
			answer, err := ia.New("Visual Test", repo.Kind)
			require.NoError(t, err)
			answerApp := app.New(repo, repoDir)

			set, err := catalog.Set(name)
			require.NoError(t, err)

			created := []string{}
			for _, tmpl := range set.Templates {
				require.True(t, tmpl.Supports(repo), "template %q", tmpl.Name())

				outputFile, err := tmpl.Configure(iatemplate.Options{
					IA:  &answer,
					App: answerApp,
				})
				require.NoError(t, err)
				created = append(created, outputFile)
			}

			assert.Equal(t, testCase.wantFiles, created)
			for _, outputFile := range testCase.wantFiles {
				assert.FileExists(t, filepath.Join(repoDir, outputFile))
			}
			if testCase.check != nil {
				testCase.check(t, repoDir)
			}
		})
	}
}
