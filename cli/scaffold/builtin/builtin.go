// Package builtin ships the instant answer templates embedded into the
// duckgen binary.
package builtin

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zeroclickinfo/duckgen/cli/scaffold/builtin/static"
	"github.com/zeroclickinfo/duckgen/cli/util"
)

//go:embed share/*
var TemplatesFs embed.FS

// FileModes contains mapping of file modes by template file name.
// go:embed does not keep the execute bits, so the modes are captured
// from the source tree by cli/codegen.
var FileModes = static.ShareFileModes

const dirPermissions = os.FileMode(0755)

// RootFS returns the built-in template tree rooted at its share
// directory, so that file names inside it match the FileModes keys.
func RootFS() (fs.FS, error) {
	return fs.Sub(TemplatesFs, "share")
}

// Export writes the built-in template tree to dstDir with the captured
// file modes. The result is a starting point for a custom templates
// directory.
func Export(dstDir string) error {
	rootFs, err := RootFS()
	if err != nil {
		return err
	}

	return fs.WalkDir(rootFs, ".", func(srcPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if srcPath == "." {
			return util.CreateDirectory(dstDir, dirPermissions)
		}

		dstPath := filepath.Join(dstDir, srcPath)
		if entry.IsDir() {
			return util.CreateDirectory(dstPath, dirPermissions)
		}

		perms, found := FileModes[srcPath]
		if !found {
			return fmt.Errorf("file mode of %q is not known", srcPath)
		}
		return util.FsCopyFileChangePerms(rootFs, srcPath, dstPath, perms)
	})
}
