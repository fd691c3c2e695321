// Package repository locates and classifies instant answer repositories.
package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/zeroclickinfo/duckgen/cli/util"
)

// Kind is an instant answer repository kind.
type Kind int

const (
	KindUnknown Kind = iota
	KindGoodie
	KindSpice
	KindFathead
	KindLongtail
)

// String implements Stringer interface.
func (kind Kind) String() string {
	switch kind {
	case KindGoodie:
		return "goodie"
	case KindSpice:
		return "spice"
	case KindFathead:
		return "fathead"
	case KindLongtail:
		return "longtail"
	}
	return "unknown"
}

// Package returns the kind component of instant answer module names,
// e.g. "Goodie" in "DDG::Goodie::Example".
func (kind Kind) Package() string {
	switch kind {
	case KindGoodie:
		return "Goodie"
	case KindSpice:
		return "Spice"
	case KindFathead:
		return "Fathead"
	case KindLongtail:
		return "Longtail"
	}
	return ""
}

// Repository is a detected instant answer repository.
type Repository struct {
	// Root is an absolute path to the repository root directory.
	Root string
	// Kind of instant answers the repository hosts.
	Kind Kind
}

// kindMarkers map repository tree markers to repository kinds.
// The order matters: the first existing marker wins.
var kindMarkers = []struct {
	path string
	kind Kind
}{
	{filepath.Join("lib", "DDG", "Goodie"), KindGoodie},
	{filepath.Join("lib", "DDG", "Spice"), KindSpice},
	{filepath.Join("lib", "DDG", "Longtail"), KindLongtail},
	{filepath.Join("lib", "fathead"), KindFathead},
}

// classify returns the repository kind for dir, KindUnknown if dir is not
// an instant answer repository root.
func classify(dir string) Kind {
	for _, marker := range kindMarkers {
		if util.IsDir(filepath.Join(dir, marker.path)) {
			return marker.kind
		}
	}
	return KindUnknown
}

// Load opens the repository at the given root directory.
func Load(root string) (*Repository, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if !util.IsDir(root) {
		return nil, fmt.Errorf("repository directory '%s' does not exist", root)
	}

	kind := classify(root)
	if kind == KindUnknown {
		return nil, fmt.Errorf(
			"'%s' does not look like an instant answer repository: "+
				"no lib/DDG/* or lib/fathead directory found", root)
	}

	log.Debugf("Repository root: %s, kind: %s", root, kind)

	return &Repository{Root: root, Kind: kind}, nil
}

// Detect looks for the enclosing instant answer repository, checking all
// directories from startDir up to the root directory.
func Detect(startDir string) (*Repository, error) {
	curDir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		if kind := classify(curDir); kind != KindUnknown {
			log.Debugf("Repository root: %s, kind: %s", curDir, kind)
			return &Repository{Root: curDir, Kind: kind}, nil
		}

		parentDir := filepath.Dir(curDir)
		if parentDir == curDir {
			break
		}
		curDir = parentDir
	}

	return nil, fmt.Errorf(
		"not inside an instant answer repository: no lib/DDG/* or lib/fathead "+
			"directory found in '%s' or its parent directories", startDir)
}

// DetectCwd is a Detect shortcut for the current working directory.
func DetectCwd() (*Repository, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Detect(cwd)
}
