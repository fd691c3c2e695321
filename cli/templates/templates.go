// Package templates provides template engine interface and implementations
// used for instant answer scaffolding.
package templates

import (
	"io/fs"

	"github.com/zeroclickinfo/duckgen/cli/templates/internal/engines"
)

// Template delimiters. Output path patterns are recognized as templated by
// the presence of the open delimiter.
const (
	OpenDelim  = engines.OpenDelim
	CloseDelim = engines.CloseDelim
)

// TemplateEngine is an interface used for instant answer template
// instantiation.
type TemplateEngine interface {
	// RenderText applies data to the template text. Returns instantiated text.
	RenderText(in string, data interface{}) (string, error)

	// RenderFile applies data to the template read from srcPath, relative
	// to the engine root. Returns instantiated text.
	RenderFile(srcPath string, data interface{}) (string, error)

	// RegisterHelper makes the helper function available in templates
	// under the given name.
	RegisterHelper(name string, helper interface{}) error
}

// NewDefaultEngine creates and returns default template engine reading
// template files from root.
func NewDefaultEngine(root fs.FS) TemplateEngine {
	return engines.NewKolonEngine(root)
}
