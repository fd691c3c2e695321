package engines

import (
	"bytes"
	"fmt"
	"io/fs"
	"reflect"
	"text/template"
)

// Template delimiters, Kolon style.
const (
	OpenDelim  = "<:"
	CloseDelim = ":>"
)

// KolonEngine is a go text/template engine configured with Kolon-style
// delimiters. Templates are plain text, a missing variable is an error.
type KolonEngine struct {
	root  fs.FS
	funcs map[string]interface{}
}

// NewKolonEngine creates a new engine reading template files from root.
func NewKolonEngine(root fs.FS) *KolonEngine {
	funcs := make(map[string]interface{}, len(builtinHelpers))
	for name, helper := range builtinHelpers {
		funcs[name] = helper
	}
	return &KolonEngine{root: root, funcs: funcs}
}

// RegisterHelper makes the helper function available in templates under
// the given name.
func (engine *KolonEngine) RegisterHelper(name string, helper interface{}) error {
	if name == "" {
		return fmt.Errorf("helper name cannot be empty")
	}
	if helper == nil || reflect.ValueOf(helper).Kind() != reflect.Func {
		return fmt.Errorf("helper %q must be a function", name)
	}
	engine.funcs[name] = helper
	return nil
}

// render parses and executes template text under the given name.
func (engine *KolonEngine) render(name, text string, data interface{}) (string, error) {
	parsedTemplate, err := template.New(name).
		Delims(OpenDelim, CloseDelim).
		Funcs(engine.funcs).
		Parse(text)
	if err != nil {
		return "", fmt.Errorf("error parsing %s: %s", name, err)
	}
	parsedTemplate.Option("missingkey=error") // Treat missing variable as error.

	var buffer bytes.Buffer
	if err = parsedTemplate.Execute(&buffer, data); err != nil {
		return "", fmt.Errorf("template execution failed: %s", err)
	}

	return buffer.String(), nil
}

// RenderText renders in text.
func (engine *KolonEngine) RenderText(in string, data interface{}) (string, error) {
	return engine.render("text", in, data)
}

// RenderFile renders the template read from srcPath, relative to the
// engine root.
func (engine *KolonEngine) RenderFile(srcPath string, data interface{}) (string, error) {
	text, err := fs.ReadFile(engine.root, srcPath)
	if err != nil {
		return "", fmt.Errorf("error reading template %s: %s", srcPath, err)
	}
	return engine.render(srcPath, string(text), data)
}
