package engines

import (
	"fmt"
	"strings"
)

// builtinHelpers are registered in every engine instance.
var builtinHelpers = map[string]interface{}{
	"indent": indentText,
}

// indentText prefixes every line of text. An integer prefix means that many
// spaces, any string is used literally. The empty line after a trailing
// newline is left as is.
func indentText(prefix interface{}, text string) (string, error) {
	var pad string
	switch value := prefix.(type) {
	case int:
		if value < 0 {
			return "", fmt.Errorf("indent count must be non-negative, got %d", value)
		}
		pad = strings.Repeat(" ", value)
	case string:
		pad = value
	default:
		return "", fmt.Errorf("indent accepts an integer or a string prefix, got %T", prefix)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == len(lines)-1 && line == "" {
			continue
		}
		lines[i] = pad + line
	}

	return strings.Join(lines, "\n"), nil
}
